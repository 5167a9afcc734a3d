package descriptions

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ErrMalformedRequest reports a request body that is not a JSON object of
// string form fields.
var ErrMalformedRequest = errors.New("malformed request")

const requestSchemaJSON = `{
  "type": "object",
  "properties": {
    "productName":       {"type": ["string", "null"]},
    "productCategory":   {"type": ["string", "null"]},
    "keyFeatures":       {"type": ["string", "null"]},
    "targetAudience":    {"type": ["string", "null"]},
    "toneOfVoice":       {"type": ["string", "null"]},
    "descriptionLength": {"type": ["string", "null"]}
  }
}`

var requestSchema = mustSchema(requestSchemaJSON)

var formFields = []string{
	FieldProductName,
	FieldProductCategory,
	FieldKeyFeatures,
	FieldTargetAudience,
	FieldToneOfVoice,
	FieldDescriptionLength,
}

// FormFields returns the names of every form field in display order.
func FormFields() []string {
	return append([]string(nil), formFields...)
}

func mustSchema(raw string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("descriptions: invalid request schema: %v", err))
	}
	return schema
}

// DecodeFields checks body against the request schema and returns the known
// form fields as a raw map. Unknown properties are ignored; null and absent
// fields map to "".
func DecodeFields(body []byte) (map[string]string, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrMalformedRequest)
	}
	result, err := requestSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrMalformedRequest, strings.Join(msgs, "; "))
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	fields := make(map[string]string, len(formFields))
	for _, name := range formFields {
		if s, ok := payload[name].(string); ok {
			fields[name] = s
		} else {
			fields[name] = ""
		}
	}
	return fields, nil
}
