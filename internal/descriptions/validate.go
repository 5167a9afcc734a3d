package descriptions

import (
	"strings"
	"unicode/utf16"
)

var requiredFields = []string{
	FieldProductName,
	FieldProductCategory,
	FieldKeyFeatures,
	FieldTargetAudience,
	FieldToneOfVoice,
}

// Validator checks raw form input against the field rules. It is immutable
// once built and safe for concurrent use.
type Validator struct {
	categories []string
	allowed    map[string]struct{}
}

// NewValidator builds a Validator accepting the given categories. Blank
// entries are dropped; an empty list falls back to DefaultCategories.
func NewValidator(categories []string) *Validator {
	v := &Validator{allowed: make(map[string]struct{})}
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, dup := v.allowed[c]; dup {
			continue
		}
		v.allowed[c] = struct{}{}
		v.categories = append(v.categories, c)
	}
	if len(v.categories) == 0 {
		return NewValidator(defaultCategories)
	}
	return v
}

// Categories returns the accepted categories in configured order.
func (v *Validator) Categories() []string {
	return append([]string(nil), v.categories...)
}

// Validate checks every field independently and collects all violations.
func Validate(raw map[string]string) ValidationResult {
	return NewValidator(nil).Validate(raw)
}

// Validate checks every field independently and collects all violations.
// On success the returned record carries the trimmed field values.
func (v *Validator) Validate(raw map[string]string) ValidationResult {
	errs := FieldErrors{}
	values := make(map[string]string, len(requiredFields)+1)

	for _, field := range requiredFields {
		value := strings.TrimSpace(raw[field])
		values[field] = value
		if value == "" {
			errs[field] = MsgRequired
			continue
		}
		switch field {
		case FieldKeyFeatures:
			if textLength(value) < minFeaturesLength {
				errs[field] = MsgFeaturesTooShort
			}
		case FieldProductCategory:
			if _, ok := v.allowed[value]; !ok {
				errs[field] = MsgInvalidOption
			}
		case FieldToneOfVoice:
			if !Tone(value).Valid() {
				errs[field] = MsgInvalidOption
			}
		}
	}

	length := raw[FieldDescriptionLength]
	switch {
	case strings.TrimSpace(length) == "":
		errs[FieldDescriptionLength] = MsgRequired
	case !Length(length).Valid():
		errs[FieldDescriptionLength] = MsgInvalidOption
	}

	if len(errs) > 0 {
		return ValidationResult{Errors: errs}
	}
	return ValidationResult{
		Record: InputRecord{
			ProductName:       values[FieldProductName],
			ProductCategory:   values[FieldProductCategory],
			KeyFeatures:       values[FieldKeyFeatures],
			TargetAudience:    values[FieldTargetAudience],
			ToneOfVoice:       Tone(values[FieldToneOfVoice]),
			DescriptionLength: Length(length),
		},
	}
}

// textLength counts UTF-16 code units, the length a browser form reports, so
// characters outside the BMP count twice.
func textLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}
