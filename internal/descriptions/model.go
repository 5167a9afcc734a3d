package descriptions

// Tone selects the narrative voice of a description.
type Tone string

const (
	ToneProfessional Tone = "Professional"
	ToneFriendly     Tone = "Friendly"
	ToneCreative     Tone = "Creative"
	ToneMinimalist   Tone = "Minimalist"
	ToneLuxurious    Tone = "Luxurious"
)

// Length selects between the short and long template of a tone.
type Length string

const (
	LengthShort Length = "short"
	LengthLong  Length = "long"
)

// Form field names, as submitted by the browser form.
const (
	FieldProductName       = "productName"
	FieldProductCategory   = "productCategory"
	FieldKeyFeatures       = "keyFeatures"
	FieldTargetAudience    = "targetAudience"
	FieldToneOfVoice       = "toneOfVoice"
	FieldDescriptionLength = "descriptionLength"
)

// Validation messages shown next to the offending form field.
const (
	MsgRequired         = "This field is required"
	MsgFeaturesTooShort = "Please provide more detailed features"
	MsgInvalidOption    = "Please select a valid option"
)

const minFeaturesLength = 10

var allTones = []Tone{ToneProfessional, ToneFriendly, ToneCreative, ToneMinimalist, ToneLuxurious}

var allLengths = []Length{LengthShort, LengthLong}

var defaultCategories = []string{
	"Electronics",
	"Clothing",
	"Home & Garden",
	"Sports & Outdoors",
	"Beauty & Personal Care",
	"Toys & Games",
	"Books",
	"Food & Beverage",
	"Health & Wellness",
	"Automotive",
	"Other",
}

// Tones returns every supported tone in display order.
func Tones() []Tone {
	return append([]Tone(nil), allTones...)
}

// Lengths returns every supported length in display order.
func Lengths() []Length {
	return append([]Length(nil), allLengths...)
}

// DefaultCategories returns the category list used when none is configured.
func DefaultCategories() []string {
	return append([]string(nil), defaultCategories...)
}

// Valid reports whether t is one of the supported tones.
func (t Tone) Valid() bool {
	for _, candidate := range allTones {
		if t == candidate {
			return true
		}
	}
	return false
}

// Valid reports whether l is short or long.
func (l Length) Valid() bool {
	return l == LengthShort || l == LengthLong
}

// InputRecord is a validated product description request.
type InputRecord struct {
	ProductName       string `json:"productName" yaml:"productName"`
	ProductCategory   string `json:"productCategory" yaml:"productCategory"`
	KeyFeatures       string `json:"keyFeatures" yaml:"keyFeatures"`
	TargetAudience    string `json:"targetAudience" yaml:"targetAudience"`
	ToneOfVoice       Tone   `json:"toneOfVoice" yaml:"toneOfVoice"`
	DescriptionLength Length `json:"descriptionLength" yaml:"descriptionLength"`
}

// Fields returns the record as the raw field map the validator consumes.
func (r InputRecord) Fields() map[string]string {
	return map[string]string{
		FieldProductName:       r.ProductName,
		FieldProductCategory:   r.ProductCategory,
		FieldKeyFeatures:       r.KeyFeatures,
		FieldTargetAudience:    r.TargetAudience,
		FieldToneOfVoice:       string(r.ToneOfVoice),
		FieldDescriptionLength: string(r.DescriptionLength),
	}
}

// FieldErrors maps a form field name to the message shown for it.
type FieldErrors map[string]string

// ValidationResult is either a valid record (no errors) or a set of per-field
// errors. Record is the zero value when Errors is non-empty.
type ValidationResult struct {
	Record InputRecord
	Errors FieldErrors
}

// Valid reports whether no field failed validation.
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Result is a composed description with its display metadata.
type Result struct {
	Description string   `json:"description"`
	WordCount   int      `json:"wordCount"`
	Features    []string `json:"features"`
	Tone        Tone     `json:"tone"`
	Length      Length   `json:"length"`
}

// Generate composes the description for a valid record and attaches the
// word count and parsed features.
func Generate(record InputRecord) Result {
	text := Compose(record)
	return Result{
		Description: text,
		WordCount:   CountWords(text),
		Features:    ParseFeatures(record.KeyFeatures),
		Tone:        record.ToneOfVoice,
		Length:      record.DescriptionLength,
	}
}
