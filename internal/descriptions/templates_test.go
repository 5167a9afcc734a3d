package descriptions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lampRecord(tone Tone, length Length) InputRecord {
	return InputRecord{
		ProductName:       "Aurora",
		ProductCategory:   "Home & Garden",
		KeyFeatures:       "Adjustable brightness, Warm light, USB charging, Touch controls",
		TargetAudience:    "late-night readers",
		ToneOfVoice:       tone,
		DescriptionLength: length,
	}
}

func TestTemplatesCoverEveryPair(t *testing.T) {
	assert.Len(t, templates, len(Tones())*len(Lengths()))
	for _, tone := range Tones() {
		for _, length := range Lengths() {
			_, ok := templates[templateKey{tone: tone, length: length}]
			assert.True(t, ok, "missing template %s/%s", tone, length)
		}
	}
}

func TestComposeProfessionalShort(t *testing.T) {
	got := Compose(lampRecord(ToneProfessional, LengthShort))

	want := "Introducing Aurora, a premium home & garden solution designed for late-night readers. " +
		"Adjustable brightness. Warm light. USB charging. " +
		"Engineered for performance and reliability, this product delivers exceptional value and meets the highest industry standards."
	assert.Equal(t, want, got)
}

func TestComposeShortFeatureSeparators(t *testing.T) {
	tests := []struct {
		tone Tone
		want string
	}{
		{ToneFriendly, "brings you Adjustable brightness, and Warm light. "},
		{ToneCreative, "Experience Adjustable brightness and Warm light. "},
		{ToneMinimalist, "Aurora. Home & Garden. Adjustable brightness. Warm light. USB charging. Designed for"},
		{ToneLuxurious, "late-night readers. Adjustable brightness, complemented by Warm light. Experience"},
	}
	for _, tt := range tests {
		t.Run(string(tt.tone), func(t *testing.T) {
			got := Compose(lampRecord(tt.tone, LengthShort))
			assert.Contains(t, got, tt.want)
			assert.NotContains(t, got, "Touch controls")
		})
	}
}

func TestComposeLongUsesAllFeatures(t *testing.T) {
	for _, tone := range Tones() {
		got := Compose(lampRecord(tone, LengthLong))
		assert.Contains(t, got, "Adjustable brightness. Warm light. USB charging. Touch controls.", "tone %s", tone)
	}
}

func TestComposeSubstitutesRecord(t *testing.T) {
	for _, tone := range Tones() {
		for _, length := range Lengths() {
			rec := lampRecord(tone, length)
			got := Compose(rec)

			assert.Contains(t, got, rec.ProductName, "%s/%s", tone, length)
			assert.Contains(t, got, rec.TargetAudience, "%s/%s", tone, length)
			if tone == ToneMinimalist && length == LengthShort {
				assert.Contains(t, got, "Home & Garden")
			} else {
				assert.Contains(t, got, "home & garden", "%s/%s", tone, length)
			}
			assert.Equal(t, got, Compose(rec), "compose must be deterministic")
		}
	}
}

func TestComposeLongIsLonger(t *testing.T) {
	for _, tone := range Tones() {
		short := CountWords(Compose(lampRecord(tone, LengthShort)))
		long := CountWords(Compose(lampRecord(tone, LengthLong)))
		assert.Greater(t, long, short, "tone %s", tone)
	}

	rec := lampRecord(ToneProfessional, LengthLong)
	rec.KeyFeatures = "Fast, Durable, Light"
	assert.GreaterOrEqual(t, CountWords(Compose(rec)), 80)
}

func TestComposeRepeatsNameInLongTemplates(t *testing.T) {
	got := Compose(lampRecord(ToneLuxurious, LengthLong))
	assert.Equal(t, 5, strings.Count(got, "Aurora"))
	assert.True(t, strings.HasSuffix(got, "Experience Aurora."))
}

func TestComposePanicsOutsideDomain(t *testing.T) {
	rec := lampRecord("Sarcastic", LengthShort)
	assert.Panics(t, func() { Compose(rec) })
}

func TestGenerateAttachesMetadata(t *testing.T) {
	res := Generate(lampRecord(ToneCreative, LengthShort))

	require.NotEmpty(t, res.Description)
	assert.Equal(t, CountWords(res.Description), res.WordCount)
	assert.Equal(t, []string{"Adjustable brightness", "Warm light", "USB charging", "Touch controls"}, res.Features)
	assert.Equal(t, ToneCreative, res.Tone)
	assert.Equal(t, LengthShort, res.Length)
	assert.True(t, strings.HasPrefix(res.Description, "✨ Discover Aurora"))
}
