package descriptions

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type composeGolden struct {
	Input struct {
		ProductName     string `json:"productName"`
		ProductCategory string `json:"productCategory"`
		KeyFeatures     string `json:"keyFeatures"`
		TargetAudience  string `json:"targetAudience"`
	} `json:"input"`
	Cases []struct {
		ToneOfVoice       Tone   `json:"toneOfVoice"`
		DescriptionLength Length `json:"descriptionLength"`
		Description       string `json:"description"`
		WordCount         int    `json:"wordCount"`
	} `json:"cases"`
}

func loadComposeGolden(t *testing.T) composeGolden {
	t.Helper()
	data, err := os.ReadFile("testdata/compose_golden.json")
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	var golden composeGolden
	if err := json.Unmarshal(data, &golden); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
	return golden
}

func TestComposeMatchesGolden(t *testing.T) {
	golden := loadComposeGolden(t)
	if len(golden.Cases) != len(templates) {
		t.Fatalf("expected %d golden cases, got %d", len(templates), len(golden.Cases))
	}

	for _, tc := range golden.Cases {
		t.Run(string(tc.ToneOfVoice)+"/"+string(tc.DescriptionLength), func(t *testing.T) {
			checked := Validate(map[string]string{
				FieldProductName:       golden.Input.ProductName,
				FieldProductCategory:   golden.Input.ProductCategory,
				FieldKeyFeatures:       golden.Input.KeyFeatures,
				FieldTargetAudience:    golden.Input.TargetAudience,
				FieldToneOfVoice:       string(tc.ToneOfVoice),
				FieldDescriptionLength: string(tc.DescriptionLength),
			})
			if !checked.Valid() {
				t.Fatalf("golden input rejected: %v", checked.Errors)
			}

			res := Generate(checked.Record)
			if diff := cmp.Diff(tc.Description, res.Description); diff != "" {
				t.Fatalf("description mismatch (-want +got):\n%s", diff)
			}
			if res.WordCount != tc.WordCount {
				t.Fatalf("expected %d words, got %d", tc.WordCount, res.WordCount)
			}
		})
	}
}
