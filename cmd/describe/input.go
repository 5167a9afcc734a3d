package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"product-describer/internal/descriptions"
)

// errInvalidForm is returned after field errors have been printed.
var errInvalidForm = errors.New("form has invalid fields")

type formFlags struct {
	file     string
	name     string
	category string
	features string
	audience string
	tone     string
	length   string
}

func (f *formFlags) bind(cmdFlags *pflag.FlagSet) {
	cmdFlags.StringVarP(&f.file, "file", "f", "", "Read the form from a YAML or JSON file (- for stdin)")
	cmdFlags.StringVarP(&f.name, "name", "n", "", "Product name")
	cmdFlags.StringVarP(&f.category, "category", "c", "", "Product category")
	cmdFlags.StringVarP(&f.features, "features", "k", "", "Key features, separated by commas or newlines")
	cmdFlags.StringVarP(&f.audience, "audience", "a", "", "Target audience")
	cmdFlags.StringVarP(&f.tone, "tone", "t", "", "Tone of voice")
	cmdFlags.StringVarP(&f.length, "length", "l", "", "Description length (short or long)")
}

// fields returns the raw form. Values from --file are overridden by any
// non-empty flag.
func (f *formFlags) fields(stdin io.Reader) (map[string]string, error) {
	var rec descriptions.InputRecord
	if f.file != "" {
		var (
			data []byte
			err  error
		)
		if f.file == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(f.file)
		}
		if err != nil {
			return nil, fmt.Errorf("read form: %w", err)
		}
		if err := yaml.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("parse form %s: %w", f.file, err)
		}
	}

	raw := rec.Fields()
	override := map[string]string{
		descriptions.FieldProductName:       f.name,
		descriptions.FieldProductCategory:   f.category,
		descriptions.FieldKeyFeatures:       f.features,
		descriptions.FieldTargetAudience:    f.audience,
		descriptions.FieldToneOfVoice:       f.tone,
		descriptions.FieldDescriptionLength: f.length,
	}
	for k, v := range override {
		if v != "" {
			raw[k] = v
		}
	}
	return raw, nil
}

func printFieldErrors(w io.Writer, errs descriptions.FieldErrors) {
	names := make([]string, 0, len(errs))
	for name := range errs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s: %s\n", name, errs[name])
	}
}

func joinLines(items []string) string {
	return strings.Join(items, "\n")
}
