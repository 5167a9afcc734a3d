package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"product-describer/internal/descriptions"
)

func newGenerateCmd(svc *descriptions.Service) *cobra.Command {
	var (
		form   formFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compose a product description",
		Long: `Validates the form and prints the composed description with its word count.

Examples:
  describe generate -n Aurora -c Books -k "Hardcover, Signed" -a collectors -t Luxurious -l short
  describe generate --file product.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := form.fields(cmd.InOrStdin())
			if err != nil {
				return err
			}
			result, fieldErrs, err := svc.Generate(cmd.Context(), "", raw)
			if err != nil {
				return err
			}
			if len(fieldErrs) > 0 {
				printFieldErrors(cmd.ErrOrStderr(), fieldErrs)
				return errInvalidForm
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			fmt.Fprintln(out, result.Description)
			fmt.Fprintf(out, "\n%d words\n", result.WordCount)
			return nil
		},
	}

	form.bind(cmd.Flags())
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}
