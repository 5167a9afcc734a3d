package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"product-describer/internal/descriptions"
)

func newOptionsCmd(svc *descriptions.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List accepted tones, lengths and categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tones := make([]string, 0, len(descriptions.Tones()))
			for _, t := range descriptions.Tones() {
				tones = append(tones, string(t))
			}
			lengths := make([]string, 0, len(descriptions.Lengths()))
			for _, l := range descriptions.Lengths() {
				lengths = append(lengths, string(l))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Tones:\n%s\n\n", joinLines(tones))
			fmt.Fprintf(out, "Lengths:\n%s\n\n", joinLines(lengths))
			fmt.Fprintf(out, "Categories:\n%s\n", joinLines(svc.Categories()))
			return nil
		},
	}
}
