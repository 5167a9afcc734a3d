package main

import (
	"github.com/spf13/cobra"

	"product-describer/internal/descriptions"
)

func newRootCmd(categories []string) *cobra.Command {
	svc := descriptions.NewService(categories, nil, 0)

	root := &cobra.Command{
		Use:          "describe",
		Short:        "Generate product descriptions from a short form",
		SilenceUsage: true,
	}
	root.AddCommand(newGenerateCmd(svc))
	root.AddCommand(newValidateCmd(svc))
	root.AddCommand(newOptionsCmd(svc))
	return root
}
