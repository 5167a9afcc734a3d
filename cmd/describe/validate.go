package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"product-describer/internal/descriptions"
)

func newValidateCmd(svc *descriptions.Service) *cobra.Command {
	var form formFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a form without composing a description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := form.fields(cmd.InOrStdin())
			if err != nil {
				return err
			}
			result := svc.Check(raw)
			if !result.Valid() {
				printFieldErrors(cmd.ErrOrStderr(), result.Errors)
				return errInvalidForm
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	form.bind(cmd.Flags())
	return cmd
}
