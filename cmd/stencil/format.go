package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/stencil"
)

// NewFormatCommand creates the format command.
func NewFormatCommand() *cobra.Command {
	var allowEmpty bool

	cmd := &cobra.Command{
		Use:   "format <pattern> <value>",
		Short: "Format a raw value against a pattern",
		Long: `Format a raw value against a pattern.

The pattern may be given inline or, with --presets, as the name of a
pattern declared in the preset file.

Examples:
  stencil format "(999) 999-9999" 5551234567
  stencil format --no-guide "(999) 999-9999" 555
  stencil format --presets masks.yaml us-phone 5551234567`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMask(cmd, args[0], stencil.WithAllowEmpty(allowEmpty))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), m.Format(args[1]))
			return err
		},
	}

	cmd.Flags().BoolVar(&allowEmpty, "allow-empty", false, "Render the pattern skeleton for an empty value")

	return cmd
}
