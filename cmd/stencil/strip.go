package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewStripCommand creates the strip command.
func NewStripCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strip <pattern> <formatted>",
		Short: "Recover the raw characters from a formatted value",
		Long: `Recover the raw characters from a formatted value.

Pattern literals and placeholder characters are removed; what remains is
the text the user actually typed. Partially edited values are reconciled
before stripping, so shifted characters survive.

Examples:
  stencil strip "(999) 999-9999" "(555) 123-4567"
  stencil strip --presets masks.yaml us-phone "(555) 123-____"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := resolveMask(cmd, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), m.Normalize(args[1], ""))
			return err
		},
	}

	return cmd
}
