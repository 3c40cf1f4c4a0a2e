package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/zoobzio/stencil"
	"github.com/zoobzio/stencil/preset"
)

// NewPatternsCommand creates the patterns command.
func NewPatternsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the patterns declared in a preset file",
		Long: `List the patterns declared in a preset file, with their skeletons.

Examples:
  stencil patterns --presets masks.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if GlobalConfig.PresetPath == "" {
				return fmt.Errorf("no preset file given (use --presets)")
			}
			set, err := preset.Load(GlobalConfig.PresetPath)
			if err != nil {
				return fmt.Errorf("failed to load presets: %w", err)
			}

			names := set.Patterns()
			sort.Strings(names)
			for _, name := range names {
				m, err := set.Mask(name, stencil.WithAllowEmpty(true))
				if err != nil {
					return fmt.Errorf("pattern %s: %w", name, err)
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", name, m.Format("")); err != nil {
					return err
				}
			}
			return nil
		},
	}

	return cmd
}
