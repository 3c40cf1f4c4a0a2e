package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/stencil"
	"github.com/zoobzio/stencil/preset"
)

// Version is the current version of stencil.
const Version = "1.0.0"

// Config holds the global configuration for the stencil CLI.
type Config struct {
	PresetPath  string
	Placeholder string
	NoGuide     bool
}

// GlobalConfig is the shared configuration instance.
var GlobalConfig = &Config{}

// NewRootCommand creates the root cobra command for stencil.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stencil",
		Short: "Stencil - pattern-driven input masking",
		Long: `Stencil formats free-form text against character patterns such as
"(999) 999-9999", reconciles edits made to already-formatted values, and
recovers the raw characters a formatted value contains.

Patterns may be given inline or loaded by name from a YAML preset file.`,
		Version: Version,
	}

	cmd.PersistentFlags().StringVar(&GlobalConfig.PresetPath, "presets", "", "YAML preset file with definitions and named patterns")
	cmd.PersistentFlags().StringVar(&GlobalConfig.Placeholder, "placeholder", stencil.DefaultPlaceholder, "Placeholder character for unfilled slots")
	cmd.PersistentFlags().BoolVar(&GlobalConfig.NoGuide, "no-guide", false, "Truncate output at the last typed character instead of padding")

	cmd.AddCommand(NewFormatCommand())
	cmd.AddCommand(NewStripCommand())
	cmd.AddCommand(NewPatternsCommand())
	cmd.AddCommand(NewDemoCommand())

	return cmd
}

// resolveMask builds a mask for the given pattern argument. When a preset
// file is loaded and the argument names one of its patterns, the preset
// pattern and definitions are used; otherwise the argument is compiled as a
// literal pattern. The --placeholder flag only overrides a preset's own
// placeholder when set explicitly.
func resolveMask(cmd *cobra.Command, patternArg string, opts ...stencil.Option) (*stencil.Mask, error) {
	base := []stencil.Option{stencil.WithGuide(!GlobalConfig.NoGuide)}
	if cmd.Flags().Changed("placeholder") || GlobalConfig.PresetPath == "" {
		base = append(base, stencil.WithPlaceholder(GlobalConfig.Placeholder))
	}
	base = append(base, opts...)

	if GlobalConfig.PresetPath != "" {
		set, err := preset.Load(GlobalConfig.PresetPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load presets: %w", err)
		}
		for _, name := range set.Patterns() {
			if name == patternArg {
				return set.Mask(patternArg, base...)
			}
		}
	}

	return stencil.New(patternArg, base...)
}
