package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration skyhop would use, as YAML.

Config files are searched in this order:
  1. --config <path>
  2. ~/.skyhop/configs/skyhop.yaml
  3. ./configs/skyhop.yaml
  4. built-in defaults

Examples:
  skyhop config
  skyhop config --difficulty hard
  skyhop config > ~/.skyhop/configs/skyhop.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if source != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "# loaded from %s\n", source)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "# built-in defaults")
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// loadConfig loads and validates the config and applies a difficulty
// preset on top of it. It also returns the file the config came from,
// or "" for the built-in defaults.
func loadConfig(path, difficulty string) (config.SkyhopConfig, string, error) {
	preset, ok := config.ParsePreset(difficulty)
	if !ok {
		return config.SkyhopConfig{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
	}

	cfg, source, err := config.LoadSource(path)
	if err != nil {
		return config.SkyhopConfig{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, source, nil
}
