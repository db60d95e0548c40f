package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/boostout/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or validate configuration",
}

var configPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the effective config as YAML",
	Long: `Print the config a game would start with: the first file found in
--config, ~/.boostout/configs/breakout.yaml or ./configs/breakout.yaml,
with the --difficulty preset applied. --defaults prints the built-in file.`,
	Args: cobra.NoArgs,
	RunE: runConfigPrint,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Check a config file and report every problem",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigValidate,
}

func init() {
	configPrintCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config")
	configCmd.AddCommand(configPrintCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigPrint(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := config.LoadBreakout(flagConfig)
	if err != nil {
		return err
	}
	if preset, _ := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyBreakoutPreset(&cfg, preset)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func runConfigValidate(_ *cobra.Command, args []string) error {
	if _, err := config.LoadBreakout(args[0]); err != nil {
		return err
	}
	fmt.Printf("%s: OK\n", args[0])
	return nil
}
