package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/domino14/wordtiers/config"
)

var GitVersion string

var cfg = &config.Config{}

var rootCmd = &cobra.Command{
	Use:   "wordtiers",
	Short: "Build a tiered word list from graded vocabulary lists",
	Long: `wordtiers reads graded word lists in order of difficulty and writes one
sorted "word,tier" file, where a word's tier is the first list it appears in.

Lengths, sources and the output path come from the config file
(./wordtiers.yaml or --config) and WORDTIERS_* environment variables.

Examples:
  wordtiers                          # same as "wordtiers trim"
  wordtiers check zebra --tier 2
  wordtiers random --length 6
  wordtiers search 'g*e**(s*)[ab]'`,
	Version:           GitVersion,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
	RunE:              runTrim,
}

func init() {
	rootCmd.PersistentFlags().String(config.FlagConfigFile, "", "config file (default is ./wordtiers.yaml)")
	rootCmd.PersistentFlags().Bool(config.ConfigDebug, false, "debug logging")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	if err := cfg.Load(cmd.Flags()); err != nil {
		return err
	}
	setupLogging(cfg.GetBool(config.ConfigDebug))
	log.Debug().Msgf("Loaded config: %v", cfg.SanitizedSettings())
	return cfg.Validate()
}

func setupLogging(debug bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	log.Logger = logger
	logger.Debug().Msg("Debug logging is on")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("wordtiers failed")
		os.Exit(1)
	}
}
