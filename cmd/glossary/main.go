// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the glossary CLI. It answers
// acronym queries from JSON or CSV glossaries in English and Spanish.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/glossary-engine/internal/logging"
	"github.com/pdiddy/glossary-engine/internal/lookup"
	"github.com/pdiddy/glossary-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is configured in PersistentPreRunE from --log-level and config.
var logger = logging.Nop()

// rootCmd is the base command for the glossary CLI.
var rootCmd = &cobra.Command{
	Use:   "glossary",
	Short: "Look up acronym definitions from a glossary",
	Long: `glossary answers acronym queries from a glossary loaded from a JSON or CSV
file. Lookups are case-insensitive; unknown acronyms get "did you mean"
suggestions based on string similarity. Each language (english, spanish) is
answered from its own glossary file, configured in glossary.yaml.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := viper.GetString("log_level")
		if cmd.Flags().Changed("log-level") {
			level, _ = cmd.Flags().GetString("log-level")
		}
		logger = logging.NewConsole(level)
		if used := viper.ConfigFileUsed(); used != "" {
			logger.Debug().Str("path", used).Msg("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./glossary.yaml or ~/.config/glossary/glossary.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringP("glossary", "g", "", "glossary file; overrides the configured glossary for --language")
	rootCmd.PersistentFlags().String("file-type", "", "glossary file type: json or csv (default: from the file extension)")
	rootCmd.PersistentFlags().Bool("preprocess", false, "treat a JSON glossary as pre-aggregated (acronym to definitions)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("glossary")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "glossary"))
		}
	}

	viper.SetEnvPrefix("GLOSSARY")
	viper.AutomaticEnv()

	viper.SetDefault("similarity", types.DisabledSimilarity)
	viper.SetDefault("log_level", "warn")
	viper.SetDefault("default_language", string(types.English))

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "warning: reading config:", err)
		}
	}
}

// botConfig assembles the engine config from viper and the command's
// flags. Flags win over the config file.
func botConfig(cmd *cobra.Command, lang types.Language) (types.BotConfig, error) {
	cfg := types.DefaultBotConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}

	if path, _ := cmd.Flags().GetString("glossary"); path != "" {
		fileType, _ := cmd.Flags().GetString("file-type")
		if fileType == "" {
			fileType = fileTypeFromPath(path)
		}
		preprocess, _ := cmd.Flags().GetBool("preprocess")
		if cfg.Languages == nil {
			cfg.Languages = make(map[types.Language]types.GlossaryConfig)
		}
		cfg.Languages[lang] = types.GlossaryConfig{
			Path:       path,
			FileType:   types.FileType(fileType),
			Preprocess: preprocess,
		}
		if _, ok := cfg.Languages[cfg.DefaultLanguage]; !ok {
			cfg.DefaultLanguage = lang
		}
	}

	if f := cmd.Flags().Lookup("similarity"); f != nil && f.Changed {
		cfg.Similarity, _ = cmd.Flags().GetFloat64("similarity")
	}

	cfg.Normalize()
	return cfg, cfg.Validate()
}

// openService loads the configured glossaries.
func openService(cmd *cobra.Command, lang types.Language) (*lookup.Service, error) {
	cfg, err := botConfig(cmd, lang)
	if err != nil {
		return nil, err
	}
	return lookup.Open(cfg, logger)
}

// languageFlag reads --language, defaulting to the configured language.
func languageFlag(cmd *cobra.Command) types.Language {
	s, _ := cmd.Flags().GetString("language")
	if s == "" {
		s = viper.GetString("default_language")
	}
	return types.ParseLanguage(s)
}

func fileTypeFromPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return string(types.FileTypeCSV)
	case ".json":
		return string(types.FileTypeJSON)
	default:
		return ext
	}
}

// loggerFor is used by commands that log outside a Service.
func loggerFor(cmd *cobra.Command) zerolog.Logger {
	return logger.With().Str("command", cmd.Name()).Logger()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
