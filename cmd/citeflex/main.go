// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the citeflex CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/caplane/citeflex/internal/secrets"
	"github.com/caplane/citeflex/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if set, otherwise the secret value
// for key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the citeflex CLI.
var rootCmd = &cobra.Command{
	Use:   "citeflex",
	Short: "Classify, enrich, and format citations",
	Long: `citeflex turns raw citation strings into formatted citations. It detects
the citation type (legal, journal, book, medical, interview, newspaper,
government), fills in missing fields from a landmark-case cache and external
metadata APIs, and renders the result in Chicago, APA, MLA, Bluebook, or
OSCOLA style.

Single citations go through the cite subcommand; whole documents go through
process, which renders consecutive repeats as Id./Ibid. shorthand.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./citeflex.yaml or ~/.config/citeflex/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("citeflex")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "citeflex"))
		}
	}

	viper.SetDefault("store.path", "citeflex.db")
	viper.SetDefault("format.style", "chicago")

	viper.SetEnvPrefix("CITEFLEX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig assembles the pipeline configuration from the config
// file, environment, and loaded secrets.
func pipelineConfig() types.PipelineConfig {
	var cfg types.PipelineConfig
	cfg.Enrich.Timeout = viper.GetDuration("enrich.timeout")
	cfg.Enrich.UserAgent = viper.GetString("enrich.user_agent")
	cfg.Enrich.RequestsPerSecond = viper.GetFloat64("enrich.requests_per_second")
	cfg.Enrich.ParallelTimeout = viper.GetDuration("enrich.parallel_timeout")
	cfg.Enrich.MaxWorkers = viper.GetInt("enrich.max_workers")
	cfg.Enrich.PoliteEmail = secretDefault("polite-email", viper.GetString("enrich.polite_email"))
	cfg.Enrich.SemanticScholarAPIKey = secretDefault("semantic-scholar-api-key", viper.GetString("enrich.semantic_scholar_api_key"))
	cfg.Enrich.EnableCourtListener = viper.GetBool("enrich.enable_courtlistener")
	cfg.Enrich.CourtListenerToken = secretDefault("courtlistener-token", viper.GetString("enrich.courtlistener_token"))
	cfg.Store.Path = viper.GetString("store.path")
	cfg.Format.Style = viper.GetString("format.style")
	return cfg
}

// styleFromFlag resolves the --style flag, falling back to the
// configured default.
func styleFromFlag(cmd *cobra.Command) (types.CitationStyle, error) {
	name, _ := cmd.Flags().GetString("style")
	if name == "" {
		name = viper.GetString("format.style")
	}
	return types.ParseStyle(name)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
