// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv CLI: manuscript lookup,
// the category registry, a local SQLite catalog, and PDF downloads.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/arxiv/internal/logger"
	"github.com/pdiddy/arxiv/pkg/arxiv"
	"github.com/pdiddy/arxiv/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// app carries the configuration and logger shared by subcommands.
type app struct {
	v   *viper.Viper
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "arxiv",
		Short: "Look up arXiv manuscript metadata",
		Long: `arxiv fetches manuscript metadata from the arXiv Atom API: title, abstract,
authors and affiliations, subject categories, and download links.

Each lookup issues exactly one request. Manuscripts can be saved to a local
SQLite catalog, exported as YAML or JSON, and their PDFs downloaded.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initConfig(cmd); err != nil {
				return err
			}
			log, err := logger.New(logger.Config{
				Level:  a.v.GetString("log_level"),
				Format: a.v.GetString("log_format"),
			})
			if err != nil {
				return err
			}
			a.log = log
			if used := a.v.ConfigFileUsed(); used != "" {
				a.log.Info("using config file", zap.String("path", used))
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./arxiv.yaml or ~/.config/arxiv/arxiv.yaml)")
	pf.String("base-url", types.DefaultBaseURL, "arXiv Atom query endpoint")
	pf.String("user-agent", types.DefaultUserAgent, "User-Agent header for HTTP requests")
	pf.Duration("timeout", types.DefaultTimeout, "HTTP request timeout")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	pf.String("log-format", "console", "log format: console or json")
	pf.String("catalog", "arxiv.db", "path to the SQLite catalog")

	for key, flag := range map[string]string{
		"base_url":   "base-url",
		"user_agent": "user-agent",
		"timeout":    "timeout",
		"log_level":  "log-level",
		"log_format": "log-format",
		"catalog":    "catalog",
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(flag))
	}

	rootCmd.AddCommand(
		newGetCmd(a),
		newCategoriesCmd(a),
		newSaveCmd(a),
		newListCmd(a),
		newExportCmd(a),
		newRemoveCmd(a),
		newDownloadCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func (a *app) initConfig(cmd *cobra.Command) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
	} else {
		a.v.SetConfigName("arxiv")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", "arxiv"))
		}
	}

	a.v.SetEnvPrefix("ARXIV")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one must exist.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	return nil
}

func (a *app) clientConfig() types.ClientConfig {
	return types.ClientConfig{
		HTTPConfig: a.httpConfig(),
		BaseURL:    a.v.GetString("base_url"),
	}.WithDefaults()
}

func (a *app) httpConfig() types.HTTPConfig {
	return types.HTTPConfig{
		Timeout:   a.v.GetDuration("timeout"),
		UserAgent: a.v.GetString("user_agent"),
	}
}

func (a *app) client() *arxiv.Client {
	return arxiv.NewClient(a.clientConfig(), a.log)
}

func (a *app) httpClient() *http.Client {
	return &http.Client{Timeout: a.clientConfig().Timeout}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
