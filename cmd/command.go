// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

// Package cmd implements the vortexctl command line client. Connection
// settings come from flags, VORTEX_* environment variables or a config
// file, with explicitly set flags taking precedence.
package cmd

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vortexdb/vortex-go/pkg/client"
	"github.com/vortexdb/vortex-go/pkg/debug"
	"github.com/vortexdb/vortex-go/pkg/logger"
	"github.com/vortexdb/vortex-go/pkg/param"
)

var rootCmd = &cobra.Command{
	Use:   "vortexctl",
	Short: "vortexctl - VortexDB command line client",
	Long: `vortexctl talks to a VortexDB vector database service.
It covers day-to-day administration: inspecting collections, partitions,
segments and indexes, flushing data and pulling server metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var cfgFile string

func init() {
	cobra.OnInitialize(loadConfigFile)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./.vortexctl.yaml, then $HOME/.vortexctl.yaml)")
	rootCmd.PersistentFlags().String("host", "localhost", "VortexDB server host")
	rootCmd.PersistentFlags().Int("port", 19530, "VortexDB server port")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "Per-command timeout")
	rootCmd.PersistentFlags().String("log_level", "warn", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().String("debug_addr", "", "Serve /metrics and pprof on this address (disabled when empty)")

	viper.SetEnvPrefix("vortex")
	viper.AutomaticEnv()
}

// loadConfigFile reads the optional config file into viper. Running without
// one is normal; a file that exists but does not parse is reported and
// skipped rather than aborting the command.
func loadConfigFile() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".vortexctl")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			logger.Warn().Err(err).Msg("config file not loaded")
		}
		return
	}
	logger.Debug().Str("file", viper.ConfigFileUsed()).Msg("config file loaded")
}

// connect builds a client from the resolved connection settings.
func connect(cmd *cobra.Command) (*client.Client, error) {
	flags := NewFlagLoader(cmd)
	if level, err := zerolog.ParseLevel(flags.String("log_level")); err == nil {
		logger.SetLevel(level)
	}
	if addr := flags.String("debug_addr"); addr != "" {
		debug.Serve(addr)
	}

	p, err := param.NewConnectBuilder().
		WithHost(flags.String("host")).
		WithPort(flags.Int("port")).
		Build()
	if err != nil {
		return nil, err
	}
	return client.New(p)
}

// commandContext returns the context every subcommand runs under.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), NewFlagLoader(cmd).Duration("timeout"))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
