// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// FlagLoader resolves configuration values with CLI flag precedence. An
// explicitly set flag wins; otherwise viper's priority applies: env >
// config file > default.
type FlagLoader struct {
	cmd *cobra.Command
}

func NewFlagLoader(cmd *cobra.Command) *FlagLoader {
	return &FlagLoader{cmd: cmd}
}

func (f *FlagLoader) String(flagName string) string {
	if f.cmd.Flags().Changed(flagName) {
		val, _ := f.cmd.Flags().GetString(flagName)
		return val
	}
	if viper.IsSet(flagName) {
		return viper.GetString(flagName)
	}
	val, _ := f.cmd.Flags().GetString(flagName)
	return val
}

func (f *FlagLoader) Int(flagName string) int {
	if f.cmd.Flags().Changed(flagName) {
		val, _ := f.cmd.Flags().GetInt(flagName)
		return val
	}
	if viper.IsSet(flagName) {
		return viper.GetInt(flagName)
	}
	val, _ := f.cmd.Flags().GetInt(flagName)
	return val
}

func (f *FlagLoader) Bool(flagName string) bool {
	if f.cmd.Flags().Changed(flagName) {
		val, _ := f.cmd.Flags().GetBool(flagName)
		return val
	}
	if viper.IsSet(flagName) {
		return viper.GetBool(flagName)
	}
	val, _ := f.cmd.Flags().GetBool(flagName)
	return val
}

func (f *FlagLoader) Duration(flagName string) time.Duration {
	if f.cmd.Flags().Changed(flagName) {
		val, _ := f.cmd.Flags().GetDuration(flagName)
		return val
	}
	if viper.IsSet(flagName) {
		return viper.GetDuration(flagName)
	}
	val, _ := f.cmd.Flags().GetDuration(flagName)
	return val
}
