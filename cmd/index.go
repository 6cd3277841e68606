// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vortexdb/vortex-go/pkg/param"
)

func init() {
	rootCmd.AddCommand(indexStateCmd)
}

var indexStateCmd = &cobra.Command{
	Use:   "index-state <collection> <field>",
	Short: "Show an index's build state and progress",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd)
		if err != nil {
			return err
		}
		defer c.Close()
		ctx, cancel := commandContext(cmd)
		defer cancel()

		stateParam, err := param.NewGetIndexStateBuilder().
			WithCollectionName(args[0]).
			WithFieldName(args[1]).
			Build()
		if err != nil {
			return err
		}
		state, err := c.GetIndexState(ctx, stateParam)
		if err != nil {
			return err
		}
		fmt.Printf("state: %s\n", state.State)
		if state.FailReason != "" {
			fmt.Printf("fail reason: %s\n", state.FailReason)
		}

		progressParam, err := param.NewGetIndexBuildProgressBuilder().
			WithCollectionName(args[0]).
			Build()
		if err != nil {
			return err
		}
		progress, err := c.GetIndexBuildProgress(ctx, progressParam)
		if err != nil {
			return err
		}
		if progress.TotalRows > 0 {
			fmt.Printf("progress: %d/%d rows\n", progress.IndexedRows, progress.TotalRows)
		}
		return nil
	},
}
