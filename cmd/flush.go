// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vortexdb/vortex-go/pkg/param"
)

func init() {
	flushCmd.Flags().Bool("sync", false, "Wait until all segments report flushed")
	rootCmd.AddCommand(flushCmd)
}

var flushCmd = &cobra.Command{
	Use:   "flush <collection>...",
	Short: "Seal the named collections' growing segments",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd)
		if err != nil {
			return err
		}
		defer c.Close()
		ctx, cancel := commandContext(cmd)
		defer cancel()

		sync, _ := cmd.Flags().GetBool("sync")
		p, err := param.NewFlushBuilder().
			WithCollectionNames(args).
			WithSyncFlush(sync).
			Build()
		if err != nil {
			return err
		}
		resp, err := c.Flush(ctx, p)
		if err != nil {
			return err
		}
		for name, segs := range resp.CollSegIDs {
			fmt.Printf("%s: %d segments\n", name, len(segs))
		}
		return nil
	},
}
