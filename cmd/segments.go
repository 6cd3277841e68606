// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vortexdb/vortex-go/pkg/param"
)

func init() {
	segmentsCmd.Flags().Bool("query", false, "Show in-memory query segments instead of storage segments")
	rootCmd.AddCommand(segmentsCmd)
}

var segmentsCmd = &cobra.Command{
	Use:   "segments <collection>",
	Short: "List a collection's segments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd)
		if err != nil {
			return err
		}
		defer c.Close()
		ctx, cancel := commandContext(cmd)
		defer cancel()

		if query, _ := cmd.Flags().GetBool("query"); query {
			p, err := param.NewGetQuerySegmentInfoBuilder().WithCollectionName(args[0]).Build()
			if err != nil {
				return err
			}
			resp, err := c.GetQuerySegmentInfo(ctx, p)
			if err != nil {
				return err
			}
			for _, info := range resp.Infos {
				fmt.Printf("segment %d\t%s rows\t%s\t%s",
					info.SegmentID,
					humanize.Comma(info.NumRows),
					humanize.IBytes(uint64(info.MemSize)),
					info.State)
				if info.IndexName != "" {
					fmt.Printf("\tindex=%s", info.IndexName)
				}
				fmt.Println()
			}
			return nil
		}

		p, err := param.NewGetPersistentSegmentInfoBuilder().WithCollectionName(args[0]).Build()
		if err != nil {
			return err
		}
		resp, err := c.GetPersistentSegmentInfo(ctx, p)
		if err != nil {
			return err
		}
		for _, info := range resp.Infos {
			fmt.Printf("segment %d\t%s rows\t%s\n",
				info.SegmentID, humanize.Comma(info.NumRows), info.State)
		}
		return nil
	},
}
