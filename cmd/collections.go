// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vortexdb/vortex-go/pkg/param"
)

func init() {
	rootCmd.AddCommand(collectionsCmd)
	rootCmd.AddCommand(describeCmd)

	statsCmd.Flags().Bool("flush", false, "Flush the collection before counting rows")
	rootCmd.AddCommand(statsCmd)
}

var collectionsCmd = &cobra.Command{
	Use:   "collections [name...]",
	Short: "List collections, or show memory loading state for named ones",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd)
		if err != nil {
			return err
		}
		defer c.Close()
		ctx, cancel := commandContext(cmd)
		defer cancel()

		p, err := param.NewShowCollectionsBuilder().WithCollectionNames(args).Build()
		if err != nil {
			return err
		}
		resp, err := c.ShowCollections(ctx, p)
		if err != nil {
			return err
		}
		for i, name := range resp.CollectionNames {
			if i < len(resp.InMemoryPercentages) {
				fmt.Printf("%s\t%d%%\n", name, resp.InMemoryPercentages[i])
			} else {
				fmt.Println(name)
			}
		}
		return nil
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe <collection>",
	Short: "Show a collection's schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd)
		if err != nil {
			return err
		}
		defer c.Close()
		ctx, cancel := commandContext(cmd)
		defer cancel()

		p, err := param.NewDescribeCollectionBuilder().WithCollectionName(args[0]).Build()
		if err != nil {
			return err
		}
		resp, err := c.DescribeCollection(ctx, p)
		if err != nil {
			return err
		}
		fmt.Printf("collection %s (id %d, %d shards)\n",
			resp.Schema.Name, resp.CollectionID, resp.ShardsNum)
		if resp.Schema.Description != "" {
			fmt.Printf("  %s\n", resp.Schema.Description)
		}
		for _, f := range resp.Schema.Fields {
			line := fmt.Sprintf("  %s\t%s", f.Name, f.DataType)
			if f.PrimaryKey {
				line += "\tprimary"
			}
			if f.AutoID {
				line += "\tauto-id"
			}
			if dim := f.Dimension(); dim > 0 {
				line += fmt.Sprintf("\tdim=%d", dim)
			}
			fmt.Println(line)
		}
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <collection>",
	Short: "Show a collection's row statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd)
		if err != nil {
			return err
		}
		defer c.Close()
		ctx, cancel := commandContext(cmd)
		defer cancel()

		flush, _ := cmd.Flags().GetBool("flush")
		p, err := param.NewGetCollectionStatisticsBuilder().
			WithCollectionName(args[0]).
			WithFlush(flush).
			Build()
		if err != nil {
			return err
		}
		resp, err := c.GetCollectionStatistics(ctx, p)
		if err != nil {
			return err
		}
		for _, kv := range resp.Stats {
			fmt.Printf("%s\t%s\n", kv.Key, kv.Value)
		}
		return nil
	},
}
