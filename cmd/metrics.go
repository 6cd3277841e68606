// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vortexdb/vortex-go/pkg/param"
)

func init() {
	metricsCmd.Flags().String("request", `{"metric_type":"system_info"}`, "Metrics request JSON")
	rootCmd.AddCommand(metricsCmd)
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Fetch server runtime metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := connect(cmd)
		if err != nil {
			return err
		}
		defer c.Close()
		ctx, cancel := commandContext(cmd)
		defer cancel()

		request, _ := cmd.Flags().GetString("request")
		p, err := param.NewGetMetricsBuilder().WithRequest(request).Build()
		if err != nil {
			return err
		}
		resp, err := c.GetMetrics(ctx, p)
		if err != nil {
			return err
		}
		if resp.ComponentName != "" {
			fmt.Printf("component: %s\n", resp.ComponentName)
		}
		fmt.Println(resp.Response)
		return nil
	},
}
