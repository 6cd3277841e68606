// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/vortexdb/vortex-go/pkg/entity"
	"github.com/vortexdb/vortex-go/pkg/param"
	"github.com/vortexdb/vortex-go/pkg/wire"
)

func (c *Client) CreatePartition(ctx context.Context, p *param.CreatePartitionParam) error {
	return invokeStatus(c, ctx, "CreatePartition", func(ctx context.Context) (*wire.Status, error) {
		return c.service.CreatePartition(ctx, &wire.CreatePartitionRequest{
			CollectionName: p.CollectionName(),
			PartitionName:  p.PartitionName(),
		})
	})
}

func (c *Client) DropPartition(ctx context.Context, p *param.DropPartitionParam) error {
	return invokeStatus(c, ctx, "DropPartition", func(ctx context.Context) (*wire.Status, error) {
		return c.service.DropPartition(ctx, &wire.DropPartitionRequest{
			CollectionName: p.CollectionName(),
			PartitionName:  p.PartitionName(),
		})
	})
}

func (c *Client) HasPartition(ctx context.Context, p *param.HasPartitionParam) (bool, error) {
	resp, err := invoke(c, ctx, "HasPartition", func(ctx context.Context) (*wire.BoolResponse, error) {
		return c.service.HasPartition(ctx, &wire.HasPartitionRequest{
			CollectionName: p.CollectionName(),
			PartitionName:  p.PartitionName(),
		})
	}, func(r *wire.BoolResponse) *wire.Status { return &r.Status })
	if err != nil {
		return false, err
	}
	return resp.Value, nil
}

// LoadPartitions asks the server to load the named partitions. In sync mode
// it polls until every requested partition reports 100 percent in memory.
func (c *Client) LoadPartitions(ctx context.Context, p *param.LoadPartitionsParam) error {
	err := invokeStatus(c, ctx, "LoadPartitions", func(ctx context.Context) (*wire.Status, error) {
		return c.service.LoadPartitions(ctx, &wire.LoadPartitionsRequest{
			CollectionName: p.CollectionName(),
			PartitionNames: p.PartitionNames(),
		})
	})
	if err != nil || !p.SyncLoad() {
		return err
	}
	return pollUntil(ctx, "LoadPartitions", p.SyncLoadWaitingInterval(), p.SyncLoadWaitingTimeout(),
		func(ctx context.Context) (bool, error) {
			resp, err := invoke(c, ctx, "ShowPartitions", func(ctx context.Context) (*wire.ShowPartitionsResponse, error) {
				return c.service.ShowPartitions(ctx, &wire.ShowPartitionsRequest{
					CollectionName: p.CollectionName(),
					PartitionNames: p.PartitionNames(),
					Type:           entity.ShowTypeInMemory,
				})
			}, func(r *wire.ShowPartitionsResponse) *wire.Status { return &r.Status })
			if err != nil {
				return false, err
			}
			return fullyInMemory(resp.InMemoryPercentages, len(p.PartitionNames())), nil
		})
}

func (c *Client) ReleasePartitions(ctx context.Context, p *param.ReleasePartitionsParam) error {
	return invokeStatus(c, ctx, "ReleasePartitions", func(ctx context.Context) (*wire.Status, error) {
		return c.service.ReleasePartitions(ctx, &wire.ReleasePartitionsRequest{
			CollectionName: p.CollectionName(),
			PartitionNames: p.PartitionNames(),
		})
	})
}

func (c *Client) GetPartitionStatistics(ctx context.Context, p *param.GetPartitionStatisticsParam) (*wire.GetPartitionStatisticsResponse, error) {
	return invoke(c, ctx, "GetPartitionStatistics", func(ctx context.Context) (*wire.GetPartitionStatisticsResponse, error) {
		return c.service.GetPartitionStatistics(ctx, &wire.GetPartitionStatisticsRequest{
			CollectionName: p.CollectionName(),
			PartitionName:  p.PartitionName(),
		})
	}, func(r *wire.GetPartitionStatisticsResponse) *wire.Status { return &r.Status })
}

func (c *Client) ShowPartitions(ctx context.Context, p *param.ShowPartitionsParam) (*wire.ShowPartitionsResponse, error) {
	return invoke(c, ctx, "ShowPartitions", func(ctx context.Context) (*wire.ShowPartitionsResponse, error) {
		return c.service.ShowPartitions(ctx, &wire.ShowPartitionsRequest{
			CollectionName: p.CollectionName(),
			PartitionNames: p.PartitionNames(),
			Type:           p.ShowType(),
		})
	}, func(r *wire.ShowPartitionsResponse) *wire.Status { return &r.Status })
}
