// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/vortexdb/vortex-go/pkg/param"
	"github.com/vortexdb/vortex-go/pkg/wire"
)

func (c *Client) GetMetrics(ctx context.Context, p *param.GetMetricsParam) (*wire.GetMetricsResponse, error) {
	return invoke(c, ctx, "GetMetrics", func(ctx context.Context) (*wire.GetMetricsResponse, error) {
		return c.service.GetMetrics(ctx, &wire.GetMetricsRequest{
			Request: p.Request(),
		})
	}, func(r *wire.GetMetricsResponse) *wire.Status { return &r.Status })
}

func (c *Client) GetPersistentSegmentInfo(ctx context.Context, p *param.GetPersistentSegmentInfoParam) (*wire.GetPersistentSegmentInfoResponse, error) {
	return invoke(c, ctx, "GetPersistentSegmentInfo", func(ctx context.Context) (*wire.GetPersistentSegmentInfoResponse, error) {
		return c.service.GetPersistentSegmentInfo(ctx, &wire.GetPersistentSegmentInfoRequest{
			CollectionName: p.CollectionName(),
		})
	}, func(r *wire.GetPersistentSegmentInfoResponse) *wire.Status { return &r.Status })
}

func (c *Client) GetQuerySegmentInfo(ctx context.Context, p *param.GetQuerySegmentInfoParam) (*wire.GetQuerySegmentInfoResponse, error) {
	return invoke(c, ctx, "GetQuerySegmentInfo", func(ctx context.Context) (*wire.GetQuerySegmentInfoResponse, error) {
		return c.service.GetQuerySegmentInfo(ctx, &wire.GetQuerySegmentInfoRequest{
			CollectionName: p.CollectionName(),
		})
	}, func(r *wire.GetQuerySegmentInfoResponse) *wire.Status { return &r.Status })
}
