// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/vortexdb/vortex-go/pkg/entity"
	"github.com/vortexdb/vortex-go/pkg/param"
	"github.com/vortexdb/vortex-go/pkg/wire"
)

// Keys under which the index and metric types travel in the extra params,
// alongside the caller's tuning JSON.
const (
	extraParamIndexType  = "index_type"
	extraParamMetricType = "metric_type"
	extraParamParams     = "params"
)

// CreateIndex starts an index build on a vector field. The build is
// asynchronous server-side; in sync mode the call polls the index state and
// returns once it reaches Finished. A Failed state ends the wait immediately
// with a server error carrying the failure reason.
func (c *Client) CreateIndex(ctx context.Context, p *param.CreateIndexParam) error {
	err := invokeStatus(c, ctx, "CreateIndex", func(ctx context.Context) (*wire.Status, error) {
		return c.service.CreateIndex(ctx, &wire.CreateIndexRequest{
			CollectionName: p.CollectionName(),
			FieldName:      p.FieldName(),
			ExtraParams: []wire.KeyValuePair{
				{Key: extraParamIndexType, Value: p.IndexType().String()},
				{Key: extraParamMetricType, Value: p.MetricType().String()},
				{Key: extraParamParams, Value: p.ExtraParam()},
			},
		})
	})
	if err != nil || !p.SyncMode() {
		return err
	}
	return pollUntil(ctx, "CreateIndex", p.SyncWaitingInterval(), p.SyncWaitingTimeout(),
		func(ctx context.Context) (bool, error) {
			resp, err := invoke(c, ctx, "GetIndexState", func(ctx context.Context) (*wire.GetIndexStateResponse, error) {
				return c.service.GetIndexState(ctx, &wire.GetIndexStateRequest{
					CollectionName: p.CollectionName(),
					FieldName:      p.FieldName(),
				})
			}, func(r *wire.GetIndexStateResponse) *wire.Status { return &r.Status })
			if err != nil {
				return false, err
			}
			switch resp.State {
			case entity.IndexStateFinished:
				return true, nil
			case entity.IndexStateFailed:
				reason := resp.FailReason
				if reason == "" {
					reason = "index build failed"
				}
				return false, &Error{Code: CodeServerError, Msg: "CreateIndex: " + reason}
			default:
				return false, nil
			}
		})
}

func (c *Client) DescribeIndex(ctx context.Context, p *param.DescribeIndexParam) (*wire.DescribeIndexResponse, error) {
	return invoke(c, ctx, "DescribeIndex", func(ctx context.Context) (*wire.DescribeIndexResponse, error) {
		return c.service.DescribeIndex(ctx, &wire.DescribeIndexRequest{
			CollectionName: p.CollectionName(),
			FieldName:      p.FieldName(),
		})
	}, func(r *wire.DescribeIndexResponse) *wire.Status { return &r.Status })
}

func (c *Client) GetIndexState(ctx context.Context, p *param.GetIndexStateParam) (*wire.GetIndexStateResponse, error) {
	return invoke(c, ctx, "GetIndexState", func(ctx context.Context) (*wire.GetIndexStateResponse, error) {
		return c.service.GetIndexState(ctx, &wire.GetIndexStateRequest{
			CollectionName: p.CollectionName(),
			FieldName:      p.FieldName(),
		})
	}, func(r *wire.GetIndexStateResponse) *wire.Status { return &r.Status })
}

func (c *Client) GetIndexBuildProgress(ctx context.Context, p *param.GetIndexBuildProgressParam) (*wire.GetIndexBuildProgressResponse, error) {
	return invoke(c, ctx, "GetIndexBuildProgress", func(ctx context.Context) (*wire.GetIndexBuildProgressResponse, error) {
		return c.service.GetIndexBuildProgress(ctx, &wire.GetIndexBuildProgressRequest{
			CollectionName: p.CollectionName(),
		})
	}, func(r *wire.GetIndexBuildProgressResponse) *wire.Status { return &r.Status })
}

func (c *Client) DropIndex(ctx context.Context, p *param.DropIndexParam) error {
	return invokeStatus(c, ctx, "DropIndex", func(ctx context.Context) (*wire.Status, error) {
		return c.service.DropIndex(ctx, &wire.DropIndexRequest{
			CollectionName: p.CollectionName(),
			FieldName:      p.FieldName(),
		})
	})
}
