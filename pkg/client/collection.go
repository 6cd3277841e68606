// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"time"

	"github.com/vortexdb/vortex-go/pkg/entity"
	"github.com/vortexdb/vortex-go/pkg/param"
	"github.com/vortexdb/vortex-go/pkg/wire"
)

// CreateCollection creates a collection from the param's field schemas. The
// collection-level autoID flag is derived from the primary key field.
func (c *Client) CreateCollection(ctx context.Context, p *param.CreateCollectionParam) error {
	schema := entity.CollectionSchema{
		Name:        p.CollectionName(),
		Description: p.Description(),
		Fields:      p.Fields(),
	}
	for _, f := range schema.Fields {
		if f.PrimaryKey && f.AutoID {
			schema.AutoID = true
		}
	}
	return invokeStatus(c, ctx, "CreateCollection", func(ctx context.Context) (*wire.Status, error) {
		return c.service.CreateCollection(ctx, &wire.CreateCollectionRequest{
			CollectionName: p.CollectionName(),
			Schema:         schema,
			ShardsNum:      p.ShardsNum(),
		})
	})
}

func (c *Client) DropCollection(ctx context.Context, p *param.DropCollectionParam) error {
	return invokeStatus(c, ctx, "DropCollection", func(ctx context.Context) (*wire.Status, error) {
		return c.service.DropCollection(ctx, &wire.DropCollectionRequest{
			CollectionName: p.CollectionName(),
		})
	})
}

func (c *Client) HasCollection(ctx context.Context, p *param.HasCollectionParam) (bool, error) {
	resp, err := invoke(c, ctx, "HasCollection", func(ctx context.Context) (*wire.BoolResponse, error) {
		return c.service.HasCollection(ctx, &wire.HasCollectionRequest{
			CollectionName: p.CollectionName(),
		})
	}, func(r *wire.BoolResponse) *wire.Status { return &r.Status })
	if err != nil {
		return false, err
	}
	return resp.Value, nil
}

func (c *Client) DescribeCollection(ctx context.Context, p *param.DescribeCollectionParam) (*wire.DescribeCollectionResponse, error) {
	return invoke(c, ctx, "DescribeCollection", func(ctx context.Context) (*wire.DescribeCollectionResponse, error) {
		return c.service.DescribeCollection(ctx, &wire.DescribeCollectionRequest{
			CollectionName: p.CollectionName(),
		})
	}, func(r *wire.DescribeCollectionResponse) *wire.Status { return &r.Status })
}

// GetCollectionStatistics returns the collection's row statistics. With the
// flush option set it first flushes the collection and waits for its
// segments to seal, so rows still in growing segments are counted.
func (c *Client) GetCollectionStatistics(ctx context.Context, p *param.GetCollectionStatisticsParam) (*wire.GetCollectionStatisticsResponse, error) {
	if p.Flush() {
		flushResp, err := invoke(c, ctx, "Flush", func(ctx context.Context) (*wire.FlushResponse, error) {
			return c.service.Flush(ctx, &wire.FlushRequest{
				CollectionNames: []string{p.CollectionName()},
			})
		}, func(r *wire.FlushResponse) *wire.Status { return &r.Status })
		if err != nil {
			return nil, err
		}
		segIDs := flushResp.CollSegIDs[p.CollectionName()]
		if err := c.waitForFlushed(ctx, p.CollectionName(), segIDs, p.FlushInterval(), p.FlushTimeout()); err != nil {
			return nil, err
		}
	}
	return invoke(c, ctx, "GetCollectionStatistics", func(ctx context.Context) (*wire.GetCollectionStatisticsResponse, error) {
		return c.service.GetCollectionStatistics(ctx, &wire.GetCollectionStatisticsRequest{
			CollectionName: p.CollectionName(),
		})
	}, func(r *wire.GetCollectionStatisticsResponse) *wire.Status { return &r.Status })
}

func (c *Client) ShowCollections(ctx context.Context, p *param.ShowCollectionsParam) (*wire.ShowCollectionsResponse, error) {
	return invoke(c, ctx, "ShowCollections", func(ctx context.Context) (*wire.ShowCollectionsResponse, error) {
		return c.service.ShowCollections(ctx, &wire.ShowCollectionsRequest{
			Type:            p.ShowType(),
			CollectionNames: p.CollectionNames(),
		})
	}, func(r *wire.ShowCollectionsResponse) *wire.Status { return &r.Status })
}

// LoadCollection asks the server to load the collection into memory. In sync
// mode it then polls the reported in-memory percentage until it reaches 100.
func (c *Client) LoadCollection(ctx context.Context, p *param.LoadCollectionParam) error {
	err := invokeStatus(c, ctx, "LoadCollection", func(ctx context.Context) (*wire.Status, error) {
		return c.service.LoadCollection(ctx, &wire.LoadCollectionRequest{
			CollectionName: p.CollectionName(),
		})
	})
	if err != nil || !p.SyncLoad() {
		return err
	}
	return pollUntil(ctx, "LoadCollection", p.SyncLoadWaitingInterval(), p.SyncLoadWaitingTimeout(),
		func(ctx context.Context) (bool, error) {
			resp, err := invoke(c, ctx, "ShowCollections", func(ctx context.Context) (*wire.ShowCollectionsResponse, error) {
				return c.service.ShowCollections(ctx, &wire.ShowCollectionsRequest{
					Type:            entity.ShowTypeInMemory,
					CollectionNames: []string{p.CollectionName()},
				})
			}, func(r *wire.ShowCollectionsResponse) *wire.Status { return &r.Status })
			if err != nil {
				return false, err
			}
			return fullyInMemory(resp.InMemoryPercentages, 1), nil
		})
}

func (c *Client) ReleaseCollection(ctx context.Context, p *param.ReleaseCollectionParam) error {
	return invokeStatus(c, ctx, "ReleaseCollection", func(ctx context.Context) (*wire.Status, error) {
		return c.service.ReleaseCollection(ctx, &wire.ReleaseCollectionRequest{
			CollectionName: p.CollectionName(),
		})
	})
}

// Flush seals the named collections' growing segments. In sync mode it polls
// each collection until the segments the flush sealed all report Flushed.
func (c *Client) Flush(ctx context.Context, p *param.FlushParam) (*wire.FlushResponse, error) {
	resp, err := invoke(c, ctx, "Flush", func(ctx context.Context) (*wire.FlushResponse, error) {
		return c.service.Flush(ctx, &wire.FlushRequest{
			CollectionNames: p.CollectionNames(),
		})
	}, func(r *wire.FlushResponse) *wire.Status { return &r.Status })
	if err != nil {
		return nil, err
	}
	if p.SyncFlush() {
		for _, name := range p.CollectionNames() {
			if err := c.waitForFlushed(ctx, name, resp.CollSegIDs[name], p.SyncFlushWaitingInterval(), p.SyncFlushWaitingTimeout()); err != nil {
				return nil, err
			}
		}
	}
	return resp, nil
}

// waitForFlushed polls the collection's persistent segments until every
// segment named in segmentIDs reports Flushed. Segments outside that set may
// still be growing from concurrent writers and do not block completion. A
// flush that sealed no segments counts as flushed.
func (c *Client) waitForFlushed(ctx context.Context, collection string, segmentIDs []int64, interval, timeout time.Duration) error {
	pending := make(map[int64]struct{}, len(segmentIDs))
	for _, id := range segmentIDs {
		pending[id] = struct{}{}
	}
	return pollUntil(ctx, "Flush", interval, timeout, func(ctx context.Context) (bool, error) {
		resp, err := invoke(c, ctx, "GetPersistentSegmentInfo", func(ctx context.Context) (*wire.GetPersistentSegmentInfoResponse, error) {
			return c.service.GetPersistentSegmentInfo(ctx, &wire.GetPersistentSegmentInfoRequest{
				CollectionName: collection,
			})
		}, func(r *wire.GetPersistentSegmentInfoResponse) *wire.Status { return &r.Status })
		if err != nil {
			return false, err
		}
		for _, info := range resp.Infos {
			if _, ok := pending[info.SegmentID]; ok && info.State != entity.SegmentStateFlushed {
				return false, nil
			}
		}
		return true, nil
	})
}

// fullyInMemory reports whether the percentages describe want entities all
// loaded to 100.
func fullyInMemory(percentages []int64, want int) bool {
	if len(percentages) < want {
		return false
	}
	for _, pct := range percentages {
		if pct < 100 {
			return false
		}
	}
	return true
}
