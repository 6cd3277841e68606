// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/vortexdb/vortex-go/pkg/param"
	"github.com/vortexdb/vortex-go/pkg/wire"
)

func (c *Client) CreateAlias(ctx context.Context, p *param.CreateAliasParam) error {
	return invokeStatus(c, ctx, "CreateAlias", func(ctx context.Context) (*wire.Status, error) {
		return c.service.CreateAlias(ctx, &wire.CreateAliasRequest{
			CollectionName: p.CollectionName(),
			Alias:          p.Alias(),
		})
	})
}

func (c *Client) DropAlias(ctx context.Context, p *param.DropAliasParam) error {
	return invokeStatus(c, ctx, "DropAlias", func(ctx context.Context) (*wire.Status, error) {
		return c.service.DropAlias(ctx, &wire.DropAliasRequest{
			Alias: p.Alias(),
		})
	})
}

func (c *Client) AlterAlias(ctx context.Context, p *param.AlterAliasParam) error {
	return invokeStatus(c, ctx, "AlterAlias", func(ctx context.Context) (*wire.Status, error) {
		return c.service.AlterAlias(ctx, &wire.AlterAliasRequest{
			CollectionName: p.CollectionName(),
			Alias:          p.Alias(),
		})
	})
}
