// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"time"

	"github.com/vortexdb/vortex-go/pkg/wire"
)

// invoke runs one RPC and classifies its outcome. Transport failures become
// CodeRPCFailed, non-success service statuses become CodeServerError, and a
// closed client short-circuits to CodeNotConnected before anything is sent.
// The returned payload is non-nil exactly when the error is nil.
func invoke[Resp any](c *Client, ctx context.Context, op string,
	call func(context.Context) (*Resp, error), status func(*Resp) *wire.Status) (*Resp, error) {
	if err := c.ready(op); err != nil {
		return nil, err
	}
	start := time.Now()
	resp, err := call(ctx)
	if err != nil {
		err = rpcFailed(op, err)
		observe(op, start, err)
		return nil, err
	}
	if st := status(resp); !st.OK() {
		err = serverError(op, st)
		observe(op, start, err)
		return nil, err
	}
	observe(op, start, nil)
	return resp, nil
}

// invokeStatus is invoke for operations whose whole response is a Status.
func invokeStatus(c *Client, ctx context.Context, op string,
	call func(context.Context) (*wire.Status, error)) error {
	_, err := invoke(c, ctx, op, call, func(s *wire.Status) *wire.Status { return s })
	return err
}
