// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/vortexdb/vortex-go/pkg/logger"
)

// pollUntil drives a synchronous wait. It runs probe immediately, then once
// per interval, until probe reports done or the timeout budget elapses.
//
// A probe error ends the wait at once with that error, so a dying server or
// a rejected status surfaces immediately instead of burning the budget. An
// exhausted budget returns CodeTimeout, which only means "still in
// progress": the operation being waited on was accepted and continues
// server-side.
func pollUntil(ctx context.Context, op string, interval, timeout time.Duration,
	probe func(context.Context) (bool, error)) error {
	deadline := time.Now().Add(timeout)
	for {
		done, err := probe(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if !time.Now().Before(deadline) {
			logger.Warn().Str("op", op).Dur("timeout", timeout).Msg("sync waiting budget exhausted")
			return timeoutError(op, fmt.Sprintf("not complete within %v", timeout))
		}
		select {
		case <-ctx.Done():
			return rpcFailed(op, ctx.Err())
		case <-time.After(interval):
		}
	}
}
