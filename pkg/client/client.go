// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

// Package client implements the VortexDB client. A Client wraps one gRPC
// channel; operations validate nothing themselves because they only accept
// params already validated by their builders, so the code here is concerned
// with transport, outcome classification and synchronous waiting.
package client

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/metadata"

	"github.com/vortexdb/vortex-go/pkg/logger"
	"github.com/vortexdb/vortex-go/pkg/param"
	"github.com/vortexdb/vortex-go/pkg/wire"
)

const maxMessageSize = 64 << 20

// Client is a handle to one VortexDB service. It is safe for concurrent use.
// Close is terminal: a closed client fails every subsequent operation with
// CodeNotConnected and is never reopened.
type Client struct {
	conn    *grpc.ClientConn
	service wire.VortexServiceClient
	closed  atomic.Bool
}

// New connects to the address in p and returns a ready client. Dialing is
// lazy, so New succeeds even when the server is down; the first operation
// reports the transport failure.
func New(p *param.ConnectParam) (*Client, error) {
	conn, err := grpc.NewClient(p.Address(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithConnectParams(grpc.ConnectParams{
			Backoff:           backoff.DefaultConfig,
			MinConnectTimeout: p.ConnectTimeout(),
		}),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                p.KeepAliveTime(),
			Timeout:             p.KeepAliveTimeout(),
			PermitWithoutStream: p.KeepAliveWithoutCalls(),
		}),
		grpc.WithIdleTimeout(p.IdleTimeout()),
		grpc.WithDefaultCallOptions(
			grpc.ForceCodec(wire.Codec()),
			grpc.MaxCallRecvMsgSize(maxMessageSize),
			grpc.MaxCallSendMsgSize(maxMessageSize),
		),
		grpc.WithUnaryInterceptor(requestIDUnaryInterceptor()),
	)
	if err != nil {
		return nil, rpcFailed("connect to "+p.Address(), err)
	}
	logger.Info().Str("address", p.Address()).Msg("vortex client created")
	return &Client{
		conn:    conn,
		service: wire.NewVortexServiceClient(conn),
	}, nil
}

// Close releases the underlying connection. It is idempotent; only the first
// call closes the channel.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	logger.Info().Msg("vortex client closed")
	return c.conn.Close()
}

// ready gates every operation on the open/closed state.
func (c *Client) ready(op string) error {
	if c.closed.Load() {
		return notConnected(op)
	}
	return nil
}

// requestIDUnaryInterceptor stamps each outgoing call with a unique request
// id so client and server logs can be correlated.
func requestIDUnaryInterceptor() grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any,
		cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		ctx = metadata.AppendToOutgoingContext(ctx, "x-request-id", uuid.NewString())
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// observe records the outcome of one RPC in the client metrics and debug log.
func observe(op string, start time.Time, err error) {
	elapsed := time.Since(start)
	rpcDuration.WithLabelValues(op).Observe(elapsed.Seconds())
	switch Code(err) {
	case 0:
		rpcTotal.WithLabelValues(op, outcomeOK).Inc()
		logger.Debug().Str("op", op).Dur("elapsed", elapsed).Msg("rpc ok")
	case CodeServerError:
		rpcTotal.WithLabelValues(op, outcomeServerError).Inc()
		logger.Warn().Str("op", op).Err(err).Msg("rpc rejected by server")
	default:
		rpcTotal.WithLabelValues(op, outcomeRPCFailed).Inc()
		logger.Warn().Str("op", op).Err(err).Msg("rpc failed")
	}
}
