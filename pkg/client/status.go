// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"errors"
	"fmt"

	"github.com/vortexdb/vortex-go/pkg/wire"
)

// ErrorCode classifies a failed operation. The zero value is reserved so an
// accidentally zeroed error never reads as a real classification.
type ErrorCode int

const (
	// CodeServerError means the request reached the server and the server
	// rejected it. The transport is healthy; retrying the same request
	// without changing it will fail again.
	CodeServerError ErrorCode = iota + 1

	// CodeRPCFailed means the request may not have reached the server:
	// connection refused, broken stream, deadline exceeded in transit.
	// Whether the server executed it is unknown.
	CodeRPCFailed

	// CodeNotConnected means the client was closed before the call. The
	// request was never sent.
	CodeNotConnected

	// CodeTimeout means a synchronous wait exhausted its budget while the
	// server kept answering probes normally. The underlying request was
	// accepted and is still progressing server-side.
	CodeTimeout
)

func (c ErrorCode) String() string {
	switch c {
	case CodeServerError:
		return "server error"
	case CodeRPCFailed:
		return "rpc failed"
	case CodeNotConnected:
		return "client not connected"
	case CodeTimeout:
		return "sync waiting timeout"
	default:
		return fmt.Sprintf("error code %d", int(c))
	}
}

// Error is the failure type returned by every client operation. Cause is set
// for transport failures and carries the underlying gRPC error.
type Error struct {
	Code   ErrorCode
	Msg    string
	Cause  error
	Server wire.ErrorCode
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Code extracts the classification from an operation error. It returns zero
// for nil and for errors that did not originate from this package, such as
// *param.Error from a builder.
func Code(err error) ErrorCode {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return 0
}

func serverError(op string, status *wire.Status) error {
	msg := status.Reason
	if msg == "" {
		msg = fmt.Sprintf("%s rejected with code %d", op, status.ErrorCode)
	}
	return &Error{Code: CodeServerError, Msg: op + ": " + msg, Server: status.ErrorCode}
}

func rpcFailed(op string, cause error) error {
	return &Error{Code: CodeRPCFailed, Msg: op, Cause: cause}
}

func notConnected(op string) error {
	return &Error{Code: CodeNotConnected, Msg: op}
}

func timeoutError(op string, msg string) error {
	return &Error{Code: CodeTimeout, Msg: op + ": " + msg}
}
