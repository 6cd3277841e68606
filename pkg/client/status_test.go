// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vortexdb/vortex-go/pkg/param"
	"github.com/vortexdb/vortex-go/pkg/wire"
)

func TestCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "nil", err: nil, want: 0},
		{name: "plain error", err: errors.New("boom"), want: 0},
		{name: "builder error", err: &param.Error{Msg: "bad"}, want: 0},
		{name: "server error", err: serverError("Query", &wire.Status{ErrorCode: 1, Reason: "nope"}), want: CodeServerError},
		{name: "rpc failed", err: rpcFailed("Query", errors.New("refused")), want: CodeRPCFailed},
		{name: "not connected", err: notConnected("Query"), want: CodeNotConnected},
		{name: "timeout", err: timeoutError("Flush", "still flushing"), want: CodeTimeout},
		{name: "wrapped", err: fmt.Errorf("op: %w", notConnected("Query")), want: CodeNotConnected},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	err := serverError("DropCollection", &wire.Status{
		ErrorCode: wire.ErrorCodeCollectionNotExists,
		Reason:    "no such collection",
	})
	assert.Contains(t, err.Error(), "server error")
	assert.Contains(t, err.Error(), "no such collection")

	var ce *Error
	assert.ErrorAs(t, err, &ce)
	assert.Equal(t, wire.ErrorCodeCollectionNotExists, ce.Server)

	cause := errors.New("connection refused")
	err = rpcFailed("Insert", cause)
	assert.ErrorIs(t, err, cause)

	// Reason may be absent; the code still names the operation.
	err = serverError("Insert", &wire.Status{ErrorCode: wire.ErrorCodeUnexpectedError})
	assert.Contains(t, err.Error(), "Insert")
}
