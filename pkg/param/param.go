// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

// Package param contains the request parameter types of the VortexDB client.
//
// Every parameter type is produced by a builder whose Build method validates
// all fields. A successfully built param is immutable; a failed Build returns
// *param.Error and no param object. Operations on client.Client only accept
// built params, so no invalid request can reach the wire.
package param

import (
	"fmt"
	"time"

	"github.com/vortexdb/vortex-go/pkg/entity"
)

// Bounds and defaults for the synchronous waiting mode. Intervals and
// timeouts supplied by callers are validated against these at Build time so
// the poll loop never has to guard against degenerate values.
const (
	DefaultSyncWaitingInterval = 500 * time.Millisecond
	DefaultSyncWaitingTimeout  = 60 * time.Second

	MaxSyncWaitingInterval = 10 * time.Second
	MaxLoadingTimeout      = 300 * time.Second
	MaxFlushingTimeout     = 300 * time.Second
	MaxIndexTimeout        = 600 * time.Second
)

// Error is returned by every builder when validation fails. It always
// indicates a caller-side programming error, never a runtime condition.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return "invalid parameter: " + e.Msg
}

func errorf(format string, args ...any) error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}

func checkName(name, what string) error {
	if name == "" {
		return errorf("%s must not be empty", what)
	}
	return nil
}

func checkNames(names []string, what string) error {
	for i, name := range names {
		if name == "" {
			return errorf("%s[%d] must not be empty", what, i)
		}
	}
	return nil
}

func checkSyncWait(interval, timeout, maxTimeout time.Duration) error {
	if interval <= 0 {
		return errorf("sync waiting interval must be positive, got %v", interval)
	}
	if interval > MaxSyncWaitingInterval {
		return errorf("sync waiting interval must not exceed %v, got %v", MaxSyncWaitingInterval, interval)
	}
	if timeout <= 0 {
		return errorf("sync waiting timeout must be positive, got %v", timeout)
	}
	if timeout > maxTimeout {
		return errorf("sync waiting timeout must not exceed %v, got %v", maxTimeout, timeout)
	}
	return nil
}

func checkFloatVectors(vectors [][]float32, what string) error {
	if len(vectors) == 0 {
		return errorf("%s must not be empty", what)
	}
	dim := len(vectors[0])
	if dim == 0 {
		return errorf("%s[0] has zero dimension", what)
	}
	for i, vec := range vectors {
		if len(vec) != dim {
			return errorf("%s dimension mismatch: %s[%d] has %d elements, expected %d",
				what, what, i, len(vec), dim)
		}
	}
	return nil
}

func checkBinaryVectors(vectors [][]byte, what string) error {
	if len(vectors) == 0 {
		return errorf("%s must not be empty", what)
	}
	dim := len(vectors[0])
	if dim == 0 {
		return errorf("%s[0] has zero length", what)
	}
	for i, vec := range vectors {
		if len(vec) != dim {
			return errorf("%s dimension mismatch: %s[%d] has %d bytes, expected %d",
				what, what, i, len(vec), dim)
		}
	}
	return nil
}

func checkFieldSchema(f entity.FieldSchema) error {
	if f.Name == "" {
		return errorf("field name must not be empty")
	}
	if f.DataType == entity.DataTypeNone {
		return errorf("field %q has no data type", f.Name)
	}
	if f.DataType.IsVector() && f.Dimension() <= 0 {
		return errorf("vector field %q requires a positive %q type param", f.Name, entity.TypeParamDim)
	}
	return nil
}

// syncWait carries the shared sync-mode tunables embedded in the params of
// asynchronous server operations.
type syncWait struct {
	enabled  bool
	interval time.Duration
	timeout  time.Duration
}

func defaultSyncWait() syncWait {
	return syncWait{
		interval: DefaultSyncWaitingInterval,
		timeout:  DefaultSyncWaitingTimeout,
	}
}

func (w syncWait) validate(maxTimeout time.Duration) error {
	if !w.enabled {
		return nil
	}
	return checkSyncWait(w.interval, w.timeout, maxTimeout)
}
