// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package param

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectBuilder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		build   func() *ConnectBuilder
		wantErr bool
	}{
		{
			name:  "defaults",
			build: NewConnectBuilder,
		},
		{
			name: "custom address",
			build: func() *ConnectBuilder {
				return NewConnectBuilder().WithHost("db.internal").WithPort(443)
			},
		},
		{
			name: "empty host",
			build: func() *ConnectBuilder {
				return NewConnectBuilder().WithHost("")
			},
			wantErr: true,
		},
		{
			name: "zero port",
			build: func() *ConnectBuilder {
				return NewConnectBuilder().WithPort(0)
			},
			wantErr: true,
		},
		{
			name: "port out of range",
			build: func() *ConnectBuilder {
				return NewConnectBuilder().WithPort(70000)
			},
			wantErr: true,
		},
		{
			name: "negative keepalive",
			build: func() *ConnectBuilder {
				return NewConnectBuilder().WithKeepAliveTime(-time.Second)
			},
			wantErr: true,
		},
		{
			name: "zero connect timeout",
			build: func() *ConnectBuilder {
				return NewConnectBuilder().WithConnectTimeout(0)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := tt.build().Build()
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, p)
		})
	}

	t.Run("address formatting", func(t *testing.T) {
		t.Parallel()

		p, err := NewConnectBuilder().WithHost("db.internal").WithPort(19530).Build()
		require.NoError(t, err)
		assert.Equal(t, "db.internal:19530", p.Address())
	})

	t.Run("default endpoint", func(t *testing.T) {
		t.Parallel()

		p, err := NewConnectBuilder().Build()
		require.NoError(t, err)
		assert.Equal(t, "localhost:19530", p.Address())
		assert.Equal(t, DefaultKeepAliveTime, p.KeepAliveTime())
	})
}
