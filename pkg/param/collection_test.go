// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package param

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vortexdb/vortex-go/pkg/entity"
)

func vectorField(name string, dim string) entity.FieldSchema {
	return entity.FieldSchema{
		Name:       name,
		DataType:   entity.DataTypeFloatVector,
		TypeParams: map[string]string{entity.TypeParamDim: dim},
	}
}

func TestCreateCollectionBuilder(t *testing.T) {
	t.Parallel()

	idField := entity.FieldSchema{
		Name:       "id",
		DataType:   entity.DataTypeInt64,
		PrimaryKey: true,
	}

	tests := []struct {
		name    string
		build   func() *CreateCollectionBuilder
		wantErr bool
	}{
		{
			name: "valid",
			build: func() *CreateCollectionBuilder {
				return NewCreateCollectionBuilder().
					WithCollectionName("books").
					AddField(idField).
					AddField(vectorField("embedding", "128"))
			},
		},
		{
			name: "empty collection name",
			build: func() *CreateCollectionBuilder {
				return NewCreateCollectionBuilder().AddField(idField)
			},
			wantErr: true,
		},
		{
			name: "no fields",
			build: func() *CreateCollectionBuilder {
				return NewCreateCollectionBuilder().WithCollectionName("books")
			},
			wantErr: true,
		},
		{
			name: "zero shards",
			build: func() *CreateCollectionBuilder {
				return NewCreateCollectionBuilder().
					WithCollectionName("books").
					WithShardsNum(0).
					AddField(idField)
			},
			wantErr: true,
		},
		{
			name: "field without data type",
			build: func() *CreateCollectionBuilder {
				return NewCreateCollectionBuilder().
					WithCollectionName("books").
					AddField(entity.FieldSchema{Name: "broken"})
			},
			wantErr: true,
		},
		{
			name: "vector field without dim",
			build: func() *CreateCollectionBuilder {
				return NewCreateCollectionBuilder().
					WithCollectionName("books").
					AddField(entity.FieldSchema{Name: "embedding", DataType: entity.DataTypeFloatVector})
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
				var perr *Error
				assert.ErrorAs(t, err, &perr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, p)
		})
	}
}

func TestCreateCollectionBuilderDefaults(t *testing.T) {
	t.Parallel()

	p, err := NewCreateCollectionBuilder().
		WithCollectionName("books").
		AddField(vectorField("embedding", "8")).
		Build()
	require.NoError(t, err)
	assert.Equal(t, int32(2), p.ShardsNum())
	assert.Equal(t, "books", p.CollectionName())
}

func TestBuiltParamIsImmutable(t *testing.T) {
	t.Parallel()

	b := NewShowCollectionsBuilder().AddCollectionName("books")
	p, err := b.Build()
	require.NoError(t, err)

	// Mutating the builder after Build must not leak into the param.
	b.AddCollectionName("films")
	assert.Equal(t, []string{"books"}, p.CollectionNames())
}

func TestShowCollectionsShowType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		names []string
		want  entity.ShowType
	}{
		{name: "no names lists all", names: nil, want: entity.ShowTypeAll},
		{name: "explicit names query memory state", names: []string{"books"}, want: entity.ShowTypeInMemory},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := NewShowCollectionsBuilder().WithCollectionNames(tt.names).Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.ShowType())
		})
	}

	t.Run("empty name rejected", func(t *testing.T) {
		t.Parallel()

		_, err := NewShowCollectionsBuilder().AddCollectionName("").Build()
		require.Error(t, err)
	})
}

func TestLoadCollectionBuilderSyncBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		tune    func(*LoadCollectionBuilder) *LoadCollectionBuilder
		wantErr bool
	}{
		{
			name: "sync defaults",
			tune: func(b *LoadCollectionBuilder) *LoadCollectionBuilder { return b },
		},
		{
			name: "zero interval",
			tune: func(b *LoadCollectionBuilder) *LoadCollectionBuilder {
				return b.WithSyncLoadWaitingInterval(0)
			},
			wantErr: true,
		},
		{
			name: "interval above cap",
			tune: func(b *LoadCollectionBuilder) *LoadCollectionBuilder {
				return b.WithSyncLoadWaitingInterval(MaxSyncWaitingInterval + time.Second)
			},
			wantErr: true,
		},
		{
			name: "timeout above cap",
			tune: func(b *LoadCollectionBuilder) *LoadCollectionBuilder {
				return b.WithSyncLoadWaitingTimeout(MaxLoadingTimeout + time.Second)
			},
			wantErr: true,
		},
		{
			name: "negative timeout",
			tune: func(b *LoadCollectionBuilder) *LoadCollectionBuilder {
				return b.WithSyncLoadWaitingTimeout(-time.Second)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := NewLoadCollectionBuilder().
				WithCollectionName("books").
				WithSyncLoad(true)
			_, err := tt.tune(b).Build()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}

	t.Run("bounds ignored when sync disabled", func(t *testing.T) {
		t.Parallel()

		_, err := NewLoadCollectionBuilder().
			WithCollectionName("books").
			WithSyncLoadWaitingInterval(0).
			Build()
		require.NoError(t, err)
	})
}

func TestFlushBuilder(t *testing.T) {
	t.Parallel()

	t.Run("requires a collection", func(t *testing.T) {
		t.Parallel()

		_, err := NewFlushBuilder().Build()
		require.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		t.Parallel()

		_, err := NewFlushBuilder().AddCollectionName("").Build()
		require.Error(t, err)
	})

	t.Run("sync timeout capped", func(t *testing.T) {
		t.Parallel()

		_, err := NewFlushBuilder().
			AddCollectionName("books").
			WithSyncFlush(true).
			WithSyncFlushWaitingTimeout(MaxFlushingTimeout + time.Second).
			Build()
		require.Error(t, err)
	})

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		p, err := NewFlushBuilder().
			WithCollectionNames([]string{"books", "films"}).
			WithSyncFlush(true).
			Build()
		require.NoError(t, err)
		assert.True(t, p.SyncFlush())
		assert.Equal(t, DefaultSyncWaitingInterval, p.SyncFlushWaitingInterval())
	})
}

func TestSimpleCollectionBuilders(t *testing.T) {
	t.Parallel()

	t.Run("drop", func(t *testing.T) {
		t.Parallel()

		_, err := NewDropCollectionBuilder().Build()
		require.Error(t, err)

		p, err := NewDropCollectionBuilder().WithCollectionName("books").Build()
		require.NoError(t, err)
		assert.Equal(t, "books", p.CollectionName())
	})

	t.Run("has", func(t *testing.T) {
		t.Parallel()

		_, err := NewHasCollectionBuilder().Build()
		require.Error(t, err)
	})

	t.Run("describe", func(t *testing.T) {
		t.Parallel()

		_, err := NewDescribeCollectionBuilder().Build()
		require.Error(t, err)
	})

	t.Run("release", func(t *testing.T) {
		t.Parallel()

		_, err := NewReleaseCollectionBuilder().Build()
		require.Error(t, err)
	})

	t.Run("statistics with flush", func(t *testing.T) {
		t.Parallel()

		p, err := NewGetCollectionStatisticsBuilder().
			WithCollectionName("books").
			WithFlush(true).
			Build()
		require.NoError(t, err)
		assert.True(t, p.Flush())
		assert.Equal(t, DefaultSyncWaitingTimeout, p.FlushTimeout())
	})
}
