// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vortexdb/vortex-go/pkg/entity"
)

func TestPartitionBuilders(t *testing.T) {
	t.Parallel()

	t.Run("create requires both names", func(t *testing.T) {
		t.Parallel()

		_, err := NewCreatePartitionBuilder().WithCollectionName("books").Build()
		require.Error(t, err)

		_, err = NewCreatePartitionBuilder().WithPartitionName("p1").Build()
		require.Error(t, err)

		p, err := NewCreatePartitionBuilder().
			WithCollectionName("books").
			WithPartitionName("p1").
			Build()
		require.NoError(t, err)
		assert.Equal(t, "p1", p.PartitionName())
	})

	t.Run("drop", func(t *testing.T) {
		t.Parallel()

		_, err := NewDropPartitionBuilder().WithCollectionName("books").Build()
		require.Error(t, err)
	})

	t.Run("has", func(t *testing.T) {
		t.Parallel()

		_, err := NewHasPartitionBuilder().WithPartitionName("p1").Build()
		require.Error(t, err)
	})

	t.Run("statistics", func(t *testing.T) {
		t.Parallel()

		_, err := NewGetPartitionStatisticsBuilder().WithCollectionName("books").Build()
		require.Error(t, err)
	})
}

func TestLoadPartitionsBuilder(t *testing.T) {
	t.Parallel()

	t.Run("requires partitions", func(t *testing.T) {
		t.Parallel()

		_, err := NewLoadPartitionsBuilder().WithCollectionName("books").Build()
		require.Error(t, err)
	})

	t.Run("rejects empty partition name", func(t *testing.T) {
		t.Parallel()

		_, err := NewLoadPartitionsBuilder().
			WithCollectionName("books").
			AddPartitionName("").
			Build()
		require.Error(t, err)
	})

	t.Run("sync bounds enforced", func(t *testing.T) {
		t.Parallel()

		_, err := NewLoadPartitionsBuilder().
			WithCollectionName("books").
			AddPartitionName("p1").
			WithSyncLoad(true).
			WithSyncLoadWaitingInterval(0).
			Build()
		require.Error(t, err)
	})

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		p, err := NewLoadPartitionsBuilder().
			WithCollectionName("books").
			WithPartitionNames([]string{"p1", "p2"}).
			WithSyncLoad(true).
			Build()
		require.NoError(t, err)
		assert.Equal(t, []string{"p1", "p2"}, p.PartitionNames())
		assert.True(t, p.SyncLoad())
	})
}

func TestReleasePartitionsBuilder(t *testing.T) {
	t.Parallel()

	_, err := NewReleasePartitionsBuilder().WithCollectionName("books").Build()
	require.Error(t, err)

	p, err := NewReleasePartitionsBuilder().
		WithCollectionName("books").
		AddPartitionName("p1").
		Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, p.PartitionNames())
}

func TestShowPartitionsShowType(t *testing.T) {
	t.Parallel()

	p, err := NewShowPartitionsBuilder().WithCollectionName("books").Build()
	require.NoError(t, err)
	assert.Equal(t, entity.ShowTypeAll, p.ShowType())

	p, err = NewShowPartitionsBuilder().
		WithCollectionName("books").
		AddPartitionName("p1").
		Build()
	require.NoError(t, err)
	assert.Equal(t, entity.ShowTypeInMemory, p.ShowType())

	_, err = NewShowPartitionsBuilder().AddPartitionName("p1").Build()
	require.Error(t, err, "collection name is mandatory")
}
