// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package client_test

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vortexdb/vortex-go/internal/mockserver"
	"github.com/vortexdb/vortex-go/pkg/client"
	"github.com/vortexdb/vortex-go/pkg/entity"
	"github.com/vortexdb/vortex-go/pkg/param"
	"github.com/vortexdb/vortex-go/pkg/wire"
)

func startServer(t *testing.T) *mockserver.Server {
	t.Helper()
	srv := mockserver.New()
	require.NoError(t, srv.Start())
	t.Cleanup(srv.Stop)
	return srv
}

func newTestClient(t *testing.T, srv *mockserver.Server) *client.Client {
	t.Helper()
	host, portStr, err := net.SplitHostPort(srv.Addr())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	p, err := param.NewConnectBuilder().WithHost(host).WithPort(port).Build()
	require.NoError(t, err)
	c, err := client.New(p)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// mustBuild unwraps a builder result. Builder inputs in these tests are
// static and valid, so a failure is a test bug, not a test outcome.
func mustBuild[T any](p *T, err error) *T {
	if err != nil {
		panic(err)
	}
	return p
}

func TestOperationsAgainstHealthyServer(t *testing.T) {
	t.Parallel()

	srv := startServer(t)
	c := newTestClient(t, srv)
	ctx := testCtx(t)

	ops := []struct {
		name string
		call func() error
	}{
		{"CreateCollection", func() error {
			p := mustBuild(param.NewCreateCollectionBuilder().
				WithCollectionName("books").
				AddField(entity.FieldSchema{Name: "id", DataType: entity.DataTypeInt64, PrimaryKey: true}).
				AddField(entity.FieldSchema{
					Name:       "embedding",
					DataType:   entity.DataTypeFloatVector,
					TypeParams: map[string]string{entity.TypeParamDim: "2"},
				}).
				Build())
			return c.CreateCollection(ctx, p)
		}},
		{"DropCollection", func() error {
			p := mustBuild(param.NewDropCollectionBuilder().WithCollectionName("books").Build())
			return c.DropCollection(ctx, p)
		}},
		{"DescribeCollection", func() error {
			p := mustBuild(param.NewDescribeCollectionBuilder().WithCollectionName("books").Build())
			_, err := c.DescribeCollection(ctx, p)
			return err
		}},
		{"GetCollectionStatistics", func() error {
			p := mustBuild(param.NewGetCollectionStatisticsBuilder().WithCollectionName("books").Build())
			_, err := c.GetCollectionStatistics(ctx, p)
			return err
		}},
		{"ShowCollections", func() error {
			p := mustBuild(param.NewShowCollectionsBuilder().Build())
			_, err := c.ShowCollections(ctx, p)
			return err
		}},
		{"LoadCollection async", func() error {
			p := mustBuild(param.NewLoadCollectionBuilder().WithCollectionName("books").Build())
			return c.LoadCollection(ctx, p)
		}},
		{"ReleaseCollection", func() error {
			p := mustBuild(param.NewReleaseCollectionBuilder().WithCollectionName("books").Build())
			return c.ReleaseCollection(ctx, p)
		}},
		{"Flush async", func() error {
			p := mustBuild(param.NewFlushBuilder().AddCollectionName("books").Build())
			_, err := c.Flush(ctx, p)
			return err
		}},
		{"CreatePartition", func() error {
			p := mustBuild(param.NewCreatePartitionBuilder().
				WithCollectionName("books").WithPartitionName("p1").Build())
			return c.CreatePartition(ctx, p)
		}},
		{"DropPartition", func() error {
			p := mustBuild(param.NewDropPartitionBuilder().
				WithCollectionName("books").WithPartitionName("p1").Build())
			return c.DropPartition(ctx, p)
		}},
		{"LoadPartitions async", func() error {
			p := mustBuild(param.NewLoadPartitionsBuilder().
				WithCollectionName("books").AddPartitionName("p1").Build())
			return c.LoadPartitions(ctx, p)
		}},
		{"ReleasePartitions", func() error {
			p := mustBuild(param.NewReleasePartitionsBuilder().
				WithCollectionName("books").AddPartitionName("p1").Build())
			return c.ReleasePartitions(ctx, p)
		}},
		{"GetPartitionStatistics", func() error {
			p := mustBuild(param.NewGetPartitionStatisticsBuilder().
				WithCollectionName("books").WithPartitionName("p1").Build())
			_, err := c.GetPartitionStatistics(ctx, p)
			return err
		}},
		{"ShowPartitions", func() error {
			p := mustBuild(param.NewShowPartitionsBuilder().WithCollectionName("books").Build())
			_, err := c.ShowPartitions(ctx, p)
			return err
		}},
		{"CreateAlias", func() error {
			p := mustBuild(param.NewCreateAliasBuilder().
				WithCollectionName("books").WithAlias("shortcut").Build())
			return c.CreateAlias(ctx, p)
		}},
		{"DropAlias", func() error {
			p := mustBuild(param.NewDropAliasBuilder().WithAlias("shortcut").Build())
			return c.DropAlias(ctx, p)
		}},
		{"AlterAlias", func() error {
			p := mustBuild(param.NewAlterAliasBuilder().
				WithCollectionName("films").WithAlias("shortcut").Build())
			return c.AlterAlias(ctx, p)
		}},
		{"CreateIndex async", func() error {
			p := mustBuild(param.NewCreateIndexBuilder().
				WithCollectionName("books").
				WithFieldName("embedding").
				WithIndexType(entity.IndexTypeIvfFlat).
				WithMetricType(entity.MetricTypeL2).
				WithExtraParam(`{"nlist":64}`).
				Build())
			return c.CreateIndex(ctx, p)
		}},
		{"DescribeIndex", func() error {
			p := mustBuild(param.NewDescribeIndexBuilder().
				WithCollectionName("books").WithFieldName("embedding").Build())
			_, err := c.DescribeIndex(ctx, p)
			return err
		}},
		{"GetIndexState", func() error {
			p := mustBuild(param.NewGetIndexStateBuilder().
				WithCollectionName("books").WithFieldName("embedding").Build())
			_, err := c.GetIndexState(ctx, p)
			return err
		}},
		{"GetIndexBuildProgress", func() error {
			p := mustBuild(param.NewGetIndexBuildProgressBuilder().
				WithCollectionName("books").Build())
			_, err := c.GetIndexBuildProgress(ctx, p)
			return err
		}},
		{"DropIndex", func() error {
			p := mustBuild(param.NewDropIndexBuilder().
				WithCollectionName("books").WithFieldName("embedding").Build())
			return c.DropIndex(ctx, p)
		}},
		{"Delete", func() error {
			p := mustBuild(param.NewDeleteBuilder().
				WithCollectionName("books").WithExpr("id in [1]").Build())
			_, err := c.Delete(ctx, p)
			return err
		}},
		{"Query", func() error {
			p := mustBuild(param.NewQueryBuilder().
				WithCollectionName("books").WithExpr("id > 0").Build())
			_, err := c.Query(ctx, p)
			return err
		}},
		{"CalcDistance", func() error {
			p := mustBuild(param.NewCalcDistanceBuilder().
				WithMetricType(entity.MetricTypeL2).
				WithVectorsLeft([][]float32{{1, 2}}).
				WithVectorsRight([][]float32{{3, 4}}).
				Build())
			_, err := c.CalcDistance(ctx, p)
			return err
		}},
		{"GetMetrics", func() error {
			p := mustBuild(param.NewGetMetricsBuilder().
				WithRequest(`{"metric_type":"system_info"}`).Build())
			_, err := c.GetMetrics(ctx, p)
			return err
		}},
		{"GetPersistentSegmentInfo", func() error {
			p := mustBuild(param.NewGetPersistentSegmentInfoBuilder().
				WithCollectionName("books").Build())
			_, err := c.GetPersistentSegmentInfo(ctx, p)
			return err
		}},
		{"GetQuerySegmentInfo", func() error {
			p := mustBuild(param.NewGetQuerySegmentInfoBuilder().
				WithCollectionName("books").Build())
			_, err := c.GetQuerySegmentInfo(ctx, p)
			return err
		}},
	}

	for _, op := range ops {
		assert.NoError(t, op.call(), op.name)
	}
}

func TestHasCollectionValue(t *testing.T) {
	t.Parallel()

	srv := startServer(t)
	c := newTestClient(t, srv)
	ctx := testCtx(t)

	p := mustBuild(param.NewHasCollectionBuilder().WithCollectionName("books").Build())

	has, err := c.HasCollection(ctx, p)
	require.NoError(t, err)
	assert.False(t, has)

	srv.Set("HasCollection", &wire.BoolResponse{Value: true})
	has, err = c.HasCollection(ctx, p)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestInsertAndSearchPayloads(t *testing.T) {
	t.Parallel()

	srv := startServer(t)
	c := newTestClient(t, srv)
	ctx := testCtx(t)

	srv.Set("Insert", &wire.MutationResult{
		IntIDs:      []int64{1, 2, 3},
		InsertCount: 3,
	})
	insert := mustBuild(param.NewInsertBuilder().
		WithCollectionName("books").
		AddField(param.Field{Name: "id", Type: entity.DataTypeInt64, Values: []int64{1, 2, 3}}).
		AddField(param.Field{
			Name:   "embedding",
			Type:   entity.DataTypeFloatVector,
			Values: [][]float32{{1, 2}, {3, 4}, {5, 6}},
		}).
		Build())
	res, err := c.Insert(ctx, insert)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.InsertCount)
	assert.Equal(t, []int64{1, 2, 3}, res.IntIDs)

	srv.Set("Search", &wire.SearchResponse{
		Results: wire.SearchResultData{
			NumQueries: 1,
			TopK:       2,
			IntIDs:     []int64{7, 9},
			Scores:     []float32{0.1, 0.4},
		},
	})
	search := mustBuild(param.NewSearchBuilder().
		WithCollectionName("books").
		WithVectorFieldName("embedding").
		WithMetricType(entity.MetricTypeL2).
		WithTopK(2).
		WithFloatVectors([][]float32{{1, 2}}).
		Build())
	sres, err := c.Search(ctx, search)
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 9}, sres.Results.IntIDs)
	assert.Len(t, sres.Results.Scores, 2)
}

func TestServerRejectionClassifiedAsServerError(t *testing.T) {
	t.Parallel()

	srv := startServer(t)
	c := newTestClient(t, srv)
	ctx := testCtx(t)

	srv.Set("DropCollection", &wire.Status{
		ErrorCode: wire.ErrorCodeCollectionNotExists,
		Reason:    "collection books does not exist",
	})

	p := mustBuild(param.NewDropCollectionBuilder().WithCollectionName("books").Build())
	err := c.DropCollection(ctx, p)
	require.Error(t, err)
	assert.Equal(t, client.CodeServerError, client.Code(err))
	assert.Contains(t, err.Error(), "does not exist")
}

func TestStoppedServerClassifiedAsRPCFailed(t *testing.T) {
	t.Parallel()

	srv := startServer(t)
	c := newTestClient(t, srv)
	ctx := testCtx(t)

	p := mustBuild(param.NewHasCollectionBuilder().WithCollectionName("books").Build())
	_, err := c.HasCollection(ctx, p)
	require.NoError(t, err)

	srv.Stop()

	callCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_, err = c.HasCollection(callCtx, p)
	require.Error(t, err)
	assert.Equal(t, client.CodeRPCFailed, client.Code(err))

	// Repeating the identical call classifies the same way.
	retryCtx, cancelRetry := context.WithTimeout(ctx, 3*time.Second)
	defer cancelRetry()
	_, err = c.HasCollection(retryCtx, p)
	require.Error(t, err)
	assert.Equal(t, client.CodeRPCFailed, client.Code(err))
}

func TestClosedClientClassifiedAsNotConnected(t *testing.T) {
	t.Parallel()

	srv := startServer(t)
	c := newTestClient(t, srv)
	ctx := testCtx(t)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close(), "close is idempotent")

	p := mustBuild(param.NewHasCollectionBuilder().WithCollectionName("books").Build())
	_, err := c.HasCollection(ctx, p)
	require.Error(t, err)
	assert.Equal(t, client.CodeNotConnected, client.Code(err))

	// Repeating the identical call classifies the same way.
	_, err = c.HasCollection(ctx, p)
	require.Error(t, err)
	assert.Equal(t, client.CodeNotConnected, client.Code(err))

	err = c.CreateAlias(ctx, mustBuild(param.NewCreateAliasBuilder().
		WithCollectionName("books").WithAlias("shortcut").Build()))
	assert.Equal(t, client.CodeNotConnected, client.Code(err))
}

func TestLoadCollectionSyncWaitsForFullLoad(t *testing.T) {
	t.Parallel()

	srv := startServer(t)
	c := newTestClient(t, srv)
	ctx := testCtx(t)

	srv.Set("ShowCollections", &wire.ShowCollectionsResponse{
		CollectionNames:     []string{"books"},
		InMemoryPercentages: []int64{50},
	})
	go func() {
		time.Sleep(300 * time.Millisecond)
		srv.Set("ShowCollections", &wire.ShowCollectionsResponse{
			CollectionNames:     []string{"books"},
			InMemoryPercentages: []int64{100},
		})
	}()

	p := mustBuild(param.NewLoadCollectionBuilder().
		WithCollectionName("books").
		WithSyncLoad(true).
		WithSyncLoadWaitingInterval(100 * time.Millisecond).
		WithSyncLoadWaitingTimeout(5 * time.Second).
		Build())

	start := time.Now()
	require.NoError(t, c.LoadCollection(ctx, p))
	assert.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond,
		"must keep polling until the server reports 100")
}

func TestLoadCollectionSyncTimeout(t *testing.T) {
	t.Parallel()

	srv := startServer(t)
	c := newTestClient(t, srv)
	ctx := testCtx(t)

	// The server never progresses past 50 percent.
	srv.Set("ShowCollections", &wire.ShowCollectionsResponse{
		CollectionNames:     []string{"books"},
		InMemoryPercentages: []int64{50},
	})

	p := mustBuild(param.NewLoadCollectionBuilder().
		WithCollectionName("books").
		WithSyncLoad(true).
		WithSyncLoadWaitingInterval(50 * time.Millisecond).
		WithSyncLoadWaitingTimeout(300 * time.Millisecond).
		Build())

	err := c.LoadCollection(ctx, p)
	require.Error(t, err)
	assert.Equal(t, client.CodeTimeout, client.Code(err))
}

func TestLoadCollectionSyncProbeFailureSurfacesImmediately(t *testing.T) {
	t.Parallel()

	srv := startServer(t)
	c := newTestClient(t, srv)
	ctx := testCtx(t)

	srv.Set("ShowCollections", &wire.ShowCollectionsResponse{
		Status: wire.Status{ErrorCode: wire.ErrorCodeUnexpectedError, Reason: "node down"},
	})

	p := mustBuild(param.NewLoadCollectionBuilder().
		WithCollectionName("books").
		WithSyncLoad(true).
		WithSyncLoadWaitingInterval(50 * time.Millisecond).
		WithSyncLoadWaitingTimeout(30 * time.Second).
		Build())

	start := time.Now()
	err := c.LoadCollection(ctx, p)
	require.Error(t, err)
	assert.Equal(t, client.CodeServerError, client.Code(err))
	assert.Less(t, time.Since(start), 5*time.Second,
		"probe failure must not burn the waiting budget")
}

func TestLoadPartitionsSyncWaitsForAllPartitions(t *testing.T) {
	t.Parallel()

	srv := startServer(t)
	c := newTestClient(t, srv)
	ctx := testCtx(t)

	srv.Set("ShowPartitions", &wire.ShowPartitionsResponse{
		PartitionNames:      []string{"p1", "p2"},
		InMemoryPercentages: []int64{100, 40},
	})
	go func() {
		time.Sleep(200 * time.Millisecond)
		srv.Set("ShowPartitions", &wire.ShowPartitionsResponse{
			PartitionNames:      []string{"p1", "p2"},
			InMemoryPercentages: []int64{100, 100},
		})
	}()

	p := mustBuild(param.NewLoadPartitionsBuilder().
		WithCollectionName("books").
		WithPartitionNames([]string{"p1", "p2"}).
		WithSyncLoad(true).
		WithSyncLoadWaitingInterval(50 * time.Millisecond).
		WithSyncLoadWaitingTimeout(5 * time.Second).
		Build())

	require.NoError(t, c.LoadPartitions(ctx, p))
}

func TestFlushSyncWaitsForSealedSegments(t *testing.T) {
	t.Parallel()

	srv := startServer(t)
	c := newTestClient(t, srv)
	ctx := testCtx(t)

	srv.Set("Flush", &wire.FlushResponse{
		CollSegIDs: map[string][]int64{"books": {1}},
	})
	srv.Set("GetPersistentSegmentInfo", &wire.GetPersistentSegmentInfoResponse{
		Infos: []wire.PersistentSegmentInfo{
			{SegmentID: 1, State: entity.SegmentStateFlushing},
		},
	})
	go func() {
		time.Sleep(200 * time.Millisecond)
		srv.Set("GetPersistentSegmentInfo", &wire.GetPersistentSegmentInfoResponse{
			Infos: []wire.PersistentSegmentInfo{
				{SegmentID: 1, State: entity.SegmentStateFlushed},
			},
		})
	}()

	p := mustBuild(param.NewFlushBuilder().
		AddCollectionName("books").
		WithSyncFlush(true).
		WithSyncFlushWaitingInterval(50 * time.Millisecond).
		WithSyncFlushWaitingTimeout(5 * time.Second).
		Build())

	_, err := c.Flush(ctx, p)
	require.NoError(t, err)
}

func TestFlushSyncIgnoresSegmentsOutsideFlushSet(t *testing.T) {
	t.Parallel()

	srv := startServer(t)
	c := newTestClient(t, srv)
	ctx := testCtx(t)

	// Only segment 1 belongs to this flush. Segment 7 is a concurrent
	// writer's segment and stays in Flushing the whole time.
	srv.Set("Flush", &wire.FlushResponse{
		CollSegIDs: map[string][]int64{"books": {1}},
	})
	srv.Set("GetPersistentSegmentInfo", &wire.GetPersistentSegmentInfoResponse{
		Infos: []wire.PersistentSegmentInfo{
			{SegmentID: 1, State: entity.SegmentStateFlushed},
			{SegmentID: 7, State: entity.SegmentStateFlushing},
		},
	})

	p := mustBuild(param.NewFlushBuilder().
		AddCollectionName("books").
		WithSyncFlush(true).
		WithSyncFlushWaitingInterval(50 * time.Millisecond).
		WithSyncFlushWaitingTimeout(2 * time.Second).
		Build())

	start := time.Now()
	resp, err := c.Flush(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, resp.CollSegIDs["books"])
	assert.Less(t, time.Since(start), 2*time.Second,
		"segments outside the flush set must not hold up completion")
}

func TestFlushSyncTimeout(t *testing.T) {
	t.Parallel()

	srv := startServer(t)
	c := newTestClient(t, srv)
	ctx := testCtx(t)

	srv.Set("Flush", &wire.FlushResponse{
		CollSegIDs: map[string][]int64{"books": {1}},
	})
	srv.Set("GetPersistentSegmentInfo", &wire.GetPersistentSegmentInfoResponse{
		Infos: []wire.PersistentSegmentInfo{
			{SegmentID: 1, State: entity.SegmentStateFlushing},
		},
	})

	p := mustBuild(param.NewFlushBuilder().
		AddCollectionName("books").
		WithSyncFlush(true).
		WithSyncFlushWaitingInterval(50 * time.Millisecond).
		WithSyncFlushWaitingTimeout(300 * time.Millisecond).
		Build())

	_, err := c.Flush(ctx, p)
	require.Error(t, err)
	assert.Equal(t, client.CodeTimeout, client.Code(err))
}

func TestCreateIndexSyncWaitsForFinishedState(t *testing.T) {
	t.Parallel()

	srv := startServer(t)
	c := newTestClient(t, srv)
	ctx := testCtx(t)

	srv.Set("GetIndexState", &wire.GetIndexStateResponse{State: entity.IndexStateInProgress})
	go func() {
		time.Sleep(200 * time.Millisecond)
		srv.Set("GetIndexState", &wire.GetIndexStateResponse{State: entity.IndexStateFinished})
	}()

	p := mustBuild(param.NewCreateIndexBuilder().
		WithCollectionName("books").
		WithFieldName("embedding").
		WithIndexType(entity.IndexTypeIvfFlat).
		WithMetricType(entity.MetricTypeL2).
		WithExtraParam(`{"nlist":64}`).
		WithSyncMode(true).
		WithSyncWaitingInterval(50 * time.Millisecond).
		WithSyncWaitingTimeout(5 * time.Second).
		Build())

	require.NoError(t, c.CreateIndex(ctx, p))
}

func TestCreateIndexSyncFailedStateAbortsWait(t *testing.T) {
	t.Parallel()

	srv := startServer(t)
	c := newTestClient(t, srv)
	ctx := testCtx(t)

	srv.Set("GetIndexState", &wire.GetIndexStateResponse{
		State:      entity.IndexStateFailed,
		FailReason: "out of disk",
	})

	p := mustBuild(param.NewCreateIndexBuilder().
		WithCollectionName("books").
		WithFieldName("embedding").
		WithIndexType(entity.IndexTypeIvfFlat).
		WithMetricType(entity.MetricTypeL2).
		WithExtraParam(`{"nlist":64}`).
		WithSyncMode(true).
		WithSyncWaitingInterval(50 * time.Millisecond).
		WithSyncWaitingTimeout(30 * time.Second).
		Build())

	start := time.Now()
	err := c.CreateIndex(ctx, p)
	require.Error(t, err)
	assert.Equal(t, client.CodeServerError, client.Code(err))
	assert.Contains(t, err.Error(), "out of disk")
	assert.Less(t, time.Since(start), 5*time.Second,
		"failed build must abort the wait, not time it out")
}

func TestGetCollectionStatisticsWithFlush(t *testing.T) {
	t.Parallel()

	srv := startServer(t)
	c := newTestClient(t, srv)
	ctx := testCtx(t)

	srv.Set("Flush", &wire.FlushResponse{
		CollSegIDs: map[string][]int64{"books": {1}},
	})
	srv.Set("GetPersistentSegmentInfo", &wire.GetPersistentSegmentInfoResponse{
		Infos: []wire.PersistentSegmentInfo{
			{SegmentID: 1, State: entity.SegmentStateFlushed},
		},
	})
	srv.Set("GetCollectionStatistics", &wire.GetCollectionStatisticsResponse{
		Stats: []wire.KeyValuePair{{Key: "row_count", Value: "42"}},
	})

	p := mustBuild(param.NewGetCollectionStatisticsBuilder().
		WithCollectionName("books").
		WithFlush(true).
		Build())

	resp, err := c.GetCollectionStatistics(ctx, p)
	require.NoError(t, err)
	require.Len(t, resp.Stats, 1)
	assert.Equal(t, "42", resp.Stats[0].Value)
}
