// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

// Package mockserver runs an in-process VortexDB service double for client
// tests. Every RPC answers with a canned response that tests swap at will;
// the default for every method is an empty success.
package mockserver

import (
	"context"
	"net"
	"sync"

	"google.golang.org/grpc"

	"github.com/vortexdb/vortex-go/pkg/logger"
	"github.com/vortexdb/vortex-go/pkg/wire"
)

// Server is a canned-response VortexDB service on a loopback listener.
// Responses may be swapped concurrently with in-flight calls; each call
// reads the response registered at the moment it executes.
type Server struct {
	grpcServer *grpc.Server
	addr       string

	mu        sync.Mutex
	responses map[string]any
}

func New() *Server {
	return &Server{responses: make(map[string]any)}
}

// Start binds a random loopback port and serves until Stop.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return err
	}
	s.addr = lis.Addr().String()
	s.grpcServer = grpc.NewServer()
	wire.RegisterVortexServiceServer(s.grpcServer, s)
	go func() {
		if err := s.grpcServer.Serve(lis); err != nil {
			logger.Debug().Err(err).Msg("mock server stopped serving")
		}
	}()
	return nil
}

// Addr returns the host:port the server is listening on.
func (s *Server) Addr() string {
	return s.addr
}

// Stop tears the server down, breaking any open client connections.
func (s *Server) Stop() {
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
}

// Set registers the canned response for one method, replacing any previous
// one. Method names match the RPC names, e.g. "HasCollection".
func (s *Server) Set(method string, resp any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[method] = resp
}

// Reset drops all canned responses, restoring empty-success defaults.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses = make(map[string]any)
}

func canned[T any](s *Server, method string) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if resp, ok := s.responses[method].(*T); ok {
		return resp, nil
	}
	return new(T), nil
}

func (s *Server) CreateCollection(ctx context.Context, in *wire.CreateCollectionRequest) (*wire.Status, error) {
	return canned[wire.Status](s, "CreateCollection")
}

func (s *Server) DropCollection(ctx context.Context, in *wire.DropCollectionRequest) (*wire.Status, error) {
	return canned[wire.Status](s, "DropCollection")
}

func (s *Server) HasCollection(ctx context.Context, in *wire.HasCollectionRequest) (*wire.BoolResponse, error) {
	return canned[wire.BoolResponse](s, "HasCollection")
}

func (s *Server) DescribeCollection(ctx context.Context, in *wire.DescribeCollectionRequest) (*wire.DescribeCollectionResponse, error) {
	return canned[wire.DescribeCollectionResponse](s, "DescribeCollection")
}

func (s *Server) GetCollectionStatistics(ctx context.Context, in *wire.GetCollectionStatisticsRequest) (*wire.GetCollectionStatisticsResponse, error) {
	return canned[wire.GetCollectionStatisticsResponse](s, "GetCollectionStatistics")
}

func (s *Server) ShowCollections(ctx context.Context, in *wire.ShowCollectionsRequest) (*wire.ShowCollectionsResponse, error) {
	return canned[wire.ShowCollectionsResponse](s, "ShowCollections")
}

func (s *Server) LoadCollection(ctx context.Context, in *wire.LoadCollectionRequest) (*wire.Status, error) {
	return canned[wire.Status](s, "LoadCollection")
}

func (s *Server) ReleaseCollection(ctx context.Context, in *wire.ReleaseCollectionRequest) (*wire.Status, error) {
	return canned[wire.Status](s, "ReleaseCollection")
}

func (s *Server) Flush(ctx context.Context, in *wire.FlushRequest) (*wire.FlushResponse, error) {
	return canned[wire.FlushResponse](s, "Flush")
}

func (s *Server) CreatePartition(ctx context.Context, in *wire.CreatePartitionRequest) (*wire.Status, error) {
	return canned[wire.Status](s, "CreatePartition")
}

func (s *Server) DropPartition(ctx context.Context, in *wire.DropPartitionRequest) (*wire.Status, error) {
	return canned[wire.Status](s, "DropPartition")
}

func (s *Server) HasPartition(ctx context.Context, in *wire.HasPartitionRequest) (*wire.BoolResponse, error) {
	return canned[wire.BoolResponse](s, "HasPartition")
}

func (s *Server) LoadPartitions(ctx context.Context, in *wire.LoadPartitionsRequest) (*wire.Status, error) {
	return canned[wire.Status](s, "LoadPartitions")
}

func (s *Server) ReleasePartitions(ctx context.Context, in *wire.ReleasePartitionsRequest) (*wire.Status, error) {
	return canned[wire.Status](s, "ReleasePartitions")
}

func (s *Server) GetPartitionStatistics(ctx context.Context, in *wire.GetPartitionStatisticsRequest) (*wire.GetPartitionStatisticsResponse, error) {
	return canned[wire.GetPartitionStatisticsResponse](s, "GetPartitionStatistics")
}

func (s *Server) ShowPartitions(ctx context.Context, in *wire.ShowPartitionsRequest) (*wire.ShowPartitionsResponse, error) {
	return canned[wire.ShowPartitionsResponse](s, "ShowPartitions")
}

func (s *Server) CreateAlias(ctx context.Context, in *wire.CreateAliasRequest) (*wire.Status, error) {
	return canned[wire.Status](s, "CreateAlias")
}

func (s *Server) DropAlias(ctx context.Context, in *wire.DropAliasRequest) (*wire.Status, error) {
	return canned[wire.Status](s, "DropAlias")
}

func (s *Server) AlterAlias(ctx context.Context, in *wire.AlterAliasRequest) (*wire.Status, error) {
	return canned[wire.Status](s, "AlterAlias")
}

func (s *Server) CreateIndex(ctx context.Context, in *wire.CreateIndexRequest) (*wire.Status, error) {
	return canned[wire.Status](s, "CreateIndex")
}

func (s *Server) DescribeIndex(ctx context.Context, in *wire.DescribeIndexRequest) (*wire.DescribeIndexResponse, error) {
	return canned[wire.DescribeIndexResponse](s, "DescribeIndex")
}

func (s *Server) GetIndexState(ctx context.Context, in *wire.GetIndexStateRequest) (*wire.GetIndexStateResponse, error) {
	return canned[wire.GetIndexStateResponse](s, "GetIndexState")
}

func (s *Server) GetIndexBuildProgress(ctx context.Context, in *wire.GetIndexBuildProgressRequest) (*wire.GetIndexBuildProgressResponse, error) {
	return canned[wire.GetIndexBuildProgressResponse](s, "GetIndexBuildProgress")
}

func (s *Server) DropIndex(ctx context.Context, in *wire.DropIndexRequest) (*wire.Status, error) {
	return canned[wire.Status](s, "DropIndex")
}

func (s *Server) Insert(ctx context.Context, in *wire.InsertRequest) (*wire.MutationResult, error) {
	return canned[wire.MutationResult](s, "Insert")
}

func (s *Server) Delete(ctx context.Context, in *wire.DeleteRequest) (*wire.MutationResult, error) {
	return canned[wire.MutationResult](s, "Delete")
}

func (s *Server) Search(ctx context.Context, in *wire.SearchRequest) (*wire.SearchResponse, error) {
	return canned[wire.SearchResponse](s, "Search")
}

func (s *Server) Query(ctx context.Context, in *wire.QueryRequest) (*wire.QueryResponse, error) {
	return canned[wire.QueryResponse](s, "Query")
}

func (s *Server) CalcDistance(ctx context.Context, in *wire.CalcDistanceRequest) (*wire.CalcDistanceResponse, error) {
	return canned[wire.CalcDistanceResponse](s, "CalcDistance")
}

func (s *Server) GetMetrics(ctx context.Context, in *wire.GetMetricsRequest) (*wire.GetMetricsResponse, error) {
	return canned[wire.GetMetricsResponse](s, "GetMetrics")
}

func (s *Server) GetPersistentSegmentInfo(ctx context.Context, in *wire.GetPersistentSegmentInfoRequest) (*wire.GetPersistentSegmentInfoResponse, error) {
	return canned[wire.GetPersistentSegmentInfoResponse](s, "GetPersistentSegmentInfo")
}

func (s *Server) GetQuerySegmentInfo(ctx context.Context, in *wire.GetQuerySegmentInfoRequest) (*wire.GetQuerySegmentInfoResponse, error) {
	return canned[wire.GetQuerySegmentInfoResponse](s, "GetQuerySegmentInfo")
}
