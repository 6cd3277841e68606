// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "vortex.api.VortexService"

// VortexServiceClient is the raw RPC surface of the service. pkg/client
// wraps it with parameter validation, state checks and outcome
// classification; applications normally never touch this interface.
type VortexServiceClient interface {
	CreateCollection(ctx context.Context, in *CreateCollectionRequest, opts ...grpc.CallOption) (*Status, error)
	DropCollection(ctx context.Context, in *DropCollectionRequest, opts ...grpc.CallOption) (*Status, error)
	HasCollection(ctx context.Context, in *HasCollectionRequest, opts ...grpc.CallOption) (*BoolResponse, error)
	DescribeCollection(ctx context.Context, in *DescribeCollectionRequest, opts ...grpc.CallOption) (*DescribeCollectionResponse, error)
	GetCollectionStatistics(ctx context.Context, in *GetCollectionStatisticsRequest, opts ...grpc.CallOption) (*GetCollectionStatisticsResponse, error)
	ShowCollections(ctx context.Context, in *ShowCollectionsRequest, opts ...grpc.CallOption) (*ShowCollectionsResponse, error)
	LoadCollection(ctx context.Context, in *LoadCollectionRequest, opts ...grpc.CallOption) (*Status, error)
	ReleaseCollection(ctx context.Context, in *ReleaseCollectionRequest, opts ...grpc.CallOption) (*Status, error)
	Flush(ctx context.Context, in *FlushRequest, opts ...grpc.CallOption) (*FlushResponse, error)

	CreatePartition(ctx context.Context, in *CreatePartitionRequest, opts ...grpc.CallOption) (*Status, error)
	DropPartition(ctx context.Context, in *DropPartitionRequest, opts ...grpc.CallOption) (*Status, error)
	HasPartition(ctx context.Context, in *HasPartitionRequest, opts ...grpc.CallOption) (*BoolResponse, error)
	LoadPartitions(ctx context.Context, in *LoadPartitionsRequest, opts ...grpc.CallOption) (*Status, error)
	ReleasePartitions(ctx context.Context, in *ReleasePartitionsRequest, opts ...grpc.CallOption) (*Status, error)
	GetPartitionStatistics(ctx context.Context, in *GetPartitionStatisticsRequest, opts ...grpc.CallOption) (*GetPartitionStatisticsResponse, error)
	ShowPartitions(ctx context.Context, in *ShowPartitionsRequest, opts ...grpc.CallOption) (*ShowPartitionsResponse, error)

	CreateAlias(ctx context.Context, in *CreateAliasRequest, opts ...grpc.CallOption) (*Status, error)
	DropAlias(ctx context.Context, in *DropAliasRequest, opts ...grpc.CallOption) (*Status, error)
	AlterAlias(ctx context.Context, in *AlterAliasRequest, opts ...grpc.CallOption) (*Status, error)

	CreateIndex(ctx context.Context, in *CreateIndexRequest, opts ...grpc.CallOption) (*Status, error)
	DescribeIndex(ctx context.Context, in *DescribeIndexRequest, opts ...grpc.CallOption) (*DescribeIndexResponse, error)
	GetIndexState(ctx context.Context, in *GetIndexStateRequest, opts ...grpc.CallOption) (*GetIndexStateResponse, error)
	GetIndexBuildProgress(ctx context.Context, in *GetIndexBuildProgressRequest, opts ...grpc.CallOption) (*GetIndexBuildProgressResponse, error)
	DropIndex(ctx context.Context, in *DropIndexRequest, opts ...grpc.CallOption) (*Status, error)

	Insert(ctx context.Context, in *InsertRequest, opts ...grpc.CallOption) (*MutationResult, error)
	Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*MutationResult, error)
	Search(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchResponse, error)
	Query(ctx context.Context, in *QueryRequest, opts ...grpc.CallOption) (*QueryResponse, error)
	CalcDistance(ctx context.Context, in *CalcDistanceRequest, opts ...grpc.CallOption) (*CalcDistanceResponse, error)

	GetMetrics(ctx context.Context, in *GetMetricsRequest, opts ...grpc.CallOption) (*GetMetricsResponse, error)
	GetPersistentSegmentInfo(ctx context.Context, in *GetPersistentSegmentInfoRequest, opts ...grpc.CallOption) (*GetPersistentSegmentInfoResponse, error)
	GetQuerySegmentInfo(ctx context.Context, in *GetQuerySegmentInfoRequest, opts ...grpc.CallOption) (*GetQuerySegmentInfoResponse, error)
}

// VortexServiceServer is the server-side mirror, implemented by the
// in-process test double and by the real service.
type VortexServiceServer interface {
	CreateCollection(ctx context.Context, in *CreateCollectionRequest) (*Status, error)
	DropCollection(ctx context.Context, in *DropCollectionRequest) (*Status, error)
	HasCollection(ctx context.Context, in *HasCollectionRequest) (*BoolResponse, error)
	DescribeCollection(ctx context.Context, in *DescribeCollectionRequest) (*DescribeCollectionResponse, error)
	GetCollectionStatistics(ctx context.Context, in *GetCollectionStatisticsRequest) (*GetCollectionStatisticsResponse, error)
	ShowCollections(ctx context.Context, in *ShowCollectionsRequest) (*ShowCollectionsResponse, error)
	LoadCollection(ctx context.Context, in *LoadCollectionRequest) (*Status, error)
	ReleaseCollection(ctx context.Context, in *ReleaseCollectionRequest) (*Status, error)
	Flush(ctx context.Context, in *FlushRequest) (*FlushResponse, error)

	CreatePartition(ctx context.Context, in *CreatePartitionRequest) (*Status, error)
	DropPartition(ctx context.Context, in *DropPartitionRequest) (*Status, error)
	HasPartition(ctx context.Context, in *HasPartitionRequest) (*BoolResponse, error)
	LoadPartitions(ctx context.Context, in *LoadPartitionsRequest) (*Status, error)
	ReleasePartitions(ctx context.Context, in *ReleasePartitionsRequest) (*Status, error)
	GetPartitionStatistics(ctx context.Context, in *GetPartitionStatisticsRequest) (*GetPartitionStatisticsResponse, error)
	ShowPartitions(ctx context.Context, in *ShowPartitionsRequest) (*ShowPartitionsResponse, error)

	CreateAlias(ctx context.Context, in *CreateAliasRequest) (*Status, error)
	DropAlias(ctx context.Context, in *DropAliasRequest) (*Status, error)
	AlterAlias(ctx context.Context, in *AlterAliasRequest) (*Status, error)

	CreateIndex(ctx context.Context, in *CreateIndexRequest) (*Status, error)
	DescribeIndex(ctx context.Context, in *DescribeIndexRequest) (*DescribeIndexResponse, error)
	GetIndexState(ctx context.Context, in *GetIndexStateRequest) (*GetIndexStateResponse, error)
	GetIndexBuildProgress(ctx context.Context, in *GetIndexBuildProgressRequest) (*GetIndexBuildProgressResponse, error)
	DropIndex(ctx context.Context, in *DropIndexRequest) (*Status, error)

	Insert(ctx context.Context, in *InsertRequest) (*MutationResult, error)
	Delete(ctx context.Context, in *DeleteRequest) (*MutationResult, error)
	Search(ctx context.Context, in *SearchRequest) (*SearchResponse, error)
	Query(ctx context.Context, in *QueryRequest) (*QueryResponse, error)
	CalcDistance(ctx context.Context, in *CalcDistanceRequest) (*CalcDistanceResponse, error)

	GetMetrics(ctx context.Context, in *GetMetricsRequest) (*GetMetricsResponse, error)
	GetPersistentSegmentInfo(ctx context.Context, in *GetPersistentSegmentInfoRequest) (*GetPersistentSegmentInfoResponse, error)
	GetQuerySegmentInfo(ctx context.Context, in *GetQuerySegmentInfoRequest) (*GetQuerySegmentInfoResponse, error)
}

type vortexServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewVortexServiceClient returns a stub speaking the VortexDB service over
// the given connection.
func NewVortexServiceClient(cc grpc.ClientConnInterface) VortexServiceClient {
	return &vortexServiceClient{cc: cc}
}

func call[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vortexServiceClient) CreateCollection(ctx context.Context, in *CreateCollectionRequest, opts ...grpc.CallOption) (*Status, error) {
	return call[Status](ctx, c.cc, "CreateCollection", in, opts)
}

func (c *vortexServiceClient) DropCollection(ctx context.Context, in *DropCollectionRequest, opts ...grpc.CallOption) (*Status, error) {
	return call[Status](ctx, c.cc, "DropCollection", in, opts)
}

func (c *vortexServiceClient) HasCollection(ctx context.Context, in *HasCollectionRequest, opts ...grpc.CallOption) (*BoolResponse, error) {
	return call[BoolResponse](ctx, c.cc, "HasCollection", in, opts)
}

func (c *vortexServiceClient) DescribeCollection(ctx context.Context, in *DescribeCollectionRequest, opts ...grpc.CallOption) (*DescribeCollectionResponse, error) {
	return call[DescribeCollectionResponse](ctx, c.cc, "DescribeCollection", in, opts)
}

func (c *vortexServiceClient) GetCollectionStatistics(ctx context.Context, in *GetCollectionStatisticsRequest, opts ...grpc.CallOption) (*GetCollectionStatisticsResponse, error) {
	return call[GetCollectionStatisticsResponse](ctx, c.cc, "GetCollectionStatistics", in, opts)
}

func (c *vortexServiceClient) ShowCollections(ctx context.Context, in *ShowCollectionsRequest, opts ...grpc.CallOption) (*ShowCollectionsResponse, error) {
	return call[ShowCollectionsResponse](ctx, c.cc, "ShowCollections", in, opts)
}

func (c *vortexServiceClient) LoadCollection(ctx context.Context, in *LoadCollectionRequest, opts ...grpc.CallOption) (*Status, error) {
	return call[Status](ctx, c.cc, "LoadCollection", in, opts)
}

func (c *vortexServiceClient) ReleaseCollection(ctx context.Context, in *ReleaseCollectionRequest, opts ...grpc.CallOption) (*Status, error) {
	return call[Status](ctx, c.cc, "ReleaseCollection", in, opts)
}

func (c *vortexServiceClient) Flush(ctx context.Context, in *FlushRequest, opts ...grpc.CallOption) (*FlushResponse, error) {
	return call[FlushResponse](ctx, c.cc, "Flush", in, opts)
}

func (c *vortexServiceClient) CreatePartition(ctx context.Context, in *CreatePartitionRequest, opts ...grpc.CallOption) (*Status, error) {
	return call[Status](ctx, c.cc, "CreatePartition", in, opts)
}

func (c *vortexServiceClient) DropPartition(ctx context.Context, in *DropPartitionRequest, opts ...grpc.CallOption) (*Status, error) {
	return call[Status](ctx, c.cc, "DropPartition", in, opts)
}

func (c *vortexServiceClient) HasPartition(ctx context.Context, in *HasPartitionRequest, opts ...grpc.CallOption) (*BoolResponse, error) {
	return call[BoolResponse](ctx, c.cc, "HasPartition", in, opts)
}

func (c *vortexServiceClient) LoadPartitions(ctx context.Context, in *LoadPartitionsRequest, opts ...grpc.CallOption) (*Status, error) {
	return call[Status](ctx, c.cc, "LoadPartitions", in, opts)
}

func (c *vortexServiceClient) ReleasePartitions(ctx context.Context, in *ReleasePartitionsRequest, opts ...grpc.CallOption) (*Status, error) {
	return call[Status](ctx, c.cc, "ReleasePartitions", in, opts)
}

func (c *vortexServiceClient) GetPartitionStatistics(ctx context.Context, in *GetPartitionStatisticsRequest, opts ...grpc.CallOption) (*GetPartitionStatisticsResponse, error) {
	return call[GetPartitionStatisticsResponse](ctx, c.cc, "GetPartitionStatistics", in, opts)
}

func (c *vortexServiceClient) ShowPartitions(ctx context.Context, in *ShowPartitionsRequest, opts ...grpc.CallOption) (*ShowPartitionsResponse, error) {
	return call[ShowPartitionsResponse](ctx, c.cc, "ShowPartitions", in, opts)
}

func (c *vortexServiceClient) CreateAlias(ctx context.Context, in *CreateAliasRequest, opts ...grpc.CallOption) (*Status, error) {
	return call[Status](ctx, c.cc, "CreateAlias", in, opts)
}

func (c *vortexServiceClient) DropAlias(ctx context.Context, in *DropAliasRequest, opts ...grpc.CallOption) (*Status, error) {
	return call[Status](ctx, c.cc, "DropAlias", in, opts)
}

func (c *vortexServiceClient) AlterAlias(ctx context.Context, in *AlterAliasRequest, opts ...grpc.CallOption) (*Status, error) {
	return call[Status](ctx, c.cc, "AlterAlias", in, opts)
}

func (c *vortexServiceClient) CreateIndex(ctx context.Context, in *CreateIndexRequest, opts ...grpc.CallOption) (*Status, error) {
	return call[Status](ctx, c.cc, "CreateIndex", in, opts)
}

func (c *vortexServiceClient) DescribeIndex(ctx context.Context, in *DescribeIndexRequest, opts ...grpc.CallOption) (*DescribeIndexResponse, error) {
	return call[DescribeIndexResponse](ctx, c.cc, "DescribeIndex", in, opts)
}

func (c *vortexServiceClient) GetIndexState(ctx context.Context, in *GetIndexStateRequest, opts ...grpc.CallOption) (*GetIndexStateResponse, error) {
	return call[GetIndexStateResponse](ctx, c.cc, "GetIndexState", in, opts)
}

func (c *vortexServiceClient) GetIndexBuildProgress(ctx context.Context, in *GetIndexBuildProgressRequest, opts ...grpc.CallOption) (*GetIndexBuildProgressResponse, error) {
	return call[GetIndexBuildProgressResponse](ctx, c.cc, "GetIndexBuildProgress", in, opts)
}

func (c *vortexServiceClient) DropIndex(ctx context.Context, in *DropIndexRequest, opts ...grpc.CallOption) (*Status, error) {
	return call[Status](ctx, c.cc, "DropIndex", in, opts)
}

func (c *vortexServiceClient) Insert(ctx context.Context, in *InsertRequest, opts ...grpc.CallOption) (*MutationResult, error) {
	return call[MutationResult](ctx, c.cc, "Insert", in, opts)
}

func (c *vortexServiceClient) Delete(ctx context.Context, in *DeleteRequest, opts ...grpc.CallOption) (*MutationResult, error) {
	return call[MutationResult](ctx, c.cc, "Delete", in, opts)
}

func (c *vortexServiceClient) Search(ctx context.Context, in *SearchRequest, opts ...grpc.CallOption) (*SearchResponse, error) {
	return call[SearchResponse](ctx, c.cc, "Search", in, opts)
}

func (c *vortexServiceClient) Query(ctx context.Context, in *QueryRequest, opts ...grpc.CallOption) (*QueryResponse, error) {
	return call[QueryResponse](ctx, c.cc, "Query", in, opts)
}

func (c *vortexServiceClient) CalcDistance(ctx context.Context, in *CalcDistanceRequest, opts ...grpc.CallOption) (*CalcDistanceResponse, error) {
	return call[CalcDistanceResponse](ctx, c.cc, "CalcDistance", in, opts)
}

func (c *vortexServiceClient) GetMetrics(ctx context.Context, in *GetMetricsRequest, opts ...grpc.CallOption) (*GetMetricsResponse, error) {
	return call[GetMetricsResponse](ctx, c.cc, "GetMetrics", in, opts)
}

func (c *vortexServiceClient) GetPersistentSegmentInfo(ctx context.Context, in *GetPersistentSegmentInfoRequest, opts ...grpc.CallOption) (*GetPersistentSegmentInfoResponse, error) {
	return call[GetPersistentSegmentInfoResponse](ctx, c.cc, "GetPersistentSegmentInfo", in, opts)
}

func (c *vortexServiceClient) GetQuerySegmentInfo(ctx context.Context, in *GetQuerySegmentInfoRequest, opts ...grpc.CallOption) (*GetQuerySegmentInfoResponse, error) {
	return call[GetQuerySegmentInfoResponse](ctx, c.cc, "GetQuerySegmentInfo", in, opts)
}

// unary wraps one server method into a grpc.MethodDesc, decoding into Req
// and honoring an installed interceptor the way generated stubs do.
func unary[Req any](name string, handle func(VortexServiceServer, context.Context, *Req) (any, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return handle(srv.(VortexServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return handle(srv.(VortexServiceServer), ctx, req.(*Req))
			})
		},
	}
}

// ServiceDesc registers a VortexServiceServer implementation with a
// grpc.Server.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*VortexServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateCollection", func(s VortexServiceServer, ctx context.Context, in *CreateCollectionRequest) (any, error) {
			return s.CreateCollection(ctx, in)
		}),
		unary("DropCollection", func(s VortexServiceServer, ctx context.Context, in *DropCollectionRequest) (any, error) {
			return s.DropCollection(ctx, in)
		}),
		unary("HasCollection", func(s VortexServiceServer, ctx context.Context, in *HasCollectionRequest) (any, error) {
			return s.HasCollection(ctx, in)
		}),
		unary("DescribeCollection", func(s VortexServiceServer, ctx context.Context, in *DescribeCollectionRequest) (any, error) {
			return s.DescribeCollection(ctx, in)
		}),
		unary("GetCollectionStatistics", func(s VortexServiceServer, ctx context.Context, in *GetCollectionStatisticsRequest) (any, error) {
			return s.GetCollectionStatistics(ctx, in)
		}),
		unary("ShowCollections", func(s VortexServiceServer, ctx context.Context, in *ShowCollectionsRequest) (any, error) {
			return s.ShowCollections(ctx, in)
		}),
		unary("LoadCollection", func(s VortexServiceServer, ctx context.Context, in *LoadCollectionRequest) (any, error) {
			return s.LoadCollection(ctx, in)
		}),
		unary("ReleaseCollection", func(s VortexServiceServer, ctx context.Context, in *ReleaseCollectionRequest) (any, error) {
			return s.ReleaseCollection(ctx, in)
		}),
		unary("Flush", func(s VortexServiceServer, ctx context.Context, in *FlushRequest) (any, error) {
			return s.Flush(ctx, in)
		}),
		unary("CreatePartition", func(s VortexServiceServer, ctx context.Context, in *CreatePartitionRequest) (any, error) {
			return s.CreatePartition(ctx, in)
		}),
		unary("DropPartition", func(s VortexServiceServer, ctx context.Context, in *DropPartitionRequest) (any, error) {
			return s.DropPartition(ctx, in)
		}),
		unary("HasPartition", func(s VortexServiceServer, ctx context.Context, in *HasPartitionRequest) (any, error) {
			return s.HasPartition(ctx, in)
		}),
		unary("LoadPartitions", func(s VortexServiceServer, ctx context.Context, in *LoadPartitionsRequest) (any, error) {
			return s.LoadPartitions(ctx, in)
		}),
		unary("ReleasePartitions", func(s VortexServiceServer, ctx context.Context, in *ReleasePartitionsRequest) (any, error) {
			return s.ReleasePartitions(ctx, in)
		}),
		unary("GetPartitionStatistics", func(s VortexServiceServer, ctx context.Context, in *GetPartitionStatisticsRequest) (any, error) {
			return s.GetPartitionStatistics(ctx, in)
		}),
		unary("ShowPartitions", func(s VortexServiceServer, ctx context.Context, in *ShowPartitionsRequest) (any, error) {
			return s.ShowPartitions(ctx, in)
		}),
		unary("CreateAlias", func(s VortexServiceServer, ctx context.Context, in *CreateAliasRequest) (any, error) {
			return s.CreateAlias(ctx, in)
		}),
		unary("DropAlias", func(s VortexServiceServer, ctx context.Context, in *DropAliasRequest) (any, error) {
			return s.DropAlias(ctx, in)
		}),
		unary("AlterAlias", func(s VortexServiceServer, ctx context.Context, in *AlterAliasRequest) (any, error) {
			return s.AlterAlias(ctx, in)
		}),
		unary("CreateIndex", func(s VortexServiceServer, ctx context.Context, in *CreateIndexRequest) (any, error) {
			return s.CreateIndex(ctx, in)
		}),
		unary("DescribeIndex", func(s VortexServiceServer, ctx context.Context, in *DescribeIndexRequest) (any, error) {
			return s.DescribeIndex(ctx, in)
		}),
		unary("GetIndexState", func(s VortexServiceServer, ctx context.Context, in *GetIndexStateRequest) (any, error) {
			return s.GetIndexState(ctx, in)
		}),
		unary("GetIndexBuildProgress", func(s VortexServiceServer, ctx context.Context, in *GetIndexBuildProgressRequest) (any, error) {
			return s.GetIndexBuildProgress(ctx, in)
		}),
		unary("DropIndex", func(s VortexServiceServer, ctx context.Context, in *DropIndexRequest) (any, error) {
			return s.DropIndex(ctx, in)
		}),
		unary("Insert", func(s VortexServiceServer, ctx context.Context, in *InsertRequest) (any, error) {
			return s.Insert(ctx, in)
		}),
		unary("Delete", func(s VortexServiceServer, ctx context.Context, in *DeleteRequest) (any, error) {
			return s.Delete(ctx, in)
		}),
		unary("Search", func(s VortexServiceServer, ctx context.Context, in *SearchRequest) (any, error) {
			return s.Search(ctx, in)
		}),
		unary("Query", func(s VortexServiceServer, ctx context.Context, in *QueryRequest) (any, error) {
			return s.Query(ctx, in)
		}),
		unary("CalcDistance", func(s VortexServiceServer, ctx context.Context, in *CalcDistanceRequest) (any, error) {
			return s.CalcDistance(ctx, in)
		}),
		unary("GetMetrics", func(s VortexServiceServer, ctx context.Context, in *GetMetricsRequest) (any, error) {
			return s.GetMetrics(ctx, in)
		}),
		unary("GetPersistentSegmentInfo", func(s VortexServiceServer, ctx context.Context, in *GetPersistentSegmentInfoRequest) (any, error) {
			return s.GetPersistentSegmentInfo(ctx, in)
		}),
		unary("GetQuerySegmentInfo", func(s VortexServiceServer, ctx context.Context, in *GetQuerySegmentInfoRequest) (any, error) {
			return s.GetQuerySegmentInfo(ctx, in)
		}),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterVortexServiceServer registers srv with a gRPC server.
func RegisterVortexServiceServer(s grpc.ServiceRegistrar, srv VortexServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}
