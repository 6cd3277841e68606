// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire defines the request/response messages of the VortexDB RPC
// service and a hand-rolled gRPC service descriptor moving them with a JSON
// codec. The client core treats everything here as plain data; all control
// flow lives in pkg/client.
package wire

import (
	"github.com/vortexdb/vortex-go/pkg/entity"
)

// ErrorCode is the service-level status code carried in every response.
// Zero means the server accepted and executed the request.
type ErrorCode int32

const (
	ErrorCodeSuccess             ErrorCode = 0
	ErrorCodeUnexpectedError     ErrorCode = 1
	ErrorCodeCollectionNotExists ErrorCode = 4
	ErrorCodeIllegalArgument     ErrorCode = 5
	ErrorCodeIndexNotExist       ErrorCode = 25
)

// Status is the service-level outcome of a request. Operations without a
// payload return it directly; payload-bearing responses embed it.
type Status struct {
	ErrorCode ErrorCode `json:"error_code"`
	Reason    string    `json:"reason,omitempty"`
}

// OK reports whether the server accepted the request.
func (s *Status) OK() bool {
	return s != nil && s.ErrorCode == ErrorCodeSuccess
}

// KeyValuePair carries string-typed request or result attributes.
type KeyValuePair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// FieldData is one column of inserted or returned data. Exactly one of the
// value slices is populated, matching Type.
type FieldData struct {
	FieldName string          `json:"field_name"`
	Type      entity.DataType `json:"type"`

	Bool   []bool    `json:"bool_data,omitempty"`
	Int    []int32   `json:"int_data,omitempty"`
	Long   []int64   `json:"long_data,omitempty"`
	Float  []float32 `json:"float_data,omitempty"`
	Double []float64 `json:"double_data,omitempty"`
	String []string  `json:"string_data,omitempty"`

	Dim          int64       `json:"dim,omitempty"`
	FloatVector  [][]float32 `json:"float_vector,omitempty"`
	BinaryVector [][]byte    `json:"binary_vector,omitempty"`
}

// ---- collection ----

type CreateCollectionRequest struct {
	CollectionName string                  `json:"collection_name"`
	Schema         entity.CollectionSchema `json:"schema"`
	ShardsNum      int32                   `json:"shards_num"`
}

type DropCollectionRequest struct {
	CollectionName string `json:"collection_name"`
}

type HasCollectionRequest struct {
	CollectionName string `json:"collection_name"`
}

type BoolResponse struct {
	Status Status `json:"status"`
	Value  bool   `json:"value"`
}

type DescribeCollectionRequest struct {
	CollectionName string `json:"collection_name"`
}

type DescribeCollectionResponse struct {
	Status              Status                  `json:"status"`
	Schema              entity.CollectionSchema `json:"schema"`
	CollectionID        int64                   `json:"collection_id"`
	ShardsNum           int32                   `json:"shards_num"`
	CreatedUtcTimestamp uint64                  `json:"created_utc_timestamp"`
}

type GetCollectionStatisticsRequest struct {
	CollectionName string `json:"collection_name"`
}

type GetCollectionStatisticsResponse struct {
	Status Status         `json:"status"`
	Stats  []KeyValuePair `json:"stats"`
}

type ShowCollectionsRequest struct {
	Type            entity.ShowType `json:"type"`
	CollectionNames []string        `json:"collection_names,omitempty"`
}

type ShowCollectionsResponse struct {
	Status              Status   `json:"status"`
	CollectionNames     []string `json:"collection_names"`
	CollectionIDs       []int64  `json:"collection_ids,omitempty"`
	InMemoryPercentages []int64  `json:"in_memory_percentages,omitempty"`
}

type LoadCollectionRequest struct {
	CollectionName string `json:"collection_name"`
}

type ReleaseCollectionRequest struct {
	CollectionName string `json:"collection_name"`
}

type FlushRequest struct {
	CollectionNames []string `json:"collection_names"`
}

type FlushResponse struct {
	Status     Status             `json:"status"`
	CollSegIDs map[string][]int64 `json:"coll_seg_ids"`
}

// ---- partition ----

type CreatePartitionRequest struct {
	CollectionName string `json:"collection_name"`
	PartitionName  string `json:"partition_name"`
}

type DropPartitionRequest struct {
	CollectionName string `json:"collection_name"`
	PartitionName  string `json:"partition_name"`
}

type HasPartitionRequest struct {
	CollectionName string `json:"collection_name"`
	PartitionName  string `json:"partition_name"`
}

type LoadPartitionsRequest struct {
	CollectionName string   `json:"collection_name"`
	PartitionNames []string `json:"partition_names"`
}

type ReleasePartitionsRequest struct {
	CollectionName string   `json:"collection_name"`
	PartitionNames []string `json:"partition_names"`
}

type GetPartitionStatisticsRequest struct {
	CollectionName string `json:"collection_name"`
	PartitionName  string `json:"partition_name"`
}

type GetPartitionStatisticsResponse struct {
	Status Status         `json:"status"`
	Stats  []KeyValuePair `json:"stats"`
}

type ShowPartitionsRequest struct {
	CollectionName string          `json:"collection_name"`
	PartitionNames []string        `json:"partition_names,omitempty"`
	Type           entity.ShowType `json:"type"`
}

type ShowPartitionsResponse struct {
	Status              Status   `json:"status"`
	PartitionNames      []string `json:"partition_names"`
	PartitionIDs        []int64  `json:"partition_ids,omitempty"`
	InMemoryPercentages []int64  `json:"in_memory_percentages,omitempty"`
}

// ---- alias ----

type CreateAliasRequest struct {
	CollectionName string `json:"collection_name"`
	Alias          string `json:"alias"`
}

type DropAliasRequest struct {
	Alias string `json:"alias"`
}

type AlterAliasRequest struct {
	CollectionName string `json:"collection_name"`
	Alias          string `json:"alias"`
}

// ---- index ----

type CreateIndexRequest struct {
	CollectionName string         `json:"collection_name"`
	FieldName      string         `json:"field_name"`
	ExtraParams    []KeyValuePair `json:"extra_params"`
}

type DescribeIndexRequest struct {
	CollectionName string `json:"collection_name"`
	FieldName      string `json:"field_name"`
}

type IndexDescription struct {
	IndexName string         `json:"index_name"`
	IndexID   int64          `json:"index_id"`
	FieldName string         `json:"field_name"`
	Params    []KeyValuePair `json:"params"`
}

type DescribeIndexResponse struct {
	Status            Status             `json:"status"`
	IndexDescriptions []IndexDescription `json:"index_descriptions"`
}

type GetIndexStateRequest struct {
	CollectionName string `json:"collection_name"`
	FieldName      string `json:"field_name"`
}

type GetIndexStateResponse struct {
	Status     Status            `json:"status"`
	State      entity.IndexState `json:"state"`
	FailReason string            `json:"fail_reason,omitempty"`
}

type GetIndexBuildProgressRequest struct {
	CollectionName string `json:"collection_name"`
}

type GetIndexBuildProgressResponse struct {
	Status      Status `json:"status"`
	IndexedRows int64  `json:"indexed_rows"`
	TotalRows   int64  `json:"total_rows"`
}

type DropIndexRequest struct {
	CollectionName string `json:"collection_name"`
	FieldName      string `json:"field_name"`
}

// ---- data ----

type InsertRequest struct {
	CollectionName string      `json:"collection_name"`
	PartitionName  string      `json:"partition_name,omitempty"`
	FieldsData     []FieldData `json:"fields_data"`
	NumRows        uint32      `json:"num_rows"`
}

type MutationResult struct {
	Status      Status   `json:"status"`
	IntIDs      []int64  `json:"int_ids,omitempty"`
	StrIDs      []string `json:"str_ids,omitempty"`
	InsertCount int64    `json:"insert_count,omitempty"`
	DeleteCount int64    `json:"delete_count,omitempty"`
	Timestamp   uint64   `json:"timestamp,omitempty"`
}

type DeleteRequest struct {
	CollectionName string `json:"collection_name"`
	PartitionName  string `json:"partition_name,omitempty"`
	Expr           string `json:"expr"`
}

type SearchRequest struct {
	CollectionName string   `json:"collection_name"`
	PartitionNames []string `json:"partition_names,omitempty"`
	OutputFields   []string `json:"output_fields,omitempty"`
	Expr           string   `json:"expr,omitempty"`

	VectorFieldName string            `json:"vector_field_name"`
	MetricType      entity.MetricType `json:"metric_type"`
	TopK            int64             `json:"top_k"`
	Params          string            `json:"params,omitempty"`

	FloatVectors  [][]float32 `json:"float_vectors,omitempty"`
	BinaryVectors [][]byte    `json:"binary_vectors,omitempty"`
}

type SearchResultData struct {
	NumQueries int64       `json:"num_queries"`
	TopK       int64       `json:"top_k"`
	IntIDs     []int64     `json:"int_ids,omitempty"`
	StrIDs     []string    `json:"str_ids,omitempty"`
	Scores     []float32   `json:"scores"`
	Topks      []int64     `json:"topks,omitempty"`
	FieldsData []FieldData `json:"fields_data,omitempty"`
}

type SearchResponse struct {
	Status  Status           `json:"status"`
	Results SearchResultData `json:"results"`
}

type QueryRequest struct {
	CollectionName string   `json:"collection_name"`
	PartitionNames []string `json:"partition_names,omitempty"`
	OutputFields   []string `json:"output_fields,omitempty"`
	Expr           string   `json:"expr"`
}

type QueryResponse struct {
	Status     Status      `json:"status"`
	FieldsData []FieldData `json:"fields_data"`
}

type CalcDistanceRequest struct {
	MetricType entity.MetricType `json:"metric_type"`

	FloatVectorsLeft   [][]float32 `json:"float_vectors_left,omitempty"`
	FloatVectorsRight  [][]float32 `json:"float_vectors_right,omitempty"`
	BinaryVectorsLeft  [][]byte    `json:"binary_vectors_left,omitempty"`
	BinaryVectorsRight [][]byte    `json:"binary_vectors_right,omitempty"`
}

type CalcDistanceResponse struct {
	Status         Status    `json:"status"`
	IntDistances   []int32   `json:"int_distances,omitempty"`
	FloatDistances []float32 `json:"float_distances,omitempty"`
}

// ---- control ----

type GetMetricsRequest struct {
	Request string `json:"request"`
}

type GetMetricsResponse struct {
	Status        Status `json:"status"`
	Response      string `json:"response"`
	ComponentName string `json:"component_name,omitempty"`
}

type GetPersistentSegmentInfoRequest struct {
	CollectionName string `json:"collection_name"`
}

type PersistentSegmentInfo struct {
	SegmentID    int64               `json:"segment_id"`
	CollectionID int64               `json:"collection_id"`
	PartitionID  int64               `json:"partition_id"`
	NumRows      int64               `json:"num_rows"`
	State        entity.SegmentState `json:"state"`
}

type GetPersistentSegmentInfoResponse struct {
	Status Status                  `json:"status"`
	Infos  []PersistentSegmentInfo `json:"infos"`
}

type GetQuerySegmentInfoRequest struct {
	CollectionName string `json:"collection_name"`
}

type QuerySegmentInfo struct {
	SegmentID    int64               `json:"segment_id"`
	CollectionID int64               `json:"collection_id"`
	PartitionID  int64               `json:"partition_id"`
	NumRows      int64               `json:"num_rows"`
	MemSize      int64               `json:"mem_size"`
	IndexName    string              `json:"index_name,omitempty"`
	IndexID      int64               `json:"index_id,omitempty"`
	State        entity.SegmentState `json:"state"`
}

type GetQuerySegmentInfoResponse struct {
	Status Status             `json:"status"`
	Infos  []QuerySegmentInfo `json:"infos"`
}
