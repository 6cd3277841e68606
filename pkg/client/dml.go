// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/vortexdb/vortex-go/pkg/entity"
	"github.com/vortexdb/vortex-go/pkg/param"
	"github.com/vortexdb/vortex-go/pkg/wire"
)

// Insert writes one batch of rows. Field values were validated against their
// declared types at Build time, so conversion here cannot fail.
func (c *Client) Insert(ctx context.Context, p *param.InsertParam) (*wire.MutationResult, error) {
	fields := make([]wire.FieldData, 0, len(p.Fields()))
	for _, f := range p.Fields() {
		fields = append(fields, fieldData(f))
	}
	return invoke(c, ctx, "Insert", func(ctx context.Context) (*wire.MutationResult, error) {
		return c.service.Insert(ctx, &wire.InsertRequest{
			CollectionName: p.CollectionName(),
			PartitionName:  p.PartitionName(),
			FieldsData:     fields,
			NumRows:        uint32(p.RowCount()),
		})
	}, func(r *wire.MutationResult) *wire.Status { return &r.Status })
}

func (c *Client) Delete(ctx context.Context, p *param.DeleteParam) (*wire.MutationResult, error) {
	return invoke(c, ctx, "Delete", func(ctx context.Context) (*wire.MutationResult, error) {
		return c.service.Delete(ctx, &wire.DeleteRequest{
			CollectionName: p.CollectionName(),
			PartitionName:  p.PartitionName(),
			Expr:           p.Expr(),
		})
	}, func(r *wire.MutationResult) *wire.Status { return &r.Status })
}

func (c *Client) Search(ctx context.Context, p *param.SearchParam) (*wire.SearchResponse, error) {
	return invoke(c, ctx, "Search", func(ctx context.Context) (*wire.SearchResponse, error) {
		return c.service.Search(ctx, &wire.SearchRequest{
			CollectionName:  p.CollectionName(),
			PartitionNames:  p.PartitionNames(),
			OutputFields:    p.OutFields(),
			Expr:            p.Expr(),
			VectorFieldName: p.VectorFieldName(),
			MetricType:      p.MetricType(),
			TopK:            p.TopK(),
			Params:          p.Params(),
			FloatVectors:    p.FloatVectors(),
			BinaryVectors:   p.BinaryVectors(),
		})
	}, func(r *wire.SearchResponse) *wire.Status { return &r.Status })
}

func (c *Client) Query(ctx context.Context, p *param.QueryParam) (*wire.QueryResponse, error) {
	return invoke(c, ctx, "Query", func(ctx context.Context) (*wire.QueryResponse, error) {
		return c.service.Query(ctx, &wire.QueryRequest{
			CollectionName: p.CollectionName(),
			PartitionNames: p.PartitionNames(),
			OutputFields:   p.OutFields(),
			Expr:           p.Expr(),
		})
	}, func(r *wire.QueryResponse) *wire.Status { return &r.Status })
}

func (c *Client) CalcDistance(ctx context.Context, p *param.CalcDistanceParam) (*wire.CalcDistanceResponse, error) {
	return invoke(c, ctx, "CalcDistance", func(ctx context.Context) (*wire.CalcDistanceResponse, error) {
		return c.service.CalcDistance(ctx, &wire.CalcDistanceRequest{
			MetricType:         p.MetricType(),
			FloatVectorsLeft:   p.FloatVectorsLeft(),
			FloatVectorsRight:  p.FloatVectorsRight(),
			BinaryVectorsLeft:  p.BinaryVectorsLeft(),
			BinaryVectorsRight: p.BinaryVectorsRight(),
		})
	}, func(r *wire.CalcDistanceResponse) *wire.Status { return &r.Status })
}

// fieldData converts one validated insert field into its wire column.
func fieldData(f param.Field) wire.FieldData {
	fd := wire.FieldData{FieldName: f.Name, Type: f.Type}
	switch f.Type {
	case entity.DataTypeBool:
		fd.Bool = f.Values.([]bool)
	case entity.DataTypeInt8:
		fd.Int = widenInts(f.Values.([]int8))
	case entity.DataTypeInt16:
		fd.Int = widenInts(f.Values.([]int16))
	case entity.DataTypeInt32:
		fd.Int = f.Values.([]int32)
	case entity.DataTypeInt64:
		fd.Long = f.Values.([]int64)
	case entity.DataTypeFloat:
		fd.Float = f.Values.([]float32)
	case entity.DataTypeDouble:
		fd.Double = f.Values.([]float64)
	case entity.DataTypeString, entity.DataTypeVarChar:
		fd.String = f.Values.([]string)
	case entity.DataTypeFloatVector:
		v := f.Values.([][]float32)
		fd.FloatVector = v
		fd.Dim = int64(len(v[0]))
	case entity.DataTypeBinaryVector:
		v := f.Values.([][]byte)
		fd.BinaryVector = v
		fd.Dim = int64(len(v[0]) * 8)
	}
	return fd
}

// Narrow integer columns travel as int32 on the wire.
func widenInts[T int8 | int16](values []T) []int32 {
	out := make([]int32, len(values))
	for i, v := range values {
		out[i] = int32(v)
	}
	return out
}
