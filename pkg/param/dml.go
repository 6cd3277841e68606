// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package param

import (
	"github.com/vortexdb/vortex-go/pkg/entity"
)

// Field is one column of an insert request: a name, a declared data type and
// a slice of values. Values must be the Go slice type matching the declared
// data type; Build rejects mismatches so a typed request can never carry
// mistyped data.
//
//	Bool         []bool
//	Int8         []int8
//	Int16        []int16
//	Int32        []int32
//	Int64        []int64
//	Float        []float32
//	Double       []float64
//	String       []string
//	VarChar      []string
//	FloatVector  [][]float32 (uniform dimension)
//	BinaryVector [][]byte    (uniform byte length)
type Field struct {
	Name   string
	Type   entity.DataType
	Values any
}

// rowCount validates the field's value slice against its declared type and
// returns the number of rows it carries.
func (f *Field) rowCount() (int, error) {
	if f.Name == "" {
		return 0, errorf("field name must not be empty")
	}
	switch f.Type {
	case entity.DataTypeBool:
		v, ok := f.Values.([]bool)
		if !ok {
			return 0, f.typeMismatch("[]bool")
		}
		return len(v), nil
	case entity.DataTypeInt8:
		v, ok := f.Values.([]int8)
		if !ok {
			return 0, f.typeMismatch("[]int8")
		}
		return len(v), nil
	case entity.DataTypeInt16:
		v, ok := f.Values.([]int16)
		if !ok {
			return 0, f.typeMismatch("[]int16")
		}
		return len(v), nil
	case entity.DataTypeInt32:
		v, ok := f.Values.([]int32)
		if !ok {
			return 0, f.typeMismatch("[]int32")
		}
		return len(v), nil
	case entity.DataTypeInt64:
		v, ok := f.Values.([]int64)
		if !ok {
			return 0, f.typeMismatch("[]int64")
		}
		return len(v), nil
	case entity.DataTypeFloat:
		v, ok := f.Values.([]float32)
		if !ok {
			return 0, f.typeMismatch("[]float32")
		}
		return len(v), nil
	case entity.DataTypeDouble:
		v, ok := f.Values.([]float64)
		if !ok {
			return 0, f.typeMismatch("[]float64")
		}
		return len(v), nil
	case entity.DataTypeString, entity.DataTypeVarChar:
		v, ok := f.Values.([]string)
		if !ok {
			return 0, f.typeMismatch("[]string")
		}
		return len(v), nil
	case entity.DataTypeFloatVector:
		v, ok := f.Values.([][]float32)
		if !ok {
			return 0, f.typeMismatch("[][]float32")
		}
		if len(v) == 0 {
			return 0, nil
		}
		if err := checkFloatVectors(v, "field "+f.Name); err != nil {
			return 0, err
		}
		return len(v), nil
	case entity.DataTypeBinaryVector:
		v, ok := f.Values.([][]byte)
		if !ok {
			return 0, f.typeMismatch("[][]byte")
		}
		if len(v) == 0 {
			return 0, nil
		}
		if err := checkBinaryVectors(v, "field "+f.Name); err != nil {
			return 0, err
		}
		return len(v), nil
	default:
		return 0, errorf("field %q has unsupported data type %s", f.Name, f.Type)
	}
}

func (f *Field) typeMismatch(want string) error {
	return errorf("field %q declared as %s requires values of type %s, got %T",
		f.Name, f.Type, want, f.Values)
}

// InsertParam carries one batch of rows for a collection. All fields must
// report the same, positive row count.
type InsertParam struct {
	collectionName string
	partitionName  string
	fields         []Field
	rowCount       int
}

func (p *InsertParam) CollectionName() string { return p.collectionName }
func (p *InsertParam) PartitionName() string  { return p.partitionName }
func (p *InsertParam) Fields() []Field        { return p.fields }
func (p *InsertParam) RowCount() int          { return p.rowCount }

type InsertBuilder struct {
	p InsertParam
}

func NewInsertBuilder() *InsertBuilder {
	return &InsertBuilder{}
}

func (b *InsertBuilder) WithCollectionName(name string) *InsertBuilder {
	b.p.collectionName = name
	return b
}

func (b *InsertBuilder) WithPartitionName(name string) *InsertBuilder {
	b.p.partitionName = name
	return b
}

func (b *InsertBuilder) WithFields(fields []Field) *InsertBuilder {
	b.p.fields = fields
	return b
}

func (b *InsertBuilder) AddField(f Field) *InsertBuilder {
	b.p.fields = append(b.p.fields, f)
	return b
}

func (b *InsertBuilder) Build() (*InsertParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	if len(b.p.fields) == 0 {
		return nil, errorf("insert requires at least one field")
	}
	rows := -1
	for i := range b.p.fields {
		n, err := b.p.fields[i].rowCount()
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, errorf("field %q has no rows", b.p.fields[i].Name)
		}
		if rows >= 0 && n != rows {
			return nil, errorf("field %q has %d rows, other fields have %d",
				b.p.fields[i].Name, n, rows)
		}
		rows = n
	}
	built := b.p
	built.fields = append([]Field(nil), b.p.fields...)
	built.rowCount = rows
	return &built, nil
}

// DeleteParam deletes rows matching a boolean expression.
type DeleteParam struct {
	collectionName string
	partitionName  string
	expr           string
}

func (p *DeleteParam) CollectionName() string { return p.collectionName }
func (p *DeleteParam) PartitionName() string  { return p.partitionName }
func (p *DeleteParam) Expr() string           { return p.expr }

type DeleteBuilder struct {
	p DeleteParam
}

func NewDeleteBuilder() *DeleteBuilder {
	return &DeleteBuilder{}
}

func (b *DeleteBuilder) WithCollectionName(name string) *DeleteBuilder {
	b.p.collectionName = name
	return b
}

func (b *DeleteBuilder) WithPartitionName(name string) *DeleteBuilder {
	b.p.partitionName = name
	return b
}

func (b *DeleteBuilder) WithExpr(expr string) *DeleteBuilder {
	b.p.expr = expr
	return b
}

func (b *DeleteBuilder) Build() (*DeleteParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	if err := checkName(b.p.expr, "expression"); err != nil {
		return nil, err
	}
	built := b.p
	return &built, nil
}

// SearchParam describes an approximate nearest neighbor search. Exactly one
// of the float or binary vector batches must be supplied; all vectors in the
// batch must share one dimensionality.
type SearchParam struct {
	collectionName  string
	partitionNames  []string
	outFields       []string
	expr            string
	vectorFieldName string
	metricType      entity.MetricType
	topK            int64
	params          string
	floatVectors    [][]float32
	binaryVectors   [][]byte
}

func (p *SearchParam) CollectionName() string        { return p.collectionName }
func (p *SearchParam) PartitionNames() []string      { return p.partitionNames }
func (p *SearchParam) OutFields() []string           { return p.outFields }
func (p *SearchParam) Expr() string                  { return p.expr }
func (p *SearchParam) VectorFieldName() string       { return p.vectorFieldName }
func (p *SearchParam) MetricType() entity.MetricType { return p.metricType }
func (p *SearchParam) TopK() int64                   { return p.topK }
func (p *SearchParam) Params() string                { return p.params }
func (p *SearchParam) FloatVectors() [][]float32     { return p.floatVectors }
func (p *SearchParam) BinaryVectors() [][]byte       { return p.binaryVectors }

type SearchBuilder struct {
	p SearchParam
}

func NewSearchBuilder() *SearchBuilder {
	return &SearchBuilder{p: SearchParam{params: "{}"}}
}

func (b *SearchBuilder) WithCollectionName(name string) *SearchBuilder {
	b.p.collectionName = name
	return b
}

func (b *SearchBuilder) WithPartitionNames(names []string) *SearchBuilder {
	b.p.partitionNames = names
	return b
}

func (b *SearchBuilder) WithOutFields(fields []string) *SearchBuilder {
	b.p.outFields = fields
	return b
}

func (b *SearchBuilder) WithExpr(expr string) *SearchBuilder {
	b.p.expr = expr
	return b
}

func (b *SearchBuilder) WithVectorFieldName(name string) *SearchBuilder {
	b.p.vectorFieldName = name
	return b
}

func (b *SearchBuilder) WithMetricType(t entity.MetricType) *SearchBuilder {
	b.p.metricType = t
	return b
}

func (b *SearchBuilder) WithTopK(k int64) *SearchBuilder {
	b.p.topK = k
	return b
}

// WithParams supplies search tuning parameters as an opaque JSON string,
// e.g. `{"nprobe":10}`.
func (b *SearchBuilder) WithParams(params string) *SearchBuilder {
	b.p.params = params
	return b
}

func (b *SearchBuilder) WithFloatVectors(vectors [][]float32) *SearchBuilder {
	b.p.floatVectors = vectors
	return b
}

func (b *SearchBuilder) WithBinaryVectors(vectors [][]byte) *SearchBuilder {
	b.p.binaryVectors = vectors
	return b
}

func (b *SearchBuilder) Build() (*SearchParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	if err := checkName(b.p.vectorFieldName, "vector field name"); err != nil {
		return nil, err
	}
	if err := checkNames(b.p.partitionNames, "partition names"); err != nil {
		return nil, err
	}
	if err := checkNames(b.p.outFields, "output fields"); err != nil {
		return nil, err
	}
	if b.p.metricType == entity.MetricTypeInvalid {
		return nil, errorf("metric type must be set")
	}
	if b.p.topK <= 0 {
		return nil, errorf("topK must be positive, got %d", b.p.topK)
	}
	switch {
	case len(b.p.floatVectors) > 0 && len(b.p.binaryVectors) > 0:
		return nil, errorf("search accepts float vectors or binary vectors, not both")
	case len(b.p.floatVectors) > 0:
		if err := checkFloatVectors(b.p.floatVectors, "search vectors"); err != nil {
			return nil, err
		}
	case len(b.p.binaryVectors) > 0:
		if err := checkBinaryVectors(b.p.binaryVectors, "search vectors"); err != nil {
			return nil, err
		}
	default:
		return nil, errorf("search vectors must not be empty")
	}
	built := b.p
	built.partitionNames = append([]string(nil), b.p.partitionNames...)
	built.outFields = append([]string(nil), b.p.outFields...)
	return &built, nil
}

// QueryParam retrieves rows matching a boolean expression.
type QueryParam struct {
	collectionName string
	partitionNames []string
	outFields      []string
	expr           string
}

func (p *QueryParam) CollectionName() string   { return p.collectionName }
func (p *QueryParam) PartitionNames() []string { return p.partitionNames }
func (p *QueryParam) OutFields() []string      { return p.outFields }
func (p *QueryParam) Expr() string             { return p.expr }

type QueryBuilder struct {
	p QueryParam
}

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

func (b *QueryBuilder) WithCollectionName(name string) *QueryBuilder {
	b.p.collectionName = name
	return b
}

func (b *QueryBuilder) WithPartitionNames(names []string) *QueryBuilder {
	b.p.partitionNames = names
	return b
}

func (b *QueryBuilder) WithOutFields(fields []string) *QueryBuilder {
	b.p.outFields = fields
	return b
}

func (b *QueryBuilder) WithExpr(expr string) *QueryBuilder {
	b.p.expr = expr
	return b
}

func (b *QueryBuilder) Build() (*QueryParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	if err := checkName(b.p.expr, "expression"); err != nil {
		return nil, err
	}
	if err := checkNames(b.p.partitionNames, "partition names"); err != nil {
		return nil, err
	}
	if err := checkNames(b.p.outFields, "output fields"); err != nil {
		return nil, err
	}
	built := b.p
	built.partitionNames = append([]string(nil), b.p.partitionNames...)
	built.outFields = append([]string(nil), b.p.outFields...)
	return &built, nil
}

// CalcDistanceParam computes pairwise distances between two vector batches.
// Both batches must use the same representation (float or binary) and every
// vector across both batches must share one dimensionality.
type CalcDistanceParam struct {
	metricType         entity.MetricType
	floatVectorsLeft   [][]float32
	floatVectorsRight  [][]float32
	binaryVectorsLeft  [][]byte
	binaryVectorsRight [][]byte
}

func (p *CalcDistanceParam) MetricType() entity.MetricType  { return p.metricType }
func (p *CalcDistanceParam) FloatVectorsLeft() [][]float32  { return p.floatVectorsLeft }
func (p *CalcDistanceParam) FloatVectorsRight() [][]float32 { return p.floatVectorsRight }
func (p *CalcDistanceParam) BinaryVectorsLeft() [][]byte    { return p.binaryVectorsLeft }
func (p *CalcDistanceParam) BinaryVectorsRight() [][]byte   { return p.binaryVectorsRight }

type CalcDistanceBuilder struct {
	p CalcDistanceParam
}

func NewCalcDistanceBuilder() *CalcDistanceBuilder {
	return &CalcDistanceBuilder{}
}

func (b *CalcDistanceBuilder) WithMetricType(t entity.MetricType) *CalcDistanceBuilder {
	b.p.metricType = t
	return b
}

func (b *CalcDistanceBuilder) WithVectorsLeft(vectors [][]float32) *CalcDistanceBuilder {
	b.p.floatVectorsLeft = vectors
	return b
}

func (b *CalcDistanceBuilder) WithVectorsRight(vectors [][]float32) *CalcDistanceBuilder {
	b.p.floatVectorsRight = vectors
	return b
}

func (b *CalcDistanceBuilder) WithBinaryVectorsLeft(vectors [][]byte) *CalcDistanceBuilder {
	b.p.binaryVectorsLeft = vectors
	return b
}

func (b *CalcDistanceBuilder) WithBinaryVectorsRight(vectors [][]byte) *CalcDistanceBuilder {
	b.p.binaryVectorsRight = vectors
	return b
}

func (b *CalcDistanceBuilder) Build() (*CalcDistanceParam, error) {
	if b.p.metricType == entity.MetricTypeInvalid {
		return nil, errorf("metric type must be set")
	}
	float := len(b.p.floatVectorsLeft) > 0 || len(b.p.floatVectorsRight) > 0
	binary := len(b.p.binaryVectorsLeft) > 0 || len(b.p.binaryVectorsRight) > 0
	switch {
	case float && binary:
		return nil, errorf("calc distance accepts float vectors or binary vectors, not both")
	case float:
		if err := checkFloatVectors(b.p.floatVectorsLeft, "left vectors"); err != nil {
			return nil, err
		}
		if err := checkFloatVectors(b.p.floatVectorsRight, "right vectors"); err != nil {
			return nil, err
		}
		if len(b.p.floatVectorsLeft[0]) != len(b.p.floatVectorsRight[0]) {
			return nil, errorf("left vectors have dimension %d, right vectors have %d",
				len(b.p.floatVectorsLeft[0]), len(b.p.floatVectorsRight[0]))
		}
	case binary:
		if err := checkBinaryVectors(b.p.binaryVectorsLeft, "left vectors"); err != nil {
			return nil, err
		}
		if err := checkBinaryVectors(b.p.binaryVectorsRight, "right vectors"); err != nil {
			return nil, err
		}
		if len(b.p.binaryVectorsLeft[0]) != len(b.p.binaryVectorsRight[0]) {
			return nil, errorf("left vectors have %d bytes, right vectors have %d",
				len(b.p.binaryVectorsLeft[0]), len(b.p.binaryVectorsRight[0]))
		}
	default:
		return nil, errorf("calc distance requires vectors on both sides")
	}
	built := b.p
	return &built, nil
}
