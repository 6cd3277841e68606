// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package param

import (
	"time"

	"github.com/vortexdb/vortex-go/pkg/entity"
)

// CreateIndexParam describes a secondary index to build on a vector field.
// The index build runs asynchronously on the server; sync mode blocks until
// the reported index state is Finished.
type CreateIndexParam struct {
	collectionName string
	fieldName      string
	indexType      entity.IndexType
	metricType     entity.MetricType
	extraParam     string
	wait           syncWait
}

func (p *CreateIndexParam) CollectionName() string             { return p.collectionName }
func (p *CreateIndexParam) FieldName() string                  { return p.fieldName }
func (p *CreateIndexParam) IndexType() entity.IndexType        { return p.indexType }
func (p *CreateIndexParam) MetricType() entity.MetricType      { return p.metricType }
func (p *CreateIndexParam) ExtraParam() string                 { return p.extraParam }
func (p *CreateIndexParam) SyncMode() bool                     { return p.wait.enabled }
func (p *CreateIndexParam) SyncWaitingInterval() time.Duration { return p.wait.interval }
func (p *CreateIndexParam) SyncWaitingTimeout() time.Duration  { return p.wait.timeout }

type CreateIndexBuilder struct {
	p CreateIndexParam
}

func NewCreateIndexBuilder() *CreateIndexBuilder {
	return &CreateIndexBuilder{p: CreateIndexParam{wait: defaultSyncWait()}}
}

func (b *CreateIndexBuilder) WithCollectionName(name string) *CreateIndexBuilder {
	b.p.collectionName = name
	return b
}

func (b *CreateIndexBuilder) WithFieldName(name string) *CreateIndexBuilder {
	b.p.fieldName = name
	return b
}

func (b *CreateIndexBuilder) WithIndexType(t entity.IndexType) *CreateIndexBuilder {
	b.p.indexType = t
	return b
}

func (b *CreateIndexBuilder) WithMetricType(t entity.MetricType) *CreateIndexBuilder {
	b.p.metricType = t
	return b
}

// WithExtraParam supplies index tuning parameters as an opaque JSON string,
// e.g. `{"nlist":1024}`.
func (b *CreateIndexBuilder) WithExtraParam(extra string) *CreateIndexBuilder {
	b.p.extraParam = extra
	return b
}

func (b *CreateIndexBuilder) WithSyncMode(sync bool) *CreateIndexBuilder {
	b.p.wait.enabled = sync
	return b
}

func (b *CreateIndexBuilder) WithSyncWaitingInterval(d time.Duration) *CreateIndexBuilder {
	b.p.wait.interval = d
	return b
}

func (b *CreateIndexBuilder) WithSyncWaitingTimeout(d time.Duration) *CreateIndexBuilder {
	b.p.wait.timeout = d
	return b
}

func (b *CreateIndexBuilder) Build() (*CreateIndexParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	if err := checkName(b.p.fieldName, "field name"); err != nil {
		return nil, err
	}
	if b.p.indexType == entity.IndexTypeInvalid {
		return nil, errorf("index type must be set")
	}
	if b.p.metricType == entity.MetricTypeInvalid {
		return nil, errorf("metric type must be set")
	}
	if err := checkName(b.p.extraParam, "extra param"); err != nil {
		return nil, err
	}
	if err := b.p.wait.validate(MaxIndexTimeout); err != nil {
		return nil, err
	}
	built := b.p
	return &built, nil
}

// DescribeIndexParam names an index to describe.
type DescribeIndexParam struct {
	collectionName string
	fieldName      string
}

func (p *DescribeIndexParam) CollectionName() string { return p.collectionName }
func (p *DescribeIndexParam) FieldName() string      { return p.fieldName }

type DescribeIndexBuilder struct {
	p DescribeIndexParam
}

func NewDescribeIndexBuilder() *DescribeIndexBuilder {
	return &DescribeIndexBuilder{}
}

func (b *DescribeIndexBuilder) WithCollectionName(name string) *DescribeIndexBuilder {
	b.p.collectionName = name
	return b
}

func (b *DescribeIndexBuilder) WithFieldName(name string) *DescribeIndexBuilder {
	b.p.fieldName = name
	return b
}

func (b *DescribeIndexBuilder) Build() (*DescribeIndexParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	if err := checkName(b.p.fieldName, "field name"); err != nil {
		return nil, err
	}
	built := b.p
	return &built, nil
}

// GetIndexStateParam queries the build state of an index.
type GetIndexStateParam struct {
	collectionName string
	fieldName      string
}

func (p *GetIndexStateParam) CollectionName() string { return p.collectionName }
func (p *GetIndexStateParam) FieldName() string      { return p.fieldName }

type GetIndexStateBuilder struct {
	p GetIndexStateParam
}

func NewGetIndexStateBuilder() *GetIndexStateBuilder {
	return &GetIndexStateBuilder{}
}

func (b *GetIndexStateBuilder) WithCollectionName(name string) *GetIndexStateBuilder {
	b.p.collectionName = name
	return b
}

func (b *GetIndexStateBuilder) WithFieldName(name string) *GetIndexStateBuilder {
	b.p.fieldName = name
	return b
}

func (b *GetIndexStateBuilder) Build() (*GetIndexStateParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	if err := checkName(b.p.fieldName, "field name"); err != nil {
		return nil, err
	}
	built := b.p
	return &built, nil
}

// GetIndexBuildProgressParam queries indexed-vs-total row counts.
type GetIndexBuildProgressParam struct {
	collectionName string
}

func (p *GetIndexBuildProgressParam) CollectionName() string { return p.collectionName }

type GetIndexBuildProgressBuilder struct {
	p GetIndexBuildProgressParam
}

func NewGetIndexBuildProgressBuilder() *GetIndexBuildProgressBuilder {
	return &GetIndexBuildProgressBuilder{}
}

func (b *GetIndexBuildProgressBuilder) WithCollectionName(name string) *GetIndexBuildProgressBuilder {
	b.p.collectionName = name
	return b
}

func (b *GetIndexBuildProgressBuilder) Build() (*GetIndexBuildProgressParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	built := b.p
	return &built, nil
}

// DropIndexParam names an index to drop.
type DropIndexParam struct {
	collectionName string
	fieldName      string
}

func (p *DropIndexParam) CollectionName() string { return p.collectionName }
func (p *DropIndexParam) FieldName() string      { return p.fieldName }

type DropIndexBuilder struct {
	p DropIndexParam
}

func NewDropIndexBuilder() *DropIndexBuilder {
	return &DropIndexBuilder{}
}

func (b *DropIndexBuilder) WithCollectionName(name string) *DropIndexBuilder {
	b.p.collectionName = name
	return b
}

func (b *DropIndexBuilder) WithFieldName(name string) *DropIndexBuilder {
	b.p.fieldName = name
	return b
}

func (b *DropIndexBuilder) Build() (*DropIndexParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	if err := checkName(b.p.fieldName, "field name"); err != nil {
		return nil, err
	}
	built := b.p
	return &built, nil
}
