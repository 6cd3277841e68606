// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package param

import (
	"time"

	"github.com/vortexdb/vortex-go/pkg/entity"
)

// CreateCollectionParam describes a collection to create.
type CreateCollectionParam struct {
	collectionName string
	description    string
	shardsNum      int32
	fields         []entity.FieldSchema
}

func (p *CreateCollectionParam) CollectionName() string       { return p.collectionName }
func (p *CreateCollectionParam) Description() string          { return p.description }
func (p *CreateCollectionParam) ShardsNum() int32             { return p.shardsNum }
func (p *CreateCollectionParam) Fields() []entity.FieldSchema { return p.fields }

type CreateCollectionBuilder struct {
	p CreateCollectionParam
}

func NewCreateCollectionBuilder() *CreateCollectionBuilder {
	return &CreateCollectionBuilder{p: CreateCollectionParam{shardsNum: 2}}
}

func (b *CreateCollectionBuilder) WithCollectionName(name string) *CreateCollectionBuilder {
	b.p.collectionName = name
	return b
}

func (b *CreateCollectionBuilder) WithDescription(desc string) *CreateCollectionBuilder {
	b.p.description = desc
	return b
}

func (b *CreateCollectionBuilder) WithShardsNum(n int32) *CreateCollectionBuilder {
	b.p.shardsNum = n
	return b
}

func (b *CreateCollectionBuilder) AddField(f entity.FieldSchema) *CreateCollectionBuilder {
	b.p.fields = append(b.p.fields, f)
	return b
}

func (b *CreateCollectionBuilder) WithFields(fields []entity.FieldSchema) *CreateCollectionBuilder {
	b.p.fields = fields
	return b
}

func (b *CreateCollectionBuilder) Build() (*CreateCollectionParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	if b.p.shardsNum <= 0 {
		return nil, errorf("shards num must be positive, got %d", b.p.shardsNum)
	}
	if len(b.p.fields) == 0 {
		return nil, errorf("collection %q requires at least one field", b.p.collectionName)
	}
	for _, f := range b.p.fields {
		if err := checkFieldSchema(f); err != nil {
			return nil, err
		}
	}
	built := b.p
	built.fields = append([]entity.FieldSchema(nil), b.p.fields...)
	return &built, nil
}

// DropCollectionParam names a collection to drop.
type DropCollectionParam struct {
	collectionName string
}

func (p *DropCollectionParam) CollectionName() string { return p.collectionName }

type DropCollectionBuilder struct {
	p DropCollectionParam
}

func NewDropCollectionBuilder() *DropCollectionBuilder {
	return &DropCollectionBuilder{}
}

func (b *DropCollectionBuilder) WithCollectionName(name string) *DropCollectionBuilder {
	b.p.collectionName = name
	return b
}

func (b *DropCollectionBuilder) Build() (*DropCollectionParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	built := b.p
	return &built, nil
}

// HasCollectionParam names a collection to test for existence.
type HasCollectionParam struct {
	collectionName string
}

func (p *HasCollectionParam) CollectionName() string { return p.collectionName }

type HasCollectionBuilder struct {
	p HasCollectionParam
}

func NewHasCollectionBuilder() *HasCollectionBuilder {
	return &HasCollectionBuilder{}
}

func (b *HasCollectionBuilder) WithCollectionName(name string) *HasCollectionBuilder {
	b.p.collectionName = name
	return b
}

func (b *HasCollectionBuilder) Build() (*HasCollectionParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	built := b.p
	return &built, nil
}

// DescribeCollectionParam names a collection to describe.
type DescribeCollectionParam struct {
	collectionName string
}

func (p *DescribeCollectionParam) CollectionName() string { return p.collectionName }

type DescribeCollectionBuilder struct {
	p DescribeCollectionParam
}

func NewDescribeCollectionBuilder() *DescribeCollectionBuilder {
	return &DescribeCollectionBuilder{}
}

func (b *DescribeCollectionBuilder) WithCollectionName(name string) *DescribeCollectionBuilder {
	b.p.collectionName = name
	return b
}

func (b *DescribeCollectionBuilder) Build() (*DescribeCollectionParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	built := b.p
	return &built, nil
}

// GetCollectionStatisticsParam requests row statistics, optionally flushing
// first so growing segments are counted.
type GetCollectionStatisticsParam struct {
	collectionName string
	flush          bool
	flushInterval  time.Duration
	flushTimeout   time.Duration
}

func (p *GetCollectionStatisticsParam) CollectionName() string       { return p.collectionName }
func (p *GetCollectionStatisticsParam) Flush() bool                  { return p.flush }
func (p *GetCollectionStatisticsParam) FlushInterval() time.Duration { return p.flushInterval }
func (p *GetCollectionStatisticsParam) FlushTimeout() time.Duration  { return p.flushTimeout }

type GetCollectionStatisticsBuilder struct {
	p GetCollectionStatisticsParam
}

func NewGetCollectionStatisticsBuilder() *GetCollectionStatisticsBuilder {
	return &GetCollectionStatisticsBuilder{p: GetCollectionStatisticsParam{
		flushInterval: DefaultSyncWaitingInterval,
		flushTimeout:  DefaultSyncWaitingTimeout,
	}}
}

func (b *GetCollectionStatisticsBuilder) WithCollectionName(name string) *GetCollectionStatisticsBuilder {
	b.p.collectionName = name
	return b
}

func (b *GetCollectionStatisticsBuilder) WithFlush(flush bool) *GetCollectionStatisticsBuilder {
	b.p.flush = flush
	return b
}

func (b *GetCollectionStatisticsBuilder) Build() (*GetCollectionStatisticsParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	built := b.p
	return &built, nil
}

// LoadCollectionParam requests loading a collection into memory, optionally
// blocking until every requested entity reports fully loaded.
type LoadCollectionParam struct {
	collectionName string
	wait           syncWait
}

func (p *LoadCollectionParam) CollectionName() string                 { return p.collectionName }
func (p *LoadCollectionParam) SyncLoad() bool                         { return p.wait.enabled }
func (p *LoadCollectionParam) SyncLoadWaitingInterval() time.Duration { return p.wait.interval }
func (p *LoadCollectionParam) SyncLoadWaitingTimeout() time.Duration  { return p.wait.timeout }

type LoadCollectionBuilder struct {
	p LoadCollectionParam
}

func NewLoadCollectionBuilder() *LoadCollectionBuilder {
	return &LoadCollectionBuilder{p: LoadCollectionParam{wait: defaultSyncWait()}}
}

func (b *LoadCollectionBuilder) WithCollectionName(name string) *LoadCollectionBuilder {
	b.p.collectionName = name
	return b
}

func (b *LoadCollectionBuilder) WithSyncLoad(sync bool) *LoadCollectionBuilder {
	b.p.wait.enabled = sync
	return b
}

func (b *LoadCollectionBuilder) WithSyncLoadWaitingInterval(d time.Duration) *LoadCollectionBuilder {
	b.p.wait.interval = d
	return b
}

func (b *LoadCollectionBuilder) WithSyncLoadWaitingTimeout(d time.Duration) *LoadCollectionBuilder {
	b.p.wait.timeout = d
	return b
}

func (b *LoadCollectionBuilder) Build() (*LoadCollectionParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	if err := b.p.wait.validate(MaxLoadingTimeout); err != nil {
		return nil, err
	}
	built := b.p
	return &built, nil
}

// ReleaseCollectionParam names a collection to release from memory.
type ReleaseCollectionParam struct {
	collectionName string
}

func (p *ReleaseCollectionParam) CollectionName() string { return p.collectionName }

type ReleaseCollectionBuilder struct {
	p ReleaseCollectionParam
}

func NewReleaseCollectionBuilder() *ReleaseCollectionBuilder {
	return &ReleaseCollectionBuilder{}
}

func (b *ReleaseCollectionBuilder) WithCollectionName(name string) *ReleaseCollectionBuilder {
	b.p.collectionName = name
	return b
}

func (b *ReleaseCollectionBuilder) Build() (*ReleaseCollectionParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	built := b.p
	return &built, nil
}

// ShowCollectionsParam lists collections. When explicit names are supplied
// the show type becomes InMemory and the response carries per-collection
// memory percentages; with no names all collections are listed.
type ShowCollectionsParam struct {
	collectionNames []string
	showType        entity.ShowType
}

func (p *ShowCollectionsParam) CollectionNames() []string { return p.collectionNames }
func (p *ShowCollectionsParam) ShowType() entity.ShowType { return p.showType }

type ShowCollectionsBuilder struct {
	p ShowCollectionsParam
}

func NewShowCollectionsBuilder() *ShowCollectionsBuilder {
	return &ShowCollectionsBuilder{}
}

func (b *ShowCollectionsBuilder) WithCollectionNames(names []string) *ShowCollectionsBuilder {
	b.p.collectionNames = names
	return b
}

func (b *ShowCollectionsBuilder) AddCollectionName(name string) *ShowCollectionsBuilder {
	b.p.collectionNames = append(b.p.collectionNames, name)
	return b
}

func (b *ShowCollectionsBuilder) Build() (*ShowCollectionsParam, error) {
	if err := checkNames(b.p.collectionNames, "collection names"); err != nil {
		return nil, err
	}
	built := b.p
	built.collectionNames = append([]string(nil), b.p.collectionNames...)
	// The show type is derived, never caller-supplied.
	if len(built.collectionNames) > 0 {
		built.showType = entity.ShowTypeInMemory
	} else {
		built.showType = entity.ShowTypeAll
	}
	return &built, nil
}

// FlushParam requests flushing the named collections' written data into
// sealed segments, optionally blocking until every segment reports flushed.
type FlushParam struct {
	collectionNames []string
	wait            syncWait
}

func (p *FlushParam) CollectionNames() []string               { return p.collectionNames }
func (p *FlushParam) SyncFlush() bool                         { return p.wait.enabled }
func (p *FlushParam) SyncFlushWaitingInterval() time.Duration { return p.wait.interval }
func (p *FlushParam) SyncFlushWaitingTimeout() time.Duration  { return p.wait.timeout }

type FlushBuilder struct {
	p FlushParam
}

func NewFlushBuilder() *FlushBuilder {
	return &FlushBuilder{p: FlushParam{wait: defaultSyncWait()}}
}

func (b *FlushBuilder) WithCollectionNames(names []string) *FlushBuilder {
	b.p.collectionNames = names
	return b
}

func (b *FlushBuilder) AddCollectionName(name string) *FlushBuilder {
	b.p.collectionNames = append(b.p.collectionNames, name)
	return b
}

func (b *FlushBuilder) WithSyncFlush(sync bool) *FlushBuilder {
	b.p.wait.enabled = sync
	return b
}

func (b *FlushBuilder) WithSyncFlushWaitingInterval(d time.Duration) *FlushBuilder {
	b.p.wait.interval = d
	return b
}

func (b *FlushBuilder) WithSyncFlushWaitingTimeout(d time.Duration) *FlushBuilder {
	b.p.wait.timeout = d
	return b
}

func (b *FlushBuilder) Build() (*FlushParam, error) {
	if len(b.p.collectionNames) == 0 {
		return nil, errorf("flush requires at least one collection name")
	}
	if err := checkNames(b.p.collectionNames, "collection names"); err != nil {
		return nil, err
	}
	if err := b.p.wait.validate(MaxFlushingTimeout); err != nil {
		return nil, err
	}
	built := b.p
	built.collectionNames = append([]string(nil), b.p.collectionNames...)
	return &built, nil
}
