// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package param

import (
	"time"

	"github.com/vortexdb/vortex-go/pkg/entity"
)

// CreatePartitionParam names a partition to create inside a collection.
type CreatePartitionParam struct {
	collectionName string
	partitionName  string
}

func (p *CreatePartitionParam) CollectionName() string { return p.collectionName }
func (p *CreatePartitionParam) PartitionName() string  { return p.partitionName }

type CreatePartitionBuilder struct {
	p CreatePartitionParam
}

func NewCreatePartitionBuilder() *CreatePartitionBuilder {
	return &CreatePartitionBuilder{}
}

func (b *CreatePartitionBuilder) WithCollectionName(name string) *CreatePartitionBuilder {
	b.p.collectionName = name
	return b
}

func (b *CreatePartitionBuilder) WithPartitionName(name string) *CreatePartitionBuilder {
	b.p.partitionName = name
	return b
}

func (b *CreatePartitionBuilder) Build() (*CreatePartitionParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	if err := checkName(b.p.partitionName, "partition name"); err != nil {
		return nil, err
	}
	built := b.p
	return &built, nil
}

// DropPartitionParam names a partition to drop.
type DropPartitionParam struct {
	collectionName string
	partitionName  string
}

func (p *DropPartitionParam) CollectionName() string { return p.collectionName }
func (p *DropPartitionParam) PartitionName() string  { return p.partitionName }

type DropPartitionBuilder struct {
	p DropPartitionParam
}

func NewDropPartitionBuilder() *DropPartitionBuilder {
	return &DropPartitionBuilder{}
}

func (b *DropPartitionBuilder) WithCollectionName(name string) *DropPartitionBuilder {
	b.p.collectionName = name
	return b
}

func (b *DropPartitionBuilder) WithPartitionName(name string) *DropPartitionBuilder {
	b.p.partitionName = name
	return b
}

func (b *DropPartitionBuilder) Build() (*DropPartitionParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	if err := checkName(b.p.partitionName, "partition name"); err != nil {
		return nil, err
	}
	built := b.p
	return &built, nil
}

// HasPartitionParam names a partition to test for existence.
type HasPartitionParam struct {
	collectionName string
	partitionName  string
}

func (p *HasPartitionParam) CollectionName() string { return p.collectionName }
func (p *HasPartitionParam) PartitionName() string  { return p.partitionName }

type HasPartitionBuilder struct {
	p HasPartitionParam
}

func NewHasPartitionBuilder() *HasPartitionBuilder {
	return &HasPartitionBuilder{}
}

func (b *HasPartitionBuilder) WithCollectionName(name string) *HasPartitionBuilder {
	b.p.collectionName = name
	return b
}

func (b *HasPartitionBuilder) WithPartitionName(name string) *HasPartitionBuilder {
	b.p.partitionName = name
	return b
}

func (b *HasPartitionBuilder) Build() (*HasPartitionParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	if err := checkName(b.p.partitionName, "partition name"); err != nil {
		return nil, err
	}
	built := b.p
	return &built, nil
}

// LoadPartitionsParam requests loading the named partitions into memory.
type LoadPartitionsParam struct {
	collectionName string
	partitionNames []string
	wait           syncWait
}

func (p *LoadPartitionsParam) CollectionName() string                 { return p.collectionName }
func (p *LoadPartitionsParam) PartitionNames() []string               { return p.partitionNames }
func (p *LoadPartitionsParam) SyncLoad() bool                         { return p.wait.enabled }
func (p *LoadPartitionsParam) SyncLoadWaitingInterval() time.Duration { return p.wait.interval }
func (p *LoadPartitionsParam) SyncLoadWaitingTimeout() time.Duration  { return p.wait.timeout }

type LoadPartitionsBuilder struct {
	p LoadPartitionsParam
}

func NewLoadPartitionsBuilder() *LoadPartitionsBuilder {
	return &LoadPartitionsBuilder{p: LoadPartitionsParam{wait: defaultSyncWait()}}
}

func (b *LoadPartitionsBuilder) WithCollectionName(name string) *LoadPartitionsBuilder {
	b.p.collectionName = name
	return b
}

func (b *LoadPartitionsBuilder) WithPartitionNames(names []string) *LoadPartitionsBuilder {
	b.p.partitionNames = names
	return b
}

func (b *LoadPartitionsBuilder) AddPartitionName(name string) *LoadPartitionsBuilder {
	b.p.partitionNames = append(b.p.partitionNames, name)
	return b
}

func (b *LoadPartitionsBuilder) WithSyncLoad(sync bool) *LoadPartitionsBuilder {
	b.p.wait.enabled = sync
	return b
}

func (b *LoadPartitionsBuilder) WithSyncLoadWaitingInterval(d time.Duration) *LoadPartitionsBuilder {
	b.p.wait.interval = d
	return b
}

func (b *LoadPartitionsBuilder) WithSyncLoadWaitingTimeout(d time.Duration) *LoadPartitionsBuilder {
	b.p.wait.timeout = d
	return b
}

func (b *LoadPartitionsBuilder) Build() (*LoadPartitionsParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	if len(b.p.partitionNames) == 0 {
		return nil, errorf("load partitions requires at least one partition name")
	}
	if err := checkNames(b.p.partitionNames, "partition names"); err != nil {
		return nil, err
	}
	if err := b.p.wait.validate(MaxLoadingTimeout); err != nil {
		return nil, err
	}
	built := b.p
	built.partitionNames = append([]string(nil), b.p.partitionNames...)
	return &built, nil
}

// ReleasePartitionsParam releases the named partitions from memory.
type ReleasePartitionsParam struct {
	collectionName string
	partitionNames []string
}

func (p *ReleasePartitionsParam) CollectionName() string   { return p.collectionName }
func (p *ReleasePartitionsParam) PartitionNames() []string { return p.partitionNames }

type ReleasePartitionsBuilder struct {
	p ReleasePartitionsParam
}

func NewReleasePartitionsBuilder() *ReleasePartitionsBuilder {
	return &ReleasePartitionsBuilder{}
}

func (b *ReleasePartitionsBuilder) WithCollectionName(name string) *ReleasePartitionsBuilder {
	b.p.collectionName = name
	return b
}

func (b *ReleasePartitionsBuilder) WithPartitionNames(names []string) *ReleasePartitionsBuilder {
	b.p.partitionNames = names
	return b
}

func (b *ReleasePartitionsBuilder) AddPartitionName(name string) *ReleasePartitionsBuilder {
	b.p.partitionNames = append(b.p.partitionNames, name)
	return b
}

func (b *ReleasePartitionsBuilder) Build() (*ReleasePartitionsParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	if len(b.p.partitionNames) == 0 {
		return nil, errorf("release partitions requires at least one partition name")
	}
	if err := checkNames(b.p.partitionNames, "partition names"); err != nil {
		return nil, err
	}
	built := b.p
	built.partitionNames = append([]string(nil), b.p.partitionNames...)
	return &built, nil
}

// GetPartitionStatisticsParam requests row statistics for one partition.
type GetPartitionStatisticsParam struct {
	collectionName string
	partitionName  string
}

func (p *GetPartitionStatisticsParam) CollectionName() string { return p.collectionName }
func (p *GetPartitionStatisticsParam) PartitionName() string  { return p.partitionName }

type GetPartitionStatisticsBuilder struct {
	p GetPartitionStatisticsParam
}

func NewGetPartitionStatisticsBuilder() *GetPartitionStatisticsBuilder {
	return &GetPartitionStatisticsBuilder{}
}

func (b *GetPartitionStatisticsBuilder) WithCollectionName(name string) *GetPartitionStatisticsBuilder {
	b.p.collectionName = name
	return b
}

func (b *GetPartitionStatisticsBuilder) WithPartitionName(name string) *GetPartitionStatisticsBuilder {
	b.p.partitionName = name
	return b
}

func (b *GetPartitionStatisticsBuilder) Build() (*GetPartitionStatisticsParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	if err := checkName(b.p.partitionName, "partition name"); err != nil {
		return nil, err
	}
	built := b.p
	return &built, nil
}

// ShowPartitionsParam lists a collection's partitions. Supplying explicit
// partition names switches the show type to InMemory, same as collections.
type ShowPartitionsParam struct {
	collectionName string
	partitionNames []string
	showType       entity.ShowType
}

func (p *ShowPartitionsParam) CollectionName() string    { return p.collectionName }
func (p *ShowPartitionsParam) PartitionNames() []string  { return p.partitionNames }
func (p *ShowPartitionsParam) ShowType() entity.ShowType { return p.showType }

type ShowPartitionsBuilder struct {
	p ShowPartitionsParam
}

func NewShowPartitionsBuilder() *ShowPartitionsBuilder {
	return &ShowPartitionsBuilder{}
}

func (b *ShowPartitionsBuilder) WithCollectionName(name string) *ShowPartitionsBuilder {
	b.p.collectionName = name
	return b
}

func (b *ShowPartitionsBuilder) WithPartitionNames(names []string) *ShowPartitionsBuilder {
	b.p.partitionNames = names
	return b
}

func (b *ShowPartitionsBuilder) AddPartitionName(name string) *ShowPartitionsBuilder {
	b.p.partitionNames = append(b.p.partitionNames, name)
	return b
}

func (b *ShowPartitionsBuilder) Build() (*ShowPartitionsParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	if err := checkNames(b.p.partitionNames, "partition names"); err != nil {
		return nil, err
	}
	built := b.p
	built.partitionNames = append([]string(nil), b.p.partitionNames...)
	if len(built.partitionNames) > 0 {
		built.showType = entity.ShowTypeInMemory
	} else {
		built.showType = entity.ShowTypeAll
	}
	return &built, nil
}
