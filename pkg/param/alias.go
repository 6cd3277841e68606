// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package param

// CreateAliasParam binds a new alias to a collection.
type CreateAliasParam struct {
	collectionName string
	alias          string
}

func (p *CreateAliasParam) CollectionName() string { return p.collectionName }
func (p *CreateAliasParam) Alias() string          { return p.alias }

type CreateAliasBuilder struct {
	p CreateAliasParam
}

func NewCreateAliasBuilder() *CreateAliasBuilder {
	return &CreateAliasBuilder{}
}

func (b *CreateAliasBuilder) WithCollectionName(name string) *CreateAliasBuilder {
	b.p.collectionName = name
	return b
}

func (b *CreateAliasBuilder) WithAlias(alias string) *CreateAliasBuilder {
	b.p.alias = alias
	return b
}

func (b *CreateAliasBuilder) Build() (*CreateAliasParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	if err := checkName(b.p.alias, "alias"); err != nil {
		return nil, err
	}
	built := b.p
	return &built, nil
}

// DropAliasParam removes an alias.
type DropAliasParam struct {
	alias string
}

func (p *DropAliasParam) Alias() string { return p.alias }

type DropAliasBuilder struct {
	p DropAliasParam
}

func NewDropAliasBuilder() *DropAliasBuilder {
	return &DropAliasBuilder{}
}

func (b *DropAliasBuilder) WithAlias(alias string) *DropAliasBuilder {
	b.p.alias = alias
	return b
}

func (b *DropAliasBuilder) Build() (*DropAliasParam, error) {
	if err := checkName(b.p.alias, "alias"); err != nil {
		return nil, err
	}
	built := b.p
	return &built, nil
}

// AlterAliasParam re-points an existing alias at another collection.
type AlterAliasParam struct {
	collectionName string
	alias          string
}

func (p *AlterAliasParam) CollectionName() string { return p.collectionName }
func (p *AlterAliasParam) Alias() string          { return p.alias }

type AlterAliasBuilder struct {
	p AlterAliasParam
}

func NewAlterAliasBuilder() *AlterAliasBuilder {
	return &AlterAliasBuilder{}
}

func (b *AlterAliasBuilder) WithCollectionName(name string) *AlterAliasBuilder {
	b.p.collectionName = name
	return b
}

func (b *AlterAliasBuilder) WithAlias(alias string) *AlterAliasBuilder {
	b.p.alias = alias
	return b
}

func (b *AlterAliasBuilder) Build() (*AlterAliasParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	if err := checkName(b.p.alias, "alias"); err != nil {
		return nil, err
	}
	built := b.p
	return &built, nil
}
