// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package param

// GetMetricsParam asks the service for runtime metrics. The request is an
// opaque JSON string understood by the server, e.g.
// `{"metric_type":"system_info"}`.
type GetMetricsParam struct {
	request string
}

func (p *GetMetricsParam) Request() string { return p.request }

type GetMetricsBuilder struct {
	p GetMetricsParam
}

func NewGetMetricsBuilder() *GetMetricsBuilder {
	return &GetMetricsBuilder{}
}

func (b *GetMetricsBuilder) WithRequest(request string) *GetMetricsBuilder {
	b.p.request = request
	return b
}

func (b *GetMetricsBuilder) Build() (*GetMetricsParam, error) {
	if err := checkName(b.p.request, "metrics request"); err != nil {
		return nil, err
	}
	built := b.p
	return &built, nil
}

// GetPersistentSegmentInfoParam lists a collection's storage segments.
type GetPersistentSegmentInfoParam struct {
	collectionName string
}

func (p *GetPersistentSegmentInfoParam) CollectionName() string { return p.collectionName }

type GetPersistentSegmentInfoBuilder struct {
	p GetPersistentSegmentInfoParam
}

func NewGetPersistentSegmentInfoBuilder() *GetPersistentSegmentInfoBuilder {
	return &GetPersistentSegmentInfoBuilder{}
}

func (b *GetPersistentSegmentInfoBuilder) WithCollectionName(name string) *GetPersistentSegmentInfoBuilder {
	b.p.collectionName = name
	return b
}

func (b *GetPersistentSegmentInfoBuilder) Build() (*GetPersistentSegmentInfoParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	built := b.p
	return &built, nil
}

// GetQuerySegmentInfoParam lists a collection's in-memory query segments.
type GetQuerySegmentInfoParam struct {
	collectionName string
}

func (p *GetQuerySegmentInfoParam) CollectionName() string { return p.collectionName }

type GetQuerySegmentInfoBuilder struct {
	p GetQuerySegmentInfoParam
}

func NewGetQuerySegmentInfoBuilder() *GetQuerySegmentInfoBuilder {
	return &GetQuerySegmentInfoBuilder{}
}

func (b *GetQuerySegmentInfoBuilder) WithCollectionName(name string) *GetQuerySegmentInfoBuilder {
	b.p.collectionName = name
	return b
}

func (b *GetQuerySegmentInfoBuilder) Build() (*GetQuerySegmentInfoParam, error) {
	if err := checkName(b.p.collectionName, "collection name"); err != nil {
		return nil, err
	}
	built := b.p
	return &built, nil
}
