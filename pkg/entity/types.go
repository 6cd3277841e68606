// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

// Package entity defines the enumerations and schema types shared between the
// parameter builders, the wire layer and the client.
package entity

// DataType identifies the storage type of a collection field.
type DataType int32

const (
	DataTypeNone DataType = 0

	DataTypeBool  DataType = 1
	DataTypeInt8  DataType = 2
	DataTypeInt16 DataType = 3
	DataTypeInt32 DataType = 4
	DataTypeInt64 DataType = 5

	DataTypeFloat  DataType = 10
	DataTypeDouble DataType = 11

	DataTypeString  DataType = 20
	DataTypeVarChar DataType = 21

	DataTypeBinaryVector DataType = 100
	DataTypeFloatVector  DataType = 101
)

func (t DataType) String() string {
	switch t {
	case DataTypeBool:
		return "Bool"
	case DataTypeInt8:
		return "Int8"
	case DataTypeInt16:
		return "Int16"
	case DataTypeInt32:
		return "Int32"
	case DataTypeInt64:
		return "Int64"
	case DataTypeFloat:
		return "Float"
	case DataTypeDouble:
		return "Double"
	case DataTypeString:
		return "String"
	case DataTypeVarChar:
		return "VarChar"
	case DataTypeBinaryVector:
		return "BinaryVector"
	case DataTypeFloatVector:
		return "FloatVector"
	default:
		return "None"
	}
}

// IsVector reports whether the type stores vector payloads and therefore
// requires a dimension type param.
func (t DataType) IsVector() bool {
	return t == DataTypeBinaryVector || t == DataTypeFloatVector
}

// MetricType is the similarity metric used by index builds, searches and
// distance calculations. MetricTypeInvalid is the unset sentinel and is
// rejected by every builder.
type MetricType int32

const (
	MetricTypeInvalid MetricType = iota
	MetricTypeL2
	MetricTypeIP
	MetricTypeHamming
	MetricTypeJaccard
	MetricTypeTanimoto
	MetricTypeSubstructure
	MetricTypeSuperstructure
)

func (m MetricType) String() string {
	switch m {
	case MetricTypeL2:
		return "L2"
	case MetricTypeIP:
		return "IP"
	case MetricTypeHamming:
		return "HAMMING"
	case MetricTypeJaccard:
		return "JACCARD"
	case MetricTypeTanimoto:
		return "TANIMOTO"
	case MetricTypeSubstructure:
		return "SUBSTRUCTURE"
	case MetricTypeSuperstructure:
		return "SUPERSTRUCTURE"
	default:
		return "INVALID"
	}
}

// IsBinaryMetric reports whether the metric operates on binary vectors.
func (m MetricType) IsBinaryMetric() bool {
	switch m {
	case MetricTypeHamming, MetricTypeJaccard, MetricTypeTanimoto,
		MetricTypeSubstructure, MetricTypeSuperstructure:
		return true
	default:
		return false
	}
}

// IndexType selects the index algorithm built for a vector field.
// IndexTypeInvalid is the unset sentinel.
type IndexType int32

const (
	IndexTypeInvalid IndexType = iota
	IndexTypeFlat
	IndexTypeIvfFlat
	IndexTypeIvfSQ8
	IndexTypeIvfPQ
	IndexTypeHNSW
	IndexTypeAnnoy
	IndexTypeBinFlat
	IndexTypeBinIvfFlat
)

func (t IndexType) String() string {
	switch t {
	case IndexTypeFlat:
		return "FLAT"
	case IndexTypeIvfFlat:
		return "IVF_FLAT"
	case IndexTypeIvfSQ8:
		return "IVF_SQ8"
	case IndexTypeIvfPQ:
		return "IVF_PQ"
	case IndexTypeHNSW:
		return "HNSW"
	case IndexTypeAnnoy:
		return "ANNOY"
	case IndexTypeBinFlat:
		return "BIN_FLAT"
	case IndexTypeBinIvfFlat:
		return "BIN_IVF_FLAT"
	default:
		return "INVALID"
	}
}

// IndexState is the server-reported state of an index build.
type IndexState int32

const (
	IndexStateNone IndexState = iota
	IndexStateUnissued
	IndexStateInProgress
	IndexStateFinished
	IndexStateFailed
)

func (s IndexState) String() string {
	switch s {
	case IndexStateUnissued:
		return "Unissued"
	case IndexStateInProgress:
		return "InProgress"
	case IndexStateFinished:
		return "Finished"
	case IndexStateFailed:
		return "Failed"
	default:
		return "None"
	}
}

// SegmentState is the server-reported state of a storage segment.
type SegmentState int32

const (
	SegmentStateNone SegmentState = iota
	SegmentStateNotExist
	SegmentStateGrowing
	SegmentStateSealed
	SegmentStateFlushing
	SegmentStateFlushed
)

func (s SegmentState) String() string {
	switch s {
	case SegmentStateNotExist:
		return "NotExist"
	case SegmentStateGrowing:
		return "Growing"
	case SegmentStateSealed:
		return "Sealed"
	case SegmentStateFlushing:
		return "Flushing"
	case SegmentStateFlushed:
		return "Flushed"
	default:
		return "None"
	}
}

// ShowType selects whether a show request lists everything or only the
// named entities currently loaded in memory. It is derived from the supplied
// name list by the builders, never set directly.
type ShowType int32

const (
	ShowTypeAll      ShowType = 0
	ShowTypeInMemory ShowType = 1
)

func (s ShowType) String() string {
	if s == ShowTypeInMemory {
		return "InMemory"
	}
	return "All"
}
