// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package entity

import "strconv"

// FieldSchema describes one field of a collection.
type FieldSchema struct {
	FieldID     int64             `json:"field_id,omitempty"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	DataType    DataType          `json:"data_type"`
	PrimaryKey  bool              `json:"primary_key,omitempty"`
	AutoID      bool              `json:"auto_id,omitempty"`
	TypeParams  map[string]string `json:"type_params,omitempty"`
}

// Dimension returns the vector dimension declared in the type params,
// or 0 for scalar fields.
func (f *FieldSchema) Dimension() int64 {
	if f.TypeParams == nil {
		return 0
	}
	dim, _ := strconv.ParseInt(f.TypeParams[TypeParamDim], 10, 64)
	return dim
}

// CollectionSchema describes a collection's structure.
type CollectionSchema struct {
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	AutoID      bool          `json:"auto_id,omitempty"`
	Fields      []FieldSchema `json:"fields"`
}

// Type param keys understood by the service.
const (
	TypeParamDim       = "dim"
	TypeParamMaxLength = "max_length"
)
