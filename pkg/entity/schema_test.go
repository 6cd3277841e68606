// Copyright 2026 VortexDB Authors
// SPDX-License-Identifier: Apache-2.0

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldSchemaDimension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params map[string]string
		want   int64
	}{
		{name: "no params", params: nil, want: 0},
		{name: "valid dim", params: map[string]string{TypeParamDim: "128"}, want: 128},
		{name: "garbage dim", params: map[string]string{TypeParamDim: "lots"}, want: 0},
		{name: "unrelated param", params: map[string]string{TypeParamMaxLength: "64"}, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := FieldSchema{Name: "embedding", DataType: DataTypeFloatVector, TypeParams: tt.params}
			assert.Equal(t, tt.want, f.Dimension())
		})
	}
}

func TestDataTypeIsVector(t *testing.T) {
	t.Parallel()

	assert.True(t, DataTypeFloatVector.IsVector())
	assert.True(t, DataTypeBinaryVector.IsVector())
	assert.False(t, DataTypeInt64.IsVector())
	assert.False(t, DataTypeVarChar.IsVector())
}

func TestStringers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "FloatVector", DataTypeFloatVector.String())
	assert.Equal(t, "L2", MetricTypeL2.String())
	assert.Equal(t, "IVF_FLAT", IndexTypeIvfFlat.String())
	assert.Equal(t, "Finished", IndexStateFinished.String())
	assert.Equal(t, "Flushed", SegmentStateFlushed.String())
}
