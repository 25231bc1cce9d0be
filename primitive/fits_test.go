package primitive_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"fieldaccess/primitive"
)

func TestFitsSigned(t *testing.T) {
	tests := []struct {
		v    int64
		to   primitive.KindEnum
		want bool
	}{
		{math.MaxInt8, primitive.KindInt8, true},
		{math.MinInt8, primitive.KindInt8, true},
		{math.MaxInt8 + 1, primitive.KindInt8, false},
		{math.MinInt8 - 1, primitive.KindInt8, false},
		{math.MaxInt16, primitive.KindInt16, true},
		{math.MinInt32 - 1, primitive.KindInt32, false},
		{math.MaxInt64, primitive.KindInt64, true},
		{math.MinInt64, primitive.KindInt64, true},
		{1, primitive.KindUint8, false},
		{1, primitive.KindFloat64, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, primitive.FitsSigned(tt.v, tt.to), "%d into %v", tt.v, tt.to)
	}
}

func TestFitsUnsigned(t *testing.T) {
	tests := []struct {
		v    uint64
		to   primitive.KindEnum
		want bool
	}{
		{0, primitive.KindUint8, true},
		{math.MaxUint8, primitive.KindUint8, true},
		{math.MaxUint8 + 1, primitive.KindUint8, false},
		{math.MaxUint16, primitive.KindUint16, true},
		{math.MaxUint32 + 1, primitive.KindUint32, false},
		{math.MaxUint64, primitive.KindUint64, true},
		{1, primitive.KindInt8, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, primitive.FitsUnsigned(tt.v, tt.to), "%d into %v", tt.v, tt.to)
	}
}
