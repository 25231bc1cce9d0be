package primitive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fieldaccess/primitive"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		from, to primitive.KindEnum
		want     primitive.CategoryEnum
	}{
		{"uint8 to uint16", primitive.KindUint8, primitive.KindUint16, primitive.CategoryWidening},
		{"int8 to int64", primitive.KindInt8, primitive.KindInt64, primitive.CategoryWidening},
		{"int to int64", primitive.KindInt, primitive.KindInt64, primitive.CategoryWidening},
		{"uint64 to uintptr", primitive.KindUint64, primitive.KindUintptr, primitive.CategoryWidening},
		{"float32 to float64", primitive.KindFloat32, primitive.KindFloat64, primitive.CategoryWidening},
		{"complex64 to complex128", primitive.KindComplex64, primitive.KindComplex128, primitive.CategoryWidening},
		{"uint32 to uint8", primitive.KindUint32, primitive.KindUint8, primitive.CategoryChecked},
		{"int64 to int16", primitive.KindInt64, primitive.KindInt16, primitive.CategoryChecked},
		{"bytes to string", primitive.KindBytes, primitive.KindString, primitive.CategoryStringView},

		{"same kind", primitive.KindUint8, primitive.KindUint8, primitive.CategoryNone},
		{"uint8 to int16", primitive.KindUint8, primitive.KindInt16, primitive.CategoryNone},
		{"int8 to uint64", primitive.KindInt8, primitive.KindUint64, primitive.CategoryNone},
		{"int32 to float64", primitive.KindInt32, primitive.KindFloat64, primitive.CategoryNone},
		{"float64 to float32", primitive.KindFloat64, primitive.KindFloat32, primitive.CategoryNone},
		{"float64 to complex128", primitive.KindFloat64, primitive.KindComplex128, primitive.CategoryNone},
		{"string to bytes", primitive.KindString, primitive.KindBytes, primitive.CategoryNone},
		{"bool to int", primitive.KindBool, primitive.KindInt, primitive.CategoryNone},
		{"untagged", 0, primitive.KindInt, primitive.CategoryNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, primitive.Classify(tt.from, tt.to))
		})
	}
}
