package primitive_test

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fieldaccess/primitive"
)

func Example() {
	type IntEnum int
	type Bytes []byte
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf([]byte(nil))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(IntEnum(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Bytes(nil))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	fmt.Println(primitive.FromReflectType(nil))
	// Output:
	// KindInt
	// KindString
	// KindBytes
	// KindEnum(0)
	// KindEnum(0)
	// KindEnum(0)
	// KindEnum(0)
	// KindEnum(0)
}

func TestOf(t *testing.T) {
	assert.Equal(t, primitive.KindUint8, primitive.Of[byte]())
	assert.Equal(t, primitive.KindInt32, primitive.Of[rune]())
	assert.Equal(t, primitive.KindComplex128, primitive.Of[complex128]())
	assert.Equal(t, primitive.KindUintptr, primitive.Of[uintptr]())
	assert.Zero(t, primitive.Of[*int]())
	assert.Zero(t, primitive.Of[[4]byte]())
	assert.Zero(t, primitive.Of[any]())
}

func TestKindEnum_Predicates(t *testing.T) {
	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		t.Run(k.String(), func(t *testing.T) {
			groups := 0
			for _, in := range []bool{k.IsInteger(), k.IsFloat(), k.IsComplex(), k == primitive.KindString, k == primitive.KindBytes, k == primitive.KindBool} {
				if in {
					groups++
				}
			}
			assert.Equal(t, 1, groups, "every kind belongs to exactly one group")

			if k.IsInteger() {
				assert.NotEqual(t, k.IsSigned(), k.IsUnsigned())
			}

			assert.Equal(t, k.IsInteger() || k.IsFloat() || k.IsComplex(), k.IsNumber())
		})
	}
}

func TestKindEnum_Bits(t *testing.T) {
	tests := []struct {
		kind primitive.KindEnum
		bits int
	}{
		{primitive.KindInt8, 8},
		{primitive.KindUint16, 16},
		{primitive.KindFloat32, 32},
		{primitive.KindInt64, 64},
		{primitive.KindComplex64, 64},
		{primitive.KindComplex128, 128},
		{primitive.KindInt, 32 << (^uint(0) >> 63)},
		{primitive.KindUintptr, 32 << (^uintptr(0) >> 63)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.bits, tt.kind.Bits(), tt.kind.String())
	}

	assert.Panics(t, func() { primitive.KindString.Bits() })
	assert.Panics(t, func() { primitive.KindBool.Bits() })
}
