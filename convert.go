package fieldaccess

import (
	"reflect"
	"unsafe"

	"fieldaccess/primitive"
)

// convert reads the value held by s as a value of type to, following the
// categories of primitive.Classify.
func convert(s Slot, to reflect.Type) (reflect.Value, bool) {
	toKind := primitive.FromReflectType(to)

	switch primitive.Classify(s.kind, toKind) {
	case primitive.CategoryNone:
		return reflect.Value{}, false

	case primitive.CategoryStringView:
		return reflect.ValueOf(bytesView(s.value().Bytes())), true

	default:
		from := s.value()
		out := reflect.New(to).Elem()

		switch {
		case toKind.IsSigned():
			v := from.Int()
			if !primitive.FitsSigned(v, toKind) {
				return reflect.Value{}, false
			}
			out.SetInt(v)
		case toKind.IsUnsigned():
			v := from.Uint()
			if !primitive.FitsUnsigned(v, toKind) {
				return reflect.Value{}, false
			}
			out.SetUint(v)
		case toKind.IsFloat():
			out.SetFloat(from.Float())
		case toKind.IsComplex():
			out.SetComplex(from.Complex())
		default:
			return reflect.Value{}, false
		}

		return out, true
	}
}

func bytesView(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
