package fieldaccess

import (
	"reflect"
	"strings"
)

// Reader is anything that can hand out a shared slot: Slot, MutSlot, Field and
// FieldMut.
type Reader interface {
	ReadSlot() (Slot, error)
}

// Writer is anything that can hand out an exclusive slot: MutSlot and FieldMut.
type Writer interface {
	WriteSlot() (MutSlot, error)
}

// Scalar lists the builtin types As can convert into.
type Scalar interface {
	bool |
		int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr |
		float32 | float64 |
		complex64 | complex128 |
		string
}

// Get returns a copy of the value if it is stored exactly as T.
func Get[T any](r Reader) (T, error) {
	var zero T

	s, err := r.ReadSlot()
	if err != nil {
		return zero, err
	}

	p, ok := s.ptr.(*T)
	if !ok {
		return zero, ErrTypeMismatch
	}

	return *p, nil
}

// Is reports whether the value is stored exactly as T. It is false for missing
// fields.
func Is[T any](r Reader) bool {
	s, err := r.ReadSlot()
	if err != nil {
		return false
	}

	_, ok := s.ptr.(*T)

	return ok
}

// As returns the value as T, converting it when the conversion cannot lose
// information. Narrowing integer conversions are checked against the stored
// value, so the same field may convert today and fail with ErrTypeMismatch
// after its value grows.
//
// A []byte read as a string through a read-only handle (Slot, Field) shares
// the buffer. Through a Writer it is copied, since the same handle may write
// the buffer later.
func As[T Scalar](r Reader) (T, error) {
	var zero T

	s, err := r.ReadSlot()
	if err != nil {
		return zero, err
	}

	if p, ok := s.ptr.(*T); ok {
		return *p, nil
	}

	v, ok := convert(s, reflect.TypeFor[T]())
	if !ok {
		return zero, ErrTypeMismatch
	}

	if _, writable := r.(Writer); writable && v.Kind() == reflect.String {
		return reflect.ValueOf(strings.Clone(v.String())).Interface().(T), nil
	}

	return v.Interface().(T), nil
}

// String returns a string field, or a []byte field viewed as a string. Read
// through a Slot or a Field the view shares memory with the field and is only
// valid while the field is not written; a Writer gets a copy.
func String(r Reader) (string, error) {
	return As[string](r)
}

// Slice returns a []T field, or a [N]T field viewed as a slice sharing the
// array storage. Elements are never converted.
func Slice[T any](r Reader) ([]T, error) {
	s, err := r.ReadSlot()
	if err != nil {
		return nil, err
	}

	if p, ok := s.ptr.(*[]T); ok {
		return *p, nil
	}

	if s.typ.Kind() == reflect.Array && s.typ.Elem() == reflect.TypeFor[T]() {
		array := s.value()

		return array.Slice(0, array.Len()).Interface().([]T), nil
	}

	return nil, ErrTypeMismatch
}

// Ptr returns a pointer to the field storage if it is stored exactly as T.
func Ptr[T any](w Writer) (*T, error) {
	s, err := w.WriteSlot()
	if err != nil {
		return nil, err
	}

	p, ok := s.slot.ptr.(*T)
	if !ok {
		return nil, ErrTypeMismatch
	}

	return p, nil
}

// Set stores v. The type of v must be exactly the field type: Set(f, 2) infers
// int and fails on a uint8 field, use Set[uint8](f, 2) instead.
func Set[T any](w Writer, v T) error {
	p, err := Ptr[T](w)
	if err != nil {
		return err
	}

	*p = v

	return nil
}

// Replace stores v and returns the previous value.
func Replace[T any](w Writer, v T) (T, error) {
	p, err := Ptr[T](w)
	if err != nil {
		var zero T
		return zero, err
	}

	old := *p
	*p = v

	return old, nil
}

// Take returns the stored value and leaves the zero value of T in its place.
func Take[T any](w Writer) (T, error) {
	var zero T

	return Replace(w, zero)
}

// Swap exchanges the stored value with *other. A nil other has no value to
// exchange and fails with ErrTypeMismatch.
func Swap[T any](w Writer, other *T) error {
	p, err := Ptr[T](w)
	if err != nil {
		return err
	}

	if other == nil {
		return ErrTypeMismatch
	}

	*p, *other = *other, *p

	return nil
}
