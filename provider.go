package fieldaccess

import (
	"reflect"
)

// AnyFieldAccess is implemented by records that expose their fields by name.
//
// FieldAsAny and FieldAsAnyMut fail with ErrNoSuchField, and only with it, when
// name is not one of the declared fields. FieldNames lists the declared fields
// in declaration order; the returned slice is shared and must not be modified.
type AnyFieldAccess interface {
	FieldAsAny(name string) (Slot, error)
	FieldAsAnyMut(name string) (MutSlot, error)
	FieldNames() []string
}

// PointerLookup is the minimal provider form: a pointer to the storage of the
// named field, or false when there is no such field.
type PointerLookup interface {
	FieldPointer(name string) (any, bool)
	FieldNames() []string
}

// Adapt turns a PointerLookup into an AnyFieldAccess. A lookup that reports a
// field but returns something other than a non-nil pointer is treated as
// reporting no field.
func Adapt(l PointerLookup) AnyFieldAccess {
	return adapted{lookup: l}
}

type adapted struct {
	lookup PointerLookup
}

func (a adapted) FieldAsAny(name string) (Slot, error) {
	p, ok := a.lookup.FieldPointer(name)
	if !ok {
		return Slot{}, ErrNoSuchField
	}

	return ReflectSlot(reflect.ValueOf(p)).ReadSlot()
}

func (a adapted) FieldAsAnyMut(name string) (MutSlot, error) {
	p, ok := a.lookup.FieldPointer(name)
	if !ok {
		return MutSlot{}, ErrNoSuchField
	}

	return ReflectMutSlot(reflect.ValueOf(p)).WriteSlot()
}

func (a adapted) FieldNames() []string {
	return a.lookup.FieldNames()
}

// isNil reports whether owner holds no record, including a nil pointer stored
// in a non-nil interface.
func isNil(owner AnyFieldAccess) bool {
	if owner == nil {
		return true
	}

	v := reflect.ValueOf(owner)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
