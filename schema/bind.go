package schema

import (
	"fmt"
	"reflect"
	"unsafe"

	"fieldaccess"
)

type bound struct {
	schema *Schema
	base   reflect.Value // addressable struct value
}

// Bind exposes the declared fields of the struct ptr points to. Unexported
// fields are reachable as well, the same way code generated into the struct's
// own package reaches them.
func Bind(ptr any) (fieldaccess.AnyFieldAccess, error) {
	rv := reflect.ValueOf(ptr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, fmt.Errorf("%w: %T", ErrNotStructPointer, ptr)
	}

	s, err := Of(rv.Type().Elem())
	if err != nil {
		return nil, err
	}

	return &bound{schema: s, base: rv.Elem()}, nil
}

// MustBind is like Bind but panics on error.
func MustBind(ptr any) fieldaccess.AnyFieldAccess {
	b, err := Bind(ptr)
	if err != nil {
		panic(err)
	}

	return b
}

func (b *bound) pointer(name string) (reflect.Value, bool) {
	e, ok := b.schema.Lookup(name)
	if !ok {
		return reflect.Value{}, false
	}

	f := b.base.Field(e.Index)

	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())), true
}

func (b *bound) FieldAsAny(name string) (fieldaccess.Slot, error) {
	p, ok := b.pointer(name)
	if !ok {
		return fieldaccess.Slot{}, fieldaccess.ErrNoSuchField
	}

	return fieldaccess.ReflectSlot(p), nil
}

func (b *bound) FieldAsAnyMut(name string) (fieldaccess.MutSlot, error) {
	p, ok := b.pointer(name)
	if !ok {
		return fieldaccess.MutSlot{}, fieldaccess.ErrNoSuchField
	}

	return fieldaccess.ReflectMutSlot(p), nil
}

func (b *bound) FieldNames() []string {
	return b.schema.Names()
}
