package fieldaccess

import (
	"reflect"

	"fieldaccess/primitive"
)

// Slot is a shared handle on the storage of one field. It remembers the
// field's exact type and its identity tag; the tag is zero for anything that is
// not a builtin scalar.
//
// The zero Slot refers to nothing and reads fail with ErrNoSuchField.
type Slot struct {
	ptr  any // *T of the field storage
	typ  reflect.Type
	kind primitive.KindEnum
}

// MutSlot is the exclusive handle on the storage of one field. It is the only
// handle accepted by Ptr, Set, Replace, Take and Swap.
type MutSlot struct {
	slot Slot
}

// SlotOf returns the shared handle for the value stored at p.
func SlotOf[T any](p *T) Slot {
	typ := reflect.TypeFor[T]()

	return Slot{ptr: p, typ: typ, kind: primitive.FromReflectType(typ)}
}

// MutSlotOf returns the exclusive handle for the value stored at p.
func MutSlotOf[T any](p *T) MutSlot {
	return MutSlot{slot: SlotOf(p)}
}

// ReflectSlot returns the shared handle for the storage ptr points to. ptr must
// be a non-nil pointer whose Interface method is usable; the zero Slot is
// returned otherwise.
func ReflectSlot(ptr reflect.Value) Slot {
	if !ptr.IsValid() || ptr.Kind() != reflect.Pointer || ptr.IsNil() || !ptr.CanInterface() {
		return Slot{}
	}

	typ := ptr.Type().Elem()

	return Slot{ptr: ptr.Interface(), typ: typ, kind: primitive.FromReflectType(typ)}
}

// ReflectMutSlot is the exclusive counterpart of ReflectSlot.
func ReflectMutSlot(ptr reflect.Value) MutSlot {
	return MutSlot{slot: ReflectSlot(ptr)}
}

func (s Slot) IsValid() bool {
	return s.ptr != nil
}

// Type returns the exact type of the field, nil for the zero Slot.
func (s Slot) Type() reflect.Type {
	return s.typ
}

func (s Slot) Kind() primitive.KindEnum {
	return s.kind
}

// Any returns a copy of the stored value.
func (s Slot) Any() any {
	if !s.IsValid() {
		return nil
	}

	return s.value().Interface()
}

func (s Slot) ReadSlot() (Slot, error) {
	if !s.IsValid() {
		return Slot{}, ErrNoSuchField
	}

	return s, nil
}

// value is the addressable, settable reflect view of the storage.
func (s Slot) value() reflect.Value {
	return reflect.ValueOf(s.ptr).Elem()
}

// Shared downgrades the exclusive handle.
func (s MutSlot) Shared() Slot {
	return s.slot
}

func (s MutSlot) IsValid() bool {
	return s.slot.IsValid()
}

func (s MutSlot) Type() reflect.Type {
	return s.slot.typ
}

func (s MutSlot) Kind() primitive.KindEnum {
	return s.slot.kind
}

func (s MutSlot) ReadSlot() (Slot, error) {
	return s.slot.ReadSlot()
}

func (s MutSlot) WriteSlot() (MutSlot, error) {
	if !s.IsValid() {
		return MutSlot{}, ErrNoSuchField
	}

	return s, nil
}
