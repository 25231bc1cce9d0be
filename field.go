package fieldaccess

import (
	"reflect"

	"fieldaccess/primitive"
)

// Field is a read-only view of one named field of one record. The name is
// resolved again on every access; a Field for an undeclared name is valid and
// every read through it fails with ErrNoSuchField.
type Field struct {
	owner AnyFieldAccess
	name  string
}

// FieldMut is a Field that may also write.
type FieldMut struct {
	Field
}

// FieldOf binds name to owner. A nil owner, typed or not, gives a Field for
// which no field exists.
func FieldOf(owner AnyFieldAccess, name string) Field {
	if isNil(owner) {
		owner = nil
	}

	return Field{owner: owner, name: name}
}

func FieldMutOf(owner AnyFieldAccess, name string) FieldMut {
	return FieldMut{Field: FieldOf(owner, name)}
}

func (f Field) Name() string {
	return f.name
}

func (f Field) ReadSlot() (Slot, error) {
	if f.owner == nil {
		return Slot{}, ErrNoSuchField
	}

	return f.owner.FieldAsAny(f.name)
}

func (f Field) Exists() bool {
	_, err := f.ReadSlot()

	return err == nil
}

// Type returns the exact type of the field, nil when it does not exist.
func (f Field) Type() reflect.Type {
	s, err := f.ReadSlot()
	if err != nil {
		return nil
	}

	return s.Type()
}

// Kind returns the identity tag of the field, zero when it does not exist or is
// not a builtin scalar.
func (f Field) Kind() primitive.KindEnum {
	s, err := f.ReadSlot()
	if err != nil {
		return 0
	}

	return s.Kind()
}

// Any returns a copy of the field value.
func (f Field) Any() (any, error) {
	s, err := f.ReadSlot()
	if err != nil {
		return nil, err
	}

	return s.Any(), nil
}

func (f FieldMut) WriteSlot() (MutSlot, error) {
	if f.owner == nil {
		return MutSlot{}, ErrNoSuchField
	}

	return f.owner.FieldAsAnyMut(f.name)
}

// AsField returns the read-only view of the same field.
func (f FieldMut) AsField() Field {
	return f.Field
}

// SetAny stores v when its dynamic type is exactly the field type. A nil v
// clears interface-typed fields and is a mismatch for any other field.
func (f FieldMut) SetAny(v any) error {
	s, err := f.WriteSlot()
	if err != nil {
		return err
	}

	dst := s.slot.value()

	if v == nil {
		if s.Type().Kind() != reflect.Interface {
			return ErrTypeMismatch
		}
		dst.SetZero()

		return nil
	}

	src := reflect.ValueOf(v)
	if src.Type() != s.Type() {
		return ErrTypeMismatch
	}

	dst.Set(src)

	return nil
}
