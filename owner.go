package fieldaccess

// The functions below address a field through its owner and name in one call.
// Each one binds a Field or FieldMut for the duration of the call only, so the
// name is resolved on every call.

// GetField returns a copy of the named field of owner if it is stored exactly
// as T.
func GetField[T any](owner AnyFieldAccess, name string) (T, error) {
	return Get[T](FieldOf(owner, name))
}

// AsField returns the named field of owner converted losslessly to T. A
// []byte field read as a string shares the buffer.
func AsField[T Scalar](owner AnyFieldAccess, name string) (T, error) {
	return As[T](FieldOf(owner, name))
}

func StringField(owner AnyFieldAccess, name string) (string, error) {
	return String(FieldOf(owner, name))
}

func SliceField[T any](owner AnyFieldAccess, name string) ([]T, error) {
	return Slice[T](FieldOf(owner, name))
}

// PtrField returns a pointer to the storage of the named field of owner.
func PtrField[T any](owner AnyFieldAccess, name string) (*T, error) {
	return Ptr[T](FieldMutOf(owner, name))
}

// SetField stores v into the named field of owner. As with Set, T must be the
// exact field type.
func SetField[T any](owner AnyFieldAccess, name string, v T) error {
	return Set(FieldMutOf(owner, name), v)
}
