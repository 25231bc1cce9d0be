package fieldaccess

// Exact checks and converting reads for every builtin scalar. The As methods
// follow the rules of As.

func (f Field) IsBool() bool {
	return Is[bool](f)
}

func (f Field) IsInt() bool {
	return Is[int](f)
}

func (f Field) IsInt8() bool {
	return Is[int8](f)
}

func (f Field) IsInt16() bool {
	return Is[int16](f)
}

func (f Field) IsInt32() bool {
	return Is[int32](f)
}

func (f Field) IsInt64() bool {
	return Is[int64](f)
}

func (f Field) IsUint() bool {
	return Is[uint](f)
}

func (f Field) IsUint8() bool {
	return Is[uint8](f)
}

func (f Field) IsUint16() bool {
	return Is[uint16](f)
}

func (f Field) IsUint32() bool {
	return Is[uint32](f)
}

func (f Field) IsUint64() bool {
	return Is[uint64](f)
}

func (f Field) IsUintptr() bool {
	return Is[uintptr](f)
}

func (f Field) IsFloat32() bool {
	return Is[float32](f)
}

func (f Field) IsFloat64() bool {
	return Is[float64](f)
}

func (f Field) IsComplex64() bool {
	return Is[complex64](f)
}

func (f Field) IsComplex128() bool {
	return Is[complex128](f)
}

func (f Field) IsString() bool {
	return Is[string](f)
}

func (f Field) AsBool() (bool, error) {
	return As[bool](f)
}

func (f Field) AsInt() (int, error) {
	return As[int](f)
}

func (f Field) AsInt8() (int8, error) {
	return As[int8](f)
}

func (f Field) AsInt16() (int16, error) {
	return As[int16](f)
}

func (f Field) AsInt32() (int32, error) {
	return As[int32](f)
}

func (f Field) AsInt64() (int64, error) {
	return As[int64](f)
}

func (f Field) AsUint() (uint, error) {
	return As[uint](f)
}

func (f Field) AsUint8() (uint8, error) {
	return As[uint8](f)
}

func (f Field) AsUint16() (uint16, error) {
	return As[uint16](f)
}

func (f Field) AsUint32() (uint32, error) {
	return As[uint32](f)
}

func (f Field) AsUint64() (uint64, error) {
	return As[uint64](f)
}

func (f Field) AsUintptr() (uintptr, error) {
	return As[uintptr](f)
}

func (f Field) AsFloat32() (float32, error) {
	return As[float32](f)
}

func (f Field) AsFloat64() (float64, error) {
	return As[float64](f)
}

func (f Field) AsComplex64() (complex64, error) {
	return As[complex64](f)
}

func (f Field) AsComplex128() (complex128, error) {
	return As[complex128](f)
}

// AsString returns a string field, or a []byte field viewed as a string. The
// view aliases the field buffer, so a later write through any FieldMut of the
// same field shows through it.
func (f Field) AsString() (string, error) {
	return As[string](f)
}

// AsBytes returns a []byte field. Strings are never converted into bytes.
func (f Field) AsBytes() ([]byte, error) {
	return Get[[]byte](f)
}

func (f Field) IsBytes() bool {
	return Is[[]byte](f)
}
