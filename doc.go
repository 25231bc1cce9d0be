// Package fieldaccess provides dynamic, name-indexed access to the fields of
// statically declared struct types.
//
// A record opts in by implementing AnyFieldAccess, either through code emitted
// by fieldaccess-gen or at runtime through schema.Bind. The record hands out
// type-erased slots for its declared fields; everything else in this package is
// built on top of those slots:
//
//   - AccessError: ErrNoSuchField for undeclared names, ErrTypeMismatch for
//     declared names read or written as the wrong type.
//   - Typed accessors: Get, Is, As, String, Slice for reading, and Ptr, Set,
//     Replace, Take, Swap for writing. Reads through As may convert numeric and
//     string-like values when the conversion is lossless; writes never convert.
//   - Field and FieldMut: a (record, name) pair with the accessors as methods.
//   - FieldIter: the record's fields in declared order.
//
// Conversion rules (see package primitive):
//   - integers widen within one signedness;
//   - integers narrow within one signedness only when the stored value fits, so
//     the outcome may change as the stored value changes;
//   - float32 widens to float64 and complex64 to complex128, never the reverse;
//   - a []byte field can be read as a string without copying.
//
// Nothing but Guard locks. A record may be read by many goroutines or written
// by one; Guard wraps a record with a sync.RWMutex when the caller cannot
// guarantee that on its own.
package fieldaccess
