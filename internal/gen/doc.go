// Package gen provides deterministic Go code generation of fieldaccess slot
// providers.
//
// Generation approach uses text/template + go/format. Every selected struct
// gets a FieldAsAny / FieldAsAnyMut pair switching over its declared field
// names, a FieldNames method over a package level slice and, unless it is
// generic, a compile-time interface assertion.
//
// Files whose formatting fails are kept as <output>.go.debug sidecars.
package gen
