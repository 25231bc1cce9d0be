// Package analyze provides package loading and struct extraction for
// fieldaccess-gen.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find the
// struct types of the loaded packages, their //fieldaccess:generate
// directives and their declared fields.
//
// Key types:
//   - TypeID: package import path + type name
//   - StructInfo: a struct type, its type parameters and fields
//   - FieldInfo: describes field name, type, tags, and embedding
package analyze
