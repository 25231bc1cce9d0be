package analyze

import (
	"reflect"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "fieldaccess/examples/records"
	Name    string // e.g., "Sensor"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// StructInfo describes a named struct type of a loaded package.
type StructInfo struct {
	ID         TypeID
	TypeParams []string // names of the type parameters, in order
	Directive  bool     // annotated with //fieldaccess:generate
	PublicOnly bool     // directive argument or blank marker tag
	Fields     []FieldInfo
	Declared   []int // indexes into Fields of the declared fields, in order
	TagErr     error // set when the fieldaccess tags were rejected
}

// IsGeneric returns true if the struct has type parameters.
func (s *StructInfo) IsGeneric() bool {
	return len(s.TypeParams) > 0
}

// DeclaredNames returns the names of the declared fields in order.
func (s *StructInfo) DeclaredNames() []string {
	names := make([]string, 0, len(s.Declared))
	for _, i := range s.Declared {
		names = append(names, s.Fields[i].Name)
	}

	return names
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name, the type name for embedded fields
	Exported bool              // Whether the field is exported
	Type     string            // Field type, qualified relative to the struct's package
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// TypeGraph holds all analyzed structs from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to StructInfo for all named structs.
	Types map[TypeID]*StructInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*StructInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the StructInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *StructInfo {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path       string   // Import path
	Name       string   // Package name
	Dir        string   // Directory of the package sources
	Structs    []TypeID // Named struct types defined in this package
	NonStructs []string // Other named types, for diagnostics
	// Misplaced are //fieldaccess:generate directives on non-struct types.
	Misplaced []string
	// BadDirectives maps type names to directive parse errors.
	BadDirectives map[string]error
}
