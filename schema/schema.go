package schema

import (
	"errors"
	"fmt"
	"reflect"

	"fieldaccess/internal/match"
	"fieldaccess/primitive"
)

var (
	ErrNotStruct        = errors.New("not a struct type")
	ErrNotStructPointer = errors.New("not a non-nil pointer to a struct")
)

// Entry describes one declared field.
type Entry struct {
	Name     string
	Index    int // position in the struct, including undeclared fields
	Type     reflect.Type
	Kind     primitive.KindEnum
	Exported bool
	Embedded bool
}

// Schema is the ordered list of the declared fields of a struct type.
type Schema struct {
	Type       reflect.Type
	PublicOnly bool
	Entries    []Entry

	names  []string
	byName map[string]int
}

func build(t reflect.Type) (*Schema, error) {
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v", ErrNotStruct, t)
	}

	decls := make([]FieldDecl, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		decls[i] = FieldDecl{
			Name:     f.Name,
			Exported: f.IsExported(),
			Embedded: f.Anonymous,
			Tag:      f.Tag,
		}
	}

	indexes, publicOnly, err := Declared(decls)
	if err != nil {
		return nil, fmt.Errorf("schema of %v: %w", t, err)
	}

	s := &Schema{
		Type:       t,
		PublicOnly: publicOnly,
		Entries:    make([]Entry, 0, len(indexes)),
		names:      make([]string, 0, len(indexes)),
		byName:     make(map[string]int, len(indexes)),
	}

	for _, i := range indexes {
		f := t.Field(i)

		s.byName[f.Name] = len(s.Entries)
		s.names = append(s.names, f.Name)
		s.Entries = append(s.Entries, Entry{
			Name:     f.Name,
			Index:    i,
			Type:     f.Type,
			Kind:     primitive.FromReflectType(f.Type),
			Exported: f.IsExported(),
			Embedded: f.Anonymous,
		})
	}

	return s, nil
}

// Names returns the declared field names in order. The slice is shared and must
// not be modified.
func (s *Schema) Names() []string {
	return s.names
}

func (s *Schema) Lookup(name string) (Entry, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Entry{}, false
	}

	return s.Entries[i], true
}

func (s *Schema) Len() int {
	return len(s.Entries)
}

// Suggest returns declared names close to name, best first. It is meant for
// messages shown to people and never changes lookup results.
func (s *Schema) Suggest(name string) []string {
	return match.Suggest(name, s.names, 3)
}
