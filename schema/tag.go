package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// TagKey is the struct tag key read by both the runtime schema and the code
// generator.
const TagKey = "fieldaccess"

const (
	optSkip   = "skip"
	optDash   = "-"
	optPublic = "public"
)

// TagOptions are the parsed options of one fieldaccess tag.
type TagOptions struct {
	Skip   bool // "-" or "skip": the field is not declared
	Public bool // "public": only exported fields are declared, blank marker fields only
}

// TagError reports a fieldaccess tag that cannot be honoured.
type TagError struct {
	Field  string
	Option string
	Reason string
}

func (e *TagError) Error() string {
	return fmt.Sprintf("fieldaccess tag of field %s: option %q %s", e.Field, e.Option, e.Reason)
}

// ParseTag parses the fieldaccess options of a struct tag. A missing tag yields
// zero options.
func ParseTag(field string, tag reflect.StructTag) (TagOptions, error) {
	var opts TagOptions

	value, ok := tag.Lookup(TagKey)
	if !ok {
		return opts, nil
	}

	for _, opt := range strings.Split(value, ",") {
		opt = strings.TrimSpace(opt)

		switch opt {
		case "":
		case optDash, optSkip:
			opts.Skip = true
		case optPublic:
			opts.Public = true
		default:
			return TagOptions{}, &TagError{Field: field, Option: opt, Reason: "is unknown"}
		}
	}

	return opts, nil
}

// FieldDecl is what the declaration rules need to know about a struct field.
type FieldDecl struct {
	Name     string // for embedded fields, the name of the embedded type
	Exported bool
	Embedded bool
	Tag      reflect.StructTag
}

// Declared applies the declaration rules to the fields of one struct, in
// order, and returns the positions of the declared fields together with the
// public-only flag.
//
// Blank fields are never declared; they may carry the "public" marker. A field
// tagged "-" or "skip" is not declared. Once the struct is public-only,
// unexported fields are not declared either.
func Declared(fields []FieldDecl) (indexes []int, publicOnly bool, err error) {
	opts := make([]TagOptions, len(fields))

	for i, f := range fields {
		opts[i], err = ParseTag(f.Name, f.Tag)
		if err != nil {
			return nil, false, err
		}

		if opts[i].Public {
			if f.Name != "_" {
				return nil, false, &TagError{Field: f.Name, Option: optPublic, Reason: "is only valid on a blank field"}
			}

			publicOnly = true
		}
	}

	for i, f := range fields {
		if f.Name == "_" || opts[i].Skip || (publicOnly && !f.Exported) {
			continue
		}

		indexes = append(indexes, i)
	}

	return indexes, publicOnly, nil
}
