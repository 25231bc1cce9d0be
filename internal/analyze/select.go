package analyze

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"fieldaccess/internal/common"
	"fieldaccess/internal/diagnostic"
	"fieldaccess/internal/match"
)

// Selection chooses the structs to generate on top of the annotated ones.
type Selection struct {
	// Types are struct names, plain ("Sensor") or qualified ("fieldaccess/examples/records.Sensor").
	Types []string
	// Match, when set, is asked about every struct not chosen otherwise.
	Match func(*StructInfo) (bool, error)
}

// Select returns the structs to generate ordered by package and name. Problems
// with directives, tags and configured names are reported to diags; such
// structs are left out.
func (g *TypeGraph) Select(sel Selection, diags *diagnostic.Diagnostics) ([]*StructInfo, error) {
	chosen := make(map[TypeID]*StructInfo)

	for _, path := range slices.Sorted(maps.Keys(g.Packages)) {
		pkg := g.Packages[path]

		for _, name := range pkg.Misplaced {
			diags.AddError(diagnostic.CodeNotStruct, "//fieldaccess:generate on a non-struct type", path+"."+name, "")
		}

		for _, name := range slices.Sorted(maps.Keys(pkg.BadDirectives)) {
			diags.AddError(diagnostic.CodeBadDirective, pkg.BadDirectives[name].Error(), path+"."+name, "")
		}
	}

	for id, info := range g.Types {
		if info.Directive {
			chosen[id] = info
		}
	}

	for _, name := range sel.Types {
		found := g.lookupName(name)
		if len(found) == 0 {
			g.reportMissing(name, diags)
			continue
		}

		for _, info := range found {
			chosen[info.ID] = info
		}
	}

	if sel.Match != nil {
		for id, info := range g.Types {
			if _, ok := chosen[id]; ok || info.TagErr != nil {
				continue
			}

			ok, err := sel.Match(info)
			if err != nil {
				return nil, fmt.Errorf("selecting %s: %w", id, err)
			}

			if ok {
				chosen[id] = info
			}
		}
	}

	var res []*StructInfo

	for _, info := range chosen {
		if info.TagErr != nil {
			diags.AddError(diagnostic.CodeBadTag, info.TagErr.Error(), info.ID.String(), "")
			continue
		}

		if common.IsEmpty(info.Declared) {
			diags.AddWarning(diagnostic.CodeNoFields, "no declared fields", info.ID.String(), "")
		}

		res = append(res, info)
	}

	slices.SortFunc(res, func(a, b *StructInfo) int {
		return cmp.Or(cmp.Compare(a.ID.PkgPath, b.ID.PkgPath), cmp.Compare(a.ID.Name, b.ID.Name))
	})

	return res, nil
}

func (g *TypeGraph) lookupName(name string) []*StructInfo {
	var res []*StructInfo

	for id, info := range g.Types {
		if id.Name == name || id.String() == name {
			res = append(res, info)
		}
	}

	return res
}

func (g *TypeGraph) reportMissing(name string, diags *diagnostic.Diagnostics) {
	var known []string

	for _, pkg := range g.Packages {
		if slices.Contains(pkg.NonStructs, name) {
			diags.AddError(diagnostic.CodeNotStruct, "configured type is not a struct", name, "")
			return
		}

		for _, id := range pkg.Structs {
			known = append(known, id.Name)
		}
	}

	slices.Sort(known)
	diags.AddError(diagnostic.CodeUnknownType, "configured type not found", name, "", match.Suggest(name, slices.Compact(known), 3)...)
}
