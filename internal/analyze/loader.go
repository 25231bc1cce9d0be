package analyze

import (
	"fmt"
	"go/types"
	"path/filepath"
	"reflect"

	"github.com/rs/zerolog/log"
	"golang.org/x/tools/go/packages"

	"fieldaccess/internal/common"
	"fieldaccess/schema"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph  *TypeGraph
	dir    string
	output string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph: NewTypeGraph(),
	}
}

// WithDir sets the directory package patterns are resolved against.
func (a *Analyzer) WithDir(dir string) *Analyzer {
	a.dir = dir

	return a
}

// WithOutput names the generated file. Existing files with that name are
// replaced by an empty package clause while loading, so a stale file that no
// longer type-checks cannot block its own regeneration.
func (a *Analyzer) WithOutput(name string) *Analyzer {
	a.output = name

	return a
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./examples/records", "fieldaccess/examples/...").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	overlay, err := a.outputOverlay(patterns)
	if err != nil {
		return nil, err
	}

	cfg := &packages.Config{
		Mode:    LoadMode,
		Dir:     a.dir,
		Overlay: overlay,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	// Process each package
	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}
	}

	return a.graph, nil
}

// outputOverlay lists the generated files of the matched packages without
// type-checking them and blanks each one down to its package clause.
func (a *Analyzer) outputOverlay(patterns []string) (map[string][]byte, error) {
	if a.output == "" {
		return nil, nil
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	overlay := make(map[string][]byte)
	for _, pkg := range pkgs {
		for _, file := range pkg.GoFiles {
			if filepath.Base(file) != a.output {
				continue
			}

			log.Debug().Str("file", file).Msg("ignoring generated file")
			overlay[file] = []byte("package " + pkg.Name + "\n")
		}
	}

	return overlay, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts struct types from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	if pkg.Types == nil {
		return fmt.Errorf("no type information")
	}

	pkgInfo := &PackageInfo{
		Path:          pkg.PkgPath,
		Name:          pkg.Name,
		BadDirectives: make(map[string]error),
	}

	if first, ok := common.First(pkg.GoFiles); ok {
		pkgInfo.Dir = filepath.Dir(first)
	}

	directives := make(map[string]directive)
	for _, file := range pkg.Syntax {
		collectDirectives(file, directives, pkgInfo.BadDirectives)
	}

	qualifier := types.RelativeTo(pkg.Types)

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		// Only process type names (not variables, constants, functions)
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		d, annotated := directives[name]

		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			pkgInfo.NonStructs = append(pkgInfo.NonStructs, name)
			if annotated {
				pkgInfo.Misplaced = append(pkgInfo.Misplaced, name)
			}

			continue
		}

		info := &StructInfo{
			ID:        TypeID{PkgPath: pkg.PkgPath, Name: name},
			Directive: annotated,
		}

		for i := range named.TypeParams().Len() {
			info.TypeParams = append(info.TypeParams, named.TypeParams().At(i).Obj().Name())
		}

		analyzeStructFields(st, info, qualifier)
		declare(info, d.public)

		log.Debug().
			Str("type", info.ID.String()).
			Bool("directive", info.Directive).
			Strs("fields", info.DeclaredNames()).
			Msg("struct analyzed")

		a.graph.Types[info.ID] = info
		pkgInfo.Structs = append(pkgInfo.Structs, info.ID)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo

	return nil
}

// analyzeStructFields extracts every field from a struct type, blank and
// unexported ones included.
func analyzeStructFields(st *types.Struct, info *StructInfo, qualifier types.Qualifier) {
	for i := range st.NumFields() {
		field := st.Field(i)

		info.Fields = append(info.Fields, FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     types.TypeString(field.Type(), qualifier),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
		})
	}
}

// declare applies the declaration rules shared with package schema. The
// directive argument makes the struct public-only the same way the blank
// marker tag does.
func declare(info *StructInfo, public bool) {
	decls := make([]schema.FieldDecl, len(info.Fields))
	for i, f := range info.Fields {
		decls[i] = schema.FieldDecl{Name: f.Name, Exported: f.Exported, Embedded: f.Embedded, Tag: f.Tag}
	}

	indexes, publicOnly, err := schema.Declared(decls)
	if err != nil {
		info.TagErr = err
		return
	}

	info.PublicOnly = publicOnly || public
	for _, i := range indexes {
		if info.PublicOnly && !info.Fields[i].Exported {
			continue
		}

		info.Declared = append(info.Declared, i)
	}
}
