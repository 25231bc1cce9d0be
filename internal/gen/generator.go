package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"fieldaccess/internal/analyze"
	"fieldaccess/internal/common"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Output is the name of the file written into every package directory.
	Output string
	// Runtime is the import path of the fieldaccess package.
	Runtime string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Output:  "fieldaccess_gen.go",
		Runtime: "fieldaccess",
	}
}

// Generator generates slot providers for analyzed structs.
type Generator struct {
	config GeneratorConfig
	// packages maps package paths to their info, for names and directories.
	packages map[string]*analyze.PackageInfo
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig, graph *analyze.TypeGraph) *Generator {
	return &Generator{config: config, packages: graph.Packages}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory of the package the file belongs to.
	Dir string
	// Filename is the name of the file (e.g., "fieldaccess_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Path returns the location of the file.
func (f GeneratedFile) Path() string {
	return filepath.Join(f.Dir, f.Filename)
}

// Generate renders one file per package of the given structs.
func (g *Generator) Generate(structs []*analyze.StructInfo) ([]GeneratedFile, error) {
	byPkg := make(map[string][]*analyze.StructInfo)
	for _, s := range structs {
		byPkg[s.ID.PkgPath] = append(byPkg[s.ID.PkgPath], s)
	}

	var files []GeneratedFile

	for _, pkgPath := range slices.Sorted(maps.Keys(byPkg)) {
		file, err := g.generatePackage(pkgPath, byPkg[pkgPath])
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", pkgPath, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

func (g *Generator) generatePackage(pkgPath string, structs []*analyze.StructInfo) (*GeneratedFile, error) {
	pkg, ok := g.packages[pkgPath]
	if !ok {
		return nil, fmt.Errorf("package not loaded")
	}

	data := g.buildTemplateData(pkg, structs)

	var buf bytes.Buffer
	if err := providerTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	file := &GeneratedFile{Dir: pkg.Dir, Filename: g.config.Output}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if derr := writeDebugUnformatted(pkg.Dir, file.Filename, buf.Bytes()); derr != nil {
			log.Warn().Err(derr).Msg("debug sidecar not written")
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	file.Content = formatted

	log.Debug().Str("file", file.Path()).Int("structs", len(structs)).Msg("rendered")

	return file, nil
}

// templateData holds all data needed for the provider template.
type templateData struct {
	PackageName string
	// Runtime is the qualifier of the runtime package, empty when generating
	// into the runtime package itself.
	Runtime       string
	RuntimeImport string
	Structs       []structData
}

type structData struct {
	Name     string
	Receiver string // Name, or Name[K, V] for generic structs
	NamesVar string
	Generic  bool
	Fields   []string
}

func (g *Generator) buildTemplateData(pkg *analyze.PackageInfo, structs []*analyze.StructInfo) *templateData {
	data := &templateData{PackageName: pkg.Name}

	if g.config.Runtime != pkg.Path {
		data.Runtime = common.PkgAlias(g.config.Runtime) + "."
		data.RuntimeImport = g.config.Runtime
	}

	for _, s := range structs {
		receiver := s.ID.Name
		if s.IsGeneric() {
			receiver += "[" + strings.Join(s.TypeParams, ", ") + "]"
		}

		data.Structs = append(data.Structs, structData{
			Name:     s.ID.Name,
			Receiver: receiver,
			NamesVar: lowerFirst(s.ID.Name) + "FieldNames",
			Generic:  s.IsGeneric(),
			Fields:   s.DeclaredNames(),
		})
	}

	return data
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToLower(r)) + s[size:]
}

var providerTemplate = template.Must(template.New("provider").Parse(`// Code generated by fieldaccess-gen. DO NOT EDIT.

package {{.PackageName}}
{{if .RuntimeImport}}
import "{{.RuntimeImport}}"
{{end}}
{{- range .Structs}}

var {{.NamesVar}} = []string{ {{- range $i, $f := .Fields}}{{if $i}}, {{end}}{{printf "%q" $f}}{{end -}} }

// FieldAsAny implements {{$.Runtime}}AnyFieldAccess.
func (r *{{.Receiver}}) FieldAsAny(name string) ({{$.Runtime}}Slot, error) {
	switch name {
{{- range .Fields}}
	case {{printf "%q" .}}:
		return {{$.Runtime}}SlotOf(&r.{{.}}), nil
{{- end}}
	default:
		return {{$.Runtime}}Slot{}, {{$.Runtime}}ErrNoSuchField
	}
}

// FieldAsAnyMut implements {{$.Runtime}}AnyFieldAccess.
func (r *{{.Receiver}}) FieldAsAnyMut(name string) ({{$.Runtime}}MutSlot, error) {
	switch name {
{{- range .Fields}}
	case {{printf "%q" .}}:
		return {{$.Runtime}}MutSlotOf(&r.{{.}}), nil
{{- end}}
	default:
		return {{$.Runtime}}MutSlot{}, {{$.Runtime}}ErrNoSuchField
	}
}

// FieldNames implements {{$.Runtime}}AnyFieldAccess.
func (r *{{.Receiver}}) FieldNames() []string {
	return {{.NamesVar}}
}
{{- if not .Generic}}

var _ {{$.Runtime}}AnyFieldAccess = (*{{.Name}})(nil)
{{- end}}
{{end}}
`))
