package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"fieldaccess/utils"
)

const (
	directivePrefix = "//fieldaccess:generate"
	directivePublic = "public"
)

// directive is a parsed //fieldaccess:generate comment.
type directive struct {
	public bool
}

// parseDirective recognises a directive comment line. ok is false for any
// other comment.
func parseDirective(text string) (d directive, ok bool, err error) {
	if !strings.HasPrefix(text, directivePrefix) {
		return directive{}, false, nil
	}

	parts := strings.Fields(text)
	if parts[0] != directivePrefix {
		// e.g. //fieldaccess:generated
		return directive{}, false, nil
	}

	if len(parts) > 2 {
		return directive{}, true, fmt.Errorf("directive %q: too many arguments", text)
	}

	_, arg := utils.Unpack2(parts)
	switch arg {
	case "":
	case directivePublic:
		d.public = true
	default:
		return directive{}, true, fmt.Errorf("directive %q: unknown argument %q", text, arg)
	}

	return d, true, nil
}

// collectDirectives maps type names of a file to their directives. Both the
// declaration doc and the type spec doc are searched.
func collectDirectives(file *ast.File, into map[string]directive, bad map[string]error) {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}

		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			groups := []*ast.CommentGroup{ts.Doc}
			if len(gen.Specs) == 1 {
				groups = append(groups, gen.Doc)
			}

			for _, group := range groups {
				if group == nil {
					continue
				}

				for _, c := range group.List {
					d, ok, err := parseDirective(c.Text)
					if err != nil {
						bad[ts.Name.Name] = err
						continue
					}

					if ok {
						into[ts.Name.Name] = d
					}
				}
			}
		}
	}
}
