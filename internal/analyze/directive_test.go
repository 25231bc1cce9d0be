package analyze

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirective(t *testing.T) {
	tests := []struct {
		text    string
		ok      bool
		public  bool
		wantErr bool
	}{
		{"//fieldaccess:generate", true, false, false},
		{"//fieldaccess:generate public", true, true, false},
		{"//fieldaccess:generate  public ", true, true, false},
		{"//fieldaccess:generated", false, false, false},
		{"// fieldaccess:generate", false, false, false},
		{"//go:generate stringer", false, false, false},
		{"//fieldaccess:generate private", true, false, true},
		{"//fieldaccess:generate public twice", true, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			d, ok, err := parseDirective(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.public, d.public)
		})
	}
}

func TestCollectDirectives(t *testing.T) {
	src := `package p

//fieldaccess:generate
type A struct{ X int }

type (
	//fieldaccess:generate public
	B struct{ Y int }

	// C has a doc comment only.
	C struct{}
)

//fieldaccess:generate nope
type D struct{}
`

	file, err := parser.ParseFile(token.NewFileSet(), "p.go", src, parser.ParseComments)
	require.NoError(t, err)

	found := make(map[string]directive)
	bad := make(map[string]error)
	collectDirectives(file, found, bad)

	assert.Equal(t, map[string]directive{"A": {}, "B": {public: true}}, found)
	assert.Contains(t, bad, "D")
}

func TestDeclare(t *testing.T) {
	info := &StructInfo{Fields: []FieldInfo{
		{Name: "_", Tag: `fieldaccess:"public"`},
		{Name: "Shown", Exported: true},
		{Name: "hidden"},
		{Name: "Skipped", Exported: true, Tag: `fieldaccess:"skip"`},
	}}

	declare(info, false)
	require.NoError(t, info.TagErr)
	assert.True(t, info.PublicOnly)
	assert.Equal(t, []string{"Shown"}, info.DeclaredNames())

	directive := &StructInfo{Fields: []FieldInfo{{Name: "Shown", Exported: true}, {Name: "hidden"}}}
	declare(directive, true)
	assert.Equal(t, []string{"Shown"}, directive.DeclaredNames())

	bad := &StructInfo{Fields: []FieldInfo{{Name: "X", Tag: `fieldaccess:"bogus"`}}}
	declare(bad, false)
	assert.Error(t, bad.TagErr)
	assert.Empty(t, bad.Declared)
}
