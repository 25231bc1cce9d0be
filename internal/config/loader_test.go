package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_YAML(t *testing.T) {
	t.Parallel()

	data := `
version: "1"
packages:
  - ./examples/records
types: [Triple]
select: 'Exported && Name startsWith "Rec"'
`

	f, err := Parse([]byte(data), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, &File{
		Version:  "1",
		Packages: []string{"./examples/records"},
		Types:    []string{"Triple"},
		Select:   `Exported && Name startsWith "Rec"`,
		Output:   DefaultOutput,
		Runtime:  DefaultRuntime,
	}, f)
}

func TestParse_TOML(t *testing.T) {
	t.Parallel()

	data := `
packages = ["./a", "./b"]
output = "access_gen.go"
runtime = "example.com/fieldaccess"
`

	f, err := Parse([]byte(data), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, DefaultVersion, f.Version)
	assert.Equal(t, []string{"./a", "./b"}, f.Packages)
	assert.Equal(t, "access_gen.go", f.Output)
	assert.Equal(t, "example.com/fieldaccess", f.Runtime)
}

func TestParse_UnknownKeys(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("packages: [./a]\noutptu: x.go\n"), FormatYAML)
	require.Error(t, err)

	_, err = Parse([]byte("packages = [\"./a\"]\noutptu = \"x.go\"\n"), FormatTOML)
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "outptu")
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		message string
	}{
		{"empty", "", "no packages"},
		{"comments only", "# nothing here\n", "no packages"},
		{"version", "version: \"2\"\npackages: [./a]\n", `unsupported version "2"`},
		{"output", "packages: [./a]\noutput: gen.txt\n", `output "gen.txt" is not a .go file name`},
		{"output dir", "packages: [./a]\noutput: sub/gen.go\n", `output "sub/gen.go" is not a .go file name`},
		{"select", "packages: [./a]\nselect: 'NumFields'\n", "select:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.data), FormatYAML)
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestFormatFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FormatTOML, FormatFor("fieldaccess.toml"))
	assert.Equal(t, FormatTOML, FormatFor("dir/FIELDACCESS.TOML"))
	assert.Equal(t, FormatYAML, FormatFor("fieldaccess.yaml"))
	assert.Equal(t, FormatYAML, FormatFor("fieldaccess.yml"))
	assert.Equal(t, FormatYAML, FormatFor("fieldaccess"))
}

func TestWriteFile_LoadFile(t *testing.T) {
	t.Parallel()

	want := Default()
	want.Packages = []string{"./examples/records"}
	want.Types = []string{"Triple"}

	for _, name := range []string{"fieldaccess.yaml", "fieldaccess.toml"} {
		path := filepath.Join(t.TempDir(), name)

		require.NoError(t, WriteFile(want, path))

		got, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
