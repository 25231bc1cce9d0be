package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultVersion = "1"
	DefaultOutput  = "fieldaccess_gen.go"
	DefaultRuntime = "fieldaccess"
)

var ErrInvalid = errors.New("invalid config")

// File is the generator configuration.
type File struct {
	Version string `yaml:"version" toml:"version"`
	// Packages are go/packages patterns to scan.
	Packages []string `yaml:"packages" toml:"packages"`
	// Types are struct names generated without the //fieldaccess:generate directive.
	Types []string `yaml:"types,omitempty" toml:"types,omitempty"`
	// Select is an expression over SelectEnv choosing more struct types.
	Select string `yaml:"select,omitempty" toml:"select,omitempty"`
	// Output is the file name written into every package directory.
	Output string `yaml:"output" toml:"output"`
	// Runtime is the import path of the fieldaccess package used by generated code.
	Runtime string `yaml:"runtime" toml:"runtime"`
}

// Default returns the configuration used without a config file.
func Default() *File {
	f := &File{}
	applyDefaults(f)

	return f
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = DefaultVersion
	}

	if f.Output == "" {
		f.Output = DefaultOutput
	}

	if f.Runtime == "" {
		f.Runtime = DefaultRuntime
	}
}

// Validate checks a configuration with defaults applied.
func (f *File) Validate() error {
	var problems []string

	if f.Version != DefaultVersion {
		problems = append(problems, fmt.Sprintf("unsupported version %q", f.Version))
	}

	if len(f.Packages) == 0 {
		problems = append(problems, "no packages")
	}

	if !strings.HasSuffix(f.Output, ".go") || strings.ContainsRune(f.Output, '/') {
		problems = append(problems, fmt.Sprintf("output %q is not a .go file name", f.Output))
	}

	if strings.TrimSpace(f.Runtime) == "" {
		problems = append(problems, "empty runtime import path")
	}

	if _, err := f.Selector(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}

	return nil
}
