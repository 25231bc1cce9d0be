package main

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/scott-cotton/cli"

	"fieldaccess/internal/analyze"
	"fieldaccess/internal/config"
	"fieldaccess/internal/diagnostic"
	"fieldaccess/internal/gen"
	"fieldaccess/internal/logging"
)

const defaultConfigFile = "fieldaccess.yaml"

var errStale = errors.New("generated files are out of date")

func run(cfg *Config, cc *cli.Context, args []string) error {
	logging.ConfigureRuntime()
	if cfg.Verbose {
		logging.SetLevel(zerolog.DebugLevel)
	}

	setColor(cc.Out)

	err := generate(cfg, args, cc.Out)
	if errors.Is(err, errStale) {
		return cli.ExitCodeErr(1)
	}

	return err
}

// setColor turns colours off unless w is a terminal.
func setColor(w io.Writer) {
	f, ok := w.(*os.File)
	color.NoColor = logging.NoColor() || !ok || !isatty.IsTerminal(f.Fd())
}

func generate(cfg *Config, args []string, out io.Writer) error {
	file, dir, err := loadConfig(cfg, args)
	if err != nil {
		return err
	}

	selector, err := file.Selector()
	if err != nil {
		return err
	}

	graph, err := analyze.NewAnalyzer().WithDir(dir).WithOutput(file.Output).LoadPackages(file.Packages...)
	if err != nil {
		return fmt.Errorf("loading packages: %w", err)
	}

	sel := analyze.Selection{Types: file.Types}
	if selector != nil {
		sel.Match = func(info *analyze.StructInfo) (bool, error) {
			return selector.Match(config.SelectEnv{
				Name:      info.ID.Name,
				Package:   info.ID.PkgPath,
				Exported:  token.IsExported(info.ID.Name),
				NumFields: len(info.Declared),
				Generic:   info.IsGeneric(),
			})
		}
	}

	var diags diagnostic.Diagnostics

	structs, err := graph.Select(sel, &diags)
	if err != nil {
		return err
	}

	for _, info := range structs {
		diags.AddInfo(diagnostic.CodeGenerated, fmt.Sprintf("%d fields", len(info.Declared)), info.ID.String(), "")
	}

	report(out, &diags, cfg.Verbose)

	if err := diags.Error(); err != nil {
		return err
	}

	log.Debug().Int("types", len(structs)).Str("dir", dir).Msg("selected types")

	generator := gen.NewGenerator(gen.GeneratorConfig{Output: file.Output, Runtime: file.Runtime}, graph)

	files, err := generator.Generate(structs)
	if err != nil {
		return fmt.Errorf("generating: %w", err)
	}

	switch {
	case cfg.Check:
		return check(out, files)
	case cfg.DryRun:
		for _, f := range files {
			fmt.Fprintf(out, "would write %s\n", f.Path())
		}

		return nil
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}

	for _, f := range files {
		fmt.Fprintln(out, color.GreenString("wrote %s", f.Path()))
	}

	return nil
}

// loadConfig resolves the config file and applies the command line on top of
// it. Configured package patterns are relative to the config file.
func loadConfig(cfg *Config, args []string) (*config.File, string, error) {
	path := cfg.ConfigFile
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", err
		}
	}

	file, dir := config.Default(), "."
	if path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, "", err
		}

		file, dir = loaded, filepath.Dir(path)
	}

	// command line patterns replace the configured ones and are relative to
	// the working directory
	if len(args) > 0 {
		file.Packages, dir = args, "."
	}

	if cfg.Output != "" {
		file.Output = cfg.Output
	}

	if cfg.Runtime != "" {
		file.Runtime = cfg.Runtime
	}

	if err := file.Validate(); err != nil {
		return nil, "", fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}

	log.Debug().Str("config", path).Strs("packages", file.Packages).Msg("configuration")

	return file, dir, nil
}

func report(out io.Writer, diags *diagnostic.Diagnostics, verbose bool) {
	for _, d := range diags.All() {
		switch d.Severity {
		case diagnostic.DiagnosticError:
			fmt.Fprintln(out, color.RedString("error: %s", d))
		case diagnostic.DiagnosticWarning:
			fmt.Fprintln(out, color.YellowString("warning: %s", d))
		default:
			if verbose {
				fmt.Fprintf(out, "%s\n", d)
			}
		}
	}
}

func check(out io.Writer, files []gen.GeneratedFile) error {
	stale := 0

	for _, f := range files {
		diff, ok, err := gen.Stale(f)
		if err != nil {
			return err
		}

		if !ok {
			continue
		}

		stale++
		fmt.Fprintln(out, color.RedString("stale %s", f.Path()))
		fmt.Fprint(out, diff)
	}

	if stale > 0 {
		return fmt.Errorf("%w: %d file(s)", errStale, stale)
	}

	return nil
}
