// Command fieldaccess-gen writes slot providers for Go struct types.
//
// It loads the packages named by the config file or the command line, picks
// the structs carrying the //fieldaccess:generate directive together with the
// configured ones, and writes one file per package next to its sources.
package main

import (
	"context"
	"fmt"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	var cmd *cli.Command
	cmd = cli.NewCommand("fieldaccess-gen").
		WithSynopsis("fieldaccess-gen [opts] [packages...]").
		WithDescription("Generate name indexed field accessors for struct types.").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			// a Run hook bypasses the default option parsing
			args, err := cmd.Parse(cc, args)
			if err != nil {
				return fmt.Errorf("%w: %w", cli.ErrUsage, err)
			}
			return run(cfg, cc, args)
		})
	return cmd
}

type Config struct {
	ConfigFile string `cli:"name=config desc='config file, YAML or TOML (default: fieldaccess.yaml when present)'"`
	Output     string `cli:"name=o desc='file name written into every package directory (default: fieldaccess_gen.go)'"`
	Runtime    string `cli:"name=runtime desc='import path of the fieldaccess package used by generated code'"`
	DryRun     bool   `cli:"name=dry-run desc='render and report files without writing them'"`
	Check      bool   `cli:"name=check desc='fail with a diff when a generated file is out of date'"`
	Verbose    bool   `cli:"name=v desc='debug logging'"`
}
