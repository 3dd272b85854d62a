package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/arbor-ast/go-arbor/gen"
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

	return cli.NewCommand("arbor-codegen").
		WithSynopsis("arbor-codegen [opts] schema.yaml...").
		WithDescription("Generate Go node kinds (structs plus kernel method implementations) from declarative YAML schemas.").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

type Config struct {
	OutputDir string `cli:"name=o desc='output directory for generated Go files (default: alongside each schema)'"`
	Package   string `cli:"name=package desc='override the target package name from the schema'"`
	Stdout    bool   `cli:"name=stdout desc='write generated code to stdout instead of files'"`
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no schema files given", cli.ErrUsage)
	}
	for _, path := range args {
		if err := generateOne(cfg, cc, path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func generateOne(cfg *Config, cc *cli.Context, path string) error {
	schema, err := gen.Load(path)
	if err != nil {
		return err
	}
	if cfg.Package != "" {
		schema.Package = cfg.Package
	}
	src, err := gen.Generate(schema)
	if err != nil {
		return err
	}
	if cfg.Stdout {
		_, err := cc.Out.Write(src)
		return err
	}
	out := outputPath(cfg, path)
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "wrote %s (%d kinds)\n", out, len(schema.Kinds))
	return nil
}

func outputPath(cfg *Config, schemaPath string) string {
	base := strings.TrimSuffix(filepath.Base(schemaPath), filepath.Ext(schemaPath))
	name := base + "_gen.go"
	if cfg.OutputDir != "" {
		return filepath.Join(cfg.OutputDir, name)
	}
	return filepath.Join(filepath.Dir(schemaPath), name)
}
