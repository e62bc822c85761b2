package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	borshgen "github.com/nordwire/borshgen"
	"github.com/nordwire/borshgen/internal/logging"
	"github.com/nordwire/borshgen/internal/project"
	"github.com/nordwire/borshgen/schema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "generate":
		generateCmd(os.Args[2:])
	case "inspect":
		inspectCmd(os.Args[2:])
	case "validate":
		validateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "borshgen CLI\n\nUsage:\n  borshgen generate [-schema world.json] [-world name] [-o dir] [-log level] [-no-fmt]\n  borshgen inspect -schema world.json\n  borshgen validate -schema world.json\n\nNotes:\n  - Without -schema, generate looks for "+project.ConfigName+" upwards from the working directory and runs every world it configures.")
}

func generateCmd(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	var schemaPath string
	var world string
	var out string
	var level string
	var noFmt bool
	fs.StringVar(&schemaPath, "schema", "", "schema container file (.json or .yaml); empty selects project discovery")
	fs.StringVar(&world, "world", "", "world name of the generated file; defaults to the schema file name")
	fs.StringVar(&out, "o", "", "output directory")
	fs.StringVar(&level, "log", "info", "log level: debug, info, warn or error")
	fs.BoolVar(&noFmt, "no-fmt", false, "skip the formatter pass over the output directory")
	_ = fs.Parse(args)

	logging.New(level, nil)

	if schemaPath != "" {
		runWorld(schemaPath, world, out, noFmt)
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		fatalf("getwd: %v", err)
	}
	root, err := project.FindRoot(cwd)
	if err != nil {
		fatalf("%v", err)
	}
	cfg, err := project.Load(filepath.Join(root, project.ConfigName))
	if err != nil {
		fatalf("%v", err)
	}
	dir := out
	if dir == "" && cfg.OutDir != "" {
		dir = filepath.Join(root, cfg.OutDir)
	}
	for _, w := range cfg.Worlds {
		runWorld(filepath.Join(root, w.Schema), w.Name, dir, noFmt)
	}
}

func runWorld(schemaPath, world, dir string, noFmt bool) {
	c, err := schema.LoadFile(schemaPath)
	if err != nil {
		fatalf("%v", err)
	}
	if world == "" {
		world = worldName(schemaPath)
	}
	path, diag, err := borshgen.Generate(c, borshgen.Options{Dir: dir, World: world, SkipFormat: noFmt})
	if err != nil {
		if hint := codeHint(err); hint != "" {
			fatalf("%v\n  hint: %s", err, hint)
		}
		fatalf("%v", err)
	}
	for _, w := range diag.Warnings() {
		fmt.Fprintln(os.Stderr, "warning: "+w)
	}
	slog.Info("world generated", "world", world, "path", path)
}

func inspectCmd(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	var schemaPath string
	fs.StringVar(&schemaPath, "schema", "", "schema container file (.json or .yaml)")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	c, err := schema.LoadFile(schemaPath)
	if err != nil {
		fatalf("%v", err)
	}
	report, err := borshgen.Inspect(c)
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Println(string(report))
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var schemaPath string
	fs.StringVar(&schemaPath, "schema", "", "schema container file (.json or .yaml)")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	c, err := schema.LoadFile(schemaPath)
	if err != nil {
		fatalf("%v", err)
	}
	if err := c.Validate(); err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("%s: %d declarations, root %s\n", schemaPath, c.Len(), c.Root())
}

// worldName derives the default world name from the schema file name.
func worldName(schemaPath string) string {
	base := filepath.Base(schemaPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// codeHint returns the remediation text for coded generation failures.
func codeHint(err error) string {
	var ge *borshgen.Error
	if errors.As(err, &ge) {
		return borshgen.CodeText(ge.Code)
	}
	return ""
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
