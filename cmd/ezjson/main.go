package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/reoring/ezjson"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch sub := os.Args[1]; sub {
	case "demo":
		err = demoCmd(os.Args[2:], os.Stdout)
	case "fmt":
		err = fmtCmd(os.Args[2:], os.Stdin, os.Stdout)
	case "check":
		err = checkCmd(os.Args[2:], os.Stdin, os.Stdout)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `ezjson CLI

Usage:
  ezjson demo [-dir out]
  ezjson fmt   [-config f.yaml] [-type z|zs|y|pulp|ints] [-indent 0-4] [-driver lenient|go-json|yaml] [-duplicates ignore|warn|error] [-dump] file|-
  ezjson check [-config f.yaml] [-type ...] [-driver ...] file|-

Notes:
  - fmt reads a document into the typed model and prints it canonically.
  - check reports the first error as a path-qualified message.`)
}

// demoCmd prints and saves the sample documents, then shows the error a
// write to a missing directory reports.
func demoCmd(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	dir := fs.String("dir", ".", "directory for the .out files")
	verbose := fs.Bool("v", false, "enable debug logs")
	if err := fs.Parse(args); err != nil {
		return err
	}
	lg := newLogger(*verbose).WithCommand("demo")

	z := sampleZ()
	steps := []struct {
		file   string
		indent ezjson.Indent
		write  func(ezjson.Indent) ([]byte, error)
		save   func(string, ezjson.Indent) error
	}{
		{
			"json_object.out", ezjson.TwoSpaces,
			func(i ezjson.Indent) ([]byte, error) { return ezjson.Write(&z, i) },
			func(p string, i ezjson.Indent) error { return ezjson.WriteFile(p, &z, i) },
		},
		{
			"vector_objects.out", ezjson.TwoSpaces,
			func(i ezjson.Indent) ([]byte, error) { return ezjson.WriteObjects([]Z{z, z}, i) },
			func(p string, i ezjson.Indent) error { return ezjson.WriteObjectsFile(p, []Z{z, z}, i) },
		},
		{
			"pulp_levels.out", ezjson.ThreeSpaces,
			func(i ezjson.Indent) ([]byte, error) {
				return ezjson.WriteEnums([]PulpLevel{High, Medium, Low}, PulpLevel.String, i)
			},
			func(p string, i ezjson.Indent) error {
				return ezjson.WriteEnumsFile(p, []PulpLevel{High, Medium, Low}, PulpLevel.String, i)
			},
		},
		{
			"ints.out", ezjson.FourSpaces,
			func(i ezjson.Indent) ([]byte, error) { return ezjson.WriteValues([]int{3, 1, 4, 2, 8}, i) },
			func(p string, i ezjson.Indent) error { return ezjson.WriteValuesFile(p, []int{3, 1, 4, 2, 8}, i) },
		},
	}
	for _, s := range steps {
		out, err := s.write(s.indent)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s\n", out)
		path := filepath.Join(*dir, s.file)
		if err := s.save(path, s.indent); err != nil {
			lg.Error("save failed", "path", path, "error", err)
			continue
		}
		lg.Debug("saved", "path", path)
	}

	bad := filepath.Join(*dir, "imma", "crazy", "path", "that", "does", "not", "exist", "json.out")
	if err := ezjson.WriteValuesFile(bad, []int{3, 1, 4, 2, 8}, ezjson.TwoSpaces); err != nil {
		fmt.Fprintf(stdout, "Expected error message: %v\n", err)
	}
	return nil
}

func fmtCmd(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	dump := fs.Bool("dump", false, "dump the decoded value instead of printing JSON")
	run, err := parseDocFlags(fs, args)
	if err != nil {
		return err
	}
	doc, err := run.read(stdin)
	if err != nil {
		return err
	}
	if *dump {
		spew.Fdump(stdout, doc.value())
		return nil
	}
	out, err := doc.write(run.cfg.indent())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%s\n", out)
	return err
}

func checkCmd(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	run, err := parseDocFlags(fs, args)
	if err != nil {
		return err
	}
	if _, err := run.read(stdin); err != nil {
		if e, ok := ezjson.AsError(err); ok {
			run.lg.Debug("check failed", "code", e.Code, "pointer", e.Pointer())
		}
		return err
	}
	_, err = fmt.Fprintln(stdout, "ok")
	return err
}

// docRun is a parsed fmt/check invocation.
type docRun struct {
	cfg  config
	kind string
	path string
	lg   *Logger
}

// parseDocFlags registers the shared document flags on fs, loads -config
// when given and lets explicitly set flags override it.
func parseDocFlags(fs *flag.FlagSet, args []string) (*docRun, error) {
	confPath := fs.String("config", "", "YAML config file")
	kind := fs.String("type", "z", "document type: z, zs, y, pulp or ints")
	indent := fs.Int("indent", 2, "spaces per level (0 = compact)")
	driver := fs.String("driver", "lenient", "input driver: lenient, go-json or yaml")
	dups := fs.String("duplicates", "ignore", "duplicate keys: ignore, warn or error")
	maxDepth := fs.Int("max-depth", 0, "maximum nesting depth (0 = unlimited)")
	verbose := fs.Bool("v", false, "enable debug logs")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, fmt.Errorf("%s: expected exactly one input file (or -)", fs.Name())
	}

	cfg := defaultConfig()
	if *confPath != "" {
		c, err := loadConfig(*confPath)
		if err != nil {
			return nil, err
		}
		cfg = c
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "indent":
			cfg.Indent = *indent
		case "driver":
			cfg.Driver = *driver
		case "duplicates":
			cfg.Duplicates = *dups
		case "max-depth":
			cfg.MaxDepth = *maxDepth
		}
	})
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if _, err := newDocument(*kind); err != nil {
		return nil, err
	}
	path := fs.Arg(0)
	return &docRun{
		cfg:  cfg,
		kind: *kind,
		path: path,
		lg:   newLogger(*verbose).WithCommand(fs.Name()).WithFile(path),
	}, nil
}

func (r *docRun) read(stdin io.Reader) (document, error) {
	doc, err := newDocument(r.kind)
	if err != nil {
		return nil, err
	}
	var data []byte
	if r.path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(r.path)
	}
	if err != nil {
		return nil, err
	}
	r.lg.Debug("read input", "bytes", len(data), "driver", r.cfg.Driver)
	if err := doc.read(data, r.cfg.readOpt(r.lg)); err != nil {
		return nil, err
	}
	return doc, nil
}

func newLogger(verbose bool) *Logger {
	if verbose {
		return NewTextLogger(slog.LevelDebug)
	}
	return NewTextLogger(slog.LevelWarn)
}

// document is one of the root shapes the CLI can read and print.
type document interface {
	read(data []byte, opt ezjson.ReadOpt) error
	write(indent ezjson.Indent) ([]byte, error)
	value() any
}

func newDocument(kind string) (document, error) {
	switch strings.ToLower(kind) {
	case "z":
		return &objectDoc[Z, *Z]{}, nil
	case "y":
		return &objectDoc[Y, *Y]{}, nil
	case "zs":
		return &objectsDoc[Z, *Z]{}, nil
	case "pulp":
		return &pulpDoc{}, nil
	case "ints":
		return &intsDoc{}, nil
	}
	return nil, fmt.Errorf("unknown document type %q", kind)
}

type objectDoc[T any, PT ezjson.DescriberPtr[T]] struct{ v T }

func (d *objectDoc[T, PT]) read(data []byte, opt ezjson.ReadOpt) error {
	return ezjson.Read(data, PT(&d.v), opt)
}
func (d *objectDoc[T, PT]) write(i ezjson.Indent) ([]byte, error) { return ezjson.Write(PT(&d.v), i) }
func (d *objectDoc[T, PT]) value() any                            { return d.v }

type objectsDoc[T any, PT ezjson.DescriberPtr[T]] struct{ v []T }

func (d *objectsDoc[T, PT]) read(data []byte, opt ezjson.ReadOpt) error {
	return ezjson.ReadObjects[T, PT](data, &d.v, opt)
}
func (d *objectsDoc[T, PT]) write(i ezjson.Indent) ([]byte, error) {
	return ezjson.WriteObjects[T, PT](d.v, i)
}
func (d *objectsDoc[T, PT]) value() any { return d.v }

type pulpDoc struct{ v []PulpLevel }

func (d *pulpDoc) read(data []byte, opt ezjson.ReadOpt) error {
	return ezjson.ReadEnums(data, &d.v, PulpLevelN, PulpLevel.String, opt)
}
func (d *pulpDoc) write(i ezjson.Indent) ([]byte, error) {
	return ezjson.WriteEnums(d.v, PulpLevel.String, i)
}
func (d *pulpDoc) value() any { return d.v }

type intsDoc struct{ v []int }

func (d *intsDoc) read(data []byte, opt ezjson.ReadOpt) error {
	return ezjson.ReadValues(data, &d.v, opt)
}
func (d *intsDoc) write(i ezjson.Indent) ([]byte, error) { return ezjson.WriteValues(d.v, i) }
func (d *intsDoc) value() any                            { return d.v }
