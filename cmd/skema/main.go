package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	json "github.com/goccy/go-json"

	"github.com/reoring/skema"
	"github.com/reoring/skema/i18n"
	js "github.com/reoring/skema/jsonschema"
	"github.com/reoring/skema/schemafile"
	"github.com/reoring/skema/source"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2

	// defaultMaxDepth matches the HTTP middleware's decoding limit.
	defaultMaxDepth = 64
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "skema CLI\n\nUsage:\n  skema check -schema schema.yaml [-format json|yaml] [-lang en|id|ja] [-strict-json] [-max-depth N] [-j N] [-o text|json] [-v] [INPUT...]\n  skema jsonschema -schema schema.yaml\n\nNotes:\n  - check reads stdin when no INPUT is given and exits 1 if any input is invalid.\n  - SKEMA_LANG and SKEMA_LOG_LEVEL provide defaults for -lang and -v.")
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return exitUsage
	}
	switch args[0] {
	case "check":
		return checkCmd(ctx, args[1:], stdin, stdout, stderr)
	case "jsonschema":
		return jsonSchemaCmd(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return exitOK
	default:
		usage(stderr)
		return exitUsage
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if env := os.Getenv("SKEMA_LOG_LEVEL"); env != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(env)); err == nil {
			level = l
		}
	}
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

type checkConfig struct {
	schema     string
	format     string
	lang       string
	strictJSON bool
	maxDepth   int
	jobs       int
	output     string
	verbose    bool
}

// document is one decoded input. A non-nil err means decoding failed and
// the document is reported without being validated.
type document struct {
	name  string
	value any
	err   error
}

// report is the JSON form of one checked document.
type report struct {
	Input   string       `json:"input"`
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Issues  skema.Issues `json:"issues,omitempty"`
}

func checkCmd(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var cfg checkConfig
	fs.StringVar(&cfg.schema, "schema", "", "schema definition file (YAML or JSON)")
	fs.StringVar(&cfg.format, "format", "", "input format: json or yaml (default: by file extension, json for stdin)")
	fs.StringVar(&cfg.lang, "lang", os.Getenv("SKEMA_LANG"), "issue message language")
	fs.BoolVar(&cfg.strictJSON, "strict-json", false, "reject duplicate object keys")
	fs.IntVar(&cfg.maxDepth, "max-depth", defaultMaxDepth, "maximum nesting depth of inputs (0: unlimited)")
	fs.IntVar(&cfg.jobs, "j", 0, "number of inputs validated concurrently (0: unbounded)")
	fs.StringVar(&cfg.output, "o", "text", "output: text or json")
	fs.BoolVar(&cfg.verbose, "v", false, "enable debug logs")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if cfg.schema == "" || (cfg.output != "text" && cfg.output != "json") {
		fs.Usage()
		return exitUsage
	}
	switch cfg.format {
	case "", "json", "yaml":
	default:
		fmt.Fprintf(stderr, "unknown format %q\n", cfg.format)
		return exitUsage
	}
	log := newLogger(stderr, cfg.verbose)
	if cfg.lang != "" {
		i18n.SetLanguage(cfg.lang)
		log.Debug("language selected", "lang", cfg.lang)
	}

	s, err := loadSchema(cfg.schema)
	if err != nil {
		log.Error("loading schema", "file", cfg.schema, "err", err)
		return exitUsage
	}

	docs, err := readDocuments(cfg, fs.Args(), stdin)
	if err != nil {
		log.Error("reading input", "err", err)
		return exitUsage
	}
	log.Debug("validating", "schema", cfg.schema, "documents", len(docs), "jobs", cfg.jobs)

	inputs := make([]any, 0, len(docs))
	for _, d := range docs {
		if d.err == nil {
			inputs = append(inputs, d.value)
		}
	}
	results := skema.ParseAll(ctx, s, inputs, cfg.jobs)

	reports := make([]report, len(docs))
	next := 0
	failed := 0
	for i, d := range docs {
		r := report{Input: d.name}
		if d.err != nil {
			r.Issues = toIssues(d.err)
		} else {
			res := results[next]
			next++
			r.Success, r.Data, r.Issues = res.Success, res.Data, res.Error
		}
		if !r.Success {
			failed++
			log.Debug("invalid input", "input", d.name, "issues", len(r.Issues))
		}
		reports[i] = r
	}

	if err := writeReports(stdout, cfg.output, reports); err != nil {
		log.Error("writing output", "err", err)
		return exitUsage
	}
	if failed > 0 {
		return exitInvalid
	}
	return exitOK
}

func toIssues(err error) skema.Issues {
	if iss, ok := skema.AsIssues(err); ok {
		return iss
	}
	return skema.Issues{{Code: skema.CodeParseError, Message: err.Error()}}
}

func loadSchema(path string) (skema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return schemafile.Compile(data)
}

// readDocuments decodes every input. A YAML file may hold several
// documents; each becomes its own entry named file#index.
func readDocuments(cfg checkConfig, paths []string, stdin io.Reader) ([]document, error) {
	var opts []source.Option
	if cfg.strictJSON {
		opts = append(opts, source.RejectDuplicateKeys())
	}
	if cfg.maxDepth > 0 {
		opts = append(opts, source.MaxDepth(cfg.maxDepth))
	}
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var docs []document
	for _, p := range paths {
		var (
			data []byte
			err  error
			name = p
		)
		if p == "-" {
			name = "<stdin>"
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(p)
		}
		if err != nil {
			return nil, err
		}
		if formatOf(cfg.format, p) == "yaml" {
			docs = append(docs, yamlDocuments(name, data, opts)...)
			continue
		}
		v, err := source.JSON(data, opts...).Decode()
		docs = append(docs, document{name: name, value: v, err: err})
	}
	return docs, nil
}

func yamlDocuments(name string, data []byte, opts []source.Option) []document {
	vs, err := source.YAMLDocuments(data, opts...)
	if err != nil {
		return []document{{name: name, err: err}}
	}
	if len(vs) == 1 {
		return []document{{name: name, value: vs[0]}}
	}
	docs := make([]document, len(vs))
	for i, v := range vs {
		docs[i] = document{name: fmt.Sprintf("%s#%d", name, i), value: v}
	}
	return docs
}

func formatOf(flagValue, path string) string {
	if flagValue != "" {
		return flagValue
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	}
	return "json"
}

func writeReports(w io.Writer, output string, reports []report) error {
	if output == "json" {
		b, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(b, '\n'))
		return err
	}
	var buf bytes.Buffer
	for _, r := range reports {
		if r.Success {
			fmt.Fprintf(&buf, "%s: ok\n", r.Input)
			continue
		}
		fmt.Fprintf(&buf, "%s: invalid\n", r.Input)
		for _, it := range r.Issues {
			fmt.Fprintf(&buf, "  %s %s: %s\n", it.Path.Pointer(), it.Code, it.Message)
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func jsonSchemaCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jsonschema", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var path string
	fs.StringVar(&path, "schema", "", "schema definition file (YAML or JSON)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if path == "" {
		fs.Usage()
		return exitUsage
	}
	log := newLogger(stderr, false)
	s, err := loadSchema(path)
	if err != nil {
		log.Error("loading schema", "file", path, "err", err)
		return exitUsage
	}
	doc, err := s.JSONSchema()
	if err == nil && doc == nil {
		err = errors.New("schema has no JSON Schema form")
	}
	if err != nil {
		log.Error("exporting JSON Schema", "err", err)
		return exitUsage
	}
	doc.SchemaURI = js.Draft
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Error("encoding JSON Schema", "err", err)
		return exitUsage
	}
	fmt.Fprintln(stdout, string(b))
	return exitOK
}
