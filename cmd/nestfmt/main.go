// Command nestfmt prints JSON or YAML documents in nested bracket notation.
//
//	echo '{"b": [1, 2], "a": {"x": true}}' | nestfmt
//	[ ( a [ ( x true ) ] ) ( b [ 1 2 ] ) ]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/nestfmt"
)

var errUnknownFormat = errors.New("unknown input format")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "nestfmt:", err)
		}
		os.Exit(1)
	}
}

type options struct {
	format  string
	depth   int
	width   int
	config  string
	verbose bool
	logFile string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("nestfmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var o options
	fs.StringVar(&o.format, "format", "", "input format: json or yaml (default from file extension, else json)")
	fs.IntVar(&o.depth, "depth", 0, "maximum nesting depth (default 64)")
	fs.IntVar(&o.width, "width", 0, "truncate leaf values wider than this many columns")
	fs.StringVar(&o.config, "config", "", "YAML file with max_depth and leaf_width")
	fs.BoolVar(&o.verbose, "v", false, "log debug output")
	fs.StringVar(&o.logFile, "log-file", "", "also write JSON logs to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(stderr, o)
	if err != nil {
		return err
	}
	defer closeLog()

	opts, err := renderOptions(o)
	if err != nil {
		return err
	}

	if fs.NArg() == 0 {
		logger.Debug("reading stdin", "format", o.format)
		return renderStream(stdout, stdin, o.format, opts, logger)
	}
	for _, name := range fs.Args() {
		format := o.format
		if format == "" {
			format = formatFromExt(name)
		}
		if err := renderFile(stdout, name, format, opts, logger); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func newLogger(stderr io.Writer, o options) (*slog.Logger, func(), error) {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
	}
	closer := func() {}
	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		closer = func() { _ = f.Close() }
	}
	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// renderOptions merges the config file with the flags; flags win.
func renderOptions(o options) ([]nestfmt.Option, error) {
	var c nestfmt.Config
	if o.config != "" {
		f, err := os.Open(o.config)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if c, err = nestfmt.LoadConfig(f); err != nil {
			return nil, fmt.Errorf("%s: %w", o.config, err)
		}
	}
	if o.depth > 0 {
		c.MaxDepth = o.depth
	}
	if o.width > 0 {
		c.LeafWidth = o.width
	}
	return c.Options(), nil
}

func formatFromExt(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

func renderFile(w io.Writer, name, format string, opts []nestfmt.Option, logger *slog.Logger) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	logger.Debug("reading file", "file", name, "format", format)
	return renderStream(w, f, format, opts, logger)
}

// renderStream decodes every document in r and writes one rendering per line.
func renderStream(w io.Writer, r io.Reader, format string, opts []nestfmt.Option, logger *slog.Logger) error {
	next, err := documents(r, format)
	if err != nil {
		return err
	}
	n := 0
	for {
		var doc any
		if err := next(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				logger.Debug("done", "documents", n)
				return nil
			}
			return fmt.Errorf("document %d: %w", n+1, err)
		}
		n++
		if err := nestfmt.Write(w, doc, opts...); err != nil {
			return fmt.Errorf("document %d: %w", n, err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
}

func documents(r io.Reader, format string) (func(any) error, error) {
	switch format {
	case "", "json":
		dec := json.NewDecoder(r)
		dec.UseNumber()
		return dec.Decode, nil
	case "yaml":
		return yaml.NewDecoder(r).Decode, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}
