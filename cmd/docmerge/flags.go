package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-docmerge"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common    commonFlags
	data      string
	template  string
	format    string
	pattern   string
	rng       string
	rows      string
	filter    string
	output    string
	timeout   string
	bundle    string
	style     string
	highlight string
	assetPath string
}

// inspectFlags holds flags for the inspect command.
type inspectFlags struct {
	common  commonFlags
	data    string
	query   string
	preview int
	yaml    bool
}

// validateFlags holds flags for the validate command.
type validateFlags struct {
	common   commonFlags
	template string
	data     string
}

// templateFlags holds flags for the template command.
type templateFlags struct {
	from   string
	output string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// parse runs fs and marks failures as usage errors.
func parse(fs *flag.FlagSet, args []string) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return fs.Args(), nil
}

// parseGenerateFlags parses generate command flags.
func parseGenerateFlags(args []string, w io.Writer) (*generateFlags, error) {
	f := &generateFlags{}
	fs := newFlagSet("generate", w, printGenerateUsage)

	fs.StringVarP(&f.data, "data", "d", "", "CSV, JSON or XLSX data file")
	fs.StringVarP(&f.template, "template", "t", "", "template file (.json or .md)")
	fs.StringVarP(&f.format, "format", "f", "", "output format: pdf, docx, html")
	fs.StringVarP(&f.pattern, "pattern", "p", "", "file name pattern, e.g. Letter_{{name}}")
	fs.StringVar(&f.rng, "range", "", "rows to generate: all, selection, filtered")
	fs.StringVar(&f.rows, "rows", "", "1-based rows or ranges, e.g. 1,3,5-7")
	fs.StringVar(&f.filter, "filter", "", "row filter field:op:value (eq, neq, gt, lt, contains)")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVar(&f.timeout, "timeout", "", "per-document PDF timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.bundle, "bundle-name", "", "zip name: literal, {date}, auto or auto:FORMAT")
	fs.StringVar(&f.style, "style", "", "document style name")
	fs.StringVar(&f.highlight, "highlight", "", "code highlight style")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	addCommonFlags(fs, &f.common)

	rest, err := parse(fs, args)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", ErrUsage, rest)
	}
	return f, nil
}

// parseInspectFlags parses inspect command flags. The data file may also
// be given as the only argument.
func parseInspectFlags(args []string, w io.Writer) (*inspectFlags, error) {
	f := &inspectFlags{}
	fs := newFlagSet("inspect", w, printInspectUsage)

	fs.StringVarP(&f.data, "data", "d", "", "CSV, JSON or XLSX data file")
	fs.StringVar(&f.query, "query", "", "only list fields matching label, key or type")
	fs.IntVar(&f.preview, "preview", 0, "print the first N rows")
	fs.BoolVar(&f.yaml, "yaml", false, "print the summary as YAML")
	addCommonFlags(fs, &f.common)

	rest, err := parse(fs, args)
	if err != nil {
		return nil, err
	}
	if f.data == "" && len(rest) == 1 {
		f.data = rest[0]
	} else if len(rest) > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", ErrUsage, rest)
	}
	return f, nil
}

// parseValidateFlags parses validate command flags.
func parseValidateFlags(args []string, w io.Writer) (*validateFlags, error) {
	f := &validateFlags{}
	fs := newFlagSet("validate", w, printValidateUsage)

	fs.StringVarP(&f.template, "template", "t", "", "template file (.json or .md)")
	fs.StringVarP(&f.data, "data", "d", "", "check merge tags against this data file")
	addCommonFlags(fs, &f.common)

	rest, err := parse(fs, args)
	if err != nil {
		return nil, err
	}
	if f.template == "" && len(rest) == 1 {
		f.template = rest[0]
	} else if len(rest) > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", ErrUsage, rest)
	}
	return f, nil
}

// parseTemplateFlags parses template command flags.
func parseTemplateFlags(args []string, w io.Writer) (*templateFlags, error) {
	f := &templateFlags{}
	fs := newFlagSet("template", w, printTemplateUsage)

	fs.StringVar(&f.from, "from", "", "Markdown template to convert")
	fs.StringVarP(&f.output, "output", "o", "", "JSON output file (default: stdout)")

	rest, err := parse(fs, args)
	if err != nil {
		return nil, err
	}
	if f.from == "" && len(rest) == 1 {
		f.from = rest[0]
	} else if len(rest) > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", ErrUsage, rest)
	}
	return f, nil
}

// parseRows turns "1,3,5-7" into zero-based indices in the given order.
// Row numbers above maxRows, or more than maxRows indices in total, are
// rejected before any range is expanded.
func parseRows(s string, maxRows int) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		first, err := rowNumber(lo)
		if err != nil {
			return nil, err
		}
		last := first
		if isRange {
			if last, err = rowNumber(hi); err != nil {
				return nil, err
			}
			if last < first {
				return nil, fmt.Errorf("%w: %q ends before it starts", ErrInvalidRows, part)
			}
		}
		if last > maxRows {
			return nil, fmt.Errorf("%w: row %d exceeds the row limit of %d", ErrInvalidRows, last, maxRows)
		}
		if len(out)+last-first+1 > maxRows {
			return nil, fmt.Errorf("%w: %q selects more than %d rows", ErrInvalidRows, s, maxRows)
		}
		for n := first; n <= last; n++ {
			out = append(out, n-1)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %q selects no rows", ErrInvalidRows, s)
	}
	return out, nil
}

func rowNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q is not a row number (rows start at 1)", ErrInvalidRows, s)
	}
	return n, nil
}

var filterOps = map[string]docmerge.FilterOp{
	"eq":       docmerge.OpEq,
	"neq":      docmerge.OpNeq,
	"gt":       docmerge.OpGt,
	"lt":       docmerge.OpLt,
	"contains": docmerge.OpContains,
}

// parseFilter reads field:op:value. The value is matched as text, the way
// CSV and XLSX cells are stored. A "json:" prefix decodes a typed scalar
// instead (json:42, json:true, json:null) for JSON data.
func parseFilter(s string) (*docmerge.Filter, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 || strings.TrimSpace(parts[0]) == "" {
		return nil, fmt.Errorf("%w: %q (expected field:op:value)", ErrInvalidFilter, s)
	}
	op, ok := filterOps[strings.ToLower(strings.TrimSpace(parts[1]))]
	if !ok {
		return nil, fmt.Errorf("%w: unknown operator %q", ErrInvalidFilter, parts[1])
	}

	var value any = parts[2]
	if raw, typed := strings.CutPrefix(parts[2], jsonValuePrefix); typed {
		v, err := jsonScalar(raw)
		if err != nil {
			return nil, err
		}
		value = v
	}
	return &docmerge.Filter{Field: strings.TrimSpace(parts[0]), Op: op, Value: value}, nil
}

const jsonValuePrefix = "json:"

func jsonScalar(raw string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("%w: %q is not a JSON value", ErrInvalidFilter, raw)
	}
	switch v.(type) {
	case map[string]any, []any:
		return nil, fmt.Errorf("%w: %q must be a scalar", ErrInvalidFilter, raw)
	}
	return v, nil
}
