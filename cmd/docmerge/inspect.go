package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/alnah/go-docmerge"
	"github.com/alnah/go-docmerge/internal/dataset"
	"github.com/alnah/go-docmerge/internal/merge"
	"github.com/alnah/go-docmerge/internal/yamlutil"
)

// inspectReport summarizes an imported data file.
type inspectReport struct {
	Source string            `yaml:"source"`
	Type   string            `yaml:"type"`
	Rows   int               `yaml:"rows"`
	Fields []inspectField    `yaml:"fields"`
	Issues []string          `yaml:"issues,omitempty"`
	Sample []map[string]any  `yaml:"preview,omitempty"`
	Keys   map[string]string `yaml:"headers,omitempty"`
}

type inspectField struct {
	Key    string `yaml:"key"`
	Label  string `yaml:"label"`
	Type   string `yaml:"type"`
	Sample string `yaml:"sample,omitempty"`
}

// runInspect imports a data file and prints its fields, row count and
// import issues.
func runInspect(args []string, env *Environment) error {
	flags, err := parseInspectFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if flags.data == "" {
		printInspectUsage(env.Stderr)
		return fmt.Errorf("%w: --data is required", ErrUsage)
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	imported, err := docmerge.ImportFile(flags.data, cfg.DatasetLimits())
	if err != nil {
		return err
	}
	ds := imported.Dataset
	report := buildReport(imported, flags)

	if flags.yaml {
		data, err := yamlutil.Marshal(report)
		if err != nil {
			return err
		}
		_, err = env.Stdout.Write(data)
		return err
	}

	w := tabwriter.NewWriter(env.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s (%s): %s, %s\n", report.Source, report.Type, plural(len(ds.Rows), "row"), plural(len(ds.Fields), "field"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "KEY\tLABEL\tTYPE\tSAMPLE")
	for _, f := range report.Fields {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Key, f.Label, f.Type, f.Sample)
	}
	if len(report.Issues) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Issues:")
		for _, issue := range report.Issues {
			fmt.Fprintf(w, "  %s\n", issue)
		}
	}
	if len(report.Sample) > 0 {
		fmt.Fprintln(w)
		for _, f := range report.Fields {
			fmt.Fprintf(w, "%s\t", f.Key)
		}
		fmt.Fprintln(w)
		for _, row := range report.Sample {
			for _, f := range report.Fields {
				fmt.Fprintf(w, "%v\t", row[f.Key])
			}
			fmt.Fprintln(w)
		}
	}
	return w.Flush()
}

func buildReport(imported *docmerge.ImportResult, flags *inspectFlags) inspectReport {
	ds := imported.Dataset
	r := inspectReport{
		Source: ds.SourceMeta.Name,
		Type:   string(ds.SourceMeta.Type),
		Rows:   len(ds.Rows),
	}
	for _, f := range dataset.FilterFields(ds.Fields, flags.query) {
		r.Fields = append(r.Fields, inspectField{
			Key:    f.Key,
			Label:  f.Label,
			Type:   dataset.FormatFieldType(f.Type),
			Sample: merge.FormatValue(dataset.SampleValue(ds, f.Key)),
		})
	}
	for _, issue := range imported.Issues {
		r.Issues = append(r.Issues, formatIssue(issue))
	}
	for _, h := range imported.Headers {
		if h.Original != h.Key {
			if r.Keys == nil {
				r.Keys = make(map[string]string)
			}
			r.Keys[h.Original] = h.Key
		}
	}
	if flags.preview > 0 {
		for _, row := range docmerge.Preview(ds, flags.preview) {
			formatted := make(map[string]any, len(row))
			for k, v := range row {
				formatted[k] = merge.FormatValue(v)
			}
			r.Sample = append(r.Sample, formatted)
		}
	}
	return r
}
