package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-docmerge"
)

// runValidate loads a template and prints its page setup and merge tags.
// With --data it also reports tags that no field of the data file matches.
func runValidate(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseValidateFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if flags.template == "" {
		printValidateUsage(env.Stderr)
		return fmt.Errorf("%w: --template is required", ErrUsage)
	}

	tmpl, err := docmerge.LoadTemplateFile(flags.template)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	keys := docmerge.MergeTagKeys(tmpl)
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "%s: valid template\n", flags.template)
		fmt.Fprintf(env.Stdout, "  page: %s %s\n", tmpl.Page.Size, tmpl.Page.Orientation)
		fmt.Fprintf(env.Stdout, "  merge tags: %s\n", tagList(keys))
	}

	if flags.data == "" {
		return nil
	}
	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	imported, err := docmerge.ImportFile(flags.data, cfg.DatasetLimits())
	if err != nil {
		return err
	}

	missing := unknownKeys(keys, imported.Dataset)
	for _, k := range missing {
		fmt.Fprintf(env.Stderr, "warning: merge tag {{%s}} matches no field in %s\n", k, flags.data)
	}
	if !flags.common.quiet && len(missing) == 0 {
		fmt.Fprintf(env.Stdout, "  all merge tags match fields in %s\n", flags.data)
	}
	return nil
}

func tagList(keys []string) string {
	if len(keys) == 0 {
		return "none"
	}
	return strings.Join(keys, ", ")
}

// unknownKeys returns the keys whose first path segment is not a field.
func unknownKeys(keys []string, ds *docmerge.Dataset) []string {
	var out []string
	for _, k := range keys {
		head, _, _ := strings.Cut(k, ".")
		if _, ok := ds.FieldByKey(head); !ok {
			out = append(out, k)
		}
	}
	return out
}
