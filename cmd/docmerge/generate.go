package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-docmerge"
	"github.com/alnah/go-docmerge/internal/fileutil"
)

// runGenerate merges the data into the template, exports the documents and
// writes either the single file or a zip bundle to the output directory.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseGenerateFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if flags.data == "" || flags.template == "" {
		printGenerateUsage(env.Stderr)
		return fmt.Errorf("%w: --data and --template are required", ErrUsage)
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	applyGenerateFlags(cfg, flags)
	if err := cfg.Validate(); err != nil {
		return err
	}
	timeout, err := cfg.PDFTimeout()
	if err != nil {
		return err
	}
	logger := newLogger(env.Stderr, flags.common)

	opts := docmerge.GenerationOptions{
		Range:           docmerge.Range(strings.ToLower(cfg.Generate.Range)),
		FilenamePattern: cfg.Generate.FilenamePattern,
	}
	if opts.Format, err = docmerge.ParseFormat(cfg.Generate.Format); err != nil {
		return err
	}
	if flags.rows != "" {
		maxRows := cfg.DatasetLimits().MaxRows
		if maxRows <= 0 {
			maxRows = docmerge.DefaultLimits().MaxRows
		}
		if opts.Selection, err = parseRows(flags.rows, maxRows); err != nil {
			return err
		}
	}
	if flags.filter != "" {
		if opts.Filter, err = parseFilter(flags.filter); err != nil {
			return err
		}
	}

	imported, err := docmerge.ImportFile(flags.data, cfg.DatasetLimits())
	if err != nil {
		return err
	}
	if !flags.common.quiet {
		for _, issue := range imported.Issues {
			fmt.Fprintf(env.Stderr, "warning: %s\n", formatIssue(issue))
		}
	}

	tmpl, err := docmerge.LoadTemplateFile(flags.template)
	if err != nil {
		return err
	}

	if err := opts.Validate(imported.Dataset); err != nil {
		return err
	}
	if len(docmerge.SelectRows(imported.Dataset, opts)) == 0 {
		return ErrEmptySelection
	}

	gen := docmerge.NewGenerator(
		docmerge.WithLogger(logger),
		docmerge.WithStyle(cfg.Assets.Style),
		docmerge.WithHighlightStyle(cfg.Assets.HighlightStyle),
		docmerge.WithAssetPath(cfg.Assets.BasePath),
	)
	artifacts, err := gen.Build(ctx, imported.Dataset, tmpl, opts)
	if err != nil {
		return err
	}

	exportOpts := []docmerge.Option{
		docmerge.WithLogger(logger),
		docmerge.WithPDFTimeout(timeout),
		docmerge.WithBundleName(cfg.Bundle.Name),
		docmerge.WithClock(env.Now),
	}
	if env.PDFRenderer != nil {
		exportOpts = append(exportOpts, docmerge.WithPDFRenderer(env.PDFRenderer))
	}
	exporter := docmerge.NewExporter(exportOpts...)
	defer func() { _ = exporter.Close() }()

	files, err := exporter.Export(ctx, artifacts, tmpl, opts.Format)
	if err != nil {
		return err
	}
	out, err := exporter.Bundle(files)
	if err != nil {
		return err
	}
	path, err := fileutil.WriteOutput(cfg.Generate.Output, out.Name, out.Data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	failed := 0
	for _, a := range artifacts {
		if a.Err != nil {
			failed++
			if !flags.common.quiet {
				fmt.Fprintf(env.Stderr, "warning: row %d could not be rendered: %v\n", a.Index+1, a.Err)
			}
		}
	}
	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "wrote %s (%s)\n", path, summary(len(artifacts), failed))
	}
	return nil
}

func summary(total, failed int) string {
	s := plural(total, "document")
	if failed > 0 {
		s += fmt.Sprintf(", %d failed", failed)
	}
	return s
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func formatIssue(i docmerge.Issue) string {
	if i.Field != "" {
		return fmt.Sprintf("row %d, %s: %s", i.Row, i.Field, i.Message)
	}
	return fmt.Sprintf("row %d: %s", i.Row, i.Message)
}
