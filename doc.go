// Package docmerge generates one personalized document per dataset row from
// a rich-text template containing merge tags.
//
// # Quick Start
//
// Import a dataset, load a template, build the artifacts and export them:
//
//	res, err := docmerge.ImportFile("people.csv", docmerge.Limits{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tmpl, err := docmerge.LoadTemplateFile("letter.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	gen := docmerge.NewGenerator()
//	artifacts, err := gen.Build(ctx, res.Dataset, tmpl, docmerge.GenerationOptions{
//	    Format:          docmerge.FormatPDF,
//	    Range:           docmerge.RangeAll,
//	    FilenamePattern: "Letter_{{name}}",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	exp := docmerge.NewExporter()
//	defer exp.Close()
//	files, err := exp.Export(ctx, artifacts, tmpl, docmerge.FormatPDF)
//
// # Pipeline
//
// Each selected row goes through the same stages:
//
//  1. Pruning: merge tags flagged suppressIfEmpty whose value is empty are
//     removed, along with the paragraphs, list items, table rows, lists and
//     tables left without content.
//  2. Rendering: the pruned tree becomes HTML. Merge tag nodes emit their
//     escaped value.
//  3. Substitution: literal {{path}} tokens typed into the text are
//     replaced with escaped record values.
//  4. Wrapping: the body is placed in a standalone page carrying the
//     template's page size, margins and typography.
//
// A row that fails to render does not stop the batch. Its artifact carries
// a placeholder body and the error in Artifact.Err.
//
// # Templates
//
// Templates are JSON documents in the editor's node format (see
// LoadTemplate) or Markdown with {{field}} and {{field?}} tokens (see
// LoadMarkdownTemplate).
package docmerge
