package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-docmerge"
	"github.com/alnah/go-docmerge/internal/fileutil"
)

// runTemplate converts a Markdown template to the JSON template format.
func runTemplate(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseTemplateFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if flags.from == "" {
		printTemplateUsage(env.Stderr)
		return fmt.Errorf("%w: --from is required", ErrUsage)
	}

	src, err := os.ReadFile(flags.from) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}
	tmpl, err := docmerge.LoadMarkdownTemplate(ctx, src)
	if err != nil {
		return err
	}
	data, err := docmerge.MarshalTemplate(tmpl)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if flags.output == "" {
		_, err := env.Stdout.Write(data)
		return err
	}
	if _, err := fileutil.WriteOutput(filepath.Dir(flags.output), filepath.Base(flags.output), data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
