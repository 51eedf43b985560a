package main

import (
	"errors"
	"strings"

	"github.com/alnah/go-docmerge/internal/config"
	"github.com/alnah/go-docmerge/internal/hints"
)

// loadConfig returns the defaults when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !strings.ContainsAny(name, "/\\") {
			return nil, &hintedError{err: err, hint: hints.ForConfigNotFound(config.SearchPaths(name))}
		}
		return nil, err
	}
	return cfg, nil
}

// applyGenerateFlags overrides config values with the flags that were set.
func applyGenerateFlags(cfg *config.Config, f *generateFlags) {
	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	override(&cfg.Generate.Format, f.format)
	override(&cfg.Generate.FilenamePattern, f.pattern)
	override(&cfg.Generate.Range, f.rng)
	override(&cfg.Generate.Output, f.output)
	override(&cfg.PDF.Timeout, f.timeout)
	override(&cfg.Bundle.Name, f.bundle)
	override(&cfg.Assets.Style, f.style)
	override(&cfg.Assets.HighlightStyle, f.highlight)
	override(&cfg.Assets.BasePath, f.assetPath)

	// Row flags imply their range unless one was given explicitly.
	if f.rng == "" {
		switch {
		case f.rows != "":
			cfg.Generate.Range = config.RangeSelection
		case f.filter != "":
			cfg.Generate.Range = config.RangeFiltered
		}
	}
}
