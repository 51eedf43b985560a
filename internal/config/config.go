// Package config loads the optional YAML settings file for the CLI. Flags
// given on the command line override these values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-docmerge/internal/dataset"
	"github.com/alnah/go-docmerge/internal/export"
	"github.com/alnah/go-docmerge/internal/fileutil"
	"github.com/alnah/go-docmerge/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDir is the directory under os.UserConfigDir searched for configs.
const AppDir = "go-docmerge"

// Field length limits.
const (
	MaxPatternLength    = 255
	MaxPathLength       = 4096
	MaxBundleNameLength = 100
	MaxStyleNameLength  = 64
)

// Ranges accepted by generate.range.
const (
	RangeAll       = "all"
	RangeSelection = "selection"
	RangeFiltered  = "filtered"
)

// Config holds the CLI defaults.
type Config struct {
	Limits   LimitsConfig   `yaml:"limits"`
	Generate GenerateConfig `yaml:"generate"`
	PDF      PDFConfig      `yaml:"pdf"`
	Bundle   BundleConfig   `yaml:"bundle"`
	Assets   AssetsConfig   `yaml:"assets"`
}

// LimitsConfig bounds dataset imports. Zero keeps the built-in default.
type LimitsConfig struct {
	MaxRows         int `yaml:"maxRows"`
	MaxColumns      int `yaml:"maxColumns"`
	MaxHeaderLength int `yaml:"maxHeaderLength"`
	MaxCellLength   int `yaml:"maxCellLength"`
}

// GenerateConfig holds defaults for the generate command.
type GenerateConfig struct {
	Format          string `yaml:"format"`          // pdf, docx, html
	FilenamePattern string `yaml:"filenamePattern"` // e.g. "Letter_{{name}}"
	Range           string `yaml:"range"`           // all, selection, filtered
	Output          string `yaml:"output"`          // output directory
}

// PDFConfig configures the headless browser.
type PDFConfig struct {
	Timeout string `yaml:"timeout"` // Go duration, e.g. "45s"
}

// BundleConfig names the zip archive written for multi-document batches.
type BundleConfig struct {
	Name string `yaml:"name"` // literal, "auto" or "auto:FORMAT"; "{date}" expands
}

// AssetsConfig selects the document style and an optional asset override
// directory.
type AssetsConfig struct {
	BasePath       string `yaml:"basePath"`
	Style          string `yaml:"style"`
	HighlightStyle string `yaml:"highlightStyle"`
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() *Config {
	l := dataset.DefaultLimits()
	return &Config{
		Limits: LimitsConfig{
			MaxRows:         l.MaxRows,
			MaxColumns:      l.MaxColumns,
			MaxHeaderLength: l.MaxHeaderLength,
			MaxCellLength:   l.MaxCellLength,
		},
		Generate: GenerateConfig{
			Format: string(export.FormatPDF),
			Range:  RangeAll,
			Output: ".",
		},
		PDF:    PDFConfig{Timeout: export.DefaultPDFTimeout.String()},
		Bundle: BundleConfig{Name: export.DefaultBundleName},
	}
}

// DatasetLimits converts the limits section.
func (c *Config) DatasetLimits() dataset.Limits {
	return dataset.Limits{
		MaxRows:         c.Limits.MaxRows,
		MaxColumns:      c.Limits.MaxColumns,
		MaxHeaderLength: c.Limits.MaxHeaderLength,
		MaxCellLength:   c.Limits.MaxCellLength,
	}
}

// PDFTimeout parses pdf.timeout. An empty value yields the default.
func (c *Config) PDFTimeout() (time.Duration, error) {
	if c.PDF.Timeout == "" {
		return export.DefaultPDFTimeout, nil
	}
	d, err := time.ParseDuration(c.PDF.Timeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: pdf.timeout %q must be a positive duration", ErrInvalidValue, c.PDF.Timeout)
	}
	return d, nil
}

// Validate checks enums, limits and field lengths. LoadConfig calls it.
func (c *Config) Validate() error {
	limits := []struct {
		name  string
		value int
	}{
		{"limits.maxRows", c.Limits.MaxRows},
		{"limits.maxColumns", c.Limits.MaxColumns},
		{"limits.maxHeaderLength", c.Limits.MaxHeaderLength},
		{"limits.maxCellLength", c.Limits.MaxCellLength},
	}
	for _, l := range limits {
		if l.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidValue, l.name, l.value)
		}
	}

	if c.Generate.Format != "" {
		if _, err := export.ParseFormat(c.Generate.Format); err != nil {
			return fmt.Errorf("%w: generate.format: %v", ErrInvalidValue, err)
		}
	}
	switch strings.ToLower(c.Generate.Range) {
	case "", RangeAll, RangeSelection, RangeFiltered:
	default:
		return fmt.Errorf("%w: generate.range %q (expected all, selection or filtered)", ErrInvalidValue, c.Generate.Range)
	}
	if _, err := c.PDFTimeout(); err != nil {
		return err
	}

	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"generate.filenamePattern", c.Generate.FilenamePattern, MaxPatternLength},
		{"generate.output", c.Generate.Output, MaxPathLength},
		{"bundle.name", c.Bundle.Name, MaxBundleNameLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"assets.style", c.Assets.Style, MaxStyleNameLength},
		{"assets.highlightStyle", c.Assets.HighlightStyle, MaxStyleNameLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}
	return nil
}

func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s is %d characters (max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig reads a config by path, or by name from the working directory
// and then the user config directory, trying .yaml and .yml. Values the
// file omits keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !strings.ContainsAny(nameOrPath, "/\\") {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.fillDefaults()
	return &cfg, nil
}

// fillDefaults replaces zero values with those of DefaultConfig.
func (c *Config) fillDefaults() {
	d := DefaultConfig()
	setInt := func(v *int, def int) {
		if *v == 0 {
			*v = def
		}
	}
	setString := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	setInt(&c.Limits.MaxRows, d.Limits.MaxRows)
	setInt(&c.Limits.MaxColumns, d.Limits.MaxColumns)
	setInt(&c.Limits.MaxHeaderLength, d.Limits.MaxHeaderLength)
	setInt(&c.Limits.MaxCellLength, d.Limits.MaxCellLength)
	setString(&c.Generate.Format, d.Generate.Format)
	setString(&c.Generate.Range, d.Generate.Range)
	setString(&c.Generate.Output, d.Generate.Output)
	setString(&c.PDF.Timeout, d.PDF.Timeout)
	setString(&c.Bundle.Name, d.Bundle.Name)
}

// SearchPaths lists the candidate files for a config name in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, AppDir, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
