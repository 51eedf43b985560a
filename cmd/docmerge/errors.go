package main

import (
	"errors"

	"github.com/alnah/go-docmerge"
	"github.com/alnah/go-docmerge/internal/assets"
	"github.com/alnah/go-docmerge/internal/config"
	"github.com/alnah/go-docmerge/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrInvalidRows    = errors.New("invalid --rows value")
	ErrInvalidFilter  = errors.New("invalid --filter value")
	ErrEmptySelection = errors.New("no rows selected")
	ErrWriteOutput    = errors.New("failed to write output")
)

// hintedError carries a hint that depends on the failed input.
type hintedError struct {
	err  error
	hint string
}

func (e *hintedError) Error() string { return e.err.Error() }
func (e *hintedError) Unwrap() error { return e.err }

// hintFor returns a hint line for err, or "".
func hintFor(err error) string {
	var he *hintedError
	if errors.As(err, &he) {
		return he.hint
	}
	switch {
	case errors.Is(err, docmerge.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, docmerge.ErrPageLoad), errors.Is(err, docmerge.ErrPDFGeneration):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, docmerge.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.StyleNames())
	case errors.Is(err, docmerge.ErrUnsupportedFileType):
		return hints.ForUnsupportedFile()
	case errors.Is(err, docmerge.ErrTooManyRows), errors.Is(err, docmerge.ErrTooManyColumns):
		return hints.ForLimit()
	case errors.Is(err, ErrEmptySelection):
		return hints.ForEmptySelection()
	}
	return ""
}
