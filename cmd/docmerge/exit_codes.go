package main

import (
	"context"
	"errors"
	"os"

	"github.com/alnah/go-docmerge"
	"github.com/alnah/go-docmerge/internal/config"
	"github.com/alnah/go-docmerge/internal/fileutil"
)

// Exit codes for the docmerge CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All requested documents were produced
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, template or data
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4). A PDF render that outlives its timeout
	// surfaces as a deadline.
	if errors.Is(err, docmerge.ErrBrowserConnect) ||
		errors.Is(err, docmerge.ErrPageCreate) ||
		errors.Is(err, docmerge.ErrPageLoad) ||
		errors.Is(err, docmerge.ErrPDFGeneration) ||
		errors.Is(err, context.DeadlineExceeded) {
		return ExitBrowser
	}

	// Usage/config/validation errors (exit 2). Checked before I/O so that a
	// missing config reports as a usage problem.
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidRows) ||
		errors.Is(err, ErrInvalidFilter) ||
		errors.Is(err, ErrEmptySelection) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, docmerge.ErrMalformedTemplate) ||
		errors.Is(err, docmerge.ErrInvalidFormat) ||
		errors.Is(err, docmerge.ErrInvalidRange) ||
		errors.Is(err, docmerge.ErrSelectionOutOfRange) ||
		errors.Is(err, docmerge.ErrLoadAssets) ||
		errors.Is(err, docmerge.ErrUnsupportedFileType) ||
		errors.Is(err, docmerge.ErrTooManyRows) ||
		errors.Is(err, docmerge.ErrTooManyColumns) ||
		errors.Is(err, docmerge.ErrNoRows) ||
		errors.Is(err, docmerge.ErrNotArray) ||
		errors.Is(err, docmerge.ErrEmptyArray) ||
		errors.Is(err, docmerge.ErrNotObject) ||
		errors.Is(err, docmerge.ErrSpreadsheet) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrUnsafeName) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	return ExitGeneral
}
