package docmerge

import (
	"errors"

	"github.com/alnah/go-docmerge/internal/assets"
	"github.com/alnah/go-docmerge/internal/content"
	"github.com/alnah/go-docmerge/internal/dataset"
	"github.com/alnah/go-docmerge/internal/export"
	"github.com/alnah/go-docmerge/internal/render"
)

// Sentinel errors for generation options.
var (
	ErrInvalidRange        = errors.New("invalid range")
	ErrSelectionOutOfRange = errors.New("selected row is out of range")
	ErrNilDataset          = errors.New("dataset is required")
	ErrNilTemplate         = errors.New("template is required")
)

// Errors re-exported from the internal packages so callers can match them
// with errors.Is.
var (
	// Templates.
	ErrMalformedTemplate = content.ErrMalformedTemplate

	// Rendering.
	ErrLoadAssets    = render.ErrLoadAssets
	ErrStyleNotFound = assets.ErrStyleNotFound

	// Export.
	ErrInvalidFormat  = export.ErrInvalidFormat
	ErrNoArtifacts    = export.ErrNoArtifacts
	ErrBrowserConnect = export.ErrBrowserConnect
	ErrPageCreate     = export.ErrPageCreate
	ErrPageLoad       = export.ErrPageLoad
	ErrPDFGeneration  = export.ErrPDFGeneration
	ErrDOCXGeneration = export.ErrDOCXGeneration

	// Dataset import.
	ErrTooManyRows         = dataset.ErrTooManyRows
	ErrTooManyColumns      = dataset.ErrTooManyColumns
	ErrNoRows              = dataset.ErrNoRows
	ErrNotArray            = dataset.ErrNotArray
	ErrEmptyArray          = dataset.ErrEmptyArray
	ErrNotObject           = dataset.ErrNotObject
	ErrSpreadsheet         = dataset.ErrSpreadsheet
	ErrUnsupportedFileType = dataset.ErrUnsupportedFileType
)
