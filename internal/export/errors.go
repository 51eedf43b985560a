package export

import "errors"

// Sentinel errors for export operations.
var (
	ErrInvalidFormat  = errors.New("invalid export format")
	ErrNoArtifacts    = errors.New("no documents to export")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrDOCXGeneration = errors.New("DOCX generation failed")
	ErrBundle         = errors.New("failed to create bundle")
)
