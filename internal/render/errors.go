package render

import "errors"

// Sentinel errors for rendering.
var (
	ErrUnknownNode  = errors.New("unknown node type")
	ErrLoadAssets   = errors.New("failed to load render assets")
	ErrDocumentBody = errors.New("failed to render document")
)
