package dataset

import "errors"

// Sentinel errors for dataset import.
var (
	ErrTooManyRows         = errors.New("dataset exceeds maximum row count")
	ErrTooManyColumns      = errors.New("dataset exceeds maximum column count")
	ErrNoRows              = errors.New("no rows found in CSV")
	ErrNotArray            = errors.New("JSON must be an array of records")
	ErrEmptyArray          = errors.New("JSON array is empty")
	ErrNotObject           = errors.New("record is not an object")
	ErrInvalidJSON         = errors.New("invalid JSON")
	ErrInvalidCSV          = errors.New("invalid CSV")
	ErrSpreadsheet         = errors.New("unable to read spreadsheet")
	ErrEmptySheet          = errors.New("spreadsheet has no data")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrDecode              = errors.New("unable to decode text")
)
