package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SupportedExtensions lists the file extensions Import understands.
var SupportedExtensions = []string{".csv", ".json", ".xlsx", ".xlsm"}

// ImportFile reads path and imports it by extension.
func ImportFile(path string, limits Limits) (*Result, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Import(filepath.Base(path), data, limits)
}

// Import dispatches data to the parser matching name's extension and
// records name and size in the dataset's source metadata. Text formats are
// decoded with DecodeText first.
func Import(name string, data []byte, limits Limits) (*Result, error) {
	var (
		res *Result
		err error
	)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		text, _, decErr := DecodeText(data)
		if decErr != nil {
			return nil, decErr
		}
		res, err = ParseCSV(text, limits)
	case ".json":
		text, _, decErr := DecodeText(data)
		if decErr != nil {
			return nil, decErr
		}
		res, err = ParseJSON([]byte(text), limits)
	case ".xlsx", ".xlsm":
		res, err = ParseXLSX(data, limits)
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFileType, name, strings.Join(SupportedExtensions, ", "))
	}
	if err != nil {
		return nil, err
	}

	res.Dataset.SourceMeta.Name = name
	res.Dataset.SourceMeta.Size = int64(len(data))
	return res, nil
}
