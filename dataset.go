package docmerge

import "github.com/alnah/go-docmerge/internal/dataset"

// Import parses CSV, JSON or XLSX data. name selects the parser by its
// extension. Zero limits use the defaults.
func Import(name string, data []byte, limits Limits) (*ImportResult, error) {
	return dataset.Import(name, data, limits)
}

// ImportFile reads and imports the file at path.
func ImportFile(path string, limits Limits) (*ImportResult, error) {
	return dataset.ImportFile(path, limits)
}

// Preview returns up to limit rows; zero uses the default of 100.
func Preview(ds *Dataset, limit int) []Record {
	return dataset.Preview(ds, limit)
}
