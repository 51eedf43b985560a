// Package dataset imports tabular data (CSV, JSON, XLSX) into a normalized
// Dataset with unique field keys, inferred field types, and per-cell issues.
//
// # Import flow
//
// Every format funnels through the same builder:
//
//  1. Raw headers are truncated to Limits.MaxHeaderLength and normalized
//     into unique keys (NormalizeHeader, UniqueKeys).
//  2. Row and column counts are checked against Limits before any row is
//     processed; exceeding either fails the import.
//  3. Each cell is sanitized and truncated to Limits.MaxCellLength,
//     recording one Issue per truncated cell.
//  4. Field types are inferred from up to 20 sampled values (InferType).
//
// XLSX sheets are converted to row objects and delegated to the JSON path,
// so both formats share identical field lookup rules.
package dataset
