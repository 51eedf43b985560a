// Package export converts rendered HTML documents into downloadable files.
//
// HTML is written as is. PDF is printed by headless Chrome through go-rod
// using the template's page geometry. DOCX is produced by mapping the HTML
// block structure onto a WordprocessingML package. Bundle packs several
// files into one zip archive.
package export
