// Package merge resolves record values for merge tags and performs textual
// {{token}} substitution in rendered output and filename patterns.
package merge
