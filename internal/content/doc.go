// Package content defines the template document model: a tree of typed
// nodes in the editor's JSON shape, plus page geometry and typography.
//
// Node attributes are decoded into a typed struct per node type and
// validated on ingestion. Node types without a schema keep their attributes
// as a GenericAttrs map so that unknown editor extensions survive a round
// trip.
package content
