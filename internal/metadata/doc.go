// Package metadata models per-file attribute records and obtains them from
// exiftool, either by driving the tool directly or by loading a JSON array it
// produced earlier.
//
// Records are deliberately schemaless: exiftool reports hundreds of tags and
// the filename format template may reference any of them. Only a handful of
// attributes get typed accessors because downstream code routes on them.
package metadata
