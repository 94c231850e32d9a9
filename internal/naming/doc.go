// Package naming derives deterministic, collision-free destination paths
// from file metadata and a user-supplied format template.
//
// It normalizes raw attribute mappings into template-ready values, renders
// {name} placeholders in one of three branch-number modes (concrete value,
// glob wildcard, capturing pattern), and resolves the branch number by
// scanning the destination tree for files that already occupy the rendered
// prefix. Branch resolution reads live filesystem state, so callers must
// place each file before resolving the next.
package naming
