// Package main hosts the shuttersort CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces sorting, configuration scaffolding,
// and preflight checks. It centralizes configuration resolution and logger
// setup so subcommands stay declarative; the sorting logic itself lives in
// the internal packages.
package main
