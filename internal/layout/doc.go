// Package layout is a mutable tree of panes.
//
// A Root holds one content container. Parent containers arrange their
// children: a Split divides its extent by a ratio, a Lineup gives each child
// an equal share or its own extent, a Tabbing shows one child at a time.
// The leaves are ViewContainers wrapping a View. Every container owns a
// body node and a header node on a surface.Document; the engine keeps those
// nodes mounted in tree order and assigns their sizes on Resized.
//
// Mutations (Push, Insert, Remove, Replace, Place, Activate, Maximize) run
// synchronously and keep two invariants: a parent never holds fewer children
// than its MinChildCount, dissolving into its own parent otherwise, and a
// child is visible only if its parent shows it.
//
// Trees are built with the builder functions, persisted with Persist and
// brought back with Restore, or derived from a surface annotated with
// "layout" attributes.
//
// The package is not safe for concurrent use.
package layout
