// Package surface provides the element tree that layout containers arrange.
//
// A surface tree plays the role a DOM plays in a browser: containers create
// nodes through a Document, move them around when the layout changes, and
// record on every node the extent it was allotted. Painting the tree is left
// to consumers such as internal/render.
//
// Nodes can also be scaffolded from YAML (see Scaffold); the "layout"
// attribute on a scaffolded node tells layout.Derive which container kind to
// build for it.
package surface
