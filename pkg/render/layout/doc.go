// Package layout converts a filled grid into renderable blocks.
//
// # Traversal
//
// [Build] reads the grid's marks top-to-bottom, left-to-right. Each anchor
// mark becomes a [Block]:
//
//   - SMALL spans one row and one column
//   - TALL_TOP spans two rows
//   - WIDE_LEFT spans two columns
//
// TALL_BOTTOM and WIDE_RIGHT emit nothing. Blocks are numbered from 1 in
// traversal order, which is the order an HTML table lists its cells.
//
// # Coordinates
//
// Block coordinates are in cell units: Left/Right are column boundaries and
// Top/Bottom are row boundaries, with row 0 at the top. Sinks scale them to
// pixels.
package layout
