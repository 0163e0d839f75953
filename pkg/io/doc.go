// Package io reads and writes mosaic layouts as JSON documents.
//
// The document is the one produced by the json output format:
//
//	{
//	  "id": "5b0c...",
//	  "seed": 42,
//	  "rows": 2,
//	  "columns": 3,
//	  "counts": {"small": 2, "tall": 1, "wide": 1},
//	  "blocks": [
//	    {"index": 1, "shape": "TALL", "row": 0, "column": 0, "row_span": 2, "col_span": 1},
//	    {"index": 2, "shape": "WIDE", "row": 0, "column": 1, "row_span": 1, "col_span": 2},
//	    ...
//	  ]
//	}
//
// Only rows, columns and blocks are needed to import a layout; blocks are
// replayed onto a fresh grid so that overlapping, out-of-bounds or
// incomplete documents are rejected. Spans and indices are recomputed, and
// counts, when present, must agree with the blocks.
//
// Saved layouts can be re-rendered in any format without regenerating:
//
//	l, meta, err := io.ImportLayout("mosaic.json")
//	svg := sink.RenderSVG(l)
package io
