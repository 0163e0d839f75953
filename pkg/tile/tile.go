// Package tile defines the tile shapes of a mosaic and the marks they leave
// on grid cells.
//
// A [Shape] is what gets placed: Small (1×1), Tall (1 column × 2 rows) or
// Wide (2 columns × 1 row). A [Mark] is what a placed shape writes into each
// cell it covers. The cell at the coordinates passed to placement receives an
// anchor mark (Small, TallTop, WideLeft); the second cell of a paired tile
// receives a continuation mark (TallBottom, WideRight).
package tile

import "fmt"

// Shape is a placeable tile kind.
type Shape uint8

const (
	// NoShape is the projection of an empty cell. It is not placeable.
	NoShape Shape = iota
	Small
	Tall
	Wide
	// Continuation is the projection of the second cell of a paired tile:
	// the cell is covered but no tile is anchored there. It is not placeable.
	Continuation
)

// Shapes lists the placeable shapes.
var Shapes = []Shape{Small, Tall, Wide}

var shapeInfo = [...]struct {
	name          string
	width, height int
}{
	NoShape:      {"NONE", 0, 0},
	Small:        {"SMALL", 1, 1},
	Tall:         {"TALL", 1, 2},
	Wide:         {"WIDE", 2, 1},
	Continuation: {"CONTINUATION", 0, 0},
}

// Valid reports whether s is one of Small, Tall or Wide.
func (s Shape) Valid() bool { return s >= Small && s <= Wide }

// Width is the number of columns s occupies. Sentinels have width 0.
func (s Shape) Width() int {
	if int(s) >= len(shapeInfo) {
		return 0
	}
	return shapeInfo[s].width
}

// Height is the number of rows s occupies. Sentinels have height 0.
func (s Shape) Height() int {
	if int(s) >= len(shapeInfo) {
		return 0
	}
	return shapeInfo[s].height
}

// Cells is the number of grid cells s covers.
func (s Shape) Cells() int { return s.Width() * s.Height() }

func (s Shape) String() string {
	if int(s) >= len(shapeInfo) {
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
	return shapeInfo[s].name
}

// MarshalText encodes the shape by name.
func (s Shape) MarshalText() ([]byte, error) {
	if int(s) >= len(shapeInfo) {
		return nil, fmt.Errorf("tile: unknown shape %d", uint8(s))
	}
	return []byte(s.String()), nil
}

// ParseShape parses a placeable shape name (case-sensitive, as produced by String).
func ParseShape(name string) (Shape, error) {
	for _, s := range Shapes {
		if s.String() == name {
			return s, nil
		}
	}
	return NoShape, fmt.Errorf("tile: unknown shape %q", name)
}

// UnmarshalText decodes a placeable shape name.
func (s *Shape) UnmarshalText(text []byte) error {
	v, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Anchor returns the mark written at the anchor cell of s.
func (s Shape) Anchor() Mark {
	switch s {
	case Small:
		return MarkSmall
	case Tall:
		return TallTop
	case Wide:
		return WideLeft
	}
	return Empty
}

// Follower returns the continuation mark of a paired shape and the offset
// of that cell relative to the anchor. ok is false for Small and sentinels.
func (s Shape) Follower() (m Mark, dRow, dColumn int, ok bool) {
	switch s {
	case Tall:
		return TallBottom, 1, 0, true
	case Wide:
		return WideRight, 0, 1, true
	}
	return Empty, 0, 0, false
}
