package tile

import "fmt"

// Mark records which part of which shape covers a cell.
// The zero value, Empty, means no tile covers the cell.
type Mark uint8

// Cell marks. Tall and wide tiles leave two marks each: the anchor
// (TallTop, WideLeft) sits at the tile's row and column, the continuation
// (TallBottom, WideRight) in the cell below or to the right.
const (
	Empty      Mark = iota // not covered
	MarkSmall              // a whole 1x1 tile
	TallTop                // upper cell of a tall tile
	TallBottom             // lower cell of a tall tile
	WideLeft               // left cell of a wide tile
	WideRight              // right cell of a wide tile
)

var markNames = [...]string{
	Empty:      "EMPTY",
	MarkSmall:  "SMALL",
	TallTop:    "TALL_TOP",
	TallBottom: "TALL_BOTTOM",
	WideLeft:   "WIDE_LEFT",
	WideRight:  "WIDE_RIGHT",
}

func (m Mark) String() string {
	if int(m) >= len(markNames) {
		return fmt.Sprintf("Mark(%d)", uint8(m))
	}
	return markNames[m]
}

// MarshalText encodes the mark by name.
func (m Mark) MarshalText() ([]byte, error) {
	if int(m) >= len(markNames) {
		return nil, fmt.Errorf("tile: unknown mark %d", uint8(m))
	}
	return []byte(m.String()), nil
}

// ParseMark parses a mark name as produced by String.
func ParseMark(name string) (Mark, error) {
	for m, n := range markNames {
		if n == name {
			return Mark(m), nil
		}
	}
	return Empty, fmt.Errorf("tile: unknown mark %q", name)
}

// UnmarshalText decodes a mark by name.
func (m *Mark) UnmarshalText(text []byte) error {
	v, err := ParseMark(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// IsEmpty reports whether m is Empty.
func (m Mark) IsEmpty() bool { return m == Empty }

// IsAnchor reports whether m is the anchor cell of a tile.
func (m Mark) IsAnchor() bool {
	return m == MarkSmall || m == TallTop || m == WideLeft
}

// IsContinuation reports whether m is the second cell of a paired tile.
func (m Mark) IsContinuation() bool {
	return m == TallBottom || m == WideRight
}

// Value is the numeric code of the mark: SMALL=0, TALL_TOP=1,
// TALL_BOTTOM=2, WIDE_LEFT=3, WIDE_RIGHT=4. Empty cells have value -1.
func (m Mark) Value() int {
	if m == Empty || int(m) >= len(markNames) {
		return -1
	}
	return int(m) - 1
}

// FromMark maps a mark back to the shape it originates from.
// Anchor marks give their shape, continuation marks give Continuation and
// Empty gives NoShape.
func FromMark(m Mark) Shape {
	switch m {
	case MarkSmall:
		return Small
	case TallTop:
		return Tall
	case WideLeft:
		return Wide
	case TallBottom, WideRight:
		return Continuation
	}
	return NoShape
}
