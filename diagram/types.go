// Package diagram contains the fundamental value types consumed by the
// renderer: text blocks placed on a logical grid, the edges connecting
// them, and the render options.
package diagram

// LogicalCoord is a signed index on the abstract block grid. Negative
// values are valid; the layout translates them before projecting.
type LogicalCoord = int32

// LogicalPoint is a (row, column) pair on the abstract block grid.
type LogicalPoint struct {
	Row, Column LogicalCoord
}

// Block is a parsed text payload placed at a logical grid position.
//
// The text is stored as byte rows, already split on line feeds and
// stripped of every byte that is neither a space nor a printable 7-bit
// ASCII graphic. Blocks are immutable after construction.
type Block struct {
	Row    LogicalCoord
	Column LogicalCoord

	// Text rows in canvas bytes. Always at least one row; an empty
	// input yields a single empty row.
	Text [][]byte

	// Measured extent of Text in canvas cells.
	TextWidth  int
	TextHeight int
}

// NewBlock parses raw text into a Block at the given logical position.
func NewBlock(at LogicalPoint, raw []byte) Block {
	text := [][]byte{nil}
	width := 0
	for _, c := range raw {
		if c == '\n' {
			width = max(width, len(text[len(text)-1]))
			text = append(text, nil)
			continue
		}
		if c == ' ' || (c > 0x20 && c < 0x7f) {
			text[len(text)-1] = append(text[len(text)-1], c)
		}
	}
	width = max(width, len(text[len(text)-1]))

	return Block{
		Row:        at.Row,
		Column:     at.Column,
		Text:       text,
		TextWidth:  width,
		TextHeight: len(text),
	}
}

// Position returns the block's logical grid position.
func (b Block) Position() LogicalPoint {
	return LogicalPoint{Row: b.Row, Column: b.Column}
}

// Edge requests a connection between two blocks, identified by their
// indices in the block slice handed to the renderer.
type Edge struct {
	From, To int
}

// Options controls canvas spacing and the routing engine.
type Options struct {
	// HMargin and VMargin are the number of empty canvas columns/rows
	// inserted between adjacent grid columns/rows, and before the first
	// and after the last. Routing relies on the leading and trailing
	// margins to exit from blocks on the grid boundary.
	HMargin int
	VMargin int

	// Padding is the number of blank cells between a block's border and
	// its text, on every side.
	Padding int

	// MaxTweaks bounds the randomized re-routing attempts.
	MaxTweaks int

	// Seed seeds the routing PRNG when HasSeed is set; otherwise the
	// engine seeds itself from entropy.
	Seed    uint64
	HasSeed bool
}

// DefaultOptions are the spacing defaults used by the loader.
func DefaultOptions() Options {
	return Options{
		HMargin:   5,
		VMargin:   3,
		Padding:   1,
		MaxTweaks: 100,
	}
}
