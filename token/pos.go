package token

import (
	"fmt"
	"strconv"
)

// Pos is a location in a source document. Line is 1-based, Col is a
// 0-based byte column, Offset is the absolute byte offset.
type Pos struct {
	Offset int
	Line   int
	Col    int

	src []byte
}

func (p Pos) String() string {
	var sample string
	if len(p.src) > 0 {
		sample = string(p.src[max(0, p.Offset-5):min(p.Offset+5, len(p.src))])
	} else {
		sample = "?"
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.Offset, p.Line, p.Col)
}
