// Package model defines the data structures for transcript grading.
package model

// Path represents a file system path.
type Path string

// Line is a single body line of a transcript together with its 0-based
// position in the stream it was read from.
type Line struct {
	Pos  int
	Text string
}

// Block is a numbered section of a transcript: a header line such as "12:"
// followed by every line up to the next header or the end of the stream.
type Block struct {
	ID     string // digit run of the header, may be empty for a bare ":"
	Header string // full header line text
	Start  int    // position of the header line
	Body   []Line
}

// Size returns the number of body lines in the block.
func (b Block) Size() int {
	return len(b.Body)
}
