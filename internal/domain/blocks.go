package domain

import (
	"regexp"

	m "github.com/mouse-blink/paperjudge/internal/model"
)

// headerPattern recognises block headers. The digit run may be empty, so a
// bare ":" line also opens a block.
var headerPattern = regexp.MustCompile(`^[0-9]*:`)

// IsHeader reports whether line opens a new block.
func IsHeader(line string) bool {
	return headerPattern.MatchString(line)
}

// NextHeader returns the index of the first header at or after from, or
// len(lines) when there is none.
func NextHeader(lines []string, from int) int {
	for i := from; i < len(lines); i++ {
		if IsHeader(lines[i]) {
			return i
		}
	}

	return len(lines)
}

// ParseBlocks splits lines into blocks. Lines before the first header do not
// belong to any block and are dropped.
func ParseBlocks(lines []string) []m.Block {
	var blocks []m.Block

	start := NextHeader(lines, 0)
	for start < len(lines) {
		end := NextHeader(lines, start+1)

		header := lines[start]
		loc := headerPattern.FindStringIndex(header)

		block := m.Block{
			ID:     header[:loc[1]-1],
			Header: header,
			Start:  start,
			Body:   make([]m.Line, 0, end-start-1),
		}
		for i := start + 1; i < end; i++ {
			block.Body = append(block.Body, m.Line{Pos: i, Text: lines[i]})
		}

		blocks = append(blocks, block)
		start = end
	}

	return blocks
}
