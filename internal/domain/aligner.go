package domain

import (
	m "github.com/mouse-blink/paperjudge/internal/model"
)

// Aligner classifies a submitted transcript against reference blocks.
//
// Alignment is greedy and single-pass: reference blocks are visited in order
// and a cursor into the submitted lines only ever moves forward, so a later
// block can never reuse lines already assigned to an earlier one. An Aligner
// holds configuration only and is safe to share between goroutines.
type Aligner struct {
	matcher Matcher
}

// NewAligner constructs an Aligner using the provided matcher.
func NewAligner(matcher Matcher) *Aligner {
	return &Aligner{matcher: matcher}
}

// CompareLines parses reference into blocks and classifies submitted against them.
func (a *Aligner) CompareLines(reference, submitted []string) *m.Classification {
	return a.Classify(ParseBlocks(reference), submitted)
}

// Classify walks the reference blocks and tallies each against submitted.
func (a *Aligner) Classify(reference []m.Block, submitted []string) *m.Classification {
	p := &pass{matcher: a.matcher, submitted: submitted}
	result := m.NewClassification()

	for _, block := range reference {
		result.Set(block.ID, p.classifyBlock(block))
	}

	return result
}

// pass carries the mutable state of one Classify call.
type pass struct {
	matcher   Matcher
	submitted []string
	cursor    int
}

func (p *pass) classifyBlock(block m.Block) m.Tally {
	anchor, found := p.findAnchor(block)
	if !found {
		return m.Tally{Missing: block.Size()}
	}

	windowStart := anchor + 1
	windowEnd := NextHeader(p.submitted, windowStart)

	tally := m.Tally{WasFound: true}
	visited := make([]bool, windowEnd-windowStart)
	highWaterMark := anchor

	for _, line := range block.Body {
		j := p.findUnvisited(line.Text, windowStart, windowEnd, visited)
		if j < 0 {
			tally.Missing++
			continue
		}

		visited[j-windowStart] = true

		if j > highWaterMark {
			tally.OK++
			highWaterMark = j
		} else {
			tally.WrongPlace++
		}
	}

	tally.Redundant = (windowEnd - windowStart) - tally.OK - tally.WrongPlace
	p.cursor = windowEnd

	return tally
}

// findAnchor locates the submitted line opening the block. The cursor is left
// untouched when nothing matches.
func (p *pass) findAnchor(block m.Block) (int, bool) {
	for i := p.cursor; i < len(p.submitted); i++ {
		if p.matcher.MatchHeader(p.submitted[i], block) {
			p.cursor = i + 1
			return i, true
		}
	}

	return -1, false
}

func (p *pass) findUnvisited(reference string, start, end int, visited []bool) int {
	for j := start; j < end; j++ {
		if visited[j-start] {
			continue
		}

		if p.matcher.Match(p.submitted[j], reference) {
			return j
		}
	}

	return -1
}
