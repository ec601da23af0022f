package model

// Tally holds the line-match counts for one reference block.
//
// OK and Missing describe reference lines, WrongPlace describes reference
// lines matched out of order, and Redundant counts submitted lines inside the
// block window that nothing matched.
type Tally struct {
	OK         int  `json:"ok" yaml:"ok"`
	Redundant  int  `json:"redundant" yaml:"redundant"`
	Missing    int  `json:"missing" yaml:"missing"`
	WrongPlace int  `json:"wrongPlace" yaml:"wrongPlace"`
	WasFound   bool `json:"wasFound" yaml:"wasFound"`
}

// Passed reports whether the block was located and reproduced exactly.
func (t Tally) Passed() bool {
	return t.WasFound && t.Redundant == 0 && t.WrongPlace == 0 && t.Missing == 0
}

// Classification maps block IDs to tallies, keeping the order in which the
// blocks appeared in the reference transcript.
type Classification struct {
	order   []string
	tallies map[string]Tally
}

// NewClassification constructs an empty Classification.
func NewClassification() *Classification {
	return &Classification{tallies: make(map[string]Tally)}
}

// Set stores the tally for id. A repeated id keeps its first position.
func (c *Classification) Set(id string, tally Tally) {
	if _, exists := c.tallies[id]; !exists {
		c.order = append(c.order, id)
	}

	c.tallies[id] = tally
}

// Get returns the tally stored for id.
func (c *Classification) Get(id string) (Tally, bool) {
	tally, ok := c.tallies[id]
	return tally, ok
}

// IDs returns block IDs in reference order.
func (c *Classification) IDs() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)

	return ids
}

// Len returns the number of classified blocks.
func (c *Classification) Len() int {
	return len(c.order)
}

// Each calls fn for every block in reference order.
func (c *Classification) Each(fn func(id string, tally Tally)) {
	for _, id := range c.order {
		fn(id, c.tallies[id])
	}
}

// Summary aggregates a classification into passed/total block counts.
func (c *Classification) Summary() (passed, total int) {
	c.Each(func(_ string, tally Tally) {
		if tally.Passed() {
			passed++
		}
	})

	return passed, c.Len()
}
