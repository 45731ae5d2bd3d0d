package lists

// Conjunction folds a sequence of sorted ascending index lists into
// their intersection. Used to AND per-column filter clause results
// together: a row survives only when every clause produced it.
type Conjunction struct {
	initialized bool
	merges      int

	current []int32
	scratch []int32
}

func NewConjunction(capacity int) *Conjunction {
	return &Conjunction{
		current: make([]int32, 0, capacity),
		scratch: make([]int32, capacity),
	}
}

func (c *Conjunction) Merges() int {
	return c.merges
}

func (c *Conjunction) With(input []int32) {
	c.merges++

	if !c.initialized {
		c.current = append(c.current[:0], input...)
		c.initialized = true
		return
	}

	if len(c.current) == 0 {
		return
	}

	n := IntersectSorted(c.current, input, c.scratch)
	c.current = append(c.current[:0], c.scratch[:n]...)
}

// Result is the surviving row indices, ascending. Empty until the
// first With call.
func (c *Conjunction) Result() []int32 {
	if !c.initialized {
		return nil
	}
	return c.current
}
