package wfc

import "github.com/katalvlaran/graphwfc/pattern"

// Catalog bundles the patterns extracted at the generator's radius with
// their training-graph frequencies, addressed by pattern.PID (== index into
// Patterns, per pattern.Extract's ordering guarantee).
type Catalog struct {
	Patterns    []*pattern.Pattern
	Frequencies map[pattern.PID]int
}

// Pattern returns the pattern for pid.
func (c *Catalog) Pattern(pid pattern.PID) *pattern.Pattern {
	return c.Patterns[pid]
}

// Frequency returns the training frequency of pid, defaulting to 1 when
// absent (per the entropy formula's default).
func (c *Catalog) Frequency(pid pattern.PID) int {
	if f, ok := c.Frequencies[pid]; ok {
		return f
	}
	return 1
}

// AllPIDs returns every pattern id in ascending order.
func (c *Catalog) AllPIDs() []pattern.PID {
	out := make([]pattern.PID, len(c.Patterns))
	for i := range c.Patterns {
		out[i] = pattern.PID(i)
	}
	return out
}
