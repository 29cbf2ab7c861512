package compat

import "github.com/katalvlaran/graphwfc/pattern"

// PIDSet is a set of pattern identifiers.
type PIDSet map[pattern.PID]struct{}

// Contains reports whether pid is a member of s. A nil set contains nothing.
func (s PIDSet) Contains(pid pattern.PID) bool {
	_, ok := s[pid]
	return ok
}

// Table is a multi-radius compatibility table: radius -> (pid -> set of pid).
type Table struct {
	MaxRadius int
	byRadius  map[int]map[pattern.PID]PIDSet
}

// Allowed returns the set of pattern ids observed compatible with p at the
// given radius. It returns an empty (non-nil) set if none were observed.
func (t *Table) Allowed(radius int, p pattern.PID) PIDSet {
	byPID, ok := t.byRadius[radius]
	if !ok {
		return PIDSet{}
	}
	s, ok := byPID[p]
	if !ok {
		return PIDSet{}
	}
	return s
}

func (t *Table) insert(radius int, a, b pattern.PID) {
	byPID, ok := t.byRadius[radius]
	if !ok {
		byPID = make(map[pattern.PID]PIDSet)
		t.byRadius[radius] = byPID
	}
	if byPID[a] == nil {
		byPID[a] = make(PIDSet)
	}
	byPID[a][b] = struct{}{}
}

// Build constructs a CompatibilityTable over radii 1..maxRadius from the
// already-extracted (radius-maxRadius) patterns slice, indexed by its own
// position (pattern.PID). See the package doc for why this — rather than a
// fresh per-radius extraction with an independent pid space — is the
// pid-space-preserving construction this engine relies on.
func Build(patterns []*pattern.Pattern, maxRadius int) (*Table, error) {
	if maxRadius < 1 {
		return nil, ErrInvalidInput
	}

	t := &Table{
		MaxRadius: maxRadius,
		byRadius:  make(map[int]map[pattern.PID]PIDSet, maxRadius),
	}

	n := len(patterns)
	for k := 1; k <= maxRadius; k++ {
		forward := make([]map[string]struct{}, n)
		reversed := make([]map[string]struct{}, n)
		for i, p := range patterns {
			forward[i], reversed[i] = outwardPathSet(p.Depths, p.Labels, p.Adjacency, p.CenterID, k)
		}
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				if intersects(forward[i], reversed[j]) || intersects(forward[j], reversed[i]) {
					t.insert(k, pattern.PID(i), pattern.PID(j))
					t.insert(k, pattern.PID(j), pattern.PID(i))
				}
			}
		}
	}
	return t, nil
}
