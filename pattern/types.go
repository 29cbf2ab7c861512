package pattern

// PID is a stable pattern identifier: an implementation-assigned index into
// the unique-patterns list produced by Extract, in first-seen order.
type PID int

// Pattern is an immutable value capturing one node's ego-network up to
// Radius hops. See package doc for the structural invariants it satisfies.
type Pattern struct {
	// CenterID is the source node id in the training graph. Identity/debug
	// only — it plays no part in CanonicalForm or equality.
	CenterID int
	// CenterLabel is the integer label at the center.
	CenterLabel int
	// Radius is the hop bound used to build this pattern (>= 1).
	Radius int
	// Labels maps node-id -> label, for every node within distance <= Radius.
	Labels map[int]int
	// Adjacency maps node-id -> ordered list of neighbor node-ids, restricted
	// to the induced subgraph on the reached set.
	Adjacency map[int][]int
	// Layers[k-1] holds exactly the node-ids at distance k, for k in 1..Radius.
	// The center is not present in any layer.
	Layers [][]int
	// Depths maps node-id -> exact distance in [0, Radius]; center has depth 0.
	Depths map[int]int
	// Frequency is the occurrence count after deduplication (>= 1).
	Frequency int
	// CenterDegree is the degree of the center in the original training
	// graph; may exceed the in-pattern degree when Radius truncates it.
	CenterDegree int
	// CanonicalForm is a string determined solely by the structure (depths,
	// labels, adjacency), computed via two-round WL refinement.
	CanonicalForm string
	// canonicalHash is a fast struct-hash of CanonicalForm, used only as a
	// dedup bucket pre-filter; equality is always decided by CanonicalForm.
	canonicalHash uint64
}

// CanonicalHash returns the cached xxhash of p.CanonicalForm.
func (p *Pattern) CanonicalHash() uint64 {
	return p.canonicalHash
}

// Equal reports whether a and b have byte-equal canonical forms.
func Equal(a, b *Pattern) bool {
	return a.CanonicalForm == b.CanonicalForm
}
