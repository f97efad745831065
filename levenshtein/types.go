package levenshtein

import "fmt"

// MemoryMode controls how Distance stores its DP table.
//
//   - FullMatrix — keep the whole (n+1)x(m+1) table. Allows the edit script.
//     Memory: O(n·m).
//
//   - TwoRows — keep only the previous and current row, iterating over the
//     shorter sequence. Memory: O(min(n, m)). No edit script.
type MemoryMode int

const (
	// FullMatrix stores all rows and supports ReturnScript.
	FullMatrix MemoryMode = iota

	// TwoRows keeps a rolling pair of rows.
	TwoRows
)

// Options configures Distance.
//
// Fields:
//   - MemoryMode   — FullMatrix or TwoRows storage.
//   - ReturnScript — if true, backtrack and return an edit script turning a
//     into b. Requires MemoryMode=FullMatrix.
type Options struct {
	MemoryMode   MemoryMode
	ReturnScript bool
}

// DefaultOptions returns the distance-only configuration (TwoRows).
func DefaultOptions() Options {
	return Options{MemoryMode: TwoRows}
}

// OpKind is the kind of one edit step.
type OpKind int

const (
	// Match keeps a[I] == b[J].
	Match OpKind = iota
	// Substitute replaces a[I] with b[J].
	Substitute
	// Insert inserts b[J].
	Insert
	// Delete drops a[I].
	Delete
)

func (k OpKind) String() string {
	switch k {
	case Match:
		return "match"
	case Substitute:
		return "substitute"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one step of an edit script. I indexes a and J indexes b; the index
// a step does not consume is -1 (J for Delete, I for Insert).
type Op struct {
	Kind OpKind
	I, J int
}

// Cost returns 1 for edits and 0 for matches.
func (o Op) Cost() int {
	if o.Kind == Match {
		return 0
	}

	return 1
}
