package ucd

// Properties is the view of the Unicode Character Database that the
// normalization engine consumes.  Implementations must be safe for concurrent
// read-only use once constructed.
type Properties interface {

	// CombiningClass returns the canonical combining class of r, or 0 when r
	// is not listed.
	CombiningClass(r rune) uint8

	// Decomposition returns the decomposition mapping of r.  A canonical
	// mapping is preferred; when compat is set and r has no canonical mapping,
	// its compatibility mapping is returned.  Returns nil if neither applies.
	// The returned slice is shared and must not be modified.
	Decomposition(r rune, compat bool) []rune

	// Compose returns the primary composite of the ordered pair (a, b).
	// Composition-excluded characters are never returned.
	Compose(a, b rune) (rune, bool)
}
