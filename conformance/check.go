package conformance

import (
	"fmt"

	"github.com/lbryio/unorm/normalization"
)

// Normalizer is the engine surface the conformance checks drive.
type Normalizer interface {
	Normalize(in []rune, f normalization.Form) ([]rune, error)
}

// Failure describes one violated conformance invariant.
type Failure struct {
	Case   Case
	Form   normalization.Form
	Source int // 1-based column that was normalized
	Want   int // 1-based column it should equal
	Got    []rune
}

func (f Failure) String() string {
	return fmt.Sprintf("line %d: %s(c%d) = %U, want c%d = %U",
		f.Case.Line, f.Form, f.Source, f.Got, f.Want, f.Case.Columns[f.Want-1])
}

// The invariants listed in the header of NormalizationTest.txt, with 0-based
// column indexes.
var invariants = []struct {
	form normalization.Form
	want int
	from []int
}{
	{normalization.NFC, 1, []int{0, 1, 2}},
	{normalization.NFC, 3, []int{3, 4}},
	{normalization.NFD, 2, []int{0, 1, 2}},
	{normalization.NFD, 4, []int{3, 4}},
	{normalization.NFKC, 3, []int{0, 1, 2, 3, 4}},
	{normalization.NFKD, 4, []int{0, 1, 2, 3, 4}},
}

// Check runs every invariant for c.  A non-nil error means normalization
// itself failed, which is never a conformance result.
func Check(n Normalizer, c Case) ([]Failure, error) {
	var failures []Failure
	for _, inv := range invariants {
		want := c.Columns[inv.want]
		for _, from := range inv.from {
			got, err := n.Normalize(c.Columns[from], inv.form)
			if err != nil {
				return nil, fmt.Errorf("line %d: %s(c%d): %w", c.Line, inv.form, from+1, err)
			}
			if !equal(got, want) {
				failures = append(failures, Failure{
					Case:   c,
					Form:   inv.form,
					Source: from + 1,
					Want:   inv.want + 1,
					Got:    got,
				})
			}
		}
	}
	return failures, nil
}

func equal(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
