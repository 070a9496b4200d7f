package normalization

import (
	"github.com/lbryio/unorm/ucd"
)

// testTable is a small hand built property table covering the cases the
// pipeline stages care about.
func testTable() *ucd.Table {
	b := ucd.NewBuilder("test")

	b.SetCombiningClass(0x0300, 230)
	b.SetCombiningClass(0x0301, 230)
	b.SetCombiningClass(0x0307, 230)
	b.SetCombiningClass(0x030A, 230)
	b.SetCombiningClass(0x0315, 232)
	b.SetCombiningClass(0x0323, 220)
	b.SetCombiningClass(0x05AE, 228)
	b.SetCombiningClass(0x093C, 7)

	b.AddDecomposition(0x00C5, false, []rune{0x0041, 0x030A})
	b.AddDecomposition(0x01FA, false, []rune{0x00C5, 0x0301})
	b.AddDecomposition(0x1E0B, false, []rune{0x0064, 0x0307})
	b.AddDecomposition(0x1E0D, false, []rune{0x0064, 0x0323})
	b.AddDecomposition(0x212B, false, []rune{0x00C5})
	b.AddDecomposition(0x0958, false, []rune{0x0915, 0x093C})
	b.AddDecomposition(0xFB01, true, []rune{0x0066, 0x0069})
	b.AddDecomposition(0x01C4, true, []rune{0x0044, 0x017D})
	b.AddDecomposition(0x017D, false, []rune{0x005A, 0x030C})

	b.AddExclusion(0x0958)

	return b.Build()
}

// chainProps maps code points without any table sanity checks, so it can
// describe arbitrarily deep or cyclic decompositions.
type chainProps map[rune][]rune

func (p chainProps) CombiningClass(r rune) uint8 {
	return 0
}

func (p chainProps) Decomposition(r rune, compat bool) []rune {
	return p[r]
}

func (p chainProps) Compose(a, b rune) (rune, bool) {
	return 0, false
}

// chain returns props in which base+i decomposes to base+i+1 for i < n.
func chain(base rune, n int) chainProps {
	p := chainProps{}
	for i := 0; i < n; i++ {
		p[base+rune(i)] = []rune{base + rune(i) + 1}
	}
	return p
}
