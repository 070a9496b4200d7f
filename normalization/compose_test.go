package normalization

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompose(t *testing.T) {

	r := require.New(t)
	tbl := testTable()

	testcases := []struct {
		name string
		in   []rune
		want []rune
	}{
		{"empty", []rune{}, []rune{}},
		{"no pairs", []rune{0x0041, 0x0042}, []rune{0x0041, 0x0042}},
		{"adjacent", []rune{0x0041, 0x030A}, []rune{0x00C5}},
		{"repeated", []rune{0x0041, 0x030A, 0x0301}, []rune{0x01FA}},
		{"lower class between", []rune{0x0041, 0x0323, 0x030A}, []rune{0x00C5, 0x0323}},
		{"equal class blocks", []rune{0x0041, 0x0301, 0x030A}, []rune{0x0041, 0x0301, 0x030A}},
		{"leading non-starter", []rune{0x0301, 0x0041, 0x030A}, []rune{0x0301, 0x00C5}},
		{"hangul lv", []rune{0x1100, 0x1161}, []rune{0xAC00}},
		{"hangul lvt", []rune{0x1100, 0x1161, 0x11A8}, []rune{0xAC01}},
		{"starters not adjacent", []rune{0x1100, 0x0301, 0x1161}, []rune{0x1100, 0x0301, 0x1161}},
		{"excluded", []rune{0x0915, 0x093C}, []rune{0x0915, 0x093C}},
		{"two clusters", []rune{0x0064, 0x0323, 0x0041, 0x030A}, []rune{0x1E0D, 0x00C5}},
	}

	for _, tc := range testcases {
		seq := append([]rune{}, tc.in...)
		got := Compose(tbl, seq)
		r.Equal(tc.want, got, tc.name)
	}
}
