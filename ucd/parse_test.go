package ucd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const unicodeData = `0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;
00C5;LATIN CAPITAL LETTER A WITH RING ABOVE;Lu;0;L;0041 030A;;;;N;LATIN CAPITAL LETTER A RING;;;00E5;
0301;COMBINING ACUTE ACCENT;Mn;230;NSM;;;;;N;NON-SPACING ACUTE;;;;
030A;COMBINING RING ABOVE;Mn;230;NSM;;;;;N;NON-SPACING RING ABOVE;;;;
01FA;LATIN CAPITAL LETTER A WITH RING ABOVE AND ACUTE;Lu;0;L;00C5 0301;;;;N;;;;01FB;
093C;DEVANAGARI SIGN NUKTA;Mn;7;NSM;;;;;N;;;;;
0958;DEVANAGARI LETTER QA;Lo;0;L;0915 093C;;;;N;;;;;
212B;ANGSTROM SIGN;Lu;0;L;00C5;;;;N;ANGSTROM UNIT;;;00E5;
FB01;LATIN SMALL LIGATURE FI;Ll;0;L;<compat> 0066 0069;;;;N;;;;;
`

const compositionExclusions = `# CompositionExclusions.txt excerpt

0958    #  DEVANAGARI LETTER QA
0F43..0F44 ; Full_Composition_Exclusion # Lo   [2] TIBETAN
`

func TestParseUnicodeData(t *testing.T) {

	r := require.New(t)

	b := NewBuilder("parsed")
	r.NoError(ParseUnicodeData(strings.NewReader(unicodeData), b))
	r.NoError(ParseCompositionExclusions(strings.NewReader(compositionExclusions), b))
	tbl := b.Build()

	r.Equal(uint8(230), tbl.CombiningClass(0x030A))
	r.Equal(uint8(7), tbl.CombiningClass(0x093C))
	r.Equal([]rune{0x00C5, 0x0301}, tbl.Decomposition(0x01FA, false))
	r.Nil(tbl.Decomposition(0xFB01, false))
	r.Equal([]rune{0x0066, 0x0069}, tbl.Decomposition(0xFB01, true))

	c, ok := tbl.Compose(0x00C5, 0x0301)
	r.True(ok)
	r.Equal(rune(0x01FA), c)

	c, ok = tbl.Compose(0x0041, 0x030A)
	r.True(ok)
	r.Equal(rune(0x00C5), c)

	_, ok = tbl.Compose(0x0915, 0x093C)
	r.False(ok)

	r.True(tbl.Excluded(0x212B))
	r.True(tbl.Excluded(0x0F43))
	r.True(tbl.Excluded(0x0F44))
}

func TestParseUnicodeDataErrors(t *testing.T) {

	r := require.New(t)

	err := ParseUnicodeData(strings.NewReader("0041;A;Lu\n"), NewBuilder("bad"))
	r.Error(err)
	r.Contains(err.Error(), "line 1")

	err = ParseUnicodeData(strings.NewReader("0041;A;Lu;0;L;;\nZZZZ;B;Lu;0;L;;\n"), NewBuilder("bad"))
	r.Error(err)
	r.Contains(err.Error(), "line 2")

	err = ParseUnicodeData(strings.NewReader("00BD;HALF;No;0;ON;<fraction 0031 2044 0032;\n"), NewBuilder("bad"))
	r.Error(err)

	err = ParseCompositionExclusions(strings.NewReader("110000\n"), NewBuilder("bad"))
	r.Error(err)
}

func TestParseCodepoints(t *testing.T) {

	r := require.New(t)

	cps, err := ParseCodepoints("0041 U+030A u+1E0B")
	r.NoError(err)
	r.Equal([]rune{0x0041, 0x030A, 0x1E0B}, cps)

	cps, err = ParseCodepoints("")
	r.NoError(err)
	r.Empty(cps)

	_, err = ParseCodepoints("0041 xyz")
	r.Error(err)
}

func TestParseDerivedNormalizationProps(t *testing.T) {

	r := require.New(t)

	const derived = `# DerivedNormalizationProps.txt excerpt
00A0          ; NFKD_QC; N # Zs       NO-BREAK SPACE
0340..0341    ; NFC_QC; N # Mn   [2] COMBINING GRAVE TONE MARK..COMBINING ACUTE TONE MARK
0300          ; NFC_QC; M # Mn       COMBINING GRAVE ACCENT
00C0          ; NFD_QC; N # L&       LATIN CAPITAL LETTER A WITH GRAVE
0958..095F    ; Full_Composition_Exclusion # Lo   [8] DEVANAGARI LETTER QA..DEVANAGARI LETTER YYA
0F43          ; Full_Composition_Exclusion # Lo       TIBETAN LETTER GHA
`

	b := NewBuilder("derived")
	b.AddDecomposition(0x00C0, false, []rune{0x0041, 0x0300})
	r.NoError(ParseCompositionExclusions(strings.NewReader(derived), b))
	tbl := b.Build()

	r.True(tbl.Excluded(0x0958))
	r.True(tbl.Excluded(0x095F))
	r.True(tbl.Excluded(0x0F43))
	r.False(tbl.Excluded(0x00A0))
	r.False(tbl.Excluded(0x0300))
	r.False(tbl.Excluded(0x00C0))
	r.Equal(9, tbl.Stats().Exclusions)

	c, ok := tbl.Compose(0x0041, 0x0300)
	r.True(ok)
	r.Equal(rune(0x00C0), c)
}
