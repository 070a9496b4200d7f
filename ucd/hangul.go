package ucd

// Hangul syllables are decomposed and composed arithmetically, see
// https://www.unicode.org/versions/Unicode11.0.0/ch03.pdf section 3.12.
const (
	sBase rune = 0xAC00
	lBase rune = 0x1100
	vBase rune = 0x1161
	tBase rune = 0x11A7

	lCount = 19
	vCount = 21
	tCount = 28
	nCount = vCount * tCount // 588
	sCount = lCount * nCount // 11172
)

func isHangulSyllable(r rune) bool {
	return r >= sBase && r < sBase+sCount
}

// decomposeHangul returns the full jamo decomposition of s, or nil if s is not
// a precomposed syllable.
func decomposeHangul(s rune) []rune {
	if !isHangulSyllable(s) {
		return nil
	}
	sIndex := s - sBase
	l := lBase + sIndex/nCount
	v := vBase + (sIndex%nCount)/tCount
	t := tBase + sIndex%tCount
	if t == tBase {
		return []rune{l, v}
	}
	return []rune{l, v, t}
}

// composeHangul composes a leading consonant with a vowel (LV) or an LV
// syllable with a trailing consonant (LVT).
func composeHangul(a, b rune) (rune, bool) {
	if a >= lBase && a < lBase+lCount && b >= vBase && b < vBase+vCount {
		return sBase + ((a-lBase)*vCount+(b-vBase))*tCount, true
	}
	if isHangulSyllable(a) && (a-sBase)%tCount == 0 && b > tBase && b < tBase+tCount {
		return a + (b - tBase), true
	}
	return 0, false
}
