package normalization

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lbryio/unorm/ucd"
)

type countingProps struct {
	ucd.Properties
	lookups int32
}

func (p *countingProps) Decomposition(r rune, compat bool) []rune {
	atomic.AddInt32(&p.lookups, 1)
	return p.Properties.Decomposition(r, compat)
}

func TestCachingNormalizer(t *testing.T) {

	r := require.New(t)

	props := &countingProps{Properties: testTable()}
	cn := NewCachingNormalizer(New(props), 16)

	normal := []rune{0x00C5, 0x0042}
	out, err := cn.Normalize(normal, NFC)
	r.NoError(err)
	r.Equal(normal, out)
	first := atomic.LoadInt32(&props.lookups)
	r.NotZero(first)

	// served from the cache, and not aliased to the input
	out, err = cn.Normalize(normal, NFC)
	r.NoError(err)
	r.Equal(normal, out)
	r.Equal(first, atomic.LoadInt32(&props.lookups))
	out[0] = 0x0043
	r.Equal(rune(0x00C5), normal[0])

	// the same text in another form is a separate entry
	out, err = cn.Normalize(normal, NFD)
	r.NoError(err)
	r.Equal([]rune{0x0041, 0x030A, 0x0042}, out)
	r.Greater(atomic.LoadInt32(&props.lookups), first)

	// inputs that change are never cached
	before := atomic.LoadInt32(&props.lookups)
	for i := 0; i < 2; i++ {
		out, err = cn.Normalize([]rune{0x0041, 0x030A}, NFC)
		r.NoError(err)
		r.Equal([]rune{0x00C5}, out)
	}
	r.Equal(before+4, atomic.LoadInt32(&props.lookups))

	ok, err := cn.IsNormal([]rune{0x0041, 0x030A}, NFD)
	r.NoError(err)
	r.True(ok)

	seq := []rune{0x1E0B, 0x0323}
	r.NoError(cn.NormalizeInPlace(&seq, NFC))
	r.Equal([]rune{0x1E0D, 0x0307}, seq)

	_, err = cn.Normalize(normal, Form(7))
	r.Error(err)
}

func TestCachingNormalizerEviction(t *testing.T) {

	r := require.New(t)

	props := &countingProps{Properties: testTable()}
	cn := NewCachingNormalizer(New(props), 1)

	a := []rune{0x0041}
	b := []rune{0x0042}

	_, err := cn.Normalize(a, NFC)
	r.NoError(err)
	_, err = cn.Normalize(b, NFC)
	r.NoError(err)

	before := atomic.LoadInt32(&props.lookups)
	_, err = cn.Normalize(a, NFC)
	r.NoError(err)
	r.Equal(before+1, atomic.LoadInt32(&props.lookups))
}

func TestCachingNormalizerStrings(t *testing.T) {

	r := require.New(t)

	props := &countingProps{Properties: testTable()}
	cn := NewCachingNormalizer(New(props), 16)

	s, err := cn.NormalizeString("\u00C5B", NFC)
	r.NoError(err)
	r.Equal("\u00C5B", s)
	first := atomic.LoadInt32(&props.lookups)

	// the bytes form of the same text hits the entry the string call added
	b, err := cn.NormalizeBytes([]byte("\u00C5B"), NFC)
	r.NoError(err)
	r.Equal("\u00C5B", string(b))
	s, err = cn.NormalizeString("\u00C5B", NFC)
	r.NoError(err)
	r.Equal("\u00C5B", s)
	r.Equal(first, atomic.LoadInt32(&props.lookups))

	s, err = cn.NormalizeString("A\u030A", NFC)
	r.NoError(err)
	r.Equal("\u00C5", s)

	s, err = cn.NormalizeString("\xFF", NFC)
	r.NoError(err)
	r.Equal("\xFF", s)

	b, err = cn.NormalizeBytes([]byte("\xC3\x28"), NFD)
	r.NoError(err)
	r.Equal("\xC3\x28", string(b))

	_, err = cn.NormalizeString("x", Form(9))
	r.Error(err)
}
