package ucdrepo

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbryio/unorm/ucd"
)

func TestMemory(t *testing.T) {

	repo := NewMemory()
	testTableRepo(t, repo)
}

func TestPebble(t *testing.T) {

	repo, err := NewPebble(t.TempDir())
	if !assert.NoError(t, err) {
		return
	}

	testTableRepo(t, repo)
}

func TestPebbleReopen(t *testing.T) {

	r := require.New(t)
	dir := t.TempDir()

	repo, err := NewPebble(dir)
	r.NoError(err)
	r.NoError(repo.Put(testTable("11.0.0")))

	size, err := repo.Size("11.0.0")
	r.NoError(err)
	r.Greater(size, 32)

	_, err = repo.Size("12.0.0")
	r.True(errors.Is(err, ucd.ErrNotFound))

	r.NoError(repo.Close())

	repo, err = NewPebble(dir)
	r.NoError(err)
	defer repo.Close()

	tbl, err := repo.Get("11.0.0")
	r.NoError(err)
	r.Equal(testTable("11.0.0").Stats(), tbl.Stats())
}

func testTable(version string) *ucd.Table {
	b := ucd.NewBuilder(version)
	b.SetCombiningClass(0x030A, 230)
	b.SetCombiningClass(0x0301, 230)
	b.AddDecomposition(0x00C5, false, []rune{0x0041, 0x030A})
	b.AddDecomposition(0x01FA, false, []rune{0x00C5, 0x0301})
	b.AddDecomposition(0x212B, false, []rune{0x00C5})
	b.AddDecomposition(0xFB01, true, []rune{0x0066, 0x0069})
	return b.Build()
}

func testTableRepo(t *testing.T, repo ucd.Repo) {

	r := require.New(t)

	versions, err := repo.Versions()
	r.NoError(err)
	r.Empty(versions)

	_, err = repo.Get("11.0.0")
	r.True(errors.Is(err, ucd.ErrNotFound))

	for _, version := range []string{"12.0.0", "10.0.0", "11.0.0"} {
		r.NoError(repo.Put(testTable(version)))
	}
	// overwrite
	r.NoError(repo.Put(testTable("11.0.0")))

	versions, err = repo.Versions()
	r.NoError(err)
	r.Equal([]string{"10.0.0", "11.0.0", "12.0.0"}, versions)

	tbl, err := repo.Get("11.0.0")
	r.NoError(err)
	r.Equal("11.0.0", tbl.Version())
	r.Equal(testTable("11.0.0").Stats(), tbl.Stats())
	r.Equal([]rune{0x00C5, 0x0301}, tbl.Decomposition(0x01FA, false))
	r.Equal([]rune{0x0066, 0x0069}, tbl.Decomposition(0xFB01, true))
	r.True(tbl.Excluded(0x212B))

	c, ok := tbl.Compose(0x0041, 0x030A)
	r.True(ok)
	r.Equal(rune(0x00C5), c)

	r.NoError(repo.Close())
}
