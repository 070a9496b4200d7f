package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseInput(t *testing.T) {

	r := require.New(t)

	in, err := parseInput([]string{"U+0041", "u+030A"})
	r.NoError(err)
	r.Equal([]rune{0x0041, 0x030A}, in)

	in, err = parseInput([]string{"U+0041", "b"})
	r.NoError(err)
	r.Equal([]rune("U+0041 b"), in)

	in, err = parseInput([]string{"caf\u00e9"})
	r.NoError(err)
	r.Equal([]rune{'c', 'a', 'f', 0x00E9}, in)

	_, err = parseInput([]string{"U+ZZZZ"})
	r.Error(err)
}
