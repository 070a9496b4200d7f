package conformance

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/lbryio/unorm/ucd"
)

// Case is one data line of NormalizationTest.txt.  Columns holds c1..c5 in
// order: source, NFC, NFD, NFKC, NFKD.
type Case struct {
	Line    int
	Part    string
	Columns [5][]rune
	Comment string
}

// ParseTests reads NormalizationTest.txt formatted data.
func ParseTests(r io.Reader) ([]Case, error) {
	var cases []Case
	part := ""
	line := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if len(text) <= 0 || text[0] == '#' {
			continue
		}
		if text[0] == '@' {
			part = strings.TrimSpace(strings.Fields(text)[0][1:])
			continue
		}

		c := Case{Line: line, Part: part}
		if i := strings.IndexByte(text, '#'); i >= 0 {
			c.Comment = strings.TrimSpace(text[i+1:])
			text = text[:i]
		}
		splits := strings.Split(text, ";")
		if len(splits) < 5 {
			return nil, errors.Errorf("line %d: expected 5 columns, got %d", line, len(splits))
		}
		for i := 0; i < 5; i++ {
			column, err := ucd.ParseCodepoints(splits[i])
			if err != nil {
				return nil, errors.Wrapf(err, "line %d column %d", line, i+1)
			}
			c.Columns[i] = column
		}
		cases = append(cases, c)
	}

	return cases, errors.Wrap(scanner.Err(), "scan normalization tests")
}
