package ucd

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseUnicodeData loads combining classes and decomposition mappings from a
// UnicodeData.txt formatted stream into b.
func ParseUnicodeData(r io.Reader, b *Builder) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if len(text) == 0 || text[0] == '#' {
			continue
		}
		fields := strings.Split(text, ";")
		if len(fields) < 6 {
			return errors.Errorf("line %d: expected at least 6 fields, got %d", line, len(fields))
		}

		cp, err := ParseCodepoint(fields[0])
		if err != nil {
			return errors.Wrapf(err, "line %d", line)
		}

		if len(fields[3]) > 0 {
			ccc, err := strconv.ParseUint(fields[3], 10, 8)
			if err != nil {
				return errors.Wrapf(err, "line %d: combining class", line)
			}
			b.SetCombiningClass(cp, uint8(ccc))
		}

		decomp := strings.TrimSpace(fields[5])
		if len(decomp) == 0 {
			continue
		}
		compat := false
		if decomp[0] == '<' {
			// Formatting tags such as <compat> or <font> mark compatibility mappings.
			end := strings.IndexByte(decomp, '>')
			if end < 0 {
				return errors.Errorf("line %d: unterminated tag in %q", line, decomp)
			}
			compat = true
			decomp = decomp[end+1:]
		}
		mapping, err := ParseCodepoints(decomp)
		if err != nil {
			return errors.Wrapf(err, "line %d: decomposition", line)
		}
		b.AddDecomposition(cp, compat, mapping)
	}
	return errors.Wrap(scanner.Err(), "scan unicode data")
}

const fullCompositionExclusion = "Full_Composition_Exclusion"

// ParseCompositionExclusions loads CompositionExclusions.txt formatted data,
// one code point or XXXX..YYYY range per line, into b.  Lines with a
// property column are kept only for Full_Composition_Exclusion.
func ParseCompositionExclusions(r io.Reader, b *Builder) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		// DerivedNormalizationProps.txt style lines carry a property column;
		// only Full_Composition_Exclusion entries belong to the set.
		if i := strings.IndexByte(text, ';'); i >= 0 {
			property := strings.TrimSpace(strings.Split(text[i+1:], ";")[0])
			if property != fullCompositionExclusion {
				continue
			}
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}

		ranges := strings.Split(text, "..")
		start, err := ParseCodepoint(ranges[0])
		if err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
		end := start
		if len(ranges) > 1 {
			end, err = ParseCodepoint(ranges[1])
			if err != nil {
				return errors.Wrapf(err, "line %d", line)
			}
		}
		for cp := start; cp <= end; cp++ {
			b.AddExclusion(cp)
		}
	}
	return errors.Wrap(scanner.Err(), "scan composition exclusions")
}

// ParseCodepoint parses a hexadecimal code point, with or without a U+
// prefix.
func ParseCodepoint(s string) (rune, error) {
	s = strings.TrimSpace(s)
	if len(s) > 2 && (s[0] == 'U' || s[0] == 'u') && s[1] == '+' {
		s = s[2:]
	}
	value, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid code point %q", s)
	}
	if value > 0x10FFFF {
		return 0, errors.Errorf("code point %q out of range", s)
	}
	return rune(value), nil
}

// ParseCodepoints parses a space separated list of code points.
func ParseCodepoints(s string) ([]rune, error) {
	splits := strings.Fields(s)
	values := make([]rune, 0, len(splits))
	for _, split := range splits {
		value, err := ParseCodepoint(split)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}
