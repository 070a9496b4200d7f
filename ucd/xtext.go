// Copyright (c) 2021 - LBRY Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ucd

import (
	"sync"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

// XText answers property queries straight from the golang.org/x/text
// normalization tables.  It allocates on every call; Default is the fast path.
type XText struct{}

func (XText) CombiningClass(r rune) uint8 {
	return norm.NFD.PropertiesString(string(r)).CCC()
}

func (XText) Decomposition(r rune, compat bool) []rune {
	if isHangulSyllable(r) {
		return decomposeHangul(r)
	}
	s := string(r)
	d := norm.NFD.PropertiesString(s).Decomposition()
	if len(d) == 0 && compat {
		d = norm.NFKD.PropertiesString(s).Decomposition()
	}
	if len(d) == 0 {
		return nil
	}
	return []rune(string(d))
}

func (XText) Compose(a, b rune) (rune, bool) {
	if c, ok := composeHangul(a, b); ok {
		return c, true
	}

	// Singletons and excluded characters are not NFC stable; pairing them
	// would compose something other than their own canonical mapping.
	sa, sb := string(a), string(b)
	if !norm.NFC.IsNormalString(sa) || !norm.NFC.IsNormalString(sb) {
		return 0, false
	}

	composed := norm.NFC.String(sa + sb)
	first, n := utf8.DecodeRuneInString(composed)
	if first == utf8.RuneError && n <= 1 {
		return 0, false
	}
	if n != len(composed) {
		return 0, false
	}
	return first, true
}

// FromXText scans every code point through the x/text tables and returns the
// equivalent Table.
func FromXText() *Table {
	start := time.Now()

	var xt XText
	b := NewBuilder(norm.Version)
	buf := make([]byte, utf8.UTFMax)

	for r := rune(0); r <= utf8.MaxRune; r++ {
		if r >= 0xD800 && r <= 0xDFFF {
			continue
		}
		if isHangulSyllable(r) {
			continue
		}
		n := utf8.EncodeRune(buf, r)
		c := buf[:n]

		props := norm.NFD.Properties(c)
		if ccc := props.CCC(); ccc != 0 {
			b.SetCombiningClass(r, ccc)
		}

		d := props.Decomposition()
		if len(d) == 0 {
			if k := norm.NFKD.Properties(c).Decomposition(); len(k) > 0 {
				b.AddDecomposition(r, true, []rune(string(k)))
			}
			continue
		}

		mapping := []rune(string(d))
		b.AddDecomposition(r, false, mapping)

		if !norm.NFC.IsNormal(c) {
			b.AddExclusion(r)
			continue
		}
		if len(mapping) < 2 {
			continue
		}

		// x/text stores full decompositions; recover the single level pair.
		last := mapping[len(mapping)-1]
		head := norm.NFC.String(string(mapping[:len(mapping)-1]))
		first, w := utf8.DecodeRuneInString(head)
		if w != len(head) {
			log.Debugf("Skipping composite %U: lead %+q does not compose", r, head)
			continue
		}
		if got, ok := xt.Compose(first, last); !ok || got != r {
			log.Debugf("Skipping composite %U: pair %U %U does not compose back", r, first, last)
			continue
		}
		b.AddComposition(first, last, r)
	}

	t := b.Build()
	st := t.Stats()
	log.Infof("Built Unicode %s property table (%d classes, %d canonical, %d compat, "+
		"%d compositions, %d exclusions) in %s", t.Version(), st.Classes, st.Canonical,
		st.Compat, st.Compositions, st.Exclusions, time.Since(start).Truncate(time.Millisecond))

	return t
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process wide property table.  It is built on first use,
// exactly once, and is read-only afterwards.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = FromXText()
	})
	return defaultTable
}

// Stored returns the table for the x/text Unicode version held by repo,
// building and storing it first when the repo has none.
func Stored(repo Repo) (*Table, error) {
	t, err := repo.Get(norm.Version)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, errors.Wrapf(err, "load table %s", norm.Version)
	}

	log.Infof("No stored property table for Unicode %s, building one", norm.Version)
	t = FromXText()
	if err := repo.Put(t); err != nil {
		return nil, errors.Wrapf(err, "store table %s", norm.Version)
	}
	return t, nil
}
