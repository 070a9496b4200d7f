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

type pair struct {
	a, b rune
}

// Table is an immutable, data driven Properties implementation.  Tables are
// assembled with a Builder and never change afterwards, so one Table can be
// shared by any number of goroutines.
type Table struct {
	version string

	classes   map[rune]uint8
	canonical map[rune][]rune
	compat    map[rune][]rune

	// Full composition exclusion set: explicit exclusions, singletons and
	// non-starter decompositions.
	exclusions map[rune]struct{}

	compositions map[pair]rune
}

// Stats summarizes the size of a Table.
type Stats struct {
	Classes      int
	Canonical    int
	Compat       int
	Exclusions   int
	Compositions int
}

func (t *Table) Version() string {
	return t.version
}

func (t *Table) Stats() Stats {
	return Stats{
		Classes:      len(t.classes),
		Canonical:    len(t.canonical),
		Compat:       len(t.compat),
		Exclusions:   len(t.exclusions),
		Compositions: len(t.compositions),
	}
}

func (t *Table) CombiningClass(r rune) uint8 {
	return t.classes[r]
}

func (t *Table) Decomposition(r rune, compat bool) []rune {
	if m, ok := t.canonical[r]; ok {
		return m
	}
	if isHangulSyllable(r) {
		return decomposeHangul(r)
	}
	if compat {
		if m, ok := t.compat[r]; ok {
			return m
		}
	}
	return nil
}

func (t *Table) Compose(a, b rune) (rune, bool) {
	if c, ok := composeHangul(a, b); ok {
		return c, true
	}
	c, ok := t.compositions[pair{a, b}]
	return c, ok
}

// Excluded reports whether r belongs to the full composition exclusion set.
func (t *Table) Excluded(r rune) bool {
	_, ok := t.exclusions[r]
	return ok
}

// Builder accumulates character properties for a Table.  A Builder is not
// safe for concurrent use.
type Builder struct {
	t     *Table
	pairs map[pair]rune
}

func NewBuilder(version string) *Builder {
	return &Builder{
		t: &Table{
			version:      version,
			classes:      map[rune]uint8{},
			canonical:    map[rune][]rune{},
			compat:       map[rune][]rune{},
			exclusions:   map[rune]struct{}{},
			compositions: map[pair]rune{},
		},
		pairs: map[pair]rune{},
	}
}

func (b *Builder) SetCombiningClass(r rune, ccc uint8) {
	if ccc == 0 {
		delete(b.t.classes, r)
		return
	}
	b.t.classes[r] = ccc
}

// AddDecomposition records the canonical or compatibility mapping of r.
func (b *Builder) AddDecomposition(r rune, compat bool, mapping []rune) {
	if len(mapping) == 0 {
		return
	}
	m := make([]rune, len(mapping))
	copy(m, mapping)
	if compat {
		b.t.compat[r] = m
		return
	}
	b.t.canonical[r] = m
}

// AddExclusion marks r as never produced by composition.
func (b *Builder) AddExclusion(r rune) {
	b.t.exclusions[r] = struct{}{}
}

// AddComposition records that the pair (first, second) composes to r, for
// sources that do not provide single level canonical mappings.
func (b *Builder) AddComposition(first, second, r rune) {
	b.pairs[pair{first, second}] = r
}

// Build derives the composition pairs and returns the finished Table.  The
// Builder must not be used afterwards.
func (b *Builder) Build() *Table {
	t := b.t
	b.t = nil

	for r, m := range t.canonical {
		if len(m) == 1 || t.classes[r] != 0 || t.classes[m[0]] != 0 {
			t.exclusions[r] = struct{}{}
		}
	}

	for r, m := range t.canonical {
		if len(m) != 2 {
			continue
		}
		if _, ok := t.exclusions[r]; ok {
			continue
		}
		t.compositions[pair{m[0], m[1]}] = r
	}

	for p, r := range b.pairs {
		if _, ok := t.exclusions[r]; ok {
			continue
		}
		t.compositions[p] = r
	}

	return t
}
