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

package normalization

import (
	"fmt"
	"unicode/utf8"

	"github.com/lbryio/unorm/ucd"
)

// Normalizer converts code point sequences to a normalization form using the
// injected character properties.  A Normalizer holds no mutable state and is
// safe for concurrent use.
type Normalizer struct {
	props ucd.Properties
}

func New(props ucd.Properties) *Normalizer {
	return &Normalizer{props: props}
}

func (n *Normalizer) Properties() ucd.Properties {
	return n.props
}

// Normalize returns in converted to form f.  in is never modified.
func (n *Normalizer) Normalize(in []rune, f Form) ([]rune, error) {
	if !f.valid() {
		return nil, normError(ErrUnknownForm, fmt.Sprintf("unknown normalization form %d", int(f)))
	}

	// Decompose always writes into a fresh sequence, which the remaining
	// stages then own.
	seq, err := Decompose(n.props, in, f.compat())
	if err != nil {
		return nil, err
	}
	Reorder(n.props, seq)
	if f.composes() {
		seq = Compose(n.props, seq)
	}
	return seq, nil
}

// NormalizeInPlace replaces the contents of *seq with its form f.  On error
// *seq is left untouched.
func (n *Normalizer) NormalizeInPlace(seq *[]rune, f Form) error {
	out, err := n.Normalize(*seq, f)
	if err != nil {
		return err
	}
	*seq = out
	return nil
}

// IsNormal reports whether in is already in form f.
func (n *Normalizer) IsNormal(in []rune, f Form) (bool, error) {
	out, err := n.Normalize(in, f)
	if err != nil {
		return false, err
	}
	return equalRunes(in, out), nil
}

// NormalizeString normalizes the UTF-8 text s.  Text that is not valid UTF-8
// is returned unchanged.
func (n *Normalizer) NormalizeString(s string, f Form) (string, error) {
	if !utf8.ValidString(s) {
		return s, nil
	}
	out, err := n.Normalize([]rune(s), f)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// NormalizeBytes normalizes the UTF-8 text b.  Text that is not valid UTF-8
// is returned unchanged.
func (n *Normalizer) NormalizeBytes(b []byte, f Form) ([]byte, error) {
	if !utf8.Valid(b) {
		return b, nil
	}
	out, err := n.Normalize([]rune(string(b)), f)
	if err != nil {
		return nil, err
	}
	return []byte(string(out)), nil
}

// Normalize converts in to form f using the process wide property table.
func Normalize(in []rune, f Form) ([]rune, error) {
	return New(ucd.Default()).Normalize(in, f)
}

// NormalizeInPlace converts *seq to form f using the process wide property
// table.
func NormalizeInPlace(seq *[]rune, f Form) error {
	return New(ucd.Default()).NormalizeInPlace(seq, f)
}

func equalRunes(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
