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
	"github.com/lbryio/unorm/ucd"
)

// Compose applies canonical composition to a decomposed and reordered
// sequence.  The sequence is compacted in place; the returned slice shares
// seq's storage and is never longer.
//
// A character C combines with the last starter S unless it is blocked: some
// character between S and C has combining class 0 or a class greater than or
// equal to that of C.  A starter C therefore only combines with an adjacent S.
func Compose(p ucd.Properties, seq []rune) []rune {
	if len(seq) < 2 {
		return seq
	}

	starter := -1 // write index of the last starter, -1 before the first
	w := 0        // write cursor, never ahead of the read cursor

	// Combining class of the last character written after the starter.
	// Reordering guarantees it is the highest class in between.
	var lastCC uint8

	for _, c := range seq {
		cc := p.CombiningClass(c)

		if starter >= 0 {
			adjacent := w == starter+1
			if adjacent || (lastCC != 0 && lastCC < cc) {
				if composite, ok := p.Compose(seq[starter], c); ok {
					seq[starter] = composite
					continue
				}
			}
		}

		if cc == 0 {
			starter = w
		}
		lastCC = cc
		seq[w] = c
		w++
	}

	return seq[:w]
}
