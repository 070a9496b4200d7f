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
	"sort"

	"github.com/lbryio/unorm/ucd"
)

// Reorder applies the canonical ordering algorithm to seq in place: each
// maximal run of non-starters is stably sorted by combining class.  Starters
// never move.
func Reorder(p ucd.Properties, seq []rune) {
	for i := 0; i < len(seq); {
		if p.CombiningClass(seq[i]) == 0 {
			i++
			continue
		}

		j := i + 1
		for j < len(seq) && p.CombiningClass(seq[j]) != 0 {
			j++
		}

		if j-i > 1 {
			run := seq[i:j]
			sort.SliceStable(run, func(a, b int) bool {
				return p.CombiningClass(run[a]) < p.CombiningClass(run[b])
			})
		}
		i = j
	}
}
