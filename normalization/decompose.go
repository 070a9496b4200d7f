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

	"github.com/lbryio/unorm/param"
	"github.com/lbryio/unorm/ucd"
)

// Decompose returns a new sequence in which every code point of in has been
// replaced by its full decomposition.  Compatibility mappings are applied
// when compat is set.  in is not modified.
func Decompose(p ucd.Properties, in []rune, compat bool) ([]rune, error) {
	// we typically see ascii; most inputs don't grow
	out := make([]rune, 0, len(in))
	var err error
	for _, r := range in {
		out, err = appendDecomposed(p, out, r, compat, 0)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func appendDecomposed(p ucd.Properties, out []rune, r rune, compat bool, depth int) ([]rune, error) {
	mapping := p.Decomposition(r, compat)
	if len(mapping) == 0 {
		return append(out, r), nil
	}
	if depth >= param.MaxDecompositionDepth {
		desc := fmt.Sprintf("decomposition of %U nests deeper than %d levels", r, param.MaxDecompositionDepth)
		log.Errorf("Property table is corrupt: %s", desc)
		return nil, Error{
			ErrorCode:   ErrRecursionLimit,
			Description: desc,
			Err:         AssertError("acyclic decomposition mappings"),
		}
	}

	var err error
	for _, c := range mapping {
		out, err = appendDecomposed(p, out, c, compat, depth+1)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
