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
	"encoding/binary"
	"unicode/utf8"

	"github.com/decred/dcrd/lru"
)

// CachingNormalizer remembers recent inputs that were already in normal form
// and hands those back without running the pipeline.  Workloads such as claim
// names are dominated by text that is normal to begin with.
type CachingNormalizer struct {
	*Normalizer

	normal lru.Cache
}

func NewCachingNormalizer(n *Normalizer, size uint) *CachingNormalizer {
	return &CachingNormalizer{
		Normalizer: n,
		normal:     lru.NewCache(size),
	}
}

// cacheKey packs the form and the code points into a comparable value.
func cacheKey(in []rune, f Form) string {
	key := make([]byte, 1+4*len(in))
	key[0] = byte(f)
	for i, r := range in {
		binary.BigEndian.PutUint32(key[1+4*i:], uint32(r))
	}
	return string(key)
}

// Normalize returns in converted to form f.  in is never modified.
func (cn *CachingNormalizer) Normalize(in []rune, f Form) ([]rune, error) {
	key := cacheKey(in, f)
	if cn.normal.Contains(key) {
		out := make([]rune, len(in))
		copy(out, in)
		return out, nil
	}

	out, err := cn.Normalizer.Normalize(in, f)
	if err != nil {
		return nil, err
	}
	if equalRunes(in, out) {
		cn.normal.Add(key)
	}
	return out, nil
}

func (cn *CachingNormalizer) NormalizeInPlace(seq *[]rune, f Form) error {
	out, err := cn.Normalize(*seq, f)
	if err != nil {
		return err
	}
	*seq = out
	return nil
}

func (cn *CachingNormalizer) IsNormal(in []rune, f Form) (bool, error) {
	out, err := cn.Normalize(in, f)
	if err != nil {
		return false, err
	}
	return equalRunes(in, out), nil
}

// NormalizeString normalizes the UTF-8 text s through the cache.  Text that
// is not valid UTF-8 is returned unchanged.
func (cn *CachingNormalizer) NormalizeString(s string, f Form) (string, error) {
	if !utf8.ValidString(s) {
		return s, nil
	}
	out, err := cn.Normalize([]rune(s), f)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// NormalizeBytes normalizes the UTF-8 text b through the cache.  Text that
// is not valid UTF-8 is returned unchanged.
func (cn *CachingNormalizer) NormalizeBytes(b []byte, f Form) ([]byte, error) {
	if !utf8.Valid(b) {
		return b, nil
	}
	out, err := cn.Normalize([]rune(string(b)), f)
	if err != nil {
		return nil, err
	}
	return []byte(string(out)), nil
}
