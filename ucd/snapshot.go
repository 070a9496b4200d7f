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
	"bytes"
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrCorruptSnapshot is returned when a stored table does not match its digest
// or cannot be decoded.
var ErrCorruptSnapshot = errors.New("corrupt property table snapshot")

type classEntry struct {
	R rune  `msgpack:"r"`
	C uint8 `msgpack:"c"`
}

type mappingEntry struct {
	R rune   `msgpack:"r"`
	M []rune `msgpack:"m"`
}

type compositionEntry struct {
	A rune `msgpack:"a"`
	B rune `msgpack:"b"`
	R rune `msgpack:"r"`
}

// snapshot is the wire form of a Table.  Entries are sorted so that equal
// tables encode to equal bytes.
type snapshot struct {
	Version      string             `msgpack:"version"`
	Classes      []classEntry       `msgpack:"classes"`
	Canonical    []mappingEntry     `msgpack:"canonical"`
	Compat       []mappingEntry     `msgpack:"compat"`
	Exclusions   []rune             `msgpack:"exclusions"`
	Compositions []compositionEntry `msgpack:"compositions"`
}

func sortedMappings(m map[rune][]rune) []mappingEntry {
	entries := make([]mappingEntry, 0, len(m))
	for r, mapping := range m {
		entries = append(entries, mappingEntry{R: r, M: mapping})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].R < entries[j].R })
	return entries
}

func (t *Table) snapshot() *snapshot {
	snap := &snapshot{
		Version:   t.version,
		Canonical: sortedMappings(t.canonical),
		Compat:    sortedMappings(t.compat),
	}

	snap.Classes = make([]classEntry, 0, len(t.classes))
	for r, c := range t.classes {
		snap.Classes = append(snap.Classes, classEntry{R: r, C: c})
	}
	sort.Slice(snap.Classes, func(i, j int) bool { return snap.Classes[i].R < snap.Classes[j].R })

	snap.Exclusions = make([]rune, 0, len(t.exclusions))
	for r := range t.exclusions {
		snap.Exclusions = append(snap.Exclusions, r)
	}
	sort.Slice(snap.Exclusions, func(i, j int) bool { return snap.Exclusions[i] < snap.Exclusions[j] })

	snap.Compositions = make([]compositionEntry, 0, len(t.compositions))
	for p, r := range t.compositions {
		snap.Compositions = append(snap.Compositions, compositionEntry{A: p.a, B: p.b, R: r})
	}
	sort.Slice(snap.Compositions, func(i, j int) bool {
		ci, cj := snap.Compositions[i], snap.Compositions[j]
		if ci.A != cj.A {
			return ci.A < cj.A
		}
		return ci.B < cj.B
	})

	return snap
}

// EncodeSnapshot serializes t as its double SHA-256 digest followed by the
// msgpack encoded table.
func EncodeSnapshot(t *Table) ([]byte, error) {
	payload, err := msgpack.Marshal(t.snapshot())
	if err != nil {
		return nil, errors.Wrap(err, "in marshaller")
	}
	digest := chainhash.DoubleHashH(payload)

	buf := bytes.NewBuffer(make([]byte, 0, chainhash.HashSize+len(payload)))
	buf.Write(digest[:])
	buf.Write(payload)
	return buf.Bytes(), nil
}

// Digest returns the digest EncodeSnapshot stores alongside t.
func Digest(t *Table) (chainhash.Hash, error) {
	payload, err := msgpack.Marshal(t.snapshot())
	if err != nil {
		return chainhash.Hash{}, errors.Wrap(err, "in marshaller")
	}
	return chainhash.DoubleHashH(payload), nil
}

// DecodeSnapshot verifies and decodes data produced by EncodeSnapshot.
func DecodeSnapshot(data []byte) (*Table, error) {
	if len(data) < chainhash.HashSize {
		return nil, errors.Wrapf(ErrCorruptSnapshot, "snapshot of %d bytes is too short", len(data))
	}
	payload := data[chainhash.HashSize:]

	var stored chainhash.Hash
	copy(stored[:], data[:chainhash.HashSize])
	if computed := chainhash.DoubleHashH(payload); computed != stored {
		return nil, errors.Wrapf(ErrCorruptSnapshot, "digest mismatch: stored %s, computed %s", stored, computed)
	}

	var snap snapshot
	if err := msgpack.Unmarshal(payload, &snap); err != nil {
		return nil, errors.Wrapf(ErrCorruptSnapshot, "in decode: %v", err)
	}

	t := &Table{
		version:      snap.Version,
		classes:      make(map[rune]uint8, len(snap.Classes)),
		canonical:    make(map[rune][]rune, len(snap.Canonical)),
		compat:       make(map[rune][]rune, len(snap.Compat)),
		exclusions:   make(map[rune]struct{}, len(snap.Exclusions)),
		compositions: make(map[pair]rune, len(snap.Compositions)),
	}
	for _, e := range snap.Classes {
		t.classes[e.R] = e.C
	}
	for _, e := range snap.Canonical {
		t.canonical[e.R] = e.M
	}
	for _, e := range snap.Compat {
		t.compat[e.R] = e.M
	}
	for _, r := range snap.Exclusions {
		t.exclusions[r] = struct{}{}
	}
	for _, e := range snap.Compositions {
		t.compositions[pair{e.A, e.B}] = e.R
	}
	return t, nil
}
