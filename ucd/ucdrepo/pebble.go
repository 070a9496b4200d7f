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

package ucdrepo

import (
	"github.com/cockroachdb/pebble"
	"github.com/pkg/errors"

	"github.com/lbryio/unorm/ucd"
)

// key format: 't'(1B) + version(variable length)
// value: ucd.EncodeSnapshot output
const tablePrefix = 't'

type Pebble struct {
	db *pebble.DB
}

func NewPebble(path string) (*Pebble, error) {

	cache := pebble.NewCache(16 << 20)
	defer cache.Unref()

	db, err := pebble.Open(path, &pebble.Options{Cache: cache})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}

	repo := &Pebble{db: db}

	return repo, nil
}

func tableKey(version string) []byte {
	key := make([]byte, 0, len(version)+1)
	key = append(key, tablePrefix)
	return append(key, version...)
}

func (repo *Pebble) Put(t *ucd.Table) error {

	data, err := ucd.EncodeSnapshot(t)
	if err != nil {
		return errors.Wrapf(err, "in encode %s", t.Version())
	}

	err = repo.db.Set(tableKey(t.Version()), data, pebble.Sync)
	if err != nil {
		return errors.Wrapf(err, "in set %s", t.Version())
	}

	log.Debugf("Stored property table %s (%d bytes)", t.Version(), len(data))

	return nil
}

func (repo *Pebble) Get(version string) (*ucd.Table, error) {

	data, closer, err := repo.db.Get(tableKey(version))
	if err == pebble.ErrNotFound {
		return nil, ucd.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "in get %s", version)
	}
	defer closer.Close()

	// data is only valid until closer is closed; DecodeSnapshot copies what
	// it keeps.
	t, err := ucd.DecodeSnapshot(data)
	if err != nil {
		return nil, errors.Wrapf(err, "in decode %s", version)
	}

	log.Debugf("Loaded property table %s (%d bytes)", version, len(data))

	return t, nil
}

// Size returns the stored size in bytes of the table for version.
func (repo *Pebble) Size(version string) (int, error) {

	data, closer, err := repo.db.Get(tableKey(version))
	if err == pebble.ErrNotFound {
		return 0, ucd.ErrNotFound
	}
	if err != nil {
		return 0, errors.Wrapf(err, "in get %s", version)
	}
	defer closer.Close()

	return len(data), nil
}

func (repo *Pebble) Versions() ([]string, error) {

	prefixIterOptions := &pebble.IterOptions{
		LowerBound: []byte{tablePrefix},
		UpperBound: []byte{tablePrefix + 1},
	}

	var versions []string

	iter := repo.db.NewIter(prefixIterOptions)
	for iter.First(); iter.Valid(); iter.Next() {
		// NOTE! iter.Key() is ephemeral!
		versions = append(versions, string(iter.Key()[1:]))
	}

	err := iter.Close()
	if err != nil {
		return nil, errors.Wrap(err, "in iterate")
	}

	return versions, nil
}

func (repo *Pebble) Close() error {

	err := repo.db.Flush()
	if err != nil {
		return errors.Wrap(err, "on flush")
	}

	err = repo.db.Close()
	return errors.Wrap(err, "on close")
}
