package ucdrepo

import (
	"sort"
	"sync"

	"github.com/lbryio/unorm/ucd"
)

type Memory struct {
	mu     sync.RWMutex
	tables map[string]*ucd.Table
}

func NewMemory() *Memory {
	return &Memory{
		tables: map[string]*ucd.Table{},
	}
}

func (repo *Memory) Put(t *ucd.Table) error {

	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.tables[t.Version()] = t

	return nil
}

func (repo *Memory) Get(version string) (*ucd.Table, error) {

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	t, ok := repo.tables[version]
	if !ok {
		return nil, ucd.ErrNotFound
	}

	return t, nil
}

func (repo *Memory) Versions() ([]string, error) {

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var versions []string
	for version := range repo.tables {
		versions = append(versions, version)
	}
	sort.Strings(versions)

	return versions, nil
}

func (repo *Memory) Close() error {
	return nil
}
