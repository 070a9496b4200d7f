package ucd

import (
	"github.com/pkg/errors"
)

// ErrNotFound is returned by a Repo that holds no table for a version.
var ErrNotFound = errors.New("property table not found")

// Repo defines APIs for property tables to access persistence layer.
type Repo interface {
	Put(t *Table) error
	Get(version string) (*Table, error)
	Versions() ([]string, error)
	Close() error
}
