package param

import "runtime"

const (
	// MaxDecompositionDepth bounds recursive decomposition.  Real Unicode
	// data never nests deeper than a handful of levels; reaching the bound
	// means the property table is corrupt.
	MaxDecompositionDepth = 32

	DefaultCacheSize uint = 32000
)

var DefaultWorkers = runtime.NumCPU()
