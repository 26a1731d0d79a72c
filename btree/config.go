package btree

import (
	"fmt"

	"github.com/npillmayer/ordtree/compare"
)

// DefaultDegree is a reasonable degree for general-purpose in-memory trees.
const DefaultDegree = 16

// Keyed ties an entry to its ordering key at compile time.
type Keyed[K any] interface {
	Key() K
}

// Config configures a B-tree.
type Config[K any] struct {
	// Degree m bounds block occupancy to [m-1, 2m-1] entries. Must be >= 2.
	Degree int
	// Comparer orders keys. Required.
	Comparer compare.Comparer[K]
	// Unique makes Add reject keys already present with ErrDuplicateKey.
	// Otherwise Add stores duplicates next to each other.
	Unique bool
}

func (cfg Config[K]) validate() error {
	if cfg.Degree < 2 {
		return fmt.Errorf("%w: degree must be >= 2, is %d", ErrInvalidConfig, cfg.Degree)
	}
	if cfg.Comparer == nil {
		return fmt.Errorf("%w: comparer is required", ErrInvalidConfig)
	}
	return nil
}

func (cfg Config[K]) minEntries() int {
	return cfg.Degree - 1
}

func (cfg Config[K]) maxEntries() int {
	return 2*cfg.Degree - 1
}
