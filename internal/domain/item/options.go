package item

import (
	"time"

	"github.com/rpggio/stowage/internal/domain/schema"
)

// CascadeMode controls how far a folder delete reaches.
type CascadeMode string

const (
	// CascadeShallow deletes the folder and its direct children only.
	CascadeShallow CascadeMode = "shallow"
	// CascadeRecursive deletes the whole subtree.
	CascadeRecursive CascadeMode = "recursive"
)

// Valid reports whether m is a known mode.
func (m CascadeMode) Valid() bool {
	return m == CascadeShallow || m == CascadeRecursive
}

// Options tunes the item service.
type Options struct {
	Cascade    CascadeMode
	Validation schema.Options
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}
