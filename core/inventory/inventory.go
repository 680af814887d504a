// Package inventory holds the set of known components, keyed by
// identifier. The index is built once from input and read-only during
// evaluation.
package inventory

import (
	"kitcheck/core/types"
)

// Inventory maps component identifiers to component records
type Inventory struct {
	components map[string]types.Component
}

// New creates an empty inventory
func New() *Inventory {
	return &Inventory{
		components: make(map[string]types.Component),
	}
}

// Insert adds or overwrites the entry for the component's identifier.
// A later duplicate identifier replaces the earlier entry; no error is
// raised. Category correctness is not checked here, that is deferred
// to build resolution.
func (inv *Inventory) Insert(c types.Component) {
	inv.components[c.ID] = c
}

// Lookup returns the component for an identifier
func (inv *Inventory) Lookup(id string) (types.Component, bool) {
	c, ok := inv.components[id]
	return c, ok
}

// Len returns the number of distinct components held
func (inv *Inventory) Len() int {
	return len(inv.components)
}
