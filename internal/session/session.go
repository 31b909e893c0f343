// Package session tags one analysis session (spec §5: one
// EntryNavigator/NodeQuery/SymbolTable per module, sharing only the
// primitive library rows) with a stable identifier for log
// correlation when multiple modules are analyzed concurrently.
package session

import "github.com/google/uuid"

// ID identifies a single analysis session.
type ID string

// New mints a fresh session identifier.
func New() ID {
	return ID(uuid.NewString())
}

func (id ID) String() string { return string(id) }
