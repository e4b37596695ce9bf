package roster

import "errors"

// Sentinel kinds for roster validation errors.
var (
	ErrNoPeople  = errors.New("roster needs at least one person")
	ErrEmptyName = errors.New("empty participant name")
	ErrBadAnchor = errors.New("invalid anchor date")
)
