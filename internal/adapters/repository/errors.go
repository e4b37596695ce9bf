package repository

import "errors"

// Sentinel kinds for roster store errors.
var (
	ErrNoRoster = errors.New("no roster saved")
)
