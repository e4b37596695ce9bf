package rotation

import "errors"

// Sentinel kinds for rotation errors.
var (
	ErrNoParticipants = errors.New("no participants in rotation")
	ErrNegativeCount  = errors.New("negative forecast count")
)
