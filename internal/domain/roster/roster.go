// Package roster defines the durable rotation definition passed between
// layers: the ordered duty list and the anchor date. Assignments are never
// stored on it; they are derived per query by the rotation package.
package roster

import (
	"fmt"
	"strings"
	"time"

	"github.com/okian/rota/internal/domain/rotation"
)

// Roster is the rotation definition. Order of People is significant and is
// preserved exactly as supplied; duplicates are allowed.
type Roster struct {
	People []string
	Anchor rotation.Date
}

// New builds a Roster from raw input. Surrounding whitespace is trimmed
// from each name; beyond that names pass through untouched. The anchor
// must be a YYYY-MM-DD date.
func New(people []string, anchor string) (Roster, error) {
	if len(people) == 0 {
		return Roster{}, ErrNoPeople
	}

	trimmed := make([]string, len(people))
	for i, p := range people {
		p = strings.TrimSpace(p)
		if p == "" {
			return Roster{}, fmt.Errorf("%w: position %d", ErrEmptyName, i)
		}
		trimmed[i] = p
	}

	anchorDate, err := rotation.ParseDate(strings.TrimSpace(anchor))
	if err != nil {
		return Roster{}, fmt.Errorf("%w: %w", ErrBadAnchor, err)
	}

	return Roster{People: trimmed, Anchor: anchorDate}, nil
}

// Current returns the assignment in effect at now.
func (r Roster) Current(now time.Time) (rotation.Assignment, error) {
	return rotation.CurrentAssignment(r.People, r.Anchor, now)
}

// Upcoming returns count assignments following the period containing now.
func (r Roster) Upcoming(now time.Time, count int) ([]rotation.Assignment, error) {
	return rotation.UpcomingAssignments(r.People, r.Anchor, now, count)
}
