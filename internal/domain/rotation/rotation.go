package rotation

import "time"

// Rotation period constants.
const (
	// PeriodDays is the fixed length of one duty period.
	PeriodDays = 14

	daysPerWeek   = 7
	hoursPerDay   = 24
	dayDuration   = hoursPerDay * time.Hour
	lastPeriodDay = PeriodDays - 1
)

// Assignment describes who holds duty for one period. It is a derived
// value, recomputed on every query; nothing persists it.
type Assignment struct {
	// Participant is the display name of whoever is on duty.
	Participant string
	// ParticipantIndex is the position of Participant in the duty list.
	ParticipantIndex int
	// PeriodNumber is 1-based; the period containing the anchor week is 1.
	// Periods before the anchor carry numbers <= 0.
	PeriodNumber int
	// PeriodStart is midnight UTC of the period's first day (inclusive).
	PeriodStart time.Time
	// PeriodEnd is 23:59:59.999 UTC of the period's last day (inclusive).
	PeriodEnd time.Time
	// WeeksElapsed and DaysElapsed count whole weeks/days between the
	// anchor Monday and the query instant; negative before the anchor.
	WeeksElapsed int
	DaysElapsed  int
	// Active reports whether the query instant falls inside the period.
	Active bool
}

// AlignToWeekStart returns the Monday of the week containing d, on the UTC
// calendar. Sundays belong to the week that started six days earlier, not
// the one starting the next day.
func AlignToWeekStart(d Date) Date {
	weekday := int(d.Weekday()) // Sunday is 0 in time.Weekday
	if weekday == 0 {
		weekday = daysPerWeek
	}
	return d.AddDays(-(weekday - 1))
}

// CurrentAssignment computes the assignment in effect at now for the given
// duty list and anchor date. The anchor is aligned to the Monday of its
// week before any arithmetic. Instants before the anchor are supported and
// yield negative period indices, indexing the duty list from its end.
func CurrentAssignment(people []string, anchor Date, now time.Time) (Assignment, error) {
	if len(people) == 0 {
		return Assignment{}, ErrNoParticipants
	}
	monday := AlignToWeekStart(anchor)
	elapsed := daysBetween(monday.StartOfDay(), now)
	index := floorDiv(elapsed, PeriodDays)
	return assignmentAt(people, monday, index, elapsed, now), nil
}

// UpcomingAssignments returns exactly count assignments strictly after the
// period containing now, in chronological order. A zero count yields an
// empty slice.
func UpcomingAssignments(people []string, anchor Date, now time.Time, count int) ([]Assignment, error) {
	if len(people) == 0 {
		return nil, ErrNoParticipants
	}
	if count < 0 {
		return nil, ErrNegativeCount
	}
	monday := AlignToWeekStart(anchor)
	elapsed := daysBetween(monday.StartOfDay(), now)
	current := floorDiv(elapsed, PeriodDays)

	out := make([]Assignment, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, assignmentAt(people, monday, current+i, elapsed, now))
	}
	return out, nil
}

// assignmentAt builds the assignment for a single period index. elapsed is
// the whole-day distance from the anchor Monday to the query instant and is
// carried into every produced assignment unchanged.
func assignmentAt(people []string, anchorMonday Date, periodIndex, elapsed int, now time.Time) Assignment {
	start := anchorMonday.AddDays(periodIndex * PeriodDays)
	end := start.AddDays(lastPeriodDay)
	participant := mod(periodIndex, len(people))

	a := Assignment{
		Participant:      people[participant],
		ParticipantIndex: participant,
		PeriodNumber:     periodIndex + 1,
		PeriodStart:      start.StartOfDay(),
		PeriodEnd:        end.EndOfDay(),
		WeeksElapsed:     floorDiv(elapsed, daysPerWeek),
		DaysElapsed:      elapsed,
	}
	a.Active = !now.Before(a.PeriodStart) && !now.After(a.PeriodEnd)
	return a
}

// daysBetween counts whole days from one instant to another, flooring
// toward negative infinity so that partial days before `from` still count
// as a full day back.
func daysBetween(from, to time.Time) int {
	diff := to.Sub(from)
	days := int(diff / dayDuration)
	if diff < 0 && diff%dayDuration != 0 {
		days--
	}
	return days
}

// floorDiv divides flooring toward negative infinity, unlike Go's
// truncating integer division.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// mod is the mathematical modulo: the result is always in [0, b) even for
// negative a.
func mod(a, b int) int {
	return ((a % b) + b) % b
}
