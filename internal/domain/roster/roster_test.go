package roster_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/rota/internal/domain/roster"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given raw roster input", t, func() {
		Convey("When names carry surrounding whitespace", func() {
			r, err := roster.New([]string{"  Alice ", "\tBob", "Carol\n"}, "2024-01-01")

			Convey("Then names are trimmed but order and duplicates survive", func() {
				So(err, ShouldBeNil)
				So(r.People, ShouldResemble, []string{"Alice", "Bob", "Carol"})
				So(r.Anchor.String(), ShouldEqual, "2024-01-01")
			})
		})

		Convey("When the same name appears twice", func() {
			r, err := roster.New([]string{"Alice", "Bob", "Alice"}, "2024-03-05")

			Convey("Then no deduplication happens", func() {
				So(err, ShouldBeNil)
				So(r.People, ShouldResemble, []string{"Alice", "Bob", "Alice"})
			})
		})

		Convey("When the people list is empty", func() {
			_, err := roster.New(nil, "2024-01-01")

			Convey("Then it fails with the no-people kind", func() {
				So(errors.Is(err, roster.ErrNoPeople), ShouldBeTrue)
			})
		})

		Convey("When a name is blank after trimming", func() {
			_, err := roster.New([]string{"Alice", "   "}, "2024-01-01")

			Convey("Then it fails with the empty-name kind", func() {
				So(errors.Is(err, roster.ErrEmptyName), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "position 1")
			})
		})

		Convey("When the anchor does not parse", func() {
			_, err := roster.New([]string{"Alice"}, "January 1st")

			Convey("Then it fails with the bad-anchor kind", func() {
				So(errors.Is(err, roster.ErrBadAnchor), ShouldBeTrue)
			})
		})
	})
}

func TestRosterDerivations(t *testing.T) {
	Convey("Given a valid roster", t, func() {
		r, err := roster.New([]string{"Alice", "Bob"}, "2024-01-01")
		So(err, ShouldBeNil)

		now := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)

		Convey("When deriving the current assignment", func() {
			a, err := r.Current(now)

			Convey("Then it delegates to the rotation arithmetic", func() {
				So(err, ShouldBeNil)
				So(a.Participant, ShouldEqual, "Bob")
				So(a.PeriodNumber, ShouldEqual, 2)
			})
		})

		Convey("When deriving the forecast", func() {
			upcoming, err := r.Upcoming(now, 2)

			Convey("Then it continues from the current period", func() {
				So(err, ShouldBeNil)
				So(upcoming, ShouldHaveLength, 2)
				So(upcoming[0].Participant, ShouldEqual, "Alice")
				So(upcoming[1].Participant, ShouldEqual, "Bob")
			})
		})
	})
}
