package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okian/rota/internal/adapters/repository"
	service "github.com/okian/rota/internal/app"
	"github.com/okian/rota/internal/domain/roster"
	"github.com/okian/rota/internal/domain/rotation"
	"github.com/okian/rota/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			So(svc, ShouldNotBeNil)
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithMaxHistory(10),
			service.WithStore(repository.NewMemoryStore()),
			service.WithLogger(logger.Get()),
		)

		Convey("Then it should be created successfully", func() {
			So(svc, ShouldNotBeNil)
		})
	})
}

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a new service", t, func() {
		svc := service.New()
		defer svc.Stop()

		ctx := context.Background()

		Convey("When starting the service", func() {
			err := svc.Start(ctx)

			Convey("Then it should start successfully", func() {
				So(err, ShouldBeNil)

				stats := svc.GetStats()
				So(stats["started"], ShouldBeTrue)
			})

			Convey("And starting again is a no-op", func() {
				So(svc.Start(ctx), ShouldBeNil)
			})
		})
	})
}

func TestService_Roster(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := service.New()
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		Convey("When no roster has been set", func() {
			_, err := svc.Roster(ctx)

			Convey("Then queries report the missing roster", func() {
				So(errors.Is(err, repository.ErrNoRoster), ShouldBeTrue)

				_, err := svc.CurrentAssignment(ctx, time.Now())
				So(errors.Is(err, repository.ErrNoRoster), ShouldBeTrue)

				_, err = svc.UpcomingAssignments(ctx, time.Now(), 5)
				So(errors.Is(err, repository.ErrNoRoster), ShouldBeTrue)
			})
		})

		Convey("When setting a roster with messy input", func() {
			rec, err := svc.SetRoster(ctx, []string{" Alice ", "Bob "}, "2024-01-01")

			Convey("Then it is trimmed, saved and active", func() {
				So(err, ShouldBeNil)
				So(rec.ID, ShouldNotBeBlank)
				So(rec.Roster.People, ShouldResemble, []string{"Alice", "Bob"})

				got, err := svc.Roster(ctx)
				So(err, ShouldBeNil)
				So(got.ID, ShouldEqual, rec.ID)
			})
		})

		Convey("When setting an invalid roster", func() {
			_, err := svc.SetRoster(ctx, nil, "2024-01-01")

			Convey("Then validation fails without touching the store", func() {
				So(errors.Is(err, roster.ErrNoPeople), ShouldBeTrue)

				_, err := svc.Roster(ctx)
				So(errors.Is(err, repository.ErrNoRoster), ShouldBeTrue)
			})
		})
	})
}

func TestService_Queries(t *testing.T) {
	Convey("Given a service with an active roster", t, func() {
		svc := service.New()
		ctx := context.Background()
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		_, err := svc.SetRoster(ctx, []string{"Alice", "Bob", "Carol"}, "2024-01-01")
		So(err, ShouldBeNil)

		at := time.Date(2024, time.January, 16, 10, 0, 0, 0, time.UTC)

		Convey("When querying the current assignment", func() {
			a, err := svc.CurrentAssignment(ctx, at)

			Convey("Then the second period belongs to Bob", func() {
				So(err, ShouldBeNil)
				So(a.Participant, ShouldEqual, "Bob")
				So(a.PeriodNumber, ShouldEqual, 2)
				So(a.Active, ShouldBeTrue)
			})
		})

		Convey("When querying the forecast", func() {
			upcoming, err := svc.UpcomingAssignments(ctx, at, 3)

			Convey("Then it continues the cycle", func() {
				So(err, ShouldBeNil)
				So(upcoming, ShouldHaveLength, 3)
				So(upcoming[0].Participant, ShouldEqual, "Carol")
				So(upcoming[1].Participant, ShouldEqual, "Alice")
				So(upcoming[2].Participant, ShouldEqual, "Bob")
			})
		})

		Convey("When a negative count reaches the core", func() {
			_, err := svc.UpcomingAssignments(ctx, at, -1)

			Convey("Then the core's contract error surfaces", func() {
				So(errors.Is(err, rotation.ErrNegativeCount), ShouldBeTrue)
			})
		})

		Convey("When a new roster replaces the old one", func() {
			_, err := svc.SetRoster(ctx, []string{"Dana"}, "2024-01-01")
			So(err, ShouldBeNil)

			a, err := svc.CurrentAssignment(ctx, at)

			Convey("Then queries answer from the new roster", func() {
				So(err, ShouldBeNil)
				So(a.Participant, ShouldEqual, "Dana")
			})
		})
	})
}
