package directory_test

import (
	"context"
	"testing"

	"github.com/agendapro/agendapro/internal/adapters/directory"
	"github.com/agendapro/agendapro/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDirectory_Defaults(t *testing.T) {
	ctx := context.Background()

	Convey("Given a default directory", t, func() {
		d := directory.New()

		Convey("Then the staff roster is seeded", func() {
			So(d.ListStaff(ctx), ShouldResemble, []string{"Anna", "Mark"})
		})

		Convey("And the catalog holds the five services", func() {
			services := d.ListServices(ctx)
			So(len(services), ShouldEqual, 5)
			So(services[0].Name, ShouldEqual, "Haircut")
			So(services[0].Duration, ShouldEqual, 0.75)
			So(services[1].Duration, ShouldEqual, 1.5)
		})
	})

	Convey("Given a directory with custom options", t, func() {
		d := directory.New(
			directory.WithStaff([]string{"Nora"}),
			directory.WithServices([]model.Service{{ID: "x", Name: "Massage", Duration: 1}}),
		)

		So(d.ListStaff(ctx), ShouldResemble, []string{"Nora"})
		So(len(d.ListServices(ctx)), ShouldEqual, 1)
	})
}

func TestDirectory_ServiceByName(t *testing.T) {
	ctx := context.Background()

	Convey("Given the default catalog", t, func() {
		d := directory.New()

		Convey("Then known names resolve", func() {
			svc, err := d.ServiceByName(ctx, "Manicure")
			So(err, ShouldBeNil)
			So(svc.Duration, ShouldEqual, 0.5)
		})

		Convey("And unknown names fail", func() {
			_, err := d.ServiceByName(ctx, "Tattoo")
			So(err, ShouldEqual, directory.ErrServiceNotFound)
		})
	})
}

func TestDirectory_CatalogMutation(t *testing.T) {
	ctx := context.Background()

	Convey("Given a directory", t, func() {
		d := directory.New()

		Convey("When adding a service without an id", func() {
			added := d.AddService(ctx, model.Service{Name: "Massage", Duration: 1, Price: "$100.00"})

			So(added.ID, ShouldNotBeEmpty)
			So(len(d.ListServices(ctx)), ShouldEqual, 6)
		})

		Convey("When updating a service in place", func() {
			updated, err := d.UpdateService(ctx, model.Service{ID: "1", Name: "Haircut", Duration: 1, Price: "$95.00"})

			So(err, ShouldBeNil)
			So(updated.Price, ShouldEqual, "$95.00")
			So(d.ListServices(ctx)[0].Duration, ShouldEqual, 1)
		})

		Convey("When removing a service", func() {
			So(d.RemoveService(ctx, "2"), ShouldBeNil)
			So(len(d.ListServices(ctx)), ShouldEqual, 4)

			_, err := d.ServiceByName(ctx, "Hair Coloring")
			So(err, ShouldEqual, directory.ErrServiceNotFound)
		})

		Convey("When touching unknown ids", func() {
			_, err := d.UpdateService(ctx, model.Service{ID: "nope"})
			So(err, ShouldEqual, directory.ErrServiceNotFound)
			So(d.RemoveService(ctx, "nope"), ShouldEqual, directory.ErrServiceNotFound)
		})
	})
}
