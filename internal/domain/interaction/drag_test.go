package interaction_test

import (
	"testing"

	"github.com/agendapro/agendapro/internal/domain/interaction"
	"github.com/agendapro/agendapro/internal/domain/timegrid"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDrag_Lifecycle(t *testing.T) {
	Convey("Given an idle drag machine", t, func() {
		d := interaction.NewDrag()

		Convey("Then it starts with no state", func() {
			So(d.Phase(), ShouldEqual, interaction.PhaseIdle)
			So(d.DraggingID(), ShouldBeEmpty)
			_, ok := d.Target()
			So(ok, ShouldBeFalse)
		})

		Convey("When a drag starts", func() {
			d.Start("appt-1")

			So(d.Phase(), ShouldEqual, interaction.PhaseDragging)
			So(d.DraggingID(), ShouldEqual, "appt-1")

			Convey("And the pointer enters a cell", func() {
				ok := d.Over(timegrid.Cell{Day: 2, Hour: 14})

				So(ok, ShouldBeTrue)
				So(d.Phase(), ShouldEqual, interaction.PhaseTargeting)
				target, has := d.Target()
				So(has, ShouldBeTrue)
				So(target, ShouldResemble, timegrid.Cell{Day: 2, Hour: 14})

				Convey("And the drop yields the id and cell, clearing state", func() {
					id, cell, dropped := d.Drop()

					So(dropped, ShouldBeTrue)
					So(id, ShouldEqual, "appt-1")
					So(cell, ShouldResemble, timegrid.Cell{Day: 2, Hour: 14})
					So(d.Phase(), ShouldEqual, interaction.PhaseIdle)
				})
			})
		})
	})
}

func TestDrag_Over(t *testing.T) {
	Convey("Given an idle machine", t, func() {
		d := interaction.NewDrag()

		Convey("Then over events are ignored until a drag starts", func() {
			So(d.Over(timegrid.Cell{Day: 1, Hour: 9}), ShouldBeFalse)
			So(d.Phase(), ShouldEqual, interaction.PhaseIdle)
		})
	})

	Convey("Given an active drag with a target", t, func() {
		d := interaction.NewDrag()
		d.Start("appt-1")
		d.Over(timegrid.Cell{Day: 1, Hour: 9})

		Convey("When the pointer moves to another cell", func() {
			d.Over(timegrid.Cell{Day: 1, Hour: 10})

			Convey("Then the new target replaces the old one", func() {
				target, _ := d.Target()
				So(target, ShouldResemble, timegrid.Cell{Day: 1, Hour: 10})
			})
		})

		Convey("When a second drag starts mid-flight", func() {
			d.Start("appt-2")

			Convey("Then the latest drag wins and the old target is gone", func() {
				So(d.DraggingID(), ShouldEqual, "appt-2")
				_, ok := d.Target()
				So(ok, ShouldBeFalse)
			})
		})
	})
}

func TestDrag_Leave(t *testing.T) {
	Convey("Given a drag targeting a cell", t, func() {
		d := interaction.NewDrag()
		d.Start("appt-1")
		target := timegrid.Cell{Day: 3, Hour: 15}
		d.Over(target)

		Convey("When a leave event arrives from a different cell", func() {
			d.Leave(timegrid.Cell{Day: 3, Hour: 16})

			Convey("Then the highlight stays, child leave events are harmless", func() {
				got, ok := d.Target()
				So(ok, ShouldBeTrue)
				So(got, ShouldResemble, target)
			})
		})

		Convey("When the pointer truly leaves the target cell", func() {
			d.Leave(target)

			Convey("Then the target clears but the drag stays active", func() {
				_, ok := d.Target()
				So(ok, ShouldBeFalse)
				So(d.Phase(), ShouldEqual, interaction.PhaseDragging)
				So(d.DraggingID(), ShouldEqual, "appt-1")
			})
		})
	})
}

func TestDrag_End(t *testing.T) {
	Convey("Given drags in every phase", t, func() {
		Convey("Then End on an idle machine is a no-op", func() {
			d := interaction.NewDrag()
			d.End()
			So(d.Phase(), ShouldEqual, interaction.PhaseIdle)
		})

		Convey("Then End cancels a drag without a target", func() {
			d := interaction.NewDrag()
			d.Start("appt-1")
			d.End()
			So(d.Phase(), ShouldEqual, interaction.PhaseIdle)
			So(d.DraggingID(), ShouldBeEmpty)
		})

		Convey("Then End clears a lingering highlight after targeting", func() {
			d := interaction.NewDrag()
			d.Start("appt-1")
			d.Over(timegrid.Cell{Day: 0, Hour: 9})
			d.End()
			_, ok := d.Target()
			So(ok, ShouldBeFalse)
			So(d.Phase(), ShouldEqual, interaction.PhaseIdle)
		})
	})
}

func TestDrag_DropWithoutTarget(t *testing.T) {
	Convey("Given a drag that never acquired a target", t, func() {
		d := interaction.NewDrag()
		d.Start("appt-1")

		Convey("When the drop fires", func() {
			_, _, ok := d.Drop()

			Convey("Then it reports no move and clears state anyway", func() {
				So(ok, ShouldBeFalse)
				So(d.Phase(), ShouldEqual, interaction.PhaseIdle)
			})
		})
	})
}
