package timegrid_test

import (
	"testing"

	"github.com/agendapro/agendapro/internal/domain/model"
	"github.com/agendapro/agendapro/internal/domain/timegrid"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGrid_TopOffset(t *testing.T) {
	Convey("Given a grid with default geometry", t, func() {
		g := timegrid.New()

		Convey("Then whole hours map to row multiples", func() {
			So(g.TopOffset(8), ShouldEqual, 0)
			So(g.TopOffset(9), ShouldEqual, 64)
			So(g.TopOffset(20), ShouldEqual, 768)
		})

		Convey("And quarter-hour starts map exactly, without rounding", func() {
			So(g.TopOffset(9.25), ShouldEqual, 80)
			So(g.TopOffset(9.5), ShouldEqual, 96)
			So(g.TopOffset(9.75), ShouldEqual, 112)
		})

		Convey("And starts before the visible range clamp to the top", func() {
			So(g.TopOffset(7), ShouldEqual, 0)
			So(g.TopOffset(0), ShouldEqual, 0)
		})
	})

	Convey("Given a grid with custom geometry", t, func() {
		g := timegrid.New(
			timegrid.WithRowHeight(100),
			timegrid.WithVisibleRange(6, 12),
		)

		Convey("Then offsets scale with the row height", func() {
			So(g.TopOffset(6), ShouldEqual, 0)
			So(g.TopOffset(7.5), ShouldEqual, 150)
		})
	})
}

func TestGrid_BlockHeight(t *testing.T) {
	Convey("Given a grid with default geometry", t, func() {
		g := timegrid.New()

		Convey("Then durations map proportionally to height", func() {
			So(g.BlockHeight(1), ShouldEqual, 64)
			So(g.BlockHeight(1.5), ShouldEqual, 96)
			So(g.BlockHeight(0.75), ShouldEqual, 48)
		})

		Convey("And very short durations floor at the minimum height", func() {
			So(g.BlockHeight(0.25), ShouldEqual, 32)
			So(g.BlockHeight(0.5), ShouldEqual, 32)
		})

		Convey("And the floor never rounds heights above it", func() {
			So(g.BlockHeight(0.51), ShouldBeGreaterThan, 32)
		})
	})
}

func TestGrid_Renderable(t *testing.T) {
	Convey("Given a grid showing 8 AM through 8 PM", t, func() {
		g := timegrid.New()

		Convey("Then starts inside the range are renderable", func() {
			So(g.Renderable(8), ShouldBeTrue)
			So(g.Renderable(20), ShouldBeTrue)
			So(g.Renderable(20.5), ShouldBeTrue)
		})

		Convey("And starts outside the range are not", func() {
			So(g.Renderable(7.75), ShouldBeFalse)
			So(g.Renderable(21), ShouldBeFalse)
		})
	})
}

func TestGrid_Rows(t *testing.T) {
	Convey("Given a grid with default geometry", t, func() {
		g := timegrid.New()
		rows := g.Rows()

		Convey("Then it renders 13 hour rows from 8 to 20", func() {
			So(len(rows), ShouldEqual, 13)
			So(rows[0], ShouldEqual, 8)
			So(rows[12], ShouldEqual, 20)
		})
	})
}

func TestGrid_Place(t *testing.T) {
	Convey("Given a day with appointments and a time block", t, func() {
		g := timegrid.New()
		events := []model.CalendarEvent{
			model.Appointment{ID: "a1", ClientName: "Sarah", Day: 0, StartTime: 9, Duration: 0.75},
			model.Appointment{ID: "a2", ClientName: "Mike", Day: 0, StartTime: 10, Duration: 1.5},
			model.Appointment{ID: "a3", ClientName: "Emma", Day: 1, StartTime: 11, Duration: 0.5},
			model.TimeBlock{ID: "b1", Day: 0, StartTime: 12, Duration: 1, BlockType: model.BlockBreak},
			model.Appointment{ID: "a4", ClientName: "Early", Day: 0, StartTime: 6, Duration: 1},
		}

		Convey("When placing day 0", func() {
			placed := g.Place(events, 0)

			Convey("Then only renderable day-0 events appear, in input order", func() {
				So(len(placed), ShouldEqual, 3)
				So(placed[0].ID, ShouldEqual, "a1")
				So(placed[1].ID, ShouldEqual, "a2")
				So(placed[2].ID, ShouldEqual, "b1")
			})

			Convey("And geometry and labels are computed", func() {
				So(placed[0].Top, ShouldEqual, 64)
				So(placed[0].Height, ShouldEqual, 48)
				So(placed[0].Label, ShouldEqual, "9:00 AM")
				So(placed[1].Height, ShouldEqual, 96)
				So(placed[2].Kind, ShouldEqual, model.KindTimeBlock)
			})
		})

		Convey("When placing an empty day", func() {
			So(g.Place(events, 5), ShouldBeEmpty)
		})
	})
}

func TestTimeLabel(t *testing.T) {
	Convey("Given the 12-hour clock formatter", t, func() {
		Convey("Then morning hours read AM", func() {
			So(timegrid.TimeLabel(9, 0), ShouldEqual, "9:00 AM")
			So(timegrid.TimeLabel(11, 30), ShouldEqual, "11:30 AM")
		})

		Convey("And afternoon hours read PM", func() {
			So(timegrid.TimeLabel(13, 0), ShouldEqual, "1:00 PM")
			So(timegrid.TimeLabel(23, 45), ShouldEqual, "11:45 PM")
		})

		Convey("And hours 0 and 12 render as 12, never 0", func() {
			So(timegrid.TimeLabel(0, 0), ShouldEqual, "12:00 AM")
			So(timegrid.TimeLabel(12, 0), ShouldEqual, "12:00 PM")
		})
	})
}

func TestTimeOfDayLabel(t *testing.T) {
	Convey("Given fractional hours of day", t, func() {
		So(timegrid.TimeOfDayLabel(9.5), ShouldEqual, "9:30 AM")
		So(timegrid.TimeOfDayLabel(14.75), ShouldEqual, "2:45 PM")
		So(timegrid.TimeOfDayLabel(8), ShouldEqual, "8:00 AM")
	})
}

func TestFormatDuration(t *testing.T) {
	Convey("Given durations in hours", t, func() {
		Convey("Then sub-hour durations read as minutes", func() {
			So(timegrid.FormatDuration(0.5), ShouldEqual, "30 minutes")
			So(timegrid.FormatDuration(0.75), ShouldEqual, "45 minutes")
		})

		Convey("And whole hours read as hours", func() {
			So(timegrid.FormatDuration(1), ShouldEqual, "1 hour")
			So(timegrid.FormatDuration(2), ShouldEqual, "2 hours")
		})

		Convey("And mixed durations read both parts", func() {
			So(timegrid.FormatDuration(1.5), ShouldEqual, "1 hour 30 minutes")
			So(timegrid.FormatDuration(2.25), ShouldEqual, "2 hours 15 minutes")
		})
	})
}
