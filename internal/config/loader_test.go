package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/agendapro/agendapro/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad_Defaults(t *testing.T) {
	Convey("Given no file and no environment overrides", t, func() {
		cfg, err := config.Load(context.Background())

		Convey("Then the defaults match the original calendar geometry", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.RowHeight, ShouldEqual, 64)
			So(cfg.VisibleStartHour, ShouldEqual, 8)
			So(cfg.VisibleRows, ShouldEqual, 13)
			So(cfg.MinBlockHeight, ShouldEqual, 32)
			So(cfg.QueueSize, ShouldEqual, 1024)
			So(cfg.WorkerCount, ShouldEqual, 2)
			So(cfg.ClockIntervalSeconds, ShouldEqual, 60)
			So(cfg.SeedDemoData, ShouldBeTrue)
			So(cfg.LogLevel, ShouldEqual, "info")
		})
	})
}

func TestLoad_EnvOverrides(t *testing.T) {
	Convey("Given environment overrides", t, func() {
		t.Setenv("AGENDAPRO_ADDR", ":7070")
		t.Setenv("AGENDAPRO_ROW_HEIGHT", "80")
		t.Setenv("AGENDAPRO_WORKER_COUNT", "4")

		cfg, err := config.Load(context.Background())

		Convey("Then env values win over defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7070")
			So(cfg.RowHeight, ShouldEqual, 80)
			So(cfg.WorkerCount, ShouldEqual, 4)
		})

		Convey("And untouched fields keep their defaults", func() {
			So(err, ShouldBeNil)
			So(cfg.VisibleRows, ShouldEqual, 13)
		})
	})
}

func TestLoad_File(t *testing.T) {
	Convey("Given a YAML config file", t, func() {
		path := filepath.Join(t.TempDir(), "config.yaml")
		yaml := "addr: \":6060\"\nvisible_rows: 10\nlog_level: debug\n"
		So(os.WriteFile(path, []byte(yaml), 0o600), ShouldBeNil)
		t.Setenv("AGENDAPRO_CONFIG", path)

		Convey("When loading", func() {
			cfg, err := config.Load(context.Background())

			Convey("Then file values layer over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":6060")
				So(cfg.VisibleRows, ShouldEqual, 10)
				So(cfg.LogLevel, ShouldEqual, "debug")
			})
		})

		Convey("When env overrides the file", func() {
			t.Setenv("AGENDAPRO_ADDR", ":5050")

			cfg, err := config.Load(context.Background())

			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":5050")
			So(cfg.VisibleRows, ShouldEqual, 10)
		})
	})

	Convey("Given a missing config file", t, func() {
		t.Setenv("AGENDAPRO_CONFIG", "/nonexistent/config.yaml")

		_, err := config.Load(context.Background())
		So(err, ShouldNotBeNil)
	})
}

func TestLoad_Validation(t *testing.T) {
	Convey("Given an empty listen address", t, func() {
		t.Setenv("AGENDAPRO_ADDR", "")

		_, err := config.Load(context.Background())
		So(err, ShouldEqual, config.ErrEmptyAddr)
	})

	Convey("Given a broken grid", t, func() {
		// t.Setenv from the previous scenario persists for the whole test
		// function; clear it so only this scenario's override is in effect.
		os.Unsetenv("AGENDAPRO_ADDR")
		t.Setenv("AGENDAPRO_VISIBLE_ROWS", "0")

		_, err := config.Load(context.Background())
		So(err, ShouldEqual, config.ErrInvalidGrid)
	})
}
