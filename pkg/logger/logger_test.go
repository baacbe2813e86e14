package logger_test

import (
	"context"
	"log/slog"
	"testing"

	logger "github.com/okian/dugout/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	ctx := context.Background()

	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("When getting the global instance", func() {
			lg := logger.Get()

			Convey("Then it accepts all levels without panicking", func() {
				So(lg, ShouldNotBeNil)
				So(func() {
					lg.Debug(ctx, "debug message", logger.String("k", "v"))
					lg.Info(ctx, "info message", logger.Int("n", 42))
					lg.Warn(ctx, "warn message", logger.Float64("f", 1.5))
					lg.Error(ctx, "error message", logger.Any("v", struct{}{}))
				}, ShouldNotPanic)
			})
		})

		Convey("When deriving a named logger", func() {
			lg := logger.Named("pipeline")

			Convey("Then it logs independently of the parent", func() {
				So(lg, ShouldNotBeNil)
				So(func() {
					lg.Named("run").Info(ctx, "nested")
				}, ShouldNotPanic)
			})
		})

		Convey("When setting the level from a string", func() {
			Convey("Then known levels parse", func() {
				for _, level := range []string{"debug", "info", "WARN", "warning", "Error", ""} {
					So(logger.SetLevelString(level), ShouldBeNil)
				}
			})

			Convey("Then unknown levels fail", func() {
				So(logger.SetLevelString("loud"), ShouldNotBeNil)
			})
		})

		Convey("When setting the level directly", func() {
			So(func() { logger.SetLevel(slog.LevelError) }, ShouldNotPanic)
			// Restore for other tests.
			logger.SetLevel(slog.LevelInfo)
		})
	})
}

func TestFieldConstructors(t *testing.T) {
	Convey("Given the field constructors", t, func() {
		Convey("Then each carries its key and value", func() {
			So(logger.String("s", "x").Key, ShouldEqual, "s")
			So(logger.Int("i", 3).Value, ShouldEqual, 3)
			So(logger.Float64("f", 2.5).Value, ShouldEqual, 2.5)
			So(logger.Error(nil).Key, ShouldEqual, "error")
		})
	})
}
