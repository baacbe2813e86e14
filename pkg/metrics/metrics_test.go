package metrics_test

import (
	"testing"
	"time"

	metrics "github.com/okian/dugout/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRecordHelpers(t *testing.T) {
	Convey("Given the package-level metrics manager", t, func() {
		Convey("When recording pipeline activity", func() {
			So(func() {
				metrics.RecordStatLinesIngested(12)
				metrics.RecordMatchupsIngested(6)
				metrics.RecordWeekNormalized(1056)
				metrics.RecordMatchupCounted()
				metrics.RecordMatchupDuplicate()
				metrics.RecordStageDuration("normalize", 25*time.Millisecond)
				metrics.RecordPipelineRun(2 * time.Second)
				metrics.RecordPipelineError()
				metrics.RecordItemsExported("power_ranks", 12)
				metrics.RecordPageRendered()
				metrics.RecordPagePublished()
				metrics.RecordHTTPRequest("power-rankings", "GET", "200")
				metrics.RecordHTTPRequestDuration("power-rankings", "GET", 1.5)
				metrics.RecordError("http")
			}, ShouldNotPanic)

			Convey("Then the custom registry gathers them", func() {
				families, err := metrics.GetRegistry().Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)

				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["dugout_pipeline_stat_lines_ingested_total"], ShouldBeTrue)
				So(names["dugout_pipeline_stage_duration_milliseconds"], ShouldBeTrue)
				So(names["dugout_http_requests_total"], ShouldBeTrue)
			})
		})
	})
}
