package model

import (
	"testing"
	"time"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("NewRun records the site URL and start time", func(t *testing.T) {
		t.Parallel()
		run := NewRun("http://apod.nasa.gov/apod/")

		if run.SiteURL != "http://apod.nasa.gov/apod/" {
			t.Errorf("expected site URL set, got %q", run.SiteURL)
		}
		if run.StartedAt.IsZero() {
			t.Error("expected start time set")
		}
		if len(run.PerformedSteps) != 0 {
			t.Errorf("expected no performed steps, got %v", run.PerformedSteps)
		}
	})

	t.Run("RecordStep appends in order with durations", func(t *testing.T) {
		t.Parallel()
		run := NewRun("http://apod.nasa.gov/apod/")

		run.RecordStep("fetch_page", 120*time.Millisecond)
		run.RecordStep("extract_image_url", time.Millisecond)

		if len(run.PerformedSteps) != 2 {
			t.Fatalf("expected 2 performed steps, got %d", len(run.PerformedSteps))
		}
		if run.PerformedSteps[0] != "fetch_page" || run.PerformedSteps[1] != "extract_image_url" {
			t.Errorf("expected steps in execution order, got %v", run.PerformedSteps)
		}
		if run.StepDurations["fetch_page"] != 120*time.Millisecond {
			t.Errorf("expected recorded duration, got %v", run.StepDurations["fetch_page"])
		}
	})

	t.Run("Elapsed grows over time", func(t *testing.T) {
		t.Parallel()
		run := NewRun("http://apod.nasa.gov/apod/")
		if run.Elapsed() < 0 {
			t.Error("expected non-negative elapsed time")
		}
	})
}
