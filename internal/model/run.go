package model

import "time"

// Run holds the transient state of a single wallpaper update.
// Steps read the fields earlier steps filled in: the fetcher sets PageHTML,
// the extractor consumes it and sets ImageURL, the downloader sets ImagePath,
// and the wallpaper step consumes ImagePath.
type Run struct {
	// SiteURL is the APOD page this run fetches.
	SiteURL string

	// StartedAt is when the run began.
	StartedAt time.Time

	// PageHTML is the decoded text of the fetched page.
	// Discarded implicitly when the run ends; never persisted.
	PageHTML string

	// ImageURL is the resolved absolute URL of the selected image link.
	ImageURL string

	// ImagePath is the local path the image was saved to.
	ImagePath string

	// PerformedSteps lists the names of steps that completed successfully,
	// in execution order.
	PerformedSteps []string

	// StepDurations records how long each performed step took.
	StepDurations map[string]time.Duration
}

// NewRun creates a Run for the given page URL.
func NewRun(siteURL string) *Run {
	return &Run{
		SiteURL:       siteURL,
		StartedAt:     time.Now(),
		StepDurations: make(map[string]time.Duration),
	}
}

// RecordStep marks a step as performed and stores its duration.
func (r *Run) RecordStep(name string, d time.Duration) {
	r.PerformedSteps = append(r.PerformedSteps, name)
	r.StepDurations[name] = d
}

// Elapsed returns the time since the run started.
func (r *Run) Elapsed() time.Duration {
	return time.Since(r.StartedAt)
}
