package wallpaper

import "context"

// Recorder is a Setter that records Apply calls instead of mutating system
// state. It exists so the pipeline can be exercised on any platform and in
// tests.
type Recorder struct {
	// Applied lists the image paths Apply was called with, in order.
	Applied []string

	// Err, when set, is returned by every Apply call.
	Err error
}

// Apply records the call and returns the configured error, if any.
func (r *Recorder) Apply(_ context.Context, imagePath string) error {
	if r.Err != nil {
		return r.Err
	}
	if err := checkImageExists(imagePath); err != nil {
		return err
	}
	r.Applied = append(r.Applied, imagePath)
	return nil
}
