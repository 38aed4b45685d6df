// Package pipeline sequences the stages of one wallpaper update: fetch the
// APOD page, extract the image link, download the image, log its metadata,
// and apply it as the desktop background.
//
// Each stage is a Step executed in order against a shared model.Run. The
// pipeline stops at the first failure: a run either completes fully or
// reports the stage that broke it. There are no retries and no partial-run
// cleanup; a half-written image file is simply overwritten by the next
// successful run.
package pipeline
