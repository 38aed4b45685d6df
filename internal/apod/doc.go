// Package apod talks to NASA's Astronomy Picture of the Day site.
// It fetches the page over plain HTTP, scans the markup for the first anchor
// whose link target contains "image", and downloads the image behind it.
//
// The link selection deliberately preserves the historical substring
// heuristic: the first href containing "image" wins, whatever else it may
// point at. A stricter rule could silently change which link is selected on
// real pages.
package apod
