// Package main provides the entry point for the apodwall CLI.
//
// apodwall downloads NASA's Astronomy Picture of the Day and sets it as the
// desktop background. It is designed to run unattended as a scheduled daily
// task.
//
// Usage:
//
//	apodwall set
//	apodwall set --verbose
//
// See --help for all available options.
package main

// main is the entry point for apodwall.
func main() {
	Execute()
}
