// Package config provides configuration structures and utilities for apodwall.
// It defines defaults for the APOD source site, per-user storage locations,
// log rotation bounds, and wallpaper display preferences.
package config
