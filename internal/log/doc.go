// Package log provides the logging setup for apodwall, built on top of the
// standard slog package.
//
// Two sinks are configured:
//   - A console handler on stderr with colorized level names. It shows
//     informational messages and above, or debug detail with --verbose.
//   - A size-bounded rotating file under the storage directory's logs
//     subdirectory. The file always records debug-level detail so a failed
//     scheduled run can be diagnosed after the fact.
//
// Rotation renames the active file into numbered backups (apodwall.log.1 is
// the most recent) and retains a bounded number of them.
package log
