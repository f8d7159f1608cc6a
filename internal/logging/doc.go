// Package logging builds the slog logger used across a batch run. The
// console format is a compact timestamp/level/key=value line; json emits
// one object per record for log scraping.
package logging
