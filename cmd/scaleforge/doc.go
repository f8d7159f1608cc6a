// Command scaleforge assembles the scale library: it runs the configured
// sources, validates and deduplicates the generated scl files, and
// rebuilds the sqlite index with its CSV export and README report.
package main
