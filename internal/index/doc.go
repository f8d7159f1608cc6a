// Package index builds the queryable catalog over an assembled scales
// tree: a SQLite table with one row per scl file, a CSV export of the
// same rows, and the README report summarizing the batch.
package index
