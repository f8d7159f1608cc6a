// Package validate re-checks serialized scales against their numeric
// intent. Every scl file written by a source is parsed back and each tone
// line is recomputed from its textual form; any divergence from the
// stored cents aborts the batch. The checks also catch two known upstream
// extraction failures: descriptions broken over two lines (which shift a
// numeric-looking line into the count position) and leftover HTML markup.
package validate
