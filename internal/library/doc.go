// Package library orchestrates a batch run: it locks the output tree,
// runs each configured source to completion in order, cross-checks the
// per-source counts against a full re-validation of the tree, and
// collects the citation map the index builder consumes. Batches are
// synchronous and fail fast; a failure anywhere aborts the whole run.
package library
