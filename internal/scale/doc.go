// Package scale models a tuning scale and its canonical scl text form.
//
// The scl format is line oriented: lines starting with "!" are comments,
// the first non-comment line is the description, the second is the tone
// count, and the following non-comment lines each carry one tone as a
// ratio "n/d" or a cent value. A trailing "! [info]" comment block holds
// machine-readable provenance as "! key = value" lines.
//
// Rendering is deterministic: the same tones, description, and metadata
// always produce byte-identical text, which is what makes the validator's
// re-parse round trip checkable.
package scale
