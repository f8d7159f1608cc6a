// Package xenharmonikon emits scales published in the Xenharmonikon
// journal. Each piece is registered with its author, journal issue, and
// article title; the tone sets come in several constructions: literal
// ratio lists, combination-product sets reduced into the octave,
// cumulative step products, cumulative cent sums cross-checked against
// the printed note values, and monochord string lengths.
package xenharmonikon
