// Package tone models a single pitch step of a scale.
//
// A tone wraps one of three interval encodings: an exact frequency ratio,
// a cent value, or an exact rational power (used for semi-tempered
// intervals such as (4/3)^(1/10)). All encodings evaluate to cents and
// render to the canonical scl text form. Construction enforces the scale
// invariant 0 < cents <= period.
package tone
