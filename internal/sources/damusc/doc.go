// Package damusc ingests measured scales from DaMuSc, the database of
// musical scales (https://github.com/jomimc/DaMuSc). Step intervals are
// summed into cumulative cents, scales measured without their octave
// get one appended, and scales duplicated between Rechberger and the
// original field source collapse to the original.
package damusc
