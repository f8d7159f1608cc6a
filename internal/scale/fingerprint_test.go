package scale_test

import (
	"testing"

	"scaleforge/internal/scale"
	"scaleforge/internal/tone"
)

func TestFingerprintRepresentationIndependent(t *testing.T) {
	asRatios := []tone.Tone{
		tone.Must(tone.FromRatio(3, 2)),
		tone.Must(tone.FromRatio(2, 1)),
	}
	asCents := []tone.Tone{
		tone.Must(tone.FromCents(701.955)),
		tone.Must(tone.FromCents(1200.0)),
	}
	a := scale.FingerprintTones(asRatios)
	b := scale.FingerprintTones(asCents)
	if a != b {
		t.Fatalf("fingerprints differ:\n%s\n%s", a, b)
	}
	if a != "701.95500 1200.00000" {
		t.Fatalf("unexpected canonical fingerprint %q", a)
	}
}

func TestFingerprintSortsInput(t *testing.T) {
	a := scale.Fingerprint([]float64{1200, 701.955, 203.91})
	b := scale.Fingerprint([]float64{203.91, 1200, 701.955})
	if a != b {
		t.Fatalf("fingerprint depends on input order: %q vs %q", a, b)
	}
}

func TestFingerprintDistinguishesScales(t *testing.T) {
	a := scale.Fingerprint([]float64{701.955, 1200})
	b := scale.Fingerprint([]float64{701.956, 1200})
	if a == b {
		t.Fatal("distinct scales share a fingerprint")
	}
}

func TestParsedFingerprintMatchesTones(t *testing.T) {
	b := &scale.Builder{
		Filename:    "fp.scl",
		Description: "Fingerprint check",
		Tones: []tone.Tone{
			tone.Must(tone.FromRatio(3, 2)),
			tone.Must(tone.FromRatio(2, 1)),
		},
	}
	parsed, err := scale.Parse(b.Render())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got, want := parsed.Fingerprint(), scale.FingerprintTones(b.Tones); got != want {
		t.Fatalf("fingerprint drifted over serialization: %q vs %q", got, want)
	}
}
