package scale_test

import (
	"errors"
	"math"
	"testing"

	"scaleforge/internal/scale"
)

const sampleText = `! sample.scl
!
A 5-tone sample
 5
!
 9/8
 5/4 ! major third
 701.955
 1094.0 cents
 2/1
!
! trailing comment
!
! [info]
! source = Test
! Catalog_Index = 42
`

func TestParseSample(t *testing.T) {
	p, err := scale.Parse(sampleText)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.Description != "A 5-tone sample" {
		t.Fatalf("unexpected description %q", p.Description)
	}
	if p.Count != 5 || len(p.Tones) != 5 {
		t.Fatalf("unexpected counts: %d declared, %d parsed", p.Count, len(p.Tones))
	}
	if !p.Tones[0].IsRatio() || p.Tones[0].Num.Int64() != 9 || p.Tones[0].Den.Int64() != 8 {
		t.Fatalf("unexpected first tone: %#v", p.Tones[0])
	}
	if math.Abs(p.Tones[2].Cents-701.955) > 1e-9 {
		t.Fatalf("unexpected cents: %v", p.Tones[2].Cents)
	}
	if math.Abs(p.Tones[3].Cents-1094.0) > 1e-9 {
		t.Fatalf("cents unit marker not handled: %v", p.Tones[3].Cents)
	}
	if math.Abs(p.Period()-1200.0) > 1e-9 {
		t.Fatalf("unexpected period %v", p.Period())
	}
	if p.Just() {
		t.Fatal("scale with cent tones reported as just")
	}
}

func TestParseInfoBlock(t *testing.T) {
	p, err := scale.Parse(sampleText)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.Info["source"] != "Test" {
		t.Fatalf("unexpected info: %#v", p.Info)
	}
	// Keys are case-insensitive.
	if p.Info["catalog_index"] != "42" {
		t.Fatalf("unexpected info: %#v", p.Info)
	}
}

func TestParseInfoAbsent(t *testing.T) {
	if info := scale.ParseInfo("! a.scl\ndesc\n 0\n"); info != nil {
		t.Fatalf("expected nil info, got %#v", info)
	}
}

func TestParseIncompleteIsNotScale(t *testing.T) {
	_, err := scale.Parse("! a.scl\ndesc\n 3\n 9/8\n")
	if !errors.Is(err, scale.ErrNotScale) {
		t.Fatalf("expected ErrNotScale, got %v", err)
	}
}

func TestParseToleratesBlankLines(t *testing.T) {
	// Every rendered file ends with a newline; interior blank lines show
	// up in scales quoted in email bodies.
	p, err := scale.Parse("! a.scl\ndesc\n 2\n\n 3/2\n 2/1\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.Count != 2 || len(p.Tones) != 2 {
		t.Fatalf("unexpected counts: %d declared, %d parsed", p.Count, len(p.Tones))
	}
}

func TestParseTrailingContentRejected(t *testing.T) {
	_, err := scale.Parse("! a.scl\ndesc\n 1\n 2/1\nleftover prose\n")
	if !errors.Is(err, scale.ErrNotScale) {
		t.Fatalf("expected ErrNotScale, got %v", err)
	}
}

func TestParseLenientCountLine(t *testing.T) {
	// The count is taken atoi-style from the leading digits; rejecting
	// such files is the validator's job, not the parser's.
	p, err := scale.Parse("! a.scl\ndesc\n 1 extra words\n 2/1\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if p.Count != 1 {
		t.Fatalf("unexpected count %d", p.Count)
	}
}

func TestParseLenientToneComment(t *testing.T) {
	p, err := scale.Parse("! a.scl\ndesc\n 1\n 3/2 perfect fifth\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !p.Tones[0].IsRatio() || math.Abs(p.Tones[0].Cents-701.955) > 1e-3 {
		t.Fatalf("unexpected tone: %#v", p.Tones[0])
	}
}

func TestBaseText(t *testing.T) {
	cases := map[string]string{
		" 3/2 ! comment":  "3/2",
		" 701.955 cents":  "701.955",
		"  100.0":         "100.0",
		" 9/8 ! a ! b":    "9/8",
	}
	for in, want := range cases {
		if got := scale.BaseText(in); got != want {
			t.Fatalf("BaseText(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMaxCentsAnomaly(t *testing.T) {
	p, err := scale.Parse("! a.scl\ndesc\n 3\n 9/8\n 2/1\n 3/2\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if math.Abs(p.Period()-701.955) > 1e-3 {
		t.Fatalf("unexpected period %v", p.Period())
	}
	if math.Abs(p.MaxCents()-1200.0) > 1e-9 {
		t.Fatalf("unexpected max %v", p.MaxCents())
	}
}
