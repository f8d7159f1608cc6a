package scale_test

import (
	"strings"
	"testing"

	"scaleforge/internal/scale"
	"scaleforge/internal/tone"
)

func testBuilder() *scale.Builder {
	return &scale.Builder{
		Filename:    "test.scl",
		Description: "Test scale",
		Tones: []tone.Tone{
			tone.Must(tone.FromRatio(2, 1, tone.WithComment("octave"))),
			tone.Must(tone.FromRatio(9, 8)),
			tone.Must(tone.FromRatio(3, 2)),
		},
		Info: []scale.Field{{Key: "source", Value: "Test"}},
	}
}

func TestRenderCanonicalForm(t *testing.T) {
	got := testBuilder().Render()
	want := strings.Join([]string{
		"! test.scl",
		"!",
		"Test scale",
		" 3",
		"!",
		" 9/8",
		" 3/2",
		" 2/1 ! octave",
		"!",
		"! [info]",
		"! source = Test",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("unexpected render:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderDeterministic(t *testing.T) {
	a := testBuilder().Render()
	b := testBuilder().Render()
	if a != b {
		t.Fatal("render is not deterministic")
	}
}

func TestRenderSortsTones(t *testing.T) {
	b := testBuilder()
	got := b.Render()
	fifth := strings.Index(got, "3/2")
	octave := strings.Index(got, "2/1")
	if fifth == -1 || octave == -1 || fifth > octave {
		t.Fatalf("tones not in ascending order:\n%s", got)
	}
}

func TestRenderWrapsReference(t *testing.T) {
	b := testBuilder()
	b.Reference = strings.Repeat("reference word ", 12)
	got := b.Render()
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 2+70 {
			t.Fatalf("reference line too long: %q", line)
		}
	}
	if !strings.Contains(got, "! reference word") {
		t.Fatalf("reference missing:\n%s", got)
	}
}

func TestRenderRoundTrips(t *testing.T) {
	b := testBuilder()
	b.Comments = []string{"A comment line"}
	b.Reference = "Author, Title, Journal 1 (1974)"
	text := b.Render()

	parsed, err := scale.Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if parsed.Description != "Test scale" {
		t.Fatalf("unexpected description %q", parsed.Description)
	}
	if parsed.Count != 3 || len(parsed.Tones) != 3 {
		t.Fatalf("unexpected tone count %d/%d", parsed.Count, len(parsed.Tones))
	}
	if parsed.Info["source"] != "Test" {
		t.Fatalf("info block lost: %#v", parsed.Info)
	}
}

func TestAppendProvenance(t *testing.T) {
	raw := "! secor17w.scl\n!\nGeorge Secor's 17-tone well temperament\n 2\n!\n 9/8\n 2/1\n"
	text := scale.AppendProvenance(raw,
		[]string{"https://example.org/archive#123"},
		[]scale.Field{{Key: "source", Value: "Mailing lists"}, {Key: "msg_id", Value: "123"}},
	)
	parsed, err := scale.Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if parsed.Info["msg_id"] != "123" {
		t.Fatalf("info block missing: %#v", parsed.Info)
	}
	if !strings.HasPrefix(text, "! secor17w.scl\n") {
		t.Fatalf("original body disturbed:\n%s", text)
	}
	if strings.Contains(text, "\n\n") {
		t.Fatalf("blank line introduced:\n%s", text)
	}
}
