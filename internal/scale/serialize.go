package scale

import (
	"strconv"
	"strings"

	"scaleforge/internal/textutil"
	"scaleforge/internal/tone"
)

// Builder collects everything that goes into one scl file. Render is
// deterministic; callers decide the filename before rendering because the
// canonical header line echoes it.
type Builder struct {
	Filename    string
	Description string
	Tones       []tone.Tone
	// Reference is a citation wrapped over comment lines near the end of
	// the file.
	Reference string
	// Comments are free-form comment lines placed after the tones.
	Comments []string
	// Info is the ordered [info] provenance block.
	Info []Field
}

// Render emits the canonical scl text. Tones are written in ascending
// cents order; values are padded to a common column before any inline
// comments.
func (b *Builder) Render() string {
	tones := make([]tone.Tone, len(b.Tones))
	copy(tones, b.Tones)
	tone.Sort(tones)

	pad := 0
	for _, t := range tones {
		if n := len(t.String()); n > pad {
			pad = n
		}
	}

	lines := []string{
		"! " + b.Filename,
		"!",
		b.Description,
		" " + strconv.Itoa(len(tones)),
		"!",
	}
	for _, t := range tones {
		lines = append(lines, " "+t.Line(pad+1))
	}
	if len(b.Comments) > 0 {
		lines = append(lines, "!")
		for _, c := range b.Comments {
			lines = append(lines, "! "+c)
		}
	}
	if b.Reference != "" {
		lines = append(lines, "!")
		for _, c := range textutil.Wrap(b.Reference, textutil.DefaultWrapWidth) {
			lines = append(lines, "! "+c)
		}
	}
	if len(b.Info) > 0 {
		lines = append(lines, "!", "! [info]")
		for _, f := range b.Info {
			lines = append(lines, "! "+f.Key+" = "+f.Value)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

// AppendProvenance extends raw scl text (typically extracted verbatim
// from an archive) with comment lines and an [info] block, keeping the
// original scale body untouched.
func AppendProvenance(raw string, comments []string, info []Field) string {
	lines := []string{strings.TrimRight(raw, " \t\r\n")}
	for _, c := range comments {
		lines = append(lines, "!", "! "+c)
	}
	lines = append(lines, "!", "! [info]")
	for _, f := range info {
		lines = append(lines, "! "+f.Key+" = "+f.Value)
	}
	return strings.Join(lines, "\n") + "\n"
}
