package library_test

import (
	"context"
	"strconv"
	"testing"

	"scaleforge/internal/library"
	"scaleforge/internal/scale"
	"scaleforge/internal/testsupport"
	"scaleforge/internal/tone"
)

// fakeSource writes canonical scl files and reports whatever count and
// citation set its fields say, so tests can make it lie.
type fakeSource struct {
	name   string
	files  int
	report int
	// cite is how many files get citations; -1 means all of them.
	cite  int
	built bool
}

func (s *fakeSource) Name() string   { return s.name }
func (s *fakeSource) Subdir() string { return s.name }

func (s *fakeSource) Build(_ context.Context, env *library.Env) (*library.Result, error) {
	s.built = true
	res := &library.Result{Count: s.report, References: map[string]string{}}
	for i := 0; i < s.files; i++ {
		filename := s.name + "_" + strconv.Itoa(i) + ".scl"
		b := scale.Builder{
			Filename:    filename,
			Description: "Fixture scale " + strconv.Itoa(i),
			Tones: []tone.Tone{
				tone.Must(tone.FromRatio(3, 2)),
				tone.Must(tone.FromRatio(2, 1)),
			},
		}
		if err := library.WriteScale(env.OutDir, filename, b.Render()); err != nil {
			return nil, err
		}
		if s.cite < 0 || i < s.cite {
			res.References[filename] = "Fixture citation " + strconv.Itoa(i)
		}
	}
	return res, nil
}

func TestRunAggregatesSources(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Build.Sources = []string{"tetrachord", "damusc"}

	tet := &fakeSource{name: "tetrachord", files: 2, report: 2, cite: -1}
	dam := &fakeSource{name: "damusc", files: 3, report: 3, cite: -1}
	asm := library.NewAssembler(cfg, testsupport.Logger(), []library.Source{tet, dam})

	summary, err := asm.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Total != 5 {
		t.Fatalf("Total = %d, want 5", summary.Total)
	}
	if summary.PerSource["tetrachord"] != 2 || summary.PerSource["damusc"] != 3 {
		t.Fatalf("PerSource = %v", summary.PerSource)
	}
	if summary.RunID == "" {
		t.Fatal("missing run id")
	}
	if got := summary.References["damusc/damusc_1.scl"]; got != "Fixture citation 1" {
		t.Fatalf("reference lookup = %q", got)
	}
}

func TestRunSkipsDisabledSources(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Build.Sources = []string{"tetrachord"}

	tet := &fakeSource{name: "tetrachord", files: 1, report: 1, cite: -1}
	dam := &fakeSource{name: "damusc", files: 1, report: 1, cite: -1}
	asm := library.NewAssembler(cfg, testsupport.Logger(), []library.Source{tet, dam})

	summary, err := asm.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if dam.built {
		t.Fatal("disabled source was built")
	}
	if summary.Total != 1 {
		t.Fatalf("Total = %d, want 1", summary.Total)
	}
}

func TestRunRejectsCountMismatch(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Build.Sources = []string{"tetrachord"}

	// Writes three files but reports two, with citations matching the
	// report, so the tree sweep finds one more file than claimed.
	lying := &fakeSource{name: "tetrachord", files: 3, report: 2, cite: 2}
	asm := library.NewAssembler(cfg, testsupport.Logger(), []library.Source{lying})

	if _, err := asm.Run(context.Background()); err == nil {
		t.Fatal("count mismatch accepted")
	}
}

func TestRunRejectsMissingCitations(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Build.Sources = []string{"tetrachord"}

	src := &fakeSource{name: "tetrachord", files: 2, report: 2, cite: 1}
	asm := library.NewAssembler(cfg, testsupport.Logger(), []library.Source{src})

	if _, err := asm.Run(context.Background()); err == nil {
		t.Fatal("missing citation accepted")
	}
}

func TestRunRebuildsSubdirFromScratch(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Build.Sources = []string{"tetrachord"}

	src := &fakeSource{name: "tetrachord", files: 2, report: 2, cite: -1}
	asm := library.NewAssembler(cfg, testsupport.Logger(), []library.Source{src})
	if _, err := asm.Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}

	// A second run must not accumulate stale files.
	src.files = 1
	src.report = 1
	summary, err := asm.Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if summary.Total != 1 {
		t.Fatalf("Total after rebuild = %d, want 1", summary.Total)
	}
}
