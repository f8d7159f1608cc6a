package damusc

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"scaleforge/internal/dedup"
	"scaleforge/internal/library"
	"scaleforge/internal/scale"
	"scaleforge/internal/textutil"
	"scaleforge/internal/tone"
)

// rechberger marks the secondary source whose copies lose to the
// original field measurements when a scale appears twice.
const rechberger = "Rechberger"

// candidate is one measured scale ready to write, pending dedup.
type candidate struct {
	filename    string
	text        string
	reference   string
	fingerprint string
}

// Source emits the DaMuSc measured scales.
type Source struct{}

func New() *Source { return &Source{} }

func (*Source) Name() string { return "damusc" }

func (*Source) Subdir() string { return "database-of-musical-scales" }

func (s *Source) Build(ctx context.Context, env *library.Env) (*library.Result, error) {
	dir := filepath.Join(env.Config.Paths.SourcesDir, "DaMuSc")
	measured, err := readTable(filepath.Join(dir, "Data", "measured_scales.csv"))
	if err != nil {
		return nil, err
	}
	sources, err := readTable(filepath.Join(dir, "MetaData", "sources.csv"))
	if err != nil {
		return nil, err
	}

	knownRefs := map[string]bool{}
	for _, row := range sources.rows {
		id, err := sources.get(row, "RefID")
		if err != nil {
			return nil, err
		}
		knownRefs[id] = true
	}

	rows := append([]map[string]string{}, measured.rows...)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i]["MeasuredID"] < rows[j]["MeasuredID"]
	})

	names := library.NewFilenames()
	byFingerprint := map[string][]candidate{}
	var order []string
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, err := buildCandidate(measured, row, knownRefs, names)
		if err != nil {
			return nil, err
		}
		if _, seen := byFingerprint[c.fingerprint]; !seen {
			order = append(order, c.fingerprint)
		}
		byFingerprint[c.fingerprint] = append(byFingerprint[c.fingerprint], c)
	}

	res := &library.Result{References: map[string]string{}}
	for _, fp := range order {
		group := byFingerprint[fp]
		winner, err := dedup.Resolve(group, func(c candidate) bool {
			return !strings.Contains(c.reference, rechberger)
		})
		if err != nil {
			return nil, fmt.Errorf("duplicate measured scales %v: %w", filenames(group), err)
		}
		if len(group) > 1 {
			env.Logger.Debug("duplicate measured scales", "kept", winner.filename, "group", filenames(group))
		}
		if err := library.WriteScale(env.OutDir, winner.filename, winner.text); err != nil {
			return nil, err
		}
		res.References[winner.filename] = winner.reference
		res.Count++
	}
	env.Logger.Info("measured scales written", "count", res.Count, "candidates", len(rows))
	return res, nil
}

func buildCandidate(t *table, row map[string]string, knownRefs map[string]bool, names *library.Filenames) (candidate, error) {
	measuredID, err := t.get(row, "MeasuredID")
	if err != nil {
		return candidate{}, err
	}
	fail := func(err error) (candidate, error) {
		return candidate{}, fmt.Errorf("measured scale %s: %w", measuredID, err)
	}

	refID, err := t.get(row, "RefID")
	if err != nil {
		return fail(err)
	}
	if !knownRefs[refID] {
		return fail(fmt.Errorf("RefID %q not in sources.csv", refID))
	}
	reference, err := t.get(row, "Reference")
	if err != nil {
		return fail(err)
	}
	if reference == "" {
		return fail(fmt.Errorf("empty reference"))
	}

	intervals, err := t.get(row, "Intervals")
	if err != nil {
		return fail(err)
	}
	var cumulative []float64
	sum := 0.0
	for _, step := range strings.Split(intervals, ";") {
		v, err := strconv.ParseFloat(strings.TrimSpace(step), 64)
		if err != nil {
			return fail(fmt.Errorf("bad interval %q", step))
		}
		sum += v
		cumulative = append(cumulative, sum)
	}
	// Measured octaves are often stretched past 1200 cents; the period
	// follows the instrument, not the theoretical octave.
	period := math.Max(sum, tone.DefaultPeriod)

	var tones []tone.Tone
	for _, cents := range cumulative {
		tn, err := tone.FromCents(cents, tone.WithPeriod(period))
		if err != nil {
			return fail(err)
		}
		tones = append(tones, tn)
	}

	if row["Octave_modified"] == "Y" {
		tn, err := tone.FromCents(1200.0, tone.WithComment("Octave added to measured scale"), tone.WithPeriod(period))
		if err != nil {
			return fail(err)
		}
		tones = append(tones, tn)
	}

	country := strings.NewReplacer(".", "", " ", "").Replace(row["Country"])
	base := textutil.SanitizeFilename(country + "_" + row["Name"] + ".scl")
	filename := names.ReserveNumbered(base)

	b := scale.Builder{
		Filename:    filename,
		Description: fmt.Sprintf("Measured scale %s in DaMuSc", measuredID),
		Tones:       tones,
		Reference:   reference,
		Info: []scale.Field{
			{Key: "source", Value: "DaMuSc"},
			{Key: "measured_id", Value: measuredID},
			{Key: "ref_id", Value: refID},
		},
	}
	return candidate{
		filename:    filename,
		text:        b.Render(),
		reference:   reference,
		fingerprint: scale.FingerprintTones(tones),
	}, nil
}

func filenames(group []candidate) []string {
	out := make([]string, len(group))
	for i, c := range group {
		out[i] = c.filename
	}
	return out
}
