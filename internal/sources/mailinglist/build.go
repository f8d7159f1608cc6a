package mailinglist

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"scaleforge/internal/dedup"
	"scaleforge/internal/library"
	"scaleforge/internal/scale"
	"scaleforge/internal/textutil"
	"scaleforge/internal/validate"
)

// archiveURLFormat links back to the public rendering of the backup:
// list, topic, message anchor.
const archiveURLFormat = "https://yahootuninggroupsultimatebackup.github.io/%s/topicId_%d.html#%d"

// listOrder fixes the processing order across lists so that when the
// same scale was posted to several of them, the copy from the busiest
// list wins the fingerprint dedup.
var listOrder = map[string]int{
	"tuning":            0,
	"makemicromusic":    1,
	"tuning-math":       2,
	"metatuning":        3,
	"mills-tuning-list": 4,
	"harmonic_entropy":  5,
	"crazy_music":       6,
}

// Source extracts scl files quoted in the archived tuning list emails.
type Source struct{}

func New() *Source { return &Source{} }

func (*Source) Name() string { return "mailing-lists" }

func (*Source) Subdir() string { return "mailing-lists" }

func (s *Source) Build(ctx context.Context, env *library.Env) (*library.Result, error) {
	srcDir := filepath.Join(env.Config.Paths.SourcesDir, "YahooTuningGroupsUltimateBackup", "src")
	extractions, err := extractDir(srcDir)
	if err != nil {
		return nil, err
	}
	env.Logger.Info("scl fragments extracted", "count", len(extractions))

	sort.SliceStable(extractions, func(i, j int) bool {
		a, b := extractions[i], extractions[j]
		if a.listName != b.listName {
			return listRank(a.listName) < listRank(b.listName)
		}
		return a.msgID < b.msgID
	})

	names := library.NewFilenames()
	registry := dedup.NewRegistry()
	res := &library.Result{References: map[string]string{}}
	skipped := 0
	for _, e := range extractions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := validate.Scale(e.scale, env.Policy, env.Logger); err != nil {
			var verr *validate.Error
			if !errors.As(err, &verr) {
				return nil, err
			}
			env.Logger.Debug("extracted scale rejected",
				"list", e.listName, "msg_id", e.msgID, "reason", verr.Reason)
			skipped++
			continue
		}
		if !registry.Accept(e.scale.Fingerprint()) {
			skipped++
			continue
		}

		qualifier := fmt.Sprintf("%s_%d_%d", e.listName, e.topicID, e.msgID)
		filename, err := names.ReserveComposite(filenameFor(e.scale), qualifier)
		if err != nil {
			return nil, err
		}

		url := fmt.Sprintf(archiveURLFormat, e.listName, e.topicID, e.msgID)
		text := scale.AppendProvenance(e.scale.Raw, []string{url}, []scale.Field{
			{Key: "source", Value: "Mailing lists"},
			{Key: "file", Value: e.jsonPath},
			{Key: "topic_id", Value: fmt.Sprintf("%d", e.topicID)},
			{Key: "msg_id", Value: fmt.Sprintf("%d", e.msgID)},
		})
		if err := library.WriteScale(env.OutDir, filename, text); err != nil {
			return nil, err
		}
		res.References[filename] = url
		res.Count++
	}
	env.Logger.Info("mailing list scales written", "count", res.Count, "skipped", skipped)
	return res, nil
}

func listRank(name string) int {
	if rank, ok := listOrder[name]; ok {
		return rank
	}
	return len(listOrder)
}

// filenameFor derives the output filename from the scale's own header
// line, which conventionally quotes the original scl filename.
func filenameFor(p *scale.Parsed) string {
	first, _, _ := strings.Cut(p.Raw, "\n")
	first = strings.NewReplacer("!", "", " ", "", "=", "", "\\", "/").Replace(first)
	first = path.Base(first)
	stem, _, _ := strings.Cut(first, ".scl")
	if stem == "" || stem == "." || stem == "/" {
		stem = "scale"
	}
	return textutil.SanitizeFilename(stem) + ".scl"
}
