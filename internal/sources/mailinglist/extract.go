package mailinglist

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"io/fs"
	"mime/quotedprintable"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"scaleforge/internal/scale"
)

// message is one archived email, as stored in the backup's JSON dumps.
type message struct {
	RawEmail string      `json:"rawEmail"`
	MsgID    json.Number `json:"msgId"`
	TopicID  json.Number `json:"topicId"`
}

// extraction is one scl fragment found in a message.
type extraction struct {
	scale    *scale.Parsed
	listName string
	jsonPath string
	msgID    int64
	topicID  int64
}

// sclStart marks lines that may open a quoted scl file.
var sclStart = regexp.MustCompile(`.*!.*scl.*`)

// extractDir walks the archive's JSON message dumps and pulls every
// parseable scl fragment out of the email bodies.
func extractDir(srcDir string) ([]extraction, error) {
	var out []extraction
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.Contains(d.Name(), "messages") || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var messages []message
		if err := json.Unmarshal(data, &messages); err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		listName := filepath.Base(filepath.Dir(filepath.Dir(path)))

		for _, m := range messages {
			if m.RawEmail == "" {
				continue
			}
			msgID, err := m.MsgID.Int64()
			if err != nil {
				return fmt.Errorf("%s: bad msgId %q", path, m.MsgID)
			}
			topicID, err := m.TopicID.Int64()
			if err != nil {
				return fmt.Errorf("%s: bad topicId %q", path, m.TopicID)
			}
			for _, parsed := range extractScales(cleanEmail(m.RawEmail)) {
				out = append(out, extraction{
					scale:    parsed,
					listName: listName,
					jsonPath: filepath.ToSlash(rel),
					msgID:    msgID,
					topicID:  topicID,
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// cleanEmail undoes the archive's transport encodings: quoted-printable,
// 8-bit charsets, HTML entities, and stray <br> tags.
func cleanEmail(raw string) string {
	decoded, err := io.ReadAll(quotedprintable.NewReader(strings.NewReader(raw)))
	if err != nil {
		decoded = []byte(raw)
	}

	text := string(decoded)
	if !utf8.Valid(decoded) {
		// Pre-unicode list traffic is almost always Latin-1.
		if latin, err := charmap.ISO8859_1.NewDecoder().Bytes(decoded); err == nil {
			text = string(latin)
		}
	}

	text = html.UnescapeString(text)
	return strings.ReplaceAll(text, "<br>", "")
}

// extractScales finds every scl fragment in an email body. From each
// candidate start line the parse window grows until the text parses as
// a complete scale, then swallows any trailing comment lines.
func extractScales(body string) []*scale.Parsed {
	lines := strings.Split(body, "\n")
	var out []*scale.Parsed
	for start, line := range lines {
		if !sclStart.MatchString(line) {
			continue
		}
		end := -1
		for i := start + 1; i <= len(lines); i++ {
			if _, err := scale.Parse(strings.Join(lines[start:i], "\n")); err == nil {
				end = i
				break
			}
		}
		if end < 0 {
			continue
		}
		for end < len(lines) && strings.HasPrefix(lines[end], "!") {
			end++
		}
		parsed, err := scale.Parse(strings.Join(lines[start:end], "\n"))
		if err != nil {
			continue
		}
		out = append(out, parsed)
	}
	return out
}
