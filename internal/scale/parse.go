package scale

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"os"
	"strconv"
	"strings"
)

// ErrNotScale reports text that does not form a complete scl scale. The
// mailing-list extractor grows a candidate window line by line until this
// error stops occurring.
var ErrNotScale = errors.New("not a complete scl scale")

// Parse reads scl text back into a Parsed scale. Parsing is deliberately
// lenient, matching the tuning software this format targets: the count
// and tone values are taken from the leading numeric token of each line.
// The strict checks live in the validate package.
func Parse(text string) (*Parsed, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	p := &Parsed{Raw: text}
	sawDescription := false
	sawCount := false
	for _, line := range lines {
		if strings.HasPrefix(line, "!") {
			continue
		}
		// Rendered files end with a newline and archive extracts may
		// carry stray blank lines; neither is content.
		if strings.TrimSpace(line) == "" {
			continue
		}
		switch {
		case !sawDescription:
			p.Description = strings.TrimSpace(line)
			sawDescription = true
		case !sawCount:
			count, ok := leadingInt(strings.TrimSpace(line))
			if !ok || count < 0 {
				return nil, fmt.Errorf("%w: bad count line %q", ErrNotScale, line)
			}
			p.Count = count
			sawCount = true
		case len(p.Tones) < p.Count:
			t, err := parseToneLine(line)
			if err != nil {
				return nil, err
			}
			p.Tones = append(p.Tones, t)
		default:
			return nil, fmt.Errorf("%w: unexpected content after %d tones: %q", ErrNotScale, p.Count, line)
		}
	}
	if !sawCount || len(p.Tones) < p.Count {
		return nil, fmt.Errorf("%w: want %d tones, found %d", ErrNotScale, p.Count, len(p.Tones))
	}
	p.Info = ParseInfo(text)
	return p, nil
}

// ParseFile reads and parses one scl file.
func ParseFile(path string) (*Parsed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scale: %w", err)
	}
	p, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}

// ParseInfo extracts the trailing "! [info]" comment block as a
// key/value map with lowercased keys. Returns nil when no block exists.
func ParseInfo(text string) map[string]string {
	started := false
	var info map[string]string
	for _, line := range strings.Split(text, "\n") {
		stripped := strings.TrimSpace(strings.ReplaceAll(line, "!", ""))
		if !started {
			if stripped == "[info]" {
				started = true
				info = map[string]string{}
			}
			continue
		}
		key, value, ok := strings.Cut(stripped, "=")
		if !ok {
			continue
		}
		info[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	return info
}

func parseToneLine(line string) (ParsedTone, error) {
	t := ParsedTone{Text: line}
	token := leadingNumericToken(BaseText(line))
	if token == "" {
		return t, fmt.Errorf("%w: bad tone line %q", ErrNotScale, line)
	}

	if strings.Contains(token, ".") && !strings.Contains(token, "/") {
		cents, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return t, fmt.Errorf("%w: bad cents value %q", ErrNotScale, token)
		}
		t.Cents = cents
		return t, nil
	}

	numText, denText, isRatio := strings.Cut(token, "/")
	num, ok := new(big.Int).SetString(numText, 10)
	if !ok {
		return t, fmt.Errorf("%w: bad ratio %q", ErrNotScale, token)
	}
	den := big.NewInt(1)
	if isRatio {
		if den, ok = new(big.Int).SetString(denText, 10); !ok {
			return t, fmt.Errorf("%w: bad ratio %q", ErrNotScale, token)
		}
	}
	if num.Sign() <= 0 || den.Sign() <= 0 {
		return t, fmt.Errorf("%w: non-positive ratio %q", ErrNotScale, token)
	}
	f, _ := new(big.Rat).SetFrac(num, den).Float64()
	t.Cents = 1200 * math.Log2(f)
	t.Num = num
	t.Den = den
	return t, nil
}

// leadingInt parses the leading base-10 integer of s, atoi style.
func leadingInt(s string) (int, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, false
	}
	return n, true
}

// leadingNumericToken takes the leading run of ratio/cents characters.
func leadingNumericToken(s string) string {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '/' || c == '.' || c == '-' || c == '+' {
			i++
			continue
		}
		break
	}
	return s[:i]
}
