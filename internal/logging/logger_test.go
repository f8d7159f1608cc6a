package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"scaleforge/internal/logging"
)

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("building scales", "source", "tetrachord", "count", 723)

	out := buf.String()
	if !strings.Contains(out, "INFO building scales") {
		t.Fatalf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "source=tetrachord") || !strings.Contains(out, "count=723") {
		t.Fatalf("attrs missing: %q", out)
	}
}

func TestConsoleQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("msg", "description", "Indic system of 22 s'ruti")
	if !strings.Contains(buf.String(), `description="Indic system of 22 s'ruti"`) {
		t.Fatalf("value not quoted: %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("ignored")
	logger.Warn("kept")
	out := buf.String()
	if strings.Contains(out, "ignored") || !strings.Contains(out, "kept") {
		t.Fatalf("level filtering broken: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("checked scl files", "count", 3)
	if !strings.Contains(buf.String(), `"msg":"checked scl files"`) {
		t.Fatalf("unexpected json: %q", buf.String())
	}
}

func TestUnknownFormatRejected(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("unknown format accepted")
	}
}

func TestWithAttrsCarried(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.With("run_id", "abc123").Info("start")
	if !strings.Contains(buf.String(), "run_id=abc123") {
		t.Fatalf("with-attrs lost: %q", buf.String())
	}
}
