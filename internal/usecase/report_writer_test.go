package usecase

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/gridironlab/playenrich/internal/domain/play"
)

func TestReportWriter_Write(t *testing.T) {
	t.Parallel()

	rows := []play.EnrichedPlay{
		{GameID: "2023091000", PlayID: 55, AbsoluteYardLine: 42, Text: "pass deep right", MatchConfidence: 0.9},
		{GameID: "2023091000", PlayID: 56, AbsoluteYardLine: 92, MatchConfidence: 0.6},
	}

	var buf bytes.Buffer
	writer := NewReportWriter(nil)
	written, err := writer.Write(context.Background(), &buf, rows)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if written != 2 {
		t.Fatalf("expected 2 lines written, got %d", written)
	}

	scanner := bufio.NewScanner(&buf)
	lines := 0
	for scanner.Scan() {
		lines++
		var decoded map[string]any
		if err := sonic.Unmarshal(scanner.Bytes(), &decoded); err != nil {
			t.Fatalf("line %d is not valid json: %v", lines, err)
		}
		if _, ok := decoded["field_position"]; !ok {
			t.Fatalf("line %d missing field_position: %s", lines, scanner.Text())
		}
		if _, ok := decoded["match_confidence"]; !ok {
			t.Fatalf("line %d missing match_confidence: %s", lines, scanner.Text())
		}
	}
	if lines != 2 {
		t.Fatalf("expected 2 json lines, got %d", lines)
	}
}

func TestReportWriter_FieldPositionDerivation(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writer := NewReportWriter(nil)
	rows := []play.EnrichedPlay{{GameID: "2023091000", PlayID: 1, AbsoluteYardLine: 42}}
	if _, err := writer.Write(context.Background(), &buf, rows); err != nil {
		t.Fatalf("write: %v", err)
	}

	var decoded struct {
		FieldPosition int `json:"field_position"`
	}
	if err := sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.FieldPosition != 32 {
		t.Fatalf("absolute 42 must serialize as own 32, got %d", decoded.FieldPosition)
	}
}

func TestReportWriter_WriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "enriched.jsonl")
	writer := NewReportWriter(nil)
	rows := []play.EnrichedPlay{
		{GameID: "2023091000", PlayID: 1},
		{GameID: "2023091000", PlayID: 2},
	}

	if err := writer.WriteFile(context.Background(), path, rows); err != nil {
		t.Fatalf("write file: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got := strings.Count(string(raw), "\n"); got != 2 {
		t.Fatalf("expected 2 newline-terminated lines, got %d", got)
	}
}
