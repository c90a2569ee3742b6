package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/gridironlab/playenrich/internal/domain/play"
	"github.com/gridironlab/playenrich/internal/platform/logging"
)

// ReportWriter emits enriched plays as JSON lines, one object per play.
type ReportWriter struct {
	logger *logging.Logger
}

func NewReportWriter(logger *logging.Logger) *ReportWriter {
	if logger == nil {
		logger = logging.Default()
	}
	return &ReportWriter{logger: logger}
}

// enrichedLine adds the side-relative field position for human readers;
// everything else serializes straight off the enriched play.
type enrichedLine struct {
	play.EnrichedPlay
	FieldPosition int `json:"field_position"`
}

func (w *ReportWriter) Write(ctx context.Context, out io.Writer, rows []play.EnrichedPlay) (int, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	written := 0
	for _, row := range rows {
		line := enrichedLine{
			EnrichedPlay:  row,
			FieldPosition: play.FieldPosition(row.AbsoluteYardLine),
		}

		encoded, err := sonic.Marshal(line)
		if err != nil {
			w.logger.WarnContext(ctx, "encode enriched play failed",
				"game_id", row.GameID,
				"play_id", row.PlayID,
				"error", err,
			)
			continue
		}

		buf.Reset()
		_, _ = buf.Write(encoded)
		_ = buf.WriteByte('\n')
		if _, err := out.Write(buf.Bytes()); err != nil {
			return written, fmt.Errorf("write enriched play: %w", err)
		}
		written++
	}

	return written, nil
}

func (w *ReportWriter) WriteFile(ctx context.Context, path string, rows []play.EnrichedPlay) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	written, err := w.Write(ctx, f, rows)
	if err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}

	w.logger.InfoContext(ctx, "enriched plays written", "path", path, "count", written)
	return nil
}
