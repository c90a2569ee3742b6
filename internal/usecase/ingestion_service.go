package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gridironlab/playenrich/internal/domain/play"
	"github.com/gridironlab/playenrich/internal/platform/logging"
)

// Tracking CSV column names. Header order is flexible; extra columns are
// ignored.
const (
	columnGameID        = "game_id"
	columnPlayID        = "play_id"
	columnYardLine      = "absolute_yardline_number"
	columnPlayDirection = "play_direction"
	columnBallLandX     = "ball_land_x"
	columnBallLandY     = "ball_land_y"
	columnNumFrames     = "num_frames_output"
)

// IngestionService turns raw tracking CSV rows into validated, deduplicated
// SourcePlay records. A malformed row fails individually, never the batch.
type IngestionService struct {
	validate *validator.Validate
	logger   *logging.Logger
}

func NewIngestionService(logger *logging.Logger) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestionService{
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *IngestionService) ReadTrackingFile(ctx context.Context, path string) ([]play.SourcePlay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tracking file: %w", err)
	}
	defer f.Close()

	rows, err := s.ReadTracking(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("read tracking file %s: %w", path, err)
	}
	return rows, nil
}

// ReadTracking parses the CSV stream, validates each row and dedupes
// first-wins by (game_id, play_id).
func (s *IngestionService) ReadTracking(ctx context.Context, r io.Reader) ([]play.SourcePlay, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: read csv header: %v", ErrInvalidInput, err)
	}

	columns, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	out := make([]play.SourcePlay, 0, 256)
	line := 1
	skipped := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			skipped++
			s.logger.WarnContext(ctx, "skip malformed csv row", "line", line, "error", err)
			continue
		}

		row, err := parseTrackingRow(columns, record)
		if err == nil {
			err = s.validate.StructCtx(ctx, row)
		}
		if err != nil {
			skipped++
			s.logger.WarnContext(ctx, "skip invalid tracking row", "line", line, "error", err)
			continue
		}

		out = append(out, row)
	}

	before := len(out)
	out = play.DedupeFirstWins(out)
	s.logger.InfoContext(ctx, "tracking rows ingested",
		"plays", len(out),
		"duplicates", before-len(out),
		"skipped", skipped,
	)
	return out, nil
}

type columnIndex struct {
	gameID    int
	playID    int
	yardLine  int
	direction int
	ballLandX int
	ballLandY int
	numFrames int
}

func resolveColumns(header []string) (columnIndex, error) {
	byName := make(map[string]int, len(header))
	for idx, name := range header {
		byName[strings.ToLower(strings.TrimSpace(name))] = idx
	}

	idx := columnIndex{gameID: -1, playID: -1, yardLine: -1, direction: -1, ballLandX: -1, ballLandY: -1, numFrames: -1}
	required := map[string]*int{
		columnGameID:        &idx.gameID,
		columnPlayID:        &idx.playID,
		columnYardLine:      &idx.yardLine,
		columnPlayDirection: &idx.direction,
	}
	optional := map[string]*int{
		columnBallLandX: &idx.ballLandX,
		columnBallLandY: &idx.ballLandY,
		columnNumFrames: &idx.numFrames,
	}

	for name, dst := range required {
		pos, ok := byName[name]
		if !ok {
			return columnIndex{}, fmt.Errorf("%w: tracking csv is missing column %q", ErrInvalidInput, name)
		}
		*dst = pos
	}
	for name, dst := range optional {
		if pos, ok := byName[name]; ok {
			*dst = pos
		}
	}
	return idx, nil
}

func parseTrackingRow(columns columnIndex, record []string) (play.SourcePlay, error) {
	field := func(pos int) string {
		if pos < 0 || pos >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[pos])
	}

	playID, err := strconv.Atoi(field(columns.playID))
	if err != nil {
		return play.SourcePlay{}, fmt.Errorf("parse play_id %q: %w", field(columns.playID), err)
	}
	yardLine, err := strconv.Atoi(field(columns.yardLine))
	if err != nil {
		return play.SourcePlay{}, fmt.Errorf("parse absolute_yardline_number %q: %w", field(columns.yardLine), err)
	}

	// Landing coordinates exist only for pass plays; missing values stay 0.
	ballLandX := parseFloatDefault(field(columns.ballLandX))
	ballLandY := parseFloatDefault(field(columns.ballLandY))

	numFrames := 1
	if raw := field(columns.numFrames); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return play.SourcePlay{}, fmt.Errorf("parse num_frames_output %q: %w", raw, err)
		}
		numFrames = parsed
	}

	return play.SourcePlay{
		GameID:           field(columns.gameID),
		PlayID:           playID,
		AbsoluteYardLine: yardLine,
		Direction:        play.NormalizeDirection(field(columns.direction)),
		BallLandX:        ballLandX,
		BallLandY:        ballLandY,
		NumFrames:        numFrames,
	}, nil
}

func parseFloatDefault(raw string) float64 {
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}
