package play

import (
	"fmt"
	"strings"
)

const (
	DirectionLeft  = "left"
	DirectionRight = "right"
)

func NormalizeDirection(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case DirectionLeft:
		return DirectionLeft
	default:
		return DirectionRight
	}
}

// SourcePlay is one tracking-derived play. GameID is the tracking provider's
// composite identifier: 8-digit date plus a 2-digit same-day sequence number.
type SourcePlay struct {
	GameID           string  `json:"game_id" validate:"required,min=8"`
	PlayID           int     `json:"play_id" validate:"gte=0"`
	AbsoluteYardLine int     `json:"absolute_yard_line" validate:"gte=0,lte=120"`
	Direction        string  `json:"play_direction" validate:"oneof=left right"`
	BallLandX        float64 `json:"ball_land_x"`
	BallLandY        float64 `json:"ball_land_y"`
	NumFrames        int     `json:"num_frames" validate:"gt=0"`
}

// Key identifies a play globally: (game_id, play_id) is unique across games.
func (p SourcePlay) Key() string {
	return fmt.Sprintf("%s:%d", p.GameID, p.PlayID)
}

// DedupeFirstWins collapses rows sharing (game_id, play_id), keeping the
// first occurrence's values. Input order is preserved.
func DedupeFirstWins(rows []SourcePlay) []SourcePlay {
	if len(rows) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(rows))
	out := make([]SourcePlay, 0, len(rows))
	for _, row := range rows {
		key := row.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, row)
	}
	return out
}

// ExternalPlay is one play-by-play entry from the provider. Down 0 means no
// down (kickoffs, penalties, administrative entries). YardLine is the
// distance from the home team's own goal line on a 0-100 scale.
type ExternalPlay struct {
	ExternalID string `json:"external_play_id"`
	Quarter    int    `json:"quarter"`
	Clock      string `json:"clock"`
	Down       int    `json:"down"`
	Distance   int    `json:"distance"`
	YardLine   int    `json:"yard_line"`
	Text       string `json:"text"`
	Type       string `json:"type"`
	Scoring    bool   `json:"scoring"`
	HomeScore  int    `json:"home_score"`
	AwayScore  int    `json:"away_score"`
}

// EnrichedPlay merges a SourcePlay with its matched provider play and the
// resolved game context. Immutable once constructed.
type EnrichedPlay struct {
	GameID           string  `json:"game_id"`
	PlayID           int     `json:"play_id"`
	AbsoluteYardLine int     `json:"absolute_yard_line"`
	Direction        string  `json:"play_direction"`
	BallLandX        float64 `json:"ball_land_x"`
	BallLandY        float64 `json:"ball_land_y"`
	NumFrames        int     `json:"num_frames"`

	ExternalGameID string `json:"external_game_id"`
	ExternalPlayID string `json:"external_play_id"`
	Quarter        int    `json:"quarter"`
	Clock          string `json:"game_clock"`
	Down           int    `json:"down"`
	Distance       int    `json:"yards_to_go"`
	Text           string `json:"play_description"`
	Type           string `json:"play_type"`
	Scoring        bool   `json:"scoring_play"`
	HomeScore      int    `json:"home_score"`
	AwayScore      int    `json:"away_score"`

	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	Stadium  string `json:"stadium"`

	MatchConfidence float64 `json:"match_confidence"`
}
