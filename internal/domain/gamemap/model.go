package gamemap

import (
	"strconv"
	"strings"
)

// Mapping links a tracking-data game identifier to the provider's opaque
// game identifier, plus the game context captured at resolution time.
// Immutable once created.
type Mapping struct {
	SourceGameID   string `json:"source_game_id"`
	ExternalGameID string `json:"external_game_id"`
	Date           string `json:"date"`
	HomeTeam       string `json:"home_team"`
	HomeAbbrev     string `json:"home_team_abbrev"`
	AwayTeam       string `json:"away_team"`
	AwayAbbrev     string `json:"away_team_abbrev"`
	Stadium        string `json:"stadium"`
}

// ParseSourceGameID splits a composite source game id into its YYYYMMDD date
// and same-day sequence number. The sequence defaults to 0 when absent or
// unparseable.
func ParseSourceGameID(id string) (date string, sequence int) {
	id = strings.TrimSpace(id)
	if len(id) < 8 {
		return id, 0
	}

	date = id[:8]
	if rest := id[8:]; rest != "" {
		if n, err := strconv.Atoi(rest); err == nil {
			sequence = n
		}
	}
	return date, sequence
}
