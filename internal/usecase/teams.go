package usecase

import "strings"

// teamAliases maps full franchise names, legacy abbreviations and
// relocated-franchise codes to the current 2-3 letter abbreviation.
var teamAliases = map[string]string{
	"Arizona Cardinals":     "ARI",
	"Atlanta Falcons":       "ATL",
	"Baltimore Ravens":      "BAL",
	"Buffalo Bills":         "BUF",
	"Carolina Panthers":     "CAR",
	"Chicago Bears":         "CHI",
	"Cincinnati Bengals":    "CIN",
	"Cleveland Browns":      "CLE",
	"Dallas Cowboys":        "DAL",
	"Denver Broncos":        "DEN",
	"Detroit Lions":         "DET",
	"Green Bay Packers":     "GB",
	"Houston Texans":        "HOU",
	"Indianapolis Colts":    "IND",
	"Jacksonville Jaguars":  "JAX",
	"Kansas City Chiefs":    "KC",
	"Las Vegas Raiders":     "LV",
	"Los Angeles Chargers":  "LAC",
	"Los Angeles Rams":      "LAR",
	"Miami Dolphins":        "MIA",
	"Minnesota Vikings":     "MIN",
	"New England Patriots":  "NE",
	"New Orleans Saints":    "NO",
	"New York Giants":       "NYG",
	"New York Jets":         "NYJ",
	"Philadelphia Eagles":   "PHI",
	"Pittsburgh Steelers":   "PIT",
	"San Francisco 49ers":   "SF",
	"Seattle Seahawks":      "SEA",
	"Tampa Bay Buccaneers":  "TB",
	"Tennessee Titans":      "TEN",
	"Washington Commanders": "WAS",

	// Alternative and pre-relocation abbreviations.
	"JAC": "JAX",
	"LA":  "LAR",
	"OAK": "LV",
	"SD":  "LAC",
	"STL": "LAR",
	"WSH": "WAS",
}

// NormalizeTeam resolves a team name or abbreviation to the canonical
// abbreviation. Unrecognized names fall back to their own uppercase
// 3-letter prefix, which keeps unknown-vs-unknown comparisons stable.
func NormalizeTeam(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	if abbrev, ok := teamAliases[strings.ToUpper(name)]; ok {
		return abbrev
	}
	if abbrev, ok := teamAliases[name]; ok {
		return abbrev
	}

	upper := strings.ToUpper(name)
	if len(upper) > 3 {
		upper = upper[:3]
	}
	return upper
}
