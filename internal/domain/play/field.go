package play

// The tracking field model is 0-120 with 10-yard end zones at both ends.
// The provider reports yard lines as the distance from the home team's own
// goal line (0-100). Conversion assumes the home end zone occupies absolute
// 110-120; that orientation has not been verified against provider ground
// truth, so both directions live here and nowhere else. If the assumption
// turns out wrong, fix this file and the scorer is untouched.
const (
	fieldLength          = 120
	endZoneDepth         = 10
	homeGoalLineAbsolute = fieldLength - endZoneDepth
)

// ExternalYardLine converts an absolute tracking yard line to the provider's
// home-goal-line convention.
func ExternalYardLine(absolute int) int {
	return homeGoalLineAbsolute - absolute
}

// AbsoluteYardLine is the exact inverse of ExternalYardLine.
func AbsoluteYardLine(external int) int {
	return homeGoalLineAbsolute - external
}

// FieldPosition converts an absolute yard line to the side-relative 0-50
// scale used in broadcast notation ("own 32", "opp 18").
func FieldPosition(absolute int) int {
	pos := absolute - endZoneDepth
	if pos <= 50 {
		return pos
	}
	return 100 - pos
}
