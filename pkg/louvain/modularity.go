package louvain

// modularity scores a partition from its community degree stats. Higher
// is better; the driver only compares scores across consecutive levels,
// never interprets them absolutely.
//
// This is not Newman modularity. Each community contributes its
// externally-facing degree share (Tot-In)/m, and a constant normalization
// term degreeSum²/m² is subtracted once. The score is a monotonic
// progress signal for level acceptance, not a quality guarantee.
func modularity(communityDegrees CommunityDegrees, degreeSum float64) float64 {
	m := degreeSum / 2.0
	result := 0.0
	for _, degree := range communityDegrees {
		result += (degree.Tot - degree.In) / m
	}
	return result - (degreeSum*degreeSum)/(m*m)
}
