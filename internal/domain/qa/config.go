package qa

// DefaultFuzzyThreshold accepts a fuzzy candidate when its edit distance is at
// most 40% of the longer normalized length.
const DefaultFuzzyThreshold = 0.4

// Config holds runtime knobs for the QA service.
type Config struct {
	FuzzyThreshold     float64
	TopRecommendations int
}
