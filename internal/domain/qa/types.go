package qa

// Entry is a single question/answer pair in the corpus. Entries are immutable
// once loaded; corpus order is the tie-break order for fuzzy matching and the
// enumeration order for listing.
type Entry struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// MatchKind identifies which lookup stage produced the answer.
type MatchKind string

const (
	// MatchExact means the normalized query equalled a stored question.
	MatchExact MatchKind = "exacta"
	// MatchContains means one normalized string contained the other.
	MatchContains MatchKind = "contenida"
	// MatchFuzzy means the answer came from an edit-distance candidate.
	MatchFuzzy MatchKind = "aproximada"
	// MatchNone means no stage produced a hit.
	MatchNone MatchKind = "ninguna"
)

// Request encapsulates one incoming question.
type Request struct {
	Question string `json:"question"`
}

// Response is returned to the console loop and the HTTP transport.
type Response struct {
	Question        string          `json:"question"`
	Answer          string          `json:"answer"`
	MatchedQuestion string          `json:"matchedQuestion,omitempty"`
	Match           MatchKind       `json:"match"`
	Recommendations []TrendingQuery `json:"recommendations,omitempty"`
}

// TrendingQuery represents a frequently asked question.
type TrendingQuery struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}
