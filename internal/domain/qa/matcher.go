package qa

import (
	"strings"
	"unicode/utf8"
)

const (
	// ApproxSuffix marks answers selected by edit distance rather than an
	// exact or containment hit.
	ApproxSuffix = "\n\n(Respuesta aproximada basada en coincidencia de texto)"
	// NotFoundMessage is the only user-visible failure mode of a lookup.
	NotFoundMessage = "No encontré una respuesta precisa — intenta escribir la pregunta con más palabras clave."
)

// Match describes the outcome of a corpus lookup.
type Match struct {
	Index    int
	Entry    Entry
	Kind     MatchKind
	Distance int
}

// FindAnswer resolves a query against the corpus using the default fuzzy
// threshold. The result is always a defined string: a stored answer, a stored
// answer with ApproxSuffix appended, or NotFoundMessage. Never panics; an
// empty corpus and an empty query are both valid inputs.
func FindAnswer(corpus []Entry, query string) string {
	return findAnswer(corpus, query, DefaultFuzzyThreshold)
}

func findAnswer(corpus []Entry, query string, threshold float64) string {
	m := match(corpus, query, threshold)
	switch m.Kind {
	case MatchExact, MatchContains:
		return m.Entry.Answer
	case MatchFuzzy:
		return m.Entry.Answer + ApproxSuffix
	default:
		return NotFoundMessage
	}
}

// match runs the three stages in strict order; the first stage that produces
// a hit wins. Each stage scans the corpus from the start so that the earliest
// entry always takes precedence.
func match(corpus []Entry, query string, threshold float64) Match {
	normalizedQuery := Normalize(query)
	normalizedQuestions := make([]string, len(corpus))
	for i, entry := range corpus {
		normalizedQuestions[i] = Normalize(entry.Question)
	}

	// Stage 1: exact normalized equality.
	for i, question := range normalizedQuestions {
		if question == normalizedQuery {
			return Match{Index: i, Entry: corpus[i], Kind: MatchExact}
		}
	}

	// Stage 2: containment in either direction. Deliberately crude: a short
	// query can match many entries, and an empty normalized query is
	// contained in everything, so it matches the first entry here.
	for i, question := range normalizedQuestions {
		if strings.Contains(question, normalizedQuery) || strings.Contains(normalizedQuery, question) {
			return Match{Index: i, Entry: corpus[i], Kind: MatchContains}
		}
	}

	// Stage 3: minimum edit distance, earliest index wins ties.
	bestIdx := -1
	bestDistance := 0
	for i, question := range normalizedQuestions {
		distance := Levenshtein(normalizedQuery, question)
		if bestIdx < 0 || distance < bestDistance {
			bestIdx = i
			bestDistance = distance
		}
	}
	if bestIdx < 0 {
		return Match{Index: -1, Kind: MatchNone}
	}

	targetLen := utf8.RuneCountInString(normalizedQuestions[bestIdx])
	if queryLen := utf8.RuneCountInString(normalizedQuery); queryLen > targetLen {
		targetLen = queryLen
	}
	if targetLen > 0 && float64(bestDistance) <= float64(targetLen)*threshold {
		return Match{Index: bestIdx, Entry: corpus[bestIdx], Kind: MatchFuzzy, Distance: bestDistance}
	}

	return Match{Index: -1, Kind: MatchNone, Distance: bestDistance}
}
