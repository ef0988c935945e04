package qa

import "context"

// Store persists query statistics used for trending recommendations.
// Implementations must tolerate concurrent callers from the HTTP transport.
type Store interface {
	IncrementQuery(ctx context.Context, canonical, display string) error
	TopQueries(ctx context.Context, limit int) ([]TrendingQuery, error)
}
