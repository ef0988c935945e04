package corpus

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brainsacos-ui/asistente-linux/internal/domain/qa"
	apperrors "github.com/brainsacos-ui/asistente-linux/pkg/errors"
)

// PostgresSource loads the corpus from a qa_entries table using pgx. Row
// order follows the position column: corpus order is significant for matching
// and listing, so the query must stay deterministic.
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource constructs the source.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// Load fetches all entries in position order.
func (s *PostgresSource) Load(ctx context.Context) ([]qa.Entry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT question, answer
		FROM qa_entries
		ORDER BY position, id
	`)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCorpusError, "query qa_entries", err)
	}
	defer rows.Close()

	var entries []qa.Entry
	for rows.Next() {
		var entry qa.Entry
		if err := rows.Scan(&entry.Question, &entry.Answer); err != nil {
			return nil, apperrors.Wrap(apperrors.CodeCorpusError, "scan qa_entries row", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCorpusError, "iterate qa_entries", err)
	}
	return entries, nil
}
