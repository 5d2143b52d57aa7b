package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

var _ Store = (*PostgresStore)(nil)

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects a pool to connString and pings it.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// AppendFeedback stores a correction. A missing ID or Timestamp is filled in
// and written back to e.
func (s *PostgresStore) AppendFeedback(ctx context.Context, e *domain.FeedbackEntry) error {
	prepareFeedback(e)

	args := pgx.NamedArgs{
		"id":              e.ID,
		"original_input":  e.OriginalInput,
		"ai_response":     e.AIResponse,
		"user_correction": e.UserCorrection,
		"category":        string(e.Category),
		"ad_type":         string(e.AdType),
		"format_pattern":  string(e.FormatPattern),
		"created_at":      e.Timestamp,
	}
	if _, err := s.pool.Exec(ctx, queryInsertFeedback, args); err != nil {
		return fmt.Errorf("inserting feedback: %w", err)
	}
	return nil
}

// GetFeedback returns one correction by ID.
func (s *PostgresStore) GetFeedback(ctx context.Context, id string) (*domain.FeedbackEntry, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	var e domain.FeedbackEntry
	err := scanFeedback(s.pool.QueryRow(ctx, queryGetFeedback, id), &e)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting feedback %s: %w", id, err)
	}
	return &e, nil
}

// ListFeedback queries feedback with optional filters, returning one page and
// the total count.
func (s *PostgresStore) ListFeedback(
	ctx context.Context,
	q *FeedbackQuery,
) ([]domain.FeedbackEntry, int, error) {
	if q == nil {
		q = &FeedbackQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting feedback: %w", err)
	}

	entries, err := s.queryFeedback(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// ListFeedbackByCategory returns the most recent corrections for category.
func (s *PostgresStore) ListFeedbackByCategory(
	ctx context.Context,
	category domain.Category,
	limit int,
) ([]domain.FeedbackEntry, error) {
	return s.queryFeedback(ctx, queryListFeedbackByCategory, string(category), clampLimit(limit))
}

// ListRecentFeedback returns the most recent corrections of any category.
func (s *PostgresStore) ListRecentFeedback(ctx context.Context, limit int) ([]domain.FeedbackEntry, error) {
	return s.queryFeedback(ctx, queryListRecentFeedback, clampLimit(limit))
}

func (s *PostgresStore) queryFeedback(ctx context.Context, sql string, args ...any) ([]domain.FeedbackEntry, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying feedback: %w", err)
	}
	defer rows.Close()

	var entries []domain.FeedbackEntry
	for rows.Next() {
		var e domain.FeedbackEntry
		if err := scanFeedback(rows, &e); err != nil {
			return nil, fmt.Errorf("scanning feedback: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating feedback: %w", err)
	}
	return entries, nil
}

func scanFeedback(row pgx.Row, e *domain.FeedbackEntry) error {
	var category, adType, pattern string
	if err := row.Scan(
		&e.ID, &e.OriginalInput, &e.AIResponse, &e.UserCorrection,
		&category, &adType, &pattern, &e.Timestamp,
	); err != nil {
		return err
	}
	e.Category = domain.Category(category)
	e.AdType = domain.AdType(adType)
	e.FormatPattern = domain.FormatPattern(pattern)
	return nil
}

// ReplaceCatalog swaps the stored catalog for rows in one transaction,
// keeping row order.
func (s *PostgresStore) ReplaceCatalog(ctx context.Context, rows []domain.CatalogRow) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning catalog replace: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, queryDeleteCatalogRows); err != nil {
		return fmt.Errorf("clearing catalog: %w", err)
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"catalog_rows"},
		catalogCopyColumns,
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			r := rows[i]
			return []any{i, r.Name, r.Description, r.Type}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copying catalog rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing catalog replace: %w", err)
	}
	return nil
}

// ListCatalogRows returns the stored catalog in load order.
func (s *PostgresStore) ListCatalogRows(ctx context.Context) ([]domain.CatalogRow, error) {
	rows, err := s.pool.Query(ctx, queryListCatalogRows)
	if err != nil {
		return nil, fmt.Errorf("querying catalog rows: %w", err)
	}

	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.CatalogRow])
	if err != nil {
		return nil, fmt.Errorf("collecting catalog rows: %w", err)
	}
	return out, nil
}

// prepareFeedback fills the generated fields of a new entry.
func prepareFeedback(e *domain.FeedbackEntry) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	if e.Category == "" {
		e.Category = domain.CategoryOther
	}
	if e.AdType == "" {
		e.AdType = domain.AdUnknown
	}
	if e.FormatPattern == "" {
		e.FormatPattern = domain.PatternGeneric
	}
}
