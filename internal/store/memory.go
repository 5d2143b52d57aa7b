package store

import (
	"context"
	"slices"
	"strings"
	"sync"

	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore implements Store in process memory. It is safe for concurrent
// use and loses everything on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	feedback []domain.FeedbackEntry
	catalog  []domain.CatalogRow
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Ping always succeeds.
func (*MemoryStore) Ping(context.Context) error { return nil }

// Migrate is a no-op.
func (*MemoryStore) Migrate(context.Context) error { return nil }

// AppendFeedback stores a correction. A missing ID or Timestamp is filled in
// and written back to e.
func (m *MemoryStore) AppendFeedback(_ context.Context, e *domain.FeedbackEntry) error {
	prepareFeedback(e)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.feedback = append(m.feedback, *e)
	return nil
}

// GetFeedback returns one correction by ID.
func (m *MemoryStore) GetFeedback(_ context.Context, id string) (*domain.FeedbackEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, e := range m.feedback {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

// ListFeedback applies q to the stored feedback.
func (m *MemoryStore) ListFeedback(
	_ context.Context,
	q *FeedbackQuery,
) ([]domain.FeedbackEntry, int, error) {
	if q == nil {
		q = &FeedbackQuery{}
	}

	matched := m.newestFirst(func(e domain.FeedbackEntry) bool {
		return matchesQuery(e, q)
	})

	total := len(matched)
	start := min(max(q.Offset, 0), total)
	end := min(start+clampLimit(q.Limit), total)
	return matched[start:end], total, nil
}

// ListFeedbackByCategory returns the most recent corrections for category.
func (m *MemoryStore) ListFeedbackByCategory(
	_ context.Context,
	category domain.Category,
	limit int,
) ([]domain.FeedbackEntry, error) {
	matched := m.newestFirst(func(e domain.FeedbackEntry) bool {
		return e.Category == category
	})
	return truncate(matched, clampLimit(limit)), nil
}

// ListRecentFeedback returns the most recent corrections of any category.
func (m *MemoryStore) ListRecentFeedback(_ context.Context, limit int) ([]domain.FeedbackEntry, error) {
	matched := m.newestFirst(func(domain.FeedbackEntry) bool { return true })
	return truncate(matched, clampLimit(limit)), nil
}

// ReplaceCatalog swaps the stored catalog for a copy of rows.
func (m *MemoryStore) ReplaceCatalog(_ context.Context, rows []domain.CatalogRow) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.catalog = slices.Clone(rows)
	return nil
}

// ListCatalogRows returns a copy of the stored catalog.
func (m *MemoryStore) ListCatalogRows(context.Context) ([]domain.CatalogRow, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.catalog), nil
}

// newestFirst returns the entries accepted by keep ordered by timestamp,
// newest first, with later appends winning ties.
func (m *MemoryStore) newestFirst(keep func(domain.FeedbackEntry) bool) []domain.FeedbackEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.FeedbackEntry, 0, len(m.feedback))
	for i := len(m.feedback) - 1; i >= 0; i-- {
		if keep(m.feedback[i]) {
			out = append(out, m.feedback[i])
		}
	}
	slices.SortStableFunc(out, func(a, b domain.FeedbackEntry) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return out
}

func matchesQuery(e domain.FeedbackEntry, q *FeedbackQuery) bool {
	if q.Category != nil && string(e.Category) != *q.Category {
		return false
	}
	if q.AdType != nil && string(e.AdType) != *q.AdType {
		return false
	}
	if q.FormatPattern != nil && string(e.FormatPattern) != *q.FormatPattern {
		return false
	}
	if q.Since != nil && e.Timestamp.Before(*q.Since) {
		return false
	}
	if q.Search != nil {
		term := strings.ToLower(strings.TrimSpace(*q.Search))
		if term != "" &&
			!strings.Contains(strings.ToLower(e.OriginalInput), term) &&
			!strings.Contains(strings.ToLower(e.UserCorrection), term) {
			return false
		}
	}
	return true
}

func truncate(entries []domain.FeedbackEntry, n int) []domain.FeedbackEntry {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}
