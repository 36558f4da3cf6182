package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/model"
	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/types"
)

type queryRepository struct {
	mu      sync.RWMutex
	entries map[types.ScopeKey][]*model.QueryRecord
}

func newQueryRepository() *queryRepository {
	return &queryRepository{
		entries: make(map[types.ScopeKey][]*model.QueryRecord),
	}
}

func copyQueryRecord(q *model.QueryRecord) *model.QueryRecord {
	cp := *q
	cp.Embedding = append([]float32(nil), q.Embedding...)
	return &cp
}

func (r *queryRepository) Create(ctx context.Context, record *model.QueryRecord) (*model.QueryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyQueryRecord(record)
	if created.ID == "" {
		created.ID = model.NewQueryID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	r.entries[record.ScopeKey] = append(r.entries[record.ScopeKey], created)
	return copyQueryRecord(created), nil
}

func (r *queryRepository) ListRecent(ctx context.Context, scopeKey types.ScopeKey, limit int) ([]*model.QueryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all, exists := r.entries[scopeKey]
	if !exists {
		return []*model.QueryRecord{}, nil
	}

	sorted := make([]*model.QueryRecord, len(all))
	copy(sorted, all)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}

	result := make([]*model.QueryRecord, 0, len(sorted))
	for _, q := range sorted {
		result = append(result, copyQueryRecord(q))
	}

	return result, nil
}

func (r *queryRepository) CountByScope(ctx context.Context, scopeKey types.ScopeKey) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries[scopeKey]), nil
}
