package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/interfaces"
	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/model"
	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/types"
)

type procedureRepository struct {
	mu      sync.RWMutex
	entries map[types.ScopeKey]*model.Procedure
}

func newProcedureRepository() *procedureRepository {
	return &procedureRepository{
		entries: make(map[types.ScopeKey]*model.Procedure),
	}
}

func copyProcedure(p *model.Procedure) *model.Procedure {
	cp := *p
	cp.CommonOperations = append([]string(nil), p.CommonOperations...)
	return &cp
}

func (r *procedureRepository) Get(ctx context.Context, scopeKey types.ScopeKey) (*model.Procedure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.entries[scopeKey]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "procedure not found", goerr.V("scope_key", scopeKey))
	}

	return copyProcedure(p), nil
}

func (r *procedureRepository) Put(ctx context.Context, procedure *model.Procedure) error {
	if err := procedure.Validate(); err != nil {
		return goerr.Wrap(err, "invalid procedure")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyProcedure(procedure)
	now := time.Now().UTC()
	if prev, exists := r.entries[procedure.ScopeKey]; exists {
		stored.CreatedAt = prev.CreatedAt
	} else {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now

	r.entries[procedure.ScopeKey] = stored
	return nil
}

func (r *procedureRepository) List(ctx context.Context) ([]*model.Procedure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Procedure, 0, len(r.entries))
	for _, p := range r.entries {
		result = append(result, copyProcedure(p))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ScopeKey < result[j].ScopeKey
	})

	return result, nil
}
