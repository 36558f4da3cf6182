package interfaces

import (
	"context"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/model"
	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/types"
)

// QueryRepository defines the interface for QueryRecord data persistence.
// Records are append-only: there is no update or delete.
type QueryRepository interface {
	// Create stores a new query record. ID and CreatedAt are assigned at
	// persistence time when not already set.
	Create(ctx context.Context, record *model.QueryRecord) (*model.QueryRecord, error)

	// ListRecent returns up to limit records for the given scope, ordered
	// by CreatedAt descending. Records from other scopes never appear.
	ListRecent(ctx context.Context, scopeKey types.ScopeKey, limit int) ([]*model.QueryRecord, error)

	// CountByScope returns the number of stored records for the scope
	CountByScope(ctx context.Context, scopeKey types.ScopeKey) (int, error)
}
