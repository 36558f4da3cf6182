package interfaces

import (
	"context"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/model"
	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/types"
)

// ProcedureRepository defines the interface for Procedure data persistence
type ProcedureRepository interface {
	// Get resolves a scope key to its procedure record. Returns an error
	// wrapping the backend's not-found sentinel when no record matches.
	Get(ctx context.Context, scopeKey types.ScopeKey) (*model.Procedure, error)

	// Put creates or replaces a procedure record (used by the seed command)
	Put(ctx context.Context, procedure *model.Procedure) error

	// List returns all procedures ordered by scope key ascending
	List(ctx context.Context) ([]*model.Procedure, error)
}
