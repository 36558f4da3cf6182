package model

import (
	"time"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Procedure describes an administrative procedure the assistant can answer
// questions about. The record is owned by the procedure store; the chat
// pipeline only reads it.
type Procedure struct {
	ScopeKey    types.ScopeKey
	Name        string
	Description string // optional free text shown to the generator and in fallback answers
	Category    string // optional grouping (e.g. "empleo", "identidad")

	// CommonOperations is a list of typical operations for this procedure.
	// It feeds the deterministic fallback answer when the generator is
	// unavailable, so the content stays data-driven instead of hardcoded
	// per procedure name.
	CommonOperations []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks if the Procedure is valid
func (p *Procedure) Validate() error {
	if err := p.ScopeKey.Validate(); err != nil {
		return goerr.Wrap(err, "invalid procedure scope key")
	}
	if p.Name == "" {
		return goerr.New("procedure name is required", goerr.V("scope_key", p.ScopeKey))
	}
	return nil
}
