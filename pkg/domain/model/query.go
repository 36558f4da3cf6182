package model

import (
	"time"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/types"
	"github.com/google/uuid"
)

// EmbeddingDimension is the dimension of the embedding vector
// generated for stored questions (matches text-embedding-004 output)
const EmbeddingDimension = 768

// QueryID is a UUID-based identifier for QueryRecord
type QueryID string

// NewQueryID generates a new UUID v4 QueryID
func NewQueryID() QueryID {
	return QueryID(uuid.New().String())
}

// String returns the string representation of QueryID
func (q QueryID) String() string {
	return string(q)
}

// QueryRecord is a persisted past exchange: one user question and the answer
// that was produced for it, scoped to a procedure. Records are append-only;
// they are written after generation and read back by the similarity retriever
// on later requests.
type QueryRecord struct {
	ID       QueryID
	ScopeKey types.ScopeKey
	Question string
	Answer   string

	// Embedding of the question text, stored at persistence time so that
	// retrieval does not have to re-embed candidates. Empty when no
	// embedding client was available at write time.
	Embedding []float32

	CreatedAt time.Time
}

// RetrievedMatch is an in-memory projection of a QueryRecord scored against a
// new question. It lives for one request only.
type RetrievedMatch struct {
	Question  string
	Answer    string
	Score     float64
	CreatedAt time.Time
}

// Renderable reports whether the match carries enough content to be included
// in a prompt context block.
func (m RetrievedMatch) Renderable() bool {
	return m.Question != "" && m.Answer != ""
}
