package model

import "github.com/alexxmihai24/alex-web-administrats/pkg/domain/types"

// ChatInput is the inbound chat request: one question about one procedure.
type ChatInput struct {
	Message  string
	ScopeKey types.ScopeKey
}

// RetrievalInfo describes how much retrieved history contributed to a reply.
type RetrievalInfo struct {
	MatchCount int
	Used       bool
}

// ChatReply is the response envelope. It is always produced once the scope
// resolves to a known procedure: generation and persistence failures degrade
// its content but never prevent it.
type ChatReply struct {
	Response      string
	ProcedureName string

	// RecordID is the identity assigned to the persisted exchange.
	// nil when the best-effort write failed.
	RecordID *QueryID

	Retrieval RetrievalInfo
}
