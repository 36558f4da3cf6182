package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/interfaces"
	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/model"
	"github.com/alexxmihai24/alex-web-administrats/pkg/utils/errutil"
	"github.com/alexxmihai24/alex-web-administrats/pkg/utils/logging"
)

// Chat answers one user question about one procedure.
//
// The pipeline runs validate → resolve → retrieve → compose → generate →
// persist → respond. Validation and an unknown scope reject the request;
// every later stage degrades on failure instead of aborting, so a resolved
// scope always yields a reply. Retrieval failure means empty context,
// generation failure means the deterministic fallback answer, persistence
// failure means a nil record id.
func (uc *UseCases) Chat(ctx context.Context, input model.ChatInput) (*model.ChatReply, error) {
	// Validating
	if strings.TrimSpace(input.Message) == "" {
		return nil, goerr.Wrap(ErrEmptyMessage, "empty chat message")
	}
	if input.ScopeKey == "" {
		return nil, goerr.Wrap(ErrEmptyScopeKey, "empty scope key")
	}
	if err := input.ScopeKey.Validate(); err != nil {
		return nil, goerr.Wrap(ErrEmptyScopeKey, "malformed scope key", goerr.V("scope_key", input.ScopeKey))
	}

	// Resolving
	procedure, err := uc.resolveProcedure(ctx, input)
	if err != nil {
		return nil, err
	}

	// Retrieving (degrades to empty matches)
	matches := uc.retrieve(ctx, input)

	// Composing (pure; prompt failure degrades like a generation failure)
	contextBlock := buildContext(matches, uc.contextBudget)

	// Generating (degrades to fallback answer)
	answer, generated := uc.generate(ctx, procedure, contextBlock, input.Message)

	// Persisting (best effort; only real generations feed future retrieval)
	var recordID *model.QueryID
	if generated {
		recordID = uc.persist(ctx, input, answer)
	}

	// Responding
	return &model.ChatReply{
		Response:      answer,
		ProcedureName: procedure.Name,
		RecordID:      recordID,
		Retrieval: model.RetrievalInfo{
			MatchCount: len(matches),
			Used:       len(matches) > 0 && contextBlock != "",
		},
	}, nil
}

func (uc *UseCases) resolveProcedure(ctx context.Context, input model.ChatInput) (*model.Procedure, error) {
	rctx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	procedure, err := uc.repo.Procedure().Get(rctx, input.ScopeKey)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrProcedureNotFound, "unknown scope key", goerr.V("scope_key", input.ScopeKey))
		}
		return nil, goerr.Wrap(err, "failed to resolve procedure", goerr.V("scope_key", input.ScopeKey))
	}

	return procedure, nil
}

func (uc *UseCases) retrieve(ctx context.Context, input model.ChatInput) []model.RetrievedMatch {
	rctx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	matches, err := uc.retriever.FindSimilar(rctx, input.Message, input.ScopeKey, uc.retrievalLimit)
	if err != nil {
		_ = errutil.Handle(ctx, err, "retrieval failed, continuing without context")
		return nil
	}

	return matches
}

// generate calls the external generator and reports whether it produced the
// answer. Any failure, including a missing client, yields the fallback.
func (uc *UseCases) generate(ctx context.Context, procedure *model.Procedure, contextBlock, question string) (string, bool) {
	logger := logging.From(ctx)

	if uc.llmClient == nil {
		logger.Warn("LLM client not configured, using fallback answer",
			"scope_key", procedure.ScopeKey,
		)
		return fallbackAnswer(procedure), false
	}

	prompt, err := composePrompt(procedure, contextBlock, question)
	if err != nil {
		_ = errutil.Handle(ctx, err, "prompt composition failed, using fallback answer")
		return fallbackAnswer(procedure), false
	}

	gctx, cancel := context.WithTimeout(ctx, uc.generateTimeout)
	defer cancel()

	session, err := uc.llmClient.NewSession(gctx)
	if err != nil {
		_ = errutil.Handle(ctx, err, "failed to open LLM session, using fallback answer")
		return fallbackAnswer(procedure), false
	}

	resp, err := session.GenerateContent(gctx, gollem.Text(prompt))
	if err != nil {
		_ = errutil.Handle(ctx, err, "generation failed, using fallback answer")
		return fallbackAnswer(procedure), false
	}
	if resp == nil || len(resp.Texts) == 0 || strings.TrimSpace(strings.Join(resp.Texts, "")) == "" {
		logger.Error("generator returned empty response, using fallback answer",
			"scope_key", procedure.ScopeKey,
		)
		return fallbackAnswer(procedure), false
	}

	return strings.Join(resp.Texts, "\n"), true
}

// persist writes the exchange for future retrieval. Failures are logged and
// reported as a nil record id, never raised.
func (uc *UseCases) persist(ctx context.Context, input model.ChatInput, answer string) *model.QueryID {
	pctx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	record := &model.QueryRecord{
		ScopeKey:  input.ScopeKey,
		Question:  input.Message,
		Answer:    answer,
		Embedding: uc.questionEmbedding(pctx, input.Message),
	}

	created, err := uc.repo.Query().Create(pctx, record)
	if err != nil {
		_ = errutil.Handle(ctx, err, "failed to persist exchange, responding without record id")
		return nil
	}

	return &created.ID
}

// questionEmbedding is best effort: a record without embedding still serves
// lexical retrieval.
func (uc *UseCases) questionEmbedding(ctx context.Context, question string) []float32 {
	if uc.llmClient == nil {
		return nil
	}

	embeddings, err := uc.llmClient.GenerateEmbedding(ctx, model.EmbeddingDimension, []string{question})
	if err != nil || len(embeddings) == 0 {
		if err != nil {
			logging.From(ctx).Warn("failed to embed question, storing record without embedding",
				"error", err.Error(),
			)
		}
		return nil
	}

	result := make([]float32, len(embeddings[0]))
	for i, v := range embeddings[0] {
		result[i] = float32(v)
	}
	return result
}
