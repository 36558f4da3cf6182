package usecase

import (
	"time"

	"github.com/m-mizutani/gollem"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/interfaces"
	"github.com/alexxmihai24/alex-web-administrats/pkg/service/retrieval"
)

const (
	defaultRetrievalLimit  = 3
	defaultContextBudget   = 4000 // characters
	defaultStoreTimeout    = 10 * time.Second
	defaultGenerateTimeout = 60 * time.Second
)

// UseCases wires the chat pipeline together. All dependencies are injected
// once at startup and never mutated afterwards; each request is handled as an
// independent, stateless execution.
type UseCases struct {
	repo      interfaces.Repository
	llmClient gollem.LLMClient
	retriever *retrieval.Retriever

	retrievalLimit  int
	contextBudget   int
	storeTimeout    time.Duration
	generateTimeout time.Duration
}

type Option func(*UseCases)

// WithLLMClient sets the generation/embedding client. When absent, every
// answer takes the deterministic fallback path.
func WithLLMClient(client gollem.LLMClient) Option {
	return func(uc *UseCases) {
		uc.llmClient = client
	}
}

// WithRetriever replaces the default lexical retriever
func WithRetriever(r *retrieval.Retriever) Option {
	return func(uc *UseCases) {
		uc.retriever = r
	}
}

// WithRetrievalLimit sets how many past exchanges are retrieved per question
func WithRetrievalLimit(n int) Option {
	return func(uc *UseCases) {
		uc.retrievalLimit = n
	}
}

// WithContextBudget caps the rendered context block, in characters
func WithContextBudget(n int) Option {
	return func(uc *UseCases) {
		uc.contextBudget = n
	}
}

// WithStoreTimeout bounds procedure resolution, retrieval and persistence
func WithStoreTimeout(d time.Duration) Option {
	return func(uc *UseCases) {
		uc.storeTimeout = d
	}
}

// WithGenerateTimeout bounds the generation call
func WithGenerateTimeout(d time.Duration) Option {
	return func(uc *UseCases) {
		uc.generateTimeout = d
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:            repo,
		retrievalLimit:  defaultRetrievalLimit,
		contextBudget:   defaultContextBudget,
		storeTimeout:    defaultStoreTimeout,
		generateTimeout: defaultGenerateTimeout,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.retriever == nil {
		uc.retriever = retrieval.New(repo, retrieval.NewLexicalScorer())
	}

	return uc
}
