package retrieval

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/interfaces"
	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/model"
	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/types"
)

// Scorer computes relevance scores between a question and stored candidates.
// Implementations must be deterministic for identical inputs. Scores are
// only compared against each other, so any monotonic scale works.
type Scorer interface {
	// Score returns one score per candidate, in candidate order
	Score(ctx context.Context, question string, candidates []*model.QueryRecord) ([]float64, error)
}

// defaultCandidateLimit caps how many stored records are fetched per scope
// before scoring. The per-procedure history is small; this is a safety bound.
const defaultCandidateLimit = 200

// Retriever finds the previously answered questions most relevant to a new
// one, within a single procedure scope.
type Retriever struct {
	repo           interfaces.Repository
	scorer         Scorer
	candidateLimit int
}

type Option func(*Retriever)

// WithCandidateLimit overrides the candidate fetch bound
func WithCandidateLimit(n int) Option {
	return func(r *Retriever) {
		r.candidateLimit = n
	}
}

func New(repo interfaces.Repository, scorer Scorer, opts ...Option) *Retriever {
	r := &Retriever{
		repo:           repo,
		scorer:         scorer,
		candidateLimit: defaultCandidateLimit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FindSimilar returns up to limit matches for the question, ordered by score
// descending with ties broken by most recent creation first. Candidates come
// only from the given scope. An empty result is a normal outcome.
func (r *Retriever) FindSimilar(ctx context.Context, question string, scopeKey types.ScopeKey, limit int) ([]model.RetrievedMatch, error) {
	if limit <= 0 {
		return []model.RetrievedMatch{}, nil
	}

	candidates, err := r.repo.Query().ListRecent(ctx, scopeKey, r.candidateLimit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list retrieval candidates", goerr.V("scope_key", scopeKey))
	}
	if len(candidates) == 0 {
		return []model.RetrievedMatch{}, nil
	}

	scores, err := r.scorer.Score(ctx, question, candidates)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to score retrieval candidates", goerr.V("scope_key", scopeKey))
	}
	if len(scores) != len(candidates) {
		return nil, goerr.New("scorer returned wrong number of scores",
			goerr.V("candidates", len(candidates)),
			goerr.V("scores", len(scores)),
		)
	}

	matches := make([]model.RetrievedMatch, 0, len(candidates))
	for i, c := range candidates {
		matches = append(matches, model.RetrievedMatch{
			Question:  c.Question,
			Answer:    c.Answer,
			Score:     scores[i],
			CreatedAt: c.CreatedAt,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	if limit < len(matches) {
		matches = matches[:limit]
	}

	return matches, nil
}
