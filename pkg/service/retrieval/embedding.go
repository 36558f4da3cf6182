package retrieval

import (
	"context"
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/model"
)

// EmbeddingScorer scores by cosine similarity between the embedding of the
// new question and the embeddings stored alongside each query record. The
// question is embedded once per call; candidates without a stored embedding
// score zero rather than failing the whole batch.
type EmbeddingScorer struct {
	llmClient gollem.LLMClient
}

func NewEmbeddingScorer(llmClient gollem.LLMClient) (*EmbeddingScorer, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required for embedding scorer")
	}
	return &EmbeddingScorer{llmClient: llmClient}, nil
}

func (s *EmbeddingScorer) Score(ctx context.Context, question string, candidates []*model.QueryRecord) ([]float64, error) {
	embeddings, err := s.llmClient.GenerateEmbedding(ctx, model.EmbeddingDimension, []string{question})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate question embedding")
	}
	if len(embeddings) == 0 {
		return nil, goerr.New("no embedding returned for question")
	}

	query := embeddings[0]
	scores := make([]float64, len(candidates))
	for i, c := range candidates {
		if len(c.Embedding) == 0 {
			continue
		}
		scores[i] = cosineSimilarity(query, c.Embedding)
	}

	return scores, nil
}

func cosineSimilarity(a []float64, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * float64(b[i])
		normA += a[i] * a[i]
		normB += float64(b[i]) * float64(b[i])
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}

	return dot / denom
}
