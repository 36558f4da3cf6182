package retrieval_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gt"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/model"
	"github.com/alexxmihai24/alex-web-administrats/pkg/service/retrieval"
)

// embedderMock is a gollem LLMClient that only supports embeddings
type embedderMock struct {
	embedding []float64
	err       error
}

func (m *embedderMock) NewSession(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
	return nil, goerr.New("not supported")
}

func (m *embedderMock) GenerateEmbedding(ctx context.Context, dimension int, input []string) ([][]float64, error) {
	if m.err != nil {
		return nil, m.err
	}
	return [][]float64{m.embedding}, nil
}

func TestEmbeddingScorer(t *testing.T) {
	ctx := context.Background()

	t.Run("requires LLM client", func(t *testing.T) {
		_, err := retrieval.NewEmbeddingScorer(nil)
		gt.Error(t, err)
	})

	t.Run("scores by cosine similarity of stored embeddings", func(t *testing.T) {
		scorer, err := retrieval.NewEmbeddingScorer(&embedderMock{
			embedding: []float64{1, 0, 0},
		})
		gt.NoError(t, err).Required()

		scores, err := scorer.Score(ctx, "pregunta", []*model.QueryRecord{
			{Question: "aligned", Embedding: []float32{1, 0, 0}},
			{Question: "orthogonal", Embedding: []float32{0, 1, 0}},
			{Question: "partial", Embedding: []float32{1, 1, 0}},
		})
		gt.NoError(t, err).Required()
		gt.Array(t, scores).Length(3).Required()

		gt.Value(t, scores[0]).Equal(1.0)
		gt.Value(t, scores[1]).Equal(0.0)
		gt.Bool(t, scores[2] > 0 && scores[2] < 1).True()
	})

	t.Run("candidates without embedding score zero", func(t *testing.T) {
		scorer, err := retrieval.NewEmbeddingScorer(&embedderMock{
			embedding: []float64{1, 0, 0},
		})
		gt.NoError(t, err).Required()

		scores, err := scorer.Score(ctx, "pregunta", []*model.QueryRecord{
			{Question: "no embedding stored"},
		})
		gt.NoError(t, err).Required()
		gt.Value(t, scores[0]).Equal(0.0)
	})

	t.Run("embedding failure propagates", func(t *testing.T) {
		scorer, err := retrieval.NewEmbeddingScorer(&embedderMock{
			err: goerr.New("quota exceeded"),
		})
		gt.NoError(t, err).Required()

		_, err = scorer.Score(ctx, "pregunta", []*model.QueryRecord{{Question: "q"}})
		gt.Error(t, err)
	})
}
