package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/interfaces"
	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/model"
	"github.com/alexxmihai24/alex-web-administrats/pkg/repository/memory"
)

func runQueryRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns UUID and CreatedAt", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		scope := uniqueScopeKey("sepe")
		created, err := repo.Query().Create(ctx, &model.QueryRecord{
			ScopeKey:  scope,
			Question:  "¿Cómo renuevo la demanda?",
			Answer:    "Puedes renovarla por internet con certificado digital.",
			Embedding: []float32{0.1, 0.2, 0.3},
		})
		gt.NoError(t, err).Required()

		gt.String(t, string(created.ID)).NotEqual("")
		gt.Value(t, created.ScopeKey).Equal(scope)
		gt.Value(t, created.Question).Equal("¿Cómo renuevo la demanda?")
		gt.Bool(t, created.CreatedAt.IsZero()).False()
		gt.Array(t, created.Embedding).Length(3)
	})

	t.Run("ListRecent returns records newest first", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		scope := uniqueScopeKey("sepe")

		q1, err := repo.Query().Create(ctx, &model.QueryRecord{
			ScopeKey: scope, Question: "first", Answer: "a1",
		})
		gt.NoError(t, err).Required()

		time.Sleep(10 * time.Millisecond)

		q2, err := repo.Query().Create(ctx, &model.QueryRecord{
			ScopeKey: scope, Question: "second", Answer: "a2",
		})
		gt.NoError(t, err).Required()

		time.Sleep(10 * time.Millisecond)

		q3, err := repo.Query().Create(ctx, &model.QueryRecord{
			ScopeKey: scope, Question: "third", Answer: "a3",
		})
		gt.NoError(t, err).Required()

		records, err := repo.Query().ListRecent(ctx, scope, 10)
		gt.NoError(t, err).Required()
		gt.Array(t, records).Length(3).Required()

		gt.Value(t, records[0].ID).Equal(q3.ID)
		gt.Value(t, records[1].ID).Equal(q2.ID)
		gt.Value(t, records[2].ID).Equal(q1.ID)
	})

	t.Run("ListRecent honors limit", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		scope := uniqueScopeKey("dni")
		for i := 0; i < 5; i++ {
			_, err := repo.Query().Create(ctx, &model.QueryRecord{
				ScopeKey: scope, Question: "q", Answer: "a",
			})
			gt.NoError(t, err).Required()
			time.Sleep(5 * time.Millisecond)
		}

		records, err := repo.Query().ListRecent(ctx, scope, 2)
		gt.NoError(t, err).Required()
		gt.Array(t, records).Length(2)
	})

	t.Run("ListRecent isolates scopes", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		scopeA := uniqueScopeKey("scope-a")
		scopeB := uniqueScopeKey("scope-b")

		_, err := repo.Query().Create(ctx, &model.QueryRecord{
			ScopeKey: scopeA, Question: "qa", Answer: "aa",
		})
		gt.NoError(t, err).Required()

		_, err = repo.Query().Create(ctx, &model.QueryRecord{
			ScopeKey: scopeB, Question: "qb", Answer: "ab",
		})
		gt.NoError(t, err).Required()

		records, err := repo.Query().ListRecent(ctx, scopeA, 10)
		gt.NoError(t, err).Required()
		gt.Array(t, records).Length(1).Required()
		gt.Value(t, records[0].ScopeKey).Equal(scopeA)
		gt.Value(t, records[0].Question).Equal("qa")
	})

	t.Run("ListRecent of empty scope returns empty slice", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		records, err := repo.Query().ListRecent(ctx, uniqueScopeKey("empty"), 10)
		gt.NoError(t, err).Required()
		gt.Array(t, records).Length(0)
	})

	t.Run("CountByScope counts only the scope", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		scopeA := uniqueScopeKey("count-a")
		scopeB := uniqueScopeKey("count-b")

		for i := 0; i < 3; i++ {
			_, err := repo.Query().Create(ctx, &model.QueryRecord{
				ScopeKey: scopeA, Question: "q", Answer: "a",
			})
			gt.NoError(t, err).Required()
		}
		_, err := repo.Query().Create(ctx, &model.QueryRecord{
			ScopeKey: scopeB, Question: "q", Answer: "a",
		})
		gt.NoError(t, err).Required()

		n, err := repo.Query().CountByScope(ctx, scopeA)
		gt.NoError(t, err).Required()
		gt.Value(t, n).Equal(3)
	})
}

func TestMemoryQueryRepository(t *testing.T) {
	runQueryRepositoryTest(t, func(t *testing.T) interfaces.Repository {
		return memory.New()
	})
}

func TestFirestoreQueryRepository(t *testing.T) {
	runQueryRepositoryTest(t, newFirestoreRepository)
}
