package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/model"
	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/types"
)

// queryDoc is the Firestore document representation of model.QueryRecord.
// Embedding is stored as firestore.Vector32 so the field stays compatible
// with Firestore vector indexes.
type queryDoc struct {
	ID        string             `firestore:"ID"`
	ScopeKey  string             `firestore:"ScopeKey"`
	Question  string             `firestore:"Question"`
	Answer    string             `firestore:"Answer"`
	Embedding firestore.Vector32 `firestore:"Embedding,omitempty"`
	CreatedAt time.Time          `firestore:"CreatedAt"`
}

func toQueryDoc(q *model.QueryRecord) *queryDoc {
	doc := &queryDoc{
		ID:        string(q.ID),
		ScopeKey:  string(q.ScopeKey),
		Question:  q.Question,
		Answer:    q.Answer,
		CreatedAt: q.CreatedAt,
	}
	if len(q.Embedding) > 0 {
		doc.Embedding = firestore.Vector32(q.Embedding)
	}
	return doc
}

func fromQueryDoc(d *queryDoc) *model.QueryRecord {
	q := &model.QueryRecord{
		ID:        model.QueryID(d.ID),
		ScopeKey:  types.ScopeKey(d.ScopeKey),
		Question:  d.Question,
		Answer:    d.Answer,
		CreatedAt: d.CreatedAt,
	}
	if len(d.Embedding) > 0 {
		q.Embedding = []float32(d.Embedding)
	}
	return q
}

type queryRepository struct {
	client *firestore.Client
}

func newQueryRepository(client *firestore.Client) *queryRepository {
	return &queryRepository{client: client}
}

func (r *queryRepository) collection() *firestore.CollectionRef {
	return r.client.Collection("queries")
}

func (r *queryRepository) Create(ctx context.Context, record *model.QueryRecord) (*model.QueryRecord, error) {
	created := *record
	if created.ID == "" {
		created.ID = model.NewQueryID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	docRef := r.collection().Doc(string(created.ID))
	if _, err := docRef.Set(ctx, toQueryDoc(&created)); err != nil {
		return nil, goerr.Wrap(err, "failed to create query record",
			goerr.V("scope_key", record.ScopeKey),
		)
	}

	return &created, nil
}

// ListRecent requires the composite index (ScopeKey asc, CreatedAt desc)
// provisioned by the migrate command.
func (r *queryRepository) ListRecent(ctx context.Context, scopeKey types.ScopeKey, limit int) ([]*model.QueryRecord, error) {
	query := r.collection().
		Where("ScopeKey", "==", string(scopeKey)).
		OrderBy("CreatedAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	records := make([]*model.QueryRecord, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate query records", goerr.V("scope_key", scopeKey))
		}

		var d queryDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal query record")
		}

		records = append(records, fromQueryDoc(&d))
	}

	return records, nil
}

func (r *queryRepository) CountByScope(ctx context.Context, scopeKey types.ScopeKey) (int, error) {
	docs, err := r.collection().
		Where("ScopeKey", "==", string(scopeKey)).
		Documents(ctx).GetAll()
	if err != nil {
		return 0, goerr.Wrap(err, "failed to count query records", goerr.V("scope_key", scopeKey))
	}

	return len(docs), nil
}
