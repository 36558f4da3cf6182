package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/interfaces"
	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/model"
	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/types"
)

// procedureDoc is the Firestore document representation of model.Procedure.
type procedureDoc struct {
	ScopeKey         string    `firestore:"ScopeKey"`
	Name             string    `firestore:"Name"`
	Description      string    `firestore:"Description"`
	Category         string    `firestore:"Category"`
	CommonOperations []string  `firestore:"CommonOperations"`
	CreatedAt        time.Time `firestore:"CreatedAt"`
	UpdatedAt        time.Time `firestore:"UpdatedAt"`
}

func toProcedureDoc(p *model.Procedure) *procedureDoc {
	return &procedureDoc{
		ScopeKey:         string(p.ScopeKey),
		Name:             p.Name,
		Description:      p.Description,
		Category:         p.Category,
		CommonOperations: p.CommonOperations,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func fromProcedureDoc(d *procedureDoc) *model.Procedure {
	return &model.Procedure{
		ScopeKey:         types.ScopeKey(d.ScopeKey),
		Name:             d.Name,
		Description:      d.Description,
		Category:         d.Category,
		CommonOperations: d.CommonOperations,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

type procedureRepository struct {
	client *firestore.Client
}

func newProcedureRepository(client *firestore.Client) *procedureRepository {
	return &procedureRepository{client: client}
}

func (r *procedureRepository) collection() *firestore.CollectionRef {
	return r.client.Collection("procedures")
}

func (r *procedureRepository) Get(ctx context.Context, scopeKey types.ScopeKey) (*model.Procedure, error) {
	doc, err := r.collection().Doc(string(scopeKey)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(interfaces.ErrNotFound, "procedure not found", goerr.V("scope_key", scopeKey))
		}
		return nil, goerr.Wrap(err, "failed to get procedure", goerr.V("scope_key", scopeKey))
	}

	var d procedureDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal procedure", goerr.V("scope_key", scopeKey))
	}

	return fromProcedureDoc(&d), nil
}

func (r *procedureRepository) Put(ctx context.Context, procedure *model.Procedure) error {
	if err := procedure.Validate(); err != nil {
		return goerr.Wrap(err, "invalid procedure")
	}

	now := time.Now().UTC()
	stored := *procedure
	stored.UpdatedAt = now
	if prev, err := r.Get(ctx, procedure.ScopeKey); err == nil {
		stored.CreatedAt = prev.CreatedAt
	} else {
		stored.CreatedAt = now
	}

	docRef := r.collection().Doc(string(procedure.ScopeKey))
	if _, err := docRef.Set(ctx, toProcedureDoc(&stored)); err != nil {
		return goerr.Wrap(err, "failed to put procedure", goerr.V("scope_key", procedure.ScopeKey))
	}

	return nil
}

func (r *procedureRepository) List(ctx context.Context) ([]*model.Procedure, error) {
	iter := r.collection().OrderBy("ScopeKey", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	procedures := make([]*model.Procedure, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate procedures")
		}

		var d procedureDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal procedure")
		}

		procedures = append(procedures, fromProcedureDoc(&d))
	}

	return procedures, nil
}
