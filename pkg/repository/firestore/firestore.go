package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/interfaces"
)

// Firestore is the production repository backend. Procedures live in the
// "procedures" collection keyed by scope key; query records live in the
// "queries" collection keyed by their UUID.
type Firestore struct {
	client    *firestore.Client
	procedure *procedureRepository
	query     *queryRepository
}

var _ interfaces.Repository = &Firestore{}

func New(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID == "" {
		client, err = firestore.NewClient(ctx, projectID)
	} else {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &Firestore{
		client:    client,
		procedure: newProcedureRepository(client),
		query:     newQueryRepository(client),
	}, nil
}

func (f *Firestore) Procedure() interfaces.ProcedureRepository {
	return f.procedure
}

func (f *Firestore) Query() interfaces.QueryRepository {
	return f.query
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
