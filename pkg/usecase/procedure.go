package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/model"
)

// ListProcedures returns all known procedures, ordered by scope key
func (uc *UseCases) ListProcedures(ctx context.Context) ([]*model.Procedure, error) {
	rctx, cancel := context.WithTimeout(ctx, uc.storeTimeout)
	defer cancel()

	procedures, err := uc.repo.Procedure().List(rctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list procedures")
	}

	return procedures, nil
}
