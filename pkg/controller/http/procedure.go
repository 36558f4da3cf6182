package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/alexxmihai24/alex-web-administrats/pkg/utils/errutil"
	"github.com/alexxmihai24/alex-web-administrats/pkg/utils/safe"
)

type procedureResponse struct {
	ScopeKey         string   `json:"scopeKey"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	Category         string   `json:"category,omitempty"`
	CommonOperations []string `json:"commonOperations,omitempty"`
}

type proceduresResponse struct {
	Procedures []procedureResponse `json:"procedures"`
}

func (s *Server) handleListProcedures(w http.ResponseWriter, r *http.Request) {
	procedures, err := s.uc.ListProcedures(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	resp := proceduresResponse{
		Procedures: make([]procedureResponse, len(procedures)),
	}
	for i, p := range procedures {
		resp.Procedures[i] = procedureResponse{
			ScopeKey:         p.ScopeKey.String(),
			Name:             p.Name,
			Description:      p.Description,
			Category:         p.Category,
			CommonOperations: p.CommonOperations,
		}
	}

	respondJSON(r.Context(), w, http.StatusOK, resp)
}

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, data)
}
