package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/model"
	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/types"
	"github.com/alexxmihai24/alex-web-administrats/pkg/usecase"
	"github.com/alexxmihai24/alex-web-administrats/pkg/utils/errutil"
	"github.com/alexxmihai24/alex-web-administrats/pkg/utils/safe"
)

type chatRequest struct {
	Message  string `json:"message"`
	ScopeKey string `json:"scopeKey"`
}

type retrievalResponse struct {
	MatchCount int  `json:"matchCount"`
	Used       bool `json:"used"`
}

type chatResponse struct {
	Response      string            `json:"response"`
	ProcedureName string            `json:"procedureName"`
	RecordID      *string           `json:"recordId"`
	Retrieval     retrievalResponse `json:"retrieval"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	defer safe.Close(r.Context(), r.Body)

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	reply, err := s.uc.Chat(r.Context(), model.ChatInput{
		Message:  req.Message,
		ScopeKey: types.ScopeKey(req.ScopeKey),
	})
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, chatErrorStatus(err))
		return
	}

	var recordID *string
	if reply.RecordID != nil {
		id := reply.RecordID.String()
		recordID = &id
	}

	respondJSON(r.Context(), w, http.StatusOK, chatResponse{
		Response:      reply.Response,
		ProcedureName: reply.ProcedureName,
		RecordID:      recordID,
		Retrieval: retrievalResponse{
			MatchCount: reply.Retrieval.MatchCount,
			Used:       reply.Retrieval.Used,
		},
	})
}

// chatErrorStatus maps use case errors to HTTP status codes. Anything
// unrecognized is an internal error.
func chatErrorStatus(err error) int {
	switch {
	case errors.Is(err, usecase.ErrEmptyMessage),
		errors.Is(err, usecase.ErrEmptyScopeKey):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrProcedureNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
