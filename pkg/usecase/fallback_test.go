package usecase_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/model"
	"github.com/alexxmihai24/alex-web-administrats/pkg/usecase"
)

func TestFallbackAnswer(t *testing.T) {
	t.Run("full procedure", func(t *testing.T) {
		got := usecase.FallbackAnswer(&model.Procedure{
			ScopeKey:    "sepe",
			Name:        "SEPE",
			Description: "Empleo",
			CommonOperations: []string{
				"Renovar la demanda de empleo",
				"Solicitar cita previa",
			},
		})

		gt.Value(t, strings.Contains(got, usecase.FallbackNotice)).Equal(true)
		gt.Value(t, strings.Contains(got, "**SEPE**")).Equal(true)
		gt.Value(t, strings.Contains(got, "Empleo")).Equal(true)
		gt.Value(t, strings.Contains(got, "1. Renovar la demanda de empleo")).Equal(true)
		gt.Value(t, strings.Contains(got, "2. Solicitar cita previa")).Equal(true)
		gt.Value(t, strings.Contains(got, "Habla con nosotros")).Equal(true)
	})

	t.Run("missing description uses default", func(t *testing.T) {
		got := usecase.FallbackAnswer(&model.Procedure{
			ScopeKey: "dni",
			Name:     "DNI",
		})
		gt.Value(t, strings.Contains(got, "Trámite administrativo en España")).Equal(true)
	})

	t.Run("no common operations omits the list", func(t *testing.T) {
		got := usecase.FallbackAnswer(&model.Procedure{
			ScopeKey:    "dni",
			Name:        "DNI",
			Description: "Documento Nacional de Identidad",
		})
		gt.Value(t, strings.Contains(got, "Gestiones habituales")).Equal(false)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		p := &model.Procedure{ScopeKey: "sepe", Name: "SEPE", Description: "Empleo"}
		gt.Value(t, usecase.FallbackAnswer(p)).Equal(usecase.FallbackAnswer(p))
	})
}
