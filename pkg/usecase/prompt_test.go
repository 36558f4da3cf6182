package usecase_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/model"
	"github.com/alexxmihai24/alex-web-administrats/pkg/usecase"
)

func TestBuildContext(t *testing.T) {
	t.Run("renders matches in order", func(t *testing.T) {
		matches := []model.RetrievedMatch{
			{Question: "q1", Answer: "a1"},
			{Question: "q2", Answer: "a2"},
		}
		got := usecase.BuildContext(matches, 4000)
		gt.Value(t, strings.Contains(got, "Pregunta: q1\nRespuesta: a1")).Equal(true)
		gt.Value(t, strings.Contains(got, "Pregunta: q2\nRespuesta: a2")).Equal(true)
		gt.Bool(t, strings.Index(got, "q1") < strings.Index(got, "q2")).True()
	})

	t.Run("empty matches yields empty block", func(t *testing.T) {
		gt.Value(t, usecase.BuildContext(nil, 4000)).Equal("")
	})

	t.Run("skips unrenderable matches", func(t *testing.T) {
		matches := []model.RetrievedMatch{
			{Question: "q1", Answer: ""},
			{Question: "", Answer: "a2"},
			{Question: "q3", Answer: "a3"},
		}
		got := usecase.BuildContext(matches, 4000)
		gt.Value(t, strings.Contains(got, "q1")).Equal(false)
		gt.Value(t, strings.Contains(got, "a2")).Equal(false)
		gt.Value(t, strings.Contains(got, "q3")).Equal(true)
	})

	t.Run("drops whole match over budget", func(t *testing.T) {
		matches := []model.RetrievedMatch{
			{Question: "q1", Answer: "a1"},
			{Question: strings.Repeat("x", 100), Answer: "a2"},
		}
		got := usecase.BuildContext(matches, 60)
		gt.Value(t, strings.Contains(got, "q1")).Equal(true)
		gt.Value(t, strings.Contains(got, "xxx")).Equal(false)
		// nothing is truncated mid-block
		gt.Value(t, strings.Contains(got, "Respuesta: a1")).Equal(true)
	})

	t.Run("budget zero renders nothing", func(t *testing.T) {
		matches := []model.RetrievedMatch{{Question: "q", Answer: "a"}}
		gt.Value(t, usecase.BuildContext(matches, 0)).Equal("")
	})
}

func TestComposePrompt(t *testing.T) {
	procedure := &model.Procedure{
		ScopeKey:    "sepe",
		Name:        "SEPE",
		Description: "Empleo",
	}

	t.Run("carries procedure, context and question", func(t *testing.T) {
		got, err := usecase.ComposePrompt(procedure, "Pregunta: q\nRespuesta: a", "¿Cómo pido cita?")
		gt.NoError(t, err).Required()
		gt.Value(t, strings.Contains(got, "SEPE")).Equal(true)
		gt.Value(t, strings.Contains(got, "Empleo")).Equal(true)
		gt.Value(t, strings.Contains(got, "CONSULTAS ANTERIORES")).Equal(true)
		gt.Value(t, strings.Contains(got, "Pregunta: q")).Equal(true)
		gt.Value(t, strings.Contains(got, "PREGUNTA DEL USUARIO: ¿Cómo pido cita?")).Equal(true)
	})

	t.Run("omits context section when block is empty", func(t *testing.T) {
		got, err := usecase.ComposePrompt(procedure, "", "¿hola?")
		gt.NoError(t, err).Required()
		gt.Value(t, strings.Contains(got, "CONSULTAS ANTERIORES")).Equal(false)
	})

	t.Run("falls back to default description", func(t *testing.T) {
		bare := &model.Procedure{ScopeKey: "dni", Name: "DNI"}
		got, err := usecase.ComposePrompt(bare, "", "¿hola?")
		gt.NoError(t, err).Required()
		gt.Value(t, strings.Contains(got, "Trámite administrativo en España")).Equal(true)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		a, err := usecase.ComposePrompt(procedure, "ctx", "¿hola?")
		gt.NoError(t, err).Required()
		b, err := usecase.ComposePrompt(procedure, "ctx", "¿hola?")
		gt.NoError(t, err).Required()
		gt.Value(t, a).Equal(b)
	})
}
