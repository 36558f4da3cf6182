package usecase

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/model"
)

//go:embed prompt/chat_system.md
var chatPromptTmpl string

var chatPrompt = template.Must(template.New("chat_system").Parse(chatPromptTmpl))

// defaultDescription mirrors what the prompt says about a procedure that has
// no stored description.
const defaultDescription = "Trámite administrativo en España"

// buildContext renders retrieved matches as labeled question/answer pairs, in
// the order received, bounded to budget characters. A match that would exceed
// the budget is dropped whole, never truncated; everything after it is
// dropped too. Unrenderable matches are skipped.
func buildContext(matches []model.RetrievedMatch, budget int) string {
	if len(matches) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, m := range matches {
		if !m.Renderable() {
			continue
		}

		block := fmt.Sprintf("Pregunta: %s\nRespuesta: %s\n\n", m.Question, m.Answer)
		if sb.Len()+len(block) > budget {
			break
		}
		sb.WriteString(block)
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

type chatPromptData struct {
	Name        string
	Description string
	Context     string
	Question    string
}

// composePrompt merges the behavioral policy, procedure metadata, retrieved
// context and the user question into a single generation prompt. The result
// is deterministic for identical inputs.
func composePrompt(procedure *model.Procedure, contextBlock, question string) (string, error) {
	description := procedure.Description
	if description == "" {
		description = defaultDescription
	}

	data := chatPromptData{
		Name:        procedure.Name,
		Description: description,
		Context:     contextBlock,
		Question:    question,
	}

	var buf bytes.Buffer
	if err := chatPrompt.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to execute chat prompt template")
	}

	return buf.String(), nil
}
