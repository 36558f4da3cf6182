package usecase

import (
	"fmt"
	"strings"

	"github.com/alexxmihai24/alex-web-administrats/pkg/domain/model"
)

// FallbackNotice marks answers produced without the generator. Tests and
// monitoring can key on it.
const FallbackNotice = "⚠️ El asistente inteligente no está disponible en este momento."

// fallbackAnswer builds a deterministic answer from the procedure record
// alone. It touches no external dependency and never fails; it is the floor
// the pipeline can always stand on when the generator is unreachable.
func fallbackAnswer(procedure *model.Procedure) string {
	var sb strings.Builder

	sb.WriteString(FallbackNotice)
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "**%s**\n", procedure.Name)
	description := procedure.Description
	if description == "" {
		description = defaultDescription
	}
	sb.WriteString(description)
	sb.WriteString("\n")

	if len(procedure.CommonOperations) > 0 {
		sb.WriteString("\nGestiones habituales de este trámite:\n")
		for i, op := range procedure.CommonOperations {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, op)
		}
	}

	sb.WriteString("\n💡 Si necesitas ayuda personalizada, un experto puede hacerlo por ti. Usa el botón 'Habla con nosotros' en esta página.")

	return sb.String()
}
