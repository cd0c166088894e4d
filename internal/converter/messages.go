package converter

import (
	"fmt"
	"strings"

	"github.com/napolitain/solver-brew/internal/models"
)

// MoveLine renders a move as one protocol line. A non-empty message is
// appended after the move.
func MoveLine(move models.Move, message string) string {
	var line string
	switch m := move.(type) {
	case models.Brew:
		line = fmt.Sprintf("%s %d", models.KindBrew, m.OrderID)
	case models.Cast:
		times := m.Times
		if times < 1 {
			times = 1
		}
		line = fmt.Sprintf("%s %d %d", models.KindCast, m.SpellID, times)
	case models.Learn:
		line = fmt.Sprintf("%s %d", models.KindLearn, m.TomeSpellID)
	case models.Rest:
		line = string(models.KindRest)
	default:
		line = string(models.KindWait)
	}

	if message = strings.TrimSpace(message); message != "" {
		line += " " + message
	}
	return line
}
