package brew

import (
	"fmt"

	"github.com/napolitain/solver-brew/internal/models"
)

// Unreached is the TurnsToPayoff of a branch that found no affordable order
// within the turn budget.
const Unreached = 1 << 30

// Decision is a candidate move together with the state it produces and the
// outcome of the rollout started from that state.
type Decision struct {
	Move  models.Move
	State *models.GameState

	// TurnsToPayoff counts simulated moves, this one included, until an
	// order becomes affordable
	TurnsToPayoff int
	// Reward of the order reached at the end of the rollout
	Reward int
	// OrderID of the order reached, or of the closest one when unreached
	OrderID int
	// Shortfall left against the closest order when unreached (0 when reached)
	Shortfall int
	// Truncated is set when the context ended the rollout early
	Truncated bool

	rank int // generation order, used as last tie-break
}

// NewDecision applies move to prev. ok is false when the move is illegal.
func NewDecision(prev *models.GameState, move models.Move) (Decision, bool) {
	next, ok := Apply(prev, move)
	if !ok {
		return Decision{}, false
	}
	return Decision{Move: move, State: next, TurnsToPayoff: Unreached}, true
}

// Reached returns true if the rollout found an affordable order
func (d Decision) Reached() bool {
	return d.TurnsToPayoff != Unreached
}

// Better reports whether d ranks before other: fewer turns, then higher
// reward, then lower shortfall, then generation order.
func (d Decision) Better(other Decision) bool {
	if d.TurnsToPayoff != other.TurnsToPayoff {
		return d.TurnsToPayoff < other.TurnsToPayoff
	}
	if d.Reward != other.Reward {
		return d.Reward > other.Reward
	}
	if d.Shortfall != other.Shortfall {
		return d.Shortfall < other.Shortfall
	}
	return d.rank < other.rank
}

func (d Decision) String() string {
	if !d.Reached() {
		if d.Truncated {
			return fmt.Sprintf("%s (unreached, shortfall %d, truncated)", d.Move.Description(), d.Shortfall)
		}
		return fmt.Sprintf("%s (unreached, shortfall %d)", d.Move.Description(), d.Shortfall)
	}
	return fmt.Sprintf("%s (order %d in %d turns, reward %d)",
		d.Move.Description(), d.OrderID, d.TurnsToPayoff, d.Reward)
}
