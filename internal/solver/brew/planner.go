package brew

import (
	"context"
	"sort"

	"github.com/napolitain/solver-brew/internal/models"
)

// Planner picks one move per turn with a bounded greedy rollout
type Planner struct {
	Config models.PlannerConfig
}

// NewPlanner creates a planner with the default tuning
func NewPlanner() *Planner {
	return &Planner{Config: models.DefaultPlannerConfig()}
}

// NewPlannerWithConfig creates a planner with a specific tuning
func NewPlannerWithConfig(config models.PlannerConfig) *Planner {
	return &Planner{Config: config}
}

// Plan returns the best decision for state, or a wait when no other move
// is worth playing. The returned decision is Truncated when the deadline
// cut any candidate's rollout.
func (p *Planner) Plan(ctx context.Context, state *models.GameState) Decision {
	candidates := p.Evaluate(ctx, state)
	if len(candidates) == 0 {
		d, _ := NewDecision(state, models.Wait{})
		return d
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		best.Truncated = best.Truncated || c.Truncated
	}
	return best
}

// Evaluate returns every root candidate for state, best first.
// An affordable order short-circuits the search and is returned alone.
func (p *Planner) Evaluate(ctx context.Context, state *models.GameState) []Decision {
	if p.Config.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Config.Deadline)
		defer cancel()
	}

	me := state.Players[models.Me]

	// Brewing is always taken when possible
	if order, ok := state.Market.FirstAffordable(me.Inventory); ok {
		d, _ := NewDecision(state, models.Brew{OrderID: order.ID})
		d.TurnsToPayoff = 1
		d.Reward = order.Reward
		d.OrderID = order.ID
		return []Decision{d}
	}

	var candidates []Decision
	for _, move := range p.rootMoves(state) {
		d, ok := NewDecision(state, move)
		if !ok {
			continue
		}
		d.rank = len(candidates)
		candidates = append(candidates, p.rollout(ctx, d))
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Better(candidates[j])
	})
	return candidates
}

// rootMoves lists the moves evaluated at the root, in generation order:
// casts, free learn, utility learn, rest.
func (p *Planner) rootMoves(state *models.GameState) []models.Move {
	me := state.Players[models.Me]

	moves := p.castMoves(me)
	if p.Config.MaxCastCandidates > 0 && len(moves) > p.Config.MaxCastCandidates {
		moves = moves[:p.Config.MaxCastCandidates]
	}

	if state.Turn < p.Config.FreeLearnTurns {
		for _, entry := range state.Tome.RankedForFreeLearn(me.Spells) {
			if me.Inventory.CanProvide(entry.LearnCost(), 1) {
				moves = append(moves, models.Learn{TomeSpellID: entry.ID})
				break
			}
		}
	}

	if ranked := state.Tome.RankedByUtility(me.Inventory); len(ranked) > 0 {
		learn := models.Learn{TomeSpellID: ranked[0].ID}
		if !containsMove(moves, learn) {
			moves = append(moves, learn)
		}
	}

	if me.Exhausted() > p.Config.RestThreshold {
		moves = append(moves, models.Rest{})
	}

	return moves
}

// castMoves lists every castable spell with every repeat count from 1
// up to the configured cap, stopping at the first unaffordable count.
func (p *Planner) castMoves(me models.Player) []models.Move {
	var moves []models.Move
	for _, spell := range me.Spells {
		for times := 1; times <= spell.MaxTimes(p.Config.MaxRepeat); times++ {
			if !spell.CastableBy(me.Inventory, times) {
				break
			}
			moves = append(moves, models.Cast{SpellID: spell.ID, Times: times})
		}
	}
	return moves
}

// rollout plays greedy moves from d.State until an order is affordable,
// the turn budget is spent, the context is done or no move helps.
func (p *Planner) rollout(ctx context.Context, d Decision) Decision {
	state := d.State
	for turns := 1; ; turns++ {
		me := state.Players[models.Me]
		if order, ok := state.Market.FirstAffordable(me.Inventory); ok {
			d.TurnsToPayoff = turns
			d.Reward = order.Reward
			d.OrderID = order.ID
			d.Shortfall = 0
			return d
		}

		if order, shortfall, ok := state.Market.Closest(me.Inventory); ok {
			d.OrderID = order.ID
			d.Shortfall = shortfall
		}

		if turns >= p.Config.TurnBudget {
			return d
		}
		if ctx.Err() != nil {
			d.Truncated = true
			return d
		}

		next, ok := p.greedyStep(state)
		if !ok {
			return d
		}
		state = next
	}
}

// greedyStep applies the locally best move: the cast that brings the
// inventory closest to an order without pushing stock above the market
// ceiling, or a rest when no such cast exists.
func (p *Planner) greedyStep(state *models.GameState) (*models.GameState, bool) {
	me := state.Players[models.Me]
	ceiling := state.Market.Ceiling(p.Config.CeilingSlack)

	var best *models.GameState
	var bestKey stepKey
	for _, move := range p.castMoves(me) {
		next, ok := Apply(state, move)
		if !ok {
			continue
		}
		key := newStepKey(next, ceiling)
		if key.wasteful {
			continue
		}
		if best == nil || key.better(bestKey) {
			best, bestKey = next, key
		}
	}
	if best != nil {
		return best, true
	}

	if me.Exhausted() > 0 {
		return Apply(state, models.Rest{})
	}
	return nil, false
}

// stepKey scores a state reached by one rollout cast
type stepKey struct {
	wasteful  bool
	shortfall int
	reward    int
}

func newStepKey(state *models.GameState, ceiling models.Ingredients) stepKey {
	inv := state.Players[models.Me].Inventory
	key := stepKey{wasteful: inv.Exceeds(ceiling)}
	if order, shortfall, ok := state.Market.Closest(inv); ok {
		key.shortfall = shortfall
		key.reward = order.Reward
	}
	return key
}

func (k stepKey) better(other stepKey) bool {
	if k.shortfall != other.shortfall {
		return k.shortfall < other.shortfall
	}
	return k.reward > other.reward
}

func containsMove(moves []models.Move, move models.Move) bool {
	for _, m := range moves {
		if m == move {
			return true
		}
	}
	return false
}
