package brew

import "github.com/napolitain/solver-brew/internal/models"

// Apply returns the state produced by playing move for the own player.
// The input state is never modified. ok is false when the move is not
// legal in state, in which case no state is produced.
func Apply(state *models.GameState, move models.Move) (next *models.GameState, ok bool) {
	if !Legal(state, move) {
		return nil, false
	}

	next = state.Clone()
	me := next.Me()

	switch m := move.(type) {
	case models.Brew:
		// Ingredients are not debited: a brew ends the branch, so the
		// inventory after it is never read.
		order, _ := next.Market.Get(m.OrderID)
		me.Rupees += order.Reward
		next.Market.Remove(m.OrderID)

	case models.Cast:
		spell := me.Spell(m.SpellID)
		for i := 0; i < m.Times; i++ {
			me.Inventory.Add(spell.Delta, 1)
		}
		spell.Active = false
		spell.Repeat = m.Times

	case models.Learn:
		// The tier-0 index is only checked, not paid.
		entry, _ := next.Tome.Get(m.TomeSpellID)
		me.Learn(entry)
		next.Tome.Remove(m.TomeSpellID)

	case models.Rest:
		me.Rest()

	case models.Wait:
	}

	next.Turn++
	return next, true
}

// Legal reports whether move's precondition holds in state
func Legal(state *models.GameState, move models.Move) bool {
	me := state.Players[models.Me]

	switch m := move.(type) {
	case models.Brew:
		order, ok := state.Market.Get(m.OrderID)
		return ok && me.Inventory.CanProvide(order.Delta, 1)

	case models.Cast:
		spell := me.Spell(m.SpellID)
		return spell != nil && spell.CastableBy(me.Inventory, m.Times)

	case models.Learn:
		entry, ok := state.Tome.Get(m.TomeSpellID)
		return ok && me.Inventory.CanProvide(entry.LearnCost(), 1)

	case models.Rest, models.Wait:
		return true
	}
	return false
}
