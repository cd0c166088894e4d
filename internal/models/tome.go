package models

import "sort"

// Tome holds the spells that can currently be learned, in feed order
type Tome struct {
	Spells []TomeSpell
}

// NewTome creates a tome from entries, keeping their order
func NewTome(spells ...TomeSpell) Tome {
	return Tome{Spells: append([]TomeSpell(nil), spells...)}
}

// Clone returns an independent copy of the tome
func (t Tome) Clone() Tome {
	return Tome{Spells: append([]TomeSpell(nil), t.Spells...)}
}

// Learnable returns the entries whose index the inventory can pay in tier-0
func (t Tome) Learnable(inv Inventory) []TomeSpell {
	var learnable []TomeSpell
	for _, spell := range t.Spells {
		if inv.CanProvide(spell.LearnCost(), 1) {
			learnable = append(learnable, spell)
		}
	}
	return learnable
}

// RankedForFreeLearn returns the zero-cost entries ranked so that the ones
// reinforcing the tiers the player's own free spells already produce come
// first.
func (t Tome) RankedForFreeLearn(owned []Spell) []TomeSpell {
	var free []TomeSpell
	for _, spell := range t.Spells {
		if spell.IsFree() {
			free = append(free, spell)
		}
	}

	order := favoredTiers(owned)
	sort.SliceStable(free, func(i, j int) bool {
		for _, tier := range order {
			if free[i].Delta[tier] != free[j].Delta[tier] {
				return free[i].Delta[tier] > free[j].Delta[tier]
			}
		}
		return false
	})
	return free
}

// favoredTiers sums the deltas of the player's zero-cost spells and returns
// tiers from most to least produced. Ties go to the higher tier.
func favoredTiers(owned []Spell) []int {
	var produced Ingredients
	for _, spell := range owned {
		if spell.Delta.Cost() == 0 {
			produced.Add(spell.Delta, 1)
		}
	}
	tiers := []int{3, 2, 1, 0}
	sort.SliceStable(tiers, func(i, j int) bool {
		return produced[tiers[i]] > produced[tiers[j]]
	})
	return tiers
}

// RankedByUtility returns the learnable entries, cheapest first. Entries of
// equal cost are compared tier by tier, scarcest inventory tier first, and
// the one producing more of that tier wins.
func (t Tome) RankedByUtility(inv Inventory) []TomeSpell {
	learnable := t.Learnable(inv)
	order := inv.ScarcestFirst()
	sort.SliceStable(learnable, func(i, j int) bool {
		a, b := learnable[i].Delta, learnable[j].Delta
		if a.Cost() != b.Cost() {
			return a.Cost() > b.Cost()
		}
		for _, tier := range order {
			if a[tier] != b[tier] {
				return a[tier] > b[tier]
			}
		}
		return false
	})
	return learnable
}

// Get returns the entry with the given id
func (t Tome) Get(id int) (TomeSpell, bool) {
	for _, spell := range t.Spells {
		if spell.ID == id {
			return spell, true
		}
	}
	return TomeSpell{}, false
}

// Remove deletes the entry with the given id
func (t *Tome) Remove(id int) {
	kept := t.Spells[:0]
	for _, spell := range t.Spells {
		if spell.ID != id {
			kept = append(kept, spell)
		}
	}
	t.Spells = kept
}
