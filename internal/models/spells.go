package models

import "fmt"

// Spell is a reusable ingredient transformation owned by a player.
// It is exhausted after a cast and restored by a rest.
type Spell struct {
	ID         int
	Delta      Ingredients
	Active     bool
	Repeatable bool
	Repeat     int // repeat count of the last simulated cast, reset to 1 by a rest
}

// NewSpell creates an owned spell with a repeat count of 1
func NewSpell(id int, delta Ingredients, active, repeatable bool) Spell {
	return Spell{
		ID:         id,
		Delta:      delta,
		Active:     active,
		Repeatable: repeatable,
		Repeat:     1,
	}
}

// MaxTimes returns the largest repeat count allowed for this spell
func (s Spell) MaxTimes(limit int) int {
	if !s.Repeatable {
		return 1
	}
	return limit
}

// CastableBy reports whether the spell can be cast times in a row against inv.
// The capacity check keeps a strict margin: Left() must be greater than the
// units the cast adds, so a converting spell cannot be cast on a full inventory.
func (s Spell) CastableBy(inv Inventory, times int) bool {
	if !s.Active || times < 1 {
		return false
	}
	if times > 1 && !s.Repeatable {
		return false
	}
	// The margin scales with times. A single cast keeps the plain
	// Left() > Sum() rule and a repeated one cannot overflow Capacity.
	if inv.Left() <= s.Delta.Sum()*times {
		return false
	}
	return inv.CanProvide(s.Delta, times)
}

func (s Spell) String() string {
	state := "active"
	if !s.Active {
		state = "exhausted"
	}
	if s.Repeatable {
		state += ", repeatable"
	}
	return fmt.Sprintf("Spell %d (%s, x%d) %s", s.ID, state, s.Repeat, s.Delta)
}

// TomeSpell is a spell that can be learned from the tome
type TomeSpell struct {
	ID         int
	Delta      Ingredients
	Index      int // tier-0 units required to learn it
	Tax        int // tier-0 units stacked on the entry
	Repeatable bool
}

// LearnCost returns the synthetic delta paid to learn the entry
func (t TomeSpell) LearnCost() Ingredients {
	return Ingredients{-t.Index, 0, 0, 0}
}

// IsFree returns true if the learned spell consumes no ingredients
func (t TomeSpell) IsFree() bool {
	return t.Delta.Cost() == 0
}

func (t TomeSpell) String() string {
	return fmt.Sprintf("TomeSpell %d (index %d, tax %d, repeatable %t) %s",
		t.ID, t.Index, t.Tax, t.Repeatable, t.Delta)
}

// Order is a one-shot potion request. Delta is never positive.
type Order struct {
	ID     int
	Delta  Ingredients
	Reward int
	Bonus  int // urgency bonus already included in Reward
}

// Needs returns the ingredient quantities the order consumes, as positive values
func (o Order) Needs() Ingredients {
	return o.Delta.Scaled(-1)
}

func (o Order) String() string {
	return fmt.Sprintf("Order %d (%d) %s", o.ID, o.Reward, o.Delta)
}
