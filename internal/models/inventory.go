package models

import "sort"

// Capacity is the maximum number of ingredient units a player can hold
const Capacity = 10

// Inventory is the non-negative ingredient stock of one player.
// Every tier is >= 0 and Sum() <= Capacity.
type Inventory struct {
	Ingredients
}

// NewInventory creates an inventory from its four tiers
func NewInventory(t0, t1, t2, t3 int) Inventory {
	return Inventory{Ingredients: NewIngredients(t0, t1, t2, t3)}
}

// Left returns the remaining capacity
func (inv Inventory) Left() int {
	return Capacity - inv.Sum()
}

// IsFull returns true when no more units fit
func (inv Inventory) IsFull() bool {
	return inv.Left() <= 0
}

// Shortfall returns how far the inventory is from covering an order delta.
// Missing units are weighted by tier+1, so a missing tier-3 unit counts
// four times a missing tier-0 unit.
func (inv Inventory) Shortfall(need Ingredients) int {
	missing := 0
	for i, qty := range inv.Ingredients {
		if short := -(qty + need[i]); short > 0 {
			missing += short * (i + 1)
		}
	}
	return missing
}

// ScarcestFirst returns tier indices ordered by ascending quantity.
// Equal quantities keep tier order.
func (inv Inventory) ScarcestFirst() []int {
	tiers := []int{0, 1, 2, 3}
	sort.SliceStable(tiers, func(i, j int) bool {
		return inv.Ingredients[tiers[i]] < inv.Ingredients[tiers[j]]
	})
	return tiers
}

func (inv Inventory) String() string {
	return "Inventory " + inv.Ingredients.String()
}
