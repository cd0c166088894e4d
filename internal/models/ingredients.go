package models

import "fmt"

// Tiers is the number of ingredient tiers (tier-0 is the most common)
const Tiers = 4

// Ingredients is a signed quantity per tier. It is used both for deltas
// (spells, orders, tome entries) and for inventories.
type Ingredients [Tiers]int

// NewIngredients builds a vector from its four tiers
func NewIngredients(t0, t1, t2, t3 int) Ingredients {
	return Ingredients{t0, t1, t2, t3}
}

// Sum returns the total of all tiers
func (v Ingredients) Sum() int {
	total := 0
	for _, qty := range v {
		total += qty
	}
	return total
}

// Cost returns the sum of negative tiers (zero or negative)
func (v Ingredients) Cost() int {
	cost := 0
	for _, qty := range v {
		if qty < 0 {
			cost += qty
		}
	}
	return cost
}

// Gain returns the sum of positive tiers
func (v Ingredients) Gain() int {
	gain := 0
	for _, qty := range v {
		if qty > 0 {
			gain += qty
		}
	}
	return gain
}

// Exceeds returns true if any tier is above the matching ceiling tier
func (v Ingredients) Exceeds(ceiling Ingredients) bool {
	for i, qty := range v {
		if qty > ceiling[i] {
			return true
		}
	}
	return false
}

// Scaled returns the vector multiplied by times
func (v Ingredients) Scaled(times int) Ingredients {
	for i := range v {
		v[i] *= times
	}
	return v
}

// Plus returns v + delta*times without modifying v
func (v Ingredients) Plus(delta Ingredients, times int) Ingredients {
	for i := range v {
		v[i] += delta[i] * times
	}
	return v
}

// Add applies delta times in place
func (v *Ingredients) Add(delta Ingredients, times int) {
	*v = v.Plus(delta, times)
}

// CanProvide returns true if v + delta*times has no negative tier
func (v Ingredients) CanProvide(delta Ingredients, times int) bool {
	for i, qty := range v {
		if qty+delta[i]*times < 0 {
			return false
		}
	}
	return true
}

// String formats the vector as [a b c d]
func (v Ingredients) String() string {
	return fmt.Sprintf("[%d %d %d %d]", v[0], v[1], v[2], v[3])
}
