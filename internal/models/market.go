package models

import "sort"

// Market holds the open orders in feed order
type Market struct {
	Orders []Order
}

// NewMarket creates a market from orders, keeping their order
func NewMarket(orders ...Order) Market {
	return Market{Orders: append([]Order(nil), orders...)}
}

// Clone returns an independent copy of the market
func (m Market) Clone() Market {
	return Market{Orders: append([]Order(nil), m.Orders...)}
}

// SortedByRewardDescending returns the orders ranked by reward.
// Orders with the same reward keep their feed order.
func (m Market) SortedByRewardDescending() []Order {
	sorted := append([]Order(nil), m.Orders...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Reward > sorted[j].Reward
	})
	return sorted
}

// FirstAffordable returns the highest-reward order the inventory covers.
// It stops at the first feasible order and never compares leftovers.
func (m Market) FirstAffordable(inv Inventory) (Order, bool) {
	for _, order := range m.SortedByRewardDescending() {
		if inv.CanProvide(order.Delta, 1) {
			return order, true
		}
	}
	return Order{}, false
}

// Closest returns the order with the smallest shortfall against inv,
// preferring the higher reward on equal shortfall.
func (m Market) Closest(inv Inventory) (Order, int, bool) {
	var best Order
	bestShortfall := -1
	for _, order := range m.SortedByRewardDescending() {
		shortfall := inv.Shortfall(order.Delta)
		if bestShortfall < 0 || shortfall < bestShortfall {
			best, bestShortfall = order, shortfall
		}
	}
	return best, bestShortfall, bestShortfall >= 0
}

// Ceiling returns, per tier, the largest quantity any open order consumes
// plus slack. Stock above it cannot be absorbed by a single order.
func (m Market) Ceiling(slack int) Ingredients {
	var ceiling Ingredients
	for _, order := range m.Orders {
		for i, qty := range order.Needs() {
			if qty > ceiling[i] {
				ceiling[i] = qty
			}
		}
	}
	for i := range ceiling {
		ceiling[i] += slack
	}
	return ceiling
}

// Get returns the order with the given id
func (m Market) Get(id int) (Order, bool) {
	for _, order := range m.Orders {
		if order.ID == id {
			return order, true
		}
	}
	return Order{}, false
}

// Remove deletes the order with the given id
func (m *Market) Remove(id int) {
	kept := m.Orders[:0]
	for _, order := range m.Orders {
		if order.ID != id {
			kept = append(kept, order)
		}
	}
	m.Orders = kept
}
