package converter

import "github.com/napolitain/solver-brew/internal/models"

// Snapshot is the JSON form of a GameState
type Snapshot struct {
	Turn    int             `json:"turn"`
	Players [2]PlayerJSON   `json:"players"`
	Orders  []OrderJSON     `json:"orders"`
	Tome    []TomeSpellJSON `json:"tome"`
}

// PlayerJSON is the JSON form of a Player
type PlayerJSON struct {
	Inventory [4]int      `json:"inventory"`
	Rupees    int         `json:"rupees"`
	Spells    []SpellJSON `json:"spells"`
}

// SpellJSON is the JSON form of an owned Spell
type SpellJSON struct {
	ID         int    `json:"id"`
	Delta      [4]int `json:"delta"`
	Active     bool   `json:"active"`
	Repeatable bool   `json:"repeatable"`
}

// OrderJSON is the JSON form of an Order
type OrderJSON struct {
	ID     int    `json:"id"`
	Delta  [4]int `json:"delta"`
	Reward int    `json:"reward"`
	Bonus  int    `json:"bonus,omitempty"`
}

// TomeSpellJSON is the JSON form of a TomeSpell
type TomeSpellJSON struct {
	ID         int    `json:"id"`
	Delta      [4]int `json:"delta"`
	Index      int    `json:"index"`
	Tax        int    `json:"tax"`
	Repeatable bool   `json:"repeatable"`
}

// SnapshotFromState converts a GameState to its JSON form
func SnapshotFromState(state *models.GameState) Snapshot {
	snap := Snapshot{
		Turn:   state.Turn,
		Orders: make([]OrderJSON, 0, len(state.Market.Orders)),
		Tome:   make([]TomeSpellJSON, 0, len(state.Tome.Spells)),
	}

	for i, p := range state.Players {
		pj := PlayerJSON{
			Inventory: p.Inventory.Ingredients,
			Rupees:    p.Rupees,
			Spells:    make([]SpellJSON, 0, len(p.Spells)),
		}
		for _, s := range p.Spells {
			pj.Spells = append(pj.Spells, SpellJSON{
				ID:         s.ID,
				Delta:      s.Delta,
				Active:     s.Active,
				Repeatable: s.Repeatable,
			})
		}
		snap.Players[i] = pj
	}

	for _, o := range state.Market.Orders {
		snap.Orders = append(snap.Orders, OrderJSON{ID: o.ID, Delta: o.Delta, Reward: o.Reward, Bonus: o.Bonus})
	}

	for _, t := range state.Tome.Spells {
		snap.Tome = append(snap.Tome, TomeSpellJSON{
			ID:         t.ID,
			Delta:      t.Delta,
			Index:      t.Index,
			Tax:        t.Tax,
			Repeatable: t.Repeatable,
		})
	}

	return snap
}

// ToGameState converts the JSON form back to a GameState
func (s Snapshot) ToGameState() *models.GameState {
	state := models.NewGameState()
	state.Turn = s.Turn

	for i, pj := range s.Players {
		p := models.Player{
			Inventory: models.Inventory{Ingredients: pj.Inventory},
			Rupees:    pj.Rupees,
		}
		for _, sj := range pj.Spells {
			p.Spells = append(p.Spells, models.NewSpell(sj.ID, sj.Delta, sj.Active, sj.Repeatable))
		}
		state.Players[i] = p
	}

	for _, oj := range s.Orders {
		state.Market.Orders = append(state.Market.Orders, models.Order{
			ID:     oj.ID,
			Delta:  oj.Delta,
			Reward: oj.Reward,
			Bonus:  oj.Bonus,
		})
	}

	for _, tj := range s.Tome {
		state.Tome.Spells = append(state.Tome.Spells, models.TomeSpell{
			ID:         tj.ID,
			Delta:      tj.Delta,
			Index:      tj.Index,
			Tax:        tj.Tax,
			Repeatable: tj.Repeatable,
		})
	}

	return state
}
