package models

// Player is one crafter: inventory, owned spells and accumulated rupees
type Player struct {
	Inventory Inventory
	Spells    []Spell
	Rupees    int
}

// Clone returns an independent copy of the player
func (p Player) Clone() Player {
	return Player{
		Inventory: p.Inventory,
		Spells:    append([]Spell(nil), p.Spells...),
		Rupees:    p.Rupees,
	}
}

// Spell returns a pointer to the owned spell with the given id
func (p *Player) Spell(id int) *Spell {
	for i := range p.Spells {
		if p.Spells[i].ID == id {
			return &p.Spells[i]
		}
	}
	return nil
}

// Castables returns the spells castable once against the current inventory
func (p Player) Castables() []Spell {
	var castables []Spell
	for _, spell := range p.Spells {
		if spell.CastableBy(p.Inventory, 1) {
			castables = append(castables, spell)
		}
	}
	return castables
}

// Exhausted returns the number of spells waiting for a rest
func (p Player) Exhausted() int {
	count := 0
	for _, spell := range p.Spells {
		if !spell.Active {
			count++
		}
	}
	return count
}

// Rest reactivates every spell and resets repeat counts
func (p *Player) Rest() {
	for i := range p.Spells {
		p.Spells[i].Active = true
		p.Spells[i].Repeat = 1
	}
}

// Learn adds a new active spell copied from a tome entry
func (p *Player) Learn(entry TomeSpell) {
	p.Spells = append(p.Spells, NewSpell(entry.ID, entry.Delta, true, entry.Repeatable))
}
