package models

import "testing"

func TestSpellCastableBy(t *testing.T) {
	convert := NewSpell(1, NewIngredients(-2, 1, 0, 0), true, true)
	gain := NewSpell(2, NewIngredients(2, 0, 0, 0), true, false)
	grow := NewSpell(3, NewIngredients(1, 0, 0, 0), true, true)

	tests := []struct {
		name  string
		spell Spell
		inv   Inventory
		times int
		want  bool
	}{
		{"convert once", convert, NewInventory(2, 0, 0, 0), 1, true},
		{"convert twice short", convert, NewInventory(3, 0, 0, 0), 2, false},
		{"convert twice", convert, NewInventory(4, 0, 0, 0), 2, true},
		{"gain needs headroom", gain, NewInventory(8, 0, 0, 0), 1, false},
		{"gain with headroom", gain, NewInventory(7, 0, 0, 0), 1, true},
		{"non-repeatable twice", gain, NewInventory(0, 0, 0, 0), 2, false},
		{"full inventory conversion", convert, NewInventory(6, 2, 1, 1), 1, true},
		{"zero times", convert, NewInventory(4, 0, 0, 0), 0, false},
		{"repeated gain within headroom", grow, NewInventory(7, 0, 0, 0), 2, true},
		{"repeated gain margin scales", grow, NewInventory(7, 0, 0, 0), 3, false},
		{"repeated gain would overflow", grow, NewInventory(7, 0, 0, 0), 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spell.CastableBy(tt.inv, tt.times); got != tt.want {
				t.Errorf("CastableBy(%s, %d) = %v, want %v", tt.inv, tt.times, got, tt.want)
			}
		})
	}

	exhausted := convert
	exhausted.Active = false
	if exhausted.CastableBy(NewInventory(4, 0, 0, 0), 1) {
		t.Error("exhausted spell should not be castable")
	}
}

func TestPlayerRest(t *testing.T) {
	p := Player{Spells: []Spell{
		{ID: 1, Active: false, Repeat: 3},
		{ID: 2, Active: true, Repeat: 1},
		{ID: 3, Active: false, Repeat: 2},
	}}

	if got := p.Exhausted(); got != 2 {
		t.Fatalf("Exhausted() = %d, want 2", got)
	}

	p.Rest()
	for _, s := range p.Spells {
		if !s.Active || s.Repeat != 1 {
			t.Errorf("spell %d after rest: active=%v repeat=%d", s.ID, s.Active, s.Repeat)
		}
	}
}

func TestPlayerLearnCopiesEntry(t *testing.T) {
	p := Player{}
	entry := TomeSpell{ID: 7, Delta: NewIngredients(-3, 0, 0, 1), Index: 2, Repeatable: true}
	p.Learn(entry)

	s := p.Spell(7)
	if s == nil {
		t.Fatal("learned spell not found")
	}
	if s.Delta != entry.Delta || s.Repeatable != entry.Repeatable || !s.Active || s.Repeat != 1 {
		t.Errorf("learned spell = %+v", *s)
	}
}

func TestPlayerCloneIsIndependent(t *testing.T) {
	p := Player{
		Inventory: NewInventory(1, 2, 3, 4),
		Spells:    []Spell{NewSpell(1, NewIngredients(2, 0, 0, 0), true, false)},
	}
	clone := p.Clone()
	clone.Spells[0].Active = false
	clone.Inventory.Add(NewIngredients(1, 0, 0, 0), 1)

	if !p.Spells[0].Active {
		t.Error("clone shares spells with original")
	}
	if p.Inventory != NewInventory(1, 2, 3, 4) {
		t.Error("clone shares inventory with original")
	}
}
