package loader

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/napolitain/solver-brew/internal/models"
)

const sampleTurn = `9
44 BREW 0 -2 -2 0 11 3 4 0 0
53 BREW 0 0 -4 0 15 1 2 0 0
78 CAST 2 0 0 0 0 -1 -1 1 0
79 CAST -1 1 0 0 0 -1 -1 0 0
90 CAST -3 0 1 0 0 -1 -1 1 1
82 OPPONENT_CAST 2 0 0 0 0 -1 -1 1 0
24 LEARN 0 3 0 -1 0 0 2 1 1
12 LEARN 2 1 0 0 0 1 0 1 0
99 INSPECT 0 0 0 0 0 0 0 0 0
3 1 0 0 7
2 2 0 0 11
`

func TestReadTurn(t *testing.T) {
	tr := NewTurnReader(strings.NewReader(sampleTurn))
	state, err := tr.ReadTurn()
	if err != nil {
		t.Fatalf("ReadTurn: %v", err)
	}

	if len(state.Market.Orders) != 2 {
		t.Fatalf("orders = %d, want 2", len(state.Market.Orders))
	}
	first := state.Market.Orders[0]
	if first.ID != 44 || first.Reward != 11 || first.Bonus != 3 || first.Delta != models.NewIngredients(0, -2, -2, 0) {
		t.Errorf("first order = %+v", first)
	}

	me := state.Me()
	if len(me.Spells) != 3 {
		t.Fatalf("my spells = %d, want 3", len(me.Spells))
	}
	if me.Spells[1].Active {
		t.Error("spell 79 should be exhausted")
	}
	if s := me.Spells[2]; !s.Active || !s.Repeatable || s.Repeat != 1 {
		t.Errorf("spell 90 = %+v", s)
	}
	if me.Inventory != models.NewInventory(3, 1, 0, 0) || me.Rupees != 7 {
		t.Errorf("me = %s rupees %d", me.Inventory, me.Rupees)
	}

	opp := state.Opponent()
	if len(opp.Spells) != 1 || opp.Spells[0].ID != 82 {
		t.Errorf("opponent spells = %+v", opp.Spells)
	}
	if opp.Rupees != 11 {
		t.Errorf("opponent rupees = %d, want 11", opp.Rupees)
	}

	if len(state.Tome.Spells) != 2 {
		t.Fatalf("tome = %d entries, want 2", len(state.Tome.Spells))
	}
	if entry := state.Tome.Spells[0]; entry.Index != 0 || entry.Tax != 2 || !entry.Repeatable {
		t.Errorf("tome entry 24 = %+v", entry)
	}
}

func TestReadTurnCountsTurns(t *testing.T) {
	tr := NewTurnReader(strings.NewReader(sampleTurn + sampleTurn))

	for want := 0; want < 2; want++ {
		state, err := tr.ReadTurn()
		if err != nil {
			t.Fatalf("turn %d: %v", want, err)
		}
		if state.Turn != want {
			t.Errorf("Turn = %d, want %d", state.Turn, want)
		}
	}

	if _, err := tr.ReadTurn(); !errors.Is(err, io.EOF) {
		t.Errorf("after last turn err = %v, want io.EOF", err)
	}
}

func TestReadTurnEmptyFeed(t *testing.T) {
	if _, err := NewTurnReader(strings.NewReader("")).ReadTurn(); !errors.Is(err, io.EOF) {
		t.Errorf("err = %v, want io.EOF", err)
	}
}

func TestReadTurnMalformed(t *testing.T) {
	tests := []struct {
		name string
		feed string
	}{
		{"bad count", "x\n"},
		{"negative count", "-1\n"},
		{"short entity", "1\n44 BREW 0 -2 -2 0 11\n3 0 0 0 0\n3 0 0 0 0\n"},
		{"non integer field", "1\n44 BREW 0 -2 x 0 11 3 4 0 0\n3 0 0 0 0\n3 0 0 0 0\n"},
		{"short inventory", "0\n3 0 0 0\n3 0 0 0 0\n"},
		{"truncated", "2\n44 BREW 0 -2 -2 0 11 3 4 0 0\n"},
		{"missing opponent", "0\n3 0 0 0 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTurnReader(strings.NewReader(tt.feed)).ReadTurn()
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("err = %v, want ErrMalformedInput", err)
			}
		})
	}
}
