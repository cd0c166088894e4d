package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/napolitain/solver-brew/internal/converter"
	"github.com/napolitain/solver-brew/internal/models"
)

const sampleSnapshot = `{
  "turn": 4,
  "players": [
    {"inventory": [3, 0, 1, 0], "rupees": 6, "spells": [
      {"id": 78, "delta": [2, 0, 0, 0], "active": true, "repeatable": false},
      {"id": 90, "delta": [-3, 0, 1, 0], "active": false, "repeatable": true}
    ]},
    {"inventory": [2, 2, 0, 0], "rupees": 0, "spells": []}
  ],
  "orders": [
    {"id": 44, "delta": [0, -2, -2, 0], "reward": 11, "bonus": 3},
    {"id": 53, "delta": [0, 0, -4, 0], "reward": 15}
  ],
  "tome": [
    {"id": 24, "delta": [0, 3, 0, -1], "index": 0, "tax": 1, "repeatable": true}
  ]
}`

func TestDecodeSnapshot(t *testing.T) {
	state, err := DecodeSnapshot([]byte(sampleSnapshot))
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}

	if state.Turn != 4 {
		t.Errorf("Turn = %d, want 4", state.Turn)
	}
	if state.Me().Inventory != models.NewInventory(3, 0, 1, 0) {
		t.Errorf("inventory = %s", state.Me().Inventory)
	}
	if len(state.Me().Spells) != 2 || state.Me().Spells[1].Active {
		t.Errorf("spells = %+v", state.Me().Spells)
	}
	if order, ok := state.Market.Get(44); !ok || order.Bonus != 3 {
		t.Errorf("order 44 = %+v, %v", order, ok)
	}
	if entry, ok := state.Tome.Get(24); !ok || entry.Tax != 1 {
		t.Errorf("tome entry 24 = %+v, %v", entry, ok)
	}
}

func TestDecodeSnapshotRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{"turn":`},
		{"one player", strings.Replace(sampleSnapshot, `,
    {"inventory": [2, 2, 0, 0], "rupees": 0, "spells": []}`, "", 1)},
		{"short delta", strings.Replace(sampleSnapshot, `[0, 0, -4, 0]`, `[0, -4]`, 1)},
		{"negative stock", strings.Replace(sampleSnapshot, `[3, 0, 1, 0]`, `[-1, 0, 1, 0]`, 1)},
		{"unknown field", strings.Replace(sampleSnapshot, `"turn": 4`, `"turn": 4, "weather": "rain"`, 1)},
		{"missing tome", strings.Replace(sampleSnapshot, `"tome"`, `"catalog"`, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeSnapshot([]byte(tt.doc)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "turn.json")
	if err := os.WriteFile(path, []byte(sampleSnapshot), 0o644); err != nil {
		t.Fatal(err)
	}

	state, err := LoadSnapshot(path)
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(state.Market.Orders) != 2 {
		t.Errorf("orders = %d, want 2", len(state.Market.Orders))
	}

	if _, err := LoadSnapshot(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestValidateSnapshotFromFeed(t *testing.T) {
	tr := NewTurnReader(strings.NewReader(sampleTurn))
	state, err := tr.ReadTurn()
	if err != nil {
		t.Fatal(err)
	}

	if err := ValidateSnapshot(converter.SnapshotFromState(state)); err != nil {
		t.Errorf("feed snapshot should validate: %v", err)
	}
}
