package loader

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/napolitain/solver-brew/internal/converter"
	"github.com/napolitain/solver-brew/internal/models"
)

//go:embed snapshot.schema.json
var snapshotSchemaJSON string

var snapshotSchema = jsonschema.MustCompileString("snapshot.schema.json", snapshotSchemaJSON)

// LoadSnapshot reads and validates a JSON snapshot file
func LoadSnapshot(path string) (*models.GameState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return DecodeSnapshot(data)
}

// DecodeSnapshot validates data against the snapshot schema and converts it
// to a GameState
func DecodeSnapshot(data []byte) (*models.GameState, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var snap converter.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snap.ToGameState(), nil
}

// ValidateSnapshot checks a snapshot against the schema
func ValidateSnapshot(snap converter.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return validate(data)
}

func validate(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if err := snapshotSchema.Validate(doc); err != nil {
		return fmt.Errorf("invalid snapshot: %w", err)
	}
	return nil
}
