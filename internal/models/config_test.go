package models

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "planner.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultPlannerConfigIsValid(t *testing.T) {
	if err := ValidatePlannerConfig(DefaultPlannerConfig()); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadPlannerConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
turn_budget: 7
max_repeat: 3
deadline: 25ms
`)

	config, err := LoadPlannerConfig(path)
	if err != nil {
		t.Fatalf("LoadPlannerConfig failed: %v", err)
	}

	if config.TurnBudget != 7 {
		t.Errorf("TurnBudget = %d, want 7", config.TurnBudget)
	}
	if config.MaxRepeat != 3 {
		t.Errorf("MaxRepeat = %d, want 3", config.MaxRepeat)
	}
	if config.Deadline != 25*time.Millisecond {
		t.Errorf("Deadline = %s, want 25ms", config.Deadline)
	}

	// Untouched fields keep defaults
	if config.RestThreshold != DefaultPlannerConfig().RestThreshold {
		t.Errorf("RestThreshold = %d, want default", config.RestThreshold)
	}
}

func TestLoadPlannerConfigErrors(t *testing.T) {
	if _, err := LoadPlannerConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := writeConfig(t, "turn_budget: [not, a, number]\n")
	if _, err := LoadPlannerConfig(path); err == nil {
		t.Error("expected error for invalid YAML value")
	}
}

func TestValidatePlannerConfig(t *testing.T) {
	config := DefaultPlannerConfig()
	config.TurnBudget = 0
	config.MaxRepeat = -1

	err := ValidatePlannerConfig(config)
	if err == nil {
		t.Fatal("expected validation error")
	}
	t.Logf("validation error: %v", err)
}
