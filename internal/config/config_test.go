package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault_Validates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestDefault_Values(t *testing.T) {
	cfg := Default()
	if cfg.MaxPasses != 40 {
		t.Errorf("MaxPasses: want 40, got %d", cfg.MaxPasses)
	}
	pc := cfg.Pitch()
	if pc.ThirdLower != 33.33 || pc.ThirdUpper != 66.67 {
		t.Errorf("third breakpoints: got %.2f/%.2f", pc.ThirdLower, pc.ThirdUpper)
	}
	if pc.BoxMinX != 83.0 || pc.BoxMinY != 21.1 || pc.BoxMaxY != 78.9 {
		t.Errorf("attacking box: got %.2f/%.2f/%.2f", pc.BoxMinX, pc.BoxMinY, pc.BoxMaxY)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_LayersOverDefaults(t *testing.T) {
	path := writeConfig(t, `
max_passes: 25
attacking_box:
  min_x: 80
  min_y: 20
  max_y: 80
predicates:
  defensive:
    - losing-failed-pass
    - any-goal
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxPasses != 25 {
		t.Errorf("MaxPasses: want 25, got %d", cfg.MaxPasses)
	}
	if cfg.AttackingBox.MinX != 80 {
		t.Errorf("box min_x: want 80, got %.1f", cfg.AttackingBox.MinX)
	}
	// Untouched sections keep their defaults.
	if cfg.Thirds.Lower != 33.33 {
		t.Errorf("thirds lower should keep default, got %.2f", cfg.Thirds.Lower)
	}
	names := cfg.PredicateNames("defensive")
	if len(names) != 2 || names[0] != "losing-failed-pass" {
		t.Errorf("predicate override not read: %v", names)
	}
	if cfg.PredicateNames("buildup") != nil {
		t.Error("unset perspective should return nil predicate names")
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"non-positive cap", "max_passes: 0\n", "max_passes"},
		{"inverted thirds", "thirds: {lower: 70, upper: 30}\n", "thirds"},
		{"inverted box", "attacking_box: {min_x: 83, min_y: 80, max_y: 20}\n", "attacking_box"},
	}
	for _, tc := range cases {
		path := writeConfig(t, tc.yaml)
		if _, err := Load(path); err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: expected error mentioning %q, got: %v", tc.name, tc.want, err)
		}
	}
}
