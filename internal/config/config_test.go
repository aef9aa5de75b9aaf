package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// isolate points the user and local config directories at empty temp dirs.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	for _, name := range Rulesets() {
		t.Run(name, func(t *testing.T) {
			data, err := DefaultYAML(name)
			if err != nil {
				t.Fatalf("DefaultYAML(%q) error: %v", name, err)
			}
			var got RulesetConfig
			if err := yaml.Unmarshal(data, &got); err != nil {
				t.Fatalf("embedded %s.yaml does not parse: %v", name, err)
			}
			want, _ := Default(name)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("embedded %s.yaml differs from the built-in ruleset (-want +got):\n%s", name, diff)
			}
		})
	}
}

func TestBuiltinRulesetsMapToEngineRules(t *testing.T) {
	tests := []struct {
		name string
		want tetris.Rules
	}{
		{RulesetStandard, tetris.StandardRules()},
		{RulesetClassic, tetris.ClassicRules()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, _ := Default(tc.name)
			if err := cfg.Validate(); err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			ec, err := cfg.ToEngine(7)
			if err != nil {
				t.Fatalf("ToEngine() error: %v", err)
			}
			if ec.Rules != tc.want {
				t.Errorf("rules = %+v, expected %+v", ec.Rules, tc.want)
			}
			if ec.Seed != 7 {
				t.Errorf("seed = %d, expected 7", ec.Seed)
			}
			if _, err := tetris.New(ec); err != nil {
				t.Errorf("tetris.New() error: %v", err)
			}
		})
	}
}

func TestToEngineSpawn(t *testing.T) {
	cfg := DefaultStandardConfig()
	ec, err := cfg.ToEngine(0)
	if err != nil {
		t.Fatalf("ToEngine() error: %v", err)
	}
	if ec.Spawn != tetris.DefaultSpawn(12) {
		t.Errorf("spawn = %v, expected top center", ec.Spawn)
	}

	cfg.Board.Spawn = &SpawnConfig{X: 3, Y: 1}
	ec, err = cfg.ToEngine(0)
	if err != nil {
		t.Fatalf("ToEngine() error: %v", err)
	}
	if ec.Spawn != core.Pt(3, 1) {
		t.Errorf("spawn = %v, expected (3,1)", ec.Spawn)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RulesetConfig)
	}{
		{"unknown kicks", func(c *RulesetConfig) { c.Rotation.Kicks = "srs" }},
		{"unknown scoring", func(c *RulesetConfig) { c.Scoring.Policy = "combo" }},
		{"unknown ramp", func(c *RulesetConfig) { c.Speed.Ramp = "per_level" }},
		{"zero floor", func(c *RulesetConfig) { c.Speed.FloorMs = 0 }},
		{"initial below floor", func(c *RulesetConfig) { c.Speed.InitialMs = 50 }},
		{"negative decrement", func(c *RulesetConfig) { c.Speed.DecrementMs = -5 }},
		{"threshold missing", func(c *RulesetConfig) {
			c.Speed.Ramp = "per_threshold"
			c.Speed.ThresholdPoints = 0
		}},
		{"board too narrow", func(c *RulesetConfig) { c.Board.Width = 4 }},
		{"spawn off board", func(c *RulesetConfig) { c.Board.Spawn = &SpawnConfig{X: 9, Y: 0} }},
		{"bad up key", func(c *RulesetConfig) { c.Controls.UpRotates = "left" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultStandardConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected an error")
			}
			if !errors.Is(err, tetris.ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected it to wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	for _, name := range Rulesets() {
		cfg, err := Load("", name)
		if err != nil {
			t.Fatalf("Load(%q) error: %v", name, err)
		}
		want, _ := Default(name)
		if diff := cmp.Diff(want, cfg); diff != "" {
			t.Errorf("Load(%q) mismatch (-want +got):\n%s", name, diff)
		}
	}

	cfg, err := Load("", "")
	if err != nil || cfg.Name != RulesetStandard {
		t.Errorf("Load with empty ruleset = %q, %v; expected standard", cfg.Name, err)
	}
}

func TestLoadCustomPathOverridesFields(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "mine.yaml")
	doc := "speed:\n  floor_ms: 150\ncontrols:\n  up_rotates: ccw\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path, RulesetStandard)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Speed.FloorMs != 150 {
		t.Errorf("floor_ms = %d, expected 150", cfg.Speed.FloorMs)
	}
	if cfg.Speed.InitialMs != 1000 || cfg.Scoring.Policy != "weighted" {
		t.Errorf("unset fields should keep standard values, got %+v", cfg)
	}
	if cfg.Controls.UpRotatesCW() {
		t.Error("up_rotates: ccw should not rotate clockwise")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml"), RulesetStandard); err == nil {
		t.Error("Load() with a missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("speed: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad, RulesetStandard); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)

	userDir := filepath.Join(home, ".tetris", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	write := func(path, doc string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write(filepath.Join("configs", "classic.yaml"), "speed:\n  floor_ms: 300\n")
	cfg, _ := Load("", RulesetClassic)
	if cfg.Speed.FloorMs != 300 {
		t.Errorf("local config ignored: floor_ms = %d", cfg.Speed.FloorMs)
	}

	write(filepath.Join(userDir, "classic.yaml"), "speed:\n  floor_ms: 400\n")
	cfg, _ = Load("", RulesetClassic)
	if cfg.Speed.FloorMs != 400 {
		t.Errorf("user config should win over local: floor_ms = %d", cfg.Speed.FloorMs)
	}

	write(filepath.Join(userDir, "classic.yaml"), "speed: [broken")
	cfg, _ = Load("", RulesetClassic)
	if cfg.Speed.FloorMs != 300 {
		t.Errorf("malformed user config should fall through to local: floor_ms = %d", cfg.Speed.FloorMs)
	}
}

func TestLoadUnknownRuleset(t *testing.T) {
	isolate(t)
	if _, err := Load("", "modern"); !errors.Is(err, ErrUnknownRuleset) {
		t.Errorf("Load(modern) = %v, expected ErrUnknownRuleset", err)
	}
	if _, err := DefaultYAML("modern"); !errors.Is(err, ErrUnknownRuleset) {
		t.Errorf("DefaultYAML(modern) = %v, expected ErrUnknownRuleset", err)
	}
}
