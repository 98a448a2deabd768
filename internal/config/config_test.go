package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := Parse("omega.yaml", GetDefaultYAML("omega"))
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultOmegaConfig() {
		t.Errorf("embedded default differs from DefaultOmegaConfig():\n%+v\n%+v", cfg, DefaultOmegaConfig())
	}
}

func TestParseYAMLOverlaysDefaults(t *testing.T) {
	data := []byte("player:\n  speed: 350\ngameplay:\n  lives: 1\n")

	cfg, err := Parse("custom.yaml", data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Player.Speed != 350 {
		t.Errorf("Player.Speed = %g, expected 350", cfg.Player.Speed)
	}
	if cfg.Gameplay.Lives != 1 {
		t.Errorf("Gameplay.Lives = %d, expected 1", cfg.Gameplay.Lives)
	}
	// Untouched keys keep their defaults
	if cfg.Field.Width != 800 || cfg.Bounds.MaxY != 0.15 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestParseTOML(t *testing.T) {
	data := []byte("[field]\nwidth = 1024.0\nheight = 768.0\n\n[input]\nhold_ms = 90\n")

	cfg, err := Parse("omega.toml", data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Field.Width != 1024 || cfg.Field.Height != 768 {
		t.Errorf("Field = %+v, expected 1024x768", cfg.Field)
	}
	if cfg.Input.HoldWindow() != 90*time.Millisecond {
		t.Errorf("HoldWindow() = %v, expected 90ms", cfg.Input.HoldWindow())
	}
}

func TestEncodeIsReadable(t *testing.T) {
	cfg := DefaultOmegaConfig()
	cfg.Player.Speed = 320

	for _, format := range []string{"yaml", "toml"} {
		out, err := Encode(cfg, format)
		if err != nil {
			t.Fatalf("Encode(%s) failed: %v", format, err)
		}
		got, err := Parse("omega."+format, out)
		if err != nil {
			t.Fatalf("Parse(%s) failed: %v\n%s", format, err, out)
		}
		if got != cfg {
			t.Errorf("%s: got %+v, expected %+v", format, got, cfg)
		}
	}

	if _, err := Encode(cfg, "json"); err == nil {
		t.Error("Encode(json) should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*OmegaConfig)
	}{
		{"zero field", func(c *OmegaConfig) { c.Field.Width = 0 }},
		{"negative speed", func(c *OmegaConfig) { c.Player.Speed = -1 }},
		{"zero size", func(c *OmegaConfig) { c.Player.Size = 0 }},
		{"inverted x bounds", func(c *OmegaConfig) { c.Bounds.MinX, c.Bounds.MaxX = 0.5, -0.5 }},
		{"inverted y bounds", func(c *OmegaConfig) { c.Bounds.MinY = 0.2 }},
		{"banner too wide", func(c *OmegaConfig) { c.Banner.Width = 1.5 }},
		{"too many lives", func(c *OmegaConfig) { c.Gameplay.Lives = 4 }},
		{"negative hold", func(c *OmegaConfig) { c.Input.HoldMS = -10 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultOmegaConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}

	if err := DefaultOmegaConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadOmegaCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.yaml")
	if err := os.WriteFile(path, []byte("player:\n  size: 8\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOmega(path)
	if err != nil {
		t.Fatalf("LoadOmega() failed: %v", err)
	}
	if cfg.Player.Size != 8 {
		t.Errorf("Player.Size = %g, expected 8", cfg.Player.Size)
	}
}

func TestLoadOmegaErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadOmega(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadOmega() should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("field:\n  width: -3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOmega(bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadOmega() = %v, expected ErrInvalid", err)
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "omega.yaml")
	if err := os.WriteFile(path, []byte("player:\n  speed: 100\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan OmegaConfig, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(cfg OmegaConfig, err error) {
			if err == nil {
				reloaded <- cfg
			}
		})
	}()

	// Give the watcher time to register before writing
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("player:\n  speed: 300\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-reloaded:
			if cfg.Player.Speed == 300 {
				cancel()
				if err := <-done; err != nil {
					t.Errorf("Watch() returned %v", err)
				}
				return
			}
		case <-deadline:
			t.Fatal("no reload observed after write")
		}
	}
}
