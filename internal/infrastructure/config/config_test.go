package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracker.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("", Default())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg != Default() {
			t.Fatalf("expected defaults, got %+v", cfg)
		}
	})

	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"), Default())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Status.Terminal != "Finalizado" {
			t.Fatalf("expected default vocabulary, got %+v", cfg.Status)
		}
	})

	t.Run("file overrides vocabulary", func(t *testing.T) {
		path := writeConfig(t, `
[status]
pending = "Pendente"
working = "Trabalhando"
terminal = "OK"
`)
		cfg, err := Load(path, Default())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Status.Terminal != "OK" {
			t.Fatalf("expected overridden terminal, got %q", cfg.Status.Terminal)
		}
		// Untouched sections keep their defaults.
		if cfg.Report.WeeklyScreenTarget != 5 {
			t.Fatalf("expected default target, got %d", cfg.Report.WeeklyScreenTarget)
		}
		v := cfg.Vocabulary()
		if string(v.Terminal) != "OK" || string(v.Pending) != "Pendente" {
			t.Fatalf("unexpected vocabulary: %+v", v)
		}
	})

	t.Run("malformed toml fails", func(t *testing.T) {
		path := writeConfig(t, "status = [broken")
		if _, err := Load(path, Default()); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("duplicate vocabulary values fail", func(t *testing.T) {
		path := writeConfig(t, `
[status]
pending = "OK"
working = "Trabalhando"
terminal = "OK"
`)
		if _, err := Load(path, Default()); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("non-positive report constants fail", func(t *testing.T) {
		path := writeConfig(t, `
[report]
weekly_screen_target = 0
`)
		if _, err := Load(path, Default()); err == nil {
			t.Fatal("expected error")
		}
	})
}
