package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tcl9.dev/pickle/pkg/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	def := config.Default()
	if diff := cmp.Diff(def, cfg); diff != "" {
		t.Errorf("Load(missing) diff (-want +got):\n%s", diff)
	}
}

func TestLoadReadsFileFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picklerc.yaml")
	content := "recursion_limit: 50\nprompt: \"> \"\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RecursionLimit != 50 {
		t.Errorf("RecursionLimit = %d, want 50", cfg.RecursionLimit)
	}
	if cfg.Prompt != "> " {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, "> ")
	}
	if cfg.MaxArgc != config.Default().MaxArgc {
		t.Errorf("MaxArgc should fall back to default when unset in file")
	}
}

func TestLoadClampsBelowMinimum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picklerc.yaml")
	if err := os.WriteFile(path, []byte("recursion_limit: 1\nmax_argc: 1\n"), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RecursionLimit < 8 || cfg.MaxArgc < 8 {
		t.Errorf("got %+v, want fields clamped to >= 8", cfg)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "picklerc.yaml")
	if err := os.WriteFile(path, []byte("prompt: \"file> \"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PICKLE_PROMPT", "env> ")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prompt != "env> " {
		t.Errorf("Prompt = %q, want env override %q", cfg.Prompt, "env> ")
	}
}
