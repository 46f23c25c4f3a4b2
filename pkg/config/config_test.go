package config

import (
	"os"
	"path/filepath"
	"testing"
)

// unsetEnv clears key for the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	prev, had := os.LookupEnv(key)
	os.Unsetenv(key)
	t.Cleanup(func() {
		if had {
			os.Setenv(key, prev)
		} else {
			os.Unsetenv(key)
		}
	})
}

func TestNew_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("APP_ENV=staging\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	unsetEnv(t, "APP_ENV")
	unsetEnv(t, "MCP_TRANSPORT")

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Env != "staging" {
		t.Errorf("App.Env = %q, want staging from .env", cfg.App.Env)
	}
	if cfg.IsDevelopment() {
		t.Error("staging should not count as development")
	}
	if cfg.MCP.Transport != "stdio" {
		t.Errorf("MCP.Transport = %q, want default stdio", cfg.MCP.Transport)
	}

	again, _ := New()
	if again != cfg {
		t.Error("New should return the same config on every call")
	}
}

func TestIsDevelopment(t *testing.T) {
	tests := map[string]bool{
		"development": true,
		"production":  false,
		"staging":     false,
	}
	for env, want := range tests {
		c := &Config{}
		c.App.Env = env
		if got := c.IsDevelopment(); got != want {
			t.Errorf("IsDevelopment(%q) = %v, want %v", env, got, want)
		}
	}
}
