package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigCommandPrintsEffectiveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	if err := os.WriteFile(path, []byte("links:\n  distance: 77\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "--config", path})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		configPath = ""
	}()

	if err := Execute(); err != nil {
		t.Fatalf("config command: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "distance: 77") {
		t.Errorf("override missing from output:\n%s", got)
	}
	if !strings.Contains(got, "density_divisor: 10") {
		t.Errorf("defaults missing from output:\n%s", got)
	}
}

func TestConfigCommandBadFile(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"config", "--config", filepath.Join(t.TempDir(), "missing.yaml")})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		configPath = ""
	}()

	if err := Execute(); err == nil {
		t.Error("expected error for missing config file")
	}
}
