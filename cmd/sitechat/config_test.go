package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/nao1215/sitechat/internal/config"
)

func TestConfigCmd(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cmd := NewConfigCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The printed template must load back as a valid configuration.
	path := filepath.Join(t.TempDir(), "sitechat.yaml")
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		t.Fatalf("failed to write template: %v", err)
	}

	cf, err := config.LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile() error = %v", err)
	}
	cfg := config.NewConfig()
	cfg.Apply(cf)
	if err := cfg.Validate(); err != nil {
		t.Errorf("template does not validate: %v", err)
	}
	if cfg.Model != config.DefaultModel {
		t.Errorf("Model = %q, want %q", cfg.Model, config.DefaultModel)
	}
}

func TestConfigCmd_RejectsArgs(t *testing.T) {
	t.Parallel()

	cmd := NewConfigCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected an error for a positional argument")
	}
}
