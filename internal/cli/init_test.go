package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jokarl/nearacct/internal/config"
)

func TestRunInit_CreatesConfig(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)
	forceFlag = false

	if err := runInit(nil, nil); err != nil {
		t.Fatalf("runInit returned error: %v", err)
	}

	configPath := filepath.Join(tmpDir, config.FileName)
	cfg, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if len(cfg.Networks) != 2 {
		t.Errorf("expected 2 networks in starter config, got %d", len(cfg.Networks))
	}
}

func TestRunInit_ExistingFile_NoForce(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)

	configPath := filepath.Join(tmpDir, config.FileName)
	if err := os.WriteFile(configPath, []byte("existing content"), 0644); err != nil {
		t.Fatalf("failed to create existing config: %v", err)
	}
	forceFlag = false

	if err := runInit(nil, nil); err == nil {
		t.Errorf("expected error when config file exists without --force")
	}

	content, _ := os.ReadFile(configPath)
	if string(content) != "existing content" {
		t.Errorf("existing config file was modified")
	}
}

func TestRunInit_ExistingFile_Force(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)

	configPath := filepath.Join(tmpDir, config.FileName)
	if err := os.WriteFile(configPath, []byte("existing content"), 0644); err != nil {
		t.Fatalf("failed to create existing config: %v", err)
	}
	forceFlag = true
	defer func() { forceFlag = false }()

	if err := runInit(nil, nil); err != nil {
		t.Fatalf("runInit returned error with --force: %v", err)
	}

	content, _ := os.ReadFile(configPath)
	if string(content) != config.DefaultConfigHCL() {
		t.Errorf("config file was not overwritten")
	}
}
