package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	cfg, err := load(home, t.TempDir())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Folder != filepath.Join(home, ".worktime", "timestamps") {
		t.Errorf("Folder = %q", cfg.Folder)
	}
	if cfg.File != "timestamps.json" {
		t.Errorf("File = %q, want timestamps.json", cfg.File)
	}
	if cfg.ShowEmpty || cfg.Notify || cfg.Verbose {
		t.Errorf("expected boolean defaults to be false, got %+v", cfg)
	}
	if cfg.TargetToday != 8*time.Hour || cfg.TargetWeek != 40*time.Hour {
		t.Errorf("unexpected targets: %v %v", cfg.TargetToday, cfg.TargetWeek)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	content := "folder: /tmp/logs\nfile: hours.json\nshow_empty: true\ntarget_today: 6h\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := load(t.TempDir(), dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Path() != filepath.Join("/tmp/logs", "hours.json") {
		t.Errorf("Path = %q", cfg.Path())
	}
	if !cfg.ShowEmpty {
		t.Error("expected ShowEmpty=true")
	}
	if cfg.TargetToday != 6*time.Hour {
		t.Errorf("TargetToday = %v, want 6h", cfg.TargetToday)
	}
	if cfg.TargetWeek != 40*time.Hour {
		t.Errorf("TargetWeek = %v, want default 40h", cfg.TargetWeek)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("WORKTIME_FILE", "env.json")
	t.Setenv("WORKTIME_NOTIFY", "true")

	cfg, err := load(t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.File != "env.json" {
		t.Errorf("File = %q, want env.json", cfg.File)
	}
	if !cfg.Notify {
		t.Error("expected Notify=true from env")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("folder: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := load(t.TempDir(), dir); err == nil {
		t.Error("expected error for malformed config")
	}
}
