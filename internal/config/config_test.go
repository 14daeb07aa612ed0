package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPAddr != ":8081" {
		t.Fatalf("http addr = %q", cfg.HTTPAddr)
	}
	if cfg.Sync.Interval.Std() != 30*time.Second {
		t.Fatalf("sync interval = %v", cfg.Sync.Interval)
	}
	if cfg.Enrichment.SNMPCommunity != "public" {
		t.Fatalf("snmp community = %q", cfg.Enrichment.SNMPCommunity)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
http_addr: ":9090"
log_level: debug
database_url: postgres://localhost/fabricview
sync:
  interval: 5s
enrichment:
  reverse_dns: true
  snmp: true
  snmp_community: lab
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPAddr != ":9090" || cfg.LogLevel != "debug" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Sync.Interval.Std() != 5*time.Second {
		t.Fatalf("sync interval = %v", cfg.Sync.Interval)
	}
	if !cfg.Enrichment.ReverseDNS || !cfg.Enrichment.SNMP {
		t.Fatalf("enrichment toggles = %+v", cfg.Enrichment)
	}
	if cfg.Enrichment.SNMPCommunity != "lab" {
		t.Fatalf("snmp community = %q", cfg.Enrichment.SNMPCommunity)
	}
	// Untouched keys keep their defaults.
	if cfg.Enrichment.SNMPPort != 161 {
		t.Fatalf("snmp port = %d", cfg.Enrichment.SNMPPort)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("http_addr: \":9090\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FABRICVIEW_HTTP_ADDR", ":7070")
	t.Setenv("FABRICVIEW_SYNC_INTERVAL", "90s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPAddr != ":7070" {
		t.Fatalf("http addr = %q", cfg.HTTPAddr)
	}
	if cfg.Sync.Interval.Std() != 90*time.Second {
		t.Fatalf("sync interval = %v", cfg.Sync.Interval)
	}
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_MalformedYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("http_addr: [unclosed"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
