package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenFileAbsent(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage != StorageMemory {
		t.Fatalf("expected memory default, got %q", cfg.Storage)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.HTTP.Addr)
	}
}

func TestLoadFileThenEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usersvc.yaml")
	raw := "storage: sqlite\nhttp:\n  addr: \":9090\"\nsqlite:\n  path: data.db\n"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	t.Setenv("HTTP_ADDR", ":7070")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage != StorageSQLite {
		t.Fatalf("file value lost: %q", cfg.Storage)
	}
	if cfg.SQLite.Path != "data.db" {
		t.Fatalf("file value lost: %q", cfg.SQLite.Path)
	}
	if cfg.HTTP.Addr != ":7070" {
		t.Fatalf("env must win over file, got %q", cfg.HTTP.Addr)
	}
}

func TestLoadRejectsUnknownStorage(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "cassandra")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected unknown storage error")
	}
}

func TestPostgresDSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: "5432", User: "svc", Password: "pw", Name: "users"}
	want := "postgres://svc:pw@db:5432/users?sslmode=disable"
	if got := p.DSN(); got != want {
		t.Fatalf("dsn mismatch: got %q want %q", got, want)
	}
}
