package store

import (
	"testing"

	"github.com/rs/zerolog"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(t.TempDir(), zerolog.Nop())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLite_SaveAndLoad(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save("T1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	token, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "T1" {
		t.Errorf("expected T1, got %q", token)
	}
}

func TestSQLite_SaveReplacesPrevious(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save("T1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save("T2"); err != nil {
		t.Fatalf("save: %v", err)
	}
	token, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "T2" {
		t.Errorf("expected the replacement credential, got %q", token)
	}
}

func TestSQLite_LoadEmpty(t *testing.T) {
	s := openTestStore(t)

	token, err := s.Load()
	if err != nil {
		t.Fatalf("loading an empty store must not fail: %v", err)
	}
	if token != "" {
		t.Errorf("expected no credential, got %q", token)
	}
}

func TestSQLite_ClearIsIdempotent(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save("T1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clearing an empty store must succeed: %v", err)
	}
	token, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "" {
		t.Errorf("expected no credential after clear, got %q", token)
	}
}
