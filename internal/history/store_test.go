package history_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KristjanToop/gaas-growth-hacker/internal/history"
)

// newTestStore creates a Store backed by a temp directory for isolation.
func newTestStore(t *testing.T) *history.Store {
	t.Helper()
	s, err := history.New(history.Config{DataDir: t.TempDir(), MaxEntries: 50})
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// --- New / Initialization ---

func TestNew_CreatesDBFile(t *testing.T) {
	dir := t.TempDir()
	s, err := history.New(history.Config{DataDir: dir, MaxEntries: 50})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Join(dir, "history.db")); err != nil {
		t.Fatalf("database file missing: %v", err)
	}
}

func TestNew_IdempotentReopen(t *testing.T) {
	dir := t.TempDir()
	cfg := history.Config{DataDir: dir, MaxEntries: 50}

	s1, err := history.New(cfg)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if _, err := s1.Record("growth_health_check", map[string]any{"audience": "b2b"}, "health 57/100", 0.7); err != nil {
		t.Fatalf("Record: %v", err)
	}
	s1.Close()

	s2, err := history.New(cfg)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer s2.Close()

	entries, err := s2.Recent(10, "")
	if err != nil {
		t.Fatalf("Recent after reopen: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries after reopen, want 1", len(entries))
	}
}

// --- Record / Recent ---

func TestRecord_ReturnsUniqueIDs(t *testing.T) {
	s := newTestStore(t)

	a, err := s.Record("rank_channels", nil, "top channel seo", 0.75)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	b, err := s.Record("rank_channels", nil, "top channel seo", 0.75)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if a == b || a == "" {
		t.Errorf("ids should be unique and non-empty, got %q and %q", a, b)
	}
}

func TestRecent_FiltersByCapability(t *testing.T) {
	s := newTestStore(t)
	mustRecord(t, s, "growth_health_check", "health 60/100")
	mustRecord(t, s, "rank_channels", "top channel seo")
	mustRecord(t, s, "growth_health_check", "health 62/100")

	entries, err := s.Recent(10, "growth_health_check")
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	for _, e := range entries {
		if e.Capability != "growth_health_check" {
			t.Errorf("entry %s has capability %q", e.ID, e.Capability)
		}
	}
}

func TestRecent_RespectsLimit(t *testing.T) {
	s := newTestStore(t)
	for range 5 {
		mustRecord(t, s, "analyze_growth", "assessment")
	}

	entries, err := s.Recent(3, "")
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("got %d entries, want 3", len(entries))
	}
}

func TestRecent_StoresParamsAsJSON(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Record("growth_health_check",
		map[string]any{"audience": "b2c", "metrics": map[string]any{"monthly_churn": 0.05}},
		"health check", 0.6); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := s.Recent(1, "")
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries", len(entries))
	}
	if got := entries[0].Params; got == "" || got[0] != '{' {
		t.Errorf("params not stored as JSON object: %q", got)
	}
}

func mustRecord(t *testing.T, s *history.Store, capability, summary string) {
	t.Helper()
	if _, err := s.Record(capability, map[string]any{}, summary, 0.5); err != nil {
		t.Fatalf("Record(%s): %v", capability, err)
	}
}
