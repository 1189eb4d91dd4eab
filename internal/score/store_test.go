package score

import (
	"path/filepath"
	"testing"
)

func openStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreQualifies(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "scores.db"))

	// Any score earns a spot while the table has room, zero included.
	if !s.Qualifies(0) {
		t.Error("Qualifies(0) = false on an empty table")
	}

	for _, e := range []Entry{{"AAA", 300}, {"BBB", 200}, {"CCC", 100}} {
		if err := s.Submit(e.Initials, e.Score); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		score int
		want  bool
	}{
		{99, false},
		{100, false}, // a tie does not displace the incumbent
		{101, true},
		{500, true},
	}
	for _, tt := range tests {
		if got := s.Qualifies(tt.score); got != tt.want {
			t.Errorf("Qualifies(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	s := openStore(t, path)
	for _, e := range []Entry{{"LOW", 50}, {"TOP", 400}, {"MID", 200}} {
		if err := s.Submit(e.Initials, e.Score); err != nil {
			t.Fatal(err)
		}
	}
	s.Close()

	// A fresh open sees the same table, sorted descending.
	s2 := openStore(t, path)
	got := s2.Entries()
	want := []Entry{{"TOP", 400}, {"MID", 200}, {"LOW", 50}}
	if len(got) != len(want) {
		t.Fatalf("Entries = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestStoreTruncatesToTableSize(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "scores.db"))

	for _, e := range []Entry{{"AAA", 100}, {"BBB", 200}, {"CCC", 300}, {"DDD", 400}} {
		if err := s.Submit(e.Initials, e.Score); err != nil {
			t.Fatal(err)
		}
	}

	got := s.Entries()
	if len(got) != TableSize {
		t.Fatalf("table holds %d entries, want %d", len(got), TableSize)
	}
	if got[len(got)-1].Initials != "BBB" {
		t.Errorf("lowest kept entry = %+v, want BBB (AAA pushed out)", got[len(got)-1])
	}
}

func TestStoreEarlierSubmissionWinsTies(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "scores.db"))

	if err := s.Submit("OLD", 100); err != nil {
		t.Fatal(err)
	}
	if err := s.Submit("NEW", 100); err != nil {
		t.Fatal(err)
	}

	got := s.Entries()
	if got[0].Initials != "OLD" || got[1].Initials != "NEW" {
		t.Fatalf("tie order = %+v, want OLD before NEW", got)
	}
}

func TestStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	s := openStore(t, path)
	if err := s.Submit("AAA", 100); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if got := s.Entries(); len(got) != 0 {
		t.Fatalf("Entries = %+v after Clear, want empty", got)
	}
	s.Close()

	s2 := openStore(t, path)
	if got := s2.Entries(); len(got) != 0 {
		t.Fatalf("Entries = %+v after reopen, want empty", got)
	}
}

func TestStoreSkipsCorruptRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")

	s := openStore(t, path)
	// Write rows the loader must reject alongside a good one.
	if _, err := s.db.Exec(
		"INSERT INTO highscores (pos, initials, score) VALUES (0, 'TOOLONG', 50), (1, 'OK!', 75), (2, 'NEG', -5)",
	); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s2 := openStore(t, path)
	got := s2.Entries()
	if len(got) != 1 || got[0] != (Entry{"OK!", 75}) {
		t.Fatalf("Entries = %+v, want only the valid row", got)
	}
}

func TestMemoryTable(t *testing.T) {
	m := NewMemory()

	if !m.Qualifies(0) {
		t.Error("Qualifies(0) = false on an empty table")
	}
	for _, e := range []Entry{{"AAA", 100}, {"BBB", 300}, {"CCC", 200}, {"DDD", 400}} {
		if err := m.Submit(e.Initials, e.Score); err != nil {
			t.Fatal(err)
		}
	}

	got := m.Entries()
	want := []Entry{{"DDD", 400}, {"BBB", 300}, {"CCC", 200}}
	if len(got) != len(want) {
		t.Fatalf("Entries = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if m.Qualifies(150) {
		t.Error("Qualifies(150) = true with a 200 floor")
	}
}
