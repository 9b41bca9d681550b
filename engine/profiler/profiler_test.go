//go:build profile

package profiler

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSpeedscopeBalancesScopes(t *testing.T) {
	evs := []event{
		{at: 0, frame: 0, open: true},
		{at: 1000, frame: 1, open: true},
		{at: 3000, frame: 1},
		{at: 4000, frame: 2}, // close without open
		{at: 5000, frame: 0, open: true},
	}
	doc, err := speedscope(evs, []string{"update", "draw", "x"})
	if err != nil {
		t.Fatal(err)
	}
	got := doc.Profiles[0].Events
	want := []ssEvent{
		{"O", 0, 0},
		{"O", 1, 1},
		{"C", 3, 1},
		{"O", 5, 0},
		{"C", 5, 0},
		{"C", 5, 0},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d events %+v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if doc.Profiles[0].EndValue != 5 {
		t.Errorf("end = %d, want 5", doc.Profiles[0].EndValue)
	}
}

func TestRingKeepsNewest(t *testing.T) {
	var r eventRing
	r.init(3)
	for i := range 5 {
		r.push(event{at: int64(i)})
	}
	got := r.snapshot()
	if len(got) != 3 || got[0].at != 2 || got[2].at != 4 {
		t.Errorf("snapshot = %+v", got)
	}
}

func TestDumpWritesSpeedscopeJSON(t *testing.T) {
	Init(64)
	end := Start("Game.Update")
	end()

	path := filepath.Join(t.TempDir(), DumpName)
	if err := Dump(path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc ssFile
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Profiles) != 1 || len(doc.Profiles[0].Events) != 2 {
		t.Errorf("profile = %+v", doc.Profiles)
	}
	if doc.Shared.Frames[0].Name != "Game.Update" {
		t.Errorf("frames = %+v", doc.Shared.Frames)
	}
}
