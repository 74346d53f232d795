package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func restoreAfter(t *testing.T) {
	saved := Snapshot()
	t.Cleanup(func() { Restore(saved) })
}

func TestZoneRadiusClamped(t *testing.T) {
	restoreAfter(t)
	tests := []struct {
		in, want int
	}{
		{0, 1},
		{-4, 1},
		{3, 3},
		{100, 8},
	}
	for _, tt := range tests {
		SetZoneRadius(tt.in)
		if got := GetZoneRadius(); got != tt.want {
			t.Errorf("SetZoneRadius(%d) -> %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestWorkersAndDrainClamped(t *testing.T) {
	restoreAfter(t)
	SetWorkers(0)
	if GetWorkers() != 1 {
		t.Errorf("workers should clamp to 1, got %d", GetWorkers())
	}
	SetDrainInterval(time.Millisecond)
	if GetDrainInterval() != 50*time.Millisecond {
		t.Errorf("drain interval should clamp to 50ms, got %v", GetDrainInterval())
	}
	SetStructureChance(2)
	SetTreeChance(-1)
	if GetStructureChance() != 1 || GetTreeChance() != 0 {
		t.Errorf("chances should clamp to [0,1]")
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	restoreAfter(t)
	SetZoneRadius(2)
	s := Snapshot()
	SetZoneRadius(5)
	if s.ZoneRadius != 2 {
		t.Errorf("snapshot changed after setter: %d", s.ZoneRadius)
	}
	if GetVisibleChunkSpan() != 11*64 {
		t.Errorf("visible span = %d, want %d", GetVisibleChunkSpan(), 11*64)
	}
}

func TestLoadAndApply(t *testing.T) {
	restoreAfter(t)
	SetCaves(false)
	SetWorkers(3)

	path := filepath.Join(t.TempDir(), "voxelterra.yaml")
	body := "zone_radius: 3\ndrain_interval_ms: 250\ncaves: true\ntree_chance: 0.5\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if f.Workers != nil {
		t.Errorf("absent field should stay nil")
	}
	f.Apply()

	s := Snapshot()
	if s.ZoneRadius != 3 || s.DrainInterval != 250*time.Millisecond || !s.Caves || s.TreeChance != 0.5 {
		t.Errorf("unexpected settings after Apply: %+v", s)
	}
	if s.Workers != 3 {
		t.Errorf("workers should be untouched, got %d", s.Workers)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("zone_radius: [1, 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("expected error for malformed YAML")
	}
}
