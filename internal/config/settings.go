package config

import "time"

// Settings is an immutable copy of the current configuration. Long-lived
// components take one at construction so later setter calls do not change
// them mid-run.
type Settings struct {
	ZoneRadius      int
	Workers         int
	DrainInterval   time.Duration
	Caves           bool
	StructureChance float64
	TreeChance      float64
}

// Snapshot captures the current configuration.
func Snapshot() Settings {
	return Settings{
		ZoneRadius:      GetZoneRadius(),
		Workers:         GetWorkers(),
		DrainInterval:   GetDrainInterval(),
		Caves:           GetCaves(),
		StructureChance: GetStructureChance(),
		TreeChance:      GetTreeChance(),
	}
}

// Restore applies every field of s through the clamping setters.
func Restore(s Settings) {
	SetZoneRadius(s.ZoneRadius)
	SetWorkers(s.Workers)
	SetDrainInterval(s.DrainInterval)
	SetCaves(s.Caves)
	SetStructureChance(s.StructureChance)
	SetTreeChance(s.TreeChance)
}
