package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// File mirrors the on-disk YAML layout. Pointer fields distinguish "absent"
// from zero so a partial file only overrides what it names.
type File struct {
	ZoneRadius      *int     `yaml:"zone_radius"`
	Workers         *int     `yaml:"workers"`
	DrainIntervalMs *int     `yaml:"drain_interval_ms"`
	Caves           *bool    `yaml:"caves"`
	StructureChance *float64 `yaml:"structure_chance"`
	TreeChance      *float64 `yaml:"tree_chance"`
}

// Load reads a YAML settings file.
func Load(path string) (File, error) {
	var f File
	raw, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return f, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Apply pushes every present field into the global settings.
func (f File) Apply() {
	if f.ZoneRadius != nil {
		SetZoneRadius(*f.ZoneRadius)
	}
	if f.Workers != nil {
		SetWorkers(*f.Workers)
	}
	if f.DrainIntervalMs != nil {
		SetDrainInterval(time.Duration(*f.DrainIntervalMs) * time.Millisecond)
	}
	if f.Caves != nil {
		SetCaves(*f.Caves)
	}
	if f.StructureChance != nil {
		SetStructureChance(*f.StructureChance)
	}
	if f.TreeChance != nil {
		SetTreeChance(*f.TreeChance)
	}
}
