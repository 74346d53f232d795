package config

import "sync"

// WorldGenSettings holds world generation configuration
type WorldGenSettings struct {
	mu              sync.RWMutex
	caves           bool
	structureChance float64
	treeChance      float64
}

var globalWorldGenSettings = &WorldGenSettings{
	caves:           false,     // solid stone underground by default
	structureChance: 1.0 / 200, // one structure chunk in 200
	treeChance:      0.2,
}

// GetCaves returns whether caves are enabled
func GetCaves() bool {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.caves
}

// SetCaves sets whether caves are enabled
func SetCaves(enabled bool) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.caves = enabled
}

// GetStructureChance returns the probability that a chunk hosts a structure
func GetStructureChance() float64 {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.structureChance
}

// SetStructureChance sets the structure probability, clamped to [0,1]
func SetStructureChance(p float64) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.structureChance = clampUnit(p)
}

// GetTreeChance returns the probability that a grassland feature column grows a tree
func GetTreeChance() float64 {
	globalWorldGenSettings.mu.RLock()
	defer globalWorldGenSettings.mu.RUnlock()
	return globalWorldGenSettings.treeChance
}

// SetTreeChance sets the tree probability, clamped to [0,1]
func SetTreeChance(p float64) {
	globalWorldGenSettings.mu.Lock()
	defer globalWorldGenSettings.mu.Unlock()
	globalWorldGenSettings.treeChance = clampUnit(p)
}

func clampUnit(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
