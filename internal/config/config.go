package config

import (
	"runtime"
	"sync"
	"time"
)

// StreamSettings holds the expansion scheduler configuration.
type StreamSettings struct {
	mu            sync.RWMutex
	zoneRadius    int // in zones
	workers       int
	drainInterval time.Duration
}

const (
	minZoneRadius    = 1
	maxZoneRadius    = 8
	minDrainInterval = 50 * time.Millisecond
)

var globalStreamSettings = &StreamSettings{
	zoneRadius:    2, // 5x5 zones around the focus
	workers:       runtime.NumCPU(),
	drainInterval: 500 * time.Millisecond,
}

// GetZoneRadius returns the visible ring radius in zones
func GetZoneRadius() int {
	globalStreamSettings.mu.RLock()
	defer globalStreamSettings.mu.RUnlock()
	return globalStreamSettings.zoneRadius
}

// SetZoneRadius sets the visible ring radius in zones
func SetZoneRadius(radius int) {
	globalStreamSettings.mu.Lock()
	defer globalStreamSettings.mu.Unlock()

	// Clamp to reasonable values
	if radius < minZoneRadius {
		radius = minZoneRadius
	}
	if radius > maxZoneRadius {
		radius = maxZoneRadius
	}

	globalStreamSettings.zoneRadius = radius
}

// GetWorkers returns the worker pool size
func GetWorkers() int {
	globalStreamSettings.mu.RLock()
	defer globalStreamSettings.mu.RUnlock()
	return globalStreamSettings.workers
}

// SetWorkers sets the worker pool size; values below one become one
func SetWorkers(n int) {
	globalStreamSettings.mu.Lock()
	defer globalStreamSettings.mu.Unlock()
	globalStreamSettings.workers = max(n, 1)
}

// GetDrainInterval returns the minimum time between result drains
func GetDrainInterval() time.Duration {
	globalStreamSettings.mu.RLock()
	defer globalStreamSettings.mu.RUnlock()
	return globalStreamSettings.drainInterval
}

// SetDrainInterval sets the minimum time between result drains
func SetDrainInterval(d time.Duration) {
	globalStreamSettings.mu.Lock()
	defer globalStreamSettings.mu.Unlock()
	globalStreamSettings.drainInterval = max(d, minDrainInterval)
}

// GetVisibleChunkSpan returns the edge length of the visible area in blocks
func GetVisibleChunkSpan() int {
	return (2*GetZoneRadius() + 1) * 64
}
