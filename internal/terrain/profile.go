package terrain

import "voxelterra/internal/world"

const (
	// StoneTop is the first altitude above the solid stone base.
	StoneTop = 128
	// WaterLevel is the surface of every lake and ocean.
	WaterLevel = 138
	// MaxSurface is the highest column surface the painter writes.
	MaxSurface = 254

	spikeCapFrom  = 145
	beachBelow    = 140
	volcanoShore  = 144
	volcanoCrater = 163
	lavaLakeTop   = 150
)

// Feature is a small decoration grown on a single column.
type Feature uint8

const (
	FeatureNone Feature = iota
	FeatureCactus
	FeatureTree
)

// Structure is the landmark stamped into a structure chunk.
type Structure uint8

const (
	StructureNone Structure = iota
	StructurePyramid
	StructureIgloo
	StructurePillars
)

// Profile describes how a biome lays out a column on top of the stone base.
type Profile struct {
	// CapFrom, when non-zero, limits fill material to below this altitude
	// and covers everything from it up to the surface with top material.
	CapFrom int
	// BeachBelow turns columns lower than this altitude into sand.
	BeachBelow int
	// IceCap freezes the water surface.
	IceCap bool
	// Volcanic columns use the crater layout instead of the layered one.
	Volcanic bool
	// Boulders stacks cobble on top of the surface where structure
	// density is positive.
	Boulders bool

	Feature   Feature
	Structure Structure
}

// DefaultProfiles returns the standard per-biome layout table.
func DefaultProfiles() [world.NumBiomes]Profile {
	return [world.NumBiomes]Profile{
		world.BiomeIceSpikes:      {CapFrom: spikeCapFrom, IceCap: true},
		world.BiomeSwamp:          {},
		world.BiomeIsland:         {BeachBelow: beachBelow},
		world.BiomeTundra:         {IceCap: true, Structure: StructureIgloo},
		world.BiomeGrassland:      {Feature: FeatureTree},
		world.BiomeVolcano:        {Volcanic: true},
		world.BiomeBadlands:       {IceCap: true, Boulders: true, Structure: StructurePillars},
		world.BiomeDesert:         {Feature: FeatureCactus, Structure: StructurePyramid},
		world.BiomeDesertMountain: {CapFrom: spikeCapFrom},
	}
}
