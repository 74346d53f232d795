package world

// Biome is the discrete terrain style of a column, picked from the
// temperature/wetness classification of the noise field.
type Biome uint8

const (
	BiomeIceSpikes Biome = iota
	BiomeSwamp
	BiomeIsland
	BiomeTundra
	BiomeGrassland
	BiomeVolcano
	BiomeBadlands
	BiomeDesert
	BiomeDesertMountain

	// NumBiomes is the number of defined biomes.
	NumBiomes = int(BiomeDesertMountain) + 1
)

var biomeNames = [NumBiomes]string{
	BiomeIceSpikes:      "ice_spikes",
	BiomeSwamp:          "swamp",
	BiomeIsland:         "island",
	BiomeTundra:         "tundra",
	BiomeGrassland:      "grassland",
	BiomeVolcano:        "volcano",
	BiomeBadlands:       "badlands",
	BiomeDesert:         "desert",
	BiomeDesertMountain: "desert_mountain",
}

func (b Biome) String() string {
	if int(b) < NumBiomes {
		return biomeNames[b]
	}
	return "unknown"
}

// Biomes returns every biome in declaration order.
func Biomes() []Biome {
	out := make([]Biome, NumBiomes)
	for i := range out {
		out[i] = Biome(i)
	}
	return out
}
