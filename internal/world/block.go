package world

// BlockType identifies the material stored in a single voxel cell.
// It is one byte wide so a full chunk fits in 64 KiB.
type BlockType uint8

const (
	BlockEmpty BlockType = iota
	BlockGrass
	BlockSnowGrass
	BlockDirt
	BlockStone
	BlockWater
	BlockSnow
	BlockLava
	BlockBedrock
	BlockIce
	BlockSand
	BlockSandstone
	BlockObsidian
	BlockCactus
	BlockCobble
	BlockWood
	BlockLeaves
	BlockMud

	// NumBlockTypes is the number of defined block types.
	NumBlockTypes = int(BlockMud) + 1
)

var blockNames = [NumBlockTypes]string{
	BlockEmpty:     "empty",
	BlockGrass:     "grass",
	BlockSnowGrass: "snow_grass",
	BlockDirt:      "dirt",
	BlockStone:     "stone",
	BlockWater:     "water",
	BlockSnow:      "snow",
	BlockLava:      "lava",
	BlockBedrock:   "bedrock",
	BlockIce:       "ice",
	BlockSand:      "sand",
	BlockSandstone: "sandstone",
	BlockObsidian:  "obsidian",
	BlockCactus:    "cactus",
	BlockCobble:    "cobble",
	BlockWood:      "wood",
	BlockLeaves:    "leaves",
	BlockMud:       "mud",
}

func (b BlockType) String() string {
	if int(b) < NumBlockTypes {
		return blockNames[b]
	}
	return "unknown"
}

// IsLiquidLike reports whether the block is drawn as a see-through surface
// that solid neighbours must still show their faces through.
func (b BlockType) IsLiquidLike() bool {
	return b == BlockWater || b == BlockIce
}

// IsTransparent reports whether faces of this block belong in the
// transparent mesh group.
func (b BlockType) IsTransparent() bool {
	return b == BlockWater || b == BlockIce || b == BlockCactus
}

// Direction is one of the six axis-aligned directions.
type Direction uint8

const (
	XPos Direction = iota
	XNeg
	YPos
	YNeg
	ZPos
	ZNeg
)

// Directions lists all six directions in mesh order.
var Directions = [6]Direction{XPos, XNeg, YPos, YNeg, ZPos, ZNeg}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return d ^ 1
}

// Offset returns the unit step along d.
func (d Direction) Offset() (dx, dy, dz int) {
	switch d {
	case XPos:
		return 1, 0, 0
	case XNeg:
		return -1, 0, 0
	case YPos:
		return 0, 1, 0
	case YNeg:
		return 0, -1, 0
	case ZPos:
		return 0, 0, 1
	default:
		return 0, 0, -1
	}
}

func (d Direction) String() string {
	switch d {
	case XPos:
		return "+x"
	case XNeg:
		return "-x"
	case YPos:
		return "+y"
	case YNeg:
		return "-y"
	case ZPos:
		return "+z"
	case ZNeg:
		return "-z"
	}
	return "?"
}
