package palette

// BlockStateID is an opaque 16-bit handle into the externally generated
// block-state table.
type BlockStateID uint16

// BiomeID is an opaque handle into the externally generated biome table.
type BiomeID uint32

// BlockRegistry is the named-interface contract the chunk engine uses to
// ask the (out of scope) block catalog questions it cannot answer on its
// own: whether a state is air, and whether it carries a block entity.
type BlockRegistry interface {
	IsAir(BlockStateID) bool
	// BlockEntityKind returns the block-entity type id for states that
	// carry one, and ok=false for states that don't.
	BlockEntityKind(BlockStateID) (kind int32, ok bool)
}

// PackedUpdate is (block_global_id << 12) | (x << 8) | (z << 4) | y, with
// 4-bit section-local coordinates, matching the section-delta wire
// entry format.
type PackedUpdate uint64

// NewPackedUpdate builds a PackedUpdate from a global block id and
// section-local coordinates.
func NewPackedUpdate(globalID uint32, x, z, y int) PackedUpdate {
	return PackedUpdate(uint64(globalID)<<12 | uint64(x&0xF)<<8 | uint64(z&0xF)<<4 | uint64(y&0xF))
}

// GlobalID returns the block state's global id.
func (p PackedUpdate) GlobalID() uint32 { return uint32(p >> 12) }

// X returns the section-local X coordinate (0-15).
func (p PackedUpdate) X() int { return int((p >> 8) & 0xF) }

// Z returns the section-local Z coordinate (0-15).
func (p PackedUpdate) Z() int { return int((p >> 4) & 0xF) }

// Y returns the section-local Y coordinate (0-15).
func (p PackedUpdate) Y() int { return int(p & 0xF) }

const (
	sectionBlockCells = 16 * 16 * 16
	sectionBiomeCells = 4 * 4 * 4
)

// cellIndex computes the block container index for section-local
// coordinates as (y<<8)|(z<<4)|x; unlike PackedUpdate, y occupies the
// high nibble and x the low one.
func cellIndex(x, z, y int) int {
	return (y&0xF)<<8 | (z&0xF)<<4 | (x & 0xF)
}

func biomeCellIndex(x, z, y int) int {
	return (y&0x3)<<4 | (z&0x3)<<2 | (x & 0x3)
}

// Section is a 16x16x16 cube of blocks plus a 4x4x4 cube of biomes, with
// an exact non-air count and a delta log of block-state changes made
// since the last flush.
type Section struct {
	Blocks *Container[BlockStateID]
	Biomes *Container[BiomeID]

	NonAirCount uint16

	SectionUpdates []PackedUpdate
}

// NewSection builds an empty section filled with fillBlock/fillBiome.
// Blocks use the bit-width triple (4, 8, ceil(log2(state_count))),
// biomes (0, 3, ceil(log2(biome_count))).
func NewSection(reg BlockRegistry, fillBlock BlockStateID, blockDirectBits int, fillBiome BiomeID, biomeDirectBits int) *Section {
	s := &Section{
		Blocks: NewContainer(sectionBlockCells, 4, 8, blockDirectBits, fillBlock,
			func(v BlockStateID) uint32 { return uint32(v) },
			func(g uint32) BlockStateID { return BlockStateID(g) }),
		Biomes: NewContainer(sectionBiomeCells, 0, 3, biomeDirectBits, fillBiome,
			func(v BiomeID) uint32 { return uint32(v) },
			func(g uint32) BiomeID { return BiomeID(g) }),
	}
	if !reg.IsAir(fillBlock) {
		s.NonAirCount = sectionBlockCells
	}
	return s
}

// SetBlockState writes a block state at section-local coordinates and
// returns the prior value. It maintains NonAirCount exactly but does not
// itself decide whether to append a delta log entry; callers
// (Chunk.SetBlockState) own that policy since it depends on the chunk's
// refresh/loaded state.
func (s *Section) SetBlockState(reg BlockRegistry, x, y, z int, state BlockStateID) BlockStateID {
	idx := cellIndex(x, z, y)
	prior := s.Blocks.Set(idx, state)
	if prior != state {
		wasAir := reg.IsAir(prior)
		isAir := reg.IsAir(state)
		switch {
		case wasAir && !isAir:
			s.NonAirCount++
		case !wasAir && isAir:
			s.NonAirCount--
		}
	}
	return prior
}

// BlockState reads a block state at section-local coordinates.
func (s *Section) BlockState(x, y, z int) BlockStateID {
	return s.Blocks.Get(cellIndex(x, z, y))
}

// SetBiome writes a biome at section-local biome coordinates (4:1 scale
// of block coordinates) and returns the prior value.
func (s *Section) SetBiome(x, y, z int, biome BiomeID) BiomeID {
	return s.Biomes.Set(biomeCellIndex(x, z, y), biome)
}

// Biome reads a biome at section-local biome coordinates.
func (s *Section) Biome(x, y, z int) BiomeID {
	return s.Biomes.Get(biomeCellIndex(x, z, y))
}

// FillBlockStates replaces every block cell with state, semantically a
// loop of SetBlockState but implemented as a single Fill for speed.
func (s *Section) FillBlockStates(reg BlockRegistry, state BlockStateID) {
	s.Blocks.Fill(state)
	if reg.IsAir(state) {
		s.NonAirCount = 0
	} else {
		s.NonAirCount = sectionBlockCells
	}
}
