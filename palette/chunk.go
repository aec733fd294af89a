package palette

import (
	"fmt"
	"sync"
	"sync/atomic"

	ns "github.com/go-mclib/servercore/java_protocol/net_structures"
	"github.com/go-mclib/servercore/nbt"
)

// BlockEntity is the (kind, NBT compound) pair a chunk stores for block
// states that carry one.
type BlockEntity struct {
	Kind int32
	Data nbt.Tag
}

// localIndex packs chunk-local coordinates as x + z*16 + y*256, the key
// format of the block-entity map.
func localIndex(x, z, y int) uint32 {
	return uint32(x) + uint32(z)*16 + uint32(y)*256
}

// Chunk is an ordered sequence of Sections plus block-entity bookkeeping,
// a lazily-computed init-packet byte cache, and the refresh/viewed
// flags.
type Chunk struct {
	reg BlockRegistry

	minSectionY int
	sections    []*Section

	chunkX, chunkZ int32

	blockEntities         map[uint32]BlockEntity
	modifiedBlockEntities map[uint32]struct{}

	cacheMu         sync.Mutex
	cachedInitBytes []byte

	loaded  bool
	refresh bool
	viewed  atomic.Bool
}

// NewChunk builds an unloaded chunk (refresh=true, no delta tracking)
// with sectionCount sections starting at minSectionY, filled with the
// given default block/biome.
func NewChunk(reg BlockRegistry, chunkX, chunkZ int32, sectionCount, minSectionY int, fillBlock BlockStateID, blockDirectBits int, fillBiome BiomeID, biomeDirectBits int) *Chunk {
	sections := make([]*Section, sectionCount)
	for i := range sections {
		sections[i] = NewSection(reg, fillBlock, blockDirectBits, fillBiome, biomeDirectBits)
	}
	return &Chunk{
		reg:                   reg,
		minSectionY:           minSectionY,
		sections:              sections,
		chunkX:                chunkX,
		chunkZ:                chunkZ,
		blockEntities:         make(map[uint32]BlockEntity),
		modifiedBlockEntities: make(map[uint32]struct{}),
		refresh:               true,
	}
}

// MarkLoaded transitions the chunk from unloaded to loaded: from this
// point mutators append to delta logs.
func (c *Chunk) MarkLoaded() { c.loaded = true }

// IntoUnloaded clears delta logs and returns the chunk for cold storage.
func (c *Chunk) IntoUnloaded() *Chunk {
	c.loaded = false
	for _, s := range c.sections {
		s.SectionUpdates = nil
	}
	c.modifiedBlockEntities = map[uint32]struct{}{}
	return c
}

// IsLoaded reports whether the chunk is in the loaded state.
func (c *Chunk) IsLoaded() bool { return c.loaded }

// Refresh reports whether the next outbound update must be a full init
// packet.
func (c *Chunk) Refresh() bool { return c.refresh }

// Viewed reports whether any client observed the chunk during the prior
// tick. Safe for concurrent access.
func (c *Chunk) Viewed() bool { return c.viewed.Load() }

// MarkViewed records that a client's view includes this chunk this tick.
func (c *Chunk) MarkViewed() { c.viewed.Store(true) }

// ResetViewed clears the viewed flag before the next view-update pass.
func (c *Chunk) ResetViewed() { c.viewed.Store(false) }

func (c *Chunk) sectionIndexForY(y int) (secIdx, localY int) {
	secIdx = (y - c.minSectionY*16) >> 4
	localY = y - (c.minSectionY+secIdx)*16
	return
}

func (c *Chunk) checkXZ(x, z int) {
	if x < 0 || x >= 16 || z < 0 || z >= 16 {
		panic("palette: chunk coordinate out of range")
	}
}

func (c *Chunk) checkY(secIdx int) {
	if secIdx < 0 || secIdx >= len(c.sections) {
		panic("palette: chunk y out of range")
	}
}

func (c *Chunk) invalidateCache() {
	c.cacheMu.Lock()
	c.cachedInitBytes = nil
	c.cacheMu.Unlock()
}

// BlockState reads the block state at chunk-local coordinates.
func (c *Chunk) BlockState(x, y, z int) BlockStateID {
	c.checkXZ(x, z)
	secIdx, localY := c.sectionIndexForY(y)
	c.checkY(secIdx)
	return c.sections[secIdx].BlockState(x, localY, z)
}

// SetBlockState writes a block state at chunk-local coordinates and
// returns the prior state. Loaded chunks record the change in the
// section's delta log; any change invalidates the init cache. Block
// entities are left untouched: callers that want the create/remove
// bookkeeping use SetBlock.
func (c *Chunk) SetBlockState(x, y, z int, state BlockStateID) BlockStateID {
	c.checkXZ(x, z)
	secIdx, localY := c.sectionIndexForY(y)
	c.checkY(secIdx)

	sec := c.sections[secIdx]
	prior := sec.SetBlockState(c.reg, x, localY, z, state)

	if prior != state {
		c.invalidateCache()
		if c.loaded && !c.refresh {
			gid := uint32(state)
			sec.SectionUpdates = append(sec.SectionUpdates, NewPackedUpdate(gid, x, z, localY))
		}
	}
	return prior
}

// Block is a block state together with the block-entity NBT attached to
// it, if the state carries one.
type Block struct {
	State BlockStateID
	// Data is nil for states without a block entity.
	Data nbt.Tag
}

// Block reads the state and block-entity data at chunk-local
// coordinates.
func (c *Chunk) Block(x, y, z int) Block {
	b := Block{State: c.BlockState(x, y, z)}
	if be, ok := c.blockEntities[localIndex(x, z, y)]; ok {
		b.Data = be.Data
	}
	return b
}

// SetBlock writes a block state together with its block-entity data and
// returns the prior Block. When the new state carries a block-entity
// kind, b.Data becomes the entity's compound (an empty compound when
// nil); when it doesn't, any entity at the cell is removed. This is the
// only mutator that touches block entities alongside the state;
// SetBlockState is the bare state write.
func (c *Chunk) SetBlock(x, y, z int, b Block) Block {
	prior := c.Block(x, y, z)
	c.SetBlockState(x, y, z, b.State)

	idx := localIndex(x, z, y)
	if kind, ok := c.reg.BlockEntityKind(b.State); ok {
		data := b.Data
		if data == nil {
			data = nbt.Compound{}
		}
		c.blockEntities[idx] = BlockEntity{Kind: kind, Data: data}
		c.modifiedBlockEntities[idx] = struct{}{}
		c.invalidateCache()
	} else if _, had := c.blockEntities[idx]; had {
		delete(c.blockEntities, idx)
		c.modifiedBlockEntities[idx] = struct{}{}
		c.invalidateCache()
	}
	return prior
}

// BlockEntityAt returns the block entity stored at chunk-local
// coordinates, if any.
func (c *Chunk) BlockEntityAt(x, y, z int) (BlockEntity, bool) {
	be, ok := c.blockEntities[localIndex(x, z, y)]
	return be, ok
}

// SetBlockEntity overwrites the block entity at chunk-local coordinates
// without touching the block state, marking it modified and
// invalidating the init cache.
func (c *Chunk) SetBlockEntity(x, y, z int, be BlockEntity) {
	idx := localIndex(x, z, y)
	c.blockEntities[idx] = be
	c.modifiedBlockEntities[idx] = struct{}{}
	c.invalidateCache()
}

// FillBlockStates replaces every block in section sectionY (0-based from
// the chunk's lowest section) with state.
func (c *Chunk) FillBlockStates(sectionY int, state BlockStateID) {
	c.checkY(sectionY)
	sec := c.sections[sectionY]
	before := make([]BlockStateID, sectionBlockCells)
	for i := range before {
		before[i] = sec.Blocks.Get(i)
	}
	sec.FillBlockStates(c.reg, state)
	c.invalidateCache()
	if c.loaded && !c.refresh {
		for i, prior := range before {
			if prior == state {
				continue
			}
			x := i & 0xF
			z := (i >> 4) & 0xF
			y := (i >> 8) & 0xF
			sec.SectionUpdates = append(sec.SectionUpdates, NewPackedUpdate(uint32(state), x, z, y))
		}
	}
}

// Biome reads the biome at chunk-local biome coordinates (4:1 scale).
func (c *Chunk) Biome(x, y, z int) BiomeID {
	secIdx, localY := c.sectionIndexForY(y * 4)
	return c.sections[secIdx].Biome(x, localY/4, z)
}

// SetBiome writes the biome at chunk-local biome coordinates. Any biome
// write invalidates the init cache and forces a full refresh since
// biomes have no delta wire representation.
func (c *Chunk) SetBiome(x, y, z int, biome BiomeID) {
	secIdx, localY := c.sectionIndexForY(y * 4)
	c.sections[secIdx].SetBiome(x, localY/4, z, biome)
	c.invalidateCache()
	c.refresh = true
}

// Sections exposes the chunk's sections for read access (e.g. by the
// encoder).
func (c *Chunk) Sections() []*Section { return c.sections }

// BlockUpdateEvent is the single-block-update emission: what a flush
// produces for a section with exactly one change this tick.
type BlockUpdateEvent struct {
	X, Y, Z  int
	GlobalID uint32
}

// SectionUpdateEvent is the >=2-update emission.
type SectionUpdateEvent struct {
	SectionPos uint64
	Updates    []PackedUpdate
}

// BlockEntityEvent carries a changed block entity for emission.
type BlockEntityEvent struct {
	X, Y, Z int
	Entity  BlockEntity
}

// FlushResult is everything a tick's emission routine needs to send for
// one chunk.
type FlushResult struct {
	NeedsInit     bool
	BlockUpdates  []BlockUpdateEvent
	SectionDeltas []SectionUpdateEvent
	BlockEntities []BlockEntityEvent
}

// sectionPosWord synthesizes (chunk_x << 42) | (chunk_z & 0x3FFFFF) << 20 | (section_y + min_section_y) & 0xFFFFF
func sectionPosWord(chunkX, chunkZ int32, sectionY int) uint64 {
	return (uint64(uint32(chunkX)) << 42) | (uint64(uint32(chunkZ))&0x3FFFFF)<<20 | (uint64(uint32(sectionY)) & 0xFFFFF)
}

// Flush computes the per-tick emission for this chunk (nothing, one
// block update, or a section delta per section, plus modified block
// entities), then resets delta state: refresh=false, SectionUpdates
// cleared, modifiedBlockEntities cleared.
func (c *Chunk) Flush() FlushResult {
	var result FlushResult

	if c.refresh {
		result.NeedsInit = true
	} else {
		for secIdx, sec := range c.sections {
			switch len(sec.SectionUpdates) {
			case 0:
				// nothing to emit
			case 1:
				u := sec.SectionUpdates[0]
				absY := (c.minSectionY+secIdx)*16 + u.Y()
				result.BlockUpdates = append(result.BlockUpdates, BlockUpdateEvent{
					X: u.X(), Y: absY, Z: u.Z(), GlobalID: u.GlobalID(),
				})
			default:
				updates := make([]PackedUpdate, len(sec.SectionUpdates))
				copy(updates, sec.SectionUpdates)
				result.SectionDeltas = append(result.SectionDeltas, SectionUpdateEvent{
					SectionPos: sectionPosWord(c.chunkX, c.chunkZ, c.minSectionY+secIdx),
					Updates:    updates,
				})
			}
		}

		for idx := range c.modifiedBlockEntities {
			be := c.blockEntities[idx]
			x := int(idx & 0xF)
			z := int((idx / 16) & 0xF)
			y := int(idx / 256)
			result.BlockEntities = append(result.BlockEntities, BlockEntityEvent{X: x, Y: y, Z: z, Entity: be})
		}
	}

	c.refresh = false
	for _, sec := range c.sections {
		sec.SectionUpdates = nil
	}
	c.modifiedBlockEntities = map[uint32]struct{}{}

	return result
}

// InitBytes lazily computes and caches the full chunk-data payload (the
// `Data` field of a ChunkData wire packet): each section as
// (block count int16, blocks container, biomes container), concatenated,
// matching java_protocol/net_structures.ChunkData's documented layout.
func (c *Chunk) InitBytes() ([]byte, error) {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	if c.cachedInitBytes != nil {
		return c.cachedInitBytes, nil
	}

	buf := ns.NewWriter()
	for _, sec := range c.sections {
		if err := buf.WriteInt16(ns.Int16(sec.NonAirCount)); err != nil {
			return nil, fmt.Errorf("failed to write section block count: %w", err)
		}
		if err := sec.Blocks.EncodeTo(buf); err != nil {
			return nil, fmt.Errorf("failed to encode section blocks: %w", err)
		}
		if err := sec.Biomes.EncodeTo(buf); err != nil {
			return nil, fmt.Errorf("failed to encode section biomes: %w", err)
		}
	}

	c.cachedInitBytes = buf.Bytes()
	return c.cachedInitBytes, nil
}

// BlockEntitiesSlice returns all block entities as the flat wire-ready
// slice ChunkData.BlockEntities expects.
func (c *Chunk) BlockEntitiesSlice() []ns.BlockEntity {
	out := make([]ns.BlockEntity, 0, len(c.blockEntities))
	for idx, be := range c.blockEntities {
		x := int(idx & 0xF)
		z := int((idx / 16) & 0xF)
		y := int(idx / 256)
		wireBE := ns.BlockEntity{Y: ns.Int16(y), Type: ns.VarInt(be.Kind), Data: be.Data}
		wireBE.SetXZ(x, z)
		out = append(out, wireBE)
	}
	return out
}
