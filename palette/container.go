package palette

// containerKind is the active representation of a PalettedContainer.
type containerKind uint8

const (
	kindSingle containerKind = iota
	kindIndirect
	kindDirect
)

// Container is a PalettedContainer<T>: a fixed-size logical array of N
// cells represented as one of three equivalent encodings (Single,
// Indirect, Direct). Mutation replaces the active representation
// wholesale rather than sharing it, so no cell storage is ever aliased
// between two representations.
//
// T must be comparable so it can serve as a palette/map key and as the
// equality test in Set's "value already in Single" fast path.
type Container[T comparable] struct {
	n int

	kind   containerKind
	single T

	palette    []T
	indexOf    map[T]int
	indexBits  int
	indexWords []uint64

	valueBits  int
	valueWords []uint64

	minBits    int
	maxBits    int
	directBits int

	toGlobalID   func(T) uint32
	fromGlobalID func(uint32) T
}

// NewContainer creates a Container of n cells, all initialized to fill.
// minBits/maxBits bound the Indirect palette's index width; directBits is
// the fixed width used once promoted to Direct. For blocks these are
// (4, 8, ceil(log2(state_count))); for biomes (0, 3, ceil(log2(biome_count))).
func NewContainer[T comparable](n, minBits, maxBits, directBits int, fill T, toGlobalID func(T) uint32, fromGlobalID func(uint32) T) *Container[T] {
	return &Container[T]{
		n:            n,
		kind:         kindSingle,
		single:       fill,
		minBits:      minBits,
		maxBits:      maxBits,
		directBits:   directBits,
		toGlobalID:   toGlobalID,
		fromGlobalID: fromGlobalID,
	}
}

// Len returns the number of cells.
func (c *Container[T]) Len() int { return c.n }

func (c *Container[T]) checkIndex(i int) {
	if i < 0 || i >= c.n {
		panic("palette: index out of range")
	}
}

// Get returns the value stored at the given cell index.
func (c *Container[T]) Get(i int) T {
	c.checkIndex(i)
	switch c.kind {
	case kindSingle:
		return c.single
	case kindIndirect:
		idx := int(getPacked(c.indexWords, c.indexBits, i))
		return c.palette[idx]
	default: // kindDirect
		gid := getPacked(c.valueWords, c.valueBits, i)
		return c.fromGlobalID(gid)
	}
}

// Set stores value at cell index i and returns the prior value. It
// implements the promotion ladder Single -> Indirect -> Direct.
func (c *Container[T]) Set(i int, value T) T {
	c.checkIndex(i)
	switch c.kind {
	case kindSingle:
		if value == c.single {
			return c.single
		}
		prior := c.single
		c.promoteToIndirect(value, i)
		return prior
	case kindIndirect:
		prior := c.Get(i)
		idx, ok := c.indexOf[value]
		if !ok {
			idx = len(c.palette)
			if bitsNeeded(idx+1) > c.maxBits {
				c.promoteToDirect()
				setPacked(c.valueWords, c.valueBits, i, c.toGlobalID(value))
				return prior
			}
			c.palette = append(c.palette, value)
			c.indexOf[value] = idx
			newBits := bitsNeeded(len(c.palette))
			if newBits < c.minBits {
				newBits = c.minBits
			}
			if newBits != c.indexBits {
				c.regrowIndirect(newBits)
			}
		}
		setPacked(c.indexWords, c.indexBits, i, uint32(idx))
		return prior
	default: // kindDirect
		prior := c.Get(i)
		setPacked(c.valueWords, c.valueBits, i, c.toGlobalID(value))
		return prior
	}
}

// Fill replaces all cells with value, collapsing to the Single state.
func (c *Container[T]) Fill(value T) {
	c.kind = kindSingle
	c.single = value
	c.palette = nil
	c.indexOf = nil
	c.indexWords = nil
	c.valueWords = nil
	c.indexBits = 0
	c.valueBits = 0
}

// Optimize shrinks the representation when possible (Direct -> Indirect
// -> Single) without changing any observable Get result.
func (c *Container[T]) Optimize() {
	if c.kind == kindSingle {
		return
	}
	values := c.materialize()
	distinct := map[T]struct{}{}
	for _, v := range values {
		distinct[v] = struct{}{}
	}
	if len(distinct) == 1 {
		c.Fill(values[0])
		return
	}
	if c.kind == kindDirect {
		bits := bitsNeeded(len(distinct))
		if bits < c.minBits {
			bits = c.minBits
		}
		if bits > c.maxBits {
			return
		}
		c.kind = kindIndirect
		c.palette = nil
		c.indexOf = map[T]int{}
		c.indexBits = bits
		c.indexWords = make([]uint64, packedWords(c.n, bits))
		c.valueWords = nil
		c.valueBits = 0
		for i, v := range values {
			idx, ok := c.indexOf[v]
			if !ok {
				idx = len(c.palette)
				c.palette = append(c.palette, v)
				c.indexOf[v] = idx
			}
			setPacked(c.indexWords, c.indexBits, i, uint32(idx))
		}
	}
}

func (c *Container[T]) materialize() []T {
	out := make([]T, c.n)
	for i := 0; i < c.n; i++ {
		out[i] = c.Get(i)
	}
	return out
}

func (c *Container[T]) promoteToIndirect(newValue T, newValueIdx int) {
	old := c.single
	bits := bitsNeeded(2)
	if bits < c.minBits {
		bits = c.minBits
	}
	c.kind = kindIndirect
	c.palette = []T{old, newValue}
	c.indexOf = map[T]int{old: 0, newValue: 1}
	c.indexBits = bits
	c.indexWords = make([]uint64, packedWords(c.n, bits))
	// every cell starts at palette index 0 (the old singleton) except the
	// cell being written.
	setPacked(c.indexWords, c.indexBits, newValueIdx, 1)
}

func (c *Container[T]) regrowIndirect(newBits int) {
	newWords := make([]uint64, packedWords(c.n, newBits))
	for i := 0; i < c.n; i++ {
		idx := getPacked(c.indexWords, c.indexBits, i)
		setPacked(newWords, newBits, i, idx)
	}
	c.indexBits = newBits
	c.indexWords = newWords
}

func (c *Container[T]) promoteToDirect() {
	values := c.materialize()
	c.kind = kindDirect
	c.palette = nil
	c.indexOf = nil
	c.indexWords = nil
	c.valueBits = c.directBits
	c.valueWords = make([]uint64, packedWords(c.n, c.valueBits))
	for i, v := range values {
		setPacked(c.valueWords, c.valueBits, i, c.toGlobalID(v))
	}
}

// BitsPerEntry returns the bits-per-entry value as it would appear on the
// wire (0 for Single, the palette index width for Indirect, directBits
// for Direct).
func (c *Container[T]) BitsPerEntry() int {
	switch c.kind {
	case kindSingle:
		return 0
	case kindIndirect:
		return c.indexBits
	default:
		return c.directBits
	}
}

// IsSingle reports whether the container is collapsed to a single value.
func (c *Container[T]) IsSingle() bool { return c.kind == kindSingle }

// IsDirect reports whether the container is in Direct representation.
func (c *Container[T]) IsDirect() bool { return c.kind == kindDirect }

// Palette returns a copy of the Indirect palette, or nil outside that state.
func (c *Container[T]) Palette() []T {
	if c.kind != kindIndirect {
		return nil
	}
	out := make([]T, len(c.palette))
	copy(out, c.palette)
	return out
}
