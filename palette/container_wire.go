package palette

import (
	"fmt"

	ns "github.com/go-mclib/servercore/java_protocol/net_structures"
)

// EncodeTo serializes the container to the chunk-section wire format:
// a leading bits_per_entry byte, a
// palette (only outside the Direct state), a VarInt word count, and the
// packed u64 words themselves.
func (c *Container[T]) EncodeTo(buf *ns.PacketBuffer) error {
	if err := buf.WriteUint8(ns.Uint8(c.BitsPerEntry())); err != nil {
		return fmt.Errorf("failed to write bits per entry: %w", err)
	}

	switch c.kind {
	case kindSingle:
		if err := buf.WriteVarInt(1); err != nil {
			return fmt.Errorf("failed to write single palette length: %w", err)
		}
		if err := buf.WriteVarInt(ns.VarInt(c.toGlobalID(c.single))); err != nil {
			return fmt.Errorf("failed to write single palette entry: %w", err)
		}
		return buf.WriteVarInt(0)
	case kindIndirect:
		if err := buf.WriteVarInt(ns.VarInt(len(c.palette))); err != nil {
			return fmt.Errorf("failed to write palette length: %w", err)
		}
		for i, v := range c.palette {
			if err := buf.WriteVarInt(ns.VarInt(c.toGlobalID(v))); err != nil {
				return fmt.Errorf("failed to write palette entry %d: %w", i, err)
			}
		}
		return writeWords(buf, c.indexWords)
	default: // kindDirect
		return writeWords(buf, c.valueWords)
	}
}

func writeWords(buf *ns.PacketBuffer, words []uint64) error {
	if err := buf.WriteVarInt(ns.VarInt(len(words))); err != nil {
		return fmt.Errorf("failed to write word count: %w", err)
	}
	for i, w := range words {
		if err := buf.WriteInt64(ns.Int64(w)); err != nil {
			return fmt.Errorf("failed to write word %d: %w", i, err)
		}
	}
	return nil
}

// DecodeContainer reads a container of n cells from buf, using the
// supplied bit-width and ID-conversion parameters to interpret it.
func DecodeContainer[T comparable](buf *ns.PacketBuffer, n, minBits, maxBits, directBits int, toGlobalID func(T) uint32, fromGlobalID func(uint32) T) (*Container[T], error) {
	bitsPerEntry, err := buf.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("failed to read bits per entry: %w", err)
	}

	c := &Container[T]{
		n:            n,
		minBits:      minBits,
		maxBits:      maxBits,
		directBits:   directBits,
		toGlobalID:   toGlobalID,
		fromGlobalID: fromGlobalID,
	}

	if int(bitsPerEntry) > maxBits {
		// Direct: no palette.
		c.kind = kindDirect
		c.valueBits = int(bitsPerEntry)
		words, err := readWords(buf)
		if err != nil {
			return nil, err
		}
		c.valueWords = words
		return c, nil
	}

	paletteLen, err := buf.ReadVarInt()
	if err != nil {
		return nil, fmt.Errorf("failed to read palette length: %w", err)
	}
	palette := make([]T, paletteLen)
	for i := range palette {
		gid, err := buf.ReadVarInt()
		if err != nil {
			return nil, fmt.Errorf("failed to read palette entry %d: %w", i, err)
		}
		palette[i] = fromGlobalID(uint32(gid))
	}

	if bitsPerEntry == 0 {
		if _, err := buf.ReadVarInt(); err != nil { // trailing zero-length word count
			return nil, fmt.Errorf("failed to read single word count: %w", err)
		}
		c.kind = kindSingle
		if len(palette) > 0 {
			c.single = palette[0]
		}
		return c, nil
	}

	words, err := readWords(buf)
	if err != nil {
		return nil, err
	}
	c.kind = kindIndirect
	c.palette = palette
	c.indexOf = make(map[T]int, len(palette))
	for i, v := range palette {
		c.indexOf[v] = i
	}
	c.indexBits = int(bitsPerEntry)
	c.indexWords = words
	return c, nil
}

func readWords(buf *ns.PacketBuffer) ([]uint64, error) {
	count, err := buf.ReadVarInt()
	if err != nil {
		return nil, fmt.Errorf("failed to read word count: %w", err)
	}
	words := make([]uint64, count)
	for i := range words {
		v, err := buf.ReadInt64()
		if err != nil {
			return nil, fmt.Errorf("failed to read word %d: %w", i, err)
		}
		words[i] = uint64(v)
	}
	return words, nil
}
