package inventory

import "fmt"

// InventoryKind tags the fixed slot-array layout of an Inventory.
type InventoryKind uint8

const (
	KindPlayer InventoryKind = iota
	KindGeneric9x1
	KindGeneric9x2
	KindGeneric9x3
	KindGeneric9x4
	KindGeneric9x5
	KindGeneric9x6
	KindGeneric3x3
)

// Size returns the slot count for the kind (Player=46, Generic9x3=27,
// ...).
func (k InventoryKind) Size() int {
	switch k {
	case KindPlayer:
		return 46
	case KindGeneric9x1:
		return 9
	case KindGeneric9x2:
		return 18
	case KindGeneric9x3:
		return 27
	case KindGeneric9x4:
		return 36
	case KindGeneric9x5:
		return 45
	case KindGeneric9x6:
		return 54
	case KindGeneric3x3:
		return 9
	default:
		panic(fmt.Sprintf("inventory: unknown kind %d", k))
	}
}

// Player inventory layout: armor (0-3), offhand (4),
// crafting (5-8), main (9-35), hotbar (36-44). Index 45 is unused in this
// protocol era.
const (
	PlayerArmorStart   = 0
	PlayerArmorEnd     = 3
	PlayerOffhand      = 4
	PlayerCraftingStart = 5
	PlayerCraftingEnd  = 8
	PlayerMainStart    = 9
	PlayerMainEnd      = 35
	PlayerHotbarStart  = 36
	PlayerHotbarEnd    = 44
)

// Inventory is a fixed slot array plus a bitmask of slots modified
// since the last flush.
type Inventory struct {
	kind    InventoryKind
	slots   []ItemStack
	changed uint64
}

// New allocates an empty inventory of the given kind.
func New(kind InventoryKind) *Inventory {
	return &Inventory{kind: kind, slots: make([]ItemStack, kind.Size())}
}

// Kind returns the inventory's layout tag.
func (inv *Inventory) Kind() InventoryKind { return inv.kind }

// Size returns the number of slots.
func (inv *Inventory) Size() int { return len(inv.slots) }

func (inv *Inventory) checkIdx(i int) {
	if i < 0 || i >= len(inv.slots) {
		panic(fmt.Sprintf("inventory: slot %d out of range [0,%d)", i, len(inv.slots)))
	}
}

// Get reads the stack at slot i without marking it changed.
func (inv *Inventory) Get(i int) ItemStack {
	inv.checkIdx(i)
	return inv.slots[i]
}

// Set is the server-originated mutation path: it writes slot i and
// marks its bit in the changed mask. It returns the prior stack.
func (inv *Inventory) Set(i int, s ItemStack) ItemStack {
	inv.checkIdx(i)
	prior := inv.slots[i]
	inv.slots[i] = Normalize(s)
	inv.changed |= 1 << uint(i)
	return prior
}

// SetQuiet writes slot i without marking it changed, for use by the
// click-slot validator's commit step: the client already knows the
// result of its own click, so no resync packet is owed.
func (inv *Inventory) SetQuiet(i int, s ItemStack) ItemStack {
	inv.checkIdx(i)
	prior := inv.slots[i]
	inv.slots[i] = Normalize(s)
	return prior
}

// Changed reports the current dirty-slot bitmask.
func (inv *Inventory) Changed() uint64 { return inv.changed }

// ClearChanged resets the dirty-slot bitmask, e.g. after a flush.
func (inv *Inventory) ClearChanged() { inv.changed = 0 }

// MarkFullSync forces the next flush to behave as if every slot
// changed.
func (inv *Inventory) MarkFullSync() {
	if len(inv.slots) >= 64 {
		inv.changed = ^uint64(0)
		return
	}
	inv.changed = (uint64(1) << uint(len(inv.slots))) - 1
}

// Snapshot returns a copy of every slot, in slot order.
func (inv *Inventory) Snapshot() []ItemStack {
	out := make([]ItemStack, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// CursorItem is the single held-by-mouse stack, one per client. Writes
// to it never bump a ClientInventoryState's state_id.
type CursorItem struct {
	stack ItemStack
}

// Get returns the currently held stack.
func (c *CursorItem) Get() ItemStack { return c.stack }

// Set replaces the held stack.
func (c *CursorItem) Set(s ItemStack) { c.stack = Normalize(s) }

// ClientInventoryState is the per-client (window_id, state_id,
// held_slot) triple.
type ClientInventoryState struct {
	WindowID uint8
	StateID  int32
	HeldSlot uint16
}

// BumpStateID increments state_id and returns the new value. The
// counter wraps as a plain signed int32, the same width as the VarInt
// it travels the wire as.
func (c *ClientInventoryState) BumpStateID() int32 {
	c.StateID++
	return c.StateID
}

// WindowAllocator assigns window ids for newly opened inventories: a
// per-client counter that skips 0 (reserved for the player's own
// inventory) and wraps mod 256.
type WindowAllocator struct {
	counter uint8
}

// Next returns the next window id, incrementing the counter and skipping
// 0.
func (w *WindowAllocator) Next() uint8 {
	w.counter++
	if w.counter == 0 {
		w.counter = 1
	}
	return w.counter
}

// OpenInventory is the relation between a client and the non-player
// inventory it currently has open. A client may have at most one at a
// time.
type OpenInventory struct {
	WindowID uint8
	Target   *Inventory
}

// ConvertToPlayerSlotID maps an absolute "window" slot index (container
// slots first, then the player's main inventory, then hotbar) back to
// the player's own Inventory slot numbering, for dropping from the main
// inventory or hotbar while a container window is open. windowIdx must
// be at or past kind.Size() (i.e. it must address the main/hotbar
// portion of the window, not the container's own slots).
func ConvertToPlayerSlotID(kind InventoryKind, windowIdx int) int {
	mainRelative := windowIdx - kind.Size()
	return PlayerMainStart + mainRelative
}
