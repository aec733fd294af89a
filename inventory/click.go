package inventory

import (
	"errors"
	"fmt"
)

// ClickMode is one of the click-slot interaction modes a client packet
// can declare.
type ClickMode uint8

const (
	ModeClick ClickMode = iota
	ModeShiftClick
	ModeHotbar
	ModeCreativeMiddleClick
	ModeDropKey
	ModeDrag
	ModeDoubleClick
)

// OutsideWindow is the sentinel slot index meaning "outside the window"
// (dropped onto the game world rather than a slot).
const OutsideWindow int16 = -999

// SlotChange is one (slot, new contents) pair from a click-slot packet.
type SlotChange struct {
	Idx  int16
	Item ItemStack
}

// ClickSlotPacket is the click-slot C2S packet body.
type ClickSlotPacket struct {
	WindowID    uint8
	StateID     int32
	SlotIdx     int16
	Button      int8
	Mode        ClickMode
	SlotChanges []SlotChange
	CarriedItem ItemStack
}

// ErrValidation is the sentinel every click-slot rejection wraps: the
// caller resynchronizes (full inventory packet + bumped state_id)
// instead of disconnecting, and can test for this class of error with
// errors.Is(err, inventory.ErrValidation).
var ErrValidation = errors.New("inventory: click rejected")

// RejectReason explains why ValidateClickSlot rejected a packet.
type RejectReason struct {
	Code   string
	Detail string
}

func (r *RejectReason) Error() string {
	if r.Detail == "" {
		return fmt.Sprintf("%s: %s", ErrValidation, r.Code)
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidation, r.Code, r.Detail)
}

func (r *RejectReason) Unwrap() error { return ErrValidation }

func reject(code, format string, args ...any) error {
	return &RejectReason{Code: code, Detail: fmt.Sprintf(format, args...)}
}

// CommitPlan is ValidateClickSlot's successful output: the per-slot
// updates to apply (quietly, since the client already knows) and the
// resulting cursor contents.
type CommitPlan struct {
	SlotUpdates []SlotChange
	NewCursor   ItemStack
	Drop        *DropItemStack
}

// DropItemStack is the per-tick drop-item signal. FromSlot is nil when
// the drop came from the cursor or a creative-mode slot -1.
type DropItemStack struct {
	FromSlot *uint16
	Stack    ItemStack
}

// ValidationInput is everything ValidateClickSlot needs to judge one
// packet against the server's view of the window. The validator is a
// pure function: it neither reads nor writes any Inventory directly.
type ValidationInput struct {
	Packet ClickSlotPacket

	// OpenWindowID is the window id the server currently has open for
	// this client (0 if none).
	OpenWindowID uint8

	// MaxSlot is the size of the logical slot space: container size (if
	// any) plus the player's main inventory and hotbar.
	MaxSlot int

	// ContainerKind is the kind of inventory open as a container window.
	// It is only meaningful when OpenWindowID != 0 (window id 0 always
	// means the player's own inventory, and slot indices already address
	// it directly).
	ContainerKind InventoryKind

	// CurrentSlot returns the server's current contents of slot idx
	// (idx is always in [0, MaxSlot)).
	CurrentSlot func(idx int) ItemStack

	// CurrentCursor is the server's current cursor contents.
	CurrentCursor ItemStack

	// MaxStackSizeFor returns the maximum count a slot may hold for the
	// given item kind: min(per-stack override, per-kind default,
	// StackMax).
	MaxStackSizeFor func(kind ItemKind) int
}

// dragButtons classifies the three drag phases.
const (
	dragStartLeft   int8 = 0
	dragAddLeft     int8 = 1
	dragEndLeft     int8 = 2
	dragStartRight  int8 = 4
	dragAddRight    int8 = 5
	dragEndRight    int8 = 6
	dragStartMiddle int8 = 8
	dragAddMiddle   int8 = 9
	dragEndMiddle   int8 = 10
)

func isDragEndButton(b int8) bool {
	return b == dragEndLeft || b == dragEndRight || b == dragEndMiddle
}

func validButtonForMode(mode ClickMode, button int8) bool {
	switch mode {
	case ModeClick:
		return button == 0 || button == 1
	case ModeShiftClick:
		return button == 0 || button == 1
	case ModeHotbar:
		return (button >= 0 && button <= 8) || button == 40
	case ModeCreativeMiddleClick:
		return button == 2
	case ModeDropKey:
		return button == 0 || button == 1
	case ModeDrag:
		switch button {
		case dragStartLeft, dragAddLeft, dragEndLeft,
			dragStartRight, dragAddRight, dragEndRight,
			dragStartMiddle, dragAddMiddle, dragEndMiddle:
			return true
		}
		return false
	case ModeDoubleClick:
		return button == 0
	default:
		return false
	}
}

// ValidateClickSlot checks every click invariant before any state is
// applied: window-id match, slot-index range, per-slot count bounds,
// mode/button enumeration, mode-specific slot-count and cursor-delta
// rules, conservation of items, and kind preservation. On
// success it returns the CommitPlan the caller should apply atomically;
// on failure it returns a *RejectReason and the caller must not mutate
// anything.
func ValidateClickSlot(in ValidationInput) (*CommitPlan, error) {
	p := in.Packet

	if p.WindowID != in.OpenWindowID {
		return nil, reject("window_mismatch", "packet window %d != open window %d", p.WindowID, in.OpenWindowID)
	}

	for _, ch := range p.SlotChanges {
		if ch.Idx != OutsideWindow && (ch.Idx < 0 || int(ch.Idx) >= in.MaxSlot) {
			return nil, reject("slot_out_of_range", "slot %d not in [0,%d)", ch.Idx, in.MaxSlot)
		}
		if !ch.Item.IsEmpty() {
			max := StackMax
			if in.MaxStackSizeFor != nil {
				if m := in.MaxStackSizeFor(ch.Item.Kind); m < max {
					max = m
				}
			}
			if ch.Item.Count < 1 || int(ch.Item.Count) > max {
				return nil, reject("bad_count", "slot %d count %d not in [1,%d]", ch.Idx, ch.Item.Count, max)
			}
		}
	}

	if !validButtonForMode(p.Mode, p.Button) {
		return nil, reject("bad_button", "button %d invalid for mode %v", p.Button, p.Mode)
	}

	cursorChanged := !sameStack(p.CarriedItem, in.CurrentCursor)

	switch p.Mode {
	case ModeClick:
		if p.SlotIdx == OutsideWindow && len(p.SlotChanges) != 0 {
			return nil, reject("bad_slot_count", "outside-window Click must not change slots, got %d", len(p.SlotChanges))
		}
	case ModeShiftClick:
		if len(p.SlotChanges) != 2 && len(p.SlotChanges) != 3 {
			return nil, reject("bad_slot_count", "ShiftClick must change 2 or 3 slots, got %d", len(p.SlotChanges))
		}
		if cursorChanged {
			return nil, reject("cursor_changed", "ShiftClick must not alter the carried item")
		}
	case ModeHotbar:
		if len(p.SlotChanges) != 2 {
			return nil, reject("bad_slot_count", "Hotbar must change exactly 2 slots, got %d", len(p.SlotChanges))
		}
		if cursorChanged {
			return nil, reject("cursor_changed", "Hotbar must not alter the carried item")
		}
	case ModeDropKey:
		if len(p.SlotChanges) != 1 {
			return nil, reject("bad_slot_count", "DropKey must change exactly 1 slot, got %d", len(p.SlotChanges))
		}
		if cursorChanged {
			return nil, reject("cursor_changed", "DropKey must not alter the carried item")
		}
	case ModeDrag:
		if !isDragEndButton(p.Button) {
			if cursorChanged || len(p.SlotChanges) != 0 {
				return nil, reject("bad_drag_start", "Drag start/add must not change cursor or slots")
			}
		}
	}

	if err := checkConservation(in, cursorChanged); err != nil {
		return nil, err
	}

	if err := checkNoTransmutation(in); err != nil {
		return nil, err
	}

	plan := &CommitPlan{SlotUpdates: p.SlotChanges, NewCursor: Normalize(p.CarriedItem)}
	plan.Drop = dropEventFor(p, in)
	return plan, nil
}

func sameStack(a, b ItemStack) bool {
	a, b = Normalize(a), Normalize(b)
	if a.Kind != b.Kind || a.Count != b.Count {
		return false
	}
	return true
}

// slotDelta computes Σ(new_count - old_count) over the packet's
// referenced slots plus (new_cursor - old_cursor).
// Outside-window changes (idx == OutsideWindow)
// contribute nothing by themselves; they represent an item leaving the
// window entirely and are accounted for via the expected-delta table
// instead.
func slotDelta(in ValidationInput) int {
	delta := 0
	for _, ch := range in.Packet.SlotChanges {
		if ch.Idx == OutsideWindow {
			continue
		}
		old := in.CurrentSlot(int(ch.Idx))
		delta += int(Normalize(ch.Item).Count) - int(old.Count)
	}
	delta += int(Normalize(in.Packet.CarriedItem).Count) - int(in.CurrentCursor.Count)
	return delta
}

func checkConservation(in ValidationInput, cursorChanged bool) error {
	p := in.Packet

	switch p.Mode {
	case ModeShiftClick, ModeHotbar, ModeCreativeMiddleClick, ModeDoubleClick:
		if d := slotDelta(in); d != 0 {
			return reject("conservation", "%v expected delta 0, got %d", p.Mode, d)
		}
		return nil
	case ModeDrag:
		if isDragEndButton(p.Button) {
			if d := slotDelta(in); d != 0 {
				return reject("conservation", "Drag merge expected delta 0, got %d", d)
			}
		}
		return nil
	case ModeClick:
		if p.SlotIdx == OutsideWindow {
			switch p.Button {
			case 1:
				if d := slotDelta(in); d != -1 {
					return reject("conservation", "outside-window right-click expected delta -1, got %d", d)
				}
			case 0:
				want := -int(in.CurrentCursor.Count)
				if d := slotDelta(in); d != want {
					return reject("conservation", "outside-window left-click expected delta %d, got %d", want, d)
				}
			}
			return nil
		}
		// In-window pickup/place/swap/merge only moves items between a
		// slot and the cursor; the total count across both is conserved.
		if d := slotDelta(in); d != 0 {
			return reject("conservation", "Click expected delta 0, got %d", d)
		}
		return nil
	case ModeDropKey:
		if len(p.SlotChanges) != 1 {
			return nil // already rejected above
		}
		old := in.CurrentSlot(int(p.SlotChanges[0].Idx))
		switch p.Button {
		case 0:
			if d := slotDelta(in); d != -1 {
				return reject("conservation", "DropKey single expected delta -1, got %d", d)
			}
		case 1:
			want := -int(old.Count)
			if d := slotDelta(in); d != want {
				return reject("conservation", "DropKey full-stack expected delta %d, got %d", want, d)
			}
		}
		return nil
	default:
		return nil
	}
}

// checkNoTransmutation enforces kind preservation for DropKey,
// ShiftClick, and in-place Click: a changed slot whose new count is > 0
// must keep its prior kind.
func checkNoTransmutation(in ValidationInput) error {
	p := in.Packet
	applies := p.Mode == ModeDropKey || p.Mode == ModeShiftClick ||
		(p.Mode == ModeClick && p.SlotIdx != OutsideWindow)
	if !applies {
		return nil
	}
	for _, ch := range p.SlotChanges {
		if ch.Idx == OutsideWindow {
			continue
		}
		newItem := Normalize(ch.Item)
		if newItem.Count <= 0 {
			continue
		}
		old := in.CurrentSlot(int(ch.Idx))
		if old.IsEmpty() {
			continue
		}
		if !SameKind(old, newItem) {
			return reject("transmutation", "slot %d changed kind %d -> %d", ch.Idx, old.Kind, newItem.Kind)
		}
	}
	return nil
}

func dropEventFor(p ClickSlotPacket, in ValidationInput) *DropItemStack {
	// Click with slot_idx=-999 (outside the window) throws the held
	// cursor item: right-click throws one, left-click throws the whole
	// stack. from_slot is nil since the item came from the cursor, not
	// a numbered slot.
	if p.Mode == ModeClick && p.SlotIdx == OutsideWindow {
		switch p.Button {
		case 0:
			return &DropItemStack{Stack: in.CurrentCursor}
		case 1:
			return &DropItemStack{Stack: in.CurrentCursor.WithCount(1)}
		}
		return nil
	}

	if p.Mode != ModeDropKey {
		return nil
	}
	if len(p.SlotChanges) != 1 {
		return nil
	}
	ch := p.SlotChanges[0]
	old := in.CurrentSlot(int(ch.Idx))
	slotIdx := int(ch.Idx)
	if in.OpenWindowID != 0 && slotIdx >= in.ContainerKind.Size() {
		slotIdx = ConvertToPlayerSlotID(in.ContainerKind, slotIdx)
	}
	idx := uint16(slotIdx)
	switch p.Button {
	case 0:
		return &DropItemStack{FromSlot: &idx, Stack: old.WithCount(1)}
	case 1:
		return &DropItemStack{FromSlot: &idx, Stack: old}
	}
	return nil
}
