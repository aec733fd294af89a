// Package inventory implements the click-slot inventory protocol:
// item stacks, fixed-layout inventories, the cursor/window
// synchronization state machine, and a pure click-slot validator.
package inventory

// ItemKind is an opaque registry id for an item type, the inventory
// analog of palette.BlockStateID: the real item catalog (name, default
// component set, stack-size default) is an external collaborator.
type ItemKind int32

// AirKind is the distinguished "no item" kind.
const AirKind ItemKind = 0

// StackMax is the absolute ceiling on any slot's count, independent of
// any per-kind or per-stack override.
const StackMax = 99

// Component is an opaque data-component entry carried by a stack (e.g.
// enchantments, custom name). The component schema is an external
// collaborator; this package only needs to preserve it through moves.
type Component struct {
	ID   int32
	Data []byte
}

// ItemStack is an item kind, a count, and the stack's data
// components.
type ItemStack struct {
	Kind       ItemKind
	Count      int8
	Components []Component
}

// Empty is the distinguished empty stack.
var Empty = ItemStack{}

// IsEmpty reports whether s is the distinguished empty stack (count <= 0
// or kind is Air).
func (s ItemStack) IsEmpty() bool {
	return s.Count <= 0 || s.Kind == AirKind
}

// Normalize collapses any count<=0 or Air-kind stack to Empty.
func Normalize(s ItemStack) ItemStack {
	if s.Count <= 0 || s.Kind == AirKind {
		return Empty
	}
	return s
}

// SameKind reports whether two stacks share an item kind. Only Kind is
// compared; counts are ignored, so stacks that are empty because their
// count is <= 0 still match when their kinds are equal.
func SameKind(a, b ItemStack) bool {
	return a.Kind == b.Kind
}

// WithCount returns a copy of s with its count replaced, normalized.
func (s ItemStack) WithCount(count int8) ItemStack {
	s.Count = count
	return Normalize(s)
}
