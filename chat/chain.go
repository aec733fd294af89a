package chat

import "github.com/google/uuid"

// MessageLink is the position of one signed message within a session's
// hash chain: the sender and session identify the chain, index is the
// monotonically increasing position within it.
type MessageLink struct {
	Index   int32
	Sender  uuid.UUID
	Session uuid.UUID
}

// AppendHashInput appends this link's contribution to a message hash
// input: sender bytes, then session bytes, then the big-endian index.
func (l MessageLink) AppendHashInput(buf []byte) []byte {
	buf = append(buf, l.Sender[:]...)
	buf = append(buf, l.Session[:]...)
	return appendInt32BE(buf, l.Index)
}

// MessageChain holds at most one active MessageLink per client.
type MessageChain struct {
	link *MessageLink
}

// Start begins a new chain at index 0 for (sender, session), replacing
// any prior chain.
func (c *MessageChain) Start(sender, session uuid.UUID) {
	c.link = &MessageLink{Index: 0, Sender: sender, Session: session}
}

// NextLink returns the chain's current link and wrapping-increments its
// index. If no session has ever been started, it returns (MessageLink{},
// false): an uninitialized chain is not an error, just "no active
// session yet".
func (c *MessageChain) NextLink() (MessageLink, bool) {
	if c.link == nil {
		return MessageLink{}, false
	}
	current := *c.link
	c.link.Index++
	return current, true
}
