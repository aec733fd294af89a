// Package framing turns a raw byte stream into discrete Minecraft wire
// packets and back. It generalizes `java_protocol.ReadWirePacketFrom`/
// `WirePacket.WriteTo` (which operate on a single io.Reader/io.Writer
// call) into a stateful buffer that can be fed arbitrarily-sized chunks
// of socket data and asked, incrementally, "is there a full packet yet."
//
// Compression and encryption are independent toggles layered on top of
// the same buffer, matching the login-sequence order the protocol
// requires: encryption is enabled first (via Set Compression / Login
// Success are themselves framed packets), then compression.
package framing

import (
	"bytes"
	"fmt"

	"github.com/go-mclib/servercore/crypto"
	"github.com/go-mclib/servercore/java_protocol"
	ns "github.com/go-mclib/servercore/java_protocol/net_structures"
)

// MaxPacketSize is the largest encoded packet length the protocol allows.
// See https://minecraft.wiki/w/Java_Edition_protocol/Packets
const MaxPacketSize = 2097152

// ProtocolError is returned by TryNextPacket for any malformed framing:
// a VarInt length prefix that never terminates, a declared length beyond
// MaxPacketSize, or a decode failure surfaced from the underlying
// compression/packet-ID parsing.
type ProtocolError struct {
	msg string
	err error
}

func (e *ProtocolError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("framing: %s: %v", e.msg, e.err)
	}
	return fmt.Sprintf("framing: %s", e.msg)
}

func (e *ProtocolError) Unwrap() error { return e.err }

func protoErr(msg string, err error) *ProtocolError {
	return &ProtocolError{msg: msg, err: err}
}

// Framer buffers inbound bytes and assembles WirePackets from them, and
// assembles outbound WirePackets into bytes ready to write to a socket.
// A Framer is not safe for concurrent use; callers serialize access
// with a single reader goroutine and a single writer goroutine per
// connection.
type Framer struct {
	compressionThreshold int
	enc                  *crypto.Encryption

	inbound  []byte
	outbound bytes.Buffer
}

// NewFramer returns a Framer with compression and encryption disabled.
func NewFramer() *Framer {
	return &Framer{
		compressionThreshold: -1,
		enc:                  crypto.NewEncryption(),
	}
}

// SetCompressionThreshold enables (threshold >= 0) or disables
// (threshold < 0) zlib compression framing, matching the semantics of
// the Set Compression packet.
func (f *Framer) SetCompressionThreshold(threshold int) {
	f.compressionThreshold = threshold
}

// CompressionThreshold reports the current threshold, or a negative
// value if compression is disabled.
func (f *Framer) CompressionThreshold() int {
	return f.compressionThreshold
}

// EnableEncryption switches the Framer into AES-128-CFB8 mode using the
// given 16-byte shared secret as both key and IV.
// Bytes already queued via QueueBytes/QueueSlice
// before this call were received as ciphertext but queued verbatim
// (encryption was not yet enabled when they arrived), so they are
// decrypted in place here, immediately, using the freshly created
// stream cipher; bytes queued afterward continue that same stream via
// QueueBytes.
func (f *Framer) EnableEncryption(sharedSecret []byte) error {
	f.enc.SetSharedSecret(sharedSecret)
	if err := f.enc.EnableEncryption(); err != nil {
		return err
	}
	f.inbound = f.enc.Decrypt(f.inbound)
	return nil
}

// IsEncrypted reports whether EnableEncryption has been called
// successfully.
func (f *Framer) IsEncrypted() bool {
	return f.enc.IsEnabled()
}

// QueueBytes appends newly-received socket data to the decode buffer,
// decrypting it first if encryption is enabled. The slice is copied; the
// caller's buffer may be reused immediately after this call returns.
func (f *Framer) QueueBytes(data []byte) {
	if f.enc.IsEnabled() {
		data = f.enc.Decrypt(data)
	}
	f.inbound = append(f.inbound, data...)
}

// QueueSlice is an alias of QueueBytes for callers that already own a
// slice they will not mutate further (e.g. bytes read directly into a
// reusable ring buffer and then handed off).
func (f *Framer) QueueSlice(data []byte) {
	f.QueueBytes(data)
}

// Pending reports how many undecoded bytes remain buffered.
func (f *Framer) Pending() int {
	return len(f.inbound)
}

// TryNextPacket attempts to decode one complete WirePacket from the
// buffered bytes. It returns (nil, false, nil) if the buffer does not
// yet contain a full packet (the caller should QueueBytes more data and
// retry). On malformed framing it returns a *ProtocolError; the caller
// should disconnect. Decoded bytes are consumed from the internal
// buffer only on success.
func (f *Framer) TryNextPacket() (*java_protocol.WirePacket, bool, error) {
	length, lengthLen, incomplete, err := peekVarInt(f.inbound)
	if err != nil {
		return nil, false, protoErr("malformed packet length", err)
	}
	if incomplete {
		return nil, false, nil
	}
	if length < 0 || int(length) > MaxPacketSize {
		return nil, false, protoErr(fmt.Sprintf("packet length %d exceeds maximum %d", length, MaxPacketSize), nil)
	}

	total := lengthLen + int(length)
	if len(f.inbound) < total {
		return nil, false, nil
	}

	frame := f.inbound[:total]
	wire, err := java_protocol.ReadWirePacketFrom(bytes.NewReader(frame), f.compressionThreshold)
	if err != nil {
		return nil, false, protoErr("failed to decode wire packet", err)
	}

	f.inbound = f.inbound[total:]
	return wire, true, nil
}

// peekVarInt decodes a VarInt from the front of data without mutating
// it. incomplete is true when data ends before a terminating byte was
// found (the caller should wait for more bytes); err is non-nil only for
// a genuinely malformed encoding (more than 5 bytes).
func peekVarInt(data []byte) (value int32, n int, incomplete bool, err error) {
	var result int32
	var shift uint
	for i := 0; i < len(data); i++ {
		b := data[i]
		result |= int32(b&0x7F) << shift
		if b&0x80 == 0 {
			return result, i + 1, false, nil
		}
		shift += 7
		if shift >= 35 {
			return 0, 0, false, fmt.Errorf("VarInt is too big")
		}
	}
	return 0, 0, true, nil
}

// EncodePacket serializes a packet ID and raw body into a fully-framed
// wire representation (length prefix, optional compression), honoring
// the current compression threshold. It does not encrypt; encryption is
// applied by Take when writing to the socket.
func (f *Framer) EncodePacket(packetID ns.VarInt, body []byte) ([]byte, error) {
	wire := &java_protocol.WirePacket{PacketID: packetID, Data: ns.ByteArray(body)}
	var buf bytes.Buffer
	if err := wire.WriteTo(&buf, f.compressionThreshold); err != nil {
		return nil, fmt.Errorf("failed to encode packet: %w", err)
	}
	return buf.Bytes(), nil
}

// Append queues already-framed bytes (as returned by EncodePacket) for
// sending, appending them after anything already queued.
func (f *Framer) Append(framed []byte) {
	f.outbound.Write(framed)
}

// Prepend queues already-framed bytes ahead of anything already queued.
// Used for out-of-band packets (e.g. a keep-alive) that must go out
// before a large payload already staged with Append.
func (f *Framer) Prepend(framed []byte) {
	pending := f.outbound.Bytes()
	merged := make([]byte, 0, len(framed)+len(pending))
	merged = append(merged, framed...)
	merged = append(merged, pending...)
	f.outbound.Reset()
	f.outbound.Write(merged)
}

// Take drains and returns the outbound buffer, encrypting it first if
// encryption is enabled. The returned bytes are ready to write directly
// to the socket.
func (f *Framer) Take() []byte {
	data := f.outbound.Bytes()
	out := make([]byte, len(data))
	copy(out, data)
	f.outbound.Reset()
	if f.enc.IsEnabled() {
		out = f.enc.Encrypt(out)
	}
	return out
}
