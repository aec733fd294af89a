package chat

import "github.com/cespare/xxhash/v2"

const signatureRingSize = 128

// SignatureStorage is a 128-slot ring of previously seen message
// signatures, used to compress outgoing chat: a signature already known
// to a recipient is referenced by ring index instead of resent in full.
type SignatureStorage struct {
	ring    [signatureRingSize]Signature
	present [signatureRingSize]bool
	// index maps an xxhash of a signature's bytes to its ring slot. A
	// 256-byte array is an awkward direct map key; hashing first and
	// verifying full equality on hit keeps lookups cheap while still
	// being exact (collisions fall back to a linear scan).
	index map[uint64]int
}

// NewSignatureStorage returns an empty ring.
func NewSignatureStorage() *SignatureStorage {
	return &SignatureStorage{index: make(map[uint64]int, signatureRingSize)}
}

// Add records newSig (and the lastSeen signatures a message referenced)
// as freshly known, evicting the ring from the front: newSig becomes
// ring slot 0, the lastSeen signatures follow in reverse, and whatever
// prior entries aren't in (lastSeen ∪ {newSig}) are shifted back after
// them, oldest dropping off the end of the ring first.
func (s *SignatureStorage) Add(lastSeen []Signature, newSig Signature) {
	seen := make(map[Signature]struct{}, len(lastSeen)+1)
	for _, sig := range lastSeen {
		seen[sig] = struct{}{}
	}
	seen[newSig] = struct{}{}

	fresh := make([]Signature, 0, len(lastSeen)+1)
	fresh = append(fresh, newSig)
	for i := len(lastSeen) - 1; i >= 0; i-- {
		fresh = append(fresh, lastSeen[i])
	}

	retained := make([]Signature, 0, signatureRingSize)
	for i := 0; i < signatureRingSize; i++ {
		if !s.present[i] {
			continue
		}
		if _, dup := seen[s.ring[i]]; dup {
			continue
		}
		retained = append(retained, s.ring[i])
	}

	combined := append(fresh, retained...)
	if len(combined) > signatureRingSize {
		combined = combined[:signatureRingSize]
	}

	s.ring = [signatureRingSize]Signature{}
	s.present = [signatureRingSize]bool{}
	for i, sig := range combined {
		s.ring[i] = sig
		s.present[i] = true
	}
	s.rebuildIndex(len(combined))
}

func (s *SignatureStorage) rebuildIndex(n int) {
	s.index = make(map[uint64]int, n)
	for i := 0; i < n; i++ {
		s.index[xxhash.Sum64(s.ring[i][:])] = i
	}
}

// IndexOf returns the ring slot holding sig, if any.
func (s *SignatureStorage) IndexOf(sig Signature) (int, bool) {
	h := xxhash.Sum64(sig[:])
	if i, ok := s.index[h]; ok && s.present[i] && s.ring[i] == sig {
		return i, true
	}
	for i := 0; i < signatureRingSize; i++ {
		if s.present[i] && s.ring[i] == sig {
			return i, true
		}
	}
	return 0, false
}

// MessageSignature is the opportunistically compressed reference to a
// signature on outgoing chat: ByIndex when the recipient's storage
// already has it, the raw bytes otherwise.
type MessageSignature struct {
	ByIndex bool
	Index   int32
	Raw     Signature
}

// Reference looks sig up in this storage (the outgoing message's
// recipient), returning a by-index reference on hit and the raw bytes on
// miss.
func (s *SignatureStorage) Reference(sig Signature) MessageSignature {
	if i, ok := s.IndexOf(sig); ok {
		return MessageSignature{ByIndex: true, Index: int32(i)}
	}
	return MessageSignature{ByIndex: false, Raw: sig}
}
