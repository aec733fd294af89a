package chat

import (
	"crypto/rsa"
	"crypto/x509"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DisconnectReason names a fatal chat-protocol condition. Callers
// translate it to a player-facing disconnect packet; this package only
// classifies the failure.
type DisconnectReason uint8

const (
	DisconnectOutOfOrderTimestamp DisconnectReason = iota
	DisconnectAckValidationFailed
	DisconnectSessionExpiredOrMissing
	DisconnectSignatureVerificationFailed
	DisconnectPendingBacklogExceeded
)

func (r DisconnectReason) String() string {
	switch r {
	case DisconnectOutOfOrderTimestamp:
		return "out_of_order_timestamp"
	case DisconnectAckValidationFailed:
		return "ack_validation_failed"
	case DisconnectSessionExpiredOrMissing:
		return "session_expired_or_missing"
	case DisconnectSignatureVerificationFailed:
		return "signature_verification_failed"
	case DisconnectPendingBacklogExceeded:
		return "pending_backlog_exceeded"
	default:
		return "unknown"
	}
}

// SessionError is a fatal chat condition: the caller must disconnect the
// client with Reason, not attempt to resynchronize as it would for an
// inventory RejectReason.
type SessionError struct {
	Reason DisconnectReason
	Detail string
}

func (e *SessionError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("chat: session error: %s", e.Reason)
	}
	return fmt.Sprintf("chat: session error: %s: %s", e.Reason, e.Detail)
}

// MessageKind distinguishes a signed chat message from the unsigned
// passthrough the protocol also allows (e.g. commands, or signed chat
// disabled server-side).
type MessageKind uint8

const (
	Unsigned MessageKind = iota
	Signed
)

// Session is a client's active signed-chat session, established by a
// verified PlayerSession packet.
type Session struct {
	SessionID    uuid.UUID
	ExpiresAt    time.Time
	PublicKey    *rsa.PublicKey
	PublicKeyDER []byte
}

// IncomingMessage is one ChatMessage C2S packet's relevant fields.
type IncomingMessage struct {
	Kind         MessageKind
	Text         string
	Salt         int64
	Timestamp    time.Time
	Signature    Signature
	LastSeen     []Signature
	AckBits      [3]byte
	MessageIndex int32
}

// ChatState is the per-client state for the signed-chat acknowledgement
// engine: the acknowledgement window, the message hash chain, the
// signature-compression ring, and the active session (if any).
type ChatState struct {
	Validator  *AcknowledgementWindow
	Chain      *MessageChain
	SigStorage *SignatureStorage

	session       *Session
	lastTimestamp time.Time
}

// NewChatState returns a fresh per-client chat state with no active
// session.
func NewChatState() *ChatState {
	return &ChatState{
		Validator:  NewAcknowledgementWindow(),
		Chain:      &MessageChain{},
		SigStorage: NewSignatureStorage(),
	}
}

// Session returns the client's active signed-chat session, or nil.
func (cs *ChatState) Session() *Session { return cs.session }

// StartSession verifies a client's PlayerSession packet (session-key
// certificate signed by Mojang) and, on success, installs it and resets
// the message hash chain to index 0 for (sender, sessionID).
func (cs *ChatState) StartSession(now time.Time, sender, sessionID uuid.UUID, expiresAt time.Time, keyDER, keySignature []byte) error {
	if !expiresAt.After(now) {
		return &SessionError{Reason: DisconnectSessionExpiredOrMissing, Detail: "session already expired"}
	}
	if err := VerifySessionKey(sender, expiresAt.UnixMilli(), keyDER, keySignature); err != nil {
		return &SessionError{Reason: DisconnectSignatureVerificationFailed, Detail: err.Error()}
	}
	pub, err := x509.ParsePKIXPublicKey(keyDER)
	if err != nil {
		return &SessionError{Reason: DisconnectSignatureVerificationFailed, Detail: "malformed session public key: " + err.Error()}
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return &SessionError{Reason: DisconnectSignatureVerificationFailed, Detail: "session public key is not RSA"}
	}

	cs.session = &Session{SessionID: sessionID, ExpiresAt: expiresAt, PublicKey: rsaPub, PublicKeyDER: keyDER}
	cs.Chain.Start(sender, sessionID)
	return nil
}

// SendChatMessage records an outgoing signed message as pending
// acknowledgement, bailing out rather than growing the backlog without
// bound once MaxPendingMessages is reached.
func (cs *ChatState) SendChatMessage(sig Signature) error {
	if cs.Validator.PendingCount() >= MaxPendingMessages {
		return &SessionError{Reason: DisconnectPendingBacklogExceeded}
	}
	cs.Validator.AddPending(sig)
	return nil
}

// ReceiveMessage validates an incoming chat message end to end:
// timestamp ordering, the client's acknowledgement bitset, session
// liveness, and (for signed messages) the message signature itself. On
// success it returns the signatures the client just confirmed, which the
// caller folds into its own bookkeeping (e.g. forwarding acks upstream).
func (cs *ChatState) ReceiveMessage(now time.Time, msg IncomingMessage) ([]Signature, error) {
	if !cs.lastTimestamp.IsZero() && !msg.Timestamp.After(cs.lastTimestamp) {
		return nil, &SessionError{Reason: DisconnectOutOfOrderTimestamp}
	}

	confirmed, err := cs.Validator.Validate(msg.AckBits, msg.MessageIndex)
	if err != nil {
		return nil, &SessionError{Reason: DisconnectAckValidationFailed, Detail: err.Error()}
	}

	if msg.Kind == Unsigned {
		cs.lastTimestamp = msg.Timestamp
		return confirmed, nil
	}

	if cs.session == nil || !cs.session.ExpiresAt.After(now) {
		return nil, &SessionError{Reason: DisconnectSessionExpiredOrMissing}
	}

	link, ok := cs.Chain.NextLink()
	if !ok {
		return nil, &SessionError{Reason: DisconnectSessionExpiredOrMissing, Detail: "no active message chain"}
	}

	input := HashInput{
		Link:             link,
		Salt:             msg.Salt,
		TimestampSeconds: msg.Timestamp.Unix(),
		Text:             msg.Text,
		LastSeen:         msg.LastSeen,
	}
	if err := VerifyMessageSignature(cs.session.PublicKey, input, msg.Signature); err != nil {
		return nil, &SessionError{Reason: DisconnectSignatureVerificationFailed, Detail: err.Error()}
	}

	cs.SigStorage.Add(msg.LastSeen, msg.Signature)
	cs.lastTimestamp = msg.Timestamp
	return confirmed, nil
}
