package chat

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/google/uuid"

	mccrypto "github.com/go-mclib/servercore/crypto"
)

// HashInput is everything a signed chat message's signature covers, laid
// out in the exact order the digest is computed over: a fixed 4-byte
// version prefix, the sender's chain link, a salt, a second-resolution
// timestamp, the message text (length-prefixed), and the list of
// previously seen signatures the client is vouching for (length-prefixed).
type HashInput struct {
	Link             MessageLink
	Salt             int64
	TimestampSeconds int64
	Text             string
	LastSeen         []Signature
}

func (h HashInput) bytes() []byte {
	buf := make([]byte, 0, 4+16+16+4+8+8+4+len(h.Text)+4+len(h.LastSeen)*256)
	buf = append(buf, 0x00, 0x00, 0x00, 0x01)
	buf = h.Link.AppendHashInput(buf)
	buf = appendInt64BE(buf, h.Salt)
	buf = appendInt64BE(buf, h.TimestampSeconds)
	buf = appendUint32BE(buf, uint32(len(h.Text)))
	buf = append(buf, h.Text...)
	buf = appendUint32BE(buf, uint32(len(h.LastSeen)))
	for _, sig := range h.LastSeen {
		buf = append(buf, sig[:]...)
	}
	return buf
}

// VerifyMessageSignature checks a chat message's signature against the
// sender's per-session RSA public key: SHA-256 over the hash input,
// PKCS#1 v1.5 padding.
func VerifyMessageSignature(pub *rsa.PublicKey, input HashInput, sig Signature) error {
	digest := sha256.Sum256(input.bytes())
	if err := rsa.VerifyPKCS1v15(pub, crypto.SHA256, digest[:], sig[:]); err != nil {
		return fmt.Errorf("chat: message signature verification failed: %w", err)
	}
	return nil
}

var (
	mojangKeyOnce sync.Once
	mojangKey     *rsa.PublicKey
	mojangKeyErr  error
)

// LoadMojangPublicKey parses and installs the process-wide Mojang
// session-certificate signing key from a PEM blob. It is idempotent: only
// the first call's PEM takes effect, matching the "initialized once at
// startup, read-only thereafter" lifecycle. The real key material must
// come from the operator's configuration (Mojang publishes it alongside
// the session-server API); this package never bundles a copy.
func LoadMojangPublicKey(pemBytes []byte) error {
	mojangKeyOnce.Do(func() {
		mojangKey, mojangKeyErr = mccrypto.ParseRSAPublicKey(string(pemBytes))
	})
	return mojangKeyErr
}

// MojangPublicKey returns the installed key, or an error if
// LoadMojangPublicKey has not yet succeeded.
func MojangPublicKey() (*rsa.PublicKey, error) {
	if mojangKey == nil {
		if mojangKeyErr != nil {
			return nil, mojangKeyErr
		}
		return nil, fmt.Errorf("chat: Mojang public key not loaded")
	}
	return mojangKey, nil
}

// VerifySessionKey checks a client's session public key certificate: a
// Mojang-signed SHA-1 digest of (player uuid ∥ expiry ∥ key DER) against
// the process-wide Mojang public key installed by LoadMojangPublicKey. It
// returns an error if no key has been installed.
func VerifySessionKey(playerUUID uuid.UUID, expiresAtUnixMillis int64, keyDER []byte, signature []byte) error {
	pub, err := MojangPublicKey()
	if err != nil {
		return err
	}
	buf := make([]byte, 0, 16+8+len(keyDER))
	buf = append(buf, playerUUID[:]...)
	buf = appendInt64BE(buf, expiresAtUnixMillis)
	buf = append(buf, keyDER...)

	digest := sha1.Sum(buf)
	if err := rsa.VerifyPKCS1v15(pub, crypto.SHA1, digest[:], signature); err != nil {
		return fmt.Errorf("chat: session key signature verification failed: %w", err)
	}
	return nil
}
