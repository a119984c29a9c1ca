package wallet

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"
)

// ErrInvalidKey is returned by ParseKey for anything that is not a usable
// secp256k1 private key.
var ErrInvalidKey = errors.New("invalid private key")

// Key is a validated secp256k1 private key. The zero value is not usable.
type Key struct {
	priv *secp256k1.PrivateKey
}

// ParseKey accepts a 32-byte hex string, with or without the 0x prefix, and
// rejects zero and values not below the curve order.
func ParseKey(s string) (Key, error) {
	raw := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if len(raw) != 64 {
		return Key{}, fmt.Errorf("%w: expected 64 hex characters, got %d", ErrInvalidKey, len(raw))
	}

	b, err := hex.DecodeString(raw)
	if err != nil {
		return Key{}, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(b); overflow || scalar.IsZero() {
		return Key{}, fmt.Errorf("%w: out of range", ErrInvalidKey)
	}

	return Key{priv: secp256k1.NewPrivateKey(&scalar)}, nil
}

// IsZero reports whether k holds no key.
func (k Key) IsZero() bool {
	return k.priv == nil
}

// Hex returns the canonical lowercase 0x-prefixed form.
func (k Key) Hex() string {
	if k.priv == nil {
		return ""
	}

	b := k.priv.Key.Bytes()
	return "0x" + hex.EncodeToString(b[:])
}

// String never reveals key material.
func (k Key) String() string {
	if k.priv == nil {
		return "<empty key>"
	}
	return "<private key for " + k.Address() + ">"
}

// Address returns the lowercase 0x-prefixed EVM address derived from k.
func (k Key) Address() string {
	if k.priv == nil {
		return ""
	}

	pub := k.priv.PubKey().SerializeUncompressed()
	return "0x" + hex.EncodeToString(keccak256(pub[1:])[12:])
}

// SignMessage produces an EIP-191 personal_sign signature (r || s || v, v in
// {27, 28}) over msg.
func (k Key) SignMessage(msg []byte) ([]byte, error) {
	if k.priv == nil {
		return nil, ErrInvalidKey
	}

	prefix := "\x19Ethereum Signed Message:\n" + strconv.Itoa(len(msg))
	digest := keccak256([]byte(prefix), msg)

	compact := ecdsa.SignCompact(k.priv, digest, false)
	return append(compact[1:], compact[0]), nil
}

func keccak256(data ...[]byte) []byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}
