package shardkey

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// EncodedLen is the byte length of a serialized Key.
	EncodedLen = 8

	// TokenLen is the character length of the unpadded base64 token form.
	TokenLen = 11
)

// Bytes serializes the key as an 8-byte big-endian 64-bit value: shard in the
// two most significant bytes, ordinal in the remaining six. Big-endian is
// fixed so buffers are portable across hosts.
func (k Key) Bytes() []byte {
	var b [EncodedLen]byte
	binary.BigEndian.PutUint64(b[:], k.Packed())
	return b[:]
}

// FromBytes deserializes a key from the first 8 bytes of b. Buffers shorter
// than 8 bytes fail with ErrMalformedInput. The decoded fields are
// re-validated, so a tampered or foreign buffer whose shard slot has its top
// bit set fails with ErrOutOfRange instead of producing a negative shard.
func FromBytes(b []byte) (Key, error) {
	if len(b) < EncodedLen {
		return Key{}, errors.Join(ErrMalformedInput, fmt.Errorf("buffer is %d bytes, need %d", len(b), EncodedLen))
	}
	return FromPacked(binary.BigEndian.Uint64(b[:EncodedLen]))
}

// Token encodes the key with the unpadded URL-safe base64 alphabet. The
// result is always exactly 11 characters and safe to embed in URLs verbatim.
func (k Key) Token() string {
	return base64.RawURLEncoding.EncodeToString(k.Bytes())
}

// ParseToken decodes a token produced by Token. It fails with
// ErrMalformedInput when the string contains characters outside the URL-safe
// base64 alphabet (including the '=' padding character) or does not decode to
// exactly 8 bytes.
func ParseToken(token string) (Key, error) {
	b, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Key{}, errors.Join(ErrMalformedInput, fmt.Errorf("decode token %q: %w", token, err))
	}
	if len(b) != EncodedLen {
		return Key{}, errors.Join(ErrMalformedInput, fmt.Errorf("token %q: decodes to %d bytes, need %d", token, len(b), EncodedLen))
	}
	return FromBytes(b)
}

// String returns the token form.
func (k Key) String() string { return k.Token() }

// MarshalBinary implements encoding.BinaryMarshaler.
func (k Key) MarshalBinary() ([]byte, error) { return k.Bytes(), nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (k *Key) UnmarshalBinary(data []byte) error {
	dec, err := FromBytes(data)
	if err != nil {
		return err
	}
	*k = dec
	return nil
}

// MarshalText implements encoding.TextMarshaler, so a Key embeds in JSON as
// its token form.
func (k Key) MarshalText() ([]byte, error) { return []byte(k.Token()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Key) UnmarshalText(text []byte) error {
	dec, err := ParseToken(string(text))
	if err != nil {
		return err
	}
	*k = dec
	return nil
}
