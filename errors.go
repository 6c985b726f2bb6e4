package shardkey

import "errors"

// Sentinel errors for key construction and decoding.
var (
	// ErrOutOfRange is returned when a shard or ordinal does not fit its bit
	// slot: a negative shard, or an ordinal with any bit above position 47 set.
	ErrOutOfRange = errors.New("shardkey: value out of range")

	// ErrMalformedInput is returned when a byte buffer or token cannot be
	// decoded: fewer than 8 bytes, an invalid base64 character, or a token
	// that does not decode to exactly 8 bytes.
	ErrMalformedInput = errors.New("shardkey: malformed input")
)
