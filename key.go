package shardkey

import (
	"errors"
	"fmt"
)

// Field bounds. The shard occupies the top 16 bits of the packed value and is
// carried in a signed 16-bit slot, so its usable range is 0..32767. The
// ordinal occupies the low 48 bits.
const (
	MaxShard   int16 = 0x7FFF
	MaxOrdinal int64 = 0x0000FFFFFFFFFFFF

	ordinalBits = 48
)

// Key is a composite identifier packing a shard tag and a record ordinal into
// a single 64-bit value. Keys are immutable and only constructed through
// validated paths, so a Key in hand always satisfies the field bounds. The
// zero value is valid (shard 0, ordinal 0).
type Key struct {
	shard   int16
	ordinal int64
}

// New builds a Key from a shard and an ordinal, validating both fields.
// It fails with ErrOutOfRange when shard is negative or ordinal has any bit
// above position 47 set (which also rejects negative ordinals, whose high
// bits are set in two's complement).
func New(shard int16, ordinal int64) (Key, error) {
	if err := validateShard(shard); err != nil {
		return Key{}, err
	}
	if err := validateOrdinal(ordinal); err != nil {
		return Key{}, err
	}
	return Key{shard: shard, ordinal: ordinal}, nil
}

// Shard returns the shard tag carried in the top 16 bits of the packed value.
func (k Key) Shard() int16 { return k.shard }

// Ordinal returns the record ordinal carried in the low 48 bits.
func (k Key) Ordinal() int64 { return k.ordinal }

// Packed returns the raw 64-bit form: shard in the top 16 bits, ordinal in
// the low 48. The mapping is injective over the legal domain: distinct legal
// (shard, ordinal) pairs never collide, and FromPacked reverses it exactly.
func (k Key) Packed() uint64 {
	return uint64(uint16(k.shard))<<ordinalBits | uint64(k.ordinal)
}

// FromPacked rebuilds a Key from its raw 64-bit form. Both decoded fields go
// through the same validation as New, so a value whose shard slot has its top
// bit set (a negative shard) is rejected rather than silently accepted.
func FromPacked(v uint64) (Key, error) {
	return New(int16(v>>ordinalBits), int64(v&uint64(MaxOrdinal)))
}

func validateShard(v int16) error {
	if v < 0 {
		return errors.Join(ErrOutOfRange, fmt.Errorf("shard %d: must not be negative", v))
	}
	return nil
}

func validateOrdinal(v int64) error {
	if v&^MaxOrdinal != 0 {
		return errors.Join(ErrOutOfRange, fmt.Errorf("ordinal %d: must be between 0 and %d", v, MaxOrdinal))
	}
	return nil
}
