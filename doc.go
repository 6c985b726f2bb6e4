// Package shardkey packs a 16-bit shard tag and a 48-bit record ordinal into
// a single 64-bit composite key, transmitted externally as an unpadded
// URL-safe base64 token.
//
// The shard selects a partition; the ordinal identifies a record within it.
// The packed form puts the shard in the top 16 bits and the ordinal in the
// low 48, serialized big-endian, so tokens are opaque, reversible, and
// portable across hosts.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/shardkey"
//
//	k, err := shardkey.New(42, 1001)
//	if err != nil {
//	    return err
//	}
//
//	token := k.Token()
//	// Output: an 11-character URL-safe string, e.g. "ACoAAAAAA-k"
//
//	k2, err := shardkey.ParseToken(token)
//	// k2.Shard() == 42, k2.Ordinal() == 1001
//
// # Validation
//
// A Key is only observable in a valid state. New rejects negative shards and
// ordinals outside 0..MaxOrdinal with ErrOutOfRange, and every decoding path
// (FromBytes, FromPacked, ParseToken) routes the decoded fields back through
// the same validation, so a tampered buffer whose shard slot carries a
// negative value is rejected rather than silently accepted:
//
//	_, err := shardkey.New(-1, 0)
//	// errors.Is(err, shardkey.ErrOutOfRange) == true
//
// Malformed input on the decoding paths (short buffers, invalid base64
// characters, tokens that do not decode to exactly 8 bytes) fails with
// ErrMalformedInput:
//
//	_, err = shardkey.ParseToken("not+base64!")
//	// errors.Is(err, shardkey.ErrMalformedInput) == true
//
// # Wire format
//
// Bytes returns exactly 8 bytes and Token returns exactly 11 characters from
// the URL-safe base64 alphabet (A-Z, a-z, 0-9, '-', '_') with no padding.
// Keys also implement encoding.BinaryMarshaler, encoding.TextMarshaler, and
// fmt.Stringer, so they embed directly in JSON as their token form.
//
// # Allocation
//
// The package never assigns ordinals or guarantees uniqueness; that belongs
// to an external [Allocator]. The in-memory [Sequence] implementation covers
// tests and single-process use:
//
//	seq := shardkey.NewSequence()
//	k, err := seq.NextKey(ctx, 42)
//
// # Concurrency
//
// Key is an immutable value and safe to share freely. Sequence is safe for
// concurrent use.
package shardkey
