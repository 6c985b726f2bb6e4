package shardkey

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Allocator assigns record ordinals within a shard. It is the external
// authority this package encodes for: the package itself never guarantees
// that a (shard, ordinal) pair is unique. Implementations backed by a
// database or coordination service should honor ctx cancellation.
type Allocator interface {
	Allocate(ctx context.Context, shard int16) (int64, error)
}

// Sequence is an in-memory Allocator handing out monotonically increasing
// ordinals per shard, starting at zero. It is safe for concurrent use.
// Counters are not persisted; callers keeping durable state should restore
// it with SetNext on startup.
type Sequence struct {
	mu   sync.Mutex
	next map[int16]int64
}

var _ Allocator = (*Sequence)(nil)

// NewSequence returns an empty Sequence; every shard starts at ordinal 0.
func NewSequence() *Sequence {
	return &Sequence{next: make(map[int16]int64)}
}

// Allocate returns the next ordinal for shard and advances its counter.
// It fails with ErrOutOfRange once a shard's counter has passed MaxOrdinal.
func (s *Sequence) Allocate(_ context.Context, shard int16) (int64, error) {
	if err := validateShard(shard); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.next[shard]
	if n > MaxOrdinal {
		return 0, errors.Join(ErrOutOfRange, fmt.Errorf("shard %d: ordinal space exhausted", shard))
	}
	s.next[shard] = n + 1
	return n, nil
}

// NextKey allocates an ordinal for shard and returns it as a Key.
func (s *Sequence) NextKey(ctx context.Context, shard int16) (Key, error) {
	n, err := s.Allocate(ctx, shard)
	if err != nil {
		return Key{}, err
	}
	return New(shard, n)
}

// SetNext restores the counter for a shard, for callers that persist
// allocator state elsewhere. The next Allocate on shard returns next.
func (s *Sequence) SetNext(shard int16, next int64) error {
	if err := validateShard(shard); err != nil {
		return err
	}
	if err := validateOrdinal(next); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next[shard] = next
	return nil
}
