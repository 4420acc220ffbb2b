// Package store holds the ordered message list of a chat session.
//
// The store is the only place messages change. Every mutation publishes a new
// immutable Snapshot, so readers never observe a half-applied operation and
// never hold references into the live container.
package store

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/astrochat/astrochat/internal/types"
)

// Op names a store mutation.
type Op string

const (
	OpAdd      Op = "add"
	OpUpdate   Op = "update"
	OpReaction Op = "reaction"
	OpFeedback Op = "feedback"
	OpReset    Op = "reset"
)

// Change describes one applied mutation. Message holds the record after the
// change; for OpReset it is empty and Messages holds the new list.
type Change struct {
	Op       Op
	Version  uint64
	Message  types.Message
	Messages []types.Message
}

// Observer is notified after each applied mutation, on the writer's goroutine.
type Observer interface {
	Observe(Change)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Change)

func (f ObserverFunc) Observe(c Change) { f(c) }

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for mutation debug logs.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithObserver registers an observer.
func WithObserver(o Observer) Option {
	return func(s *Store) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// Store is an append-ordered message list with copy-on-write snapshots.
type Store struct {
	mu        sync.Mutex
	current   atomic.Pointer[Snapshot]
	observers []Observer
	logger    *slog.Logger
}

// New creates a store seeded with initial messages, in order.
func New(initial []types.Message, opts ...Option) *Store {
	s := &Store{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	s.current.Store(newSnapshot(cloneMessages(initial), 0))
	return s
}

// Snapshot returns the latest published state.
func (s *Store) Snapshot() Snapshot {
	return *s.current.Load()
}

// Add appends msg. The caller supplies every field, including ID and TS.
func (s *Store) Add(msg types.Message) {
	s.apply(OpAdd, func(msgs []types.Message) ([]types.Message, int) {
		return append(msgs, msg), len(msgs)
	})
}

// Update merges the set fields of u into the message with id.
func (s *Store) Update(id string, u types.MessageUpdate) {
	s.mutate(OpUpdate, id, u.Apply)
}

// SetReaction sets the reaction on id; "" clears it.
func (s *Store) SetReaction(id, reaction string) {
	s.mutate(OpReaction, id, func(m types.Message) types.Message {
		m.Reaction = reaction
		return m
	})
}

// SetFeedback stores both feedback fields on id. Zero values are an explicit
// unset. The reason-only-when-disliked rule is left to callers.
func (s *Store) SetFeedback(id string, feedback types.Feedback, reason types.FeedbackReason) {
	s.mutate(OpFeedback, id, func(m types.Message) types.Message {
		m.Feedback = feedback
		m.FeedbackReason = reason
		return m
	})
}

// Reset replaces the whole sequence.
func (s *Store) Reset(msgs []types.Message) {
	s.apply(OpReset, func([]types.Message) ([]types.Message, int) {
		return cloneMessages(msgs), -1
	})
}

func (s *Store) mutate(op Op, id string, fn func(types.Message) types.Message) {
	s.apply(op, func(msgs []types.Message) ([]types.Message, int) {
		idx := indexOf(msgs, id)
		if idx < 0 {
			s.logger.Debug("store: unknown message", "op", op, "id", id)
			return nil, -1
		}
		msgs[idx] = fn(msgs[idx])
		return msgs, idx
	})
}

// apply runs fn against a private copy of the current messages and publishes
// the result. fn returns a nil slice to signal a no-op, and the index of the
// touched message (or -1).
func (s *Store) apply(op Op, fn func([]types.Message) ([]types.Message, int)) {
	s.mu.Lock()
	prev := s.current.Load()
	next, idx := fn(cloneMessagesCap(prev.messages, 1))
	if next == nil {
		s.mu.Unlock()
		return
	}
	snap := newSnapshot(next, prev.version+1)
	s.current.Store(snap)
	change := Change{Op: op, Version: snap.version}
	if idx >= 0 {
		change.Message = next[idx]
	}
	if op == OpReset {
		change.Messages = cloneMessages(next)
	}
	observers := s.observers
	s.mu.Unlock()

	s.logger.Debug("store: applied", "op", op, "id", change.Message.ID, "version", change.Version, "len", len(next))
	for _, o := range observers {
		o.Observe(change)
	}
}

func indexOf(msgs []types.Message, id string) int {
	for i := range msgs {
		if msgs[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneMessages(msgs []types.Message) []types.Message {
	return cloneMessagesCap(msgs, 0)
}

func cloneMessagesCap(msgs []types.Message, extra int) []types.Message {
	out := make([]types.Message, len(msgs), len(msgs)+extra)
	copy(out, msgs)
	return out
}
