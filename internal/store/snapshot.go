package store

import "github.com/astrochat/astrochat/internal/types"

// Snapshot is an immutable view of the store at one version. Accessors return
// copies, so callers cannot reach into shared state.
type Snapshot struct {
	messages []types.Message
	version  uint64
}

func newSnapshot(msgs []types.Message, version uint64) *Snapshot {
	return &Snapshot{messages: msgs, version: version}
}

// Version increases by one for every applied mutation.
func (s Snapshot) Version() uint64 {
	return s.version
}

// Len returns the number of messages.
func (s Snapshot) Len() int {
	return len(s.messages)
}

// At returns the message at index i in display order.
func (s Snapshot) At(i int) (types.Message, bool) {
	if i < 0 || i >= len(s.messages) {
		return types.Message{}, false
	}
	return s.messages[i], true
}

// Find scans the snapshot for id.
func (s Snapshot) Find(id string) (types.Message, bool) {
	if id == "" {
		return types.Message{}, false
	}
	idx := indexOf(s.messages, id)
	if idx < 0 {
		return types.Message{}, false
	}
	return s.messages[idx], true
}

// IndexOf returns the position of id, or -1.
func (s Snapshot) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	return indexOf(s.messages, id)
}

// Messages returns a copy of every message in display order.
func (s Snapshot) Messages() []types.Message {
	return cloneMessages(s.messages)
}
