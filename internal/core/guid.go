package core

import (
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/cockroachdb/errors"
)

// IDSource hands out fresh message ids.
type IDSource interface {
	NextID() string
}

// IDFunc adapts a plain function to IDSource.
type IDFunc func() string

func (f IDFunc) NextID() string { return f() }

// SnowflakeIDs generates time-ordered ids that are unique per node.
type SnowflakeIDs struct {
	mu   sync.Mutex
	node *snowflake.Node
}

// NewSnowflakeIDs creates an id source for the given node (0-1023).
func NewSnowflakeIDs(nodeID int64) (*SnowflakeIDs, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, errors.Wrapf(err, "snowflake node %d", nodeID)
	}
	return &SnowflakeIDs{node: node}, nil
}

// NextID returns the next id in base 10.
func (s *SnowflakeIDs) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strconv.FormatInt(s.node.Generate().Int64(), 10)
}

// ShortID returns the last n characters of an id for compact display.
func ShortID(id string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(id) <= n {
		return id
	}
	return id[len(id)-n:]
}
