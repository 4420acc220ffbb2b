package core

import (
	"strconv"
	"testing"
	"time"
)

func TestSnowflakeIDsAreUniqueAndOrdered(t *testing.T) {
	ids, err := NewSnowflakeIDs(1)
	if err != nil {
		t.Fatalf("new ids: %v", err)
	}
	seen := make(map[string]bool)
	var last int64
	for i := 0; i < 1000; i++ {
		id := ids.NextID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			t.Fatalf("parse id %q: %v", id, err)
		}
		if n <= last {
			t.Fatalf("ids not increasing: %d after %d", n, last)
		}
		last = n
	}
}

func TestSnowflakeIDsRejectsBadNode(t *testing.T) {
	if _, err := NewSnowflakeIDs(5000); err == nil {
		t.Fatalf("expected error for out-of-range node")
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("1234567890", 4); got != "7890" {
		t.Fatalf("got %q", got)
	}
	if got := ShortID("12", 4); got != "12" {
		t.Fatalf("got %q", got)
	}
	if got := ShortID("12", 0); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatClock(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	// 2024-12-20 07:58:00 UTC is 13:28 IST.
	if got := FormatClock(1734681480000, loc); got != "01:28 PM" {
		t.Fatalf("got %q", got)
	}
}
