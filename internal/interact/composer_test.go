package interact

import (
	"testing"
	"time"

	"github.com/astrochat/astrochat/internal/types"
)

func TestComposerKeepsTextAsTyped(t *testing.T) {
	var c Composer
	c.SetText("  hi there ")
	msg, ok := c.Compose("7", time.UnixMilli(42))
	if !ok {
		t.Fatalf("expected compose")
	}
	if msg.Text != "  hi there " || msg.Kind != types.MessageKindText || msg.TS != 42 {
		t.Fatalf("unexpected %+v", msg)
	}
	if msg.ReplyTo != "" {
		t.Fatalf("unexpected reply_to %q", msg.ReplyTo)
	}
	if c.Text() == "" {
		t.Fatalf("compose must not clear state")
	}
}

func TestComposerCancelReply(t *testing.T) {
	var c Composer
	c.StartReply(types.ReplyTarget{ID: "3", Text: "x"})
	c.CancelReply()
	c.SetText("hi")
	msg, _ := c.Compose("8", time.Now())
	if msg.ReplyTo != "" {
		t.Fatalf("cancelled reply leaked: %q", msg.ReplyTo)
	}
}
