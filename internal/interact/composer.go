package interact

import (
	"strings"
	"time"

	"github.com/astrochat/astrochat/internal/types"
)

// Composer holds the unsent input and the pending reply pointer.
type Composer struct {
	text  string
	reply *types.ReplyTarget
}

func (c *Composer) SetText(text string) { c.text = text }
func (c *Composer) Text() string        { return c.text }

// StartReply points the next message at target.
func (c *Composer) StartReply(target types.ReplyTarget) {
	c.reply = &target
}

// CancelReply drops the reply pointer.
func (c *Composer) CancelReply() {
	c.reply = nil
}

// Reply returns the pending reply pointer.
func (c *Composer) Reply() (types.ReplyTarget, bool) {
	if c.reply == nil {
		return types.ReplyTarget{}, false
	}
	return *c.reply, true
}

// CanSend reports whether the input has any non-whitespace text.
func (c *Composer) CanSend() bool {
	return strings.TrimSpace(c.text) != ""
}

// Compose builds the outgoing message without clearing state. The text is
// kept as typed; only the emptiness check trims it.
func (c *Composer) Compose(id string, now time.Time) (types.Message, bool) {
	if !c.CanSend() {
		return types.Message{}, false
	}
	msg := types.Message{
		ID:     id,
		Text:   c.text,
		Sender: types.SenderUser,
		TS:     now.UnixMilli(),
		Kind:   types.MessageKindText,
	}
	if c.reply != nil {
		msg.ReplyTo = c.reply.ID
	}
	return msg, true
}

// Clear empties the input and the reply pointer.
func (c *Composer) Clear() {
	c.text = ""
	c.reply = nil
}
