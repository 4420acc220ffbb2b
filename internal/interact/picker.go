package interact

import "github.com/astrochat/astrochat/internal/types"

// Side is where the picker is anchored relative to its message.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// ReactionPicker is the emoji bar opened by a long press. At most one is open.
type ReactionPicker struct {
	options   []string
	messageID string
	side      Side
	open      bool
}

// NewReactionPicker creates a closed picker offering options.
func NewReactionPicker(options []string) *ReactionPicker {
	copied := make([]string, len(options))
	copy(copied, options)
	return &ReactionPicker{options: copied}
}

// Open anchors the picker to msg: right for the user's own messages.
func (p *ReactionPicker) Open(msg types.Message) {
	p.open = true
	p.messageID = msg.ID
	p.side = SideLeft
	if msg.IsUser() {
		p.side = SideRight
	}
}

// Close hides the picker.
func (p *ReactionPicker) Close() {
	p.open = false
	p.messageID = ""
}

func (p *ReactionPicker) IsOpen() bool      { return p.open }
func (p *ReactionPicker) MessageID() string { return p.messageID }
func (p *ReactionPicker) Side() Side        { return p.side }

// Options returns the emoji offered, in order.
func (p *ReactionPicker) Options() []string {
	out := make([]string, len(p.options))
	copy(out, p.options)
	return out
}

// Option returns the emoji at index i.
func (p *ReactionPicker) Option(i int) (string, bool) {
	if i < 0 || i >= len(p.options) {
		return "", false
	}
	return p.options[i], true
}

// NextReaction toggles: choosing the current reaction clears it.
func NextReaction(current, chosen string) string {
	if current == chosen {
		return ""
	}
	return chosen
}
