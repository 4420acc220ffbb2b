// Package view projects a store snapshot into per-message render data.
package view

import (
	"strings"
	"time"

	"github.com/astrochat/astrochat/internal/core"
	"github.com/astrochat/astrochat/internal/store"
	"github.com/astrochat/astrochat/internal/types"
	"github.com/charmbracelet/x/ansi"
)

// DefaultPreviewLines bounds the reply preview text.
const DefaultPreviewLines = 2

// Align is the side a bubble sits on.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// Options tune the projection. The zero value is usable.
type Options struct {
	Location     *time.Location
	Localizer    *core.Localizer
	PreviewLines int
	// PreviewWidth wraps reply previews before counting lines; 0 counts only
	// explicit newlines.
	PreviewWidth int
}

// ReplyPreview is the quoted target of a reply.
type ReplyPreview struct {
	TargetID    string
	SenderLabel string
	Text        string
	Truncated   bool
}

// ReasonChip is one selectable dislike reason.
type ReasonChip struct {
	Key      types.FeedbackReason
	Label    string
	I18nKey  string
	Selected bool
}

// MessageView is everything the renderer needs for one message.
type MessageView struct {
	ID          string
	Text        string
	Sender      types.Sender
	SenderLabel string
	Kind        types.MessageKind
	Time        string
	Align       Align
	Reaction    string
	// ShowFeedback is set for AI messages, which carry like/dislike controls.
	ShowFeedback bool
	Feedback     types.Feedback
	Reply        *ReplyPreview
	Chips        []ReasonChip
}

// Project renders every message of snap in display order.
func Project(snap store.Snapshot, reasons core.ReasonTable, opts Options) []MessageView {
	if opts.Localizer == nil {
		opts.Localizer = core.NewLocalizer("en")
	}
	views := make([]MessageView, 0, snap.Len())
	for i := 0; i < snap.Len(); i++ {
		msg, _ := snap.At(i)
		views = append(views, ProjectMessage(snap, msg, reasons, opts))
	}
	return views
}

// ProjectMessage renders a single message against snap.
func ProjectMessage(snap store.Snapshot, msg types.Message, reasons core.ReasonTable, opts Options) MessageView {
	loc := opts.Localizer
	if loc == nil {
		loc = core.NewLocalizer("en")
	}
	v := MessageView{
		ID:          msg.ID,
		Text:        msg.Text,
		Sender:      msg.Sender,
		SenderLabel: loc.SenderLabel(msg.Sender),
		Kind:        msg.Kind,
		Time:        core.FormatClock(msg.TS, opts.Location),
		Align:       alignFor(msg),
		Reaction:    msg.Reaction,
	}
	if msg.AcceptsFeedback() {
		v.ShowFeedback = true
		v.Feedback = msg.Feedback
		if msg.Feedback == types.FeedbackDisliked {
			v.Chips = reasonChips(reasons, loc, msg.FeedbackReason)
		}
	}
	if msg.ReplyTo != "" {
		if target, ok := snap.Find(msg.ReplyTo); ok {
			lines := opts.PreviewLines
			if lines <= 0 {
				lines = DefaultPreviewLines
			}
			text, cut := TruncateLines(target.Text, lines, opts.PreviewWidth)
			v.Reply = &ReplyPreview{
				TargetID:    target.ID,
				SenderLabel: loc.SenderLabel(target.Sender),
				Text:        text,
				Truncated:   cut,
			}
		}
	}
	return v
}

func alignFor(msg types.Message) Align {
	if msg.Kind == types.MessageKindEvent {
		return AlignCenter
	}
	if msg.IsUser() {
		return AlignRight
	}
	return AlignLeft
}

func reasonChips(reasons core.ReasonTable, loc *core.Localizer, selected types.FeedbackReason) []ReasonChip {
	all := reasons.All()
	chips := make([]ReasonChip, 0, len(all))
	for _, r := range all {
		chips = append(chips, ReasonChip{
			Key:      r.Key,
			Label:    loc.ReasonLabel(r),
			I18nKey:  r.I18nKey,
			Selected: selected != types.ReasonNone && r.Key == selected,
		})
	}
	return chips
}

// TruncateLines keeps at most maxLines display lines of text, wrapping at
// width first when width > 0. It reports whether anything was dropped.
func TruncateLines(text string, maxLines, width int) (string, bool) {
	if maxLines <= 0 {
		return "", text != ""
	}
	if width > 0 {
		text = ansi.Wrap(text, width, "")
	}
	lines := strings.Split(text, "\n")
	if len(lines) <= maxLines {
		return text, false
	}
	kept := lines[:maxLines]
	last := strings.TrimRight(kept[maxLines-1], " ")
	if width > 0 && ansi.StringWidth(last)+1 > width {
		last = ansi.Truncate(last, width-1, "")
	}
	kept[maxLines-1] = last + "…"
	return strings.Join(kept, "\n"), true
}
