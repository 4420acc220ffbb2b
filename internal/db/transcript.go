package db

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/astrochat/astrochat/internal/store"
	"github.com/astrochat/astrochat/internal/types"
	"github.com/cockroachdb/errors"
)

const (
	recordMessage       = "message"
	recordMessageUpdate = "message_update"
	recordReset         = "reset"
	recordRating        = "rating"
)

// MessageJSONLRecord is an appended message.
type MessageJSONLRecord struct {
	Type string `json:"type"`
	types.Message
}

// MessageUpdateJSONLRecord carries only the fields a mutation touched.
type MessageUpdateJSONLRecord struct {
	Type           string                `json:"type"`
	ID             string                `json:"id"`
	Text           *string               `json:"text,omitempty"`
	Sender         *types.Sender         `json:"sender,omitempty"`
	Kind           *types.MessageKind    `json:"kind,omitempty"`
	ReplyTo        *string               `json:"reply_to,omitempty"`
	Reaction       *string               `json:"reaction,omitempty"`
	Feedback       *types.Feedback       `json:"feedback,omitempty"`
	FeedbackReason *types.FeedbackReason `json:"feedback_reason,omitempty"`
}

// ResetJSONLRecord replaces the whole message list.
type ResetJSONLRecord struct {
	Type     string          `json:"type"`
	Messages []types.Message `json:"messages"`
}

// RatingJSONLRecord is a submitted session rating.
type RatingJSONLRecord struct {
	Type string `json:"type"`
	types.SessionRating
}

// TranscriptContents is a replayed transcript.
type TranscriptContents struct {
	Messages []types.Message
	Ratings  []types.SessionRating
}

// Transcript appends store changes and ratings to a JSONL file. It is a
// store.Observer and an interact.RatingSink.
type Transcript struct {
	path   string
	logger *slog.Logger

	mu      sync.Mutex
	lastErr error
}

// NewTranscript writes to path.
func NewTranscript(path string, logger *slog.Logger) *Transcript {
	if logger == nil {
		logger = slog.Default()
	}
	return &Transcript{path: path, logger: logger}
}

// Path returns the transcript file.
func (t *Transcript) Path() string { return t.path }

// Observe records one store change. Write failures are logged and kept for
// Err; they never interrupt the chat.
func (t *Transcript) Observe(c store.Change) {
	record := changeRecord(c)
	if record == nil {
		return
	}
	t.write(record)
}

// SubmitRating appends a rating record.
func (t *Transcript) SubmitRating(_ context.Context, rating types.SessionRating) error {
	return t.write(RatingJSONLRecord{Type: recordRating, SessionRating: rating})
}

// Err returns the most recent write error, if any.
func (t *Transcript) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastErr
}

func (t *Transcript) write(record any) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := appendJSONLine(t.path, record); err != nil {
		t.lastErr = err
		t.logger.Error("transcript write failed", "path", t.path, "err", err)
		return err
	}
	return nil
}

func changeRecord(c store.Change) any {
	m := c.Message
	switch c.Op {
	case store.OpAdd:
		return MessageJSONLRecord{Type: recordMessage, Message: m}
	case store.OpReaction:
		return MessageUpdateJSONLRecord{Type: recordMessageUpdate, ID: m.ID, Reaction: &m.Reaction}
	case store.OpFeedback:
		return MessageUpdateJSONLRecord{
			Type:           recordMessageUpdate,
			ID:             m.ID,
			Feedback:       &m.Feedback,
			FeedbackReason: &m.FeedbackReason,
		}
	case store.OpUpdate:
		return MessageUpdateJSONLRecord{
			Type:           recordMessageUpdate,
			ID:             m.ID,
			Text:           &m.Text,
			Sender:         &m.Sender,
			Kind:           &m.Kind,
			ReplyTo:        &m.ReplyTo,
			Reaction:       &m.Reaction,
			Feedback:       &m.Feedback,
			FeedbackReason: &m.FeedbackReason,
		}
	case store.OpReset:
		msgs := c.Messages
		if msgs == nil {
			msgs = []types.Message{}
		}
		return ResetJSONLRecord{Type: recordReset, Messages: msgs}
	default:
		return nil
	}
}

// ReadTranscript replays a transcript file. A missing file is empty.
func ReadTranscript(path string) (TranscriptContents, error) {
	lines, err := readJSONLLines(path)
	if err != nil {
		return TranscriptContents{}, err
	}
	var out TranscriptContents
	index := make(map[string]int)
	for n, line := range lines {
		kind, err := recordType(line)
		if err != nil {
			return TranscriptContents{}, errors.Wrapf(err, "%s line %d", path, n+1)
		}
		switch kind {
		case recordMessage:
			var rec MessageJSONLRecord
			if err := json.Unmarshal([]byte(line), &rec); err != nil {
				return TranscriptContents{}, errors.Wrapf(err, "%s line %d", path, n+1)
			}
			index[rec.ID] = len(out.Messages)
			out.Messages = append(out.Messages, rec.Message)
		case recordMessageUpdate:
			var rec MessageUpdateJSONLRecord
			if err := json.Unmarshal([]byte(line), &rec); err != nil {
				return TranscriptContents{}, errors.Wrapf(err, "%s line %d", path, n+1)
			}
			if idx, ok := index[rec.ID]; ok {
				out.Messages[idx] = rec.apply(out.Messages[idx])
			}
		case recordReset:
			var rec ResetJSONLRecord
			if err := json.Unmarshal([]byte(line), &rec); err != nil {
				return TranscriptContents{}, errors.Wrapf(err, "%s line %d", path, n+1)
			}
			out.Messages = rec.Messages
			index = make(map[string]int, len(rec.Messages))
			for i, m := range rec.Messages {
				index[m.ID] = i
			}
		case recordRating:
			var rec RatingJSONLRecord
			if err := json.Unmarshal([]byte(line), &rec); err != nil {
				return TranscriptContents{}, errors.Wrapf(err, "%s line %d", path, n+1)
			}
			out.Ratings = append(out.Ratings, rec.SessionRating)
		default:
			// Unknown record types come from newer writers; skip them.
		}
	}
	return out, nil
}

func (r MessageUpdateJSONLRecord) apply(m types.Message) types.Message {
	u := types.MessageUpdate{
		Text:           r.Text,
		Sender:         r.Sender,
		Kind:           r.Kind,
		Feedback:       r.Feedback,
		FeedbackReason: r.FeedbackReason,
	}
	if r.ReplyTo != nil {
		u.ReplyTo = types.OptionalString{Set: true, Value: *r.ReplyTo}
	}
	if r.Reaction != nil {
		u.Reaction = types.OptionalString{Set: true, Value: *r.Reaction}
	}
	return u.Apply(m)
}
