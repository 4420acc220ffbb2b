package types

// Sender identifies who wrote a message.
type Sender string

const (
	SenderUser            Sender = "user"
	SenderAIAstrologer    Sender = "ai_astrologer"
	SenderHumanAstrologer Sender = "human_astrologer"
	SenderSystem          Sender = "system"
)

// MessageKind classifies message origin. Display only.
type MessageKind string

const (
	MessageKindNone  MessageKind = ""
	MessageKindText  MessageKind = "text"
	MessageKindEvent MessageKind = "event"
	MessageKindAI    MessageKind = "ai"
	MessageKindHuman MessageKind = "human"
)

// Feedback is the like/dislike state of an AI message.
// The zero value means no feedback has been given.
type Feedback int

const (
	FeedbackUnset Feedback = iota
	FeedbackLiked
	FeedbackDisliked
)

func (f Feedback) String() string {
	switch f {
	case FeedbackLiked:
		return "liked"
	case FeedbackDisliked:
		return "disliked"
	default:
		return ""
	}
}

// ParseFeedback maps "liked"/"disliked" to a Feedback; anything else is unset.
func ParseFeedback(value string) Feedback {
	switch value {
	case "liked":
		return FeedbackLiked
	case "disliked":
		return FeedbackDisliked
	default:
		return FeedbackUnset
	}
}

// MarshalText encodes unset as the empty string.
func (f Feedback) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Feedback) UnmarshalText(text []byte) error {
	*f = ParseFeedback(string(text))
	return nil
}

// FeedbackReason is the structured reason attached to a dislike.
type FeedbackReason string

const (
	ReasonNone       FeedbackReason = ""
	ReasonInaccurate FeedbackReason = "inaccurate"
	ReasonVague      FeedbackReason = "vague"
	ReasonLong       FeedbackReason = "long"
)

// Message is a single chat turn.
type Message struct {
	ID             string         `json:"id" yaml:"id"`
	Text           string         `json:"text" yaml:"text"`
	Sender         Sender         `json:"sender" yaml:"sender"`
	TS             int64          `json:"ts" yaml:"ts"`
	Kind           MessageKind    `json:"kind,omitempty" yaml:"kind,omitempty"`
	Feedback       Feedback       `json:"feedback,omitempty" yaml:"feedback,omitempty"`
	FeedbackReason FeedbackReason `json:"feedback_reason,omitempty" yaml:"feedback_reason,omitempty"`
	ReplyTo        string         `json:"reply_to,omitempty" yaml:"reply_to,omitempty"`
	Reaction       string         `json:"reaction,omitempty" yaml:"reaction,omitempty"`
}

// IsUser reports whether the message was written by the local user.
func (m Message) IsUser() bool {
	return m.Sender == SenderUser
}

// AcceptsFeedback reports whether like/dislike applies to the message.
func (m Message) AcceptsFeedback() bool {
	return m.Sender == SenderAIAstrologer
}

// OptionalString represents a nullable string update.
type OptionalString struct {
	Set   bool
	Value string
}

// MessageUpdate lists the fields to merge into an existing message.
// ID and TS are immutable.
type MessageUpdate struct {
	Text           *string
	Sender         *Sender
	Kind           *MessageKind
	Feedback       *Feedback
	FeedbackReason *FeedbackReason
	ReplyTo        OptionalString
	Reaction       OptionalString
}

// Apply merges the update into msg and returns the result.
func (u MessageUpdate) Apply(msg Message) Message {
	if u.Text != nil {
		msg.Text = *u.Text
	}
	if u.Sender != nil {
		msg.Sender = *u.Sender
	}
	if u.Kind != nil {
		msg.Kind = *u.Kind
	}
	if u.Feedback != nil {
		msg.Feedback = *u.Feedback
	}
	if u.FeedbackReason != nil {
		msg.FeedbackReason = *u.FeedbackReason
	}
	if u.ReplyTo.Set {
		msg.ReplyTo = u.ReplyTo.Value
	}
	if u.Reaction.Set {
		msg.Reaction = u.Reaction.Value
	}
	return msg
}

// ReplyTarget is the pending "replying to" pointer of the composer.
type ReplyTarget struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// SessionRating is a submitted post-session star rating.
type SessionRating struct {
	ID          string `json:"id"`
	Session     string `json:"session"`
	Stars       int    `json:"stars"`
	SubmittedAt int64  `json:"submitted_at"`
}
