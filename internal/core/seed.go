package core

import "github.com/astrochat/astrochat/internal/types"

// DefaultTitle and DefaultSubtitle label the built-in session header.
const (
	DefaultTitle    = "Astrologer Vikram"
	DefaultSubtitle = "Active now"
)

// SeedMessages returns the simulated conversation history a session starts with.
func SeedMessages() []types.Message {
	return []types.Message{
		{
			ID:     "1",
			Sender: types.SenderSystem,
			Text:   "Your session with Astrologer Vikram has started.",
			TS:     1734681480000,
			Kind:   types.MessageKindEvent,
		},
		{
			ID:     "2",
			Sender: types.SenderUser,
			Text:   "Namaste. I am feeling very anxious about my current job. Can you look at my chart?",
			TS:     1734681600000,
			Kind:   types.MessageKindText,
		},
		{
			ID:       "3",
			Sender:   types.SenderAIAstrologer,
			Text:     "Namaste! I am analyzing your birth details. Currently, you are running through Shani Mahadasha. This often brings pressure but builds resilience.",
			TS:       1734681660000,
			Kind:     types.MessageKindAI,
			Feedback: types.FeedbackLiked,
		},
		{
			ID:     "4",
			Sender: types.SenderHumanAstrologer,
			Text:   "I see the same. Look at your 6th house; Saturn is transiting there. This is why you feel the workload is heavy.",
			TS:     1734681720000,
			Kind:   types.MessageKindHuman,
		},
		{
			ID:      "5",
			Sender:  types.SenderUser,
			Text:    "Is there any remedy for this? I find it hard to focus.",
			TS:      1734681780000,
			Kind:    types.MessageKindText,
			ReplyTo: "4",
		},
		{
			ID:     "6",
			Sender: types.SenderAIAstrologer,
			Text:   "I suggest chanting the Shani Mantra 108 times on Saturdays. Would you like the specific mantra text?",
			TS:     1734681840000,
			Kind:   types.MessageKindAI,
		},
	}
}
