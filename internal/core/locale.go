package core

import (
	"github.com/astrochat/astrochat/internal/types"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys for translated UI strings.
const (
	KeySenderUser            = "sender.user"
	KeySenderAIAstrologer    = "sender.aiAstrologer"
	KeySenderHumanAstrologer = "sender.astrologer"
	KeySenderSystem          = "sender.system"
	KeyReplyingTo            = "chat.replyingTo"
	KeyRateSession           = "rating.title"
	KeyThankYou              = "rating.thankYou"
	KeyThankYouDetail        = "rating.thankYouDetail"
	KeySubmit                = "rating.submit"
	KeyClose                 = "rating.close"
	KeyInputPlaceholder      = "chat.placeholder"
)

var translations = map[language.Tag]map[string]string{
	language.English: {
		KeySenderUser:                 "You",
		KeySenderAIAstrologer:         "AI Astrologer",
		KeySenderHumanAstrologer:      "Astrologer",
		KeySenderSystem:               "System",
		KeyReplyingTo:                 "Replying to",
		KeyRateSession:                "Rate your session",
		KeyThankYou:                   "Thank you",
		KeyThankYouDetail:             "Your feedback has been captured, and we appreciate you sharing it with us",
		KeySubmit:                     "Submit",
		KeyClose:                      "Close",
		KeyInputPlaceholder:           "Type a message...",
		"feedback.reasons.inaccurate": "Inaccurate",
		"feedback.reasons.tooVague":   "Too Vague",
		"feedback.reasons.tooLong":    "Too Long",
	},
	language.Hindi: {
		KeySenderUser:                 "आप",
		KeySenderAIAstrologer:         "एआई ज्योतिषी",
		KeySenderHumanAstrologer:      "ज्योतिषी",
		KeySenderSystem:               "सिस्टम",
		KeyReplyingTo:                 "जवाब दे रहे हैं",
		KeyRateSession:                "अपने सत्र को रेट करें",
		KeyThankYou:                   "धन्यवाद",
		KeySubmit:                     "सबमिट करें",
		KeyClose:                      "बंद करें",
		KeyInputPlaceholder:           "संदेश लिखें...",
		"feedback.reasons.inaccurate": "गलत",
		"feedback.reasons.tooVague":   "बहुत अस्पष्ट",
		"feedback.reasons.tooLong":    "बहुत लंबा",
	},
}

// supportedLanguages lists English first so unknown input falls back to it.
var supportedLanguages = []language.Tag{language.English, language.Hindi}

var englishFallback = translations[language.English]

var sharedCatalog = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range translations {
		for key, msg := range entries {
			// SetString only fails on malformed tags; ours are constants.
			_ = b.SetString(tag, key, msg)
		}
	}
	return b
}

// Localizer translates UI strings for one language.
type Localizer struct {
	printer *message.Printer
}

// NewLocalizer picks the closest supported language to lang ("en", "hi-IN", ...).
func NewLocalizer(lang string) *Localizer {
	matcher := language.NewMatcher(supportedLanguages)
	tag, _ := language.MatchStrings(matcher, lang)
	base, _ := tag.Base()
	tag = language.Make(base.String())
	return &Localizer{
		printer: message.NewPrinter(tag, message.Catalog(sharedCatalog)),
	}
}

// Text translates key, falling back to English and then to the key itself.
func (l *Localizer) Text(key string) string {
	fallback, ok := englishFallback[key]
	if !ok {
		fallback = key
	}
	if l == nil {
		return fallback
	}
	return l.printer.Sprintf(message.Key(key, fallback))
}

// TextOr translates key, using fallback when the key is unknown.
func (l *Localizer) TextOr(key, fallback string) string {
	if _, ok := englishFallback[key]; !ok {
		return fallback
	}
	return l.Text(key)
}

// SenderLabel maps every sender to a label; unknown senders read as System.
func (l *Localizer) SenderLabel(sender types.Sender) string {
	switch sender {
	case types.SenderUser:
		return l.Text(KeySenderUser)
	case types.SenderAIAstrologer:
		return l.Text(KeySenderAIAstrologer)
	case types.SenderHumanAstrologer:
		return l.Text(KeySenderHumanAstrologer)
	default:
		return l.Text(KeySenderSystem)
	}
}

// ReasonLabel translates a reason chip, falling back to its table label.
func (l *Localizer) ReasonLabel(reason FeedbackReasonConfig) string {
	return l.TextOr(reason.I18nKey, reason.Label)
}
