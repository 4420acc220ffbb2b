package config

import (
	"os"

	"github.com/astrochat/astrochat/internal/core"
	"github.com/astrochat/astrochat/internal/types"
	"github.com/cockroachdb/errors"
	"github.com/goccy/go-yaml"
)

// Session describes the conversation a chat starts with.
type Session struct {
	Title    string          `yaml:"title"`
	Subtitle string          `yaml:"subtitle"`
	Messages []types.Message `yaml:"messages"`
}

// DefaultSession is the built-in consultation with its seeded history.
func DefaultSession() Session {
	return Session{
		Title:    core.DefaultTitle,
		Subtitle: core.DefaultSubtitle,
		Messages: core.SeedMessages(),
	}
}

// LoadSession reads a YAML session file. Missing header fields fall back to
// the defaults; an empty message list starts an empty chat.
func LoadSession(path string) (Session, error) {
	if path == "" {
		return DefaultSession(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Session{}, errors.Wrapf(err, "read session file %s", path)
	}
	var session Session
	if err := yaml.Unmarshal(data, &session); err != nil {
		return Session{}, errors.Wrapf(err, "parse session file %s", path)
	}
	if session.Title == "" {
		session.Title = core.DefaultTitle
	}
	if session.Subtitle == "" {
		session.Subtitle = core.DefaultSubtitle
	}
	if err := validateMessages(session.Messages); err != nil {
		return Session{}, errors.Wrapf(err, "session file %s", path)
	}
	return session, nil
}

func validateMessages(msgs []types.Message) error {
	seen := make(map[string]struct{}, len(msgs))
	for i, msg := range msgs {
		if msg.ID == "" {
			return errors.Newf("message %d has no id", i)
		}
		if _, dup := seen[msg.ID]; dup {
			return errors.Newf("duplicate message id %q", msg.ID)
		}
		seen[msg.ID] = struct{}{}
		if msg.Sender == "" {
			return errors.Newf("message %q has no sender", msg.ID)
		}
	}
	return nil
}
