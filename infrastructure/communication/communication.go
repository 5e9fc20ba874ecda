package communication

import (
	"fmt"

	"github.com/slack-go/slack"

	"hrmslite.com/hrms/config"
)

// Notifier posts operational messages for people watching the backend.
type Notifier interface {
	Info(message string) error
	Error(message string) error
}

type Slack struct {
	client  *slack.Client
	options SlackOption
}

type SlackOption struct {
	InfoChannelID  string
	ErrorChannelID string
	APIURL         string
}

// ConnectSlack returns a Slack notifier for cfg, or a no-op notifier when no
// bot token is configured.
func ConnectSlack(cfg config.Slack) Notifier {
	if cfg.Token == "" {
		return Discard{}
	}
	return NewSlack(cfg.Token, SlackOption{InfoChannelID: cfg.InfoChannelID, ErrorChannelID: cfg.ErrorChannelID})
}

func NewSlack(token string, options SlackOption) *Slack {
	var opts []slack.Option
	if options.APIURL != "" {
		opts = append(opts, slack.OptionAPIURL(options.APIURL))
	}
	client := slack.New(token, opts...)
	return &Slack{client: client, options: options}
}

func (s *Slack) postMessage(channelID, message string) error {
	if channelID == "" {
		return nil
	}
	_, _, err := s.client.PostMessage(
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

func (s *Slack) Info(message string) error {
	return s.postMessage(s.options.InfoChannelID, message)
}

func (s *Slack) Error(message string) error {
	return s.postMessage(s.options.ErrorChannelID, message)
}

// Discard drops every message.
type Discard struct{}

func (Discard) Info(string) error  { return nil }
func (Discard) Error(string) error { return nil }
