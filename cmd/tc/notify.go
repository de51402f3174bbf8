package main

import (
	"fmt"

	"github.com/slack-go/slack"
)

// notifySlack announces a successful punch. It is a no-op unless both the
// Slack token and channel are configured.
func notifySlack(cfg *Config, message string) error {
	if cfg.SlackToken == "" || cfg.SlackChannel == "" {
		return nil
	}

	client := slack.New(cfg.SlackToken)
	_, _, err := client.PostMessage(
		cfg.SlackChannel,
		slack.MsgOptionText(message, false),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}
