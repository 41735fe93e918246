package config

import (
	"github.com/m-mizutani/ffget/pkg/domain/interfaces"
	"github.com/m-mizutani/ffget/pkg/infra/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds run notification configuration
type Slack struct {
	WebhookURL string
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL to post the run summary to",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("FFGET_SLACK_WEBHOOK_URL"),
		},
	}
}

// Notifier returns the configured notifier, or nil when disabled
func (c *Slack) Notifier() interfaces.Notifier {
	if c.WebhookURL == "" {
		return nil
	}
	return slack.NewNotifier(c.WebhookURL)
}
