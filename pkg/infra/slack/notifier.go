package slack

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/m-mizutani/ffget/pkg/domain/interfaces"
	"github.com/m-mizutani/ffget/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

type notifier struct {
	webhookURL string
}

// NewNotifier creates a Notifier posting run summaries to a Slack incoming webhook
func NewNotifier(webhookURL string) interfaces.Notifier {
	return &notifier{
		webhookURL: webhookURL,
	}
}

// NotifyRun posts summary as a single message
func (n *notifier) NotifyRun(ctx context.Context, summary *model.RunSummary) error {
	msg := &slack.WebhookMessage{
		Text: FormatSummary(summary),
	}
	if err := slack.PostWebhookContext(ctx, n.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post run summary to Slack", goerr.V("run_id", summary.RunID))
	}
	return nil
}

// FormatSummary renders summary as Slack mrkdwn
func FormatSummary(summary *model.RunSummary) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("*ffget run finished* (`%s`)\n", summary.RunID))
	sb.WriteString(fmt.Sprintf("• server: %s, type: %s\n", summary.Server, summary.ContentType))

	if len(summary.Datasets) > 0 {
		names := make([]string, len(summary.Datasets))
		for i, ds := range summary.Datasets {
			names[i] = string(ds)
		}
		sb.WriteString(fmt.Sprintf("• datasets: %s\n", strings.Join(names, ", ")))
	}

	sb.WriteString(fmt.Sprintf("• downloaded: %d (%s), skipped: %d",
		summary.Downloaded, humanize.Bytes(uint64(summary.Bytes)), summary.Skipped))
	if summary.Planned > 0 {
		sb.WriteString(fmt.Sprintf(", planned: %d", summary.Planned))
	}
	sb.WriteString("\n")

	if len(summary.Aborted) > 0 {
		sb.WriteString(fmt.Sprintf("• aborted (models only available for Deepfakes): %d datasets\n", len(summary.Aborted)))
	}
	sb.WriteString(fmt.Sprintf("• duration: %s\n", summary.Duration.Round(time.Millisecond)))

	return sb.String()
}
