package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/resend/resend-go/v3"
	"github.com/rs/zerolog"
)

// Notifier delivers product emails. Failures are the caller's to log, not
// to surface; no user flow should break because an email bounced.
type Notifier interface {
	SendSummary(ctx context.Context, toEmail, userName, summary string) error
	NotifyAdmin(ctx context.Context, userEmail, userName, summary string) error
	SendDigest(ctx context.Context, signups, summaries, upgrades int) error
}

// EmailNotifier sends via Resend.
type EmailNotifier struct {
	client     *resend.Client
	from       string
	adminEmail string
	logger     zerolog.Logger
}

// NewEmailNotifier creates a Resend-backed notifier. An empty API key
// returns a nil notifier; callers treat nil as email disabled.
func NewEmailNotifier(apiKey, from, adminEmail string, logger zerolog.Logger) *EmailNotifier {
	if apiKey == "" {
		return nil
	}
	return &EmailNotifier{
		client:     resend.NewClient(apiKey),
		from:       from,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// SendSummary mails the user a copy of their coaching summary.
func (n *EmailNotifier) SendSummary(ctx context.Context, toEmail, userName, summary string) error {
	subject := "Your Money Engine growth summary"
	body := fmt.Sprintf("<p>Hey %s,</p><p>Here is the summary from your coaching session:</p>%s",
		html.EscapeString(userName), summaryHTML(summary))
	return n.send(toEmail, subject, body)
}

// NotifyAdmin mails the admin inbox whenever a user completes a session.
func (n *EmailNotifier) NotifyAdmin(ctx context.Context, userEmail, userName, summary string) error {
	subject := fmt.Sprintf("New coaching summary: %s", userEmail)
	body := fmt.Sprintf("<p>%s (%s) just finished a coaching session.</p>%s",
		html.EscapeString(userName), html.EscapeString(userEmail), summaryHTML(summary))
	return n.send(n.adminEmail, subject, body)
}

// SendDigest mails the admin the last-24h activity counts.
func (n *EmailNotifier) SendDigest(ctx context.Context, signups, summaries, upgrades int) error {
	subject := "Money Engine daily digest"
	body := fmt.Sprintf(
		"<p>Activity in the last 24 hours:</p><ul><li>New signups: %d</li><li>Summaries generated: %d</li><li>Tier upgrades: %d</li></ul>",
		signups, summaries, upgrades)
	return n.send(n.adminEmail, subject, body)
}

func (n *EmailNotifier) send(to, subject, body string) error {
	sent, err := n.client.Emails.Send(&resend.SendEmailRequest{
		From:    n.from,
		To:      []string{to},
		Subject: subject,
		Html:    body,
	})
	if err != nil {
		n.logger.Error().Err(err).Str("to", to).Str("subject", subject).Msg("email send failed")
		return err
	}
	n.logger.Info().Str("to", to).Str("email_id", sent.Id).Msg("email sent")
	return nil
}

func summaryHTML(summary string) string {
	var b strings.Builder
	b.WriteString("<div>")
	for _, para := range strings.Split(summary, "\n\n") {
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(html.EscapeString(para), "\n", "<br>"))
		b.WriteString("</p>")
	}
	b.WriteString("</div>")
	return b.String()
}

var _ Notifier = (*EmailNotifier)(nil)
