package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/6ixminds/labs_backend/notifications"
	"github.com/robfig/cron/v3"
)

type UnreadCounter interface {
	CountUnread(ctx context.Context) (int64, error)
}

// UnreadMessagesDigest emails the admin inbox a reminder while contact
// messages are waiting to be read.
type UnreadMessagesDigest struct {
	messages UnreadCounter
	mailer   notifications.Mailer
	to       string
	siteURL  string
}

func NewUnreadMessagesDigest(messages UnreadCounter, mailer notifications.Mailer, to, siteURL string) *UnreadMessagesDigest {
	return &UnreadMessagesDigest{messages: messages, mailer: mailer, to: to, siteURL: siteURL}
}

func (d *UnreadMessagesDigest) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := d.run(ctx); err != nil {
		slog.Error("unread messages digest failed", "error", err)
	}
}

func (d *UnreadMessagesDigest) run(ctx context.Context) error {
	slog.Info("running job: unread messages digest")

	if d.to == "" {
		slog.Debug("no admin notify email configured, skipping digest")
		return nil
	}

	unread, err := d.messages.CountUnread(ctx)
	if err != nil {
		return fmt.Errorf("count unread messages: %w", err)
	}
	if unread == 0 {
		return nil
	}

	subject := fmt.Sprintf("%d unread contact message(s)", unread)
	body := fmt.Sprintf(
		"<h1>Inbox reminder</h1><p>There are <b>%d</b> unread messages from the website contact form.</p><p><a href='%s/admin/messages'>Open the inbox</a></p>",
		unread, d.siteURL,
	)
	if err := d.mailer.Send(ctx, "", d.to, subject, body); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}

	slog.Info("unread messages digest sent", "unread", unread)
	return nil
}

// Schedule registers the digest on c using a standard five-field cron spec.
func Schedule(c *cron.Cron, spec string, job cron.Job) error {
	if _, err := c.AddJob(spec, job); err != nil {
		return fmt.Errorf("schedule job %q: %w", spec, err)
	}
	return nil
}
