package services

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/6ixminds/labs_backend/dto"
	"github.com/6ixminds/labs_backend/events"
	"github.com/6ixminds/labs_backend/models"
	"github.com/6ixminds/labs_backend/notifications"
	"github.com/6ixminds/labs_backend/repository"
	"github.com/google/uuid"
)

// Broadcaster pushes a notification to the connected admin dashboards.
type Broadcaster interface {
	Broadcast(eventType string, data any)
}

type MessageService struct {
	repo        repository.MessageRepository
	hub         Broadcaster
	mailer      notifications.Mailer
	events      EventPublisher
	notifyEmail string
}

func NewMessageService(
	repo repository.MessageRepository,
	hub Broadcaster,
	mailer notifications.Mailer,
	publisher EventPublisher,
	notifyEmail string,
) *MessageService {
	return &MessageService{
		repo:        repo,
		hub:         hub,
		mailer:      mailer,
		events:      publisher,
		notifyEmail: notifyEmail,
	}
}

// Submit stores a contact-form message and notifies the admins.
func (s *MessageService) Submit(ctx context.Context, req dto.MessageRequest) (*models.Message, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	msg := req.ToModel()
	if err := s.repo.Create(ctx, &msg); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	slog.Info("contact message received", "id", msg.ID, "email", msg.Email)

	resp := dto.FromMessage(msg)
	if s.hub != nil {
		s.hub.Broadcast(events.MessageReceived, resp)
	}
	if s.mailer != nil && s.notifyEmail != "" {
		notifications.SendAsync(s.mailer, "", s.notifyEmail, newMessageSubject(msg), newMessageBody(msg))
	}
	if s.events != nil {
		if err := s.events.Publish(ctx, events.MessageReceived, msg.ID.String(), resp); err != nil {
			slog.Warn("failed to publish event", "type", events.MessageReceived, "error", err)
		}
	}
	return &msg, nil
}

func (s *MessageService) List(ctx context.Context) ([]models.Message, error) {
	msgs, err := s.repo.List(ctx, "created_at desc")
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

func (s *MessageService) MarkRead(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.MarkRead(ctx, id); err != nil {
		return mapRepoError(fmt.Sprintf("mark message %s read", id), err)
	}
	return nil
}

func (s *MessageService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoError(fmt.Sprintf("delete message %s", id), err)
	}
	return nil
}

func (s *MessageService) CountUnread(ctx context.Context) (int64, error) {
	n, err := s.repo.CountUnread(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unread messages: %w", err)
	}
	return n, nil
}

func newMessageSubject(m models.Message) string {
	if m.Subject != "" {
		return "New message: " + m.Subject
	}
	return "New message from " + m.Name
}

func newMessageBody(m models.Message) string {
	return fmt.Sprintf(
		"<h3>New contact message</h3><p><strong>%s</strong> &lt;%s&gt; %s</p><p>%s</p>",
		html.EscapeString(m.Name),
		html.EscapeString(m.Email),
		html.EscapeString(m.Phone),
		html.EscapeString(m.Body),
	)
}
