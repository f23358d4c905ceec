package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/6ixminds/labs_backend/dto"
	"github.com/6ixminds/labs_backend/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and notifies", func(t *testing.T) {
		repo := newFakeMessages()
		hub := &fakeHub{}
		mailer := newFakeMailer()
		pub := &fakePublisher{}
		svc := NewMessageService(repo, hub, mailer, pub, "team@6ixminds.com")

		msg, err := svc.Submit(ctx, dto.MessageRequest{
			Name:    "Ravi",
			Email:   "ravi@example.com",
			Subject: "Internship",
			Message: "Is the <backend> role open?",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, msg.ID)
		assert.Len(t, repo.items, 1)
		assert.Equal(t, []string{events.MessageReceived}, hub.types)
		assert.Equal(t, []string{events.MessageReceived}, pub.types())

		select {
		case mail := <-mailer.sent:
			assert.Equal(t, "team@6ixminds.com", mail.To)
			assert.Equal(t, "New message: Internship", mail.Subject)
			assert.Contains(t, mail.Body, "&lt;backend&gt;")
		case <-time.After(time.Second):
			t.Fatal("notification email was not sent")
		}
	})

	t.Run("invalid email is rejected before storing", func(t *testing.T) {
		repo := newFakeMessages()
		svc := NewMessageService(repo, &fakeHub{}, newFakeMailer(), nil, "")

		_, err := svc.Submit(ctx, dto.MessageRequest{Name: "Ravi", Email: "nope", Message: "hi"})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "email", verr.Field)
		assert.Equal(t, "email must be a valid email address", verr.Message)
		assert.Empty(t, repo.items)
	})

	t.Run("missing body", func(t *testing.T) {
		svc := NewMessageService(newFakeMessages(), nil, nil, nil, "")

		_, err := svc.Submit(ctx, dto.MessageRequest{Name: "Ravi", Email: "ravi@example.com"})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "message", verr.Field)
	})
}

func TestMessageService_Inbox(t *testing.T) {
	ctx := context.Background()
	repo := newFakeMessages()
	svc := NewMessageService(repo, nil, nil, nil, "")

	msg, err := svc.Submit(ctx, dto.MessageRequest{Name: "A", Email: "a@example.com", Message: "hello"})
	require.NoError(t, err)

	n, err := svc.CountUnread(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, svc.MarkRead(ctx, msg.ID))
	n, err = svc.CountUnread(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "created_at desc", repo.order)

	require.NoError(t, svc.Delete(ctx, msg.ID))
	assert.ErrorIs(t, svc.Delete(ctx, msg.ID), ErrNotFound)
	assert.ErrorIs(t, svc.MarkRead(ctx, uuid.New()), ErrNotFound)

	repo.unreadErr = errors.New("db down")
	_, err = svc.CountUnread(ctx)
	assert.Error(t, err)
}
