package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/6ixminds/labs_backend/models"
	"github.com/6ixminds/labs_backend/repository"
	"github.com/google/uuid"
)

type fakeCertificates struct {
	mu        sync.Mutex
	records   map[string]models.Certificate
	countErr  error
	existsErr error
	existsAll bool
	createErr error
	saveErr   error
	listErr   error
}

func newFakeCertificates() *fakeCertificates {
	return &fakeCertificates{records: map[string]models.Certificate{}}
}

func (f *fakeCertificates) CountByPrefix(ctx context.Context, prefix string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countErr != nil {
		return 0, f.countErr
	}
	var n int64
	for id := range f.records {
		if strings.HasPrefix(id, prefix) {
			n++
		}
	}
	return n, nil
}

func (f *fakeCertificates) Exists(ctx context.Context, certificateID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.records[certificateID]
	return ok || f.existsAll, nil
}

func (f *fakeCertificates) FindByCertificateID(ctx context.Context, certificateID string) (*models.Certificate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.records[certificateID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (f *fakeCertificates) List(ctx context.Context) ([]models.Certificate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Certificate, 0, len(f.records))
	for _, c := range f.records {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCertificates) Create(ctx context.Context, cert *models.Certificate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.records[cert.CertificateID]; ok {
		return repository.ErrDuplicate
	}
	f.records[cert.CertificateID] = *cert
	return nil
}

func (f *fakeCertificates) Save(ctx context.Context, cert *models.Certificate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.records[cert.CertificateID] = *cert
	return nil
}

func (f *fakeCertificates) DeleteByCertificateID(ctx context.Context, certificateID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[certificateID]; !ok {
		return repository.ErrNotFound
	}
	delete(f.records, certificateID)
	return nil
}

type putCall struct {
	Container   string
	Path        string
	ContentType string
}

type fakeStore struct {
	mu           sync.Mutex
	puts         []putCall
	deletes      []string
	deletedTypes []string
	failOn       string
}

func (s *fakeStore) Put(ctx context.Context, container, path string, body []byte, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failOn != "" && s.failOn == container {
		return "", errors.New("bucket unavailable")
	}
	s.puts = append(s.puts, putCall{Container: container, Path: path, ContentType: contentType})
	return fmt.Sprintf("https://cdn.test/%s/%s", container, path), nil
}

func (s *fakeStore) Delete(ctx context.Context, container, path, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes = append(s.deletes, container+"/"+path)
	s.deletedTypes = append(s.deletedTypes, contentType)
	return nil
}

type publishedEvent struct {
	Type string
	Key  string
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (p *fakePublisher) Publish(ctx context.Context, eventType, key string, data any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Type: eventType, Key: key})
	return p.err
}

func (p *fakePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

var errDuplicateForTest = fmt.Errorf("insert: %w", repository.ErrDuplicate)

type fakeCrud[T any] struct {
	mu      sync.Mutex
	items   map[uuid.UUID]*T
	idOf    func(*T) *uuid.UUID
	listErr error
	order   string
}

func newFakeCrud[T any](idOf func(*T) *uuid.UUID) *fakeCrud[T] {
	return &fakeCrud[T]{items: map[uuid.UUID]*T{}, idOf: idOf}
}

func (f *fakeCrud[T]) List(ctx context.Context, order string) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.order = order
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]T, 0, len(f.items))
	for _, v := range f.items {
		out = append(out, *v)
	}
	return out, nil
}

func (f *fakeCrud[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (f *fakeCrud[T]) Create(ctx context.Context, item *T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.idOf(item)
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	cp := *item
	f.items[*id] = &cp
	return nil
}

func (f *fakeCrud[T]) Save(ctx context.Context, item *T) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *item
	f.items[*f.idOf(item)] = &cp
	return nil
}

func (f *fakeCrud[T]) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeMessages struct {
	*fakeCrud[models.Message]
	unreadErr error
}

func newFakeMessages() *fakeMessages {
	return &fakeMessages{fakeCrud: newFakeCrud(func(m *models.Message) *uuid.UUID { return &m.ID })}
}

func (f *fakeMessages) MarkRead(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	m.IsRead = true
	return nil
}

func (f *fakeMessages) CountUnread(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.unreadErr != nil {
		return 0, f.unreadErr
	}
	var n int64
	for _, m := range f.items {
		if !m.IsRead {
			n++
		}
	}
	return n, nil
}

type fakeHub struct {
	mu    sync.Mutex
	types []string
}

func (h *fakeHub) Broadcast(eventType string, data any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.types = append(h.types, eventType)
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	sent chan sentMail
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan sentMail, 4)}
}

func (m *fakeMailer) Send(ctx context.Context, toName, toEmail, subject, html string) error {
	m.sent <- sentMail{To: toEmail, Subject: subject, Body: html}
	return nil
}

type fakeAdmins struct {
	byEmail map[string]models.Admin
	created []models.Admin
}

func (f *fakeAdmins) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	a, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (f *fakeAdmins) List(ctx context.Context) ([]models.Admin, error) {
	return f.created, nil
}

func (f *fakeAdmins) Create(ctx context.Context, admin *models.Admin) error {
	if _, ok := f.byEmail[admin.Email]; ok {
		return repository.ErrDuplicate
	}
	admin.ID = uuid.New()
	f.created = append(f.created, *admin)
	return nil
}

func (f *fakeAdmins) CountByEmail(ctx context.Context, email string) (int64, error) {
	if _, ok := f.byEmail[email]; ok {
		return 1, nil
	}
	return 0, nil
}
