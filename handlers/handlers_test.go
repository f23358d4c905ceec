package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/6ixminds/labs_backend/auth"
	config "github.com/6ixminds/labs_backend/configs"
	"github.com/6ixminds/labs_backend/models"
	"github.com/6ixminds/labs_backend/repository"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSecret = "handler-test-secret"

type memCertificates struct {
	mu      sync.Mutex
	records map[string]models.Certificate
	failAll error
}

func newMemCertificates() *memCertificates {
	return &memCertificates{records: map[string]models.Certificate{}}
}

func (m *memCertificates) CountByPrefix(ctx context.Context, prefix string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id := range m.records {
		if strings.HasPrefix(id, prefix) {
			n++
		}
	}
	return n, nil
}

func (m *memCertificates) Exists(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.records[id]
	return ok, nil
}

func (m *memCertificates) FindByCertificateID(ctx context.Context, id string) (*models.Certificate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll != nil {
		return nil, m.failAll
	}
	c, ok := m.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (m *memCertificates) List(ctx context.Context) ([]models.Certificate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAll != nil {
		return nil, m.failAll
	}
	var out []models.Certificate
	for _, c := range m.records {
		out = append(out, c)
	}
	return out, nil
}

func (m *memCertificates) Create(ctx context.Context, c *models.Certificate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	m.records[c.CertificateID] = *c
	return nil
}

func (m *memCertificates) Save(ctx context.Context, c *models.Certificate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[c.CertificateID] = *c
	return nil
}

func (m *memCertificates) DeleteByCertificateID(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

type memStore struct {
	mu      sync.Mutex
	puts    int
	deletes []string
}

func (s *memStore) Put(ctx context.Context, container, path string, body []byte, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts++
	return fmt.Sprintf("https://cdn.test/%s/%s", container, path), nil
}

func (s *memStore) Delete(ctx context.Context, container, path, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes = append(s.deletes, container+"/"+path)
	return nil
}

func (s *memStore) deleted() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.deletes...)
}

func testConfig() config.Config {
	return config.Config{
		CertOrgCode:   "6ML",
		PublicSiteURL: "https://6ixminds.com",
		Storage: config.StorageConfig{
			PhotoContainer:    "profile-photos",
			DocumentContainer: "certificates",
			MediaContainer:    "media",
		},
	}
}

func testTokens() *auth.TokenIssuer {
	return auth.NewTokenIssuer(testSecret, time.Hour)
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	tok, _, err := testTokens().Issue(models.Admin{ID: uuid.New(), Email: role + "@6ixminds.com", Role: role})
	require.NoError(t, err)
	return tok
}

type filePart struct {
	field, name, contentType string
	size                     int
}

func multipartBody(t *testing.T, fields map[string][]string, files ...filePart) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, values := range fields {
		for _, v := range values {
			require.NoError(t, w.WriteField(name, v))
		}
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.name))
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(bytes.Repeat([]byte("x"), f.size))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	}
	return resp.StatusCode, body
}

func jsonRequest(t *testing.T, method, url string, v any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	req := httptest.NewRequest(method, url, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}
