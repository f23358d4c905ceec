package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	config "github.com/6ixminds/labs_backend/configs"
	"github.com/6ixminds/labs_backend/events"
	"github.com/6ixminds/labs_backend/models"
	"github.com/6ixminds/labs_backend/repository"
	"github.com/6ixminds/labs_backend/storage"
	"github.com/6ixminds/labs_backend/utils"
)

// maxIDAttempts bounds how far past count+1 issuance probes for a free identifier.
const maxIDAttempts = 5

type EventPublisher interface {
	Publish(ctx context.Context, eventType, key string, data any) error
}

// Artifact is an uploaded binary file (photo or document).
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (a *Artifact) extension() string {
	ext := strings.TrimPrefix(filepath.Ext(a.Filename), ".")
	if ext == "" {
		return "bin"
	}
	return ext
}

// artifactPath names an artifact after its certificate: "{id}-{kind}.{ext}".
func artifactPath(certificateID, kind string, a *Artifact) string {
	return fmt.Sprintf("%s-%s.%s", certificateID, kind, a.extension())
}

type CertificateInput struct {
	Form     models.CertificateForm
	Photo    *Artifact
	Document *Artifact
}

type IssuedCertificate struct {
	Certificate     models.Certificate
	VerificationURL string
}

type CertificateService struct {
	repo              repository.CertificateRepository
	store             storage.ObjectStore
	events            EventPublisher
	ids               *CertificateIDGenerator
	photoContainer    string
	documentContainer string
	publicSiteURL     string
}

func NewCertificateService(
	repo repository.CertificateRepository,
	store storage.ObjectStore,
	publisher EventPublisher,
	cfg config.Config,
) *CertificateService {
	return &CertificateService{
		repo:              repo,
		store:             store,
		events:            publisher,
		ids:               NewCertificateIDGenerator(repo, cfg.CertOrgCode),
		photoContainer:    cfg.Storage.PhotoContainer,
		documentContainer: cfg.Storage.DocumentContainer,
		publicSiteURL:     cfg.PublicSiteURL,
	}
}

func (s *CertificateService) VerificationURL(certificateID string) string {
	return fmt.Sprintf("%s/verify/%s", s.publicSiteURL, certificateID)
}

func (s *CertificateService) List(ctx context.Context) ([]models.Certificate, error) {
	certs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	return certs, nil
}

// Verify looks up a certificate by its exact identifier.
func (s *CertificateService) Verify(ctx context.Context, certificateID string) (*models.Certificate, error) {
	cert, err := s.repo.FindByCertificateID(ctx, certificateID)
	if err != nil {
		return nil, s.lookupError(certificateID, err)
	}
	return cert, nil
}

// Issue validates the input, assigns an identifier, uploads both artifacts
// and persists the record. Nothing is uploaded before validation passes.
func (s *CertificateService) Issue(ctx context.Context, in CertificateInput) (*IssuedCertificate, error) {
	if err := Validate(in.Form); err != nil {
		return nil, err
	}
	if in.Photo == nil {
		return nil, newValidationError("profilePhoto", "profilePhoto is required")
	}
	if in.Document == nil {
		return nil, newValidationError("certificateFile", "certificateFile is required")
	}

	certificateID, err := s.nextCertificateID(ctx)
	if err != nil {
		return nil, err
	}

	photoPath := artifactPath(certificateID, "profile", in.Photo)
	photoURL, err := s.store.Put(ctx, s.photoContainer, photoPath, in.Photo.Data, in.Photo.ContentType)
	if err != nil {
		return nil, fmt.Errorf("upload profile photo: %w", err)
	}

	docPath := artifactPath(certificateID, "cert", in.Document)
	docURL, err := s.store.Put(ctx, s.documentContainer, docPath, in.Document.Data, in.Document.ContentType)
	if err != nil {
		s.discard(ctx, s.photoContainer, photoPath, in.Photo.ContentType)
		return nil, fmt.Errorf("upload certificate file: %w", err)
	}

	cert := in.Form.ToCertificate(utils.NormalizeSkills(in.Form.Skills))
	cert.CertificateID = certificateID
	cert.ProfilePhotoURL = photoURL
	cert.CertificateFileURL = docURL

	if err := s.repo.Create(ctx, &cert); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// the artifact paths belong to whichever request inserted first
			return nil, fmt.Errorf("certificate id %s was taken concurrently, retry: %w", certificateID, ErrConflict)
		}
		s.discard(ctx, s.photoContainer, photoPath, in.Photo.ContentType)
		s.discard(ctx, s.documentContainer, docPath, in.Document.ContentType)
		return nil, fmt.Errorf("create certificate: %w", err)
	}

	slog.Info("certificate issued", "certificate_id", cert.CertificateID)
	s.publish(ctx, events.CertificateIssued, cert.CertificateID, cert)

	return &IssuedCertificate{
		Certificate:     cert,
		VerificationURL: s.VerificationURL(cert.CertificateID),
	}, nil
}

// Update applies a partial update. Every field is optional and falls back to
// the stored value; new artifacts overwrite the old ones under the same naming
// scheme.
func (s *CertificateService) Update(ctx context.Context, certificateID string, in CertificateInput) (*models.Certificate, error) {
	existing, err := s.repo.FindByCertificateID(ctx, certificateID)
	if err != nil {
		return nil, s.lookupError(certificateID, err)
	}

	merged := in.Form.MergeInto(*existing, utils.NormalizeSkills(in.Form.Skills))
	if merged.InternshipDuration == models.DurationCustom {
		if merged.StartDate == "" {
			return nil, newValidationError("startDate", "startDate is required when internshipDuration is Custom")
		}
		if merged.EndDate == "" {
			return nil, newValidationError("endDate", "endDate is required when internshipDuration is Custom")
		}
	}

	if in.Photo != nil {
		url, err := s.store.Put(ctx, s.photoContainer, artifactPath(certificateID, "profile", in.Photo), in.Photo.Data, in.Photo.ContentType)
		if err != nil {
			return nil, fmt.Errorf("upload profile photo: %w", err)
		}
		merged.ProfilePhotoURL = url
	}
	if in.Document != nil {
		url, err := s.store.Put(ctx, s.documentContainer, artifactPath(certificateID, "cert", in.Document), in.Document.Data, in.Document.ContentType)
		if err != nil {
			return nil, fmt.Errorf("upload certificate file: %w", err)
		}
		merged.CertificateFileURL = url
	}

	if err := s.repo.Save(ctx, &merged); err != nil {
		return nil, fmt.Errorf("update certificate: %w", err)
	}

	s.publish(ctx, events.CertificateUpdated, merged.CertificateID, merged)
	return &merged, nil
}

// Revoke hard-deletes the certificate record. Its artifacts are left in place.
func (s *CertificateService) Revoke(ctx context.Context, certificateID string) error {
	if err := s.repo.DeleteByCertificateID(ctx, certificateID); err != nil {
		return s.lookupError(certificateID, err)
	}

	slog.Info("certificate revoked", "certificate_id", certificateID)
	s.publish(ctx, events.CertificateRevoked, certificateID, map[string]string{"certificate_id": certificateID})
	return nil
}

// nextCertificateID asks the generator for a candidate and skips identifiers
// that already exist (e.g. after a revocation left the count short). A failing
// existence probe does not block issuance; the unique index still guards the insert.
func (s *CertificateService) nextCertificateID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		candidate := s.ids.Next(ctx, attempt)

		exists, err := s.repo.Exists(ctx, candidate)
		if err != nil {
			slog.Warn("certificate id probe failed, using candidate", "certificate_id", candidate, "error", err)
			return candidate, nil
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free certificate id after %d attempts: %w", maxIDAttempts, ErrConflict)
}

func (s *CertificateService) lookupError(certificateID string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("certificate %s: %w", certificateID, ErrNotFound)
	}
	return fmt.Errorf("certificate %s: %w", certificateID, err)
}

func (s *CertificateService) discard(ctx context.Context, container, path, contentType string) {
	if err := s.store.Delete(ctx, container, path, contentType); err != nil {
		slog.Error("failed to remove orphaned artifact", "container", container, "path", path, "error", err)
	}
}

func (s *CertificateService) publish(ctx context.Context, eventType, key string, data any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, eventType, key, data); err != nil {
		slog.Warn("failed to publish event", "type", eventType, "key", key, "error", err)
	}
}
