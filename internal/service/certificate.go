package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"portfolio/internal/asset"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// FieldCertFile is the certificate PDF slot.
const FieldCertFile = "cert_url"

// CertificateCreate holds the fields for a new certificate plus its PDF.
type CertificateCreate struct {
	Title        string
	Description  string
	Technologies []string
	IsPublished  bool
	CertFile     []asset.Upload
}

// CertificateUpdate is a partial update. Nil fields carry the stored
// value forward.
type CertificateUpdate struct {
	Title        *string
	Description  *string
	Technologies []string
	IsPublished  *bool
	CertFile     FileInput
}

type CertificateService struct {
	repo repository.CertificateRepository
	assetOps
}

func NewCertificateService(
	repo repository.CertificateRepository,
	coordinator *asset.Coordinator,
	resolver *asset.Resolver,
	executor *asset.Executor,
	schema asset.Schema,
) *CertificateService {
	return &CertificateService{
		repo: repo,
		assetOps: assetOps{
			coordinator: coordinator,
			resolver:    resolver,
			executor:    executor,
			schema:      schema,
		},
	}
}

// Create stores the PDF first and inserts the record second.
func (s *CertificateService) Create(ctx context.Context, in CertificateCreate) (*model.Certificate, error) {
	if in.Title == "" {
		return nil, ErrTitleRequired
	}

	changes, uploaded, err := s.storeSlots(ctx, map[string]FileInput{
		FieldCertFile: {Uploads: in.CertFile},
	})
	if err != nil {
		return nil, err
	}

	plan := s.resolver.Resolve(s.schema, nil, changes)

	now := time.Now()
	cert := &model.Certificate{
		ID:           uuid.New().String(),
		Title:        in.Title,
		Description:  in.Description,
		Technologies: model.NewTechnologies(in.Technologies),
		CertURL:      plan.FieldValue(FieldCertFile),
		IsPublished:  in.IsPublished,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.repo.Create(cert)
	if err != nil {
		s.cleanupUploads(ctx, uploaded)
		return nil, &asset.PersistError{Uploaded: uploaded, Err: err}
	}

	return cert, nil
}

func (s *CertificateService) ByID(id string) (*model.Certificate, error) {
	return s.repo.ByID(id)
}

// Certificates lists certificates, optionally only published ones for
// the public page.
func (s *CertificateService) Certificates(publishedOnly bool) ([]*model.Certificate, error) {
	return s.repo.Certificates(publishedOnly)
}

// Update merges a partial update with the usual ordering guarantees.
func (s *CertificateService) Update(ctx context.Context, id string, in CertificateUpdate) (*model.Certificate, asset.Report, error) {
	current, err := s.repo.ByID(id)
	if err != nil {
		return nil, asset.Report{}, err
	}

	changes, uploaded, err := s.storeSlots(ctx, map[string]FileInput{
		FieldCertFile: in.CertFile,
	})
	if err != nil {
		return nil, asset.Report{}, err
	}

	plan := s.resolver.Resolve(s.schema, map[string][]string{
		FieldCertFile: urlValues(current.CertURL),
	}, changes)

	next := *current
	next.Title = merged(current.Title, in.Title)
	next.Description = merged(current.Description, in.Description)
	if in.Technologies != nil {
		next.Technologies = model.NewTechnologies(in.Technologies)
	}
	if in.IsPublished != nil {
		next.IsPublished = *in.IsPublished
	}
	next.CertURL = plan.FieldValue(FieldCertFile)

	if next.Title == "" {
		return nil, asset.Report{}, ErrTitleRequired
	}

	err = s.repo.Update(&next)
	if err != nil {
		s.cleanupUploads(ctx, uploaded)
		return nil, asset.Report{}, &asset.PersistError{Uploaded: uploaded, Err: err}
	}

	report := s.executor.Reconcile(ctx, plan.Orphans)
	return &next, report, nil
}

// Delete removes the record first, then reconciles the PDF it held.
func (s *CertificateService) Delete(ctx context.Context, id string) (asset.Report, error) {
	current, err := s.repo.ByID(id)
	if err != nil {
		return asset.Report{}, err
	}

	refs := s.resolver.References(s.schema, map[string][]string{
		FieldCertFile: urlValues(current.CertURL),
	})

	err = s.repo.Delete(id)
	if err != nil {
		return asset.Report{}, fmt.Errorf("failed to delete certificate: %w", err)
	}

	return s.executor.Reconcile(ctx, refs), nil
}
