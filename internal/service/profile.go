package service

import (
	"context"
	"errors"
	"fmt"

	"portfolio/internal/asset"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// Profile slot field names, matching the record columns.
const (
	FieldProfileImage = "profile_image_url"
	FieldCVPDF        = "cv_pdf_url"
)

// FileInput is the incoming state of one asset slot in an update request:
// new files to store, an explicit clear, or neither (keep current value).
type FileInput struct {
	Clear   bool
	Uploads []asset.Upload
}

// ProfileUpdate is a partial update. Nil scalar fields carry the stored
// value forward, empty strings overwrite.
type ProfileUpdate struct {
	FullName          *string
	ProfessionalTitle *string
	Bio               *string
	LinkedInURL       *string
	GitHubURL         *string
	ProfileImage      FileInput
	CVPDF             FileInput
}

type ProfileService struct {
	repo repository.ProfileRepository
	assetOps
}

func NewProfileService(
	repo repository.ProfileRepository,
	coordinator *asset.Coordinator,
	resolver *asset.Resolver,
	executor *asset.Executor,
	schema asset.Schema,
) *ProfileService {
	return &ProfileService{
		repo: repo,
		assetOps: assetOps{
			coordinator: coordinator,
			resolver:    resolver,
			executor:    executor,
			schema:      schema,
		},
	}
}

// Get loads the singleton profile. A missing row yields an empty profile
// rather than an error, the public page renders placeholders.
func (s *ProfileService) Get() (*model.Profile, error) {
	profile, err := s.repo.Get()
	if errors.Is(err, repository.ErrProfileNotFound) {
		return &model.Profile{ID: model.ProfileID}, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Update merges a partial update into the singleton profile, storing new
// files first, persisting the merged record second, and deleting orphaned
// objects last. A cleanup failure never fails the update.
func (s *ProfileService) Update(ctx context.Context, in ProfileUpdate) (*model.Profile, asset.Report, error) {
	current, err := s.Get()
	if err != nil {
		return nil, asset.Report{}, fmt.Errorf("failed to load profile: %w", err)
	}

	changes, uploaded, err := s.storeSlots(ctx, map[string]FileInput{
		FieldProfileImage: in.ProfileImage,
		FieldCVPDF:        in.CVPDF,
	})
	if err != nil {
		return nil, asset.Report{}, err
	}

	plan := s.resolver.Resolve(s.schema, map[string][]string{
		FieldProfileImage: urlValues(current.ProfileImageURL),
		FieldCVPDF:        urlValues(current.CVPDFURL),
	}, changes)

	next := *current
	next.FullName = merged(current.FullName, in.FullName)
	next.ProfessionalTitle = merged(current.ProfessionalTitle, in.ProfessionalTitle)
	next.Bio = merged(current.Bio, in.Bio)
	next.LinkedInURL = merged(current.LinkedInURL, in.LinkedInURL)
	next.GitHubURL = merged(current.GitHubURL, in.GitHubURL)
	next.ProfileImageURL = plan.FieldValue(FieldProfileImage)
	next.CVPDFURL = plan.FieldValue(FieldCVPDF)

	err = s.repo.Upsert(&next)
	if err != nil {
		s.cleanupUploads(ctx, uploaded)
		return nil, asset.Report{}, &asset.PersistError{Uploaded: uploaded, Err: err}
	}

	report := s.executor.Reconcile(ctx, plan.Orphans)
	return &next, report, nil
}
