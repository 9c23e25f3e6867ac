package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"portfolio/internal/asset"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// FieldProjectImages is the multi-file image slot on a project.
const FieldProjectImages = "image_urls"

var ErrTitleRequired = errors.New("title is required")

// ProjectCreate holds the fields for a new project plus its image files.
type ProjectCreate struct {
	Title        string
	GitHubLink   string
	DemoLink     string
	Technologies []string
	Summary      string
	Description  string
	Images       []asset.Upload
}

// ProjectUpdate is a partial update. Nil scalar fields carry the stored
// value forward. Nil Technologies keeps the stored set.
type ProjectUpdate struct {
	Title        *string
	GitHubLink   *string
	DemoLink     *string
	Technologies []string
	Summary      *string
	Description  *string
	Images       FileInput
}

type ProjectService struct {
	repo repository.ProjectRepository
	assetOps
}

func NewProjectService(
	repo repository.ProjectRepository,
	coordinator *asset.Coordinator,
	resolver *asset.Resolver,
	executor *asset.Executor,
	schema asset.Schema,
) *ProjectService {
	return &ProjectService{
		repo: repo,
		assetOps: assetOps{
			coordinator: coordinator,
			resolver:    resolver,
			executor:    executor,
			schema:      schema,
		},
	}
}

// Create stores the image files first and inserts the record second. If
// the insert fails the freshly stored objects are orphans, they are
// cleaned up best-effort and surfaced in the returned error.
func (s *ProjectService) Create(ctx context.Context, in ProjectCreate) (*model.Project, error) {
	if in.Title == "" {
		return nil, ErrTitleRequired
	}

	changes, uploaded, err := s.storeSlots(ctx, map[string]FileInput{
		FieldProjectImages: {Uploads: in.Images},
	})
	if err != nil {
		return nil, err
	}

	plan := s.resolver.Resolve(s.schema, nil, changes)

	now := time.Now()
	project := &model.Project{
		ID:           uuid.New().String(),
		Title:        in.Title,
		GitHubLink:   in.GitHubLink,
		DemoLink:     in.DemoLink,
		Technologies: model.NewTechnologies(in.Technologies),
		Summary:      in.Summary,
		Description:  in.Description,
		ImageURLs:    plan.Fields[FieldProjectImages],
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.repo.Create(project)
	if err != nil {
		s.cleanupUploads(ctx, uploaded)
		return nil, &asset.PersistError{Uploaded: uploaded, Err: err}
	}

	return project, nil
}

func (s *ProjectService) ByID(id string) (*model.Project, error) {
	return s.repo.ByID(id)
}

func (s *ProjectService) Projects() ([]*model.Project, error) {
	return s.repo.Projects()
}

// Update merges a partial update, enforcing store-before-persist and
// persist-before-cleanup ordering for the image slot.
func (s *ProjectService) Update(ctx context.Context, id string, in ProjectUpdate) (*model.Project, asset.Report, error) {
	current, err := s.repo.ByID(id)
	if err != nil {
		return nil, asset.Report{}, err
	}

	changes, uploaded, err := s.storeSlots(ctx, map[string]FileInput{
		FieldProjectImages: in.Images,
	})
	if err != nil {
		return nil, asset.Report{}, err
	}

	plan := s.resolver.Resolve(s.schema, map[string][]string{
		FieldProjectImages: current.ImageURLs,
	}, changes)

	next := *current
	next.Title = merged(current.Title, in.Title)
	next.GitHubLink = merged(current.GitHubLink, in.GitHubLink)
	next.DemoLink = merged(current.DemoLink, in.DemoLink)
	next.Summary = merged(current.Summary, in.Summary)
	next.Description = merged(current.Description, in.Description)
	if in.Technologies != nil {
		next.Technologies = model.NewTechnologies(in.Technologies)
	}
	next.ImageURLs = plan.Fields[FieldProjectImages]

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

// Delete removes the record first and reconciles every asset reference it
// held after the delete is confirmed.
func (s *ProjectService) Delete(ctx context.Context, id string) (asset.Report, error) {
	current, err := s.repo.ByID(id)
	if err != nil {
		return asset.Report{}, err
	}

	refs := s.resolver.References(s.schema, map[string][]string{
		FieldProjectImages: current.ImageURLs,
	})

	err = s.repo.Delete(id)
	if err != nil {
		return asset.Report{}, fmt.Errorf("failed to delete project: %w", err)
	}

	return s.executor.Reconcile(ctx, refs), nil
}
