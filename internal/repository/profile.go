package repository

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"portfolio/internal/model"
)

type ProfileRepository interface {
	Get() (*model.Profile, error)
	Upsert(profile *model.Profile) error
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Get loads the singleton profile row. The row is read fresh on every
// call, it is never cached in process memory.
func (r *profileRepository) Get() (*model.Profile, error) {
	profile := &model.Profile{}
	query := `SELECT * FROM profile WHERE id = $1`

	err := r.db.Get(profile, query, model.ProfileID)
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// Upsert creates or replaces the singleton row. The fixed id keeps the
// table at exactly one permitted row.
func (r *profileRepository) Upsert(profile *model.Profile) error {
	profile.ID = model.ProfileID
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now()
	}
	profile.UpdatedAt = time.Now()

	query := `INSERT INTO profile (id, full_name, professional_title, bio, linkedin_url, github_url, profile_image_url, cv_pdf_url, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	          ON CONFLICT (id) DO UPDATE SET
	              full_name = excluded.full_name,
	              professional_title = excluded.professional_title,
	              bio = excluded.bio,
	              linkedin_url = excluded.linkedin_url,
	              github_url = excluded.github_url,
	              profile_image_url = excluded.profile_image_url,
	              cv_pdf_url = excluded.cv_pdf_url,
	              updated_at = excluded.updated_at`

	_, err := r.db.Exec(query,
		profile.ID,
		profile.FullName,
		profile.ProfessionalTitle,
		profile.Bio,
		profile.LinkedInURL,
		profile.GitHubURL,
		profile.ProfileImageURL,
		profile.CVPDFURL,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	return err
}
