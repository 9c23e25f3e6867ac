package repository

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"portfolio/internal/model"
)

type ProjectRepository interface {
	Create(project *model.Project) error
	ByID(id string) (*model.Project, error)
	Projects() ([]*model.Project, error)
	Update(project *model.Project) error
	Delete(id string) error
}

type projectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(project *model.Project) error {
	query := `INSERT INTO projects (id, title, github_link, demo_link, technologies, summary, description, image_urls, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(query,
		project.ID,
		project.Title,
		project.GitHubLink,
		project.DemoLink,
		project.Technologies,
		project.Summary,
		project.Description,
		project.ImageURLs,
		project.CreatedAt,
		project.UpdatedAt,
	)

	return err
}

func (r *projectRepository) ByID(id string) (*model.Project, error) {
	project := &model.Project{}
	query := `SELECT * FROM projects WHERE id = $1`

	err := r.db.Get(project, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrProjectNotFound
	}

	return project, err
}

func (r *projectRepository) Projects() ([]*model.Project, error) {
	var projects []*model.Project
	query := `SELECT * FROM projects ORDER BY created_at DESC`

	err := r.db.Select(&projects, query)
	if err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *projectRepository) Update(project *model.Project) error {
	query := `UPDATE projects
	          SET title = $1, github_link = $2, demo_link = $3, technologies = $4, summary = $5, description = $6, image_urls = $7, updated_at = $8
	          WHERE id = $9`

	result, err := r.db.Exec(query,
		project.Title,
		project.GitHubLink,
		project.DemoLink,
		project.Technologies,
		project.Summary,
		project.Description,
		project.ImageURLs,
		time.Now(),
		project.ID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrProjectNotFound
	}

	return nil
}

func (r *projectRepository) Delete(id string) error {
	query := `DELETE FROM projects WHERE id = $1`
	result, err := r.db.Exec(query, id)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrProjectNotFound
	}

	return nil
}
