package repository

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"portfolio/internal/model"
)

type CertificateRepository interface {
	Create(cert *model.Certificate) error
	ByID(id string) (*model.Certificate, error)
	Certificates(publishedOnly bool) ([]*model.Certificate, error)
	Update(cert *model.Certificate) error
	Delete(id string) error
}

type certificateRepository struct {
	db *sqlx.DB
}

func NewCertificateRepository(db *sqlx.DB) CertificateRepository {
	return &certificateRepository{db: db}
}

func (r *certificateRepository) Create(cert *model.Certificate) error {
	query := `INSERT INTO certificates (id, title, description, technologies, cert_url, is_published, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		cert.ID,
		cert.Title,
		cert.Description,
		cert.Technologies,
		cert.CertURL,
		cert.IsPublished,
		cert.CreatedAt,
		cert.UpdatedAt,
	)

	return err
}

func (r *certificateRepository) ByID(id string) (*model.Certificate, error) {
	cert := &model.Certificate{}
	query := `SELECT * FROM certificates WHERE id = $1`

	err := r.db.Get(cert, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrCertificateNotFound
	}

	return cert, err
}

func (r *certificateRepository) Certificates(publishedOnly bool) ([]*model.Certificate, error) {
	var certs []*model.Certificate

	query := `SELECT * FROM certificates ORDER BY created_at DESC`
	if publishedOnly {
		query = `SELECT * FROM certificates WHERE is_published = TRUE ORDER BY created_at DESC`
	}

	err := r.db.Select(&certs, query)
	if err != nil {
		return nil, err
	}

	return certs, nil
}

func (r *certificateRepository) Update(cert *model.Certificate) error {
	query := `UPDATE certificates
	          SET title = $1, description = $2, technologies = $3, cert_url = $4, is_published = $5, updated_at = $6
	          WHERE id = $7`

	result, err := r.db.Exec(query,
		cert.Title,
		cert.Description,
		cert.Technologies,
		cert.CertURL,
		cert.IsPublished,
		time.Now(),
		cert.ID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCertificateNotFound
	}

	return nil
}

func (r *certificateRepository) Delete(id string) error {
	query := `DELETE FROM certificates WHERE id = $1`
	result, err := r.db.Exec(query, id)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrCertificateNotFound
	}

	return nil
}
