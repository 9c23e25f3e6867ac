package model

import "time"

type Certificate struct {
	ID           string       `db:"id" json:"id"`
	Title        string       `db:"title" json:"title"`
	Description  string       `db:"description" json:"description"`
	Technologies Technologies `db:"technologies" json:"technologies"`
	CertURL      string       `db:"cert_url" json:"cert_url"`
	IsPublished  bool         `db:"is_published" json:"is_published"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updated_at"`
}
