package model

import "time"

type Project struct {
	ID           string       `db:"id" json:"id"`
	Title        string       `db:"title" json:"title"`
	GitHubLink   string       `db:"github_link" json:"github_link"`
	DemoLink     string       `db:"demo_link" json:"demo_link"`
	Technologies Technologies `db:"technologies" json:"technologies"`
	Summary      string       `db:"summary" json:"summary"`
	Description  string       `db:"description" json:"description"`
	ImageURLs    URLList      `db:"image_urls" json:"image_urls"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at" json:"updated_at"`
}
