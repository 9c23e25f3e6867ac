package model

import "time"

// ProfileID is the fixed id of the singleton profile row.
const ProfileID = 1

type Profile struct {
	ID                int       `db:"id" json:"id"`
	FullName          string    `db:"full_name" json:"full_name"`
	ProfessionalTitle string    `db:"professional_title" json:"professional_title"`
	Bio               string    `db:"bio" json:"bio"`
	LinkedInURL       string    `db:"linkedin_url" json:"linkedin_url"`
	GitHubURL         string    `db:"github_url" json:"github_url"`
	ProfileImageURL   string    `db:"profile_image_url" json:"profile_image_url"`
	CVPDFURL          string    `db:"cv_pdf_url" json:"cv_pdf_url"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}
