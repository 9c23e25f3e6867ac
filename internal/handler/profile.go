package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"portfolio/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	fileService    *service.FileService
}

func NewProfileHandler(profileService *service.ProfileService, fileService *service.FileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		fileService:    fileService,
	}
}

// Get serves the public profile. A missing row yields empty fields.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileService.Get()
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// Update applies a partial multipart update: text fields plus optional
// profile_image / cv_pdf files and clear flags. Fields absent from the
// form keep their stored value.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	form := r.MultipartForm

	imageUploads, closeImages, err := fileUploads(form, "profile_image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read uploaded files")
		return
	}
	defer closeImages()

	cvUploads, closeCVs, err := fileUploads(form, "cv_pdf")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read uploaded files")
		return
	}
	defer closeCVs()

	update := service.ProfileUpdate{
		FullName:          formValue(form, "full_name"),
		ProfessionalTitle: formValue(form, "professional_title"),
		Bio:               formValue(form, "bio"),
		LinkedInURL:       formValue(form, "linkedin_url"),
		GitHubURL:         formValue(form, "github_url"),
		ProfileImage: service.FileInput{
			Clear:   formFlag(form, "clear_profile_image"),
			Uploads: imageUploads,
		},
		CVPDF: service.FileInput{
			Clear:   formFlag(form, "clear_cv_pdf"),
			Uploads: cvUploads,
		},
	}

	profile, report, err := h.profileService.Update(r.Context(), update)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if len(report.Failed) > 0 {
		slog.Warn("profile updated with leaked orphans", "failed", len(report.Failed))
	}

	respondJSON(w, http.StatusOK, map[string]any{"success": true, "profile": profile})
}

// Files lists the profile bucket for the admin file manager.
func (h *ProfileHandler) Files(w http.ResponseWriter, r *http.Request) {
	files, err := h.fileService.Files(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"files": files})
}

// DeleteFile removes one object by key.
func (h *ProfileHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Filename string `json:"filename"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.Filename == "" {
		respondError(w, http.StatusBadRequest, "Filename is required")
		return
	}

	err = h.fileService.Delete(r.Context(), req.Filename)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
