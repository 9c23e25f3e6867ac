package handler

import (
	"log/slog"
	"net/http"

	"portfolio/internal/service"
)

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// PublicList serves all projects newest-first for the public page.
func (h *ProjectHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.Projects()
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, projects)
}

// Create stores the uploaded images and inserts the project.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	form := r.MultipartForm

	uploads, closeFiles, err := fileUploads(form, "images")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read uploaded files")
		return
	}
	defer closeFiles()

	create := service.ProjectCreate{
		Title:        r.FormValue("title"),
		GitHubLink:   r.FormValue("github_link"),
		DemoLink:     r.FormValue("demo_link"),
		Technologies: formLabels(form, "technologies"),
		Summary:      r.FormValue("summary"),
		Description:  r.FormValue("description"),
		Images:       uploads,
	}

	project, err := h.projectService.Create(r.Context(), create)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"success": true, "project": project})
}

// ByID serves a single project for the admin edit page.
func (h *ProjectHandler) ByID(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.ByID(r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// Update applies a partial multipart update. Uploaded images replace the
// image list, clear_images empties it, neither keeps it.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	form := r.MultipartForm

	uploads, closeFiles, err := fileUploads(form, "images")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read uploaded files")
		return
	}
	defer closeFiles()

	update := service.ProjectUpdate{
		Title:        formValue(form, "title"),
		GitHubLink:   formValue(form, "github_link"),
		DemoLink:     formValue(form, "demo_link"),
		Technologies: formLabels(form, "technologies"),
		Summary:      formValue(form, "summary"),
		Description:  formValue(form, "description"),
		Images: service.FileInput{
			Clear:   formFlag(form, "clear_images"),
			Uploads: uploads,
		},
	}

	project, report, err := h.projectService.Update(r.Context(), r.PathValue("id"), update)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if len(report.Failed) > 0 {
		slog.Warn("project updated with leaked orphans", "project_id", project.ID, "failed", len(report.Failed))
	}

	respondJSON(w, http.StatusOK, project)
}

// Delete removes the project and reconciles its stored images.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	report, err := h.projectService.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if len(report.Failed) > 0 {
		slog.Warn("project deleted with leaked orphans", "failed", len(report.Failed))
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
