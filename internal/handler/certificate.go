package handler

import (
	"log/slog"
	"net/http"

	"portfolio/internal/service"
)

type CertificateHandler struct {
	certService *service.CertificateService
}

func NewCertificateHandler(certService *service.CertificateService) *CertificateHandler {
	return &CertificateHandler{
		certService: certService,
	}
}

// PublicList serves published certificates only.
func (h *CertificateHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	certs, err := h.certService.Certificates(true)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, certs)
}

// List serves every certificate for the admin page.
func (h *CertificateHandler) List(w http.ResponseWriter, r *http.Request) {
	certs, err := h.certService.Certificates(false)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, certs)
}

// Create stores the uploaded PDF and inserts the certificate.
func (h *CertificateHandler) Create(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	form := r.MultipartForm

	uploads, closeFiles, err := fileUploads(form, "cert_file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read uploaded files")
		return
	}
	defer closeFiles()

	create := service.CertificateCreate{
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		Technologies: formLabels(form, "technologies"),
		IsPublished:  formFlag(form, "is_published"),
		CertFile:     uploads,
	}

	cert, err := h.certService.Create(r.Context(), create)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"success": true, "certificate": cert})
}

// ByID serves a single certificate for the admin edit page.
func (h *CertificateHandler) ByID(w http.ResponseWriter, r *http.Request) {
	cert, err := h.certService.ByID(r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cert)
}

// Update applies a partial multipart update, including the is_published
// visibility gate.
func (h *CertificateHandler) Update(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}
	form := r.MultipartForm

	uploads, closeFiles, err := fileUploads(form, "cert_file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read uploaded files")
		return
	}
	defer closeFiles()

	update := service.CertificateUpdate{
		Title:        formValue(form, "title"),
		Description:  formValue(form, "description"),
		Technologies: formLabels(form, "technologies"),
		IsPublished:  formBool(form, "is_published"),
		CertFile: service.FileInput{
			Clear:   formFlag(form, "clear_cert_file"),
			Uploads: uploads,
		},
	}

	cert, report, err := h.certService.Update(r.Context(), r.PathValue("id"), update)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if len(report.Failed) > 0 {
		slog.Warn("certificate updated with leaked orphans", "certificate_id", cert.ID, "failed", len(report.Failed))
	}

	respondJSON(w, http.StatusOK, cert)
}

// Delete removes the certificate and reconciles its stored PDF.
func (h *CertificateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	report, err := h.certService.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	if len(report.Failed) > 0 {
		slog.Warn("certificate deleted with leaked orphans", "failed", len(report.Failed))
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
