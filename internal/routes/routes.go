package routes

import (
	"net/http"

	"portfolio/internal/app"
	"portfolio/internal/handler"
	"portfolio/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	profile := handler.NewProfileHandler(app.ProfileService, app.FileService)
	project := handler.NewProjectHandler(app.ProjectService)
	certificate := handler.NewCertificateHandler(app.CertificateService)
	ai := handler.NewAIHandler(app.AIService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /api/profile", profile.Get)
	mux.HandleFunc("GET /api/projects/public", project.PublicList)
	mux.HandleFunc("GET /api/certificates/public", certificate.PublicList)

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()
	mux.HandleFunc("POST /api/auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /api/auth/logout", auth.Logout)

	// ============================================================================
	// PROTECTED ROUTES
	// ============================================================================

	// Profile
	mux.HandleFunc("POST /api/profile", middleware.RequireAuth(profile.Update))
	mux.HandleFunc("GET /api/profile/files", middleware.RequireAuth(profile.Files))
	mux.HandleFunc("DELETE /api/profile/files", middleware.RequireAuth(profile.DeleteFile))

	// Projects
	mux.HandleFunc("POST /api/projects", middleware.RequireAuth(project.Create))
	mux.HandleFunc("GET /api/projects/{id}", middleware.RequireAuth(project.ByID))
	mux.HandleFunc("PUT /api/projects/{id}", middleware.RequireAuth(project.Update))
	mux.HandleFunc("DELETE /api/projects/{id}", middleware.RequireAuth(project.Delete))

	// Certificates
	mux.HandleFunc("GET /api/certificates", middleware.RequireAuth(certificate.List))
	mux.HandleFunc("POST /api/certificates", middleware.RequireAuth(certificate.Create))
	mux.HandleFunc("GET /api/certificates/{id}", middleware.RequireAuth(certificate.ByID))
	mux.HandleFunc("PUT /api/certificates/{id}", middleware.RequireAuth(certificate.Update))
	mux.HandleFunc("DELETE /api/certificates/{id}", middleware.RequireAuth(certificate.Delete))

	// AI
	mux.HandleFunc("POST /api/ai/description", middleware.RequireAuth(ai.GenerateDescription))

	// Global middleware - executed in order (top to bottom)
	h := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService),
	)

	return h
}
