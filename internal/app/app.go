package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"portfolio/internal/asset"
	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/repository"
	"portfolio/internal/service"
	"portfolio/internal/storage"
)

type App struct {
	Cfg                *config.Config
	DB                 *sqlx.DB
	AuthService        *service.AuthService
	ProfileService     *service.ProfileService
	ProjectService     *service.ProjectService
	CertificateService *service.CertificateService
	FileService        *service.FileService
	AIService          *service.AIService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	profileRepository := repository.NewProfileRepository(database)
	projectRepository := repository.NewProjectRepository(database)
	certificateRepository := repository.NewCertificateRepository(database)

	// Storage
	store, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Asset lifecycle components, shared across entity services
	coordinator := asset.NewCoordinator(store, cfg.StorageUploadLimit, cfg.StoragePutTimeout)
	resolver := asset.NewResolver(store)
	executor := asset.NewExecutor(store)

	profileSchema := asset.Schema{
		{Field: service.FieldProfileImage, Bucket: cfg.BucketProfile, Kind: asset.KindImage},
		{Field: service.FieldCVPDF, Bucket: cfg.BucketProfile, Kind: asset.KindDocument},
	}
	projectSchema := asset.Schema{
		{Field: service.FieldProjectImages, Bucket: cfg.BucketProjectFiles, Kind: asset.KindImage, MaxFiles: 10},
	}
	certificateSchema := asset.Schema{
		{Field: service.FieldCertFile, Bucket: cfg.BucketCertificates, Kind: asset.KindDocument},
	}

	// Services
	authService := service.NewAuthService(
		cfg.AdminEmail,
		cfg.AdminPasswordHash,
		cfg.JWTSecret,
		cfg.JWTExpiry,
		cfg.IsProduction(),
	)
	profileService := service.NewProfileService(profileRepository, coordinator, resolver, executor, profileSchema)
	projectService := service.NewProjectService(projectRepository, coordinator, resolver, executor, projectSchema)
	certificateService := service.NewCertificateService(certificateRepository, coordinator, resolver, executor, certificateSchema)
	fileService := service.NewFileService(store, cfg.BucketProfile, cfg.StorageListLimit)
	aiService := service.NewAIService(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel, cfg.AITimeout)

	return &App{
		Cfg:                cfg,
		DB:                 database,
		AuthService:        authService,
		ProfileService:     profileService,
		ProjectService:     projectService,
		CertificateService: certificateService,
		FileService:        fileService,
		AIService:          aiService,
	}, nil
}

func (a *App) Close() error {
	return db.Close(a.DB)
}
