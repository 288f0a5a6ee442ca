package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/devfolio/apiserver/config"
	"github.com/devfolio/apiserver/internal/db"
	"github.com/devfolio/apiserver/internal/handlers"
	"github.com/devfolio/apiserver/internal/notify"
	"github.com/devfolio/apiserver/internal/services"
	"github.com/devfolio/apiserver/internal/storage"
	"github.com/devfolio/apiserver/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
	notifier   *notify.Notifier
}

// New constructs a Server with basic middleware and defaults.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	jwtSecret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if jwtSecret == "" {
		_ = dbConn.Close()
		return nil, errors.New("JWT_SECRET is required")
	}

	blobs, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	notifier, err := openNotifier(ctx, cfg.Notifier)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	adminRepo := store.NewAdminRepository(dbConn)
	projectRepo := store.NewProjectRepository(dbConn)
	blogRepo := store.NewBlogRepository(dbConn)
	skillRepo := store.NewSkillRepository(dbConn)
	certificateRepo := store.NewCertificateRepository(dbConn)
	contactRepo := store.NewContactRepository(dbConn)
	educationRepo := store.NewEducationRepository(dbConn)
	experienceRepo := store.NewExperienceRepository(dbConn)
	profileRepo := store.NewProfileRepository(dbConn)

	adminService := services.NewAdminService(adminRepo)
	projectService := services.NewProjectService(projectRepo)
	blogService := services.NewBlogService(blogRepo)
	skillService := services.NewSkillService(skillRepo)
	certificateService := services.NewCertificateService(certificateRepo)
	contactService := services.NewContactService(contactRepo, notifierOrNil(notifier))
	curriculumService := services.NewCurriculumService(educationRepo, experienceRepo)
	profileService := services.NewProfileService(profileRepo, blobs)
	countService := services.NewCountService(
		projectRepo,
		skillRepo,
		blogRepo,
		contactRepo,
		educationRepo,
		experienceRepo,
	)

	authMiddleware := handlers.RequireAuth(adminService, jwtSecret)
	optionalAuthMiddleware := handlers.OptionalAuth(adminService, jwtSecret)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/admin", func(r chi.Router) {
		handlers.AuthRouter(r, adminService, jwtSecret)
	})
	router.Route("/projects", func(r chi.Router) {
		handlers.ProjectRouter(r, projectService, authMiddleware)
	})
	router.Route("/blogs", func(r chi.Router) {
		handlers.BlogRouter(r, blogService, authMiddleware)
	})
	router.Route("/skills", func(r chi.Router) {
		handlers.SkillRouter(r, skillService, authMiddleware, optionalAuthMiddleware)
	})
	router.Route("/certificates", func(r chi.Router) {
		handlers.CertificateRouter(r, certificateService, authMiddleware)
	})
	router.Route("/contacts", func(r chi.Router) {
		handlers.ContactRouter(r, contactService, authMiddleware)
	})
	router.Route("/curriculum", func(r chi.Router) {
		handlers.CurriculumRouter(r, curriculumService, authMiddleware)
	})
	router.Route("/counts", func(r chi.Router) {
		handlers.CountRouter(r, countService, authMiddleware)
	})
	router.Route("/profile", func(r chi.Router) {
		handlers.ProfileRouter(r, profileService, authMiddleware)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
		notifier:   notifier,
	}, nil
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	if s.notifier != nil {
		_ = s.notifier.Close()
	}
	return s.httpServer.Close()
}

func openStorage(ctx context.Context, cfg config.StorageConfig) (*storage.Storage, error) {
	var backend storage.ObjectStorage
	switch cfg.Backend {
	case "minio", "":
		client, err := storage.NewMinioClient(cfg.Minio, cfg.PublicBaseURL)
		if err != nil {
			return nil, err
		}
		backend = client
	case "gcs":
		client, err := storage.NewGCSClient(ctx, cfg.GCS)
		if err != nil {
			return nil, err
		}
		backend = client
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}

	wrapped := storage.NewStorage(backend)
	if err := wrapped.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return wrapped, nil
}

func openNotifier(ctx context.Context, cfg config.NotifierConfig) (*notify.Notifier, error) {
	switch cfg.Backend {
	case "":
		return nil, nil
	case "rabbitmq":
		backend, err := notify.NewRabbitMQBackend(cfg.RabbitMQ)
		if err != nil {
			return nil, err
		}
		return notify.New(backend), nil
	case "pubsub":
		backend, err := notify.NewPubSubBackend(ctx, cfg.PubSub)
		if err != nil {
			return nil, err
		}
		return notify.New(backend), nil
	default:
		return nil, fmt.Errorf("unknown notifier backend %q", cfg.Backend)
	}
}

// notifierOrNil avoids handing a typed nil to the contact service.
func notifierOrNil(notifier *notify.Notifier) services.Notifier {
	if notifier == nil {
		log.Println("contact notifications disabled: no notifier backend configured")
		return nil
	}
	return notifier
}
