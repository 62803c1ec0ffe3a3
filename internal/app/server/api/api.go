// Route map:
//
//	POST /api/auth/login                  administrator login (public)
//	POST /api/passwords                   create credential (auth)
//	GET  /api/passwords                   list credentials (auth)
//	GET  /api/passwords/{id}              get credential (auth)
//	GET  /api/passwords/{id}/reveal       decrypt one secret (auth)
//	PUT  /api/passwords/{id}              update credential (auth)
//	DELETE /api/passwords/{id}            delete credential (auth)
//	GET  /api/passwords/kpis/reciente     newest credential (auth)
//	POST /api/responsivas                 create responsiva
//	GET  /api/responsivas                 list responsivas
//	GET  /api/responsivas/lista           reduced listing
//	DELETE /api/responsivas/{id}          delete responsiva
//	POST /api/responsivas/upload          attach signed document (multipart)
//	GET  /api/responsivas/kpis/stats      dashboard counters
//	GET  /api/responsivas/kpis/reciente   newest responsiva
//	GET  /uploads/*                       stored signed documents
package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"golang.org/x/exp/slog"

	authAPI "responsivas/internal/app/server/api/http/auth"
	healthAPI "responsivas/internal/app/server/api/http/health"
	"responsivas/internal/app/server/api/http/middleware"
	authMW "responsivas/internal/app/server/api/http/middleware/auth"
	loggerMW "responsivas/internal/app/server/api/http/middleware/logger"
	passwordAPI "responsivas/internal/app/server/api/http/password"
	responsivaAPI "responsivas/internal/app/server/api/http/responsiva"
	"responsivas/internal/app/server/config"
	"responsivas/internal/app/server/crypto"
	"responsivas/internal/domain/admin"
	"responsivas/internal/domain/credential"
	"responsivas/internal/domain/custody"
	"responsivas/internal/domain/session"
	"responsivas/internal/infrastructure/files"
	"responsivas/internal/infrastructure/storage/postgres"
)

// New assembles the chi mux with every operation registered through
// huma, plus the two non-JSON routes: the multipart upload and the
// static uploads directory.
func New(storage *postgres.Storage, cipher *crypto.Cipher, fileStore *files.Store, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	// The SPA is served from its own origin during development.
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	humaCfg := huma.DefaultConfig("Responsivas API", "1.0.0")
	humaCfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	humaAPI := humachi.New(mux, humaCfg)

	sessionService := session.NewService(cfg.Auth.JWTSecret, log)
	adminService := admin.NewService(cfg.Auth.AdminUser, cfg.Auth.AdminPasswordHash, log)
	guard := authMW.New(sessionService, log)
	requestLogger := loggerMW.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(requestLogger.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())
	healthHandler.SetupRoutes(humaAPI)

	middlewares.Add(requestLogger.Middleware())
	authHandler := authAPI.NewHandler(adminService, sessionService, log, middlewares.GetAllAndClear())
	authHandler.SetupRoutes(humaAPI)

	credentialRepo := postgres.NewCredentialRepository(storage.Pool(), log)
	credentialService := credential.NewService(credentialRepo, cipher, log)
	middlewares.Add(requestLogger.Middleware())
	middlewares.Add(guard.Middleware())
	passwordHandler := passwordAPI.NewHandler(credentialService, log, middlewares.GetAllAndClear())
	passwordHandler.SetupRoutes(humaAPI)

	custodyRepo := postgres.NewCustodyRepository(storage.Pool(), log)
	custodyService := custody.NewService(custodyRepo, log)
	middlewares.Add(requestLogger.Middleware())
	responsivaHandler := responsivaAPI.NewHandler(custodyService, fileStore, log, middlewares.GetAllAndClear())
	responsivaHandler.SetupRoutes(humaAPI)

	// The signed-document upload is multipart, not JSON; it and the
	// static file serving bypass huma.
	mux.Post("/api/responsivas/upload", responsivaHandler.UploadHandler)
	mux.Handle("/uploads/*", http.StripPrefix("/uploads/",
		http.FileServer(http.Dir(fileStore.Dir()))))

	return mux
}
