package wire

import (
	"net/http"

	"health-tracker/internal/adaptor"
	"health-tracker/internal/data/repository"
	"health-tracker/internal/usecase"
	"health-tracker/pkg/middleware"
	"health-tracker/pkg/token"
	"health-tracker/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	issuer *token.Issuer,
	mail usecase.MailDispatcher,
	events usecase.EventPublisher,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, issuer, mail, events, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, issuer, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, issuer *token.Issuer, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAccount(r, handler.Account)
	wireProfile(r, handler.Profile, issuer, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
