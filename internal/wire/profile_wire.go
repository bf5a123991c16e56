package wire

import (
	"health-tracker/internal/adaptor"
	"health-tracker/pkg/middleware"
	"health-tracker/pkg/token"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireProfile configures the person routes behind the session token check
func wireProfile(r chi.Router, profileHandler *adaptor.ProfileHandler, issuer *token.Issuer, log *zap.Logger) {
	r.With(middleware.Auth(issuer, log)).Route("/api/person", func(r chi.Router) {
		r.Get("/", profileHandler.GetPerson)
		r.Post("/", profileHandler.InsertDetails)
		r.Put("/", profileHandler.UpdateDetails)
	})
}
