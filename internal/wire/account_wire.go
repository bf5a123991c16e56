package wire

import (
	"health-tracker/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAccount configures the public authentication routes
func wireAccount(r chi.Router, accountHandler *adaptor.AccountHandler) {
	r.Post("/api/auth/register", accountHandler.Register)
	r.Post("/api/auth/login", accountHandler.Login)
	r.Get("/api/auth/verify/{token}", accountHandler.Verify)
	r.Post("/api/auth/password/request", accountHandler.RequestPasswordChange)
	r.Post("/api/auth/password", accountHandler.UpdatePassword)
}
