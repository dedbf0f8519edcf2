package wire

import (
	"tour-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Route("/api/auth", func(r chi.Router) {
		// POST /api/auth/signup - register a traveler or guide
		r.Post("/signup", authHandler.Signup)

		// POST /api/auth/login - exchange credentials for a token
		r.Post("/login", authHandler.Login)
	})
}
