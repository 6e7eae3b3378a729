package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/murshedkoli/portfolio-backend/errs"
)

type authHandler struct {
	responder    Responder
	logger       zerolog.Logger
	auth         sessionAuth
	passwordHash []byte
}

// newAuthHandler hashes the configured admin password once at startup so the
// plaintext is not kept around for comparisons.
func newAuthHandler(auth sessionAuth, adminPassword string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	var hash []byte
	if adminPassword == "" {
		logger.Warn().Msg("ADMIN_PASSWORD not configured, login is disabled")
	} else {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			logger.Error().Err(err).Msg("failed to hash admin password, login is disabled")
			hash = nil
		}
	}

	return authHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		auth:         auth,
		passwordHash: hash,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// login verifies the admin password and returns a session token.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if len(h.passwordHash) == 0 {
			h.responder.WriteError(w, errs.NewBadPasswordError())
			return
		}

		if err := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)); err != nil {
			h.responder.WriteError(w, errs.NewBadPasswordError())
			return
		}

		token, err := h.auth.issueToken(time.Now())
		if err != nil {
			h.responder.WriteError(w, errs.NewActionFailed("login", err))
			return
		}

		h.responder.WriteJSON(w, loginResponse{Token: token})
	}
}
