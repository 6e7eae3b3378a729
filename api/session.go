package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/murshedkoli/portfolio-backend/errs"
)

const sessionTTL = 24 * time.Hour

// sessionAuth issues and verifies the admin session tokens that gate every
// mutating route. The admin UI's old localStorage flag carried no server
// check at all; here the token is validated on each request.
type sessionAuth struct {
	responder Responder
	secret    []byte
}

func newSessionAuth(secret []byte) sessionAuth {
	logger := log.With().Str("handlerName", "sessionAuth").Logger()
	return sessionAuth{
		responder: NewResponder(logger),
		secret:    secret,
	}
}

// issueToken mints a signed session token for the single admin operator.
func (m sessionAuth) issueToken(now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"iat": now.Unix(),
		"exp": now.Add(sessionTTL).Unix(),
	})
	return token.SignedString(m.secret)
}

func (m sessionAuth) verifyToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return errs.ErrInvalidToken
	}
	return nil
}

// requireSession rejects requests that do not carry a valid Bearer session
// token.
func (m sessionAuth) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			m.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if err := m.verifyToken(tokenString); err != nil {
			m.responder.WriteError(w, errs.NewInvalidTokenError(err))
			return
		}

		next.ServeHTTP(w, r)
	})
}
