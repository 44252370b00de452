package middleware

import (
	"context"
	"net/http"
	"strings"

	"devpulse/internal/http/api"

	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
)

type key int

const SubjectKey key = 1

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TokenVerifier
type TokenVerifier interface {
	VerifyToken(tokenString string) (jwt.MapClaims, bool)
}

// Auth guards routes with the signed bearer token issued by the OAuth
// callback. The subject claim ends up in the request context.
func Auth(verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.Header.Get("Authorization")
			if tokenString == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "missing bearer token"))
				return
			}

			tokenString, _ = strings.CutPrefix(tokenString, "Bearer ")

			claims, ok := verifier.VerifyToken(tokenString)
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "invalid or expired token"))
				return
			}

			sub, _ := claims["sub"].(string)
			ctx := context.WithValue(r.Context(), SubjectKey, sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Subject returns the github id stored by Auth, empty when unauthenticated.
func Subject(ctx context.Context) string {
	sub, _ := ctx.Value(SubjectKey).(string)
	return sub
}
