package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const adminContextKey contextKey = "admin"

// Middleware guards admin routes with a bearer token. Every failure path
// yields the same generic 401 body.
func Middleware(secret, adminEmail string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w)
				return
			}
			claims, err := ValidateToken(secret, strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				unauthorized(w)
				return
			}
			if !strings.EqualFold(claims.Subject, adminEmail) {
				unauthorized(w)
				return
			}
			ctx := context.WithValue(r.Context(), adminContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"could not validate credentials"}`))
}

// GetAdmin returns the validated claims, or nil outside the middleware.
func GetAdmin(ctx context.Context) *Claims {
	claims, _ := ctx.Value(adminContextKey).(*Claims)
	return claims
}
