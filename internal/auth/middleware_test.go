package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/arstudios/intake-api/internal/auth"
)

func guarded(t *testing.T, secret, adminEmail string) (http.Handler, *bool) {
	t.Helper()
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth.GetAdmin(r.Context()) == nil {
			t.Fatal("claims missing from context")
		}
		reached = true
	})
	return auth.Middleware(secret, adminEmail)(next), &reached
}

func TestMiddlewareAllowsValidToken(t *testing.T) {
	token, err := auth.GenerateToken(testSecret, "admin@arstudios.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	h, reached := guarded(t, testSecret, "admin@arstudios.com")
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !*reached {
		t.Fatal("handler not reached")
	}
}

func TestMiddlewareSubjectMatchIsCaseInsensitive(t *testing.T) {
	token, err := auth.GenerateToken(testSecret, "Admin@ARStudios.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	h, reached := guarded(t, testSecret, "admin@arstudios.com")
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || !*reached {
		t.Fatalf("case-insensitive subject rejected: status %d", rec.Code)
	}
}

func TestMiddlewareRejections(t *testing.T) {
	wrongSubject, err := auth.GenerateToken(testSecret, "someone@else.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.token"},
		{"wrong subject", "Bearer " + wrongSubject},
	}
	for _, tc := range cases {
		h, reached := guarded(t, testSecret, "admin@arstudios.com")
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", tc.name, rec.Code)
		}
		if *reached {
			t.Fatalf("%s: handler reached", tc.name)
		}
		if !strings.Contains(rec.Body.String(), "could not validate credentials") {
			t.Fatalf("%s: non-generic 401 body: %s", tc.name, rec.Body.String())
		}
	}
}
