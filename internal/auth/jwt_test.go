package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/arstudios/intake-api/internal/auth"
)

const testSecret = "test-secret"

// signAt builds a token issued at the given time with the standard 12-hour
// lifetime, so expiry behavior can be tested without waiting.
func signAt(t *testing.T, issued time.Time, subject string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(issued.Add(auth.TokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func TestGenerateValidateRoundTrip(t *testing.T) {
	token, err := auth.GenerateToken(testSecret, "admin@arstudios.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := auth.ValidateToken(testSecret, token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Subject != "admin@arstudios.com" {
		t.Fatalf("expected subject admin@arstudios.com, got %q", claims.Subject)
	}
}

func TestValidateAcceptsOneHourOldToken(t *testing.T) {
	token := signAt(t, time.Now().Add(-time.Hour), "admin@arstudios.com")
	if _, err := auth.ValidateToken(testSecret, token); err != nil {
		t.Fatalf("token issued 1h ago should still validate: %v", err)
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	token := signAt(t, time.Now().Add(-13*time.Hour), "admin@arstudios.com")
	_, err := auth.ValidateToken(testSecret, token)
	if err != auth.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for 13h-old token, got %v", err)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := auth.GenerateToken("other-secret", "admin@arstudios.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := auth.ValidateToken(testSecret, token); err != auth.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	token, err := auth.GenerateToken(testSecret, "admin@arstudios.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
	if _, err := auth.ValidateToken(testSecret, tampered); err != auth.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateRejectsMissingSubject(t *testing.T) {
	token := signAt(t, time.Now(), "")
	if _, err := auth.ValidateToken(testSecret, token); err != auth.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for empty subject, got %v", err)
	}
}

func TestFailureIsGeneric(t *testing.T) {
	// Expired and forged tokens must be indistinguishable to the caller.
	expired := signAt(t, time.Now().Add(-14*time.Hour), "admin@arstudios.com")
	_, errExpired := auth.ValidateToken(testSecret, expired)
	_, errForged := auth.ValidateToken(testSecret, "not.a.token")
	if errExpired != errForged {
		t.Fatalf("failure modes leak: %v vs %v", errExpired, errForged)
	}
}
