package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func runRequest(token string) (*httptest.ResponseRecorder, string) {
	gin.SetMode(gin.TestMode)
	var gotUserID string

	r := gin.New()
	r.GET("/protected", ValidateToken, func(c *gin.Context) {
		gotUserID = c.GetString("user_id")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, gotUserID
}

func TestValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("valid token sets user_id", func(t *testing.T) {
		token := signedToken(t, "test-secret", jwt.MapClaims{
			"user_id": "u1",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		w, userID := runRequest(token)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if userID != "u1" {
			t.Fatalf("expected user_id u1, got %q", userID)
		}
	})

	t.Run("missing header -> 401", func(t *testing.T) {
		w, _ := runRequest("")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("expired token -> 401", func(t *testing.T) {
		token := signedToken(t, "test-secret", jwt.MapClaims{
			"user_id": "u1",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})
		w, _ := runRequest(token)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong secret -> 401", func(t *testing.T) {
		token := signedToken(t, "other-secret", jwt.MapClaims{
			"user_id": "u1",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		w, _ := runRequest(token)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("token without user_id -> 401", func(t *testing.T) {
		token := signedToken(t, "test-secret", jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		w, _ := runRequest(token)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
