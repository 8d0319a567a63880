package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"budgetwise/internal/models"
	"budgetwise/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupAuthRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/me", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("userID"), "email": c.GetString("email")})
	})
	return r
}

func get(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func sign(t *testing.T, claims *JWTClaims, key string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testutil.SetTestConfig(t)
	r := setupAuthRouter()
	user := &models.User{Email: "a@example.com"}
	user.ID = "0192f0c1-7e1a-7a3b-9c4d-5e6f7a8b9c0d"

	t.Run("generated_token_accepted", func(t *testing.T) {
		token, err := GenerateToken(user)
		testutil.AssertNoError(t, err)
		rec := get(r, "Bearer "+token)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if rec.Header().Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID header")
		}
	})

	t.Run("subject_becomes_user_id", func(t *testing.T) {
		claims, err := ParseToken(mustToken(t, user))
		testutil.AssertNoError(t, err)
		if claims.Subject != user.ID || claims.Email != user.Email {
			t.Errorf("unexpected claims %+v", claims)
		}
	})

	tests := []struct {
		name   string
		header func() string
	}{
		{"missing_header", func() string { return "" }},
		{"wrong_scheme", func() string { return "Token " + mustToken(t, user) }},
		{"garbage", func() string { return "Bearer not-a-jwt" }},
		{"wrong_key", func() string {
			return "Bearer " + sign(t, validClaims(cfg.TokenIssuer(), user.ID), "another-key")
		}},
		{"wrong_issuer", func() string {
			return "Bearer " + sign(t, validClaims("https://elsewhere/auth/v1", user.ID), cfg.SupabaseKey)
		}},
		{"expired", func() string {
			c := validClaims(cfg.TokenIssuer(), user.ID)
			c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
			return "Bearer " + sign(t, c, cfg.SupabaseKey)
		}},
		{"no_expiry", func() string {
			c := validClaims(cfg.TokenIssuer(), user.ID)
			c.ExpiresAt = nil
			return "Bearer " + sign(t, c, cfg.SupabaseKey)
		}},
		{"no_subject", func() string {
			return "Bearer " + sign(t, validClaims(cfg.TokenIssuer(), ""), cfg.SupabaseKey)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(r, tt.header())
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestRequestLoggingReusesRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	id := "0192f0c1-7e1a-7a3b-9c4d-5e6f7a8b9c0d"
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", id)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != id {
		t.Errorf("expected request id %s, got %s", id, got)
	}

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "<script>")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got == "<script>" || got == "" {
		t.Errorf("expected a fresh request id, got %q", got)
	}
}

func mustToken(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

func validClaims(issuer, subject string) *JWTClaims {
	now := time.Now()
	return &JWTClaims{
		Email: "a@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   subject,
		},
	}
}
