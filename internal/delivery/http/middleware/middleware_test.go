package middleware

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nextcare-api/config"
	"nextcare-api/internal/domain/entity"
	"nextcare-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestAuthenticate(t *testing.T) {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	other := jwt.NewJWTService(config.JWTConfig{Secret: "other-secret", Expiry: time.Hour})
	mw := NewAuthMiddleware(jwtService)

	userID := uuid.New()
	valid, err := jwtService.GenerateToken(userID, "pat@example.com", entity.RolePatient)
	require.NoError(t, err)
	forged, err := other.GenerateToken(userID, "pat@example.com", entity.RoleAdmin)
	require.NoError(t, err)

	var seen entity.Identity
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetIdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + forged, http.StatusUnauthorized},
		{"valid", "Bearer " + valid, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}

	assert.Equal(t, userID, seen.UserID)
	assert.Equal(t, entity.RolePatient, seen.Role)
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(okHandler())

	serve := func(identity *entity.Identity) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if identity != nil {
			req = req.WithContext(WithIdentity(req.Context(), *identity))
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	rec := serve(nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(&entity.Identity{UserID: uuid.New(), Role: entity.RolePatient})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Not authorized as admin", decodeMessage(t, rec))

	rec = serve(&entity.Identity{UserID: uuid.New(), Role: entity.RoleAdmin})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORS(t *testing.T) {
	restricted := NewCORSMiddleware([]string{"https://app.nextcare.test"}).Handle(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/appointments", nil)
	req.Header.Set("Origin", "https://app.nextcare.test")
	rec := httptest.NewRecorder()
	restricted.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://app.nextcare.test", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	req.Header.Set("Origin", "https://evil.test")
	rec = httptest.NewRecorder()
	restricted.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	open := NewCORSMiddleware([]string{"*"}).Handle(okHandler())
	rec = httptest.NewRecorder()
	open.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	handler := Recovery(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Something went wrong", decodeMessage(t, rec))
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestRequestLoggerRecordsStatus(t *testing.T) {
	log, hook := logtest.NewNullLogger()

	handler := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/doctors/x", nil))

	entries := hook.AllEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, http.StatusNotFound, entries[0].Data["status"])
	assert.Equal(t, "/api/doctors/x", entries[0].Data["path"])
	assert.Equal(t, http.MethodGet, entries[0].Data["method"])
}

func TestRateLimiter(t *testing.T) {
	assert.Nil(t, NewRateLimiter(config.RateLimitConfig{}))

	limiter := NewRateLimiter(config.RateLimitConfig{LoginPerSecond: 0.001, LoginBurst: 2})
	handler := limiter.Handle(okHandler())

	serve := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, serve("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, serve("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, serve("10.0.0.1:1002"))
	assert.Equal(t, http.StatusOK, serve("10.0.0.2:1000"))

	var nilLimiter *RateLimiter
	rec := httptest.NewRecorder()
	nilLimiter.Handle(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func (l *RateLimiter) tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

func TestRateLimiter_IgnoresForwardedForByDefault(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimitConfig{LoginPerSecond: 0.001, LoginBurst: 1})
	handler := limiter.Handle(okHandler())

	allowed := 0
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "10.0.0.9:4000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code == http.StatusOK {
			allowed++
		}
	}

	assert.Equal(t, 1, allowed)
	assert.Equal(t, 1, limiter.tracked())
}

func TestRateLimiter_TrustedProxyUsesForwardedFor(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimitConfig{LoginPerSecond: 0.001, LoginBurst: 1, TrustProxy: true})
	handler := limiter.Handle(okHandler())

	serve := func(forwarded string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "10.0.0.1:4000"
		req.Header.Set("X-Forwarded-For", forwarded)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, serve("198.51.100.1, 10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, serve("198.51.100.1"))
	assert.Equal(t, http.StatusOK, serve("198.51.100.2"))
}

func TestRateLimiter_ForgetsIdleClients(t *testing.T) {
	limiter := NewRateLimiter(config.RateLimitConfig{LoginPerSecond: 0.001, LoginBurst: 1})
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 20; i++ {
		limiter.limiterFor(fmt.Sprintf("192.0.2.%d", i))
	}
	assert.Equal(t, 20, limiter.tracked())

	now = now.Add(clientIdleTimeout + time.Second)
	limiter.limiterFor("192.0.2.200")
	assert.Equal(t, 1, limiter.tracked())
}
