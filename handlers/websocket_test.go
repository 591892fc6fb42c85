package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"traffic-management-api/config"
	"traffic-management-api/services"

	"github.com/gin-gonic/gin"
)

func setupLiveRouter() (*gin.Engine, *services.AuthService) {
	authService := services.NewAuthService(config.JWTConfig{
		Secret:      "live-test-secret",
		ExpiryHours: 1,
	})
	router := gin.New()
	router.GET("/signals/live", SignalsLiveWebSocket(services.NewNoopCache(), authService))
	return router, authService
}

func TestSignalsLiveMissingToken(t *testing.T) {
	router, _ := setupLiveRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/signals/live", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401, body: %s", w.Code, w.Body.String())
	}
}

func TestSignalsLiveInvalidToken(t *testing.T) {
	router, _ := setupLiveRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/signals/live?token=not.a.token", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401, body: %s", w.Code, w.Body.String())
	}
}

func TestSignalsLiveExpiredToken(t *testing.T) {
	router, _ := setupLiveRouter()

	expired := services.NewAuthService(config.JWTConfig{Secret: "live-test-secret", ExpiryHours: -1})
	token, err := expired.GenerateToken(1, "viewer@test.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/signals/live?token="+token, nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401, body: %s", w.Code, w.Body.String())
	}
}

func TestSignalsLiveUnavailableWithoutRedis(t *testing.T) {
	router, authService := setupLiveRouter()

	token, err := authService.GenerateToken(1, "viewer@test.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/signals/live?token="+token, nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503, body: %s", w.Code, w.Body.String())
	}
}
