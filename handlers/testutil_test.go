package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"traffic-management-api/config"
	"traffic-management-api/middleware"
	"traffic-management-api/models"
	"traffic-management-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.TrafficSignal{},
		&models.SensorReading{},
		&models.Violation{},
		&models.Fine{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return db
}

// setupTestAPI wires the routes exactly as cmd/api does, backed by an
// in-memory database, a no-op cache, and in-process token validation.
func setupTestAPI(t *testing.T) (*gin.Engine, *gorm.DB, *services.AuthService) {
	t.Helper()

	db := setupTestDB(t)
	cache := services.NewNoopCache()
	authService := services.NewAuthService(config.JWTConfig{
		Secret:      "handler-test-secret",
		ExpiryHours: 1,
	})
	validator := middleware.NewLocalValidator(authService)

	authHandler := NewAuthHandler(db, authService)
	vehiclesHandler := NewVehiclesHandler(db)
	signalsHandler := NewSignalsHandler(db, cache)
	sensorsHandler := NewSensorsHandler(db, cache)
	violationsHandler := NewViolationsHandler(db, cache)
	finesHandler := NewFinesHandler(db)

	router := gin.New()
	router.POST("/signin", authHandler.SignIn)
	router.POST("/auth/validate", authHandler.Validate)

	protected := router.Group("/", middleware.RequireAuth(validator))
	{
		protected.POST("/vehicles/register", vehiclesHandler.Register)
		protected.GET("/vehicles/:id", vehiclesHandler.GetByID)
		protected.PUT("/signals/:id/state", signalsHandler.UpdateState)
		protected.DELETE("/signals/:id", signalsHandler.Delete)
		protected.GET("/sensors/:id/data", sensorsHandler.GetData)
		protected.PUT("/sensors/:id/adjust", sensorsHandler.AdjustCondition)
		protected.POST("/violations/generate", violationsHandler.Generate)
		protected.GET("/violations/:id", violationsHandler.GetByID)
		protected.GET("/violations", violationsHandler.List)
		protected.PUT("/fines/:id/pay", finesHandler.Pay)
	}

	return router, db, authService
}

func seedUser(t *testing.T, db *gorm.DB, auth *services.AuthService, email, password string) models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{EmailID: email, Password: hash}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func bearerToken(t *testing.T, auth *services.AuthService) string {
	t.Helper()

	token, err := auth.GenerateToken(1, "tester@test.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return "Bearer " + token
}

func jsonRequest(t *testing.T, router *gin.Engine, method, path, authHeader string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return body
}
