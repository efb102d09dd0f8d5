package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pi-verify.backend/internal/infrastructure/models"
	"pi-verify.backend/internal/infrastructure/repositories"
	"pi-verify.backend/internal/interfaces/http/handlers"
	"pi-verify.backend/internal/interfaces/http/middleware"
	"pi-verify.backend/internal/usecases"
)

func newTestHandler(t *testing.T) *handlers.VerificationHandler {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.BusinessVerification{}))

	uc := usecases.NewVerificationUsecase(
		repositories.NewVerificationRepository(db),
		usecases.NewHashMetricsProvider(),
	)
	return handlers.NewVerificationHandler(uc)
}

func TestRegisterHealthRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerHealthRoute(r)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "pi-verify-backend", body["service"])
}

func TestRegisterMetricsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerMetricsRoute(r)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRegisterAPIV1Routes_DemoProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerAPIV1Routes(r, routeDeps{verificationHandler: newTestHandler(t)})

	body, _ := json.Marshal(map[string]string{
		"walletAddress":  "GBRPYHIL2CI3FNQ4BXLFMNDLFJUNPU2HY3ZMFSHONUCEOASW7QC7OX2H",
		"businessName":   "Acme Corporation",
		"externalUserId": "demo_user_1",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/verify-business", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"verificationStatus":"approved"`)
}

func TestRegisterAPIV1Routes_AuthenticatedProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	registerAPIV1Routes(r, routeDeps{
		verificationHandler: newTestHandler(t),
		authMiddleware:      middleware.ServiceKeyAuthMiddleware("secret-key"),
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/verify-business", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/verifications", nil)
	req.Header.Set(middleware.APIKeyHeader, "secret-key")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
