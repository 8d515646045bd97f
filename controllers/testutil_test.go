package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ecotrack-api/config"
	"ecotrack-api/models"
	"ecotrack-api/routes"
)

const testJWTSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeMailer records sent mail instead of dialing SMTP.
type fakeMailer struct {
	mu            sync.Mutex
	verifications []string
	welcomes      []string
}

func (m *fakeMailer) SendVerificationEmail(email, name, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verifications = append(m.verifications, email)
	return nil
}

func (m *fakeMailer) SendWelcomeEmail(email, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.welcomes = append(m.welcomes, email)
	return nil
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB, *fakeMailer) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.EcoScore{}))

	cfg := &config.Config{
		JWTSecret:             testJWTSecret,
		ReferenceAverageScore: 4.8,
		StoreTimeout:          2 * time.Second,
	}

	mailer := &fakeMailer{}
	router := gin.New()
	routes.SetupRoutes(router, db, cfg, mailer)
	return router, db, mailer
}

func createVerifiedUser(t *testing.T, db *gorm.DB, id, email string) {
	t.Helper()
	require.NoError(t, db.Create(&models.User{
		ID:            id,
		Name:          "Test User",
		Email:         email,
		Password:      "$2a$10$dummy",
		EmailVerified: true,
	}).Error)
}

func signToken(t *testing.T, userID string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}
