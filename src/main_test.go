package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB installs a sqlmock-backed gorm instance. Expectations are
// matched out of order because gorm interleaves preload queries.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("could not create sqlmock: %s", err.Error())
	}
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	if err != nil {
		t.Fatalf("could not open gorm over sqlmock: %s", err.Error())
	}
	mock.MatchExpectationsInOrder(false)
	return gdb, mock
}

func TestPingRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "\"ok\"", w.Body.String())
}

func TestMaintenanceMode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("MAINTENANCE_MODE", "true")

	router := setupRouter()
	maintenanceModeMiddleware(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, gridPath, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestExportDateValidator(t *testing.T) {
	v := validator.New()
	assert.NoError(t, v.RegisterValidation("exportdate", exportDateValidatorFunc))

	assert.NoError(t, v.Var("2026-08-27", "exportdate"))
	assert.Error(t, v.Var("27-08-2026", "exportdate"))
	assert.Error(t, v.Var("not-a-date", "exportdate"))
}
