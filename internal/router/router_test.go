package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stpnv0/VaccineBooker/internal/handler"
	hmocks "github.com/stpnv0/VaccineBooker/internal/handler/mocks"
	"github.com/stpnv0/VaccineBooker/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestInitRouter_AdminRequiresToken(t *testing.T) {
	vaccines := hmocks.NewMockVaccineSvc(t)
	h := handler.NewHandler(
		vaccines,
		hmocks.NewMockBookingSvc(t),
		hmocks.NewMockUserSvc(t),
		hmocks.NewMockContactSvc(t),
		hmocks.NewMockReminderSvc(t),
	)
	r := InitRouter("test", h, middleware.AdminAuth("secret"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/vaccines", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	vaccines.EXPECT().ListAll(mock.Anything, mock.Anything).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/vaccines", nil)
	req.Header.Set("Authorization", "Bearer secret")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInitRouter_HealthAndMetrics(t *testing.T) {
	h := handler.NewHandler(nil, nil, nil, nil, nil)
	r := InitRouter("test", h, middleware.AdminAuth(""))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
