package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbpkg "github.com/lumiere-salon/salon-scheduler/internal/db"
	infraRepo "github.com/lumiere-salon/salon-scheduler/internal/infra/repository"
	"github.com/lumiere-salon/salon-scheduler/internal/models"
	ucBooking "github.com/lumiere-salon/salon-scheduler/internal/usecase/booking"
)

func setupPublicRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := dbpkg.Open(":memory:")
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(
		&models.Client{},
		&models.Appointment{},
	))

	repo := infraRepo.NewBookingGormRepository(gdb)
	h := NewPublicHandler(
		ucBooking.NewCreateBooking(repo),
		ucBooking.NewGetAvailability(repo),
	)

	r := gin.New()
	r.GET("/api/availability", h.Availability)
	r.POST("/api/appointments", h.CreateAppointment)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bookingBody() map[string]any {
	return map[string]any{
		"name":    "Ana Silva",
		"phone":   "(11) 98888-7777",
		"service": "Corte & Estilo",
		"date":    "2025-03-10",
		"time":    "09:00",
	}
}

func TestAvailabilityRequiresDate(t *testing.T) {
	r := setupPublicRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/availability", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvailabilityReflectsBookings(t *testing.T) {
	r := setupPublicRouter(t)

	w := postJSON(r, "/api/appointments", bookingBody())
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/availability?date=2025-03-10", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AvailableSlots []string `json:"availableSlots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Len(t, resp.AvailableSlots, 9)
	assert.NotContains(t, resp.AvailableSlots, "09:00")
}

func TestCreateAppointment(t *testing.T) {
	r := setupPublicRouter(t)

	w := postJSON(r, "/api/appointments", bookingBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Message       string `json:"message"`
		AppointmentID uint   `json:"appointmentId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "Agendamento realizado com sucesso!", resp.Message)
	assert.NotZero(t, resp.AppointmentID)
}

func TestCreateAppointmentSlotConflict(t *testing.T) {
	r := setupPublicRouter(t)

	w := postJSON(r, "/api/appointments", bookingBody())
	require.Equal(t, http.StatusCreated, w.Code)

	body := bookingBody()
	body["name"] = "Beatriz Costa"
	body["phone"] = "21977776666"

	w = postJSON(r, "/api/appointments", body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateAppointmentInvalidPhone(t *testing.T) {
	r := setupPublicRouter(t)

	body := bookingBody()
	body["phone"] = "119999999"

	w := postJSON(r, "/api/appointments", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAppointmentMissingFields(t *testing.T) {
	r := setupPublicRouter(t)

	body := bookingBody()
	delete(body, "service")

	w := postJSON(r, "/api/appointments", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
