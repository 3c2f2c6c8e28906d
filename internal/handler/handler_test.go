package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/VaccineBooker/internal/domain"
	"github.com/stpnv0/VaccineBooker/internal/export"
	"github.com/stpnv0/VaccineBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/VaccineBooker/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type testServices struct {
	vaccines  *hmocks.MockVaccineSvc
	bookings  *hmocks.MockBookingSvc
	users     *hmocks.MockUserSvc
	contact   *hmocks.MockContactSvc
	reminders *hmocks.MockReminderSvc
}

func setupRouter(t *testing.T) (testServices, http.Handler) {
	t.Helper()
	s := testServices{
		vaccines:  hmocks.NewMockVaccineSvc(t),
		bookings:  hmocks.NewMockBookingSvc(t),
		users:     hmocks.NewMockUserSvc(t),
		contact:   hmocks.NewMockContactSvc(t),
		reminders: hmocks.NewMockReminderSvc(t),
	}

	h := NewHandler(s.vaccines, s.bookings, s.users, s.contact, s.reminders)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/vaccines", h.ListVaccines)
		api.GET("/vaccines/:id", h.GetVaccine)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.DELETE("/bookings/:id", h.CancelBooking)
		api.POST("/bookings/:id/complete-dose", h.CompleteDose)
		api.POST("/users", h.CreateUser)
		api.GET("/users/email/:email", h.GetUserByEmail)
		api.GET("/users/:id/bookings", h.GetUserBookings)
		api.POST("/contact", h.SendContact)
	}
	admin := api.Group("/admin")
	{
		admin.GET("/vaccines", h.AdminListVaccines)
		admin.POST("/vaccines", h.CreateVaccine)
		admin.PUT("/vaccines/:id", h.UpdateVaccine)
		admin.DELETE("/vaccines/:id", h.DeleteVaccine)
		admin.GET("/bookings", h.AdminListBookings)
		admin.POST("/bookings", h.AdminCreateBooking)
		admin.GET("/bookings/export", h.ExportBookings)
		admin.PUT("/bookings/:id", h.UpdateBooking)
		admin.DELETE("/bookings/:id", h.DeleteBooking)
		admin.GET("/users", h.ListUsers)
		admin.POST("/users", h.AdminCreateUser)
		admin.POST("/reminders/run", h.RunReminders)
	}

	return s, r
}

func doJSON(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func sampleBooking() *domain.Booking {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:          uuid.New().String(),
		VaccineID:   uuid.New().String(),
		BookingDate: time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC),
		Status:      domain.BookingStatusPending,
		UserInfo:    domain.UserInfo{Name: "Alice", Email: "alice@example.com", Phone: "+100"},
		VaccineInfo: domain.VaccineInfo{Name: "MMR", Location: "City Clinic"},
		Doses: []domain.Dose{
			{Label: "Dose 1", ScheduledDate: time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC)},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// --- Vaccines ---

func TestHandler_ListVaccines_PassesQuery(t *testing.T) {
	s, r := setupRouter(t)

	want := domain.VaccineQuery{
		Search:    "hep",
		AgeGroup:  domain.AgeGroupAdult,
		SortBy:    domain.SortByPrice,
		SortOrder: domain.SortDesc,
	}
	s.vaccines.EXPECT().ListPublic(mock.Anything, want).Return([]*domain.Vaccine{
		{ID: "v1", Name: "Hepatitis B", AgeGroups: []domain.AgeGroup{domain.AgeGroupAdult}, IsActive: true},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/vaccines?search=hep&age_group=adult&sort_by=price&sort_order=desc", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.VaccineResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Hepatitis B", resp[0].Name)
	assert.Equal(t, []string{"adult"}, resp[0].AgeGroups)
}

func TestHandler_ListVaccines_BadSort(t *testing.T) {
	s, r := setupRouter(t)

	s.vaccines.EXPECT().ListPublic(mock.Anything, mock.Anything).
		Return(nil, domain.ErrInvalidRequest)

	w := doJSON(r, http.MethodGet, "/api/vaccines?sort_by=popularity", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetVaccine_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/vaccines/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetVaccine_NotFound(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.New().String()

	s.vaccines.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrVaccineNotFound)

	w := doJSON(r, http.MethodGet, "/api/vaccines/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateVaccine(t *testing.T) {
	s, r := setupRouter(t)

	s.vaccines.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateVaccineInput) bool {
		return in.Name == "MMR" &&
			in.Availability.Equal(time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)) &&
			in.AvailableSlots != nil && *in.AvailableSlots == 5 &&
			len(in.AgeGroups) == 1 && in.AgeGroups[0] == domain.AgeGroupChild
	})).Return(&domain.Vaccine{ID: "v1", Name: "MMR", AvailableSlots: 5, IsActive: true}, nil)

	w := doJSON(r, http.MethodPost, "/api/admin/vaccines", ginext.H{
		"name":            "MMR",
		"description":     "Measles, mumps and rubella",
		"dosage":          "2 doses",
		"availability":    "2026-11-01",
		"location":        "City Clinic",
		"available_slots": 5,
		"age_groups":      []string{"child"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateVaccine_BadDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/admin/vaccines", ginext.H{
		"name":         "MMR",
		"description":  "d",
		"dosage":       "2 doses",
		"availability": "next week",
		"location":     "City Clinic",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateVaccine_NameTaken(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.New().String()

	s.vaccines.EXPECT().Update(mock.Anything, id, mock.Anything).Return(nil, domain.ErrVaccineNameTaken)

	w := doJSON(r, http.MethodPut, "/api/admin/vaccines/"+id, ginext.H{"name": "BCG"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteVaccine(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.New().String()

	s.vaccines.EXPECT().Delete(mock.Anything, id).Return(nil)

	w := doJSON(r, http.MethodDelete, "/api/admin/vaccines/"+id, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

// --- Bookings ---

func bookingBody(vaccineID string) ginext.H {
	return ginext.H{
		"vaccine_id":   vaccineID,
		"user_info":    ginext.H{"name": "Alice", "email": "alice@example.com", "phone": "+100"},
		"booking_date": "2026-10-25",
		"doses": []ginext.H{
			{"label": "Dose 1", "scheduled_date": "2026-10-25"},
		},
	}
}

func TestHandler_CreateBooking_Pending(t *testing.T) {
	s, r := setupRouter(t)
	b := sampleBooking()

	s.bookings.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateBookingInput) bool {
		return in.Status == domain.BookingStatusPending &&
			in.VaccineID == b.VaccineID &&
			len(in.Doses) == 1 &&
			in.UserInfo.Email == "alice@example.com"
	})).Return(b, nil)

	w := doJSON(r, http.MethodPost, "/api/bookings", bookingBody(b.VaccineID))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, b.ID, resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "MMR", resp.Vaccine.Name)
	require.Len(t, resp.Doses, 1)
	assert.Equal(t, "2026-10-25", resp.Doses[0].ScheduledDate)
}

func TestHandler_AdminCreateBooking_Confirmed(t *testing.T) {
	s, r := setupRouter(t)
	b := sampleBooking()
	b.Status = domain.BookingStatusConfirmed

	s.bookings.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateBookingInput) bool {
		return in.Status == domain.BookingStatusConfirmed
	})).Return(b, nil)

	w := doJSON(r, http.MethodPost, "/api/admin/bookings", bookingBody(b.VaccineID))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateBooking_MissingVaccine(t *testing.T) {
	_, r := setupRouter(t)

	body := bookingBody("")
	w := doJSON(r, http.MethodPost, "/api/bookings", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_NoSlots(t *testing.T) {
	s, r := setupRouter(t)

	s.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrNoAvailableSlots)

	w := doJSON(r, http.MethodPost, "/api/bookings", bookingBody(uuid.New().String()))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateBooking_UnknownVaccine(t *testing.T) {
	s, r := setupRouter(t)

	s.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidReference)

	w := doJSON(r, http.MethodPost, "/api/bookings", bookingBody(uuid.New().String()))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CompleteDose(t *testing.T) {
	s, r := setupRouter(t)
	b := sampleBooking()
	b.Status = domain.BookingStatusCompleted
	b.Doses[0].Completed = true

	s.bookings.EXPECT().CompleteDose(mock.Anything, b.ID, 0).Return(b, nil)

	w := doJSON(r, http.MethodPost, "/api/bookings/"+b.ID+"/complete-dose", ginext.H{"dose_index": 0})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "completed", resp.Status)
}

func TestHandler_CompleteDose_MissingIndex(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/bookings/"+uuid.New().String()+"/complete-dose", ginext.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CompleteDose_OutOfRange(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.New().String()

	s.bookings.EXPECT().CompleteDose(mock.Anything, id, 7).Return(nil, domain.ErrInvalidRequest)

	w := doJSON(r, http.MethodPost, "/api/bookings/"+id+"/complete-dose", ginext.H{"dose_index": 7})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_NotFound(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.New().String()

	s.bookings.EXPECT().Cancel(mock.Anything, id).Return(nil, domain.ErrBookingNotFound)

	w := doJSON(r, http.MethodDelete, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CancelBooking_Completed(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.New().String()

	s.bookings.EXPECT().Cancel(mock.Anything, id).Return(nil, domain.ErrInvalidTransition)

	w := doJSON(r, http.MethodDelete, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateBooking(t *testing.T) {
	s, r := setupRouter(t)
	b := sampleBooking()
	b.Status = domain.BookingStatusConfirmed

	s.bookings.EXPECT().Update(mock.Anything, b.ID, mock.MatchedBy(func(in domain.UpdateBookingInput) bool {
		return in.Status != nil && *in.Status == domain.BookingStatusConfirmed &&
			in.Notes != nil && *in.Notes == "bring card" &&
			in.Doses == nil
	})).Return(b, nil)

	w := doJSON(r, http.MethodPut, "/api/admin/bookings/"+b.ID, ginext.H{
		"status": "confirmed",
		"notes":  "bring card",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_AdminListBookings(t *testing.T) {
	s, r := setupRouter(t)

	s.bookings.EXPECT().List(mock.Anything, domain.BookingFilter{UserEmail: "alice", Status: "confirmed"}).
		Return([]*domain.Booking{sampleBooking()}, nil)

	w := doJSON(r, http.MethodGet, "/api/admin/bookings?user_email=alice&status=confirmed", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_ExportBookings(t *testing.T) {
	s, r := setupRouter(t)

	s.bookings.EXPECT().Export(mock.Anything, domain.BookingFilter{}, mock.Anything).
		RunAndReturn(func(_ context.Context, _ domain.BookingFilter, w io.Writer) error {
			_, err := w.Write([]byte("PK-xlsx"))
			return err
		})

	w := doJSON(r, http.MethodGet, "/api/admin/bookings/export", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, export.ContentType, w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Disposition"), "attachment;"))
	assert.Equal(t, "PK-xlsx", w.Body.String())
}

func TestHandler_StorageErrorIsHidden(t *testing.T) {
	s, r := setupRouter(t)
	id := uuid.New().String()

	s.bookings.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrStorage)

	w := doJSON(r, http.MethodGet, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}

// --- Users ---

func TestHandler_CreateUser(t *testing.T) {
	s, r := setupRouter(t)
	chatID := int64(42)

	s.users.EXPECT().Create(mock.Anything, domain.CreateUserInput{
		Name:           "Alice",
		Email:          "alice@example.com",
		Role:           domain.RoleUser,
		TelegramChatID: &chatID,
	}).Return(&domain.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: domain.RoleUser}, nil)

	w := doJSON(r, http.MethodPost, "/api/users", ginext.H{
		"name":             "Alice",
		"email":            "alice@example.com",
		"telegram_chat_id": 42,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user", resp.Role)
}

func TestHandler_CreateUser_IgnoresRole(t *testing.T) {
	s, r := setupRouter(t)

	s.users.EXPECT().Create(mock.Anything, domain.CreateUserInput{
		Name:  "Mallory",
		Email: "mallory@example.com",
		Role:  domain.RoleUser,
	}).Return(&domain.User{ID: "u2", Name: "Mallory", Email: "mallory@example.com", Role: domain.RoleUser}, nil)

	w := doJSON(r, http.MethodPost, "/api/users", ginext.H{
		"name":  "Mallory",
		"email": "mallory@example.com",
		"role":  "admin",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "user", resp.Role)
}

func TestHandler_AdminCreateUser(t *testing.T) {
	s, r := setupRouter(t)

	s.users.EXPECT().Create(mock.Anything, domain.CreateUserInput{
		Name:  "Root",
		Email: "root@example.com",
		Role:  domain.RoleAdmin,
	}).Return(&domain.User{ID: "u3", Name: "Root", Email: "root@example.com", Role: domain.RoleAdmin}, nil)

	w := doJSON(r, http.MethodPost, "/api/admin/users", ginext.H{
		"name":  "Root",
		"email": "root@example.com",
		"role":  "admin",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin", resp.Role)

	w = doJSON(r, http.MethodPost, "/api/admin/users", ginext.H{
		"name":  "Root",
		"email": "root@example.com",
		"role":  "superuser",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_EmailTaken(t *testing.T) {
	s, r := setupRouter(t)

	s.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := doJSON(r, http.MethodPost, "/api/users", ginext.H{"name": "Alice", "email": "alice@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetUserByEmail_NotFound(t *testing.T) {
	s, r := setupRouter(t)

	s.users.EXPECT().GetByEmail(mock.Anything, "bob@example.com").Return(nil, domain.ErrUserNotFound)

	w := doJSON(r, http.MethodGet, "/api/users/email/bob@example.com", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetUserBookings(t *testing.T) {
	s, r := setupRouter(t)
	userID := uuid.New().String()

	s.bookings.EXPECT().ListByUser(mock.Anything, userID).Return(nil, nil)

	w := doJSON(r, http.MethodGet, "/api/users/"+userID+"/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

// --- Contact & reminders ---

func TestHandler_SendContact_MailerDown(t *testing.T) {
	s, r := setupRouter(t)

	s.contact.EXPECT().Send(mock.Anything, mock.Anything).Return(domain.ErrNotificationFailed)

	w := doJSON(r, http.MethodPost, "/api/contact", ginext.H{
		"name": "Alice", "email": "alice@example.com", "subject": "Hi", "message": "Hello",
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHandler_SendContact_MissingField(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/contact", ginext.H{"name": "Alice"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RunReminders(t *testing.T) {
	s, r := setupRouter(t)

	s.reminders.EXPECT().SendReminders(mock.Anything).Return(3, nil)

	w := doJSON(r, http.MethodPost, "/api/admin/reminders/run", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sent":3}`, w.Body.String())
}
