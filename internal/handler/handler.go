package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/VaccineBooker/internal/domain"
	"github.com/stpnv0/VaccineBooker/internal/export"
	"github.com/stpnv0/VaccineBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type VaccineSvc interface {
	Create(ctx context.Context, in domain.CreateVaccineInput) (*domain.Vaccine, error)
	GetByID(ctx context.Context, id string) (*domain.Vaccine, error)
	Update(ctx context.Context, id string, in domain.UpdateVaccineInput) (*domain.Vaccine, error)
	Delete(ctx context.Context, id string) error
	ListPublic(ctx context.Context, q domain.VaccineQuery) ([]*domain.Vaccine, error)
	ListAll(ctx context.Context, q domain.VaccineQuery) ([]*domain.Vaccine, error)
}

type BookingSvc interface {
	Create(ctx context.Context, in domain.CreateBookingInput) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
	CompleteDose(ctx context.Context, id string, index int) (*domain.Booking, error)
	Update(ctx context.Context, id string, in domain.UpdateBookingInput) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	Export(ctx context.Context, filter domain.BookingFilter, w io.Writer) error
}

type UserSvc interface {
	Create(ctx context.Context, in domain.CreateUserInput) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type ContactSvc interface {
	Send(ctx context.Context, msg domain.ContactMessage) error
}

type ReminderSvc interface {
	SendReminders(ctx context.Context) (int, error)
}

type Handler struct {
	vaccineService  VaccineSvc
	bookingService  BookingSvc
	userService     UserSvc
	contactService  ContactSvc
	reminderService ReminderSvc
}

func NewHandler(
	vaccineService VaccineSvc,
	bookingService BookingSvc,
	userService UserSvc,
	contactService ContactSvc,
	reminderService ReminderSvc,
) *Handler {
	return &Handler{
		vaccineService:  vaccineService,
		bookingService:  bookingService,
		userService:     userService,
		contactService:  contactService,
		reminderService: reminderService,
	}
}

// Vaccines

func (h *Handler) ListVaccines(c *ginext.Context) {
	vaccines, err := h.vaccineService.ListPublic(c.Request.Context(), vaccineQuery(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVaccineResponses(vaccines))
}

func (h *Handler) AdminListVaccines(c *ginext.Context) {
	vaccines, err := h.vaccineService.ListAll(c.Request.Context(), vaccineQuery(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVaccineResponses(vaccines))
}

func (h *Handler) GetVaccine(c *ginext.Context) {
	id, ok := pathID(c, "vaccine")
	if !ok {
		return
	}

	vaccine, err := h.vaccineService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVaccineResponse(vaccine))
}

func (h *Handler) CreateVaccine(c *ginext.Context) {
	var req dto.CreateVaccineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	vaccine, err := h.vaccineService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVaccineResponse(vaccine))
}

func (h *Handler) UpdateVaccine(c *ginext.Context) {
	id, ok := pathID(c, "vaccine")
	if !ok {
		return
	}

	var req dto.UpdateVaccineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	vaccine, err := h.vaccineService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVaccineResponse(vaccine))
}

func (h *Handler) DeleteVaccine(c *ginext.Context) {
	id, ok := pathID(c, "vaccine")
	if !ok {
		return
	}

	if err := h.vaccineService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	h.createBooking(c, domain.BookingStatusPending)
}

// AdminCreateBooking records a booking taken by staff; it starts confirmed.
func (h *Handler) AdminCreateBooking(c *ginext.Context) {
	h.createBooking(c, domain.BookingStatusConfirmed)
}

func (h *Handler) createBooking(c *ginext.Context, status domain.BookingStatus) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	input.Status = status

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CompleteDose(c *ginext.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	var req dto.CompleteDoseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.CompleteDose(c.Request.Context(), id, *req.DoseIndex)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) UpdateBooking(c *ginext.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) DeleteBooking(c *ginext.Context) {
	id, ok := pathID(c, "booking")
	if !ok {
		return
	}

	if err := h.bookingService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) AdminListBookings(c *ginext.Context) {
	bookings, err := h.bookingService.List(c.Request.Context(), bookingFilter(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *Handler) ExportBookings(c *ginext.Context) {
	var buf bytes.Buffer
	if err := h.bookingService.Export(c.Request.Context(), bookingFilter(c), &buf); err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.FileName(time.Now().UTC())))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

func (h *Handler) GetUserBookings(c *ginext.Context) {
	userID, ok := pathID(c, "user")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

// Users

// CreateUser is the public registration; the role is always user.
func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	h.createUser(c, req, domain.RoleUser)
}

func (h *Handler) AdminCreateUser(c *ginext.Context) {
	var req dto.AdminCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	h.createUser(c, req.CreateUserRequest, domain.Role(req.Role))
}

func (h *Handler) createUser(c *ginext.Context, req dto.CreateUserRequest, role domain.Role) {
	input := domain.CreateUserInput{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Role:           role,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUserByEmail(c *ginext.Context) {
	user, err := h.userService.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

// Contact & reminders

func (h *Handler) SendContact(c *ginext.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	msg := domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.contactService.Send(c.Request.Context(), msg); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "sent"})
}

func (h *Handler) RunReminders(c *ginext.Context) {
	sent, err := h.reminderService.SendReminders(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RemindersResponse{Sent: sent})
}

func vaccineQuery(c *ginext.Context) domain.VaccineQuery {
	return domain.VaccineQuery{
		Search:    c.Query("search"),
		AgeGroup:  domain.AgeGroup(c.Query("age_group")),
		SortBy:    domain.SortField(c.Query("sort_by")),
		SortOrder: domain.SortOrder(c.Query("sort_order")),
	}
}

func bookingFilter(c *ginext.Context) domain.BookingFilter {
	return domain.BookingFilter{
		UserEmail: c.Query("user_email"),
		Status:    domain.BookingStatus(c.Query("status")),
	}
}

func pathID(c *ginext.Context, kind string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + kind + " id"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrVaccineNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNoAvailableSlots),
		errors.Is(err, domain.ErrVaccineInactive),
		errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrInvalidReference),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrVaccineNameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotificationFailed):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "failed to send message, try again later"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
