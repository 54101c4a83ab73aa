package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/wb-go/wbf/ginext"

	"github.com/jimbobirecode/RPGC-Mail/internal/domain"
	"github.com/jimbobirecode/RPGC-Mail/internal/handler/dto"
)

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	RequestSlot(ctx context.Context, bookingID, date, teeTime, actor string) (*domain.Booking, error)
	Get(ctx context.Context, bookingID string) (*domain.Booking, error)
	List(ctx context.Context, status *domain.BookingStatus, guestEmail string) ([]*domain.Booking, error)
}

type AvailabilitySvc interface {
	ChangeStatus(ctx context.Context, bookingID string, target domain.BookingStatus, actor string) (*domain.StatusChangeResult, error)
	Confirm(ctx context.Context, bookingID, actor string) (*domain.StatusChangeResult, error)
	Release(ctx context.Context, bookingID, actor string, target domain.BookingStatus) (*domain.StatusChangeResult, error)
	CheckSlot(ctx context.Context, key domain.SlotKey, players int) (*domain.SlotAvailability, error)
	AvailableTimes(ctx context.Context, club, date string, minPlayers int) ([]*domain.TeeTime, error)
	DailyReport(ctx context.Context, club, from, to string) ([]*domain.DailyAvailability, error)
}

type Handler struct {
	bookingService      BookingSvc
	availabilityService AvailabilitySvc
	defaultClub         string
}

func NewHandler(bookingService BookingSvc, availabilityService AvailabilitySvc, defaultClub string) *Handler {
	return &Handler{
		bookingService:      bookingService,
		availabilityService: availabilityService,
		defaultClub:         defaultClub,
	}
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateBookingInput{
		GuestEmail: req.GuestEmail,
		GuestName:  req.GuestName,
		Club:       req.Club,
		Dates:      req.Dates,
		Players:    req.Players,
		Note:       req.Note,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	booking, err := h.bookingService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	var status *domain.BookingStatus
	if raw := c.Query("status"); raw != "" {
		st := domain.BookingStatus(raw)
		if !st.Valid() {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unknown status " + raw})
			return
		}
		status = &st
	}

	bookings, err := h.bookingService.List(c.Request.Context(), status, c.Query("email"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RequestSlot(c *ginext.Context) {
	var req dto.RequestSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.RequestSlot(c.Request.Context(), c.Param("id"), req.Date, req.TeeTime, req.Actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	var req dto.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.availabilityService.Confirm(c.Request.Context(), c.Param("id"), req.Actor)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatusChangeResponse(result))
}

func (h *Handler) ReleaseBooking(c *ginext.Context) {
	var req dto.ReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.availabilityService.Release(
		c.Request.Context(), c.Param("id"), req.Actor, domain.BookingStatus(req.Status),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatusChangeResponse(result))
}

func (h *Handler) ChangeBookingStatus(c *ginext.Context) {
	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.availabilityService.ChangeStatus(
		c.Request.Context(), c.Param("id"), domain.BookingStatus(req.Status), req.Actor,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatusChangeResponse(result))
}

// Availability

func (h *Handler) CheckAvailability(c *ginext.Context) {
	date := c.Query("date")
	teeTime := c.Query("time")
	if date == "" || teeTime == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date and time are required"})
		return
	}

	players, err := strconv.Atoi(c.DefaultQuery("players", "1"))
	if err != nil || players <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "players must be a positive integer"})
		return
	}

	key := domain.SlotKey{Club: h.club(c), Date: date, Time: teeTime}
	availability, err := h.availabilityService.CheckSlot(c.Request.Context(), key, players)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, availability)
}

func (h *Handler) ListAvailableTimes(c *ginext.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "date is required"})
		return
	}

	players, err := strconv.Atoi(c.DefaultQuery("players", "1"))
	if err != nil || players <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "players must be a positive integer"})
		return
	}

	times, err := h.availabilityService.AvailableTimes(c.Request.Context(), h.club(c), date, players)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.TeeTimeResponse, 0, len(times))
	for _, t := range times {
		resp = append(resp, dto.ToTeeTimeResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AvailabilityReport(c *ginext.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "from and to are required"})
		return
	}

	report, err := h.availabilityService.DailyReport(c.Request.Context(), h.club(c), from, to)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *Handler) club(c *ginext.Context) string {
	if club := c.Query("club"); club != "" {
		return club
	}
	return h.defaultClub
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrSlotNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrInsufficientCapacity),
		errors.Is(err, domain.ErrStatusConflict),
		errors.Is(err, domain.ErrAlreadyBooked):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrMissingSlotAssignment),
		errors.Is(err, domain.ErrDateBlocked):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
