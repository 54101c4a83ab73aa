package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/jimbobirecode/RPGC-Mail/internal/domain"
	"github.com/jimbobirecode/RPGC-Mail/internal/handler/dto"
	hmocks "github.com/jimbobirecode/RPGC-Mail/internal/handler/mocks"
)

func setupRouter(t *testing.T) (*hmocks.MockBookingSvc, *hmocks.MockAvailabilitySvc, http.Handler) {
	t.Helper()
	bookingSvc := hmocks.NewMockBookingSvc(t)
	availabilitySvc := hmocks.NewMockAvailabilitySvc(t)

	h := NewHandler(bookingSvc, availabilitySvc, "royalportrush")

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/request", h.RequestSlot)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/release", h.ReleaseBooking)
		api.POST("/bookings/:id/status", h.ChangeBookingStatus)
		api.GET("/availability", h.CheckAvailability)
		api.GET("/availability/times", h.ListAvailableTimes)
		api.GET("/availability/report", h.AvailabilityReport)
	}

	return bookingSvc, availabilitySvc, r
}

func sampleBooking(status domain.BookingStatus) *domain.Booking {
	now := time.Now().UTC()
	return &domain.Booking{
		BookingID:  "RP-20251120-AAAA0001",
		GuestEmail: "guest@example.com",
		GuestName:  "J. Smith",
		Club:       "royalportrush",
		Dates:      []string{"2025-11-24"},
		Players:    4,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(sampleBooking(domain.BookingStatusInquiry), nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		GuestEmail: "guest@example.com",
		GuestName:  "J. Smith",
		Dates:      []string{"2025-11-24"},
		Players:    4,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "RP-20251120-AAAA0001", resp.BookingID)
	assert.Equal(t, string(domain.BookingStatusInquiry), resp.Status)
}

func TestHandler_CreateBooking_BindError(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte(`{"players": 4}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Get(mock.Anything, "RP-MISSING").Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/RP-MISSING", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListBookings_StatusFilter(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	confirmed := domain.BookingStatusConfirmed
	bookingSvc.EXPECT().List(mock.Anything, &confirmed, "").
		Return([]*domain.Booking{sampleBooking(confirmed)}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?status=Confirmed", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Confirmed", resp[0].Status)
}

func TestHandler_ListBookings_UnknownStatus(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?status=Lost", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RequestSlot_Success(t *testing.T) {
	bookingSvc, _, r := setupRouter(t)

	booking := sampleBooking(domain.BookingStatusRequested)
	bookingSvc.EXPECT().
		RequestSlot(mock.Anything, booking.BookingID, "2025-11-24", "10:00", "guest").
		Return(booking, nil)

	body, _ := json.Marshal(dto.RequestSlotRequest{Date: "2025-11-24", TeeTime: "10:00", Actor: "guest"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+booking.BookingID+"/request", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ConfirmBooking_Success(t *testing.T) {
	_, availabilitySvc, r := setupRouter(t)

	availabilitySvc.EXPECT().Confirm(mock.Anything, "RP-1", "staff").Return(&domain.StatusChangeResult{
		BookingID:      "RP-1",
		From:           domain.BookingStatusRequested,
		To:             domain.BookingStatusConfirmed,
		Effect:         domain.SlotEffectReserve,
		AvailableSlots: 1,
	}, nil)

	body, _ := json.Marshal(dto.ConfirmRequest{Actor: "staff"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/RP-1/confirm", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.StatusChangeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Confirmed", resp.To)
	assert.Equal(t, 1, resp.AvailableSlots)
	assert.Empty(t, resp.Warning)
}

func TestHandler_ConfirmBooking_Conflict(t *testing.T) {
	_, availabilitySvc, r := setupRouter(t)

	availabilitySvc.EXPECT().Confirm(mock.Anything, "RP-1", "staff").
		Return(nil, domain.ErrInsufficientCapacity)

	body, _ := json.Marshal(dto.ConfirmRequest{Actor: "staff"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/RP-1/confirm", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ReleaseBooking_Warning(t *testing.T) {
	_, availabilitySvc, r := setupRouter(t)

	availabilitySvc.EXPECT().
		Release(mock.Anything, "RP-1", "staff", domain.BookingStatusCancelled).
		Return(&domain.StatusChangeResult{
			BookingID:   "RP-1",
			From:        domain.BookingStatusConfirmed,
			To:          domain.BookingStatusCancelled,
			Effect:      domain.SlotEffectRelease,
			SlotMissing: true,
		}, nil)

	body, _ := json.Marshal(dto.ReleaseRequest{Actor: "staff", Status: "Cancelled"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/RP-1/release", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.StatusChangeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Warning)
}

func TestHandler_ChangeBookingStatus_InvalidTransition(t *testing.T) {
	_, availabilitySvc, r := setupRouter(t)

	availabilitySvc.EXPECT().
		ChangeStatus(mock.Anything, "RP-1", domain.BookingStatusBooked, "staff").
		Return(nil, domain.ErrInvalidTransition)

	body, _ := json.Marshal(dto.ChangeStatusRequest{Actor: "staff", Status: "Booked"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/RP-1/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Availability ---

func TestHandler_CheckAvailability_Success(t *testing.T) {
	_, availabilitySvc, r := setupRouter(t)

	key := domain.SlotKey{Club: "royalportrush", Date: "2025-11-24", Time: "10:00"}
	availabilitySvc.EXPECT().CheckSlot(mock.Anything, key, 3).Return(&domain.SlotAvailability{
		Key: key, Exists: true, MaxPlayers: 4, AvailableSlots: 4,
		Bookable: true, CanAccommodate: true, RequestedPlayers: 3,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2025-11-24&time=10:00&players=3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CheckAvailability_MissingParams(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2025-11-24", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckAvailability_BadPlayers(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2025-11-24&time=10:00&players=zero", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListAvailableTimes_BlockedDate(t *testing.T) {
	_, availabilitySvc, r := setupRouter(t)

	availabilitySvc.EXPECT().
		AvailableTimes(mock.Anything, "royalportrush", "2025-11-26", 1).
		Return(nil, domain.ErrDateBlocked)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability/times?date=2025-11-26", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListAvailableTimes_ClubOverride(t *testing.T) {
	_, availabilitySvc, r := setupRouter(t)

	times := []*domain.TeeTime{
		{Club: "valley", Date: "2025-11-24", Time: "09:00", MaxPlayers: 4, AvailableSlots: 4},
	}
	availabilitySvc.EXPECT().
		AvailableTimes(mock.Anything, "valley", "2025-11-24", 2).
		Return(times, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability/times?date=2025-11-24&players=2&club=valley", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.TeeTimeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "09:00", resp[0].Time)
}

func TestHandler_AvailabilityReport_Success(t *testing.T) {
	_, availabilitySvc, r := setupRouter(t)

	report := []*domain.DailyAvailability{
		{Date: "2025-11-24", Day: "Monday", SlotCount: 10, TotalCapacity: 40, TotalAvailable: 12, TotalBooked: 28, UtilizationPct: 70.0},
	}
	availabilitySvc.EXPECT().
		DailyReport(mock.Anything, "royalportrush", "2025-11-24", "2025-11-30").
		Return(report, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability/report?from=2025-11-24&to=2025-11-30", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_AvailabilityReport_MissingRange(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability/report?from=2025-11-24", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
