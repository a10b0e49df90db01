package handlers

import (
	"errors"
	"net/http"

	"ecoskip/middleware"
	"ecoskip/models"
	"ecoskip/services/booking"
	"ecoskip/services/catalog"
	"ecoskip/services/session"
	"ecoskip/services/wizard"
	"ecoskip/utils"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the booking wizard under /api/booking-sessions.
type SessionHandler struct {
	Service session.BookingSessionService
}

func NewSessionHandler(s session.BookingSessionService) *SessionHandler {
	return &SessionHandler{Service: s}
}

// wizardError maps session, wizard and catalog errors to a status code.
func wizardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking session not found", "")
	case errors.Is(err, session.ErrNotAtPayment):
		utils.JSONError(c, http.StatusConflict, "Booking session is not ready to submit", err.Error())
	case errors.Is(err, wizard.ErrStepIncomplete),
		errors.Is(err, wizard.ErrLastStep),
		errors.Is(err, wizard.ErrDateTooEarly),
		errors.Is(err, wizard.ErrSkipForbidden),
		errors.Is(err, wizard.ErrUnknownPlacement),
		errors.Is(err, wizard.ErrUnknownCharge),
		errors.Is(err, wizard.ErrInvalidWasteType),
		errors.Is(err, catalog.ErrSkipNotFound),
		errors.Is(err, catalog.ErrSkipNotSelectable),
		errors.Is(err, catalog.ErrUnknownWasteType),
		errors.Is(err, session.ErrInvalidDate),
		errors.Is(err, booking.ErrInvalidBooking):
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking step", err.Error())
	default:
		serverError(c, err)
	}
}

func (h *SessionHandler) respond(c *gin.Context, v *session.View, err error) {
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": v})
}

// CreateSessionHandler handles POST /api/booking-sessions.
func (h *SessionHandler) CreateSessionHandler(c *gin.Context) {
	v, err := h.Service.Create(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"sessionId": v.SessionID, "session": v})
}

func (h *SessionHandler) GetSessionHandler(c *gin.Context) {
	v, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	h.respond(c, v, err)
}

func (h *SessionHandler) SetAddressHandler(c *gin.Context) {
	var a models.Address
	if err := c.ShouldBindJSON(&a); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid address", err.Error())
		return
	}
	v, err := h.Service.SetAddress(c.Request.Context(), c.Param("id"), a)
	h.respond(c, v, err)
}

func (h *SessionHandler) ToggleWasteTypeHandler(c *gin.Context) {
	v, err := h.Service.ToggleWasteType(c.Request.Context(), c.Param("id"), c.Param("type"))
	h.respond(c, v, err)
}

func (h *SessionHandler) SelectSkipHandler(c *gin.Context) {
	var req struct {
		SkipID int `json:"skipId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid skip selection", err.Error())
		return
	}
	v, err := h.Service.SelectSkip(c.Request.Context(), c.Param("id"), req.SkipID)
	h.respond(c, v, err)
}

// SkipOptionsHandler handles GET /api/booking-sessions/:id/skips?road=&heavy=.
func (h *SessionHandler) SkipOptionsHandler(c *gin.Context) {
	f, ok := parseSkipFilter(c)
	if !ok {
		return
	}
	skips, err := h.Service.SkipOptions(c.Request.Context(), c.Param("id"), f)
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"skips": skips})
}

func (h *SessionHandler) SetPlacementHandler(c *gin.Context) {
	var req struct {
		Placement models.Placement `json:"placement" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid placement", err.Error())
		return
	}
	v, err := h.Service.SetPlacement(c.Request.Context(), c.Param("id"), req.Placement)
	h.respond(c, v, err)
}

func (h *SessionHandler) SelectDeliveryDateHandler(c *gin.Context) {
	var req struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid delivery date", err.Error())
		return
	}
	v, err := h.Service.SelectDeliveryDate(c.Request.Context(), c.Param("id"), req.Date)
	h.respond(c, v, err)
}

func (h *SessionHandler) RemoveChargeHandler(c *gin.Context) {
	v, err := h.Service.RemoveCharge(c.Request.Context(), c.Param("id"), wizard.Charge(c.Param("charge")))
	h.respond(c, v, err)
}

func (h *SessionHandler) ContinueHandler(c *gin.Context) {
	v, err := h.Service.Continue(c.Request.Context(), c.Param("id"))
	h.respond(c, v, err)
}

func (h *SessionHandler) BackHandler(c *gin.Context) {
	v, err := h.Service.Back(c.Request.Context(), c.Param("id"))
	h.respond(c, v, err)
}

func (h *SessionHandler) ResetHandler(c *gin.Context) {
	v, err := h.Service.Reset(c.Request.Context(), c.Param("id"))
	h.respond(c, v, err)
}

// CalendarHandler handles GET /api/booking-sessions/:id/calendar?month=.
func (h *SessionHandler) CalendarHandler(c *gin.Context) {
	view, err := h.Service.Calendar(c.Request.Context(), c.Param("id"), c.Query("month"))
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"calendar": view})
}

// SubmitSessionHandler turns a completed session into a booking for the caller.
func (h *SessionHandler) SubmitSessionHandler(c *gin.Context) {
	b, err := h.Service.Submit(c.Request.Context(), c.Param("id"), middleware.CurrentUserID(c))
	if err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Booking created successfully", "booking": b})
}

func (h *SessionHandler) CancelSessionHandler(c *gin.Context) {
	if err := h.Service.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		wizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking session cancelled"})
}
