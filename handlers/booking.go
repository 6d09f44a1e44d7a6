package handlers

import (
	"errors"
	"net/http"

	"harithakarmabhoomi/models"
	"harithakarmabhoomi/services/booking"
	"harithakarmabhoomi/services/contact"
	"harithakarmabhoomi/services/voice"
	"harithakarmabhoomi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the citizen-facing booking endpoints, including
// the voice and call/SMS flows.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// CreateBookingHandler books a pickup from the regular form flow.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "no session")
		return
	}

	var input booking.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	input.Source = ""

	b, err := h.Svc.Create(c.Request.Context(), u.ID, input)
	if err != nil {
		if errors.Is(err, booking.ErrUnknownWasteType) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		h.Logger.Error("Failed to create booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", "please try again")
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ListMyBookingsHandler returns the caller's bookings.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "no session")
		return
	}
	bookings, err := h.Svc.ListForUser(c.Request.Context(), u.ID)
	if err != nil {
		h.Logger.Error("Failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", "please try again")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// VoiceExtractHandler runs the keyword extractor over a transcript and
// merges the result with anything extracted earlier in the conversation.
func (h *BookingHandler) VoiceExtractHandler(c *gin.Context) {
	var req struct {
		Transcript string                `json:"transcript"`
		Previous   voice.ExtractedFields `json:"previous"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if req.Transcript == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "transcript is required")
		return
	}

	fields := voice.Merge(req.Previous, voice.Extract(req.Transcript))
	c.JSON(http.StatusOK, gin.H{
		"fields":   fields,
		"complete": fields.Complete(),
		"greeting": voice.Greeting,
	})
}

// VoiceConfirmHandler books a pickup from extracted voice fields.
func (h *BookingHandler) VoiceConfirmHandler(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "no session")
		return
	}

	var fields voice.ExtractedFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	if !fields.Complete() {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "waste type and date must be extracted before confirming")
		return
	}

	b, err := h.Svc.Create(c.Request.Context(), u.ID, booking.CreateInput{
		WasteType: models.WasteType(fields.WasteType),
		Weight:    fields.Weight,
		Date:      fields.Date,
		Time:      fields.Time,
		Location:  fields.Location,
		Address:   u.HouseNo,
		Source:    "voice",
	})
	if err != nil {
		h.Logger.Error("Failed to create voice booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", "please try again")
		return
	}
	c.JSON(http.StatusCreated, b)
}

// ContactBookingHandler books a pickup via the call or SMS flow and
// returns the URI the client should launch.
func (h *BookingHandler) ContactBookingHandler(c *gin.Context) {
	u, ok := currentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "no session")
		return
	}

	source := c.Param("channel")
	if source != "call" && source != "sms" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "channel must be call or sms")
		return
	}

	var input booking.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}
	input.Source = source

	b, err := h.Svc.Create(c.Request.Context(), u.ID, input)
	if err != nil {
		if errors.Is(err, booking.ErrUnknownWasteType) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		h.Logger.Error("Failed to create contact booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", "please try again")
		return
	}

	uri := contact.CallURI()
	if source == "sms" {
		uri = contact.SMSURI(u, *b)
	}
	c.JSON(http.StatusCreated, gin.H{"booking": b, "uri": uri})
}
