// File: handlers/admin.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	bookingRepo "harithakarmabhoomi/database/repository/booking"
	complaintRepo "harithakarmabhoomi/database/repository/complaint"
	exchangeRepo "harithakarmabhoomi/database/repository/exchange"
	"harithakarmabhoomi/models"
	"harithakarmabhoomi/services/booking"
	"harithakarmabhoomi/services/complaint"
	"harithakarmabhoomi/services/exchange"
	"harithakarmabhoomi/services/user"
	"harithakarmabhoomi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates the administrative console operations.
type AdminHandler struct {
	Users      user.UserService
	Bookings   booking.BookingService
	Complaints complaint.ComplaintService
	Exchanges  exchange.ExchangeService

	BookingRepo   bookingRepo.BookingRepository
	ComplaintRepo complaintRepo.ComplaintRepository
	ExchangeRepo  exchangeRepo.ExchangeRepository
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(us user.UserService, bs booking.BookingService, cs complaint.ComplaintService, es exchange.ExchangeService,
	br bookingRepo.BookingRepository, cr complaintRepo.ComplaintRepository, er exchangeRepo.ExchangeRepository) *AdminHandler {
	return &AdminHandler{
		Users: us, Bookings: bs, Complaints: cs, Exchanges: es,
		BookingRepo: br, ComplaintRepo: cr, ExchangeRepo: er,
	}
}

// OverviewHandler aggregates the dashboard statistics.
func (ah *AdminHandler) OverviewHandler(c *gin.Context) {
	ctx := c.Request.Context()

	users, err := ah.Users.GetAllUsers(ctx)
	if err != nil {
		zap.L().Error("Overview: failed to fetch users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load overview", "please try again")
		return
	}
	bookingCounts, err := ah.Bookings.StatusCounts(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load overview", "please try again")
		return
	}
	complaintCounts, err := ah.Complaints.StatusCounts(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load overview", "please try again")
		return
	}
	exchangeCounts, err := ah.Exchanges.StatusCounts(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load overview", "please try again")
		return
	}
	awarded, err := ah.Exchanges.TotalApprovedCredits(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load overview", "please try again")
		return
	}
	allComplaints, err := ah.ComplaintRepo.ListAll(ctx)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load overview", "please try again")
		return
	}

	totalBookings := 0
	for _, n := range bookingCounts {
		totalBookings += n
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":           len(users),
		"totalBookings":        totalBookings,
		"pendingComplaints":    complaintCounts[models.ComplaintPending],
		"activeCollections":    bookingCounts[models.BookingInProgress],
		"completedBookings":    bookingCounts[models.BookingCompleted],
		"bookingCounts":        bookingCounts,
		"complaintCounts":      complaintCounts,
		"exchangeCounts":       exchangeCounts,
		"totalAwardedCredits":  awarded,
		"complaintsByCategory": complaint.CountByCategory(allComplaints),
	})
}

// GetAllUsersHandler returns all users with their per-collection counts,
// optionally narrowed by a search term over name, aadhar and phone.
func (ah *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	ctx := c.Request.Context()
	users, err := ah.Users.GetAllUsers(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch all users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch users", "please try again")
		return
	}

	search := c.Query("search")
	type userRow struct {
		models.User
		BookingCount   int `json:"bookingCount"`
		ComplaintCount int `json:"complaintCount"`
		ExchangeCount  int `json:"exchangeCount"`
	}
	rows := make([]userRow, 0, len(users))
	for _, u := range users {
		if search != "" && !matchesUser(u, search) {
			continue
		}
		bookings, _ := ah.BookingRepo.ListByUser(ctx, u.ID)
		complaints, _ := ah.ComplaintRepo.ListByUser(ctx, u.ID)
		exchanges, _ := ah.ExchangeRepo.ListByUser(ctx, u.ID)
		rows = append(rows, userRow{
			User:           u,
			BookingCount:   len(bookings),
			ComplaintCount: len(complaints),
			ExchangeCount:  len(exchanges),
		})
	}
	c.JSON(http.StatusOK, rows)
}

// ListBookingsHandler returns every booking joined with its owner,
// filtered by the optional search/status query parameters.
func (ah *AdminHandler) ListBookingsHandler(c *gin.Context) {
	all, err := ah.Bookings.ListAll(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", "please try again")
		return
	}
	filtered := booking.FilterBookings(all, booking.Filter{
		Search: c.Query("search"),
		Status: models.BookingStatus(c.Query("status")),
	})
	c.JSON(http.StatusOK, filtered)
}

// TransitionBookingHandler advances a booking's status.
func (ah *AdminHandler) TransitionBookingHandler(c *gin.Context) {
	var req struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	b, err := ah.Bookings.Transition(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found", err.Error())
		case errors.Is(err, booking.ErrInvalidTransition):
			utils.JSONError(c, http.StatusConflict, "Transition not allowed", err.Error())
		default:
			zap.L().Error("Failed to transition booking", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update booking", "please try again")
		}
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListComplaintsHandler returns every complaint joined with its owner.
func (ah *AdminHandler) ListComplaintsHandler(c *gin.Context) {
	all, err := ah.Complaints.ListAll(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list complaints", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list complaints", "please try again")
		return
	}
	filtered := complaint.FilterComplaints(all, complaint.Filter{
		Search: c.Query("search"),
		Status: models.ComplaintStatus(c.Query("status")),
	})
	c.JSON(http.StatusOK, filtered)
}

// TransitionComplaintHandler moves a complaint between statuses.
func (ah *AdminHandler) TransitionComplaintHandler(c *gin.Context) {
	var req struct {
		Status models.ComplaintStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	cm, err := ah.Complaints.Transition(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, complaint.ErrComplaintNotFound):
			utils.JSONError(c, http.StatusNotFound, "Complaint not found", err.Error())
		case errors.Is(err, complaint.ErrUnknownStatus):
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		default:
			zap.L().Error("Failed to transition complaint", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update complaint", "please try again")
		}
		return
	}
	c.JSON(http.StatusOK, cm)
}

// RespondComplaintHandler appends an admin reply, optionally resolving.
func (ah *AdminHandler) RespondComplaintHandler(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
		Resolve bool   `json:"resolve"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	cm, err := ah.Complaints.Respond(c.Request.Context(), c.Param("id"), req.Message, req.Resolve)
	if err != nil {
		if errors.Is(err, complaint.ErrComplaintNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Complaint not found", err.Error())
			return
		}
		zap.L().Error("Failed to respond to complaint", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to respond", "please try again")
		return
	}
	c.JSON(http.StatusOK, cm)
}

// ListExchangesHandler returns every exchange joined with its owner.
func (ah *AdminHandler) ListExchangesHandler(c *gin.Context) {
	all, err := ah.Exchanges.ListAll(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list exchanges", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list exchanges", "please try again")
		return
	}
	filtered := exchange.FilterExchanges(all, exchange.Filter{
		Search: c.Query("search"),
		Status: models.ExchangeStatus(c.Query("status")),
	})
	c.JSON(http.StatusOK, filtered)
}

// TransitionExchangeHandler approves or rejects a pending exchange.
// Approval credits the snapshotted total exactly once.
func (ah *AdminHandler) TransitionExchangeHandler(c *gin.Context) {
	var req struct {
		Status models.ExchangeStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	e, err := ah.Exchanges.Transition(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, exchange.ErrExchangeNotFound):
			utils.JSONError(c, http.StatusNotFound, "Exchange not found", err.Error())
		case errors.Is(err, exchange.ErrNotPending):
			utils.JSONError(c, http.StatusConflict, "Exchange already processed", err.Error())
		default:
			zap.L().Error("Failed to transition exchange", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update exchange", "please try again")
		}
		return
	}
	c.JSON(http.StatusOK, e)
}

// SetRatesHandler replaces the global bottle rate table.
func (ah *AdminHandler) SetRatesHandler(c *gin.Context) {
	var rates models.RateTable
	if err := c.ShouldBindJSON(&rates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if err := ah.Exchanges.SetRates(c.Request.Context(), rates); err != nil {
		if errors.Is(err, exchange.ErrUnknownBottleType) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}
		zap.L().Error("Failed to set rates", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update rates", "please try again")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bottle rates updated successfully"})
}

func matchesUser(u models.User, search string) bool {
	s := strings.ToLower(search)
	return strings.Contains(strings.ToLower(u.Name), s) ||
		strings.Contains(strings.ToLower(u.Aadhar), s) ||
		strings.Contains(strings.ToLower(u.Phone), s)
}
