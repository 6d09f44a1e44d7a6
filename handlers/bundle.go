package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every handler the router needs.
type HandlerBundle struct {
	// Auth endpoints.
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	LogoutHandler           gin.HandlerFunc

	// Citizen profile endpoints.
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc
	QRCodeHandler        gin.HandlerFunc

	// Citizen booking endpoints.
	CreateBookingHandler  gin.HandlerFunc
	ListMyBookingsHandler gin.HandlerFunc
	VoiceExtractHandler   gin.HandlerFunc
	VoiceConfirmHandler   gin.HandlerFunc
	ContactBookingHandler gin.HandlerFunc

	// Citizen complaint endpoints.
	CreateComplaintHandler  gin.HandlerFunc
	ListMyComplaintsHandler gin.HandlerFunc

	// Citizen exchange endpoints.
	CreateExchangeHandler  gin.HandlerFunc
	ListMyExchangesHandler gin.HandlerFunc
	GetRatesHandler        gin.HandlerFunc

	// Citizen report endpoints.
	CreateReportHandler  gin.HandlerFunc
	ListMyReportsHandler gin.HandlerFunc

	// Admin endpoints.
	AdminHandler *AdminHandler
}
