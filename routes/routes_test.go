package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"harithakarmabhoomi/config"
	"harithakarmabhoomi/database/repository"
	bookingRepoPkg "harithakarmabhoomi/database/repository/booking"
	complaintRepoPkg "harithakarmabhoomi/database/repository/complaint"
	exchangeRepoPkg "harithakarmabhoomi/database/repository/exchange"
	reportRepoPkg "harithakarmabhoomi/database/repository/report"
	userRepoPkg "harithakarmabhoomi/database/repository/user"
	"harithakarmabhoomi/handlers"
	"harithakarmabhoomi/models"
	"harithakarmabhoomi/services/booking"
	"harithakarmabhoomi/services/complaint"
	"harithakarmabhoomi/services/exchange"
	"harithakarmabhoomi/services/report"
	"harithakarmabhoomi/services/session"
	"harithakarmabhoomi/services/user"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.AppConfig.SessionTTLHours = 72
	config.AppConfig.AdminAadhar = "123456789012"
	config.AppConfig.AdminPassword = "admin123"
	config.AppConfig.AdminPhone = "9999999999"
	config.AppConfig.HotlineNumber = "+919876543210"

	mr := miniredis.RunT(t)
	store := repository.NewRecordStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	userRepo := userRepoPkg.NewRedisUserRepo(store)
	sessions := session.NewManager(redis.NewClient(&redis.Options{Addr: mr.Addr()}), 72*time.Hour)

	userSvc := &user.DefaultUserService{Repo: userRepo, Sessions: sessions}
	handlers.SetUserService(userSvc)

	bookingRepo := bookingRepoPkg.NewRedisBookingRepo(store, userRepo)
	complaintRepo := complaintRepoPkg.NewRedisComplaintRepo(store, userRepo)
	exchangeRepo := exchangeRepoPkg.NewRedisExchangeRepo(store, userRepo)
	reportRepo := reportRepoPkg.NewRedisReportRepo(store)
	rateRepo := repository.NewRedisRateRepo(store)

	bookingSvc := &booking.DefaultBookingService{Repo: bookingRepo, Users: userRepo}
	complaintSvc := &complaint.DefaultComplaintService{Repo: complaintRepo, Users: userRepo}
	exchangeSvc := &exchange.DefaultExchangeService{Repo: exchangeRepo, Users: userRepo, Rates: rateRepo}
	reportSvc := &report.DefaultReportService{Repo: reportRepo}

	logger := zap.NewNop()
	bookingHandler := handlers.NewBookingHandler(bookingSvc, logger)
	complaintHandler := handlers.NewComplaintHandler(complaintSvc, logger)
	exchangeHandler := handlers.NewExchangeHandler(exchangeSvc, logger)
	reportHandler := handlers.NewReportHandler(reportSvc, logger)
	adminHandler := handlers.NewAdminHandler(userSvc, bookingSvc, complaintSvc, exchangeSvc,
		bookingRepo, complaintRepo, exchangeRepo)

	hb := &handlers.HandlerBundle{
		RegisterUserHandler:     handlers.RegisterUserHandler,
		AuthenticateUserHandler: handlers.AuthenticateUserHandler,
		LogoutHandler:           handlers.LogoutHandler,
		GetProfileHandler:       handlers.GetProfileHandler,
		UpdateProfileHandler:    handlers.UpdateProfileHandler,
		QRCodeHandler:           handlers.QRCodeHandler,
		CreateBookingHandler:    bookingHandler.CreateBookingHandler,
		ListMyBookingsHandler:   bookingHandler.ListMyBookingsHandler,
		VoiceExtractHandler:     bookingHandler.VoiceExtractHandler,
		VoiceConfirmHandler:     bookingHandler.VoiceConfirmHandler,
		ContactBookingHandler:   bookingHandler.ContactBookingHandler,
		CreateComplaintHandler:  complaintHandler.CreateComplaintHandler,
		ListMyComplaintsHandler: complaintHandler.ListMyComplaintsHandler,
		CreateExchangeHandler:   exchangeHandler.CreateExchangeHandler,
		ListMyExchangesHandler:  exchangeHandler.ListMyExchangesHandler,
		GetRatesHandler:         exchangeHandler.GetRatesHandler,
		CreateReportHandler:     reportHandler.CreateReportHandler,
		ListMyReportsHandler:    reportHandler.ListMyReportsHandler,
		AdminHandler:            adminHandler,
	}

	r := gin.New()
	RegisterAuthRoutes(r, hb, userSvc)
	RegisterUserRoutes(r, hb, userSvc)
	RegisterAdminRoutes(r, hb, userSvc)
	RegisterHealthRoute(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signup(t *testing.T, r *gin.Engine) user.AuthResponse {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{
		"name":     "Asha Nair",
		"aadhar":   "111122223333",
		"phone":    "9876500001",
		"houseNo":  "12B, Green Lane",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp user.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func loginAdmin(t *testing.T, r *gin.Engine) user.AuthResponse {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"aadhar":   "123456789012",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp user.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSignupAndLogin(t *testing.T) {
	r := newTestRouter(t)
	resp := signup(t, r)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleUser, resp.User.Role)

	t.Run("duplicate signup conflicts", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{
			"name":     "Someone Else",
			"aadhar":   "111122223333",
			"phone":    "9876500002",
			"password": "other",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("wrong password is a generic 401", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
			"aadhar":   "111122223333",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("login returns a fresh session", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
			"aadhar":   "111122223333",
			"password": "secret123",
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestProfileRequiresSession(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/user/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/user/profile", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileFlow(t *testing.T) {
	r := newTestRouter(t)
	resp := signup(t, r)

	w := doJSON(t, r, http.MethodGet, "/api/user/profile", resp.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var u models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	assert.Equal(t, "Asha Nair", u.Name)
	assert.Empty(t, u.PasswordHash)

	t.Run("updates are visible on the next read", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/user/profile", resp.Token, gin.H{
			"phone": "9876500999",
		})
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodGet, "/api/user/profile", resp.Token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
		assert.Equal(t, "9876500999", u.Phone)
	})

	t.Run("logout invalidates the session", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/auth/logout", resp.Token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, r, http.MethodGet, "/api/user/profile", resp.Token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRoleGates(t *testing.T) {
	r := newTestRouter(t)
	citizen := signup(t, r)
	admin := loginAdmin(t, r)

	t.Run("citizens cannot reach the admin console", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/admin/overview", citizen.Token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("the admin cannot use the citizen dashboard", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/user/profile", admin.Token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("the admin reaches the overview", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/admin/overview", admin.Token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var overview map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &overview))
		assert.EqualValues(t, 1, overview["totalUsers"])
	})
}

func TestBookingLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	citizen := signup(t, r)
	admin := loginAdmin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/user/bookings", citizen.Token, gin.H{
		"wasteType": "plastic",
		"weight":    "5 kg",
		"date":      "2026-09-02",
		"time":      "10:00",
		"address":   "12B, Green Lane",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var b models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	assert.Equal(t, models.BookingPending, b.Status)

	t.Run("the admin sees it joined with the owner", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/admin/bookings", admin.Token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var all []models.BookingWithUser
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
		require.Len(t, all, 1)
		assert.Equal(t, "Asha Nair", all[0].UserName)
	})

	t.Run("the admin advances the status", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/admin/bookings/"+b.ID+"/status", admin.Token,
			gin.H{"status": "in_progress"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("an invalid transition conflicts", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/admin/bookings/"+b.ID+"/status", admin.Token,
			gin.H{"status": "pending"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("an unknown waste type is rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/user/bookings", citizen.Token,
			gin.H{"wasteType": "styrofoam"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestExchangeApprovalOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	citizen := signup(t, r)
	admin := loginAdmin(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/user/exchanges", citizen.Token, gin.H{
		"bottleType": "glass",
		"quantity":   4,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var e models.Exchange
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	assert.Equal(t, 20, e.TotalCredits)

	w = doJSON(t, r, http.MethodPut, "/api/admin/exchanges/"+e.ID+"/status", admin.Token,
		gin.H{"status": "approved"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	t.Run("the owner's balance reflects the award", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/user/profile", citizen.Token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var u models.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
		assert.Equal(t, 20, u.Credits)
	})

	t.Run("a second approval conflicts", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/admin/exchanges/"+e.ID+"/status", admin.Token,
			gin.H{"status": "approved"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestVoiceBookingOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	citizen := signup(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/user/bookings/voice/extract", citizen.Token, gin.H{
		"transcript": "I want to collect 5kg of plastic bottles tomorrow at 10 AM at my home",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var extract struct {
		Fields   map[string]string `json:"fields"`
		Complete bool              `json:"complete"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &extract))
	assert.True(t, extract.Complete)
	assert.Equal(t, "plastic", extract.Fields["wasteType"])

	w = doJSON(t, r, http.MethodPost, "/api/user/bookings/voice/confirm", citizen.Token, gin.H{
		"wasteType": "plastic",
		"weight":    "5 kg",
		"date":      "tomorrow",
		"time":      "10 am",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var b models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	assert.Equal(t, "voice", b.Type)
}

func TestContactBookingOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	citizen := signup(t, r)

	w := doJSON(t, r, http.MethodPost, "/api/user/bookings/contact/call", citizen.Token, gin.H{
		"wasteType": "mixed",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		Booking models.Booking `json:"booking"`
		URI     string         `json:"uri"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "call", resp.Booking.Type)
	assert.Equal(t, "tel:+919876543210", resp.URI)

	t.Run("an unknown channel is rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/user/bookings/contact/email", citizen.Token,
			gin.H{"wasteType": "mixed"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
