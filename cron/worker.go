package cron

import (
	"context"
	"time"

	"harithakarmabhoomi/config"
	bookingRepo "harithakarmabhoomi/database/repository/booking"
	exchangeRepo "harithakarmabhoomi/database/repository/exchange"
	"harithakarmabhoomi/models"
	"harithakarmabhoomi/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StaleSweeper periodically flags pending bookings and exchanges that
// have sat unprocessed past the configured age, so operators notice
// requests the admin console has missed.
type StaleSweeper struct {
	Bookings  bookingRepo.BookingRepository
	Exchanges exchangeRepo.ExchangeRepository

	cron *cron.Cron
}

// NewStaleSweeper creates the sweeper with its repositories.
func NewStaleSweeper(bookings bookingRepo.BookingRepository, exchanges exchangeRepo.ExchangeRepository) *StaleSweeper {
	return &StaleSweeper{Bookings: bookings, Exchanges: exchanges}
}

// Start schedules the nightly sweep. Safe to call once at startup.
func (s *StaleSweeper) Start() {
	s.cron = cron.New()
	// Nightly at 02:00 server time.
	if _, err := s.cron.AddFunc("0 2 * * *", s.Sweep); err != nil {
		utils.GetLogger().Error("StaleSweeper: failed to schedule", zap.Error(err))
		return
	}
	s.cron.Start()
	utils.GetLogger().Info("StaleSweeper: scheduled nightly sweep")
}

// Stop halts the schedule.
func (s *StaleSweeper) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Sweep runs one pass over all partitions.
func (s *StaleSweeper) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := utils.GetLogger()
	cutoff := time.Now().Add(-time.Duration(config.AppConfig.StalePendingHours) * time.Hour)

	bookings, err := s.Bookings.ListAll(ctx)
	if err != nil {
		logger.Error("StaleSweeper: failed to list bookings", zap.Error(err))
		return
	}
	staleBookings := 0
	for _, b := range bookings {
		if b.Status == models.BookingPending && b.CreatedAt.Before(cutoff) {
			staleBookings++
			logger.Warn("Stale pending booking",
				zap.String("bookingId", b.ID), zap.String("userId", b.UserID),
				zap.Time("createdAt", b.CreatedAt))
		}
	}

	exchanges, err := s.Exchanges.ListAll(ctx)
	if err != nil {
		logger.Error("StaleSweeper: failed to list exchanges", zap.Error(err))
		return
	}
	staleExchanges := 0
	for _, e := range exchanges {
		if e.Status == models.ExchangePending && e.CreatedAt.Before(cutoff) {
			staleExchanges++
			logger.Warn("Stale pending exchange",
				zap.String("exchangeId", e.ID), zap.String("userId", e.UserID),
				zap.Time("createdAt", e.CreatedAt))
		}
	}

	logger.Info("StaleSweeper: sweep complete",
		zap.Int("staleBookings", staleBookings),
		zap.Int("staleExchanges", staleExchanges))
}
