package booking

import (
	"context"
	"testing"
	"time"

	"harithakarmabhoomi/database/repository"
	bookingRepoPkg "harithakarmabhoomi/database/repository/booking"
	userRepoPkg "harithakarmabhoomi/database/repository/user"
	"harithakarmabhoomi/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*DefaultBookingService, *userRepoPkg.RedisUserRepo) {
	t.Helper()
	mr := miniredis.RunT(t)
	store := repository.NewRecordStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	users := userRepoPkg.NewRedisUserRepo(store)
	repo := bookingRepoPkg.NewRedisBookingRepo(store, users)
	return &DefaultBookingService{Repo: repo, Users: users}, users
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	svc, users := newTestService(t)
	require.NoError(t, users.Create(ctx, &models.User{ID: "u1", Name: "Asha"}))

	b, err := svc.Create(ctx, "u1", CreateInput{
		WasteType: models.WastePlastic,
		Weight:    "5 kg",
		Date:      "2026-09-02",
		Time:      "10:00",
		Address:   "12B, Green Lane",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, "u1", b.UserID)
	assert.False(t, b.CreatedAt.IsZero())

	mine, err := svc.ListForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, b.ID, mine[0].ID)
}

func TestCreateBookingUnknownWasteType(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Create(ctx, "u1", CreateInput{WasteType: "styrofoam"})
	assert.ErrorIs(t, err, ErrUnknownWasteType)
}

func TestListAllJoinsAndSortsNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, users := newTestService(t)

	require.NoError(t, users.Create(ctx, &models.User{ID: "u1", Name: "Asha", Phone: "9876500001", HouseNo: "12B"}))
	require.NoError(t, users.Create(ctx, &models.User{ID: "u2", Name: "Ravi", Phone: "9876500002", HouseNo: "7A"}))

	older := models.Booking{ID: "b1", UserID: "u1", WasteType: models.WastePlastic,
		Status: models.BookingPending, CreatedAt: time.Now().Add(-time.Hour)}
	newer := models.Booking{ID: "b2", UserID: "u2", WasteType: models.WasteGlass,
		Status: models.BookingPending, CreatedAt: time.Now()}
	require.NoError(t, svc.Repo.Insert(ctx, &older))
	require.NoError(t, svc.Repo.Insert(ctx, &newer))

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, "b2", all[0].ID)
	assert.Equal(t, "Ravi", all[0].UserName)
	assert.Equal(t, "9876500002", all[0].UserPhone)
	assert.Equal(t, "7A", all[0].UserAddress)
	assert.Equal(t, "b1", all[1].ID)
	assert.Equal(t, "Asha", all[1].UserName)
}

func TestTransitionLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, users := newTestService(t)
	require.NoError(t, users.Create(ctx, &models.User{ID: "u1"}))

	b, err := svc.Create(ctx, "u1", CreateInput{WasteType: models.WastePlastic})
	require.NoError(t, err)

	t.Run("pending to in_progress", func(t *testing.T) {
		got, err := svc.Transition(ctx, b.ID, models.BookingInProgress)
		require.NoError(t, err)
		assert.Equal(t, models.BookingInProgress, got.Status)
	})

	t.Run("in_progress to completed", func(t *testing.T) {
		got, err := svc.Transition(ctx, b.ID, models.BookingCompleted)
		require.NoError(t, err)
		assert.Equal(t, models.BookingCompleted, got.Status)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		_, err := svc.Transition(ctx, b.ID, models.BookingPending)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		_, err = svc.Transition(ctx, b.ID, models.BookingInProgress)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestTransitionCancellation(t *testing.T) {
	ctx := context.Background()
	svc, users := newTestService(t)
	require.NoError(t, users.Create(ctx, &models.User{ID: "u1"}))

	b, err := svc.Create(ctx, "u1", CreateInput{WasteType: models.WasteOrganic})
	require.NoError(t, err)

	got, err := svc.Transition(ctx, b.ID, models.BookingCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, got.Status)

	_, err = svc.Transition(ctx, b.ID, models.BookingInProgress)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionUnknownBooking(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Transition(ctx, "nope", models.BookingInProgress)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestStatusCounts(t *testing.T) {
	ctx := context.Background()
	svc, users := newTestService(t)
	require.NoError(t, users.Create(ctx, &models.User{ID: "u1"}))

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, "u1", CreateInput{WasteType: models.WasteMixed})
		require.NoError(t, err)
	}
	b, err := svc.Create(ctx, "u1", CreateInput{WasteType: models.WasteMixed})
	require.NoError(t, err)
	_, err = svc.Transition(ctx, b.ID, models.BookingInProgress)
	require.NoError(t, err)

	counts, err := svc.StatusCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, counts[models.BookingPending])
	assert.Equal(t, 1, counts[models.BookingInProgress])
}

func TestFilterBookings(t *testing.T) {
	list := []models.BookingWithUser{
		{Booking: models.Booking{ID: "b1", WasteType: models.WastePlastic, Status: models.BookingPending},
			UserName: "Asha Nair", UserPhone: "9876500001"},
		{Booking: models.Booking{ID: "b2", WasteType: models.WasteGlass, Status: models.BookingCompleted},
			UserName: "Ravi Kumar", UserPhone: "9876500002"},
	}

	t.Run("search matches the owner name case-insensitively", func(t *testing.T) {
		got := FilterBookings(list, Filter{Search: "asha"})
		require.Len(t, got, 1)
		assert.Equal(t, "b1", got[0].ID)
	})

	t.Run("search matches the waste type", func(t *testing.T) {
		got := FilterBookings(list, Filter{Search: "GLASS"})
		require.Len(t, got, 1)
		assert.Equal(t, "b2", got[0].ID)
	})

	t.Run("status narrows the list", func(t *testing.T) {
		got := FilterBookings(list, Filter{Status: models.BookingCompleted})
		require.Len(t, got, 1)
		assert.Equal(t, "b2", got[0].ID)
	})

	t.Run("empty filter keeps everything", func(t *testing.T) {
		assert.Len(t, FilterBookings(list, Filter{}), 2)
	})
}
