package complaint

import (
	"context"
	"testing"

	"harithakarmabhoomi/database/repository"
	complaintRepoPkg "harithakarmabhoomi/database/repository/complaint"
	userRepoPkg "harithakarmabhoomi/database/repository/user"
	"harithakarmabhoomi/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*DefaultComplaintService, *userRepoPkg.RedisUserRepo) {
	t.Helper()
	mr := miniredis.RunT(t)
	store := repository.NewRecordStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	users := userRepoPkg.NewRedisUserRepo(store)
	repo := complaintRepoPkg.NewRedisComplaintRepo(store, users)
	return &DefaultComplaintService{Repo: repo, Users: users}, users
}

func TestCreateComplaint(t *testing.T) {
	ctx := context.Background()
	svc, users := newTestService(t)
	require.NoError(t, users.Create(ctx, &models.User{ID: "u1"}))

	c, err := svc.Create(ctx, "u1", CreateInput{
		Title:       "Bins overflowing on Green Lane",
		Description: "The community bins have not been emptied for a week.",
		Category:    models.CategoryOverflowingBins,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, models.ComplaintPending, c.Status)
	assert.Equal(t, c.CreatedAt, c.UpdatedAt)

	t.Run("unknown category is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, "u1", CreateInput{
			Title: "x", Description: "y", Category: "noise",
		})
		assert.ErrorIs(t, err, ErrUnknownCategory)
	})

	t.Run("title and description are required", func(t *testing.T) {
		_, err := svc.Create(ctx, "u1", CreateInput{Category: models.CategoryOther})
		assert.Error(t, err)
	})
}

func TestRespond(t *testing.T) {
	ctx := context.Background()
	svc, users := newTestService(t)
	require.NoError(t, users.Create(ctx, &models.User{ID: "u1"}))

	c, err := svc.Create(ctx, "u1", CreateInput{
		Title:       "Missed pickup",
		Description: "Scheduled pickup never arrived.",
		Category:    models.CategoryMissedCollection,
	})
	require.NoError(t, err)

	t.Run("a reply is appended without changing status", func(t *testing.T) {
		got, err := svc.Respond(ctx, c.ID, "We are looking into it.", false)
		require.NoError(t, err)
		require.Len(t, got.Responses, 1)
		assert.Equal(t, "We are looking into it.", got.Responses[0].Message)
		assert.Equal(t, "Admin", got.Responses[0].RespondedBy)
		assert.Equal(t, models.ComplaintPending, got.Status)
	})

	t.Run("resolving appends and advances in one write", func(t *testing.T) {
		got, err := svc.Respond(ctx, c.ID, "A crew has cleared the spot.", true)
		require.NoError(t, err)
		require.Len(t, got.Responses, 2)
		assert.Equal(t, models.ComplaintResolved, got.Status)
	})

	t.Run("empty message is rejected", func(t *testing.T) {
		_, err := svc.Respond(ctx, c.ID, "", false)
		assert.Error(t, err)
	})

	t.Run("unknown complaint is reported", func(t *testing.T) {
		_, err := svc.Respond(ctx, "nope", "hello", false)
		assert.ErrorIs(t, err, ErrComplaintNotFound)
	})
}

func TestTransitionComplaint(t *testing.T) {
	ctx := context.Background()
	svc, users := newTestService(t)
	require.NoError(t, users.Create(ctx, &models.User{ID: "u1"}))

	c, err := svc.Create(ctx, "u1", CreateInput{
		Title:       "Illegal dumping near the canal",
		Description: "Construction debris dumped overnight.",
		Category:    models.CategoryIllegalDumping,
	})
	require.NoError(t, err)

	got, err := svc.Transition(ctx, c.ID, models.ComplaintInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintInProgress, got.Status)

	got, err = svc.Transition(ctx, c.ID, models.ComplaintResolved)
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintResolved, got.Status)

	t.Run("resolved complaints can be reopened", func(t *testing.T) {
		got, err := svc.Transition(ctx, c.ID, models.ComplaintPending)
		require.NoError(t, err)
		assert.Equal(t, models.ComplaintPending, got.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := svc.Transition(ctx, c.ID, "closed")
		assert.ErrorIs(t, err, ErrUnknownStatus)
	})
}

func TestCountByCategory(t *testing.T) {
	complaints := []models.Complaint{
		{Category: models.CategoryOverflowingBins},
		{Category: models.CategoryOverflowingBins},
		{Category: models.CategoryContamination},
	}
	counts := CountByCategory(complaints)
	assert.Equal(t, 2, counts[models.CategoryOverflowingBins])
	assert.Equal(t, 1, counts[models.CategoryContamination])
	assert.Equal(t, 0, counts[models.CategoryPoorService])
}

func TestFilterComplaints(t *testing.T) {
	list := []models.ComplaintWithUser{
		{Complaint: models.Complaint{ID: "c1", Title: "Overflowing bins",
			Category: models.CategoryOverflowingBins, Status: models.ComplaintPending},
			UserName: "Asha Nair"},
		{Complaint: models.Complaint{ID: "c2", Title: "Missed pickup",
			Category: models.CategoryMissedCollection, Status: models.ComplaintResolved},
			UserName: "Ravi Kumar"},
	}

	t.Run("search matches titles", func(t *testing.T) {
		got := FilterComplaints(list, Filter{Search: "missed"})
		require.Len(t, got, 1)
		assert.Equal(t, "c2", got[0].ID)
	})

	t.Run("status narrows the list", func(t *testing.T) {
		got := FilterComplaints(list, Filter{Status: models.ComplaintPending})
		require.Len(t, got, 1)
		assert.Equal(t, "c1", got[0].ID)
	})
}
