package class

import (
	"context"
	"testing"
	"time"

	"yoga-marketplace/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// runContract exercises behaviour every backend has to share. repo must start empty.
func runContract(t *testing.T, repo Repository) {
	t.Helper()
	ctx := context.Background()
	submitted := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	flow := domain.Class{
		Name:            "Vinyasa Flow",
		Description:     "Breath-linked movement",
		Price:           20,
		InstructorEmail: "a@x.com",
		AvailableSeats:  10,
		VideoLink:       "https://video.example/flow",
		Status:          domain.StatusPending,
		Submitted:       submitted,
	}
	ins, err := repo.Insert(ctx, flow)
	require.NoError(t, err)
	require.True(t, ins.Acknowledged)
	flowID, err := domain.ParseID(ins.InsertedID)
	require.NoError(t, err)

	yin := domain.Class{Name: "Yin", InstructorEmail: "b@x.com", Status: domain.StatusApproved, Submitted: submitted}
	ins, err = repo.Insert(ctx, yin)
	require.NoError(t, err)
	yinID, err := domain.ParseID(ins.InsertedID)
	require.NoError(t, err)

	t.Run("get one", func(t *testing.T) {
		got, err := repo.GetByID(ctx, flowID)
		require.NoError(t, err)
		assert.Equal(t, flowID, got.ID)
		assert.Equal(t, "Vinyasa Flow", got.Name)
		assert.Equal(t, 10, got.AvailableSeats)
		assert.Equal(t, 20.0, got.Price)
		assert.True(t, submitted.Equal(got.Submitted))

		_, err = repo.GetByID(ctx, domain.NewID())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("list filters", func(t *testing.T) {
		all, err := repo.List(ctx, domain.ClassFilter{})
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, flowID, all[0].ID)

		approved, err := repo.List(ctx, domain.ClassFilter{Status: domain.StatusApproved})
		require.NoError(t, err)
		require.Len(t, approved, 1)
		assert.Equal(t, yinID, approved[0].ID)

		byInstructor, err := repo.List(ctx, domain.ClassFilter{InstructorEmail: "A@x.com"})
		require.NoError(t, err)
		assert.Empty(t, byInstructor)
		assert.NotNil(t, byInstructor)
	})

	t.Run("get by ids skips missing", func(t *testing.T) {
		got, err := repo.GetByIDs(ctx, []primitive.ObjectID{flowID, domain.NewID(), yinID})
		require.NoError(t, err)
		assert.Len(t, got, 2)

		none, err := repo.GetByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("status change", func(t *testing.T) {
		res, err := repo.SetStatus(ctx, flowID, domain.StatusRejected, "low quality", false)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)
		assert.Equal(t, int64(1), res.ModifiedCount)

		res, err = repo.SetStatus(ctx, flowID, domain.StatusRejected, "low quality", false)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)
		assert.Equal(t, int64(0), res.ModifiedCount)

		got, err := repo.GetByID(ctx, flowID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusRejected, got.Status)
		assert.Equal(t, "low quality", got.Reason)
	})

	t.Run("details reset status and reason", func(t *testing.T) {
		res, err := repo.UpdateDetails(ctx, flowID, domain.ClassDetails{Name: "Vinyasa Flow II", Price: 25, AvailableSeats: 12}, false)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.ModifiedCount)

		got, err := repo.GetByID(ctx, flowID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, got.Status)
		assert.Empty(t, got.Reason)
		assert.Equal(t, 12, got.AvailableSeats)
		assert.Equal(t, "a@x.com", got.InstructorEmail)
	})

	t.Run("missing document without upsert", func(t *testing.T) {
		res, err := repo.SetStatus(ctx, domain.NewID(), domain.StatusApproved, "", false)
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.MatchedCount)
		assert.Equal(t, int64(0), res.UpsertedCount)
	})

	t.Run("missing document with upsert", func(t *testing.T) {
		ghost := domain.NewID()
		res, err := repo.SetStatus(ctx, ghost, domain.StatusApproved, "", true)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.UpsertedCount)
		assert.Equal(t, ghost.Hex(), res.UpsertedID)

		got, err := repo.GetByID(ctx, ghost)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, got.Status)
		assert.Empty(t, got.Name)
	})
}

func TestMemory_Contract(t *testing.T) {
	runContract(t, NewMemory())
}
