package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"schoolhub/internal/domain/announcement"
	"schoolhub/internal/infrastructure/persistence/models"
	"schoolhub/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.AnnouncementModel{}, &models.TeacherModel{})
	require.NoError(t, err)

	return db
}

func createTestAnnouncement(t *testing.T, message string, start *time.Time, end time.Time) *announcement.Announcement {
	a, err := announcement.NewAnnouncement(message, end, "mrodriguez", start)
	require.NoError(t, err)
	return a
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestAnnouncementRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnnouncementRepository(db)
	ctx := context.Background()

	t.Run("create assigns an identifier", func(t *testing.T) {
		a := createTestAnnouncement(t, "Library closed Friday", nil, time.Now().UTC().Add(48*time.Hour))

		err := repo.Create(ctx, a)
		assert.NoError(t, err)
		assert.NotZero(t, a.ID())
	})

	t.Run("created announcement round-trips", func(t *testing.T) {
		start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
		a := createTestAnnouncement(t, "Fall term begins", timePtr(start), end)

		require.NoError(t, repo.Create(ctx, a))

		found, err := repo.GetByID(ctx, a.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, a.Message(), found.Message())
		assert.Equal(t, a.CreatedBy(), found.CreatedBy())
		require.NotNil(t, found.StartDate())
		assert.True(t, found.StartDate().Equal(start))
		assert.True(t, found.EndDate().Equal(end))
	})
}

func TestAnnouncementRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnnouncementRepository(db)
	ctx := context.Background()

	t.Run("unknown id yields nil without error", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestAnnouncementRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnnouncementRepository(db)
	ctx := context.Background()

	t.Run("update persists patched fields", func(t *testing.T) {
		a := createTestAnnouncement(t, "original", nil, time.Now().UTC().Add(48*time.Hour))
		require.NoError(t, repo.Create(ctx, a))

		msg := "updated"
		require.NoError(t, a.Apply(announcement.Patch{Message: &msg}))
		require.NoError(t, repo.Update(ctx, a))

		found, err := repo.GetByID(ctx, a.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "updated", found.Message())
		assert.Equal(t, "mrodriguez", found.CreatedBy())
	})
}

func TestAnnouncementRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnnouncementRepository(db)
	ctx := context.Background()

	t.Run("delete removes the record", func(t *testing.T) {
		a := createTestAnnouncement(t, "to delete", nil, time.Now().UTC().Add(48*time.Hour))
		require.NoError(t, repo.Create(ctx, a))

		require.NoError(t, repo.Delete(ctx, a.ID()))

		found, err := repo.GetByID(ctx, a.ID())
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("deleting an unknown id is not found", func(t *testing.T) {
		err := repo.Delete(ctx, 999)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestAnnouncementRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnnouncementRepository(db)
	ctx := context.Background()

	first := createTestAnnouncement(t, "first", nil, time.Now().UTC().Add(48*time.Hour))
	second := createTestAnnouncement(t, "second", nil, time.Now().UTC().Add(24*time.Hour))
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Message(), "insertion order is preserved")
	assert.Equal(t, "second", list[1].Message())
}

func TestAnnouncementRepository_ListActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAnnouncementRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	expired := createTestAnnouncement(t, "expired", nil, now.Add(-time.Hour))
	current := createTestAnnouncement(t, "current", nil, now.Add(24*time.Hour))
	upcoming := createTestAnnouncement(t, "upcoming", timePtr(now.Add(time.Hour)), now.Add(48*time.Hour))
	windowed := createTestAnnouncement(t, "windowed", timePtr(now.Add(-time.Hour)), now.Add(time.Hour))

	for _, a := range []*announcement.Announcement{expired, current, upcoming, windowed} {
		require.NoError(t, repo.Create(ctx, a))
	}

	active, err := repo.ListActive(ctx, now)
	require.NoError(t, err)

	messages := make([]string, 0, len(active))
	for _, a := range active {
		messages = append(messages, a.Message())
	}

	assert.ElementsMatch(t, []string{"current", "windowed"}, messages)
}

func TestTeacherRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTeacherRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.TeacherModel{Username: "mrodriguez", DisplayName: "Ms. Rodriguez"}).Error)

	t.Run("existing username exists", func(t *testing.T) {
		exists, err := repo.Exists(ctx, "mrodriguez")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("unknown username does not exist", func(t *testing.T) {
		exists, err := repo.Exists(ctx, "ghost")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("empty username does not exist", func(t *testing.T) {
		exists, err := repo.Exists(ctx, "")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("get by username", func(t *testing.T) {
		found, err := repo.GetByUsername(ctx, "mrodriguez")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Ms. Rodriguez", found.DisplayName())
	})

	t.Run("get unknown username yields nil", func(t *testing.T) {
		found, err := repo.GetByUsername(ctx, "ghost")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
