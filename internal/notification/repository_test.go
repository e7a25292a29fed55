package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{},
	)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Notification{}))
	return db
}

func seed(t *testing.T, repo *Repository, userID int64, title string, createdAt time.Time) *Notification {
	t.Helper()
	n := &Notification{
		UserID:    userID,
		Type:      TypeReservationRequested,
		Model:     ModelReservation,
		TitleEn:   title,
		TitleFr:   title + "-fr",
		TitleAr:   title + "-ar",
		MessageEn: "m", MessageFr: "m-fr", MessageAr: "m-ar",
		CreatedAt: createdAt,
	}
	require.NoError(t, repo.Create(context.Background(), n))
	return n
}

func TestRepository_MarkAsRead_OwnershipInvariant(t *testing.T) {
	repo := NewRepository(testDB(t))
	ctx := context.Background()

	theirs := seed(t, repo, 2, "b-notif", time.Now())

	// User 1 cannot flip user 2's notification
	err := repo.MarkAsRead(ctx, theirs.ID, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	// and it stays unread for user 2
	rows, err := repo.ListByUser(ctx, 2, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].IsRead)
}

func TestRepository_MarkAsRead_MissingIsNotFound(t *testing.T) {
	repo := NewRepository(testDB(t))
	err := repo.MarkAsRead(context.Background(), 9999, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRepository_MarkAsRead_AlreadyReadIsNoop(t *testing.T) {
	repo := NewRepository(testDB(t))
	ctx := context.Background()

	n := seed(t, repo, 1, "notif", time.Now())
	require.NoError(t, repo.MarkAsRead(ctx, n.ID, 1))

	// Second call converges on the same state without error
	require.NoError(t, repo.MarkAsRead(ctx, n.ID, 1))

	rows, err := repo.ListByUser(ctx, 1, 10)
	require.NoError(t, err)
	assert.True(t, rows[0].IsRead)
}

func TestRepository_MarkAllAsRead_Idempotent(t *testing.T) {
	repo := NewRepository(testDB(t))
	ctx := context.Background()

	seed(t, repo, 1, "first", time.Now())
	seed(t, repo, 1, "second", time.Now())
	seed(t, repo, 3, "other-user", time.Now())

	require.NoError(t, repo.MarkAllAsRead(ctx, 1))
	require.NoError(t, repo.MarkAllAsRead(ctx, 1)) // second run, zero rows affected

	unread, err := repo.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)

	// Other users untouched
	unread, err = repo.CountUnread(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestRepository_ListByUser_MostRecentFirstWithLimit(t *testing.T) {
	repo := NewRepository(testDB(t))
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	seed(t, repo, 1, "oldest", base)
	seed(t, repo, 1, "middle", base.Add(10*time.Minute))
	seed(t, repo, 1, "newest", base.Add(20*time.Minute))

	rows, err := repo.ListByUser(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "newest", rows[0].TitleEn)
	assert.Equal(t, "middle", rows[1].TitleEn)
}

func TestRepository_CountUnread(t *testing.T) {
	repo := NewRepository(testDB(t))
	ctx := context.Background()

	a := seed(t, repo, 1, "a", time.Now())
	seed(t, repo, 1, "b", time.Now())

	unread, err := repo.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	require.NoError(t, repo.MarkAsRead(ctx, a.ID, 1))

	unread, err = repo.CountUnread(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}
