package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/pillar-dev/internal/apperr"
	"github.com/Zachkp/pillar-dev/internal/contact"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func submission(id string, at time.Time) contact.Submission {
	return contact.Submission{
		ID: id,
		Draft: contact.Draft{
			Name:    "Ayu",
			Email:   "ayu@example.com",
			Subject: "Hello " + id,
			Message: "Message " + id,
		},
		SenderHash: "hash-" + id,
		CreatedAt:  at,
	}
}

func TestMigrateIdempotent(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.migrate())
}

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portfolio.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, path, s.Path())
	assert.FileExists(t, path)
}

func TestSubmitAndListMessagesNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Submit(ctx, submission("a", base)))
	require.NoError(t, s.Submit(ctx, submission("b", base.Add(time.Hour))))
	require.NoError(t, s.Submit(ctx, submission("c", base.Add(-time.Hour))))

	messages, err := s.Messages(ctx, 10)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "b", messages[0].ID)
	assert.Equal(t, "a", messages[1].ID)
	assert.Equal(t, "c", messages[2].ID)
	assert.Equal(t, "Hello b", messages[0].Subject)
	assert.Equal(t, "hash-b", messages[0].SenderHash)
	assert.Equal(t, base.Add(time.Hour), messages[0].CreatedAt)

	limited, err := s.Messages(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSubmitDuplicateIDIsBackendError(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, s.Submit(ctx, submission("dup", now)))
	err := s.Submit(ctx, submission("dup", now))
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeBackend))
}

func TestDeleteMessage(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Submit(ctx, submission("x", time.Now())))

	require.NoError(t, s.DeleteMessage(ctx, "x"))
	err := s.DeleteMessage(ctx, "x")
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
}

func TestStoreWorksAsFormSubmitter(t *testing.T) {
	s := openTestStore(t)
	f := contact.NewForm(s, contact.WithSender("h1"))
	f.Fill(contact.Draft{Name: "Ayu", Email: "ayu@example.com", Subject: "Hi", Message: "Hello"})

	sub, err := f.Submit(context.Background())
	require.NoError(t, err)

	messages, err := s.Messages(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, sub.ID, messages[0].ID)
	assert.Equal(t, "h1", messages[0].SenderHash)
}

func TestVisitorsStatsAndCleanup(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 10, 18, 15, 0, 0, 0, time.UTC)

	visits := []Visitor{
		{HashedIP: "a", Path: "/", Timestamp: now.Add(-time.Hour)},
		{HashedIP: "a", Path: "/", Timestamp: now.Add(-2 * time.Hour)},
		{HashedIP: "b", Path: "/api/projects", Timestamp: now.AddDate(0, 0, -3)},
		{HashedIP: "c", Path: "/", Timestamp: now.AddDate(0, -13, 0)},
	}
	for _, v := range visits {
		require.NoError(t, s.RecordVisit(ctx, v))
	}
	require.NoError(t, s.Submit(ctx, submission("m1", now.AddDate(0, 0, -1))))
	require.NoError(t, s.Submit(ctx, submission("m2", now.AddDate(0, 0, -30))))

	stats, err := s.Stats(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalVisitors)
	assert.Equal(t, int64(3), stats.UniqueVisitors)
	assert.Equal(t, int64(2), stats.VisitorsToday)
	assert.Equal(t, int64(3), stats.VisitorsThisWeek)
	assert.Equal(t, int64(2), stats.TotalMessages)
	assert.Equal(t, int64(1), stats.MessagesThisWeek)
	require.NotEmpty(t, stats.TopPaths)
	assert.Equal(t, PathHit{Path: "/", Hits: 3}, stats.TopPaths[0])
	require.Len(t, stats.RecentVisitors, 4)
	assert.Equal(t, now.Add(-time.Hour), stats.RecentVisitors[0].Timestamp)

	removed, err := s.CleanupVisitors(ctx, now.AddDate(0, -12, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	recent, err := s.RecentVisitors(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, recent, 3)
}
