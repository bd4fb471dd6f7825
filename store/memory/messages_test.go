package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectflow/models"
	"projectflow/store"
)

func TestCreateMessage_RequiresContent(t *testing.T) {
	s := newTestStore()

	_, err := s.CreateMessage(context.Background(), models.Message{
		ProjectID: "proj-1",
		UserID:    "u-a",
	})
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "content", ve.Field)
}

func TestListMessages_ThreadOrder(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	for _, content := range []string{"first", "second", "third"} {
		_, err := s.CreateMessage(ctx, models.Message{
			ProjectID: "proj-1", UserID: "u-a", Content: content,
		})
		require.NoError(t, err)
	}
	_, err := s.CreateMessage(ctx, models.Message{
		ProjectID: "proj-other", UserID: "u-a", Content: "elsewhere",
	})
	require.NoError(t, err)

	messages, total, err := s.ListMessages(ctx, store.MessageFilter{ProjectID: "proj-1"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "third", messages[2].Content)
}

func TestCreateTimeEntry_RejectsNonPositiveHours(t *testing.T) {
	s := newTestStore()

	entry := models.TimeEntry{
		TaskID: "task-1",
		UserID: "u-a",
		Date:   time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC),
	}
	var ve *models.ValidationError

	entry.Hours = 0
	_, err := s.CreateTimeEntry(context.Background(), entry)
	require.ErrorAs(t, err, &ve)

	entry.Hours = -2
	_, err = s.CreateTimeEntry(context.Background(), entry)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "hours", ve.Field)
}

func TestListTimeEntries_FilterByUser(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	day := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

	for _, e := range []models.TimeEntry{
		{TaskID: "task-1", UserID: "u-a", Hours: 2, Date: day},
		{TaskID: "task-1", UserID: "u-b", Hours: 3, Date: day},
		{TaskID: "task-2", UserID: "u-a", Hours: 1, Date: day},
	} {
		_, err := s.CreateTimeEntry(ctx, e)
		require.NoError(t, err)
	}

	entries, total, err := s.ListTimeEntries(ctx, store.TimeEntryFilter{UserID: "u-a"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, e := range entries {
		assert.Equal(t, "u-a", e.UserID)
	}

	byTask, total, err := s.ListTimeEntries(ctx, store.TimeEntryFilter{TaskID: "task-1", UserID: "u-b"}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, 3.0, byTask[0].Hours)
}
