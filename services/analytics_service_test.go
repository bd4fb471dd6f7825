package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectflow/models"
	"projectflow/store/memory"
)

func mustDate() time.Time {
	return time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
}

func newAnalytics(t *testing.T) (*AnalyticsService, *memory.Store) {
	t.Helper()
	s := memory.New(memory.Config{})
	return NewAnalyticsService(s), s
}

func addTask(t *testing.T, s *memory.Store, status models.TaskStatus, estimated *float64, actual float64) {
	t.Helper()
	_, err := s.CreateTask(context.Background(), models.Task{
		Title:          "task",
		ProjectID:      "proj-1",
		Status:         status,
		Priority:       models.PriorityMedium,
		EstimatedHours: estimated,
		ActualHours:    actual,
	})
	require.NoError(t, err)
}

func hours(h float64) *float64 { return &h }

func TestProjectStats_EmptyStore(t *testing.T) {
	svc, _ := newAnalytics(t)

	stats, err := svc.ProjectStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.Efficiency)
	assert.Zero(t, stats.CompletionRate)
	assert.Zero(t, stats.TotalEstimatedHours)
	assert.Zero(t, stats.TotalActualHours)
	assert.Empty(t, stats.ProjectsByStatus)
	assert.Empty(t, stats.TasksByStatus)
}

func TestProjectStats_Efficiency(t *testing.T) {
	svc, s := newAnalytics(t)

	addTask(t, s, models.TaskTodo, hours(10), 5)
	addTask(t, s, models.TaskDone, hours(20), 30)

	stats, err := svc.ProjectStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 30.0, stats.TotalEstimatedHours)
	assert.Equal(t, 35.0, stats.TotalActualHours)
	assert.InDelta(t, 116.67, stats.Efficiency, 0.01)
	assert.InDelta(t, 50.0, stats.CompletionRate, 0.01)
}

func TestProjectStats_NoEstimates(t *testing.T) {
	svc, s := newAnalytics(t)

	// Actual hours logged against tasks nobody estimated must not divide
	// by zero.
	addTask(t, s, models.TaskInProgress, nil, 12)

	stats, err := svc.ProjectStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12.0, stats.TotalActualHours)
	assert.Zero(t, stats.Efficiency)
	assert.Zero(t, stats.CompletionRate)
}

func TestProjectStats_Counters(t *testing.T) {
	svc, s := newAnalytics(t)
	ctx := context.Background()

	for _, status := range []models.ProjectStatus{
		models.ProjectActive, models.ProjectActive, models.ProjectCompleted,
	} {
		_, err := s.CreateProject(ctx, models.Project{
			Name:      "p",
			Status:    status,
			Priority:  models.PriorityHigh,
			StartDate: mustDate(),
		})
		require.NoError(t, err)
	}
	addTask(t, s, models.TaskTodo, nil, 0)
	addTask(t, s, models.TaskTodo, nil, 0)
	addTask(t, s, models.TaskDone, nil, 0)

	stats, err := svc.ProjectStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.ProjectsByStatus[models.ProjectActive])
	assert.Equal(t, 1, stats.ProjectsByStatus[models.ProjectCompleted])
	_, present := stats.ProjectsByStatus[models.ProjectOnHold]
	assert.False(t, present, "statuses with no projects are absent, not zero")
	assert.Equal(t, 2, stats.TasksByStatus[models.TaskTodo])
	assert.Equal(t, 3, stats.TasksByPriority[models.PriorityMedium])
}

func TestTimeSummary_GroupsByTask(t *testing.T) {
	svc, s := newAnalytics(t)
	ctx := context.Background()

	for _, e := range []models.TimeEntry{
		{TaskID: "task-a", UserID: "u-1", Hours: 2, Date: mustDate()},
		{TaskID: "task-b", UserID: "u-1", Hours: 4, Date: mustDate()},
		{TaskID: "task-a", UserID: "u-2", Hours: 1.5, Date: mustDate()},
	} {
		_, err := s.CreateTimeEntry(ctx, e)
		require.NoError(t, err)
	}

	summary, err := svc.TimeSummary(ctx)
	require.NoError(t, err)

	assert.InDelta(t, 7.5, summary.TotalHours, 0.001)
	require.Len(t, summary.ByTask, 2)
	assert.Equal(t, "task-a", summary.ByTask[0].TaskID)
	assert.InDelta(t, 3.5, summary.ByTask[0].Hours, 0.001)
	assert.Equal(t, "task-b", summary.ByTask[1].TaskID)
	assert.Equal(t, 4.0, summary.ByTask[1].Hours)
}

func TestTimeSummary_Empty(t *testing.T) {
	svc, _ := newAnalytics(t)

	summary, err := svc.TimeSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.TotalHours)
	assert.Empty(t, summary.ByTask)
}
