// services/analytics_service.go - Dashboard aggregation
package services

import (
	"context"

	"projectflow/models"
	"projectflow/store"
)

// ProjectStats is the summary the analytics page renders. Counter maps list
// every occurring status/priority; an absent key means zero.
type ProjectStats struct {
	ProjectsByStatus    map[models.ProjectStatus]int `json:"projects_by_status"`
	TasksByStatus       map[models.TaskStatus]int    `json:"tasks_by_status"`
	TasksByPriority     map[models.Priority]int      `json:"tasks_by_priority"`
	TotalEstimatedHours float64                      `json:"total_estimated_hours"`
	TotalActualHours    float64                      `json:"total_actual_hours"`
	Efficiency          float64                      `json:"efficiency"`
	CompletionRate      float64                      `json:"completion_rate"`
}

// TaskHours is one task's share of the time report.
type TaskHours struct {
	TaskID string  `json:"task_id"`
	Hours  float64 `json:"hours"`
}

// TimeSummary aggregates logged time entries.
type TimeSummary struct {
	TotalHours float64     `json:"total_hours"`
	ByTask     []TaskHours `json:"by_task"`
}

// AnalyticsService derives summary statistics from the current entity
// collections. Every call recomputes from a fresh fetch; nothing is cached
// and fetch errors propagate untouched.
type AnalyticsService struct {
	store store.Store
}

func NewAnalyticsService(s store.Store) *AnalyticsService {
	return &AnalyticsService{store: s}
}

// ProjectStats scans all projects and tasks once each.
//
// Efficiency is actual/estimated hours as a percentage; values above 100
// mean overrun and are surfaced, not clamped. Both ratio computations guard
// the zero denominator explicitly and report 0 instead of dividing.
func (s *AnalyticsService) ProjectStats(ctx context.Context) (*ProjectStats, error) {
	projects, _, err := s.store.ListProjects(ctx, store.ProjectFilter{}, nil)
	if err != nil {
		return nil, err
	}
	tasks, _, err := s.store.ListTasks(ctx, store.TaskFilter{}, nil)
	if err != nil {
		return nil, err
	}

	stats := &ProjectStats{
		ProjectsByStatus: make(map[models.ProjectStatus]int),
		TasksByStatus:    make(map[models.TaskStatus]int),
		TasksByPriority:  make(map[models.Priority]int),
	}

	for _, p := range projects {
		stats.ProjectsByStatus[p.Status]++
	}

	completed := 0
	for _, t := range tasks {
		stats.TasksByStatus[t.Status]++
		stats.TasksByPriority[t.Priority]++
		if t.EstimatedHours != nil {
			stats.TotalEstimatedHours += *t.EstimatedHours
		}
		stats.TotalActualHours += t.ActualHours
		if t.Status == models.TaskDone {
			completed++
		}
	}

	if stats.TotalEstimatedHours > 0 {
		stats.Efficiency = stats.TotalActualHours / stats.TotalEstimatedHours * 100
	}
	if len(tasks) > 0 {
		stats.CompletionRate = float64(completed) / float64(len(tasks)) * 100
	}
	return stats, nil
}

// TimeSummary totals logged hours overall and per task, in first-seen task
// order of the underlying listing.
func (s *AnalyticsService) TimeSummary(ctx context.Context) (*TimeSummary, error) {
	entries, _, err := s.store.ListTimeEntries(ctx, store.TimeEntryFilter{}, nil)
	if err != nil {
		return nil, err
	}

	summary := &TimeSummary{}
	index := make(map[string]int)
	for _, e := range entries {
		summary.TotalHours += e.Hours
		i, ok := index[e.TaskID]
		if !ok {
			i = len(summary.ByTask)
			index[e.TaskID] = i
			summary.ByTask = append(summary.ByTask, TaskHours{TaskID: e.TaskID})
		}
		summary.ByTask[i].Hours += e.Hours
	}
	return summary, nil
}
