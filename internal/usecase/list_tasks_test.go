package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stardustlabs/stardust/internal/domain"
)

func TestListTasks_Execute_DailyScope(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	repo := newMockTaskRepository()
	repo.Insert(&domain.Task{ID: 1, Title: "today", CreatedAt: now.Add(-8 * time.Hour).UnixMilli()})
	repo.Insert(&domain.Task{ID: 2, Title: "last week", CreatedAt: now.Add(-7 * 24 * time.Hour).UnixMilli()})
	repo.Insert(&domain.Task{ID: 3, Title: "also today", CreatedAt: now.UnixMilli()})
	uc := NewListTasks(repo, &mockClock{now: now})

	out, err := uc.Execute(context.Background(), ListTasksInput{Scope: domain.ScopeDaily})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 2)
	// Insertion order is preserved.
	assert.Equal(t, 1, out.Tasks[0].ID)
	assert.Equal(t, 3, out.Tasks[1].ID)
}

func TestListTasks_Execute_MeteorScope(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	yesterday := now.Add(-24 * time.Hour).UnixMilli()
	completedAt := now.UnixMilli()

	repo := newMockTaskRepository()
	repo.Insert(&domain.Task{ID: 1, Title: "overdue", CreatedAt: yesterday})
	repo.Insert(&domain.Task{ID: 2, Title: "done yesterday", CreatedAt: yesterday, Completed: true, CompletedAt: &completedAt})
	repo.Insert(&domain.Task{ID: 3, Title: "fresh", CreatedAt: now.UnixMilli()})
	uc := NewListTasks(repo, &mockClock{now: now})

	out, err := uc.Execute(context.Background(), ListTasksInput{Scope: domain.ScopeMeteor})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, 1, out.Tasks[0].ID)
}

func TestListTasks_Execute_UnknownScopePassesEverything(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	repo := newMockTaskRepository()
	repo.Insert(&domain.Task{ID: 1, CreatedAt: 0})
	repo.Insert(&domain.Task{ID: 2, CreatedAt: now.UnixMilli()})
	uc := NewListTasks(repo, &mockClock{now: now})

	out, err := uc.Execute(context.Background(), ListTasksInput{Scope: domain.ScopeAll})

	require.NoError(t, err)
	assert.Len(t, out.Tasks, 2)
}

func TestListTasks_Execute_ReturnsSnapshots(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	repo := newMockTaskRepository()
	repo.Insert(&domain.Task{ID: 1, Title: "original", CreatedAt: now.UnixMilli()})
	uc := NewListTasks(repo, &mockClock{now: now})

	out, err := uc.Execute(context.Background(), ListTasksInput{Scope: domain.ScopeDaily})
	require.NoError(t, err)
	out.Tasks[0].Title = "mutated"

	assert.Equal(t, "original", repo.Get(1).Title)
}
