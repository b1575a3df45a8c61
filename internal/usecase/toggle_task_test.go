package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stardustlabs/stardust/internal/domain"
)

func TestToggleTask_Execute_Complete(t *testing.T) {
	repo := newMockTaskRepository()
	repo.Insert(&domain.Task{ID: 1, Title: "star", CreatedAt: 1000})
	clock := &mockClock{now: time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)}
	notifier := &mockNotifier{}
	uc := NewToggleTask(repo, clock, notifier, nil)

	out, err := uc.Execute(context.Background(), ToggleTaskInput{TaskID: 1})

	require.NoError(t, err)
	assert.True(t, out.Task.Completed)
	require.NotNil(t, out.Task.CompletedAt)
	assert.Equal(t, clock.now.UnixMilli(), *out.Task.CompletedAt)
	assert.Equal(t, 1, notifier.completed)

	stored := repo.Get(1)
	assert.True(t, stored.Completed)
}

func TestToggleTask_Execute_RoundTrip(t *testing.T) {
	repo := newMockTaskRepository()
	repo.Insert(&domain.Task{ID: 1, Title: "star", CreatedAt: 1000})
	clock := &mockClock{now: time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)}
	notifier := &mockNotifier{}
	uc := NewToggleTask(repo, clock, notifier, nil)

	_, err := uc.Execute(context.Background(), ToggleTaskInput{TaskID: 1})
	require.NoError(t, err)
	out, err := uc.Execute(context.Background(), ToggleTaskInput{TaskID: 1})
	require.NoError(t, err)

	// Back to the original state: incomplete with completedAt cleared.
	assert.False(t, out.Task.Completed)
	assert.Nil(t, out.Task.CompletedAt)

	// Only the completing transition notifies.
	assert.Equal(t, 1, notifier.completed)
}

func TestToggleTask_Execute_NotFound(t *testing.T) {
	repo := newMockTaskRepository()
	clock := &mockClock{now: time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)}
	uc := NewToggleTask(repo, clock, nil, nil)

	_, err := uc.Execute(context.Background(), ToggleTaskInput{TaskID: 42})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
