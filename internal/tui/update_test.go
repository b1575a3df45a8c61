package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stardustlabs/stardust/internal/app"
	"github.com/stardustlabs/stardust/internal/domain"
	"github.com/stardustlabs/stardust/internal/notify"
	"github.com/stardustlabs/stardust/internal/testutil"
)

func newTestModel(repo *testutil.MockTaskRepository) (*Model, *testutil.MockClock) {
	clock := &testutil.MockClock{NowTime: time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)}
	rand := &testutil.MockRand{Floats: []float64{0.5, 0.5}}
	container := app.NewWithDeps(
		repo,
		clock,
		rand,
		testutil.NopLogger{},
		notify.NewDispatcher(clock, rand, 3*time.Second),
	)
	m := New(container)
	m.width = 101
	m.height = 53
	return m, clock
}

func visitedRepo() *testutil.MockTaskRepository {
	repo := testutil.NewMockTaskRepository()
	repo.SetVisited(true)
	return repo
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// update runs one message through the model and returns it retyped.
func update(t *testing.T, m *Model, msg tea.Msg) (*Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(*Model)
	require.True(t, ok)
	return model, cmd
}

// runCmd executes a returned command and feeds its message back in.
func runCmd(t *testing.T, m *Model, cmd tea.Cmd) *Model {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			if sub == nil {
				continue
			}
			if inner := sub(); inner != nil {
				m, _ = update(t, m, inner)
			}
		}
		return m
	}
	m, _ = update(t, m, msg)
	return m
}

func TestNew_WelcomeOnFirstRun(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	m, _ := newTestModel(repo)

	assert.Equal(t, ModeWelcome, m.mode)
}

func TestNew_NoWelcomeWhenVisited(t *testing.T) {
	m, _ := newTestModel(visitedRepo())

	assert.Equal(t, ModeNormal, m.mode)
}

func TestUpdate_WelcomeDismiss(t *testing.T) {
	repo := testutil.NewMockTaskRepository()
	m, _ := newTestModel(repo)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = runCmd(t, m, cmd)

	assert.Equal(t, ModeNormal, m.mode)
	assert.True(t, repo.Visited())
}

func TestUpdate_TasksLoaded(t *testing.T) {
	m, _ := newTestModel(visitedRepo())

	m, _ = update(t, m, MsgTasksLoaded{Tasks: []*domain.Task{
		{ID: 1, Title: "One", Category: domain.CategoryWork, Difficulty: domain.DifficultyEasy},
	}})

	assert.Len(t, m.tasks, 1)
}

func TestUpdate_ScopeCycle(t *testing.T) {
	m, _ := newTestModel(visitedRepo())
	assert.Equal(t, domain.ScopeAll, m.scope)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, domain.ScopeDaily, m.scope)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, domain.ScopeAll, m.scope)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, domain.ScopeMeteor, m.scope)
}

func TestUpdate_ViewCycle(t *testing.T) {
	m, _ := newTestModel(visitedRepo())
	assert.Equal(t, ScreenSky, m.screen)

	m, _ = update(t, m, keyRune('v'))
	assert.Equal(t, ScreenList, m.screen)

	m, _ = update(t, m, keyRune('v'))
	assert.Equal(t, ScreenProfile, m.screen)

	m, _ = update(t, m, keyRune('v'))
	assert.Equal(t, ScreenSky, m.screen)
}

func TestUpdate_NewStarFlow(t *testing.T) {
	repo := visitedRepo()
	m, _ := newTestModel(repo)

	m, _ = update(t, m, keyRune('n'))
	assert.Equal(t, ModeInputTitle, m.mode)

	for _, r := range "Night run" {
		m, _ = update(t, m, keyRune(r))
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeInputDesc, m.mode)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModePickCategory, m.mode)

	// Move to the third category (HEALTH).
	m, _ = update(t, m, keyRune('j'))
	m, _ = update(t, m, keyRune('j'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModePickDifficulty, m.mode)

	// Pick MEDIUM.
	m, _ = update(t, m, keyRune('j'))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = runCmd(t, m, cmd)

	assert.Equal(t, ModeNormal, m.mode)
	require.Len(t, repo.TasksList, 1)
	task := repo.TasksList[0]
	assert.Equal(t, "Night run", task.Title)
	assert.Equal(t, domain.CategoryHealth, task.Category)
	assert.Equal(t, domain.DifficultyMedium, task.Difficulty)

	// A created-event affirmation is live.
	_, ok := m.container.Notifier.Current()
	assert.True(t, ok)
}

func TestUpdate_NewStarEscapeCancels(t *testing.T) {
	repo := visitedRepo()
	m, _ := newTestModel(repo)

	m, _ = update(t, m, keyRune('n'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ModeNormal, m.mode)
	assert.Empty(t, repo.TasksList)
}

func TestUpdate_ToggleSelected(t *testing.T) {
	repo := visitedRepo()
	repo.Insert(&domain.Task{ID: 1, Title: "One", Category: domain.CategoryWork, Difficulty: domain.DifficultyEasy})
	m, _ := newTestModel(repo)
	m = runCmd(t, m, m.Init())

	// Select the first star, toggle it.
	m, _ = update(t, m, keyRune('j'))
	m, cmd := update(t, m, keyRune(' '))
	m = runCmd(t, m, cmd)

	assert.True(t, repo.TasksList[0].Completed)
	_, ok := m.container.Notifier.Current()
	assert.True(t, ok)
}

func TestUpdate_DeleteConfirmFlow(t *testing.T) {
	repo := visitedRepo()
	repo.Insert(&domain.Task{ID: 1, Title: "One", Category: domain.CategoryWork, Difficulty: domain.DifficultyEasy})
	m, _ := newTestModel(repo)
	m = runCmd(t, m, m.Init())

	m, _ = update(t, m, keyRune('j'))
	m, _ = update(t, m, keyRune('d'))
	assert.Equal(t, ModeConfirmDelete, m.mode)
	assert.Equal(t, 1, m.confirmTaskID)

	m, cmd := update(t, m, keyRune('y'))
	m = runCmd(t, m, cmd)

	assert.Equal(t, ModeNormal, m.mode)
	assert.Empty(t, repo.TasksList)
}

func TestUpdate_DeleteEscapeKeepsTask(t *testing.T) {
	repo := visitedRepo()
	repo.Insert(&domain.Task{ID: 1, Title: "One", Category: domain.CategoryWork, Difficulty: domain.DifficultyEasy})
	m, _ := newTestModel(repo)
	m = runCmd(t, m, m.Init())

	m, _ = update(t, m, keyRune('j'))
	m, _ = update(t, m, keyRune('d'))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ModeNormal, m.mode)
	assert.Len(t, repo.TasksList, 1)
}

func TestUpdate_KeyboardMove(t *testing.T) {
	repo := visitedRepo()
	repo.Insert(&domain.Task{
		ID: 1, Title: "One", Category: domain.CategoryWork,
		Difficulty: domain.DifficultyEasy,
		Position:   domain.Position{X: 50, Y: 50},
	})
	m, _ := newTestModel(repo)
	m = runCmd(t, m, m.Init())

	m, _ = update(t, m, keyRune('j'))
	m, cmd := update(t, m, keyRune('L'))
	m = runCmd(t, m, cmd)

	assert.InDelta(t, 52, repo.TasksList[0].Position.X, 0.001)
	assert.InDelta(t, 50, repo.TasksList[0].Position.Y, 0.001)
}

func TestUpdate_MouseDrag(t *testing.T) {
	repo := visitedRepo()
	repo.Insert(&domain.Task{
		ID: 1, Title: "One", Category: domain.CategoryWork,
		Difficulty: domain.DifficultyEasy,
		Position:   domain.Position{X: 50, Y: 50},
	})
	m, _ := newTestModel(repo)
	m = runCmd(t, m, m.Init())

	// Canvas is 101x50; the star at (50%, 50%) sits at col 50, row 25,
	// which is terminal row 27 below the two header rows.
	m, _ = update(t, m, tea.MouseMsg{
		X: 50, Y: 27,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	_, ok := m.dragging.Dragging()
	require.True(t, ok)

	m, _ = update(t, m, tea.MouseMsg{X: 100, Y: 51, Action: tea.MouseActionMotion})
	m, _ = update(t, m, tea.MouseMsg{X: 100, Y: 51, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	_, ok = m.dragging.Dragging()
	assert.False(t, ok)
	assert.InDelta(t, 100, repo.TasksList[0].Position.X, 0.5)
	assert.InDelta(t, 100, repo.TasksList[0].Position.Y, 0.5)
}

func TestUpdate_CreateResetsScopeAndScreen(t *testing.T) {
	repo := visitedRepo()
	m, _ := newTestModel(repo)
	m.scope = domain.ScopeMeteor
	m.screen = ScreenList

	m, _ = update(t, m, keyRune('n'))
	for _, r := range "Dawn walk" {
		m, _ = update(t, m, keyRune(r))
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = runCmd(t, m, cmd)

	// The new star lands in today's sky regardless of where it was created.
	assert.Equal(t, domain.ScopeDaily, m.scope)
	assert.Equal(t, ScreenSky, m.screen)
}

func TestUpdate_MouseClickTogglesStar(t *testing.T) {
	repo := visitedRepo()
	repo.Insert(&domain.Task{
		ID: 1, Title: "One", Category: domain.CategoryWork,
		Difficulty: domain.DifficultyEasy,
		Position:   domain.Position{X: 50, Y: 50},
	})
	m, _ := newTestModel(repo)
	m = runCmd(t, m, m.Init())

	m, _ = update(t, m, tea.MouseMsg{
		X: 50, Y: 27,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	m, cmd := update(t, m, tea.MouseMsg{
		X: 50, Y: 27,
		Action: tea.MouseActionRelease,
		Button: tea.MouseButtonLeft,
	})
	m = runCmd(t, m, cmd)

	assert.True(t, repo.TasksList[0].Completed)
	_, ok := m.container.Notifier.Current()
	assert.True(t, ok)
}

func TestUpdate_MouseDragSuppressesClickToggle(t *testing.T) {
	repo := visitedRepo()
	repo.Insert(&domain.Task{
		ID: 1, Title: "One", Category: domain.CategoryWork,
		Difficulty: domain.DifficultyEasy,
		Position:   domain.Position{X: 50, Y: 50},
	})
	m, _ := newTestModel(repo)
	m = runCmd(t, m, m.Init())

	m, _ = update(t, m, tea.MouseMsg{
		X: 50, Y: 27,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	m, _ = update(t, m, tea.MouseMsg{X: 60, Y: 30, Action: tea.MouseActionMotion})
	m, _ = update(t, m, tea.MouseMsg{X: 60, Y: 30, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	assert.False(t, repo.TasksList[0].Completed)
}

func TestUpdate_MousePressOnEmptySkyDoesNothing(t *testing.T) {
	repo := visitedRepo()
	m, _ := newTestModel(repo)
	m = runCmd(t, m, m.Init())

	m, _ = update(t, m, tea.MouseMsg{
		X: 10, Y: 10,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	_, ok := m.dragging.Dragging()
	assert.False(t, ok)
}

func TestUpdate_NotificationExpires(t *testing.T) {
	repo := visitedRepo()
	repo.Insert(&domain.Task{ID: 1, Title: "One", Category: domain.CategoryWork, Difficulty: domain.DifficultyEasy})
	m, clock := newTestModel(repo)
	m = runCmd(t, m, m.Init())

	m, _ = update(t, m, keyRune('j'))
	m, cmd := update(t, m, keyRune(' '))
	m = runCmd(t, m, cmd)

	_, ok := m.container.Notifier.Current()
	require.True(t, ok)

	clock.Advance(4 * time.Second)
	m, _ = update(t, m, MsgNotificationTick{})

	_, ok = m.container.Notifier.Current()
	assert.False(t, ok)
}

func TestUpdate_ErrorShownAndCleared(t *testing.T) {
	m, _ := newTestModel(visitedRepo())

	m, _ = update(t, m, MsgError{Err: assert.AnError})
	assert.Error(t, m.err)

	m, _ = update(t, m, keyRune('j'))
	assert.NoError(t, m.err)
}
