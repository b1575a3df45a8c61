package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stardustlabs/stardust/internal/domain"
	"github.com/stardustlabs/stardust/internal/drag"
)

// moveStep is the keyboard drag step in canvas percent.
const moveStep = 2.0

// scopeOrder is the tab cycling order for time scopes.
var scopeOrder = []domain.TimeScope{
	domain.ScopeAll,
	domain.ScopeDaily,
	domain.ScopeWeekly,
	domain.ScopeMonthly,
	domain.ScopeMeteor,
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgTasksLoaded:
		m.tasks = msg.Tasks
		m.clampSelection()
		return m, nil

	case MsgTaskCreated:
		m.mode = ModeNormal
		m.form = newStarForm{}
		// A fresh star always lands in today's sky, so jump there.
		m.scope = domain.ScopeDaily
		m.screen = ScreenSky
		return m, tea.Batch(m.loadTasks(), m.notificationTick())

	case MsgTaskToggled:
		m.refreshTask(msg.Task.ID)
		if msg.Task.Completed {
			return m, m.notificationTick()
		}
		return m, nil

	case MsgTaskDeleted:
		m.mode = ModeNormal
		m.confirmTaskID = 0
		return m, m.loadTasks()

	case MsgTaskMoved:
		m.refreshTask(msg.TaskID)
		return m, nil

	case MsgWelcomeDismissed:
		m.mode = ModeNormal
		return m, nil

	case MsgNotificationTick:
		// Re-render; the notification slot reports its own expiry.
		return m, nil

	case MsgError:
		m.err = msg.Err
		m.mode = ModeNormal
		return m, nil

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	return m, nil
}

// handleKeyMsg dispatches a key press according to the current mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeWelcome:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Escape):
			return m, m.dismissWelcome()
		}
		return m, nil

	case ModeHelp:
		if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
			m.mode = ModeNormal
		}
		return m, nil

	case ModeInputTitle:
		return m.handleTitleInput(msg)

	case ModeInputDesc:
		return m.handleDescInput(msg)

	case ModePickCategory:
		return m.handleCategoryPick(msg)

	case ModePickDifficulty:
		return m.handleDifficultyPick(msg)

	case ModeConfirmDelete:
		switch {
		case key.Matches(msg, m.keys.Confirm):
			return m, m.deleteTask(m.confirmTaskID)
		case key.Matches(msg, m.keys.Escape):
			m.mode = ModeNormal
			m.confirmTaskID = 0
		}
		return m, nil
	}

	return m.handleNormalKey(msg)
}

// handleNormalKey handles keys in normal navigation mode.
func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		// Any key clears a displayed error first.
		m.err = nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.View):
		m.screen = (m.screen + 1) % 3
		return m, nil

	case key.Matches(msg, m.keys.NextScope):
		m.cycleScope(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevScope):
		m.cycleScope(-1)
		return m, nil

	case key.Matches(msg, m.keys.NextStar):
		if n := len(m.visibleTasks()); n > 0 {
			m.selected = (m.selected + 1) % n
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevStar):
		if n := len(m.visibleTasks()); n > 0 {
			if m.selected <= 0 {
				m.selected = n - 1
			} else {
				m.selected--
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if task := m.SelectedTask(); task != nil {
			return m, m.toggleTask(task.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.form = newStarForm{
			category:   domain.CategoryWork,
			difficulty: domain.DifficultyEasy,
		}
		m.titleInput.Reset()
		m.titleInput.Focus()
		m.mode = ModeInputTitle
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if task := m.SelectedTask(); task != nil {
			m.confirmTaskID = task.ID
			m.mode = ModeConfirmDelete
		}
		return m, nil

	case key.Matches(msg, m.keys.MoveUp):
		return m, m.moveSelected(0, -moveStep)

	case key.Matches(msg, m.keys.MoveDown):
		return m, m.moveSelected(0, moveStep)

	case key.Matches(msg, m.keys.MoveLeft):
		return m, m.moveSelected(-moveStep, 0)

	case key.Matches(msg, m.keys.MoveRight):
		return m, m.moveSelected(moveStep, 0)
	}

	return m, nil
}

// moveSelected nudges the selected star by a percentage delta.
func (m *Model) moveSelected(dx, dy float64) tea.Cmd {
	task := m.SelectedTask()
	if task == nil {
		return nil
	}
	x := task.Position.X + dx
	y := task.Position.Y + dy
	id := task.ID
	return func() tea.Msg {
		if err := (repoPositioner{container: m.container}).Reposition(id, x, y); err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskMoved{TaskID: id}
	}
}

// handleTitleInput handles keys while entering the new star's title.
func (m *Model) handleTitleInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.titleInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.form.title = m.titleInput.Value()
		m.titleInput.Blur()
		m.descInput.Reset()
		m.descInput.Focus()
		m.mode = ModeInputDesc
		return m, nil
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

// handleDescInput handles keys while entering the description.
func (m *Model) handleDescInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.descInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.form.desc = m.descInput.Value()
		m.descInput.Blur()
		m.pickCursor = 0
		m.mode = ModePickCategory
		return m, nil
	}

	var cmd tea.Cmd
	m.descInput, cmd = m.descInput.Update(msg)
	return m, cmd
}

// handleCategoryPick handles keys in the category picker.
func (m *Model) handleCategoryPick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	categories := domain.AllCategories()
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.keys.NextStar):
		m.pickCursor = (m.pickCursor + 1) % len(categories)
		return m, nil

	case key.Matches(msg, m.keys.PrevStar):
		m.pickCursor = (m.pickCursor + len(categories) - 1) % len(categories)
		return m, nil

	case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Toggle):
		m.form.category = categories[m.pickCursor]
		m.pickCursor = 0
		m.mode = ModePickDifficulty
		return m, nil
	}
	return m, nil
}

// handleDifficultyPick handles keys in the difficulty picker.
func (m *Model) handleDifficultyPick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	difficulties := domain.AllDifficulties()
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.keys.NextStar):
		m.pickCursor = (m.pickCursor + 1) % len(difficulties)
		return m, nil

	case key.Matches(msg, m.keys.PrevStar):
		m.pickCursor = (m.pickCursor + len(difficulties) - 1) % len(difficulties)
		return m, nil

	case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Toggle):
		m.form.difficulty = difficulties[m.pickCursor]
		return m, m.createTask(m.form)
	}
	return m, nil
}

// handleMouseMsg drives the drag engine from terminal mouse events.
// Stars can only be dragged on the sky screen in normal mode.
func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.screen != ScreenSky || m.mode != ModeNormal {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if idx, task := m.taskAt(msg.X, msg.Y); task != nil {
			m.selected = idx
			m.dragMoved = false
			m.dragging.Begin(task.ID)
		}
		return m, nil

	case tea.MouseActionMotion:
		if id, ok := m.dragging.Dragging(); ok {
			m.dragMoved = true
			m.dragging.Move(float64(msg.X), float64(msg.Y), m.skyBounds())
			m.refreshTask(id)
		}
		return m, nil

	case tea.MouseActionRelease:
		id, ok := m.dragging.Dragging()
		m.dragging.End()
		// A press released in place is a click; a drag is not.
		if ok && !m.dragMoved {
			return m, m.toggleTask(id)
		}
		return m, nil
	}

	return m, nil
}

// cycleScope advances the scope tab by delta, wrapping around.
func (m *Model) cycleScope(delta int) {
	for i, s := range scopeOrder {
		if s == m.scope {
			m.scope = scopeOrder[(i+delta+len(scopeOrder))%len(scopeOrder)]
			m.clampSelection()
			return
		}
	}
	m.scope = scopeOrder[0]
}

// skySize returns the drawable canvas dimensions.
func (m *Model) skySize() (w, h int) {
	w = m.width
	h = m.height - headerRows - footerRows
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// skyBounds returns the pixel-space bounds used to normalize mouse drags.
func (m *Model) skyBounds() drag.Bounds {
	w, h := m.skySize()
	return drag.Bounds{
		Left:   0,
		Top:    float64(headerRows),
		Width:  float64(w - 1),
		Height: float64(h - 1),
	}
}

// cellFor maps a star's percentage position to a canvas cell.
func cellFor(task *domain.Task, w, h int) (col, row int) {
	col = int(task.Position.X/100*float64(w-1) + 0.5)
	row = int(task.Position.Y/100*float64(h-1) + 0.5)
	return col, row
}

// taskAt hit-tests the visible stars at a terminal coordinate, returning the
// topmost (last drawn) match and its index. A one-cell tolerance makes small
// stars draggable.
func (m *Model) taskAt(x, y int) (int, *domain.Task) {
	w, h := m.skySize()
	row := y - headerRows
	if row < 0 || row >= h {
		return -1, nil
	}

	visible := m.visibleTasks()
	for i := len(visible) - 1; i >= 0; i-- {
		col, trow := cellFor(visible[i], w, h)
		if trow == row && x >= col-1 && x <= col+1 {
			return i, visible[i]
		}
	}
	return -1, nil
}
