package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/stardustlabs/stardust/internal/domain"
)

// Fixed chrome rows around the canvas.
const (
	headerRows = 2 // Scope tabs + notification line
	footerRows = 1 // Help / status line
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteByte('\n')
	b.WriteString(m.renderNotification())
	b.WriteByte('\n')
	b.WriteString(m.renderContent())
	b.WriteByte('\n')
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader renders the title, scope tabs, and the constellation trail.
func (m *Model) renderHeader() string {
	title := m.styles.Header.Render("stardust")

	var tabs []string
	for _, scope := range scopeOrder {
		if scope == m.scope {
			tabs = append(tabs, m.styles.ScopeActive.Render(scope.Display()))
		} else {
			tabs = append(tabs, m.styles.ScopeTab.Render(scope.Display()))
		}
	}

	line := title + "  " + strings.Join(tabs, "")
	if trail := m.renderTrail(); trail != "" {
		line += "  " + trail
	}
	return truncateLine(line, m.width)
}

// completedInOrder returns the completed stars sorted by completion time,
// earliest first. This is the constellation order.
func (m *Model) completedInOrder() []*domain.Task {
	done := make([]*domain.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		if task.Completed && task.CompletedAt != nil {
			done = append(done, task)
		}
	}
	sort.SliceStable(done, func(i, j int) bool {
		return *done[i].CompletedAt < *done[j].CompletedAt
	})
	return done
}

// renderTrail links the completed stars' glyphs in completion order.
func (m *Model) renderTrail() string {
	done := m.completedInOrder()
	if len(done) == 0 {
		return ""
	}
	glyphs := make([]string, len(done))
	for i, task := range done {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(task.Style().Color))
		glyphs[i] = style.Render(StarGlyph(task, false))
	}
	return strings.Join(glyphs, m.styles.TrailLink.Render("─"))
}

// renderNotification renders the transient affirmation line.
func (m *Model) renderNotification() string {
	if msg, ok := m.container.Notifier.Current(); ok {
		return truncateLine(m.styles.Notification.Render(msg), m.width)
	}
	return ""
}

// renderContent renders the active screen or a modal overlay.
func (m *Model) renderContent() string {
	w, h := m.skySize()

	switch m.mode {
	case ModeWelcome:
		return m.overlay(m.renderWelcome(), w, h)
	case ModeHelp:
		return m.overlay(m.renderHelp(), w, h)
	case ModeInputTitle, ModeInputDesc, ModePickCategory, ModePickDifficulty:
		return m.overlay(m.renderNewStarForm(), w, h)
	case ModeConfirmDelete:
		return m.overlay(m.renderConfirmDelete(), w, h)
	}

	switch m.screen {
	case ScreenList:
		return m.renderList(w, h)
	case ScreenProfile:
		return m.renderProfile(h)
	default:
		return m.renderSky(w, h)
	}
}

// overlay centers a dialog in the content area.
func (m *Model) overlay(dialog string, w, h int) string {
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, dialog)
}

// renderSky plots every visible star onto the canvas.
func (m *Model) renderSky(w, h int) string {
	grid := make(map[[2]int]string)

	now := m.container.Clock.Now().UnixMilli()
	visible := m.visibleTasks()
	selected := m.SelectedTask()

	for _, task := range visible {
		col, row := cellFor(task, w, h)
		meteor := domain.Classify(task, domain.ScopeMeteor, now)
		glyph := StarGlyph(task, meteor)

		style := lipgloss.NewStyle().Foreground(StarColor(task))
		if meteor {
			style = style.Foreground(Colors.Meteor)
		}
		if selected != nil && task.ID == selected.ID {
			style = m.styles.StarSelected
		}
		grid[[2]int{row, col}] = style.Render(glyph)
	}

	var rows []string
	for row := 0; row < h; row++ {
		var line strings.Builder
		for col := 0; col < w; col++ {
			if glyph, ok := grid[[2]int{row, col}]; ok {
				line.WriteString(glyph)
			} else {
				line.WriteByte(' ')
			}
		}
		rows = append(rows, line.String())
	}
	return strings.Join(rows, "\n")
}

// renderList renders the visible tasks as a flat list, incomplete stars
// first, newest first within each group.
func (m *Model) renderList(w, h int) string {
	visible := m.visibleTasks()
	selected := m.SelectedTask()

	ordered := make([]*domain.Task, len(visible))
	copy(ordered, visible)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Completed != ordered[j].Completed {
			return !ordered[i].Completed
		}
		return ordered[i].CreatedAt > ordered[j].CreatedAt
	})

	var lines []string
	lines = append(lines, m.styles.ListTitle.Render(m.scope.Display()))
	if len(ordered) == 0 {
		lines = append(lines, m.styles.ListItem.Render("The sky is empty."))
	}
	for _, task := range ordered {
		glyph := lipgloss.NewStyle().Foreground(StarColor(task)).Render(StarGlyph(task, false))
		created := time.UnixMilli(task.CreatedAt).Format("Jan 2")

		titleStyle := m.styles.ListItem
		if task.Completed {
			titleStyle = m.styles.ListCompleted
		}
		if selected != nil && task.ID == selected.ID {
			titleStyle = m.styles.ListSelected
		}

		line := fmt.Sprintf("%s %s  %s · %s", glyph, titleStyle.Render(task.Title),
			task.Category.Display(), created)
		lines = append(lines, truncateLine(line, w))
	}

	return padLines(strings.Join(lines, "\n"), h)
}

// renderProfile renders completion statistics across all tasks.
func (m *Model) renderProfile(h int) string {
	total := len(m.tasks)
	completed := 0
	byCategory := make(map[domain.Category]int)
	for _, task := range m.tasks {
		if task.Completed {
			completed++
		}
		byCategory[task.Category]++
	}

	rate := 0
	if total > 0 {
		rate = completed * 100 / total
	}
	// Every five completions lights up the next level.
	level := completed/5 + 1

	var lines []string
	lines = append(lines, m.styles.ProfileTitle.Render("Your sky"))
	lines = append(lines, m.styles.ProfileLabel.Render("Stars")+m.styles.ProfileValue.Render(fmt.Sprintf("%d", total)))
	lines = append(lines, m.styles.ProfileLabel.Render("Shining")+m.styles.ProfileValue.Render(fmt.Sprintf("%d", completed)))
	lines = append(lines, m.styles.ProfileLabel.Render("Level")+m.styles.ProfileValue.Render(fmt.Sprintf("%d", level)))
	lines = append(lines, m.styles.ProfileLabel.Render("Completion")+m.styles.ProfileValue.Render(fmt.Sprintf("%d%%", rate)))
	lines = append(lines, "")
	for _, category := range domain.AllCategories() {
		if byCategory[category] == 0 {
			continue
		}
		label := m.styles.ProfileLabel.Render(category.Display())
		value := m.styles.ProfileValue.Render(fmt.Sprintf("%d", byCategory[category]))
		lines = append(lines, label+value)
	}

	return padLines(strings.Join(lines, "\n"), h)
}

// renderWelcome renders the first-run overlay.
func (m *Model) renderWelcome() string {
	body := strings.Join([]string{
		m.styles.DialogTitle.Render("Welcome to stardust"),
		"",
		m.styles.DialogPrompt.Render("Every task you add becomes a star in your sky."),
		m.styles.DialogPrompt.Render("Drag stars around, complete them to make them shine,"),
		m.styles.DialogPrompt.Render("and watch overdue ones streak past as meteors."),
		"",
		m.styles.DialogPrompt.Render("Press enter to begin."),
	}, "\n")
	return m.styles.Dialog.Render(body)
}

// renderHelp renders the expanded keybinding help.
func (m *Model) renderHelp() string {
	m.help.ShowAll = true
	body := m.styles.DialogTitle.Render("Keys") + "\n\n" + m.help.View(m.keys)
	m.help.ShowAll = false
	return m.styles.Dialog.Render(body)
}

// renderNewStarForm renders the staged new-star dialog.
func (m *Model) renderNewStarForm() string {
	var lines []string
	lines = append(lines, m.styles.DialogTitle.Render("New star"))
	lines = append(lines, "")

	switch m.mode {
	case ModeInputTitle:
		lines = append(lines, m.styles.DialogPrompt.Render("Title:"))
		lines = append(lines, m.styles.Input.Render(m.titleInput.View()))

	case ModeInputDesc:
		lines = append(lines, m.styles.DialogPrompt.Render("Description:"))
		lines = append(lines, m.styles.Input.Render(m.descInput.View()))

	case ModePickCategory:
		lines = append(lines, m.styles.DialogPrompt.Render("Category:"))
		for i, category := range domain.AllCategories() {
			marker := "  "
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(domain.StyleFor(category, domain.DifficultyEasy).Color))
			if i == m.pickCursor {
				marker = "> "
				style = style.Bold(true)
			}
			lines = append(lines, marker+style.Render(category.Display()))
		}

	case ModePickDifficulty:
		lines = append(lines, m.styles.DialogPrompt.Render("Difficulty:"))
		for i, difficulty := range domain.AllDifficulties() {
			marker := "  "
			style := m.styles.DialogPrompt
			if i == m.pickCursor {
				marker = "> "
				style = style.Bold(true).Foreground(Colors.Selected)
			}
			lines = append(lines, marker+style.Render(difficulty.Display()))
		}
	}

	lines = append(lines, "")
	lines = append(lines, m.styles.Footer.Render("enter continue · esc cancel"))
	return m.styles.Dialog.Render(strings.Join(lines, "\n"))
}

// renderConfirmDelete renders the delete confirmation dialog.
func (m *Model) renderConfirmDelete() string {
	title := fmt.Sprintf("Remove star #%d?", m.confirmTaskID)
	body := strings.Join([]string{
		m.styles.DialogTitle.Render(title),
		"",
		m.styles.DialogPrompt.Render("y confirm · esc cancel"),
	}, "\n")
	return m.styles.Dialog.Render(body)
}

// renderFooter renders the error or the short help plus selection info.
func (m *Model) renderFooter() string {
	if m.err != nil {
		return truncateLine(m.styles.ErrorMsg.Render("error: "+m.err.Error()), m.width)
	}

	line := m.help.View(m.keys)
	if task := m.SelectedTask(); task != nil {
		line = m.styles.Footer.Render("#"+fmt.Sprint(task.ID)+" "+task.Title) + "  " + line
	}
	return truncateLine(line, m.width)
}

// truncateLine hard-truncates a rendered line to the given display width.
func truncateLine(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	// Truncation of styled text is approximate; cut on rune boundaries.
	runes := []rune(s)
	if len(runes) > w {
		runes = runes[:w]
	}
	return string(runes)
}

// padLines pads content with blank lines up to the canvas height.
func padLines(s string, h int) string {
	lines := strings.Split(s, "\n")
	for len(lines) < h {
		lines = append(lines, "")
	}
	if len(lines) > h {
		lines = lines[:h]
	}
	return strings.Join(lines, "\n")
}
