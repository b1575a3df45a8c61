// Package domain contains core business entities and interfaces.
package domain

// Category classifies a task and determines its star color.
type Category string

const (
	CategoryWork     Category = "WORK"
	CategoryStudy    Category = "STUDY"
	CategoryHealth   Category = "HEALTH"
	CategoryLife     Category = "LIFE"
	CategoryCreative Category = "CREATIVE"
)

// AllCategories returns all valid category values in display order.
func AllCategories() []Category {
	return []Category{
		CategoryWork,
		CategoryStudy,
		CategoryHealth,
		CategoryLife,
		CategoryCreative,
	}
}

// IsValid returns true if the category is one of the known values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryWork, CategoryStudy, CategoryHealth, CategoryLife, CategoryCreative:
		return true
	}
	return false
}

// Display returns a human-readable representation of the category.
func (c Category) Display() string {
	switch c {
	case CategoryWork:
		return "Work"
	case CategoryStudy:
		return "Study"
	case CategoryHealth:
		return "Health"
	case CategoryLife:
		return "Life"
	case CategoryCreative:
		return "Creative"
	default:
		return string(c)
	}
}

// Difficulty determines a star's visual size tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// AllDifficulties returns all valid difficulty values in display order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// IsValid returns true if the difficulty is one of the known values.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Display returns a human-readable representation of the difficulty.
func (d Difficulty) Display() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return string(d)
	}
}

// StarStyle is the fixed visual metadata associated with a star.
// Size is the original pixel tier; the TUI maps it to a glyph.
type StarStyle struct {
	Color string // Hex color from the category
	Size  int    // Size tier from the difficulty
}

// categoryColors maps each category to its fixed display color.
var categoryColors = map[Category]string{
	CategoryWork:     "#60A5FA",
	CategoryStudy:    "#C084FC",
	CategoryHealth:   "#4ADE80",
	CategoryLife:     "#FB923C",
	CategoryCreative: "#FDE047",
}

// difficultySizes maps each difficulty to its fixed size tier.
var difficultySizes = map[Difficulty]int{
	DifficultyEasy:   4,
	DifficultyMedium: 6,
	DifficultyHard:   10,
}

// StyleFor returns the visual style for a category/difficulty pair.
// Unknown values fall back to the smallest white star.
func StyleFor(c Category, d Difficulty) StarStyle {
	style := StarStyle{Color: "#FFFFFF", Size: difficultySizes[DifficultyEasy]}
	if color, ok := categoryColors[c]; ok {
		style.Color = color
	}
	if size, ok := difficultySizes[d]; ok {
		style.Size = size
	}
	return style
}

// Position is a star's normalized placement within its display container.
// Both axes are percentages in [0, 100].
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Clamp returns the position with both axes forced into [0, 100].
func (p Position) Clamp() Position {
	return Position{X: clampPercent(p.X), Y: clampPercent(p.Y)}
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Task represents a single to-do item rendered as a star.
// Fields are ordered to minimize memory padding.
type Task struct {
	CompletedAt *int64     `json:"completedAt,omitempty"` // Epoch ms, set iff Completed
	Deadline    *int64     `json:"deadline,omitempty"`    // Epoch ms, reserved (unused by logic)
	Title       string     `json:"title"`                 // Title (required)
	Description string     `json:"description,omitempty"` // Description (optional)
	Category    Category   `json:"category"`              // Category (fixed color)
	Difficulty  Difficulty `json:"difficulty"`            // Difficulty (fixed size tier)
	Position    Position   `json:"position"`              // Normalized canvas placement
	CreatedAt   int64      `json:"createdAt"`             // Epoch ms, immutable
	ID          int        `json:"id"`                    // Unique ID, assigned at creation
	Completed   bool       `json:"completed"`             // Completion flag
}

// Style returns the task's visual star style.
func (t *Task) Style() StarStyle {
	return StyleFor(t.Category, t.Difficulty)
}

// Clone returns a copy of the task. Pointer fields are duplicated so the
// caller can never mutate the stored entity through a snapshot.
func (t *Task) Clone() *Task {
	c := *t
	if t.CompletedAt != nil {
		v := *t.CompletedAt
		c.CompletedAt = &v
	}
	if t.Deadline != nil {
		v := *t.Deadline
		c.Deadline = &v
	}
	return &c
}
