package domain

import "time"

// SeedTasks returns the built-in example sky used when no prior snapshot
// exists or the snapshot cannot be parsed. Timestamps are relative to now so
// the examples land in sensible scope buckets on first run.
func SeedTasks(now time.Time) []*Task {
	nowMS := now.UnixMilli()
	daysAgo := func(n int) int64 {
		return now.Add(-time.Duration(n) * 24 * time.Hour).UnixMilli()
	}
	ptr := func(v int64) *int64 { return &v }

	return []*Task{
		{
			ID:          1,
			Title:       "Sketch the interface mockups",
			Category:    CategoryCreative,
			Difficulty:  DifficultyHard,
			Completed:   true,
			CreatedAt:   nowMS,
			CompletedAt: ptr(nowMS),
			Position:    Position{X: 20, Y: 30},
		},
		{
			ID:          2,
			Title:       "Morning jog",
			Category:    CategoryHealth,
			Difficulty:  DifficultyMedium,
			Completed:   true,
			CreatedAt:   nowMS,
			CompletedAt: ptr(nowMS),
			Position:    Position{X: 45, Y: 40},
		},
		{
			ID:          3,
			Title:       "Write last week's report",
			Category:    CategoryWork,
			Difficulty:  DifficultyMedium,
			Completed:   true,
			CreatedAt:   daysAgo(3),
			CompletedAt: ptr(daysAgo(3)),
			Position:    Position{X: 70, Y: 60},
		},
		{
			ID:         4,
			Title:      "Plan next month",
			Category:   CategoryLife,
			Difficulty: DifficultyEasy,
			CreatedAt:  daysAgo(15),
			Position:   Position{X: 30, Y: 80},
		},
		{
			// Sample overdue incomplete task for the meteor bucket.
			ID:         5,
			Title:      "Finish that half-read book",
			Category:   CategoryStudy,
			Difficulty: DifficultyEasy,
			CreatedAt:  daysAgo(2),
			Position:   Position{X: 60, Y: 20},
		},
	}
}
