package models

type HabitFrequency string

const (
	HabitDaily  HabitFrequency = "DAILY"
	HabitWeekly HabitFrequency = "WEEKLY"
)

// Habit tracks a repeated activity and its current streak count.
type Habit struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Frequency HabitFrequency `json:"frequency"`
	StartDate string         `json:"start_date"`
	Streak    int            `json:"streak"`
	IsActive  bool           `json:"is_active"`
	Notes     string         `json:"notes"`
}
