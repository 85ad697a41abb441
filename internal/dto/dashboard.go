package dto

// DashboardSummary aggregates the headline figures shown on the
// dashboard. Every field is derived from the current collections on each
// request; nothing here is stored.
type DashboardSummary struct {
	OpenTasks         int                `json:"open_tasks"`
	TasksByStatus     map[string]int     `json:"tasks_by_status"`
	ProjectsByStatus  map[string]int     `json:"projects_by_status"`
	ExpensesThisMonth float64            `json:"expenses_this_month"`
	TopHabitStreak    int                `json:"top_habit_streak"`
	TotalIncome       float64            `json:"total_income"`
	TotalExpense      float64            `json:"total_expense"`
	Balance           float64            `json:"balance"`
	ExpenseByCategory map[string]float64 `json:"expense_by_category"`
	StoriesInProgress int                `json:"stories_in_progress"`
	StoriesCompleted  int                `json:"stories_completed"`
	SceneCount        int                `json:"scene_count"`
	NoteCount         int                `json:"note_count"`
	ShayariCount      int                `json:"shayari_count"`
	LatestBudgetSpent float64            `json:"latest_budget_spent"`
	LatestBudgetTotal float64            `json:"latest_budget_total"`
}
