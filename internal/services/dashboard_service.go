package services

import (
	"strings"
	"time"

	"github.com/lifedesk/lifedesk-api/internal/dto"
	"github.com/lifedesk/lifedesk-api/internal/models"
	"github.com/lifedesk/lifedesk-api/internal/store"
)

// DashboardService computes the derived figures for the dashboard. All
// aggregates are recomputed from the live collections on every call and
// hold no state of their own.
type DashboardService struct {
	store *store.Store
	now   func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(st *store.Store) *DashboardService {
	return &DashboardService{
		store: st,
		now:   time.Now,
	}
}

// Summary builds the full dashboard summary
func (s *DashboardService) Summary() dto.DashboardSummary {
	summary := dto.DashboardSummary{
		TasksByStatus:     make(map[string]int),
		ProjectsByStatus:  make(map[string]int),
		ExpenseByCategory: make(map[string]float64),
	}

	var tasks []models.Task
	s.store.Load(store.CollectionTasks, &tasks)
	for _, t := range tasks {
		summary.TasksByStatus[string(t.Status)]++
		if t.Status != models.TaskStatusDone {
			summary.OpenTasks++
		}
	}

	var projects []models.Project
	s.store.Load(store.CollectionProjects, &projects)
	for _, p := range projects {
		summary.ProjectsByStatus[string(p.Status)]++
	}

	thisMonth := s.now().Format("2006-01")
	var expenses []models.Expense
	s.store.Load(store.CollectionExpenses, &expenses)
	for _, e := range expenses {
		if strings.HasPrefix(e.Date, thisMonth) {
			summary.ExpensesThisMonth += e.Amount
		}
	}

	var habits []models.Habit
	s.store.Load(store.CollectionHabits, &habits)
	for _, h := range habits {
		if h.Streak > summary.TopHabitStreak {
			summary.TopHabitStreak = h.Streak
		}
	}

	var transactions []models.Transaction
	s.store.Load(store.CollectionTransactions, &transactions)
	for _, t := range transactions {
		switch t.Type {
		case models.TransactionIncome:
			summary.TotalIncome += t.Amount
		case models.TransactionExpense:
			summary.TotalExpense += t.Amount
			summary.ExpenseByCategory[t.Category] += t.Amount
		}
	}
	summary.Balance = summary.TotalIncome - summary.TotalExpense

	var stories []models.Story
	s.store.Load(store.CollectionStories, &stories)
	for _, st := range stories {
		switch st.Status {
		case models.StoryStatusInProgress:
			summary.StoriesInProgress++
		case models.StoryStatusCompleted:
			summary.StoriesCompleted++
		}
	}

	var scenes []models.Scene
	s.store.Load(store.CollectionScenes, &scenes)
	summary.SceneCount = len(scenes)

	var notes []models.Note
	s.store.Load(store.CollectionNotes, &notes)
	summary.NoteCount = len(notes)

	var shayaris []models.Shayari
	s.store.Load(store.CollectionShayaris, &shayaris)
	summary.ShayariCount = len(shayaris)

	// The most recently created fixed budget drives the budget card.
	var budgets []models.FixedBudget
	s.store.Load(store.CollectionFixedBudgets, &budgets)
	if len(budgets) > 0 {
		latest := budgets[len(budgets)-1]
		summary.LatestBudgetTotal = latest.TotalBudget

		var fixedExpenses []models.FixedExpense
		s.store.Load(store.CollectionFixedExpenses, &fixedExpenses)
		for _, fe := range fixedExpenses {
			if fe.FixedBudgetID == latest.ID {
				summary.LatestBudgetSpent += fe.SpentAmount
			}
		}
	}

	return summary
}
