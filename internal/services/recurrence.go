package services

import (
	"context"
	"log"
	"time"

	"github.com/lifedesk/lifedesk-api/internal/constants"
	"github.com/lifedesk/lifedesk-api/internal/models"
	"github.com/lifedesk/lifedesk-api/internal/store"
	"github.com/lifedesk/lifedesk-api/internal/utils"
)

// RecurrenceEngine periodically sweeps the task collection and appends
// the next occurrence of every completed recurring task. It owns a single
// goroutine, started with Run and stopped through the context.
type RecurrenceEngine struct {
	tasks    *TaskService
	interval time.Duration
}

// NewRecurrenceEngine creates a new RecurrenceEngine
func NewRecurrenceEngine(tasks *TaskService, interval time.Duration) *RecurrenceEngine {
	return &RecurrenceEngine{
		tasks:    tasks,
		interval: interval,
	}
}

// Run ticks until ctx is cancelled. A sweep has no failure mode of its
// own (a rejected store write is swallowed by the store), so there is
// nothing to retry; the next tick re-evaluates the whole collection.
func (e *RecurrenceEngine) Run(ctx context.Context) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if created := e.tasks.RegenerateRecurring(now); created > 0 {
				log.Printf("recurrence: created %d task occurrence(s)", created)
			}
		}
	}
}

// RegenerateRecurring performs one sweep at the given wall-clock time and
// returns how many occurrences were created.
//
// For every task that is recurring, DONE and carries a rule, the next due
// date is computed from the task's own due date. A new occurrence is only
// appended when no task with the same title and that due date is still
// open, and the next due date has arrived. That title+date+non-DONE key
// makes repeated sweeps idempotent; it also means two unrelated tasks
// sharing a title and date suppress each other, which is the inherited
// behavior and is kept as-is. The completed parent is never touched.
func (s *TaskService) RegenerateRecurring(now time.Time) int {
	var tasks []models.Task
	created := 0

	s.store.Update(store.CollectionTasks, &tasks, func() bool {
		initial := len(tasks)
		for i := 0; i < initial; i++ {
			t := tasks[i]
			if !t.IsRecurring || t.Status != models.TaskStatusDone || t.RecurrenceRule == "" {
				continue
			}

			// Dates carry no time of day; interpret them in the sweep's zone
			// so the has-it-arrived comparison stays calendar-local.
			due, err := time.ParseInLocation(constants.DateLayout, t.DueDate, now.Location())
			if err != nil {
				continue
			}

			next := nextOccurrence(due, t.RecurrenceRule)
			nextDate := next.Format(constants.DateLayout)

			if hasOpenOccurrence(tasks, t.Title, nextDate) {
				continue
			}
			if next.After(now) {
				continue
			}

			occurrence := t
			// Offset by the running count so occurrences minted in the same
			// tick get distinct second-resolution ids.
			occurrence.ID = utils.NewID(constants.PrefixTask, now.Add(time.Duration(created)*time.Second))
			occurrence.DueDate = nextDate
			occurrence.Status = models.TaskStatusTodo
			tasks = append(tasks, occurrence)
			created++
		}
		return created > 0
	})

	return created
}

// nextOccurrence advances a due date by one rule period. Monthly keeps
// the day of month, clamped to the last day of shorter months
// (Jan 31 -> Feb 28/29).
func nextOccurrence(due time.Time, rule models.RecurrenceRule) time.Time {
	switch rule {
	case models.RecurrenceDaily:
		return due.AddDate(0, 0, 1)
	case models.RecurrenceWeekly:
		return due.AddDate(0, 0, 7)
	case models.RecurrenceMonthly:
		return addMonthClamped(due)
	}
	return due
}

// addMonthClamped adds one calendar month without the normalization
// time.AddDate performs (which would turn Jan 31 into Mar 2/3).
func addMonthClamped(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
	day := t.Day()
	if last := daysInMonth(firstOfNext); day > last {
		day = last
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), day, 0, 0, 0, 0, t.Location())
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// hasOpenOccurrence reports whether any task in the list shares the title
// and due date and is not yet DONE. The scan covers occurrences appended
// earlier in the same sweep.
func hasOpenOccurrence(tasks []models.Task, title, dueDate string) bool {
	for _, t := range tasks {
		if t.Title == title && t.DueDate == dueDate && t.Status != models.TaskStatusDone {
			return true
		}
	}
	return false
}
