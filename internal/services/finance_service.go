package services

import (
	"errors"
	"time"

	"github.com/lifedesk/lifedesk-api/internal/constants"
	"github.com/lifedesk/lifedesk-api/internal/models"
	"github.com/lifedesk/lifedesk-api/internal/store"
	"github.com/lifedesk/lifedesk-api/internal/utils"
)

var (
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrFixedBudgetNotFound  = errors.New("fixed budget not found")
	ErrFixedExpenseNotFound = errors.New("fixed expense not found")
	ErrAmountRequired       = errors.New("amount must not be negative")
	ErrInvalidTransaction   = errors.New("transaction type must be INCOME or EXPENSE")
	ErrMonthRequired        = errors.New("month is required")
	ErrCategoryRequired     = errors.New("category is required")
	ErrSourceRequired       = errors.New("source is required")
)

// FinanceService handles project expenses, day-to-day transactions and
// the fixed monthly budgets with their category allocations.
type FinanceService struct {
	store *store.Store
	now   func() time.Time
}

// NewFinanceService creates a new FinanceService
func NewFinanceService(st *store.Store) *FinanceService {
	return &FinanceService{
		store: st,
		now:   time.Now,
	}
}

// ── Project expenses ────────────────────────────────────────────────────

// CreateExpenseInput represents input for creating a project expense
type CreateExpenseInput struct {
	ProjectID     string  `json:"project_id"`
	Date          string  `json:"date"`
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Vendor        string  `json:"vendor"`
	Notes         string  `json:"notes"`
	ReceiptURL    string  `json:"receipt_url"`
}

// UpdateExpenseInput represents input for updating a project expense
type UpdateExpenseInput struct {
	ProjectID     *string  `json:"project_id"`
	Date          *string  `json:"date"`
	Category      *string  `json:"category"`
	Amount        *float64 `json:"amount"`
	PaymentMethod *string  `json:"payment_method"`
	Vendor        *string  `json:"vendor"`
	Notes         *string  `json:"notes"`
	ReceiptURL    *string  `json:"receipt_url"`
}

// ListExpenses returns expenses matching the query over category, vendor
// and notes
func (s *FinanceService) ListExpenses(query string) []models.Expense {
	var expenses []models.Expense
	s.store.Load(store.CollectionExpenses, &expenses)

	filtered := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if utils.MatchesQuery(query, e.Category, e.Vendor, e.Notes) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// CreateExpense appends a new project expense
func (s *FinanceService) CreateExpense(input CreateExpenseInput) (*models.Expense, error) {
	if input.Category == "" {
		return nil, ErrCategoryRequired
	}
	if input.Amount < 0 {
		return nil, ErrAmountRequired
	}
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}

	expense := models.Expense{
		ID:            utils.NewID(constants.PrefixExpense, s.now()),
		ProjectID:     input.ProjectID,
		Date:          input.Date,
		Category:      input.Category,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
		Vendor:        input.Vendor,
		Notes:         input.Notes,
		ReceiptURL:    input.ReceiptURL,
	}

	var expenses []models.Expense
	s.store.Update(store.CollectionExpenses, &expenses, func() bool {
		expenses = append(expenses, expense)
		return true
	})

	return &expense, nil
}

// UpdateExpense merges the submitted fields onto the stored expense
func (s *FinanceService) UpdateExpense(id string, input UpdateExpenseInput) (*models.Expense, error) {
	var expenses []models.Expense
	var expense models.Expense
	err := ErrExpenseNotFound

	s.store.Update(store.CollectionExpenses, &expenses, func() bool {
		for i := range expenses {
			if expenses[i].ID != id {
				continue
			}

			e := &expenses[i]
			if input.Category != nil {
				if *input.Category == "" {
					err = ErrCategoryRequired
					return false
				}
				e.Category = *input.Category
			}
			if input.Date != nil {
				if dateErr := validateDate(*input.Date); dateErr != nil {
					err = dateErr
					return false
				}
				e.Date = *input.Date
			}
			if input.Amount != nil {
				if *input.Amount < 0 {
					err = ErrAmountRequired
					return false
				}
				e.Amount = *input.Amount
			}
			if input.ProjectID != nil {
				e.ProjectID = *input.ProjectID
			}
			if input.PaymentMethod != nil {
				e.PaymentMethod = *input.PaymentMethod
			}
			if input.Vendor != nil {
				e.Vendor = *input.Vendor
			}
			if input.Notes != nil {
				e.Notes = *input.Notes
			}
			if input.ReceiptURL != nil {
				e.ReceiptURL = *input.ReceiptURL
			}

			expense = *e
			err = nil
			return true
		}
		return false
	})

	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// DeleteExpense removes a project expense
func (s *FinanceService) DeleteExpense(id string) error {
	var expenses []models.Expense
	err := ErrExpenseNotFound

	s.store.Update(store.CollectionExpenses, &expenses, func() bool {
		for i := range expenses {
			if expenses[i].ID == id {
				expenses = append(expenses[:i], expenses[i+1:]...)
				err = nil
				return true
			}
		}
		return false
	})

	return err
}

// ── Transactions (not-fixed budget) ─────────────────────────────────────

// CreateTransactionInput represents input for creating a transaction
type CreateTransactionInput struct {
	Date     string                 `json:"date"`
	Source   string                 `json:"source"`
	Type     models.TransactionType `json:"type"`
	Category string                 `json:"category"`
	Amount   float64                `json:"amount"`
	Notes    string                 `json:"notes"`
}

// UpdateTransactionInput represents input for updating a transaction
type UpdateTransactionInput struct {
	Date     *string                 `json:"date"`
	Source   *string                 `json:"source"`
	Type     *models.TransactionType `json:"type"`
	Category *string                 `json:"category"`
	Amount   *float64                `json:"amount"`
	Notes    *string                 `json:"notes"`
}

// ListTransactions returns transactions matching the query over source,
// category and notes
func (s *FinanceService) ListTransactions(query string) []models.Transaction {
	var transactions []models.Transaction
	s.store.Load(store.CollectionTransactions, &transactions)

	filtered := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if utils.MatchesQuery(query, t.Source, t.Category, t.Notes) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// CreateTransaction appends a new income or expense transaction
func (s *FinanceService) CreateTransaction(input CreateTransactionInput) (*models.Transaction, error) {
	if input.Source == "" {
		return nil, ErrSourceRequired
	}
	if input.Type != models.TransactionIncome && input.Type != models.TransactionExpense {
		return nil, ErrInvalidTransaction
	}
	if input.Amount < 0 {
		return nil, ErrAmountRequired
	}
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}

	if input.Category == "" {
		input.Category = models.CategoryMisc
	}

	transaction := models.Transaction{
		ID:       utils.NewID(constants.PrefixTransaction, s.now()),
		Date:     input.Date,
		Source:   input.Source,
		Type:     input.Type,
		Category: input.Category,
		Amount:   input.Amount,
		Notes:    input.Notes,
	}

	var transactions []models.Transaction
	s.store.Update(store.CollectionTransactions, &transactions, func() bool {
		transactions = append(transactions, transaction)
		return true
	})

	return &transaction, nil
}

// UpdateTransaction merges the submitted fields onto the stored
// transaction
func (s *FinanceService) UpdateTransaction(id string, input UpdateTransactionInput) (*models.Transaction, error) {
	var transactions []models.Transaction
	var transaction models.Transaction
	err := ErrTransactionNotFound

	s.store.Update(store.CollectionTransactions, &transactions, func() bool {
		for i := range transactions {
			if transactions[i].ID != id {
				continue
			}

			t := &transactions[i]
			if input.Source != nil {
				if *input.Source == "" {
					err = ErrSourceRequired
					return false
				}
				t.Source = *input.Source
			}
			if input.Type != nil {
				if *input.Type != models.TransactionIncome && *input.Type != models.TransactionExpense {
					err = ErrInvalidTransaction
					return false
				}
				t.Type = *input.Type
			}
			if input.Date != nil {
				if dateErr := validateDate(*input.Date); dateErr != nil {
					err = dateErr
					return false
				}
				t.Date = *input.Date
			}
			if input.Category != nil {
				t.Category = *input.Category
			}
			if input.Amount != nil {
				if *input.Amount < 0 {
					err = ErrAmountRequired
					return false
				}
				t.Amount = *input.Amount
			}
			if input.Notes != nil {
				t.Notes = *input.Notes
			}

			transaction = *t
			err = nil
			return true
		}
		return false
	})

	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// DeleteTransaction removes a transaction
func (s *FinanceService) DeleteTransaction(id string) error {
	var transactions []models.Transaction
	err := ErrTransactionNotFound

	s.store.Update(store.CollectionTransactions, &transactions, func() bool {
		for i := range transactions {
			if transactions[i].ID == id {
				transactions = append(transactions[:i], transactions[i+1:]...)
				err = nil
				return true
			}
		}
		return false
	})

	return err
}

// ── Fixed budgets ───────────────────────────────────────────────────────

// CreateFixedBudgetInput represents input for creating a fixed budget
type CreateFixedBudgetInput struct {
	Month       string  `json:"month"`
	TotalBudget float64 `json:"total_budget"`
	Notes       string  `json:"notes"`
}

// UpdateFixedBudgetInput represents input for updating a fixed budget
type UpdateFixedBudgetInput struct {
	Month       *string  `json:"month"`
	TotalBudget *float64 `json:"total_budget"`
	Notes       *string  `json:"notes"`
}

// ListFixedBudgets returns all fixed budgets in collection order
func (s *FinanceService) ListFixedBudgets() []models.FixedBudget {
	var budgets []models.FixedBudget
	s.store.Load(store.CollectionFixedBudgets, &budgets)
	return budgets
}

// CreateFixedBudget appends a new monthly budget
func (s *FinanceService) CreateFixedBudget(input CreateFixedBudgetInput) (*models.FixedBudget, error) {
	if input.Month == "" {
		return nil, ErrMonthRequired
	}
	if input.TotalBudget < 0 {
		return nil, ErrAmountRequired
	}

	budget := models.FixedBudget{
		ID:          utils.NewID(constants.PrefixFixedBudget, s.now()),
		Month:       input.Month,
		TotalBudget: input.TotalBudget,
		Notes:       input.Notes,
	}

	var budgets []models.FixedBudget
	s.store.Update(store.CollectionFixedBudgets, &budgets, func() bool {
		budgets = append(budgets, budget)
		return true
	})

	return &budget, nil
}

// UpdateFixedBudget merges the submitted fields onto the stored budget
func (s *FinanceService) UpdateFixedBudget(id string, input UpdateFixedBudgetInput) (*models.FixedBudget, error) {
	var budgets []models.FixedBudget
	var budget models.FixedBudget
	err := ErrFixedBudgetNotFound

	s.store.Update(store.CollectionFixedBudgets, &budgets, func() bool {
		for i := range budgets {
			if budgets[i].ID != id {
				continue
			}

			b := &budgets[i]
			if input.Month != nil {
				if *input.Month == "" {
					err = ErrMonthRequired
					return false
				}
				b.Month = *input.Month
			}
			if input.TotalBudget != nil {
				if *input.TotalBudget < 0 {
					err = ErrAmountRequired
					return false
				}
				b.TotalBudget = *input.TotalBudget
			}
			if input.Notes != nil {
				b.Notes = *input.Notes
			}

			budget = *b
			err = nil
			return true
		}
		return false
	})

	if err != nil {
		return nil, err
	}
	return &budget, nil
}

// DeleteFixedBudget removes a monthly budget. Its fixed expenses are kept
// with a dangling reference, the same soft-reference rule every other
// module follows.
func (s *FinanceService) DeleteFixedBudget(id string) error {
	var budgets []models.FixedBudget
	err := ErrFixedBudgetNotFound

	s.store.Update(store.CollectionFixedBudgets, &budgets, func() bool {
		for i := range budgets {
			if budgets[i].ID == id {
				budgets = append(budgets[:i], budgets[i+1:]...)
				err = nil
				return true
			}
		}
		return false
	})

	return err
}

// ── Fixed expenses ──────────────────────────────────────────────────────

// CreateFixedExpenseInput represents input for creating a fixed expense
type CreateFixedExpenseInput struct {
	FixedBudgetID   string  `json:"fixed_budget_id"`
	Category        string  `json:"category"`
	AllocatedAmount float64 `json:"allocated_amount"`
	SpentAmount     float64 `json:"spent_amount"`
	Notes           string  `json:"notes"`
}

// UpdateFixedExpenseInput represents input for updating a fixed expense
type UpdateFixedExpenseInput struct {
	FixedBudgetID   *string  `json:"fixed_budget_id"`
	Category        *string  `json:"category"`
	AllocatedAmount *float64 `json:"allocated_amount"`
	SpentAmount     *float64 `json:"spent_amount"`
	Notes           *string  `json:"notes"`
}

// ListFixedExpenses returns fixed expenses, optionally narrowed to one
// budget
func (s *FinanceService) ListFixedExpenses(fixedBudgetID string) []models.FixedExpense {
	var expenses []models.FixedExpense
	s.store.Load(store.CollectionFixedExpenses, &expenses)

	if fixedBudgetID == "" {
		return expenses
	}

	filtered := make([]models.FixedExpense, 0, len(expenses))
	for _, e := range expenses {
		if e.FixedBudgetID == fixedBudgetID {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// CreateFixedExpense appends a new category allocation
func (s *FinanceService) CreateFixedExpense(input CreateFixedExpenseInput) (*models.FixedExpense, error) {
	if input.Category == "" {
		return nil, ErrCategoryRequired
	}
	if input.AllocatedAmount < 0 || input.SpentAmount < 0 {
		return nil, ErrAmountRequired
	}

	expense := models.FixedExpense{
		ID:              utils.NewID(constants.PrefixFixedExpense, s.now()),
		FixedBudgetID:   input.FixedBudgetID,
		Category:        input.Category,
		AllocatedAmount: input.AllocatedAmount,
		SpentAmount:     input.SpentAmount,
		Notes:           input.Notes,
	}

	var expenses []models.FixedExpense
	s.store.Update(store.CollectionFixedExpenses, &expenses, func() bool {
		expenses = append(expenses, expense)
		return true
	})

	return &expense, nil
}

// UpdateFixedExpense merges the submitted fields onto the stored fixed
// expense
func (s *FinanceService) UpdateFixedExpense(id string, input UpdateFixedExpenseInput) (*models.FixedExpense, error) {
	var expenses []models.FixedExpense
	var expense models.FixedExpense
	err := ErrFixedExpenseNotFound

	s.store.Update(store.CollectionFixedExpenses, &expenses, func() bool {
		for i := range expenses {
			if expenses[i].ID != id {
				continue
			}

			e := &expenses[i]
			if input.Category != nil {
				if *input.Category == "" {
					err = ErrCategoryRequired
					return false
				}
				e.Category = *input.Category
			}
			if input.FixedBudgetID != nil {
				e.FixedBudgetID = *input.FixedBudgetID
			}
			if input.AllocatedAmount != nil {
				if *input.AllocatedAmount < 0 {
					err = ErrAmountRequired
					return false
				}
				e.AllocatedAmount = *input.AllocatedAmount
			}
			if input.SpentAmount != nil {
				if *input.SpentAmount < 0 {
					err = ErrAmountRequired
					return false
				}
				e.SpentAmount = *input.SpentAmount
			}
			if input.Notes != nil {
				e.Notes = *input.Notes
			}

			expense = *e
			err = nil
			return true
		}
		return false
	})

	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// DeleteFixedExpense removes a category allocation
func (s *FinanceService) DeleteFixedExpense(id string) error {
	var expenses []models.FixedExpense
	err := ErrFixedExpenseNotFound

	s.store.Update(store.CollectionFixedExpenses, &expenses, func() bool {
		for i := range expenses {
			if expenses[i].ID == id {
				expenses = append(expenses[:i], expenses[i+1:]...)
				err = nil
				return true
			}
		}
		return false
	})

	return err
}

// ── Derived figures ─────────────────────────────────────────────────────

// Totals recomputes income, expense and balance from the full transaction
// collection. Pure derivation, recalculated on every call.
func (s *FinanceService) Totals() (income, expense, balance float64) {
	var transactions []models.Transaction
	s.store.Load(store.CollectionTransactions, &transactions)

	for _, t := range transactions {
		switch t.Type {
		case models.TransactionIncome:
			income += t.Amount
		case models.TransactionExpense:
			expense += t.Amount
		}
	}
	return income, expense, income - expense
}

// ExpenseByCategory sums EXPENSE transactions per category
func (s *FinanceService) ExpenseByCategory() map[string]float64 {
	var transactions []models.Transaction
	s.store.Load(store.CollectionTransactions, &transactions)

	byCategory := make(map[string]float64)
	for _, t := range transactions {
		if t.Type == models.TransactionExpense {
			byCategory[t.Category] += t.Amount
		}
	}
	return byCategory
}
