package models

// Expense is a project-linked spend record.
type Expense struct {
	ID            string  `json:"id"`
	ProjectID     string  `json:"project_id"`
	Date          string  `json:"date"`
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	Vendor        string  `json:"vendor"`
	Notes         string  `json:"notes"`
	ReceiptURL    string  `json:"receipt_url,omitempty"`
}

type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// Transaction categories. Free-form values are accepted on input but the
// original UI only ever produces these five.
const (
	CategoryFood           = "Food"
	CategoryAcademic       = "Academic"
	CategoryFuel           = "Fuel"
	CategoryPersonalGrowth = "Personal Growth"
	CategoryMisc           = "Misc"
)

// Transaction is a day-to-day income or expense entry outside any fixed
// monthly budget.
type Transaction struct {
	ID       string          `json:"id"`
	Date     string          `json:"date"`
	Source   string          `json:"source"`
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
	Amount   float64         `json:"amount"`
	Notes    string          `json:"notes"`
}

// FixedBudget is the planned total for one month.
type FixedBudget struct {
	ID          string  `json:"id"`
	Month       string  `json:"month"`
	TotalBudget float64 `json:"total_budget"`
	Notes       string  `json:"notes"`
}

// FixedExpense allocates part of a FixedBudget to a category and tracks
// what was actually spent. FixedBudgetID is a soft reference.
type FixedExpense struct {
	ID              string  `json:"id"`
	FixedBudgetID   string  `json:"fixed_budget_id"`
	Category        string  `json:"category"`
	AllocatedAmount float64 `json:"allocated_amount"`
	SpentAmount     float64 `json:"spent_amount"`
	Notes           string  `json:"notes"`
}
