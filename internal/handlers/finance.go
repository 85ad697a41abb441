package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/lifedesk/lifedesk-api/internal/errors"
	"github.com/lifedesk/lifedesk-api/internal/services"
)

type FinanceHandler struct {
	finance *services.FinanceService
}

func NewFinanceHandler(finance *services.FinanceService) *FinanceHandler {
	return &FinanceHandler{
		finance: finance,
	}
}

// ── Project expenses ────────────────────────────────────────────────────

// ListExpenses returns project expenses, filtered by ?q
func (h *FinanceHandler) ListExpenses(c *gin.Context) {
	expenses := h.finance.ListExpenses(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// CreateExpense creates a new project expense
func (h *FinanceHandler) CreateExpense(c *gin.Context) {
	var input services.CreateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.finance.CreateExpense(input)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// UpdateExpense merges the submitted fields onto an existing expense
func (h *FinanceHandler) UpdateExpense(c *gin.Context) {
	var input services.UpdateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.finance.UpdateExpense(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrExpenseNotFound) {
			apierrors.NotFound(c, "Expense not found")
			return
		}
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, expense)
}

// DeleteExpense removes a project expense
func (h *FinanceHandler) DeleteExpense(c *gin.Context) {
	if err := h.finance.DeleteExpense(c.Param("id")); err != nil {
		apierrors.NotFound(c, "Expense not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}

// ── Transactions ────────────────────────────────────────────────────────

// ListTransactions returns transactions with the derived totals
func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	transactions := h.finance.ListTransactions(c.Query("q"))
	income, expense, balance := h.finance.Totals()

	c.JSON(http.StatusOK, gin.H{
		"transactions":  transactions,
		"total_income":  income,
		"total_expense": expense,
		"balance":       balance,
	})
}

// CreateTransaction creates a new transaction
func (h *FinanceHandler) CreateTransaction(c *gin.Context) {
	var input services.CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	transaction, err := h.finance.CreateTransaction(input)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// UpdateTransaction merges the submitted fields onto an existing
// transaction
func (h *FinanceHandler) UpdateTransaction(c *gin.Context) {
	var input services.UpdateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	transaction, err := h.finance.UpdateTransaction(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			apierrors.NotFound(c, "Transaction not found")
			return
		}
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction removes a transaction
func (h *FinanceHandler) DeleteTransaction(c *gin.Context) {
	if err := h.finance.DeleteTransaction(c.Param("id")); err != nil {
		apierrors.NotFound(c, "Transaction not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}

// ── Fixed budgets ───────────────────────────────────────────────────────

// ListFixedBudgets returns all monthly budgets
func (h *FinanceHandler) ListFixedBudgets(c *gin.Context) {
	budgets := h.finance.ListFixedBudgets()
	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// CreateFixedBudget creates a new monthly budget
func (h *FinanceHandler) CreateFixedBudget(c *gin.Context) {
	var input services.CreateFixedBudgetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	budget, err := h.finance.CreateFixedBudget(input)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, budget)
}

// UpdateFixedBudget merges the submitted fields onto an existing budget
func (h *FinanceHandler) UpdateFixedBudget(c *gin.Context) {
	var input services.UpdateFixedBudgetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	budget, err := h.finance.UpdateFixedBudget(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrFixedBudgetNotFound) {
			apierrors.NotFound(c, "Fixed budget not found")
			return
		}
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, budget)
}

// DeleteFixedBudget removes a monthly budget
func (h *FinanceHandler) DeleteFixedBudget(c *gin.Context) {
	if err := h.finance.DeleteFixedBudget(c.Param("id")); err != nil {
		apierrors.NotFound(c, "Fixed budget not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fixed budget deleted"})
}

// ── Fixed expenses ──────────────────────────────────────────────────────

// ListFixedExpenses returns fixed expenses, optionally filtered by
// ?fixed_budget_id
func (h *FinanceHandler) ListFixedExpenses(c *gin.Context) {
	expenses := h.finance.ListFixedExpenses(c.Query("fixed_budget_id"))
	c.JSON(http.StatusOK, gin.H{"fixed_expenses": expenses})
}

// CreateFixedExpense creates a new category allocation
func (h *FinanceHandler) CreateFixedExpense(c *gin.Context) {
	var input services.CreateFixedExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.finance.CreateFixedExpense(input)
	if err != nil {
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// UpdateFixedExpense merges the submitted fields onto an existing fixed
// expense
func (h *FinanceHandler) UpdateFixedExpense(c *gin.Context) {
	var input services.UpdateFixedExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.finance.UpdateFixedExpense(c.Param("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrFixedExpenseNotFound) {
			apierrors.NotFound(c, "Fixed expense not found")
			return
		}
		apierrors.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, expense)
}

// DeleteFixedExpense removes a category allocation
func (h *FinanceHandler) DeleteFixedExpense(c *gin.Context) {
	if err := h.finance.DeleteFixedExpense(c.Param("id")); err != nil {
		apierrors.NotFound(c, "Fixed expense not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fixed expense deleted"})
}
