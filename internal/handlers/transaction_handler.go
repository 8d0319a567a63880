package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetwise/internal/calendar"
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/pagination"
	"budgetwise/internal/services"
	"budgetwise/internal/store"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService, auditService: auditService}
}

// CreateTransactionRequest represents the request payload for creating a transaction.
// Amount is signed: outflows are negative. A missing category or
// "ready-to-assign" records income to Ready to Assign.
type CreateTransactionRequest struct {
	AccountID  string  `json:"account_id" binding:"required,uuid"`
	Date       string  `json:"date" binding:"omitempty,budget_date"`
	Amount     int64   `json:"amount" binding:"required"`
	Memo       string  `json:"memo" binding:"max=500"`
	Payee      string  `json:"payee" binding:"max=200"`
	CategoryID *string `json:"category_id" binding:"omitempty,uuid_or_rta"`
	IsCleared  bool    `json:"is_cleared"`
	UserDateQuery
}

// CreateTransferRequest represents the request payload for creating a transfer
type CreateTransferRequest struct {
	FromAccountID string  `json:"from_account_id" binding:"required,uuid"`
	ToAccountID   string  `json:"to_account_id" binding:"required,uuid"`
	Amount        int64   `json:"amount" binding:"required,gt=0"`
	Date          string  `json:"date" binding:"omitempty,budget_date"`
	Memo          string  `json:"memo" binding:"max=500"`
	CategoryID    *string `json:"category_id" binding:"omitempty,uuid"`
	IsCleared     bool    `json:"is_cleared"`
	UserDateQuery
}

// UpdateTransactionRequest represents a partial transaction update.
// clear_category removes the category (income to Ready to Assign).
type UpdateTransactionRequest struct {
	AccountID     *string `json:"account_id" binding:"omitempty,uuid"`
	Date          *string `json:"date" binding:"omitempty,budget_date"`
	Amount        *int64  `json:"amount"`
	Memo          *string `json:"memo" binding:"omitempty,max=500"`
	Payee         *string `json:"payee" binding:"omitempty,max=200"`
	CategoryID    *string `json:"category_id" binding:"omitempty,uuid_or_rta"`
	ClearCategory bool    `json:"clear_category"`
	IsCleared     *bool   `json:"is_cleared"`
	IsReconciled  *bool   `json:"is_reconciled"`
	UserDateQuery
}

// TransactionListQuery carries the optional filters of a budget listing.
type TransactionListQuery struct {
	AccountID  string `form:"account_id" binding:"omitempty,uuid"`
	CategoryID string `form:"category_id" binding:"omitempty,uuid"`
	FromDate   string `form:"from_date" binding:"omitempty,budget_date"`
	ToDate     string `form:"to_date" binding:"omitempty,budget_date"`
	Cleared    *bool  `form:"cleared"`
}

func (q TransactionListQuery) filter(budgetID string) store.TransactionFilter {
	f := store.TransactionFilter{BudgetID: budgetID, AccountID: q.AccountID, Cleared: q.Cleared}
	if q.CategoryID != "" {
		f.CategoryID = &q.CategoryID
	}
	// Both dates were validated by binding.
	if d, err := calendar.ParseDate(q.FromDate); err == nil {
		f.FromDate = &d
	}
	if d, err := calendar.ParseDate(q.ToDate); err == nil {
		f.ToDate = &d
	}
	return f
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record an inflow or outflow. Card outflows create debt and may be covered at once.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} services.TransactionResult "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input or future date"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account or category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	ud, err := userDate(c, &req.UserDateQuery)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, services.TransactionInput{
		AccountID:  req.AccountID,
		Date:       req.Date,
		Amount:     req.Amount,
		Memo:       req.Memo,
		Payee:      req.Payee,
		CategoryID: req.CategoryID,
		IsCleared:  req.IsCleared,
	}, ud)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_TRANSACTION", "transaction", result.Transaction.ID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount, "account_id": req.AccountID, "category_id": req.CategoryID})

	c.JSON(http.StatusCreated, result)
}

// CreateTransfer handles the creation of a transfer between two accounts
// @Summary     Create a transfer
// @Description Move money between two accounts of a budget. A transfer to a credit account is a card payment.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransferRequest true "Transfer details"
// @Success     201 {object} services.TransactionResult "Transfer created"
// @Failure     400 {object} ErrorResponse "Invalid input or same account"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     409 {object} ErrorResponse "Accounts in different budgets"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/transfer [post]
func (h *TransactionHandler) CreateTransfer(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	ud, err := userDate(c, &req.UserDateQuery)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.CreateTransfer(c.Request.Context(), userID, services.TransferInput{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Date:          req.Date,
		Amount:        req.Amount,
		Memo:          req.Memo,
		CategoryID:    req.CategoryID,
		IsCleared:     req.IsCleared,
	}, ud)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_TRANSFER", "transaction", result.Transaction.ID, c.ClientIP(),
		map[string]interface{}{"from": req.FromAccountID, "to": req.ToAccountID, "amount": req.Amount})

	c.JSON(http.StatusCreated, result)
}

// GetAccountTransactions lists the transactions of an account
// @Summary     List account transactions
// @Description Newest first, paginated
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  string true  "Account ID"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /transactions/account/{id} [get]
func (h *TransactionHandler) GetAccountTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.transactionService.GetAccountTransactions(c.Request.Context(), userID, accountID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBudgetTransactions lists the transactions of a budget
// @Summary     List budget transactions
// @Description Newest first, paginated, with optional filters
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id          path  string true  "Budget ID"
// @Param       page        query int    false "Page number (default 1)"
// @Param       page_size   query int    false "Items per page (default 20, max 100)"
// @Param       account_id  query string false "Filter by account ID"
// @Param       category_id query string false "Filter by category ID"
// @Param       from_date   query string false "Filter by start date (YYYY-MM-DD)"
// @Param       to_date     query string false "Filter by end date (YYYY-MM-DD)"
// @Param       cleared     query bool   false "Filter by cleared state"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /transactions/budget/{id} [get]
func (h *TransactionHandler) GetBudgetTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var q TransactionListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.transactionService.GetBudgetTransactions(c.Request.Context(), userID, budgetID, page, q.filter(budgetID))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetTransactionByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(c.Request.Context(), userID, transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransaction handles a partial transaction update
// @Summary     Update a transaction
// @Description Reverses the old effect on balances and debt, then applies the new one
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                   true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to change"
// @Success     200 {object} services.TransactionResult "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input, future date or transfer edit"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     409 {object} ErrorResponse "Account in another budget"
// @Router      /transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	ud, err := userDate(c, &req.UserDateQuery)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, transactionID, services.TransactionPatch{
		AccountID:     req.AccountID,
		Date:          req.Date,
		Amount:        req.Amount,
		Memo:          req.Memo,
		Payee:         req.Payee,
		CategoryID:    req.CategoryID,
		ClearCategory: req.ClearCategory,
		IsCleared:     req.IsCleared,
		IsReconciled:  req.IsReconciled,
	}, ud)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_TRANSACTION", "transaction", transactionID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount, "account_id": req.AccountID, "category_id": req.CategoryID})

	c.JSON(http.StatusOK, result)
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete a transaction
// @Description Reverses the transaction's effect. Deleting one leg of a transfer deletes both.
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} services.TransactionResult "Deleted transaction and Ready to Assign"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	ud, err := userDate(c, nil)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, transactionID, ud)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_TRANSACTION", "transaction", transactionID, c.ClientIP(),
		map[string]interface{}{"amount": result.Transaction.Amount, "account_id": result.Transaction.AccountID})

	c.JSON(http.StatusOK, result)
}

// ToggleCleared flips the cleared state of a transaction
// @Summary     Toggle cleared
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} services.TransactionResult "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Router      /transactions/{id}/toggle-cleared [patch]
func (h *TransactionHandler) ToggleCleared(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	ud, err := userDate(c, nil)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.ToggleCleared(c.Request.Context(), userID, transactionID, ud)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
