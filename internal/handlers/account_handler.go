package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
	"budgetwise/internal/services"
)

// AccountHandler handles account-related requests.
type AccountHandler struct {
	accountService services.AccountServicer
	auditService   services.AuditServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer, auditService services.AuditServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService, auditService: auditService}
}

// CreateAccountRequest represents the request payload for opening an account
type CreateAccountRequest struct {
	BudgetID        string             `json:"budget_id" binding:"required,uuid"`
	Name            string             `json:"name" binding:"required,min=1,max=100"`
	Type            models.AccountType `json:"type" binding:"required,account_type"`
	StartingBalance int64              `json:"starting_balance"`
	DisplayOrder    int                `json:"display_order" binding:"gte=0"`
}

// UpdateAccountRequest represents the request payload for updating an account.
type UpdateAccountRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=1,max=100"`
	IsActive        *bool   `json:"is_active"`
	DisplayOrder    *int    `json:"display_order" binding:"omitempty,gte=0"`
	StartingBalance *int64  `json:"starting_balance"`
}

// CreateAccount handles opening a new account
// @Summary     Create an account
// @Description Open a cash, credit or tracking account. Credit accounts get a payment category.
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateAccountRequest true "Account details"
// @Success     201 {object} models.Account "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), userID, services.AccountInput{
		BudgetID:        req.BudgetID,
		Name:            req.Name,
		Type:            req.Type,
		StartingBalance: req.StartingBalance,
		DisplayOrder:    req.DisplayOrder,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_ACCOUNT", "account", account.ID, c.ClientIP(),
		map[string]interface{}{"type": account.Type, "starting_balance": account.StartingBalance})

	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// GetBudgetAccounts lists the accounts of a budget
// @Summary     List accounts
// @Tags        accounts
// @Produce     json
// @Security    BearerAuth
// @Param       budgetId path string true "Budget ID"
// @Success     200 {array} models.Account "Accounts"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /accounts/budget/{budgetId} [get]
func (h *AccountHandler) GetBudgetAccounts(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgetID, err := parsePathID(c, "budgetId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	accounts, err := h.accountService.GetBudgetAccounts(c.Request.Context(), userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

// GetAccountByID returns one account with its projected balances
// @Summary     Get an account
// @Tags        accounts
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Account ID"
// @Success     200 {object} models.Account "Account"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /accounts/{id} [get]
func (h *AccountHandler) GetAccountByID(c *gin.Context) {
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

	account, err := h.accountService.GetAccountByID(c.Request.Context(), userID, accountID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// UpdateAccount handles account edits
// @Summary     Update an account
// @Description Rename, close or reorder an account, or correct its starting balance
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Account ID"
// @Param       request body UpdateAccountRequest true "Fields to change"
// @Success     200 {object} models.Account "Updated account"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Router      /accounts/{id} [patch]
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
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

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), userID, accountID, services.AccountPatch{
		Name:            req.Name,
		IsActive:        req.IsActive,
		DisplayOrder:    req.DisplayOrder,
		StartingBalance: req.StartingBalance,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_ACCOUNT", "account", account.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"account": account})
}
