package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
	"budgetwise/internal/services"
)

// BudgetHandler handles budget-related requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// BudgetRequest represents the payload for creating or updating a budget.
// Name is required on create.
type BudgetRequest struct {
	Name              *string                   `json:"name" binding:"omitempty,min=1,max=100"`
	Currency          *string                   `json:"currency" binding:"omitempty,iso4217"`
	CurrencyPlacement *models.CurrencyPlacement `json:"currency_placement" binding:"omitempty,currency_placement"`
	NumberFormat      *string                   `json:"number_format" binding:"omitempty,max=20"`
	DateFormat        *string                   `json:"date_format" binding:"omitempty,max=20"`
	Theme             *string                   `json:"theme" binding:"omitempty,max=20"`
}

func (r BudgetRequest) input() services.BudgetInput {
	return services.BudgetInput{
		Name:              r.Name,
		Currency:          r.Currency,
		CurrencyPlacement: r.CurrencyPlacement,
		NumberFormat:      r.NumberFormat,
		DateFormat:        r.DateFormat,
		Theme:             r.Theme,
	}
}

// CreateBudget handles the creation of a new budget
// @Summary     Create a budget
// @Description Create a budget together with its system category groups
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body BudgetRequest true "Budget details"
// @Success     201 {object} models.Budget "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Duplicate budget name"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if req.Name == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required"))
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), userID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_BUDGET", "budget", budget.ID, c.ClientIP(),
		map[string]interface{}{"name": budget.Name, "currency": budget.Currency})

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetBudgets returns all budgets of the user
// @Summary     List budgets
// @Description Get every budget owned by the authenticated user
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Budget "Budgets"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budgets, err := h.budgetService.GetUserBudgets(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budgets": budgets})
}

// GetBudgetByID returns one budget
// @Summary     Get a budget
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     200 {object} models.Budget "Budget"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/{id} [get]
func (h *BudgetHandler) GetBudgetByID(c *gin.Context) {
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

	budget, err := h.budgetService.GetBudgetByID(c.Request.Context(), userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// UpdateBudget handles budget setting changes
// @Summary     Update a budget
// @Description Change the name or display settings of a budget
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string        true "Budget ID"
// @Param       request body BudgetRequest true "Fields to change"
// @Success     200 {object} models.Budget "Updated budget"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Failure     409 {object} ErrorResponse "Duplicate budget name"
// @Router      /budgets/{id} [patch]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
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

	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.UpdateBudget(c.Request.Context(), userID, budgetID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_BUDGET", "budget", budget.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// DeleteBudget removes a budget and everything in it
// @Summary     Delete a budget
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Budget ID"
// @Success     200 {object} map[string]string "Budget deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
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

	if err := h.budgetService.DeleteBudget(c.Request.Context(), userID, budgetID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_BUDGET", "budget", budgetID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}

// GetReadyToAssign returns the unassigned money of a budget
// @Summary     Get Ready to Assign
// @Description Cash on hand minus the positive available of every category in the month
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id        path  string true  "Budget ID"
// @Param       userDate  query string false "Client date (YYYY-MM-DD)"
// @Param       userYear  query int    false "Client year"
// @Param       userMonth query int    false "Client month"
// @Success     200 {object} services.ReadyToAssign "Ready to Assign"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /budgets/{id}/ready-to-assign [get]
func (h *BudgetHandler) GetReadyToAssign(c *gin.Context) {
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

	ud, err := userDate(c, nil)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rta, err := h.budgetService.GetReadyToAssign(c.Request.Context(), userID, budgetID, ud)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, rta)
}
