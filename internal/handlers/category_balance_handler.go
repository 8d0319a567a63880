package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/services"
)

// CategoryBalanceHandler exposes per-month category balances directly.
type CategoryBalanceHandler struct {
	balanceService services.CategoryBalanceServicer
	auditService   services.AuditServicer
}

// NewCategoryBalanceHandler creates a new CategoryBalanceHandler.
func NewCategoryBalanceHandler(balanceService services.CategoryBalanceServicer, auditService services.AuditServicer) *CategoryBalanceHandler {
	return &CategoryBalanceHandler{balanceService: balanceService, auditService: auditService}
}

// UpdateBalanceRequest carries balance overrides for a category's month.
type UpdateBalanceRequest struct {
	Assigned  *int64 `json:"assigned"`
	Activity  *int64 `json:"activity"`
	Available *int64 `json:"available"`
	UserDateQuery
}

// GetBalance returns the balance row of a category for a month
// @Summary     Get a category balance
// @Description Months without a row read as zero
// @Tags        category-balances
// @Produce     json
// @Security    BearerAuth
// @Param       categoryId path  string true  "Category ID"
// @Param       year       query int    false "Year"
// @Param       month      query int    false "Month"
// @Success     200 {object} models.CategoryBalance "Balance"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /category-balances/category/{categoryId} [get]
func (h *CategoryBalanceHandler) GetBalance(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categoryID, err := parsePathID(c, "categoryId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	m, err := monthParam(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	balance, err := h.balanceService.GetBalance(c.Request.Context(), userID, categoryID, m)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

// UpdateBalance changes the money fields of a category's month
// @Summary     Update a category balance
// @Description Without year and month the user's current month is edited
// @Tags        category-balances
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       categoryId path  string               true  "Category ID"
// @Param       year       query int                  false "Year"
// @Param       month      query int                  false "Month"
// @Param       request    body UpdateBalanceRequest true "Fields to change"
// @Success     200 {object} services.CategoryUpdate "Updated balance and Ready to Assign"
// @Failure     400 {object} ErrorResponse "Invalid input or negative assignment"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /category-balances/category/{categoryId} [patch]
func (h *CategoryBalanceHandler) UpdateBalance(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categoryID, err := parsePathID(c, "categoryId")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	ud, err := userDate(c, &req.UserDateQuery)
	if err != nil {
		respondWithError(c, err)
		return
	}

	m, err := writeMonth(c, ud)
	if err != nil {
		respondWithError(c, err)
		return
	}

	patch := services.CategoryPatch{Assigned: req.Assigned, Activity: req.Activity, Available: req.Available}
	result, err := h.balanceService.UpdateBalance(c.Request.Context(), userID, categoryID, patch, ud, m)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if patch.HasMoney() {
		h.auditService.Log(userID, "ASSIGN", "category", categoryID, c.ClientIP(),
			map[string]interface{}{
				"assigned":  req.Assigned,
				"activity":  req.Activity,
				"available": req.Available,
				"month":     m.String(),
			})
	}

	c.JSON(http.StatusOK, result)
}

// EnsureMonth creates missing balance rows of a budget for a month
// @Summary     Ensure balance rows for a month
// @Description Creates a row for every category lacking one, carrying forward positive available
// @Tags        category-balances
// @Produce     json
// @Security    BearerAuth
// @Param       budgetId path  string true  "Budget ID"
// @Param       year     query int    false "Year"
// @Param       month    query int    false "Month"
// @Success     200 {array} models.CategoryBalance "Rows created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /category-balances/ensure/{budgetId} [post]
func (h *CategoryBalanceHandler) EnsureMonth(c *gin.Context) {
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

	m, err := monthParam(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	created, err := h.balanceService.EnsureMonth(c.Request.Context(), userID, budgetID, m)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"created": created, "year": m.Year, "month": m.Month})
}
