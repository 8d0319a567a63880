package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetwise/internal/calendar"
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/services"
)

// CategoryHandler handles category-related requests, including the money
// moves that change category balances.
type CategoryHandler struct {
	categoryService   services.CategoryServicer
	assignmentService services.AssignmentServicer
	auditService      services.AuditServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer, assignmentService services.AssignmentServicer, auditService services.AuditServicer) *CategoryHandler {
	return &CategoryHandler{
		categoryService:   categoryService,
		assignmentService: assignmentService,
		auditService:      auditService,
	}
}

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	CategoryGroupID string `json:"category_group_id" binding:"required,uuid"`
	Name            string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateCategoryRequest represents a partial category update. Money fields
// apply to the user's current month.
type UpdateCategoryRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=100"`
	DisplayOrder *int    `json:"display_order" binding:"omitempty,gte=0"`
	Assigned     *int64  `json:"assigned"`
	Activity     *int64  `json:"activity"`
	Available    *int64  `json:"available"`
	UserDateQuery
}

func (r UpdateCategoryRequest) patch() services.CategoryPatch {
	return services.CategoryPatch{
		Name:         r.Name,
		DisplayOrder: r.DisplayOrder,
		Assigned:     r.Assigned,
		Activity:     r.Activity,
		Available:    r.Available,
	}
}

// ReorderRequest lists ids in their new display order.
type ReorderRequest struct {
	CategoryIDs []string `json:"category_ids" binding:"required,min=1,dive,uuid"`
}

// MoveMoneyRequest moves available between two categories.
type MoveMoneyRequest struct {
	FromCategoryID string `json:"from_category_id" binding:"required,uuid"`
	ToCategoryID   string `json:"to_category_id" binding:"required,uuid"`
	Amount         int64  `json:"amount" binding:"required,gt=0"`
	UserDateQuery
}

// RTAMoveRequest moves money between a category and Ready to Assign.
type RTAMoveRequest struct {
	CategoryID string `json:"category_id" binding:"required,uuid"`
	Amount     int64  `json:"amount" binding:"required,gt=0"`
	UserDateQuery
}

// GroupCategoriesQuery selects the categories of one group in one month.
type GroupCategoriesQuery struct {
	CategoryGroupID string `form:"categoryGroupId" binding:"required,uuid"`
}

// CreateCategory handles the creation of a new category
// @Summary     Create a category
// @Description Create a category in a user-managed group
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} models.Category "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category group not found"
// @Failure     409 {object} ErrorResponse "System group"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), userID, req.CategoryGroupID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_CATEGORY", "category", category.ID, c.ClientIP(),
		map[string]interface{}{"name": category.Name, "category_group_id": category.CategoryGroupID})

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// GetGroupCategories lists the categories of a group with their balances
// @Summary     List categories of a group
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       categoryGroupId query string true  "Category group ID"
// @Param       year            query int    false "Year"
// @Param       month           query int    false "Month"
// @Success     200 {array} services.CategoryWithBalance "Categories"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category group not found"
// @Router      /categories [get]
func (h *CategoryHandler) GetGroupCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q GroupCategoriesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	m, err := monthParam(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories, err := h.categoryService.GetGroupCategories(c.Request.Context(), userID, q.CategoryGroupID, m)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories, "year": m.Year, "month": m.Month})
}

// GetBudgetCategories lists every category of a budget with its balance
// @Summary     List categories of a budget
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       budgetId path  string true  "Budget ID"
// @Param       year     query int    false "Year"
// @Param       month    query int    false "Month"
// @Success     200 {array} services.CategoryWithBalance "Categories"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /categories/budget/{budgetId} [get]
func (h *CategoryHandler) GetBudgetCategories(c *gin.Context) {
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

	categories, err := h.categoryService.GetBudgetCategories(c.Request.Context(), userID, budgetID, m)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories, "year": m.Year, "month": m.Month})
}

// GetCategoryByID returns one category
// @Summary     Get a category
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Success     200 {object} models.Category "Category"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), userID, categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// UpdateCategory renames a category or changes its current-month balance
// @Summary     Update a category
// @Description Assigned changes move money from or to Ready to Assign and may cover card debt.
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                true "Category ID"
// @Param       request body UpdateCategoryRequest true "Fields to change"
// @Success     200 {object} services.CategoryUpdate "Updated category and Ready to Assign"
// @Failure     400 {object} ErrorResponse "Invalid input or negative assignment"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Payment category rename"
// @Router      /categories/{id} [patch]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	ud, err := userDate(c, &req.UserDateQuery)
	if err != nil {
		respondWithError(c, err)
		return
	}

	patch := req.patch()
	result, err := h.assignmentService.UpdateCategory(c.Request.Context(), userID, categoryID, patch, ud)
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
				"month":     ud.Current.String(),
			})
	}

	c.JSON(http.StatusOK, result)
}

// DeleteCategory removes an unused category
// @Summary     Delete a category
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Success     200 {object} map[string]string "Category deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Payment category or category in use"
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), userID, categoryID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_CATEGORY", "category", categoryID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// ReorderCategories sets display order from the position in the list
// @Summary     Reorder categories
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ReorderRequest true "Category ids in display order"
// @Success     200 {object} map[string]string "Categories reordered"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/reorder [post]
func (h *CategoryHandler) ReorderCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.categoryService.ReorderCategories(c.Request.Context(), userID, req.CategoryIDs); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Categories reordered successfully"})
}

// MoveMoney moves available from one category to another
// @Summary     Move money between categories
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body MoveMoneyRequest true "Move details"
// @Success     200 {object} services.MoneyMove "Updated balances"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Categories in different budgets"
// @Failure     422 {object} ErrorResponse "Insufficient available"
// @Router      /categories/move-money [post]
func (h *CategoryHandler) MoveMoney(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req MoveMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	ud, err := userDate(c, &req.UserDateQuery)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.assignmentService.MoveMoney(c.Request.Context(), userID, req.FromCategoryID, req.ToCategoryID, req.Amount, ud)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "MOVE_MONEY", "category", req.FromCategoryID, c.ClientIP(),
		map[string]interface{}{"to_category_id": req.ToCategoryID, "amount": req.Amount})

	c.JSON(http.StatusOK, result)
}

// MoveToReadyToAssign returns money from a category to Ready to Assign
// @Summary     Move money to Ready to Assign
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RTAMoveRequest true "Move details"
// @Success     200 {object} services.MoneyMove "Updated balance"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     422 {object} ErrorResponse "Insufficient available"
// @Router      /categories/move-to-rta [post]
func (h *CategoryHandler) MoveToReadyToAssign(c *gin.Context) {
	h.moveWithReadyToAssign(c, "MOVE_TO_RTA", h.assignmentService.MoveToReadyToAssign)
}

// PullFromReadyToAssign assigns money from Ready to Assign to a category
// @Summary     Pull money from Ready to Assign
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RTAMoveRequest true "Move details"
// @Success     200 {object} services.MoneyMove "Updated balance"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     422 {object} ErrorResponse "Insufficient Ready to Assign"
// @Router      /categories/pull-from-rta [post]
func (h *CategoryHandler) PullFromReadyToAssign(c *gin.Context) {
	h.moveWithReadyToAssign(c, "PULL_FROM_RTA", h.assignmentService.PullFromReadyToAssign)
}

type rtaMoveFunc func(ctx context.Context, userID, categoryID string, amount int64, ud calendar.UserDate) (*services.MoneyMove, error)

func (h *CategoryHandler) moveWithReadyToAssign(c *gin.Context, action string, move rtaMoveFunc) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RTAMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	ud, err := userDate(c, &req.UserDateQuery)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := move(c.Request.Context(), userID, req.CategoryID, req.Amount, ud)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, action, "category", req.CategoryID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount})

	c.JSON(http.StatusOK, result)
}

// GetDebtSummary reports the card debt linked to a category
// @Summary     Get debt summary
// @Description Totals of the card debt paid from a payment category or created by spending in a category
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Success     200 {object} services.DebtSummary "Debt totals"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id}/debt-summary [get]
func (h *CategoryHandler) GetDebtSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.categoryService.GetDebtSummary(c.Request.Context(), userID, categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
