package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/services"
)

// CategoryGroupHandler handles category group requests.
type CategoryGroupHandler struct {
	groupService services.CategoryGroupServicer
	auditService services.AuditServicer
}

// NewCategoryGroupHandler creates a new CategoryGroupHandler.
func NewCategoryGroupHandler(groupService services.CategoryGroupServicer, auditService services.AuditServicer) *CategoryGroupHandler {
	return &CategoryGroupHandler{groupService: groupService, auditService: auditService}
}

// CreateCategoryGroupRequest represents the request payload for creating a group
type CreateCategoryGroupRequest struct {
	BudgetID string `json:"budget_id" binding:"required,uuid"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateCategoryGroupRequest represents a partial group update
type UpdateCategoryGroupRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=100"`
	DisplayOrder *int    `json:"display_order" binding:"omitempty,gte=0"`
}

// HideCategoryGroupRequest toggles the hidden state of a group
type HideCategoryGroupRequest struct {
	IsHidden *bool `json:"is_hidden" binding:"required"`
}

// ReorderGroupsRequest lists group ids in their new display order
type ReorderGroupsRequest struct {
	GroupIDs []string `json:"group_ids" binding:"required,min=1,dive,uuid"`
}

// BudgetGroupsQuery selects the groups of one budget
type BudgetGroupsQuery struct {
	BudgetID string `form:"budgetId" binding:"required,uuid"`
}

// CreateGroup handles the creation of a category group
// @Summary     Create a category group
// @Tags        category-groups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCategoryGroupRequest true "Group details"
// @Success     201 {object} models.CategoryGroup "Group created"
// @Failure     400 {object} ErrorResponse "Invalid input or reserved name"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /category-groups [post]
func (h *CategoryGroupHandler) CreateGroup(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCategoryGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	group, err := h.groupService.CreateGroup(c.Request.Context(), userID, req.BudgetID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_CATEGORY_GROUP", "category_group", group.ID, c.ClientIP(),
		map[string]interface{}{"name": group.Name})

	c.JSON(http.StatusCreated, gin.H{"category_group": group})
}

// GetBudgetGroups lists the groups of a budget with their categories
// @Summary     List category groups
// @Tags        category-groups
// @Produce     json
// @Security    BearerAuth
// @Param       budgetId query string true "Budget ID"
// @Success     200 {array} models.CategoryGroup "Groups"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /category-groups [get]
func (h *CategoryGroupHandler) GetBudgetGroups(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var q BudgetGroupsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	groups, err := h.groupService.GetBudgetGroups(c.Request.Context(), userID, q.BudgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category_groups": groups})
}

// UpdateGroup renames or reorders a user-managed group
// @Summary     Update a category group
// @Tags        category-groups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                     true "Group ID"
// @Param       request body UpdateCategoryGroupRequest true "Fields to change"
// @Success     200 {object} models.CategoryGroup "Updated group"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Group not found"
// @Failure     409 {object} ErrorResponse "System group"
// @Router      /category-groups/{id} [patch]
func (h *CategoryGroupHandler) UpdateGroup(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groupID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCategoryGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	group, err := h.groupService.UpdateGroup(c.Request.Context(), userID, groupID, req.Name, req.DisplayOrder)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category_group": group})
}

// DeleteGroup removes an empty user-managed group
// @Summary     Delete a category group
// @Tags        category-groups
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Group ID"
// @Success     200 {object} map[string]string "Group deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Group not found"
// @Failure     409 {object} ErrorResponse "System group or group not empty"
// @Router      /category-groups/{id} [delete]
func (h *CategoryGroupHandler) DeleteGroup(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groupID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.groupService.DeleteGroup(c.Request.Context(), userID, groupID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_CATEGORY_GROUP", "category_group", groupID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Category group deleted successfully"})
}

// HideGroup moves a group's categories into or out of "Hidden Categories"
// @Summary     Hide or unhide a category group
// @Tags        category-groups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                   true "Group ID"
// @Param       request body HideCategoryGroupRequest true "Hidden state"
// @Success     200 {object} models.CategoryGroup "Updated group"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Group not found"
// @Failure     409 {object} ErrorResponse "System group"
// @Router      /category-groups/{id}/hide [patch]
func (h *CategoryGroupHandler) HideGroup(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	groupID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req HideCategoryGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	group, err := h.groupService.SetHidden(c.Request.Context(), userID, groupID, *req.IsHidden)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category_group": group})
}

// ReorderGroups sets display order from the position in the list
// @Summary     Reorder category groups
// @Tags        category-groups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ReorderGroupsRequest true "Group ids in display order"
// @Success     200 {object} map[string]string "Groups reordered"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Group not found"
// @Router      /category-groups/reorder [post]
func (h *CategoryGroupHandler) ReorderGroups(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ReorderGroupsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.groupService.ReorderGroups(c.Request.Context(), userID, req.GroupIDs); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category groups reordered successfully"})
}
