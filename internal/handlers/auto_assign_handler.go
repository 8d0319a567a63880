package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/services"
)

// AutoAssignHandler handles auto-assign configuration requests.
type AutoAssignHandler struct {
	configService     services.AutoAssignServicer
	assignmentService services.AssignmentServicer
	auditService      services.AuditServicer
}

// NewAutoAssignHandler creates a new AutoAssignHandler.
func NewAutoAssignHandler(configService services.AutoAssignServicer, assignmentService services.AssignmentServicer, auditService services.AuditServicer) *AutoAssignHandler {
	return &AutoAssignHandler{
		configService:     configService,
		assignmentService: assignmentService,
		auditService:      auditService,
	}
}

// AutoAssignItemRequest is one (category, amount) line.
type AutoAssignItemRequest struct {
	CategoryID string `json:"category_id" binding:"required,uuid"`
	Amount     int64  `json:"amount" binding:"gt=0"`
}

// CreateAutoAssignRequest represents a new named configuration
type CreateAutoAssignRequest struct {
	BudgetID string                  `json:"budget_id" binding:"required,uuid"`
	Name     string                  `json:"name" binding:"required,min=1,max=100"`
	Items    []AutoAssignItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateAutoAssignRequest renames a configuration or replaces its items
type UpdateAutoAssignRequest struct {
	Name  *string                 `json:"name" binding:"omitempty,min=1,max=100"`
	Items []AutoAssignItemRequest `json:"items" binding:"omitempty,dive"`
}

// ApplyAutoAssignRequest applies a configuration to the user's current month
type ApplyAutoAssignRequest struct {
	BudgetID string `json:"budget_id" binding:"required,uuid"`
	Name     string `json:"name" binding:"required"`
	UserDateQuery
}

func itemInputs(items []AutoAssignItemRequest) []services.AutoAssignItemInput {
	if items == nil {
		return nil
	}
	out := make([]services.AutoAssignItemInput, len(items))
	for i, item := range items {
		out[i] = services.AutoAssignItemInput{CategoryID: item.CategoryID, Amount: item.Amount}
	}
	return out
}

// CreateConfig handles the creation of an auto-assign configuration
// @Summary     Create an auto-assign configuration
// @Tags        auto-assign
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateAutoAssignRequest true "Configuration"
// @Success     201 {object} services.AutoAssignConfig "Configuration created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget or category not found"
// @Failure     409 {object} ErrorResponse "Duplicate name or hidden category"
// @Router      /auto-assign [post]
func (h *AutoAssignHandler) CreateConfig(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateAutoAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	cfg, err := h.configService.CreateConfig(c.Request.Context(), userID, req.BudgetID, req.Name, itemInputs(req.Items))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_AUTO_ASSIGN", "budget", req.BudgetID, c.ClientIP(),
		map[string]interface{}{"name": cfg.Name, "total": cfg.Total})

	c.JSON(http.StatusCreated, gin.H{"configuration": cfg})
}

// GetBudgetConfigs lists the configurations of a budget
// @Summary     List auto-assign configurations
// @Tags        auto-assign
// @Produce     json
// @Security    BearerAuth
// @Param       budgetId path string true "Budget ID"
// @Success     200 {array} services.AutoAssignConfig "Configurations"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Budget not found"
// @Router      /auto-assign/budget/{budgetId} [get]
func (h *AutoAssignHandler) GetBudgetConfigs(c *gin.Context) {
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

	configs, err := h.configService.GetBudgetConfigs(c.Request.Context(), userID, budgetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"configurations": configs})
}

// GetConfig returns one configuration by name
// @Summary     Get an auto-assign configuration
// @Tags        auto-assign
// @Produce     json
// @Security    BearerAuth
// @Param       budgetId path string true "Budget ID"
// @Param       name     path string true "Configuration name"
// @Success     200 {object} services.AutoAssignConfig "Configuration"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Configuration not found"
// @Router      /auto-assign/budget/{budgetId}/config/{name} [get]
func (h *AutoAssignHandler) GetConfig(c *gin.Context) {
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

	cfg, err := h.configService.GetConfig(c.Request.Context(), userID, budgetID, c.Param("name"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"configuration": cfg})
}

// UpdateConfig renames a configuration or replaces its items
// @Summary     Update an auto-assign configuration
// @Tags        auto-assign
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       budgetId path string                  true "Budget ID"
// @Param       name     path string                  true "Configuration name"
// @Param       request  body UpdateAutoAssignRequest true "Fields to change"
// @Success     200 {object} services.AutoAssignConfig "Updated configuration"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Configuration not found"
// @Failure     409 {object} ErrorResponse "Duplicate name or hidden category"
// @Router      /auto-assign/budget/{budgetId}/config/{name} [patch]
func (h *AutoAssignHandler) UpdateConfig(c *gin.Context) {
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

	var req UpdateAutoAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	cfg, err := h.configService.UpdateConfig(c.Request.Context(), userID, budgetID, c.Param("name"), req.Name, itemInputs(req.Items))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"configuration": cfg})
}

// DeleteConfig removes a configuration
// @Summary     Delete an auto-assign configuration
// @Tags        auto-assign
// @Produce     json
// @Security    BearerAuth
// @Param       budgetId path string true "Budget ID"
// @Param       name     path string true "Configuration name"
// @Success     200 {object} map[string]string "Configuration deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Configuration not found"
// @Router      /auto-assign/budget/{budgetId}/config/{name} [delete]
func (h *AutoAssignHandler) DeleteConfig(c *gin.Context) {
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

	name := c.Param("name")
	if err := h.configService.DeleteConfig(c.Request.Context(), userID, budgetID, name); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_AUTO_ASSIGN", "budget", budgetID, c.ClientIP(),
		map[string]interface{}{"name": name})

	c.JSON(http.StatusOK, gin.H{"message": "Configuration deleted successfully"})
}

// Apply assigns every item of a configuration in the user's current month
// @Summary     Apply an auto-assign configuration
// @Description Each item is assigned like a category update; Ready to Assign may go negative.
// @Tags        auto-assign
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ApplyAutoAssignRequest true "Configuration to apply"
// @Success     200 {object} services.AutoAssignResult "Applied categories"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Configuration not found"
// @Router      /auto-assign/apply [post]
func (h *AutoAssignHandler) Apply(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ApplyAutoAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	ud, err := userDate(c, &req.UserDateQuery)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.assignmentService.ApplyAutoAssign(c.Request.Context(), userID, req.BudgetID, req.Name, ud)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "APPLY_AUTO_ASSIGN", "budget", req.BudgetID, c.ClientIP(),
		map[string]interface{}{"name": req.Name, "applied_count": result.AppliedCount, "month": ud.Current.String()})

	c.JSON(http.StatusOK, result)
}
