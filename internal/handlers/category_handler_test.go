package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"budgetwise/internal/calendar"
	apperrors "budgetwise/internal/errors"
	"budgetwise/internal/models"
	"budgetwise/internal/services"
	"budgetwise/internal/store"
)

// --- mock category and assignment services ---

type mockCategoryService struct {
	createCategoryFn      func(userID, groupID, name string) (*models.Category, error)
	getGroupCategoriesFn  func(userID, groupID string, m calendar.Month) ([]services.CategoryWithBalance, error)
	getBudgetCategoriesFn func(userID, budgetID string, m calendar.Month) ([]services.CategoryWithBalance, error)
	getCategoryByIDFn     func(userID, categoryID string) (*models.Category, error)
	deleteCategoryFn      func(userID, categoryID string) error
	reorderCategoriesFn   func(userID string, ids []string) error
	getDebtSummaryFn      func(userID, categoryID string) (*services.DebtSummary, error)
}

func (m *mockCategoryService) CreateCategory(_ context.Context, userID, groupID, name string) (*models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(userID, groupID, name)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) GetGroupCategories(_ context.Context, userID, groupID string, month calendar.Month) ([]services.CategoryWithBalance, error) {
	if m.getGroupCategoriesFn != nil {
		return m.getGroupCategoriesFn(userID, groupID, month)
	}
	return []services.CategoryWithBalance{}, nil
}

func (m *mockCategoryService) GetBudgetCategories(_ context.Context, userID, budgetID string, month calendar.Month) ([]services.CategoryWithBalance, error) {
	if m.getBudgetCategoriesFn != nil {
		return m.getBudgetCategoriesFn(userID, budgetID, month)
	}
	return []services.CategoryWithBalance{}, nil
}

func (m *mockCategoryService) GetCategoryByID(_ context.Context, userID, categoryID string) (*models.Category, error) {
	if m.getCategoryByIDFn != nil {
		return m.getCategoryByIDFn(userID, categoryID)
	}
	return &models.Category{}, nil
}

func (m *mockCategoryService) DeleteCategory(_ context.Context, userID, categoryID string) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(userID, categoryID)
	}
	return nil
}

func (m *mockCategoryService) ReorderCategories(_ context.Context, userID string, ids []string) error {
	if m.reorderCategoriesFn != nil {
		return m.reorderCategoriesFn(userID, ids)
	}
	return nil
}

func (m *mockCategoryService) GetDebtSummary(_ context.Context, userID, categoryID string) (*services.DebtSummary, error) {
	if m.getDebtSummaryFn != nil {
		return m.getDebtSummaryFn(userID, categoryID)
	}
	return &services.DebtSummary{}, nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

type mockAssignmentService struct {
	updateCategoryFn  func(userID, categoryID string, patch services.CategoryPatch, ud calendar.UserDate) (*services.CategoryUpdate, error)
	moveMoneyFn       func(userID, fromID, toID string, amount int64, ud calendar.UserDate) (*services.MoneyMove, error)
	moveToRTAFn       func(userID, categoryID string, amount int64, ud calendar.UserDate) (*services.MoneyMove, error)
	pullFromRTAFn     func(userID, categoryID string, amount int64, ud calendar.UserDate) (*services.MoneyMove, error)
	applyAutoAssignFn func(userID, budgetID, name string, ud calendar.UserDate) (*services.AutoAssignResult, error)
}

func (m *mockAssignmentService) UpdateCategory(_ context.Context, userID, categoryID string, patch services.CategoryPatch, ud calendar.UserDate) (*services.CategoryUpdate, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(userID, categoryID, patch, ud)
	}
	return &services.CategoryUpdate{}, nil
}

func (m *mockAssignmentService) MoveMoney(_ context.Context, userID, fromID, toID string, amount int64, ud calendar.UserDate) (*services.MoneyMove, error) {
	if m.moveMoneyFn != nil {
		return m.moveMoneyFn(userID, fromID, toID, amount, ud)
	}
	return &services.MoneyMove{}, nil
}

func (m *mockAssignmentService) MoveToReadyToAssign(_ context.Context, userID, categoryID string, amount int64, ud calendar.UserDate) (*services.MoneyMove, error) {
	if m.moveToRTAFn != nil {
		return m.moveToRTAFn(userID, categoryID, amount, ud)
	}
	return &services.MoneyMove{}, nil
}

func (m *mockAssignmentService) PullFromReadyToAssign(_ context.Context, userID, categoryID string, amount int64, ud calendar.UserDate) (*services.MoneyMove, error) {
	if m.pullFromRTAFn != nil {
		return m.pullFromRTAFn(userID, categoryID, amount, ud)
	}
	return &services.MoneyMove{}, nil
}

func (m *mockAssignmentService) ApplyAutoAssign(_ context.Context, userID, budgetID, name string, ud calendar.UserDate) (*services.AutoAssignResult, error) {
	if m.applyAutoAssignFn != nil {
		return m.applyAutoAssignFn(userID, budgetID, name, ud)
	}
	return &services.AutoAssignResult{Success: true}, nil
}

var _ services.AssignmentServicer = (*mockAssignmentService)(nil)

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/categories", handler.CreateCategory)
	auth.GET("/categories", handler.GetGroupCategories)
	auth.GET("/categories/budget/:budgetId", handler.GetBudgetCategories)
	auth.POST("/categories/reorder", handler.ReorderCategories)
	auth.POST("/categories/move-money", handler.MoveMoney)
	auth.POST("/categories/move-to-rta", handler.MoveToReadyToAssign)
	auth.POST("/categories/pull-from-rta", handler.PullFromReadyToAssign)
	auth.GET("/categories/:id", handler.GetCategoryByID)
	auth.PATCH("/categories/:id", handler.UpdateCategory)
	auth.DELETE("/categories/:id", handler.DeleteCategory)
	auth.GET("/categories/:id/debt-summary", handler.GetDebtSummary)
	return r
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockCategoryService{
			createCategoryFn: func(_, groupID, name string) (*models.Category, error) {
				c := &models.Category{CategoryGroupID: groupID, Name: name}
				c.ID = testCategoryID
				return c, nil
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc, &mockAssignmentService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/categories", `{"category_group_id":"`+testOtherID+`","name":"Groceries"}`)

		assertStatus(t, rec, http.StatusCreated)
		category := parseJSON(t, rec)["category"].(map[string]interface{})
		if category["name"] != "Groceries" {
			t.Errorf("expected Groceries, got %v", category["name"])
		}
	})

	t.Run("returns 409 for a system group", func(t *testing.T) {
		svc := &mockCategoryService{
			createCategoryFn: func(_, _, _ string) (*models.Category, error) {
				return nil, apperrors.ErrSystemGroupCategory
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(svc, &mockAssignmentService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/categories", `{"category_group_id":"`+testOtherID+`","name":"Sneaky"}`)

		assertStatus(t, rec, http.StatusConflict)
		assertErrorCode(t, parseJSON(t, rec), "SYSTEM_GROUP_CATEGORY")
	})
}

func TestCategoryHandler_GetGroupCategories(t *testing.T) {
	var gotMonth calendar.Month
	svc := &mockCategoryService{
		getGroupCategoriesFn: func(_, _ string, m calendar.Month) ([]services.CategoryWithBalance, error) {
			gotMonth = m
			return []services.CategoryWithBalance{{Year: m.Year, Month: m.Month, Available: 300}}, nil
		},
	}
	r := setupCategoryRouter(NewCategoryHandler(svc, &mockAssignmentService{}, &mockAuditService{}))

	t.Run("reads the requested month", func(t *testing.T) {
		rec := doRequest(r, "GET", "/categories?categoryGroupId="+testOtherID+"&year=2024&month=3", "")

		assertStatus(t, rec, http.StatusOK)
		if gotMonth != (calendar.Month{Year: 2024, Month: 3}) {
			t.Errorf("expected 2024-03, got %s", gotMonth)
		}
	})

	t.Run("defaults to the client month", func(t *testing.T) {
		rec := doRequest(r, "GET", "/categories?categoryGroupId="+testOtherID+"&userYear=2023&userMonth=11", "")

		assertStatus(t, rec, http.StatusOK)
		if gotMonth != (calendar.Month{Year: 2023, Month: 11}) {
			t.Errorf("expected 2023-11, got %s", gotMonth)
		}
	})

	t.Run("returns 400 without a group", func(t *testing.T) {
		rec := doRequest(r, "GET", "/categories", "")

		assertStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("returns 400 with year but no month", func(t *testing.T) {
		rec := doRequest(r, "GET", "/categories?categoryGroupId="+testOtherID+"&year=2024", "")

		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestCategoryHandler_UpdateCategory(t *testing.T) {
	t.Run("assigns in the client month", func(t *testing.T) {
		var gotPatch services.CategoryPatch
		var gotUD calendar.UserDate
		assign := &mockAssignmentService{
			updateCategoryFn: func(_, _ string, patch services.CategoryPatch, ud calendar.UserDate) (*services.CategoryUpdate, error) {
				gotPatch, gotUD = patch, ud
				return &services.CategoryUpdate{
					Category:      &models.Category{Name: "Groceries"},
					Balance:       &models.CategoryBalance{Assigned: *patch.Assigned, Available: *patch.Assigned},
					ReadyToAssign: 700,
				}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, assign, audit))

		rec := doRequest(r, "PATCH", "/categories/"+testCategoryID, `{"assigned":300,"userYear":2024,"userMonth":5}`)

		assertStatus(t, rec, http.StatusOK)
		if gotPatch.Assigned == nil || *gotPatch.Assigned != 300 || gotPatch.Name != nil {
			t.Errorf("unexpected patch %+v", gotPatch)
		}
		if gotUD.Current != (calendar.Month{Year: 2024, Month: 5}) {
			t.Errorf("expected 2024-05, got %s", gotUD.Current)
		}
		if parseJSON(t, rec)["ready_to_assign"] != float64(700) {
			t.Errorf("expected ready_to_assign 700 in %s", rec.Body.String())
		}
		if len(audit.actions) != 1 || audit.actions[0] != "ASSIGN" {
			t.Errorf("expected ASSIGN audit, got %v", audit.actions)
		}
	})

	t.Run("rename is not audited as money", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, &mockAssignmentService{}, audit))

		rec := doRequest(r, "PATCH", "/categories/"+testCategoryID, `{"name":"Food"}`)

		assertStatus(t, rec, http.StatusOK)
		if len(audit.actions) != 0 {
			t.Errorf("expected no audit, got %v", audit.actions)
		}
	})

	t.Run("returns 400 on negative assignment", func(t *testing.T) {
		assign := &mockAssignmentService{
			updateCategoryFn: func(_, _ string, _ services.CategoryPatch, _ calendar.UserDate) (*services.CategoryUpdate, error) {
				return nil, apperrors.ErrNegativeAssignment
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, assign, &mockAuditService{}))

		rec := doRequest(r, "PATCH", "/categories/"+testCategoryID, `{"assigned":-1}`)

		assertStatus(t, rec, http.StatusBadRequest)
		assertErrorCode(t, parseJSON(t, rec), "NEGATIVE_ASSIGNMENT")
	})

	t.Run("returns 409 on payment category rename", func(t *testing.T) {
		assign := &mockAssignmentService{
			updateCategoryFn: func(_, _ string, _ services.CategoryPatch, _ calendar.UserDate) (*services.CategoryUpdate, error) {
				return nil, apperrors.ErrPaymentCategoryProtected
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, assign, &mockAuditService{}))

		rec := doRequest(r, "PATCH", "/categories/"+testCategoryID, `{"name":"Other"}`)

		assertStatus(t, rec, http.StatusConflict)
	})

	t.Run("returns 400 on bad user date", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, &mockAssignmentService{}, &mockAuditService{}))

		rec := doRequest(r, "PATCH", "/categories/"+testCategoryID, `{"assigned":1,"userDate":"yesterday"}`)

		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestCategoryHandler_MoveMoney(t *testing.T) {
	t.Run("returns 200 with both balances", func(t *testing.T) {
		var gotFrom, gotTo string
		var gotAmount int64
		assign := &mockAssignmentService{
			moveMoneyFn: func(_, from, to string, amount int64, _ calendar.UserDate) (*services.MoneyMove, error) {
				gotFrom, gotTo, gotAmount = from, to, amount
				return &services.MoneyMove{
					Source:      &models.CategoryBalance{Available: 0},
					Destination: &models.CategoryBalance{Available: 200},
				}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, assign, audit))

		rec := doRequest(r, "POST", "/categories/move-money",
			`{"from_category_id":"`+testCategoryID+`","to_category_id":"`+testOtherID+`","amount":200}`)

		assertStatus(t, rec, http.StatusOK)
		if gotFrom != testCategoryID || gotTo != testOtherID || gotAmount != 200 {
			t.Errorf("unexpected move %s -> %s %d", gotFrom, gotTo, gotAmount)
		}
		if len(audit.actions) != 1 || audit.actions[0] != "MOVE_MONEY" {
			t.Errorf("expected MOVE_MONEY audit, got %v", audit.actions)
		}
	})

	t.Run("returns 422 on insufficient available", func(t *testing.T) {
		assign := &mockAssignmentService{
			moveMoneyFn: func(_, _, _ string, _ int64, _ calendar.UserDate) (*services.MoneyMove, error) {
				return nil, apperrors.ErrInsufficientAvailable
			},
		}
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, assign, &mockAuditService{}))

		rec := doRequest(r, "POST", "/categories/move-money",
			`{"from_category_id":"`+testCategoryID+`","to_category_id":"`+testOtherID+`","amount":201}`)

		assertStatus(t, rec, http.StatusUnprocessableEntity)
		assertErrorCode(t, parseJSON(t, rec), "INSUFFICIENT_AVAILABLE")
	})

	t.Run("returns 400 on zero amount", func(t *testing.T) {
		r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, &mockAssignmentService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/categories/move-money",
			`{"from_category_id":"`+testCategoryID+`","to_category_id":"`+testOtherID+`","amount":0}`)

		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestCategoryHandler_ReadyToAssignMoves(t *testing.T) {
	var calls []string
	assign := &mockAssignmentService{
		moveToRTAFn: func(_, _ string, _ int64, _ calendar.UserDate) (*services.MoneyMove, error) {
			calls = append(calls, "to")
			return &services.MoneyMove{ReadyToAssign: 165}, nil
		},
		pullFromRTAFn: func(_, _ string, amount int64, _ calendar.UserDate) (*services.MoneyMove, error) {
			calls = append(calls, "from")
			if amount > 100 {
				return nil, apperrors.ErrInsufficientReadyToAssign
			}
			return &services.MoneyMove{ReadyToAssign: 0}, nil
		},
	}
	audit := &mockAuditService{}
	r := setupCategoryRouter(NewCategoryHandler(&mockCategoryService{}, assign, audit))

	rec := doRequest(r, "POST", "/categories/move-to-rta", `{"category_id":"`+testCategoryID+`","amount":165}`)
	assertStatus(t, rec, http.StatusOK)

	rec = doRequest(r, "POST", "/categories/pull-from-rta", `{"category_id":"`+testCategoryID+`","amount":100}`)
	assertStatus(t, rec, http.StatusOK)

	rec = doRequest(r, "POST", "/categories/pull-from-rta", `{"category_id":"`+testCategoryID+`","amount":101}`)
	assertStatus(t, rec, http.StatusUnprocessableEntity)
	assertErrorCode(t, parseJSON(t, rec), "INSUFFICIENT_READY_TO_ASSIGN")

	if len(calls) != 3 || calls[0] != "to" || calls[1] != "from" {
		t.Errorf("unexpected calls %v", calls)
	}
	if len(audit.actions) != 2 || audit.actions[0] != "MOVE_TO_RTA" || audit.actions[1] != "PULL_FROM_RTA" {
		t.Errorf("unexpected audit %v", audit.actions)
	}
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	svc := &mockCategoryService{
		deleteCategoryFn: func(_, _ string) error {
			return apperrors.ErrCategoryInUse
		},
	}
	r := setupCategoryRouter(NewCategoryHandler(svc, &mockAssignmentService{}, &mockAuditService{}))

	rec := doRequest(r, "DELETE", "/categories/"+testCategoryID, "")

	assertStatus(t, rec, http.StatusConflict)
	assertErrorCode(t, parseJSON(t, rec), "CATEGORY_IN_USE")
}

func TestCategoryHandler_ReorderCategories(t *testing.T) {
	var got []string
	svc := &mockCategoryService{
		reorderCategoriesFn: func(_ string, ids []string) error {
			got = ids
			return nil
		},
	}
	r := setupCategoryRouter(NewCategoryHandler(svc, &mockAssignmentService{}, &mockAuditService{}))

	t.Run("passes ids in order", func(t *testing.T) {
		rec := doRequest(r, "POST", "/categories/reorder", `{"category_ids":["`+testOtherID+`","`+testCategoryID+`"]}`)

		assertStatus(t, rec, http.StatusOK)
		if len(got) != 2 || got[0] != testOtherID {
			t.Errorf("unexpected ids %v", got)
		}
	})

	t.Run("returns 400 on non-uuid id", func(t *testing.T) {
		rec := doRequest(r, "POST", "/categories/reorder", `{"category_ids":["abc"]}`)

		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestCategoryHandler_GetDebtSummary(t *testing.T) {
	svc := &mockCategoryService{
		getDebtSummaryFn: func(_, categoryID string) (*services.DebtSummary, error) {
			return &services.DebtSummary{
				CategoryID:        categoryID,
				IsPaymentCategory: true,
				Totals:            store.DebtTotals{Debt: 100, Covered: 40},
			}, nil
		},
	}
	r := setupCategoryRouter(NewCategoryHandler(svc, &mockAssignmentService{}, &mockAuditService{}))

	rec := doRequest(r, "GET", "/categories/"+testCategoryID+"/debt-summary", "")

	assertStatus(t, rec, http.StatusOK)
	if parseJSON(t, rec)["is_payment_category"] != true {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}
