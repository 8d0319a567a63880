package services

import (
	"testing"

	"budgetwise/internal/calendar"
	"budgetwise/internal/models"
	"budgetwise/internal/testutil"
)

func TestCategoryGroups(t *testing.T) {
	t.Run("create_appends", func(t *testing.T) {
		f := setupEngine(t)
		defer testutil.TeardownTestDB(t, f.db)
		svc := NewCategoryGroupService(f.writer)

		group, err := svc.CreateGroup(f.ctx, f.user.ID, f.budget.ID, "Bills")
		testutil.AssertNoError(t, err)

		if group.DisplayOrder <= f.group.DisplayOrder {
			t.Errorf("expected new group after existing ones, got order %d", group.DisplayOrder)
		}
	})

	t.Run("reserved_name", func(t *testing.T) {
		f := setupEngine(t)
		defer testutil.TeardownTestDB(t, f.db)
		svc := NewCategoryGroupService(f.writer)

		_, err := svc.CreateGroup(f.ctx, f.user.ID, f.budget.ID, "hidden categories")
		testutil.AssertAppError(t, err, "SYSTEM_GROUP_PROTECTED")
	})

	t.Run("system_group_is_protected", func(t *testing.T) {
		f := setupEngine(t)
		defer testutil.TeardownTestDB(t, f.db)
		svc := NewCategoryGroupService(f.writer)
		cc := testutil.SystemGroup(t, f.db, f.budget, models.CreditCardPaymentsGroup)

		name := "Cards"
		_, err := svc.UpdateGroup(f.ctx, f.user.ID, cc.ID, &name, nil)
		testutil.AssertAppError(t, err, "SYSTEM_GROUP_PROTECTED")

		err = svc.DeleteGroup(f.ctx, f.user.ID, cc.ID)
		testutil.AssertAppError(t, err, "SYSTEM_GROUP_PROTECTED")

		_, err = svc.SetHidden(f.ctx, f.user.ID, cc.ID, true)
		testutil.AssertAppError(t, err, "SYSTEM_GROUP_PROTECTED")
	})

	t.Run("delete_non_empty", func(t *testing.T) {
		f := setupEngine(t)
		defer testutil.TeardownTestDB(t, f.db)
		svc := NewCategoryGroupService(f.writer)

		err := svc.DeleteGroup(f.ctx, f.user.ID, f.group.ID)
		testutil.AssertAppError(t, err, "CATEGORY_GROUP_NOT_EMPTY")
	})

	t.Run("delete_empty", func(t *testing.T) {
		f := setupEngine(t)
		defer testutil.TeardownTestDB(t, f.db)
		svc := NewCategoryGroupService(f.writer)

		group, err := svc.CreateGroup(f.ctx, f.user.ID, f.budget.ID, "Temporary")
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, svc.DeleteGroup(f.ctx, f.user.ID, group.ID))
		groups, err := svc.GetBudgetGroups(f.ctx, f.user.ID, f.budget.ID)
		testutil.AssertNoError(t, err)
		for _, g := range groups {
			if g.ID == group.ID {
				t.Error("expected group to be deleted")
			}
		}
	})

	t.Run("hide_and_unhide", func(t *testing.T) {
		f := setupEngine(t)
		defer testutil.TeardownTestDB(t, f.db)
		svc := NewCategoryGroupService(f.writer)
		hidden := testutil.SystemGroup(t, f.db, f.budget, models.HiddenCategoriesGroup)

		group, err := svc.SetHidden(f.ctx, f.user.ID, f.group.ID, true)
		testutil.AssertNoError(t, err)
		if !group.IsHidden {
			t.Error("expected group to be hidden")
		}

		var moved models.Category
		f.db.Where("id = ?", f.groceries.ID).First(&moved)
		if moved.CategoryGroupID != hidden.ID {
			t.Error("expected category in Hidden Categories")
		}
		if moved.HiddenFromGroupID == nil || *moved.HiddenFromGroupID != f.group.ID {
			t.Error("expected category to remember its group")
		}

		err = svc.DeleteGroup(f.ctx, f.user.ID, f.group.ID)
		testutil.AssertAppError(t, err, "CATEGORY_GROUP_NOT_EMPTY")

		_, err = svc.SetHidden(f.ctx, f.user.ID, f.group.ID, false)
		testutil.AssertNoError(t, err)

		var restored models.Category
		f.db.Where("id = ?", f.groceries.ID).First(&restored)
		if restored.CategoryGroupID != f.group.ID || restored.HiddenFromGroupID != nil {
			t.Errorf("expected category restored to its group, got %+v", restored)
		}
	})

	t.Run("reorder_is_idempotent", func(t *testing.T) {
		f := setupEngine(t)
		defer testutil.TeardownTestDB(t, f.db)
		svc := NewCategoryGroupService(f.writer)

		second, err := svc.CreateGroup(f.ctx, f.user.ID, f.budget.ID, "Second")
		testutil.AssertNoError(t, err)

		ids := []string{second.ID, f.group.ID}
		testutil.AssertNoError(t, svc.ReorderGroups(f.ctx, f.user.ID, ids))
		testutil.AssertNoError(t, svc.ReorderGroups(f.ctx, f.user.ID, ids))

		var a, b models.CategoryGroup
		f.db.Where("id = ?", second.ID).First(&a)
		f.db.Where("id = ?", f.group.ID).First(&b)
		if a.DisplayOrder != 0 || b.DisplayOrder != 1 {
			t.Errorf("expected orders 0 and 1, got %d and %d", a.DisplayOrder, b.DisplayOrder)
		}
	})
}

func TestCategories(t *testing.T) {
	t.Run("create_in_system_group", func(t *testing.T) {
		f := setupEngine(t)
		defer testutil.TeardownTestDB(t, f.db)
		svc := NewCategoryService(f.writer)
		cc := testutil.SystemGroup(t, f.db, f.budget, models.CreditCardPaymentsGroup)

		_, err := svc.CreateCategory(f.ctx, f.user.ID, cc.ID, "Sneaky")
		testutil.AssertAppError(t, err, "SYSTEM_GROUP_CATEGORY")
	})

	t.Run("list_with_balances", func(t *testing.T) {
		f := setupEngine(t)
		defer testutil.TeardownTestDB(t, f.db)
		svc := NewCategoryService(f.writer)

		dining, err := svc.CreateCategory(f.ctx, f.user.ID, f.group.ID, "Dining")
		testutil.AssertNoError(t, err)
		f.assign(t, f.groceries, 120)

		cats, err := svc.GetGroupCategories(f.ctx, f.user.ID, f.group.ID, testutil.May2025)
		testutil.AssertNoError(t, err)
		if len(cats) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(cats))
		}
		for _, c := range cats {
			switch c.ID {
			case f.groceries.ID:
				if c.Assigned != 120 || c.Available != 120 {
					t.Errorf("unexpected groceries balance %+v", c)
				}
			case dining.ID:
				if c.Assigned != 0 || c.Available != 0 {
					t.Errorf("expected zero balance for dining, got %+v", c)
				}
			}
		}
	})

	t.Run("delete_payment_category", func(t *testing.T) {
		f := setupEngine(t)
		defer testutil.TeardownTestDB(t, f.db)
		svc := NewCategoryService(f.writer)

		err := svc.DeleteCategory(f.ctx, f.user.ID, f.payment.ID)
		testutil.AssertAppError(t, err, "PAYMENT_CATEGORY_PROTECTED")
	})

	t.Run("delete_in_use", func(t *testing.T) {
		f := setupEngine(t)
		defer testutil.TeardownTestDB(t, f.db)
		svc := NewCategoryService(f.writer)

		f.create(t, f.cash, "2025-05-02", -10, f.groceries)
		err := svc.DeleteCategory(f.ctx, f.user.ID, f.groceries.ID)
		testutil.AssertAppError(t, err, "CATEGORY_IN_USE")
	})

	t.Run("delete_unused_removes_balances", func(t *testing.T) {
		f := setupEngine(t)
		defer testutil.TeardownTestDB(t, f.db)
		svc := NewCategoryService(f.writer)

		f.assign(t, f.groceries, 50)
		testutil.AssertNoError(t, svc.DeleteCategory(f.ctx, f.user.ID, f.groceries.ID))

		var n int64
		f.db.Model(&models.CategoryBalance{}).Where("category_id = ?", f.groceries.ID).Count(&n)
		if n != 0 {
			t.Errorf("expected balances removed, got %d", n)
		}
	})

	t.Run("debt_summary", func(t *testing.T) {
		f := setupEngine(t)
		defer testutil.TeardownTestDB(t, f.db)
		svc := NewCategoryService(f.writer)

		f.assign(t, f.groceries, 30)
		f.create(t, f.card, "2025-05-02", -50, f.groceries)
		f.create(t, f.card, "2025-05-03", -20, f.groceries)

		spending, err := svc.GetDebtSummary(f.ctx, f.user.ID, f.groceries.ID)
		testutil.AssertNoError(t, err)
		if spending.IsPaymentCategory || spending.Totals.Entries != 2 || spending.Totals.Debt != 70 || spending.Totals.Covered != 30 || spending.Totals.Uncovered != 40 {
			t.Errorf("unexpected spending summary %+v", spending)
		}

		payment, err := svc.GetDebtSummary(f.ctx, f.user.ID, f.payment.ID)
		testutil.AssertNoError(t, err)
		if !payment.IsPaymentCategory || payment.Totals.Debt != 70 || payment.Totals.Covered != 30 {
			t.Errorf("unexpected payment summary %+v", payment)
		}
	})
}

func TestEnsureMonth(t *testing.T) {
	f := setupEngine(t)
	defer testutil.TeardownTestDB(t, f.db)
	svc := NewCategoryBalanceService(f.writer, f.assignments)

	dining := testutil.CreateTestCategoryNamed(t, f.db, f.group, "Dining")
	testutil.CreateTestBalance(t, f.db, f.groceries, testutil.May2025, 100, -30, 70)
	testutil.CreateTestBalance(t, f.db, dining, testutil.May2025, 0, -20, -20)
	june := calendar.Month{Year: 2025, Month: 6}

	t.Run("carries_positive_available", func(t *testing.T) {
		created, err := svc.EnsureMonth(f.ctx, f.user.ID, f.budget.ID, june)
		testutil.AssertNoError(t, err)

		// groceries, dining and the card's payment category
		if len(created) != 3 {
			t.Errorf("expected 3 rows, got %d", len(created))
		}
		testutil.AssertBalance(t, f.db, f.groceries.ID, june, 0, 0, 70)
		testutil.AssertBalance(t, f.db, dining.ID, june, 0, 0, 0)
	})

	t.Run("second_call_creates_nothing", func(t *testing.T) {
		created, err := svc.EnsureMonth(f.ctx, f.user.ID, f.budget.ID, june)
		testutil.AssertNoError(t, err)

		if len(created) != 0 {
			t.Errorf("expected no new rows, got %d", len(created))
		}
	})

	t.Run("get_missing_month_reads_zero", func(t *testing.T) {
		b, err := svc.GetBalance(f.ctx, f.user.ID, f.groceries.ID, calendar.Month{Year: 2024, Month: 1})
		testutil.AssertNoError(t, err)

		if b.Assigned != 0 || b.Activity != 0 || b.Available != 0 {
			t.Errorf("expected zeros, got %+v", b)
		}
	})

	t.Run("update_ignores_metadata", func(t *testing.T) {
		name := "Ignored"
		assigned := int64(150)
		_, err := svc.UpdateBalance(f.ctx, f.user.ID, f.groceries.ID, CategoryPatch{Name: &name, Assigned: &assigned}, f.ud, f.ud.Current)
		testutil.AssertNoError(t, err)

		testutil.AssertBalance(t, f.db, f.groceries.ID, testutil.May2025, 150, -30, 120)
		var c models.Category
		f.db.Where("id = ?", f.groceries.ID).First(&c)
		if c.Name != "Groceries" {
			t.Errorf("expected name unchanged, got %q", c.Name)
		}
	})

	t.Run("update_targets_requested_month", func(t *testing.T) {
		april := calendar.Month{Year: 2025, Month: 4}
		assigned := int64(40)
		_, err := svc.UpdateBalance(f.ctx, f.user.ID, f.groceries.ID, CategoryPatch{Assigned: &assigned}, f.ud, april)
		testutil.AssertNoError(t, err)

		testutil.AssertBalance(t, f.db, f.groceries.ID, april, 40, 0, 40)
		testutil.AssertBalance(t, f.db, f.groceries.ID, testutil.May2025, 150, -30, 120)
	})
}

func TestAutoAssignConfigs(t *testing.T) {
	t.Run("create_and_list", func(t *testing.T) {
		f := setupEngine(t)
		defer testutil.TeardownTestDB(t, f.db)
		svc := NewAutoAssignService(f.writer)
		rent := testutil.CreateTestCategoryNamed(t, f.db, f.group, "Rent")

		cfg, err := svc.CreateConfig(f.ctx, f.user.ID, f.budget.ID, "Monthly", []AutoAssignItemInput{
			{CategoryID: rent.ID, Amount: 1000},
			{CategoryID: f.groceries.ID, Amount: 250},
		})
		testutil.AssertNoError(t, err)
		if cfg.Total != 1250 || len(cfg.Items) != 2 {
			t.Errorf("unexpected config %+v", cfg)
		}

		_, err = svc.CreateConfig(f.ctx, f.user.ID, f.budget.ID, "Buffer", []AutoAssignItemInput{{CategoryID: rent.ID, Amount: 10}})
		testutil.AssertNoError(t, err)

		configs, err := svc.GetBudgetConfigs(f.ctx, f.user.ID, f.budget.ID)
		testutil.AssertNoError(t, err)
		if len(configs) != 2 || configs[0].Name != "Buffer" || configs[1].Name != "Monthly" {
			t.Errorf("unexpected configs %+v", configs)
		}
	})

	t.Run("duplicate_name", func(t *testing.T) {
		f := setupEngine(t)
		defer testutil.TeardownTestDB(t, f.db)
		svc := NewAutoAssignService(f.writer)

		items := []AutoAssignItemInput{{CategoryID: f.groceries.ID, Amount: 10}}
		_, err := svc.CreateConfig(f.ctx, f.user.ID, f.budget.ID, "Weekly", items)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateConfig(f.ctx, f.user.ID, f.budget.ID, "Weekly", items)
		testutil.AssertAppError(t, err, "DUPLICATE_AUTO_ASSIGN_NAME")
	})

	t.Run("invalid_items", func(t *testing.T) {
		f := setupEngine(t)
		defer testutil.TeardownTestDB(t, f.db)
		svc := NewAutoAssignService(f.writer)

		_, err := svc.CreateConfig(f.ctx, f.user.ID, f.budget.ID, "Empty", nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateConfig(f.ctx, f.user.ID, f.budget.ID, "Zero", []AutoAssignItemInput{{CategoryID: f.groceries.ID, Amount: 0}})
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.CreateConfig(f.ctx, f.user.ID, f.budget.ID, "Twice", []AutoAssignItemInput{
			{CategoryID: f.groceries.ID, Amount: 5},
			{CategoryID: f.groceries.ID, Amount: 5},
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("hidden_category", func(t *testing.T) {
		f := setupEngine(t)
		defer testutil.TeardownTestDB(t, f.db)
		svc := NewAutoAssignService(f.writer)

		_, err := NewCategoryGroupService(f.writer).SetHidden(f.ctx, f.user.ID, f.group.ID, true)
		testutil.AssertNoError(t, err)

		_, err = svc.CreateConfig(f.ctx, f.user.ID, f.budget.ID, "Hidden", []AutoAssignItemInput{{CategoryID: f.groceries.ID, Amount: 5}})
		testutil.AssertAppError(t, err, "HIDDEN_CATEGORY_AUTO_ASSIGN")
	})

	t.Run("rename_keeps_items", func(t *testing.T) {
		f := setupEngine(t)
		defer testutil.TeardownTestDB(t, f.db)
		svc := NewAutoAssignService(f.writer)

		_, err := svc.CreateConfig(f.ctx, f.user.ID, f.budget.ID, "Old", []AutoAssignItemInput{{CategoryID: f.groceries.ID, Amount: 40}})
		testutil.AssertNoError(t, err)

		newName := "New"
		cfg, err := svc.UpdateConfig(f.ctx, f.user.ID, f.budget.ID, "Old", &newName, nil)
		testutil.AssertNoError(t, err)
		if cfg.Name != "New" || cfg.Total != 40 {
			t.Errorf("unexpected config %+v", cfg)
		}

		_, err = svc.GetConfig(f.ctx, f.user.ID, f.budget.ID, "Old")
		testutil.AssertAppError(t, err, "AUTO_ASSIGN_NOT_FOUND")
	})

	t.Run("replace_items", func(t *testing.T) {
		f := setupEngine(t)
		defer testutil.TeardownTestDB(t, f.db)
		svc := NewAutoAssignService(f.writer)
		rent := testutil.CreateTestCategoryNamed(t, f.db, f.group, "Rent")

		_, err := svc.CreateConfig(f.ctx, f.user.ID, f.budget.ID, "Plan", []AutoAssignItemInput{{CategoryID: f.groceries.ID, Amount: 40}})
		testutil.AssertNoError(t, err)

		cfg, err := svc.UpdateConfig(f.ctx, f.user.ID, f.budget.ID, "Plan", nil, []AutoAssignItemInput{{CategoryID: rent.ID, Amount: 900}})
		testutil.AssertNoError(t, err)
		if len(cfg.Items) != 1 || cfg.Items[0].CategoryID != rent.ID || cfg.Total != 900 {
			t.Errorf("unexpected config %+v", cfg)
		}
	})

	t.Run("delete", func(t *testing.T) {
		f := setupEngine(t)
		defer testutil.TeardownTestDB(t, f.db)
		svc := NewAutoAssignService(f.writer)

		_, err := svc.CreateConfig(f.ctx, f.user.ID, f.budget.ID, "Gone", []AutoAssignItemInput{{CategoryID: f.groceries.ID, Amount: 40}})
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, svc.DeleteConfig(f.ctx, f.user.ID, f.budget.ID, "Gone"))
		err = svc.DeleteConfig(f.ctx, f.user.ID, f.budget.ID, "Gone")
		testutil.AssertAppError(t, err, "AUTO_ASSIGN_NOT_FOUND")
	})
}
