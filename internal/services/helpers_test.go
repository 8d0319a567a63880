package services

import (
	"context"
	"testing"

	"budgetwise/internal/calendar"
	"budgetwise/internal/models"
	"budgetwise/internal/testutil"

	"gorm.io/gorm"
)

// engineFixture is a budget with one cash account, one credit account with
// its payment category, and a Groceries category, as of 20 May 2025.
type engineFixture struct {
	db        *gorm.DB
	ctx       context.Context
	ud        calendar.UserDate
	user      *models.User
	budget    *models.Budget
	cash      *models.Account
	card      *models.Account
	payment   *models.Category
	group     *models.CategoryGroup
	groceries *models.Category

	writer       *Writer
	transactions TransactionServicer
	assignments  AssignmentServicer
	budgets      BudgetServicer
}

func setupEngine(t *testing.T) *engineFixture {
	t.Helper()

	db := testutil.SetupTestDB(t)
	f := &engineFixture{db: db, ctx: context.Background(), ud: testutil.Today(20)}
	f.user = testutil.CreateTestUser(t, db)
	f.budget = testutil.CreateTestBudget(t, db, f.user.ID)
	f.cash = testutil.CreateTestCashAccount(t, db, f.budget, 0)
	f.card, f.payment = testutil.CreateTestCreditAccount(t, db, f.budget)
	f.group = testutil.CreateTestCategoryGroup(t, db, f.budget)
	f.groceries = testutil.CreateTestCategoryNamed(t, db, f.group, "Groceries")

	f.writer = NewWriter(db, nil, 0)
	f.transactions = NewTransactionService(f.writer)
	f.assignments = NewAssignmentService(f.writer)
	f.budgets = NewBudgetService(f.writer)
	return f
}

func (f *engineFixture) rta(t *testing.T) int64 {
	t.Helper()
	r, err := f.budgets.GetReadyToAssign(f.ctx, f.user.ID, f.budget.ID, f.ud)
	testutil.AssertNoError(t, err)
	return r.ReadyToAssign
}

func (f *engineFixture) create(t *testing.T, account *models.Account, date string, amount int64, category *models.Category) *models.Transaction {
	t.Helper()
	in := TransactionInput{AccountID: account.ID, Date: date, Amount: amount}
	if category != nil {
		in.CategoryID = &category.ID
	}
	res, err := f.transactions.CreateTransaction(f.ctx, f.user.ID, in, f.ud)
	testutil.AssertNoError(t, err)
	return res.Transaction
}

func (f *engineFixture) assign(t *testing.T, category *models.Category, assigned int64) *CategoryUpdate {
	t.Helper()
	res, err := f.assignments.UpdateCategory(f.ctx, f.user.ID, category.ID, CategoryPatch{Assigned: &assigned}, f.ud)
	testutil.AssertNoError(t, err)
	return res
}

func (f *engineFixture) account(t *testing.T, id string) models.Account {
	t.Helper()
	var a models.Account
	if err := f.db.Where("id = ?", id).First(&a).Error; err != nil {
		t.Fatalf("failed to load account: %v", err)
	}
	return a
}

// snapshot captures every aggregate of the fixture's budget.
type snapshot struct {
	accounts map[string][3]int64
	balances map[string][3]int64
	debts    map[string][2]int64
}

func (f *engineFixture) snapshot(t *testing.T) snapshot {
	t.Helper()
	s := snapshot{accounts: map[string][3]int64{}, balances: map[string][3]int64{}, debts: map[string][2]int64{}}

	var accounts []models.Account
	f.db.Where("budget_id = ?", f.budget.ID).Find(&accounts)
	for _, a := range accounts {
		s.accounts[a.ID] = [3]int64{a.ClearedBalance, a.UnclearedBalance, a.WorkingBalance}
	}
	var balances []models.CategoryBalance
	f.db.Where("budget_id = ?", f.budget.ID).Find(&balances)
	for _, b := range balances {
		if b.Assigned == 0 && b.Activity == 0 && b.Available == 0 {
			continue
		}
		s.balances[b.CategoryID+"/"+calendar.Month{Year: b.Year, Month: b.Month}.String()] = [3]int64{b.Assigned, b.Activity, b.Available}
	}
	var debts []models.CreditCardDebt
	f.db.Where("budget_id = ?", f.budget.ID).Find(&debts)
	for _, d := range debts {
		s.debts[d.TransactionID] = [2]int64{d.DebtAmount, d.CoveredAmount}
	}
	return s
}

func assertSameSnapshot(t *testing.T, before, after snapshot) {
	t.Helper()
	compare := func(kind string, a, b map[string][3]int64) {
		if len(a) != len(b) {
			t.Errorf("%s: %d entries before, %d after", kind, len(a), len(b))
		}
		for k, v := range a {
			if b[k] != v {
				t.Errorf("%s %s: before %v, after %v", kind, k, v, b[k])
			}
		}
	}
	compare("account", before.accounts, after.accounts)
	compare("balance", before.balances, after.balances)
	if len(before.debts) != len(after.debts) {
		t.Errorf("debts: %d before, %d after", len(before.debts), len(after.debts))
	}
	for k, v := range before.debts {
		if after.debts[k] != v {
			t.Errorf("debt %s: before %v, after %v", k, v, after.debts[k])
		}
	}
}

// assertInvariants checks the account projection and the debt bounds for
// the whole budget.
func (f *engineFixture) assertInvariants(t *testing.T) {
	t.Helper()

	var accounts []models.Account
	f.db.Where("budget_id = ?", f.budget.ID).Find(&accounts)
	for _, a := range accounts {
		var txs []models.Transaction
		f.db.Where("account_id = ?", a.ID).Find(&txs)
		var cleared, uncleared int64
		for _, tx := range txs {
			if tx.IsCleared {
				cleared += tx.Amount
			} else {
				uncleared += tx.Amount
			}
		}
		testutil.AssertAccount(t, f.db, a.ID, a.StartingBalance+cleared, uncleared)

		if a.IsCredit() {
			for _, tx := range txs {
				if tx.Amount < 0 && testutil.Debt(t, f.db, tx.ID) == nil {
					t.Errorf("credit outflow %s has no debt row", tx.ID)
				}
			}
		}
	}

	var debts []models.CreditCardDebt
	f.db.Where("budget_id = ?", f.budget.ID).Find(&debts)
	for _, d := range debts {
		if d.CoveredAmount < 0 || d.CoveredAmount > d.DebtAmount {
			t.Errorf("debt %s out of bounds: covered %d of %d", d.ID, d.CoveredAmount, d.DebtAmount)
		}
	}
}
