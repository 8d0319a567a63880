package server

import (
	"fmt"
	"net/http"
	"testing"
)

// budgetFlow is a budget with a cash account, a credit account and one
// spending category, driven entirely through the HTTP API.
type budgetFlow struct {
	app       *testApp
	token     string
	budgetID  string
	cashID    string
	cardID    string
	groceryID string
	paymentID string
}

func newBudgetFlow(t *testing.T) *budgetFlow {
	t.Helper()
	app := setupApp(t)
	f := &budgetFlow{app: app, token: app.registerUser(t, "budget@test.com", "budgeter")}

	budget := app.create(t, f.token, "/api/v1/budgets", "budget", `{"name":"Household","currency":"usd"}`)
	f.budgetID = budget["id"].(string)

	cash := app.create(t, f.token, "/api/v1/accounts", "account",
		fmt.Sprintf(`{"budget_id":%q,"name":"Checking","type":"cash"}`, f.budgetID))
	f.cashID = cash["id"].(string)

	card := app.create(t, f.token, "/api/v1/accounts", "account",
		fmt.Sprintf(`{"budget_id":%q,"name":"Visa","type":"credit"}`, f.budgetID))
	f.cardID = card["id"].(string)
	paymentID, ok := card["payment_category_id"].(string)
	if !ok || paymentID == "" {
		t.Fatalf("expected credit account to carry a payment category: %v", card)
	}
	f.paymentID = paymentID

	group := app.create(t, f.token, "/api/v1/category-groups", "category_group",
		fmt.Sprintf(`{"budget_id":%q,"name":"Everyday"}`, f.budgetID))
	grocery := app.create(t, f.token, "/api/v1/categories", "category",
		fmt.Sprintf(`{"category_group_id":%q,"name":"Groceries"}`, group["id"].(string)))
	f.groceryID = grocery["id"].(string)

	return f
}

func (f *budgetFlow) createTransaction(t *testing.T, accountID, date string, amount int64, categoryID string) map[string]interface{} {
	t.Helper()
	category := "null"
	if categoryID != "" {
		category = fmt.Sprintf("%q", categoryID)
	}
	body := fmt.Sprintf(`{"account_id":%q,"date":%q,"amount":%d,"category_id":%s,"userDate":%q}`,
		accountID, date, amount, category, today)
	return f.app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/transactions", body, f.token)
}

func (f *budgetFlow) assign(t *testing.T, categoryID string, assigned int64) map[string]interface{} {
	t.Helper()
	body := fmt.Sprintf(`{"assigned":%d,"userDate":%q}`, assigned, today)
	return f.app.mustRequest(t, http.StatusOK, "PATCH", "/api/v1/categories/"+categoryID, body, f.token)
}

func (f *budgetFlow) assertBalance(t *testing.T, categoryID string, assigned, activity, available int64) {
	t.Helper()
	path := fmt.Sprintf("/api/v1/category-balances/category/%s?year=2025&month=5&userDate=%s", categoryID, today)
	b := object(t, f.app.mustRequest(t, http.StatusOK, "GET", path, "", f.token), "balance")
	got := [3]int64{int64(b["assigned"].(float64)), int64(b["activity"].(float64)), int64(b["available"].(float64))}
	if want := [3]int64{assigned, activity, available}; got != want {
		t.Errorf("balance of %s: expected assigned/activity/available %v, got %v", categoryID, want, got)
	}
}

func (f *budgetFlow) assertWorking(t *testing.T, accountID string, working int64) {
	t.Helper()
	a := object(t, f.app.mustRequest(t, http.StatusOK, "GET", "/api/v1/accounts/"+accountID, "", f.token), "account")
	if got := int64(a["working_balance"].(float64)); got != working {
		t.Errorf("expected working balance %d, got %d", working, got)
	}
}

func (f *budgetFlow) readyToAssign(t *testing.T) int64 {
	t.Helper()
	path := fmt.Sprintf("/api/v1/budgets/%s/ready-to-assign?userDate=%s", f.budgetID, today)
	return int64(f.app.mustRequest(t, http.StatusOK, "GET", path, "", f.token)["ready_to_assign"].(float64))
}

func (f *budgetFlow) debtTotals(t *testing.T, categoryID string) (entries, debt, covered int64) {
	t.Helper()
	summary := f.app.mustRequest(t, http.StatusOK, "GET", "/api/v1/categories/"+categoryID+"/debt-summary", "", f.token)
	totals := object(t, summary, "totals")
	return int64(totals["entries"].(float64)), int64(totals["debt"].(float64)), int64(totals["covered"].(float64))
}

func TestBudgetFlow(t *testing.T) {
	f := newBudgetFlow(t)
	var firstCardSpend string

	t.Run("income then assign", func(t *testing.T) {
		result := f.createTransaction(t, f.cashID, "2025-05-10", 1000, "")
		if result["ready_to_assign"] != float64(1000) {
			t.Errorf("expected ready to assign 1000 in response, got %v", result["ready_to_assign"])
		}
		f.assertWorking(t, f.cashID, 1000)

		update := f.assign(t, f.groceryID, 300)
		if update["ready_to_assign"] != float64(700) {
			t.Errorf("expected ready to assign 700, got %v", update["ready_to_assign"])
		}
		f.assertBalance(t, f.groceryID, 300, 0, 300)
	})

	t.Run("cash outflow", func(t *testing.T) {
		f.createTransaction(t, f.cashID, "2025-05-12", -75, f.groceryID)

		f.assertBalance(t, f.groceryID, 300, -75, 225)
		f.assertWorking(t, f.cashID, 925)
		if got := f.readyToAssign(t); got != 700 {
			t.Errorf("expected ready to assign 700, got %d", got)
		}
	})

	t.Run("credit outflow with full coverage", func(t *testing.T) {
		result := f.createTransaction(t, f.cardID, "2025-05-13", -50, f.groceryID)
		firstCardSpend = object(t, result, "transaction")["id"].(string)

		f.assertBalance(t, f.groceryID, 300, -125, 175)
		f.assertBalance(t, f.paymentID, 0, 50, 50)
		f.assertWorking(t, f.cardID, -50)
		if entries, debt, covered := f.debtTotals(t, f.paymentID); entries != 1 || debt != 50 || covered != 50 {
			t.Errorf("expected one debt of 50 fully covered, got %d/%d/%d", entries, debt, covered)
		}
		if got := f.readyToAssign(t); got != 700 {
			t.Errorf("expected ready to assign unchanged at 700, got %d", got)
		}
	})

	t.Run("credit outflow with partial coverage", func(t *testing.T) {
		f.app.mustRequest(t, http.StatusOK, "POST", "/api/v1/categories/move-to-rta",
			fmt.Sprintf(`{"category_id":%q,"amount":165,"userDate":%q}`, f.groceryID, today), f.token)
		f.assertBalance(t, f.groceryID, 135, -125, 10)

		f.createTransaction(t, f.cardID, "2025-05-14", -40, f.groceryID)

		f.assertBalance(t, f.groceryID, 135, -165, -30)
		f.assertBalance(t, f.paymentID, 0, 60, 60)
		if entries, debt, covered := f.debtTotals(t, f.groceryID); entries != 2 || debt != 90 || covered != 60 {
			t.Errorf("expected debts 90 with 60 covered, got %d/%d/%d", entries, debt, covered)
		}
	})

	t.Run("later assignment covers remaining debt", func(t *testing.T) {
		f.assign(t, f.groceryID, 165)

		f.assertBalance(t, f.groceryID, 165, -165, 0)
		f.assertBalance(t, f.paymentID, 0, 90, 90)
		if _, debt, covered := f.debtTotals(t, f.groceryID); debt != 90 || covered != 90 {
			t.Errorf("expected all debt covered, got %d of %d", covered, debt)
		}
	})

	t.Run("delete credit transaction", func(t *testing.T) {
		f.app.mustRequest(t, http.StatusOK, "DELETE",
			fmt.Sprintf("/api/v1/transactions/%s?userDate=%s", firstCardSpend, today), "", f.token)

		f.assertBalance(t, f.groceryID, 165, -115, 50)
		f.assertBalance(t, f.paymentID, 0, 40, 40)
		f.assertWorking(t, f.cardID, -40)
		if entries, debt, covered := f.debtTotals(t, f.paymentID); entries != 1 || debt != 40 || covered != 40 {
			t.Errorf("expected the remaining debt only, got %d/%d/%d", entries, debt, covered)
		}
		rec := f.app.request("GET", "/api/v1/transactions/"+firstCardSpend, "", f.token)
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected deleted transaction to be gone, got %d", rec.Code)
		}
	})
}

func TestBudgetFlowRejections(t *testing.T) {
	f := newBudgetFlow(t)
	f.createTransaction(t, f.cashID, "2025-05-10", 100, "")
	f.assign(t, f.groceryID, 60)

	t.Run("future dated transaction", func(t *testing.T) {
		body := fmt.Sprintf(`{"account_id":%q,"date":"2025-05-21","amount":-5,"category_id":%q,"userDate":%q}`,
			f.cashID, f.groceryID, today)
		rec := f.app.request("POST", "/api/v1/transactions", body, f.token)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("move more than available", func(t *testing.T) {
		body := fmt.Sprintf(`{"from_category_id":%q,"to_category_id":%q,"amount":61,"userDate":%q}`,
			f.groceryID, f.paymentID, today)
		rec := f.app.request("POST", "/api/v1/categories/move-money", body, f.token)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected 422, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("pull more than ready to assign", func(t *testing.T) {
		body := fmt.Sprintf(`{"category_id":%q,"amount":41,"userDate":%q}`, f.groceryID, today)
		rec := f.app.request("POST", "/api/v1/categories/pull-from-rta", body, f.token)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("expected 422, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("rename payment category", func(t *testing.T) {
		rec := f.app.request("PATCH", "/api/v1/categories/"+f.paymentID, `{"name":"Something else"}`, f.token)
		if rec.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	f.assertBalance(t, f.groceryID, 60, 0, 60)
	if got := f.readyToAssign(t); got != 40 {
		t.Errorf("expected rejected requests to leave ready to assign at 40, got %d", got)
	}
}

func TestAutoAssignFlow(t *testing.T) {
	f := newBudgetFlow(t)
	f.createTransaction(t, f.cashID, "2025-05-10", 500, "")

	f.app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/auto-assign",
		fmt.Sprintf(`{"budget_id":%q,"name":"Payday","items":[{"category_id":%q,"amount":120}]}`, f.budgetID, f.groceryID), f.token)

	result := f.app.mustRequest(t, http.StatusOK, "POST", "/api/v1/auto-assign/apply",
		fmt.Sprintf(`{"budget_id":%q,"name":"Payday","userDate":%q}`, f.budgetID, today), f.token)

	if result["applied_count"] != float64(1) || result["ready_to_assign"] != float64(380) {
		t.Errorf("unexpected apply result %v", result)
	}
	f.assertBalance(t, f.groceryID, 120, 0, 120)

	rec := f.app.request("GET", fmt.Sprintf("/api/v1/auto-assign/budget/%s/config/Missing", f.budgetID), "", f.token)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown configuration, got %d", rec.Code)
	}
}

func TestTransferFlow(t *testing.T) {
	f := newBudgetFlow(t)
	f.createTransaction(t, f.cashID, "2025-05-10", 1000, "")
	f.assign(t, f.groceryID, 100)
	f.createTransaction(t, f.cardID, "2025-05-11", -100, f.groceryID)
	f.assertBalance(t, f.paymentID, 0, 100, 100)

	result := f.app.mustRequest(t, http.StatusCreated, "POST", "/api/v1/transactions/transfer",
		fmt.Sprintf(`{"from_account_id":%q,"to_account_id":%q,"amount":100,"date":"2025-05-15","userDate":%q}`,
			f.cashID, f.cardID, today), f.token)
	counterpart := object(t, result, "counterpart")
	if counterpart["account_id"] != f.cardID || counterpart["amount"] != float64(100) {
		t.Errorf("unexpected counterpart %v", counterpart)
	}

	f.assertWorking(t, f.cashID, 900)
	f.assertWorking(t, f.cardID, 0)
	f.assertBalance(t, f.paymentID, 0, 0, 0)

	rec := f.app.request("PATCH", "/api/v1/transactions/"+object(t, result, "transaction")["id"].(string),
		fmt.Sprintf(`{"amount":-50,"userDate":%q}`, today), f.token)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected transfer amount edit to be rejected, got %d", rec.Code)
	}
}
