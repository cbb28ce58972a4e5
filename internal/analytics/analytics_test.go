package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/Sarankumarr01/Budget-Planner-main/internal/models"
)

func expense(date, category string, amount float64) models.Transaction {
	return models.Transaction{Date: date, Category: category, Amount: amount, Type: models.TypeExpense}
}

func income(date, category string, amount float64) models.Transaction {
	return models.Transaction{Date: date, Category: category, Amount: amount, Type: models.TypeIncome}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMonthlyBudgetComparison(t *testing.T) {
	categories := []models.Category{
		{Name: "Groceries", Type: models.TypeExpense},
		{Name: "Fuel", Type: models.TypeExpense},
	}
	budgets := []models.Budget{
		{Category: "Groceries", Month: 8, Year: 2024, PlannedAmount: 500},
	}
	txns := []models.Transaction{
		expense("2024-08-15", "Groceries", 100.50),
		expense("2024-07-15", "Groceries", 40), // other month, excluded
		income("2024-08-15", "Paycheck", 2000), // income, excluded
	}

	rows := Monthly(categories, budgets, txns, 8, 2024)
	if len(rows) != len(categories) {
		t.Fatalf("got %d rows, want one per expense category (%d)", len(rows), len(categories))
	}

	if rows[0].Category != "Groceries" || !almostEqual(rows[0].Actual, 100.50) ||
		!almostEqual(rows[0].Planned, 500) || !almostEqual(rows[0].Difference, 399.50) {
		t.Errorf("groceries row = %+v, want actual 100.50 planned 500 difference 399.50", rows[0])
	}

	// inactive category still gets a zero row
	if rows[1].Category != "Fuel" || rows[1].Actual != 0 || rows[1].Planned != 0 || rows[1].Difference != 0 {
		t.Errorf("fuel row = %+v, want all zeros", rows[1])
	}
}

func TestMonthlyEmptyEverything(t *testing.T) {
	categories := []models.Category{{Name: "Rent/mortgage", Type: models.TypeExpense}}

	rows := Monthly(categories, nil, nil, 1, 2030)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Actual != 0 || rows[0].Planned != 0 {
		t.Errorf("row = %+v, want zeros", rows[0])
	}
}

func TestYearlyAlwaysTwelveRows(t *testing.T) {
	txns := []models.Transaction{
		income("2024-01-10", "Paycheck", 3000),
		expense("2024-01-20", "Groceries", 500),
		expense("2024-06-01", "Fuel", 80),
	}

	rows := Yearly(txns, 2024)
	if len(rows) != 12 {
		t.Fatalf("got %d rows, want 12", len(rows))
	}

	wantLabels := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	for i, row := range rows {
		if row.Month != wantLabels[i] {
			t.Errorf("row %d label = %q, want %q", i, row.Month, wantLabels[i])
		}
	}

	if !almostEqual(rows[0].Income, 3000) || !almostEqual(rows[0].Expense, 500) || !almostEqual(rows[0].Balance, 2500) {
		t.Errorf("january = %+v, want income 3000 expense 500 balance 2500", rows[0])
	}
	if !almostEqual(rows[5].Expense, 80) {
		t.Errorf("june expense = %v, want 80", rows[5].Expense)
	}
	if rows[11].Income != 0 || rows[11].Expense != 0 {
		t.Errorf("december = %+v, want zeros", rows[11])
	}
}

func TestUnparseableDatesExcluded(t *testing.T) {
	txns := []models.Transaction{
		expense("2024-08-15", "Groceries", 100),
		expense("2024-13-40", "Groceries", 9999), // bad month and day
		expense("garbage", "Groceries", 9999),
		expense("2024-8-15", "Groceries", 9999), // not zero padded, strict parse rejects
	}

	rows := Yearly(txns, 2024)
	if !almostEqual(rows[7].Expense, 100) {
		t.Errorf("august expense = %v, want 100 (bad dates must be dropped)", rows[7].Expense)
	}
}

func TestCategoryBreakdownSortedWithPercentages(t *testing.T) {
	txns := []models.Transaction{
		expense("2024-08-01", "Groceries", 300),
		expense("2024-08-02", "Fuel", 100),
		expense("2024-08-03", "Groceries", 100),
		income("2024-08-04", "Paycheck", 5000), // other type, excluded
	}

	rows := CategoryBreakdown(txns, 8, 2024, models.TypeExpense)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Category != "Groceries" || rows[1].Category != "Fuel" {
		t.Errorf("order = %q, %q, want Groceries then Fuel", rows[0].Category, rows[1].Category)
	}
	if !almostEqual(rows[0].Percentage, 80) || !almostEqual(rows[1].Percentage, 20) {
		t.Errorf("percentages = %v, %v, want 80, 20", rows[0].Percentage, rows[1].Percentage)
	}

	var sum float64
	for _, row := range rows {
		sum += row.Percentage
	}
	if !almostEqual(sum, 100) {
		t.Errorf("percentages sum to %v, want 100", sum)
	}
}

func TestCategoryBreakdownZeroTotal(t *testing.T) {
	// amounts can be zero; percentages must not divide by zero
	txns := []models.Transaction{
		expense("2024-08-01", "Groceries", 0),
	}

	rows := CategoryBreakdown(txns, 8, 2024, models.TypeExpense)
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].Percentage != 0 {
		t.Errorf("percentage = %v, want 0 when total is 0", rows[0].Percentage)
	}
}

func TestTrendThirtyDayStepping(t *testing.T) {
	now := time.Date(2024, 8, 15, 12, 0, 0, 0, time.UTC)
	txns := []models.Transaction{
		expense("2024-08-01", "Groceries", 100),
		expense("2024-07-01", "Groceries", 200),
		income("2024-06-01", "Paycheck", 1000),
	}

	rows := Trend(txns, 3, now)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	// 60 and 30 days before Aug 15 land in June and July
	wantLabels := []string{"Jun 2024", "Jul 2024", "Aug 2024"}
	for i, row := range rows {
		if row.Month != wantLabels[i] {
			t.Errorf("row %d label = %q, want %q", i, row.Month, wantLabels[i])
		}
	}
	if !almostEqual(rows[0].Income, 1000) || !almostEqual(rows[1].Expense, 200) || !almostEqual(rows[2].Expense, 100) {
		t.Errorf("rows = %+v", rows)
	}
}

func TestTrendCrossesYearBoundary(t *testing.T) {
	now := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	rows := Trend(nil, 2, now)
	if rows[0].Month != "Dec 2023" || rows[1].Month != "Jan 2024" {
		t.Errorf("labels = %q, %q, want Dec 2023 then Jan 2024", rows[0].Month, rows[1].Month)
	}
}

func TestFiscalYearWindow(t *testing.T) {
	txns := []models.Transaction{
		income("2024-04-01", "Paycheck", 100), // first bucket
		expense("2025-03-31", "Groceries", 50), // last bucket
		expense("2025-04-01", "Groceries", 999), // outside the window
	}

	rows := FiscalYear(txns, 2024)
	if len(rows) != 12 {
		t.Fatalf("got %d rows, want 12", len(rows))
	}

	wantLabels := []string{"Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec", "Jan", "Feb", "Mar"}
	for i, row := range rows {
		if row.Month != wantLabels[i] {
			t.Errorf("row %d label = %q, want %q", i, row.Month, wantLabels[i])
		}
	}

	if !almostEqual(rows[0].Income, 100) {
		t.Errorf("april income = %v, want 100", rows[0].Income)
	}
	if !almostEqual(rows[11].Expense, 50) {
		t.Errorf("march expense = %v, want 50", rows[11].Expense)
	}
	var total float64
	for _, row := range rows {
		total += row.Expense
	}
	if !almostEqual(total, 50) {
		t.Errorf("window expense total = %v, want 50 (next april excluded)", total)
	}
}

func TestFiscalYearPrefixes(t *testing.T) {
	prefixes := FiscalYearPrefixes(2024)
	if len(prefixes) != 12 {
		t.Fatalf("got %d prefixes, want 12", len(prefixes))
	}
	if prefixes[0] != "2024-04" || prefixes[8] != "2024-12" || prefixes[9] != "2025-01" || prefixes[11] != "2025-03" {
		t.Errorf("prefixes = %v", prefixes)
	}
}

func TestBurnRateAveragesOnlyMonthsWithRows(t *testing.T) {
	now := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)
	// expenses in Aug and Jul, nothing in Jun: denominator is 2, not 3
	txns := []models.Transaction{
		expense("2024-08-01", "Groceries", 300),
		expense("2024-07-01", "Groceries", 100),
		income("2024-01-01", "Paycheck", 1000),
	}

	got := ComputeBurnRate(txns, now)
	if !almostEqual(got.MonthlyBurnRate, 200) {
		t.Errorf("burn rate = %v, want 200 (400 over 2 counted months)", got.MonthlyBurnRate)
	}
	if !almostEqual(got.CurrentBalance, 600) {
		t.Errorf("balance = %v, want 600", got.CurrentBalance)
	}
	if !almostEqual(got.RunwayMonths, 3) {
		t.Errorf("runway = %v, want 3", got.RunwayMonths)
	}
}

func TestBurnRateNoExpenses(t *testing.T) {
	now := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)
	txns := []models.Transaction{
		income("2024-08-01", "Paycheck", 1000),
	}

	got := ComputeBurnRate(txns, now)
	if got.MonthlyBurnRate != 0 {
		t.Errorf("burn rate = %v, want 0", got.MonthlyBurnRate)
	}
	if got.RunwayMonths != 0 {
		t.Errorf("runway = %v, want 0 when burn rate is 0", got.RunwayMonths)
	}
	if !almostEqual(got.CurrentBalance, 1000) {
		t.Errorf("balance = %v, want 1000", got.CurrentBalance)
	}
}

func TestBurnRateBalanceIgnoresDateValidity(t *testing.T) {
	now := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)
	// the bad-date expense joins the lifetime balance but no monthly bucket
	txns := []models.Transaction{
		income("2024-08-01", "Paycheck", 1000),
		expense("not-a-date", "Groceries", 400),
	}

	got := ComputeBurnRate(txns, now)
	if got.MonthlyBurnRate != 0 {
		t.Errorf("burn rate = %v, want 0 (bad date never buckets)", got.MonthlyBurnRate)
	}
	if !almostEqual(got.CurrentBalance, 600) {
		t.Errorf("balance = %v, want 600 (bad date still counts lifetime)", got.CurrentBalance)
	}
}
