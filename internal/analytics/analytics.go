// Package analytics derives reporting values from a user's transactions.
// Every function works on rows already fetched for one user; nothing here
// touches the store. Dates are bucketed by strictly parsing the transaction's
// YYYY-MM-DD string; rows that fail to parse are silently skipped, so bad
// dates never error an aggregate but never count toward one either.
package analytics

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/Sarankumarr01/Budget-Planner-main/internal/models"
)

const dateLayout = "2006-01-02"

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthlyRow compares actual spending against the planned budget for one
// expense category.
type MonthlyRow struct {
	Category   string  `json:"category"`
	Actual     float64 `json:"actual"`
	Planned    float64 `json:"planned"`
	Difference float64 `json:"difference"`
}

// MonthRow is one income/expense bucket in a series.
type MonthRow struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// BreakdownRow is one slice of the per-category breakdown.
type BreakdownRow struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// BurnRate summarizes trailing spend against lifetime balance.
type BurnRate struct {
	MonthlyBurnRate float64 `json:"monthly_burn_rate"`
	CurrentBalance  float64 `json:"current_balance"`
	RunwayMonths    float64 `json:"runway_months"`
}

// parseDate applies the shared strict date filter.
func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// inBucket reports whether the transaction's date parses and falls in the
// given calendar month.
func inBucket(txn models.Transaction, month, year int) bool {
	t, ok := parseDate(txn.Date)
	if !ok {
		return false
	}
	return int(t.Month()) == month && t.Year() == year
}

// monthTotals sums income and expense for one calendar month.
func monthTotals(txns []models.Transaction, month, year int) (income, expense float64) {
	for _, txn := range txns {
		if !inBucket(txn, month, year) {
			continue
		}
		switch txn.Type {
		case models.TypeIncome:
			income += txn.Amount
		case models.TypeExpense:
			expense += txn.Amount
		}
	}
	return income, expense
}

// Monthly emits one row per given category, comparing the month's actual
// expense total against the planned budget (0 when no budget is set).
// Categories with no activity still get a row.
func Monthly(categories []models.Category, budgets []models.Budget, txns []models.Transaction, month, year int) []MonthlyRow {
	planned := make(map[string]float64, len(budgets))
	for _, b := range budgets {
		if b.Month == month && b.Year == year {
			planned[b.Category] = b.PlannedAmount
		}
	}

	rows := make([]MonthlyRow, 0, len(categories))
	for _, cat := range categories {
		var actual float64
		for _, txn := range txns {
			if txn.Type != models.TypeExpense || txn.Category != cat.Name {
				continue
			}
			if inBucket(txn, month, year) {
				actual += txn.Amount
			}
		}
		p := planned[cat.Name]
		rows = append(rows, MonthlyRow{
			Category:   cat.Name,
			Actual:     actual,
			Planned:    p,
			Difference: p - actual,
		})
	}
	return rows
}

// Yearly returns twelve rows, Jan through Dec, for the given calendar year.
func Yearly(txns []models.Transaction, year int) []MonthRow {
	rows := make([]MonthRow, 0, 12)
	for month := 1; month <= 12; month++ {
		income, expense := monthTotals(txns, month, year)
		rows = append(rows, MonthRow{
			Month:   monthNames[month-1],
			Income:  income,
			Expense: expense,
			Balance: income - expense,
		})
	}
	return rows
}

// CategoryBreakdown sums the month's amounts per category for one type and
// returns them sorted by amount descending with their share of the total.
// Percentages are all zero when the total is zero.
func CategoryBreakdown(txns []models.Transaction, month, year int, txnType string) []BreakdownRow {
	sums := make(map[string]float64)
	for _, txn := range txns {
		if txn.Type != txnType {
			continue
		}
		if inBucket(txn, month, year) {
			sums[txn.Category] += txn.Amount
		}
	}

	var total float64
	rows := make([]BreakdownRow, 0, len(sums))
	for category, amount := range sums {
		total += amount
		rows = append(rows, BreakdownRow{Category: category, Amount: amount})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Amount != rows[j].Amount {
			return rows[i].Amount > rows[j].Amount
		}
		return rows[i].Category < rows[j].Category
	})

	if total > 0 {
		for i := range rows {
			rows[i].Percentage = rows[i].Amount / total * 100
		}
	}
	return rows
}

// Trend returns the last n months as chronological rows labeled "Jan 2006".
// Months step back in fixed 30-day increments from now rather than true
// calendar months, so around month ends two steps may land in the same bucket.
func Trend(txns []models.Transaction, n int, now time.Time) []MonthRow {
	rows := make([]MonthRow, 0, n)
	for i := n - 1; i >= 0; i-- {
		target := now.Add(-time.Duration(30*i) * 24 * time.Hour)
		month := int(target.Month())
		year := target.Year()

		income, expense := monthTotals(txns, month, year)
		rows = append(rows, MonthRow{
			Month:   monthNames[month-1] + " " + strconv.Itoa(year),
			Income:  income,
			Expense: expense,
			Balance: income - expense,
		})
	}
	return rows
}

// FiscalYear returns the April..March window starting in startYear:
// buckets 0-8 are Apr-Dec of startYear, 9-11 are Jan-Mar of the next year.
func FiscalYear(txns []models.Transaction, startYear int) []MonthRow {
	rows := make([]MonthRow, 0, 12)
	for i := 0; i < 12; i++ {
		month := i + 4
		year := startYear
		if i >= 9 {
			month = i - 8
			year = startYear + 1
		}

		income, expense := monthTotals(txns, month, year)
		rows = append(rows, MonthRow{
			Month:   monthNames[month-1],
			Income:  income,
			Expense: expense,
			Balance: income - expense,
		})
	}
	return rows
}

// FiscalYearPrefixes returns the twelve YYYY-MM date prefixes of the fiscal
// window starting in startYear, for string-prefix filtering of raw dates.
func FiscalYearPrefixes(startYear int) []string {
	prefixes := make([]string, 0, 12)
	for month := 4; month <= 12; month++ {
		prefixes = append(prefixes, fmt.Sprintf("%d-%02d", startYear, month))
	}
	for month := 1; month <= 3; month++ {
		prefixes = append(prefixes, fmt.Sprintf("%d-%02d", startYear+1, month))
	}
	return prefixes
}

// ComputeBurnRate averages expense over the trailing three months (30-day
// stepping, like Trend). A month only joins the average when it had at least
// one expense row; months with none shrink the denominator instead of
// dragging the average down. Lifetime balance ignores date validity entirely.
func ComputeBurnRate(txns []models.Transaction, now time.Time) BurnRate {
	var totalExpense float64
	monthsCounted := 0

	for i := 0; i < 3; i++ {
		target := now.Add(-time.Duration(30*i) * 24 * time.Hour)
		month := int(target.Month())
		year := target.Year()

		var sum float64
		matched := 0
		for _, txn := range txns {
			if txn.Type != models.TypeExpense {
				continue
			}
			if inBucket(txn, month, year) {
				sum += txn.Amount
				matched++
			}
		}
		if matched > 0 {
			totalExpense += sum
			monthsCounted++
		}
	}

	var burn float64
	if monthsCounted > 0 {
		burn = totalExpense / float64(monthsCounted)
	}

	var lifetimeIncome, lifetimeExpense float64
	for _, txn := range txns {
		switch txn.Type {
		case models.TypeIncome:
			lifetimeIncome += txn.Amount
		case models.TypeExpense:
			lifetimeExpense += txn.Amount
		}
	}
	balance := lifetimeIncome - lifetimeExpense

	var runway float64
	if burn > 0 {
		runway = balance / burn
	}

	return BurnRate{
		MonthlyBurnRate: burn,
		CurrentBalance:  balance,
		RunwayMonths:    runway,
	}
}
