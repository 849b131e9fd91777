package services

import (
	"time"

	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

// Summary holds figures derived from the view's collections.
// Only amounts in Currency are summed.
type Summary struct {
	Currency         string          `json:"currency"`
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	NetWorth         decimal.Decimal `json:"net_worth"`

	// Period is the calendar month (YYYY-MM) of the latest completed transaction
	Period          string          `json:"period,omitempty"`
	MonthlyIncome   decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses decimal.Decimal `json:"monthly_expenses"`
	MonthlyNet      decimal.Decimal `json:"monthly_net"`
	RecurringCount  int             `json:"recurring_count"`
	RecurringTotal  decimal.Decimal `json:"recurring_total"`

	ActiveGoals   int             `json:"active_goals"`
	GoalsTarget   decimal.Decimal `json:"goals_target"`
	GoalsSaved    decimal.Decimal `json:"goals_saved"`
	GoalsProgress decimal.Decimal `json:"goals_progress"`

	AccountCount     int `json:"account_count"`
	TransactionCount int `json:"transaction_count"`
	GoalCount        int `json:"goal_count"`
}

// ComputeSummary derives the dashboard summary for currency
func ComputeSummary(currency string, accounts []models.Account, transactions []models.Transaction, goals []models.Goal) Summary {
	summary := Summary{
		Currency:         currency,
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		MonthlyIncome:    decimal.Zero,
		MonthlyExpenses:  decimal.Zero,
		RecurringTotal:   decimal.Zero,
		GoalsTarget:      decimal.Zero,
		GoalsSaved:       decimal.Zero,
		GoalsProgress:    decimal.Zero,
		AccountCount:     len(accounts),
		TransactionCount: len(transactions),
		GoalCount:        len(goals),
	}

	for i := range accounts {
		account := &accounts[i]
		if !account.IsActive || account.Currency != currency {
			continue
		}
		if account.IsLiability() && account.Balance.IsNegative() {
			summary.TotalLiabilities = summary.TotalLiabilities.Add(account.Balance.Neg())
			continue
		}
		summary.TotalAssets = summary.TotalAssets.Add(account.Balance)
	}
	summary.NetWorth = summary.TotalAssets.Sub(summary.TotalLiabilities)

	if start, ok := latestCompletedMonth(currency, transactions); ok {
		end := start.AddDate(0, 1, 0)
		summary.Period = start.Format("2006-01")

		for i := range transactions {
			txn := &transactions[i]
			if txn.Currency != currency || txn.Date.Before(start) || !txn.Date.Before(end) {
				continue
			}
			if txn.Recurring && txn.Type == models.TransactionTypeDebit && txn.Status != models.TransactionStatusCancelled {
				summary.RecurringCount++
				summary.RecurringTotal = summary.RecurringTotal.Add(txn.Amount)
			}
			if !txn.IsCompleted() {
				continue
			}
			if txn.Type == models.TransactionTypeCredit {
				summary.MonthlyIncome = summary.MonthlyIncome.Add(txn.Amount)
			} else {
				summary.MonthlyExpenses = summary.MonthlyExpenses.Add(txn.Amount)
			}
		}
	}
	summary.MonthlyNet = summary.MonthlyIncome.Sub(summary.MonthlyExpenses)

	for i := range goals {
		goal := &goals[i]
		if goal.Status != models.GoalStatusActive {
			continue
		}
		summary.ActiveGoals++
		summary.GoalsTarget = summary.GoalsTarget.Add(goal.TargetAmount)
		summary.GoalsSaved = summary.GoalsSaved.Add(goal.CurrentAmount)
	}
	if summary.GoalsTarget.IsPositive() {
		progress := summary.GoalsSaved.Div(summary.GoalsTarget)
		if progress.GreaterThan(decimal.NewFromInt(1)) {
			progress = decimal.NewFromInt(1)
		}
		summary.GoalsProgress = progress.Round(4)
	}

	return summary
}

func latestCompletedMonth(currency string, transactions []models.Transaction) (time.Time, bool) {
	var latest time.Time
	for i := range transactions {
		txn := &transactions[i]
		if txn.IsCompleted() && txn.Currency == currency && txn.Date.After(latest) {
			latest = txn.Date
		}
	}
	if latest.IsZero() {
		return time.Time{}, false
	}
	return time.Date(latest.Year(), latest.Month(), 1, 0, 0, 0, 0, latest.Location()), true
}
