// Package reports computes the dashboard aggregates and the CSV export.
// Everything here is a pure single pass over the in-memory lists for one
// account; results are recomputed on every call.
package reports

import (
	"time"

	"github.com/google/uuid"
	"github.com/joaovmb/team-manager/models"
)

type Stats struct {
	TotalPlayers        int     `json:"total_players"`
	PaidPlayers         int     `json:"paid_players"`
	PendingPlayers      int     `json:"pending_players"`
	LatePlayers         int     `json:"late_players"`
	MonthlyRevenue      float64 `json:"monthly_revenue"`
	MonthlyRevenueCount int     `json:"monthly_revenue_count"`
	MonthlyExpenses     float64 `json:"monthly_expenses"`
	MonthlyExpenseCount int     `json:"monthly_expense_count"`
	PendingAmount       float64 `json:"pending_amount"`
	ComplianceRate      int     `json:"compliance_rate"`
}

// Summarize derives the headline dashboard numbers. The monthly window is
// component-wise equality on month and year against now, not a rolling 30
// days. PendingAmount sums the monthly fee of pending and late players, a
// structural approximation rather than outstanding invoices.
func Summarize(players []models.Player, transactions []models.Transaction, now time.Time) Stats {
	var s Stats
	s.TotalPlayers = len(players)
	for _, p := range players {
		switch p.PaymentStatus {
		case models.PaymentPaid:
			s.PaidPlayers++
		case models.PaymentPending:
			s.PendingPlayers++
			s.PendingAmount += p.MonthlyFee
		case models.PaymentLate:
			s.LatePlayers++
			s.PendingAmount += p.MonthlyFee
		}
	}

	for _, t := range transactions {
		if !sameMonth(t.Date, now) {
			continue
		}
		switch t.Type {
		case models.TransactionIncome:
			s.MonthlyRevenue += t.Amount
			s.MonthlyRevenueCount++
		case models.TransactionExpense:
			s.MonthlyExpenses += t.Amount
			s.MonthlyExpenseCount++
		}
	}

	if s.TotalPlayers > 0 {
		s.ComplianceRate = int(float64(s.PaidPlayers)/float64(s.TotalPlayers)*100 + 0.5)
	}
	return s
}

// Activity is one row of the recent-activity feed.
type Activity struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

// RecentActivity takes the first n transactions in list order (the lists
// arrive date-descending from the repository) and resolves each to its
// player's name. A dangling player_id is not an error: the row falls back
// to the transaction's description.
func RecentActivity(players []models.Player, transactions []models.Transaction, n int) []Activity {
	byID := make(map[uuid.UUID]string, len(players))
	for _, p := range players {
		byID[p.ID] = p.Name
	}

	if n > len(transactions) {
		n = len(transactions)
	}
	out := make([]Activity, 0, n)
	for _, t := range transactions[:n] {
		name := t.Description
		if t.PlayerID != nil {
			if resolved, ok := byID[*t.PlayerID]; ok {
				name = resolved
			}
		}
		status := "paid"
		if t.Type == models.TransactionExpense {
			status = "expense"
		}
		out = append(out, Activity{
			ID:          t.ID,
			Name:        name,
			Status:      status,
			Amount:      t.Amount,
			Date:        t.Date,
			Description: t.Description,
		})
	}
	return out
}

// MonthSummary backs the revenue/expense cards: the current month's
// transactions partitioned by type, with totals.
type MonthSummary struct {
	Income       []models.Transaction `json:"income"`
	IncomeTotal  float64              `json:"income_total"`
	Expenses     []models.Transaction `json:"expenses"`
	ExpenseTotal float64              `json:"expense_total"`
}

func SummarizeMonth(transactions []models.Transaction, now time.Time) MonthSummary {
	sum := MonthSummary{
		Income:   []models.Transaction{},
		Expenses: []models.Transaction{},
	}
	for _, t := range transactions {
		if !sameMonth(t.Date, now) {
			continue
		}
		switch t.Type {
		case models.TransactionIncome:
			sum.Income = append(sum.Income, t)
			sum.IncomeTotal += t.Amount
		case models.TransactionExpense:
			sum.Expenses = append(sum.Expenses, t)
			sum.ExpenseTotal += t.Amount
		}
	}
	return sum
}

// Filter narrows a transaction list by type and calendar month (1-12,
// year-agnostic, matching the finance screen's month dropdown). Zero
// values leave the corresponding axis unfiltered.
func Filter(transactions []models.Transaction, typ models.TransactionType, month time.Month) []models.Transaction {
	out := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if typ != "" && t.Type != typ {
			continue
		}
		if month != 0 && t.Date.Month() != month {
			continue
		}
		out = append(out, t)
	}
	return out
}

func sameMonth(a, b time.Time) bool {
	return a.Month() == b.Month() && a.Year() == b.Year()
}
