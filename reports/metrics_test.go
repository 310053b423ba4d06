package reports

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joaovmb/team-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.March, 20, 10, 0, 0, 0, time.UTC)

func player(name string, status models.PaymentStatus, fee float64) models.Player {
	return models.Player{ID: uuid.New(), Name: name, PaymentStatus: status, MonthlyFee: fee}
}

func transaction(typ models.TransactionType, amount float64, date time.Time) models.Transaction {
	return models.Transaction{ID: uuid.New(), Type: typ, Amount: amount, Date: date}
}

func TestSummarize(t *testing.T) {
	t.Run("empty account yields all zeros", func(t *testing.T) {
		stats := Summarize(nil, nil, testNow)
		assert.Zero(t, stats.TotalPlayers)
		assert.Zero(t, stats.ComplianceRate)
		assert.Zero(t, stats.PendingAmount)
	})

	t.Run("counts, pending amount and compliance", func(t *testing.T) {
		players := []models.Player{
			player("Ana", models.PaymentPaid, 200),
			player("Bruno", models.PaymentPending, 150),
			player("Carlos", models.PaymentLate, 150),
		}
		transactions := []models.Transaction{
			transaction(models.TransactionIncome, 200, testNow),
			transaction(models.TransactionExpense, 80, testNow),
			// previous month, must not count
			transaction(models.TransactionIncome, 999, testNow.AddDate(0, -1, 0)),
		}

		stats := Summarize(players, transactions, testNow)
		assert.Equal(t, 3, stats.TotalPlayers)
		assert.Equal(t, 1, stats.PaidPlayers)
		assert.Equal(t, 1, stats.PendingPlayers)
		assert.Equal(t, 1, stats.LatePlayers)
		assert.Equal(t, 300.0, stats.PendingAmount, "pending plus late fees")
		assert.Equal(t, 33, stats.ComplianceRate, "1 of 3 paid, rounded")
		assert.Equal(t, 200.0, stats.MonthlyRevenue)
		assert.Equal(t, 1, stats.MonthlyRevenueCount)
		assert.Equal(t, 80.0, stats.MonthlyExpenses)
		assert.Equal(t, 1, stats.MonthlyExpenseCount)
	})

	t.Run("compliance rounds half up", func(t *testing.T) {
		players := []models.Player{
			player("A", models.PaymentPaid, 0),
			player("B", models.PaymentPending, 0),
		}
		stats := Summarize(players, nil, testNow)
		assert.Equal(t, 50, stats.ComplianceRate)
	})

	t.Run("same month of a different year is excluded", func(t *testing.T) {
		lastYear := testNow.AddDate(-1, 0, 0)
		stats := Summarize(nil, []models.Transaction{
			transaction(models.TransactionIncome, 100, lastYear),
		}, testNow)
		assert.Zero(t, stats.MonthlyRevenue)
	})
}

func TestRecentActivity(t *testing.T) {
	alice := player("Alice", models.PaymentPaid, 200)
	players := []models.Player{alice}

	makeTx := func(playerID *uuid.UUID, desc string, typ models.TransactionType) models.Transaction {
		tx := transaction(typ, 50, testNow)
		tx.PlayerID = playerID
		tx.Description = desc
		return tx
	}

	t.Run("resolves player names and caps at n", func(t *testing.T) {
		var transactions []models.Transaction
		for i := 0; i < 8; i++ {
			transactions = append(transactions, makeTx(&alice.ID, "Mensalidade", models.TransactionIncome))
		}

		activity := RecentActivity(players, transactions, 5)
		require.Len(t, activity, 5)
		assert.Equal(t, "Alice", activity[0].Name)
		assert.Equal(t, "paid", activity[0].Status)
	})

	t.Run("dangling player reference falls back to the description", func(t *testing.T) {
		gone := uuid.New()
		activity := RecentActivity(players, []models.Transaction{
			makeTx(&gone, "Mensalidade Antiga", models.TransactionIncome),
			makeTx(nil, "Aluguel do campo", models.TransactionExpense),
		}, 5)
		require.Len(t, activity, 2)
		assert.Equal(t, "Mensalidade Antiga", activity[0].Name)
		assert.Equal(t, "Aluguel do campo", activity[1].Name)
		assert.Equal(t, "expense", activity[1].Status)
	})
}

func TestSummarizeMonth(t *testing.T) {
	transactions := []models.Transaction{
		transaction(models.TransactionIncome, 200, testNow),
		transaction(models.TransactionIncome, 150, testNow),
		transaction(models.TransactionExpense, 90, testNow),
		transaction(models.TransactionExpense, 40, testNow.AddDate(0, 1, 0)),
	}

	sum := SummarizeMonth(transactions, testNow)
	assert.Len(t, sum.Income, 2)
	assert.Equal(t, 350.0, sum.IncomeTotal)
	assert.Len(t, sum.Expenses, 1)
	assert.Equal(t, 90.0, sum.ExpenseTotal)

	empty := SummarizeMonth(nil, testNow)
	assert.NotNil(t, empty.Income, "slices marshal as [] not null")
	assert.NotNil(t, empty.Expenses)
}

func TestFilter(t *testing.T) {
	march := transaction(models.TransactionIncome, 100, testNow)
	april := transaction(models.TransactionExpense, 50, testNow.AddDate(0, 1, 0))
	marchLastYear := transaction(models.TransactionIncome, 70, testNow.AddDate(-1, 0, 0))
	all := []models.Transaction{march, april, marchLastYear}

	t.Run("zero values leave the list untouched", func(t *testing.T) {
		assert.Len(t, Filter(all, "", 0), 3)
	})

	t.Run("filters by type", func(t *testing.T) {
		got := Filter(all, models.TransactionExpense, 0)
		require.Len(t, got, 1)
		assert.Equal(t, april.ID, got[0].ID)
	})

	t.Run("month filter is year agnostic", func(t *testing.T) {
		got := Filter(all, "", time.March)
		assert.Len(t, got, 2)
	})

	t.Run("type and month combine", func(t *testing.T) {
		got := Filter(all, models.TransactionIncome, time.April)
		assert.Empty(t, got)
	})
}
