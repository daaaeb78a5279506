package report

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/compta-server/internal/model"
)

type MonthTotals struct {
	Month           time.Month
	RealIncome      decimal.Decimal
	RealOutcome     decimal.Decimal
	RealPrelevement decimal.Decimal
	RealNet         decimal.Decimal
}

// ComputeMonthlySeries buckets real income and outcome by month of year.
func ComputeMonthlySeries(txs []model.Transaction, year int) []MonthTotals {
	months := make([]MonthTotals, 12)
	for i := range months {
		months[i].Month = time.Month(i + 1)
	}

	for _, t := range txs {
		if !t.DateValid || t.When.Year() != year {
			continue
		}
		m := &months[t.When.Month()-1]
		switch {
		case model.IsRealIncome(t):
			m.RealIncome = m.RealIncome.Add(t.Amount)
		case model.IsRealOutcome(t):
			m.RealOutcome = m.RealOutcome.Add(t.Amount)
			if t.IsPrelevement {
				m.RealPrelevement = m.RealPrelevement.Add(t.Amount)
			}
		}
	}

	for i := range months {
		months[i].RealNet = months[i].RealIncome.Sub(months[i].RealOutcome)
	}
	return months
}

// DayTotals is one day of a month. Transactions lists every record dated
// that day, whatever its kind, for drill-down.
type DayTotals struct {
	Day          int
	RealIncome   decimal.Decimal
	RealOutcome  decimal.Decimal
	RealNet      decimal.Decimal
	Transactions []model.Transaction
}

// ComputeDailyNetSeries returns one entry per day of the given month, or an
// empty series when month is not in 1-12.
func ComputeDailyNetSeries(txs []model.Transaction, year int, month time.Month) []DayTotals {
	period := model.MonthPeriod(year, month)
	if !period.HasMonth() {
		return []DayTotals{}
	}
	days := make([]DayTotals, period.DaysIn())
	for i := range days {
		days[i].Day = i + 1
		days[i].Transactions = []model.Transaction{}
	}

	for _, t := range txs {
		if !t.DateValid || !period.Contains(t.When) {
			continue
		}
		d := &days[t.When.Day()-1]
		d.Transactions = append(d.Transactions, t)
		switch {
		case model.IsRealIncome(t):
			d.RealIncome = d.RealIncome.Add(t.Amount)
		case model.IsRealOutcome(t):
			d.RealOutcome = d.RealOutcome.Add(t.Amount)
		}
	}

	for i := range days {
		days[i].RealNet = days[i].RealIncome.Sub(days[i].RealOutcome)
	}
	return days
}

type DailyAmount struct {
	Day    int
	Amount decimal.Decimal
}

// ComputeDailyExpenses sums non-transfer expenses by day of month only.
// Callers must narrow the list to a single month first.
func ComputeDailyExpenses(txs []model.Transaction) []DailyAmount {
	byDay := map[int]decimal.Decimal{}
	for _, t := range txs {
		if t.Type != model.TypeExpense || t.Movement.Movement != model.Ordinary || !t.DateValid {
			continue
		}
		day := t.When.Day()
		byDay[day] = byDay[day].Add(t.Amount)
	}

	out := make([]DailyAmount, 0, len(byDay))
	for day, amount := range byDay {
		out = append(out, DailyAmount{Day: day, Amount: amount})
	}
	slices.SortFunc(out, func(a, b DailyAmount) int { return a.Day - b.Day })
	return out
}
