package service

import (
	"github.com/carson-networks/compta-server/internal/model"
	"github.com/carson-networks/compta-server/internal/report"
)

// Dashboard is every figure shown for one scope and period. Daily series are
// only filled when the period is a single month. Balances are all-time.
type Dashboard struct {
	Scope  model.Scope
	Period model.Period

	Kpis          report.Kpis
	Categories    []report.CategoryTotal
	Prelevements  []report.CategoryTotal
	Monthly       []report.MonthTotals
	Daily         []report.DayTotals
	DailyExpenses []report.DailyAmount
	Savings       []report.SavingsFlow
	Balances      report.AccountBalances
	CategoryNames []string
}
