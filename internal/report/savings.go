package report

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/compta-server/internal/model"
)

const unknownName = "Unknown"

type SavingsFlow struct {
	Name        string
	Deposits    decimal.Decimal
	Withdrawals decimal.Decimal
	NetChange   decimal.Decimal
}

// ComputeSavingsBySavingAccount sums deposits and withdrawals per saving
// account, in order of first appearance.
func ComputeSavingsBySavingAccount(txs []model.Transaction, scope model.Scope, links model.SavingLinks) []SavingsFlow {
	index := map[string]int{}
	var out []SavingsFlow

	for _, t := range txs {
		saving, ok := t.Movement.SavingAccount()
		if !ok || !savingsMatch(t, saving, scope, links) {
			continue
		}
		if saving == "" {
			saving = unknownName
		}
		i, seen := index[saving]
		if !seen {
			i = len(out)
			index[saving] = i
			out = append(out, SavingsFlow{Name: saving})
		}
		switch t.Type {
		case model.TypeExpense:
			out[i].Deposits = out[i].Deposits.Add(t.Amount)
		case model.TypeIncome:
			out[i].Withdrawals = out[i].Withdrawals.Add(t.Amount)
		}
	}

	for i := range out {
		out[i].NetChange = out[i].Deposits.Sub(out[i].Withdrawals)
	}
	return out
}

func savingsMatch(t model.Transaction, saving string, scope model.Scope, links model.SavingLinks) bool {
	switch scope.Type {
	case model.ScopeSaving:
		return scope.Name == "" || saving == scope.Name
	case model.ScopeCurrent:
		if scope.Name == "" {
			return true
		}
		if linked := links[saving]; linked != "" {
			return linked == scope.Name
		}
		return t.CurrentAccount == scope.Name
	}
	return true
}
