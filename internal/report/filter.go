// Package report turns lists of classified transactions into the figures the
// dashboard displays. Every function is pure and tolerates malformed records:
// invalid dates are skipped by date-bucketed views and unknown account names
// are matched literally.
package report

import (
	"github.com/carson-networks/compta-server/internal/model"
)

// FilterByScope keeps the transactions relevant to scope. A current-account
// scope sees both legs of any transfer touching it; a saving-account scope
// only sees its own saving transfers.
func FilterByScope(txs []model.Transaction, scope model.Scope, links model.SavingLinks) []model.Transaction {
	if scope.Type == "" || scope.Type == model.ScopeAll {
		return txs
	}

	out := make([]model.Transaction, 0, len(txs))
	for _, t := range txs {
		if inScope(t, scope, links) {
			out = append(out, t)
		}
	}
	return out
}

func inScope(t model.Transaction, scope model.Scope, links model.SavingLinks) bool {
	switch scope.Type {
	case model.ScopeCurrent:
		if scope.Name == "" {
			return true
		}
		switch t.Movement.Movement {
		case model.SavingTransfer:
			saving, _ := t.Movement.SavingAccount()
			return links[saving] == scope.Name
		case model.CurrentTransfer:
			receiver, _ := t.Movement.TransferAccount()
			return t.CurrentAccount == scope.Name || receiver == scope.Name
		default:
			return t.CurrentAccount == scope.Name
		}
	case model.ScopeSaving:
		saving, ok := t.Movement.SavingAccount()
		if !ok {
			return false
		}
		return scope.Name == "" || saving == scope.Name
	}
	return true
}

// FilterByDateRange keeps transactions with a valid date inside period.
func FilterByDateRange(txs []model.Transaction, period model.Period) []model.Transaction {
	out := make([]model.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.DateValid && period.Contains(t.When) {
			out = append(out, t)
		}
	}
	return out
}
