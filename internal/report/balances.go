package report

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/compta-server/internal/model"
)

type AccountBalance struct {
	Name    string
	Balance decimal.Decimal
}

type AccountBalances struct {
	Current []AccountBalance
	Saving  []AccountBalance
}

// ComputeAccountBalances replays every transaction, dated or not, against
// the known accounts. Names missing from the registry are skipped on that
// side of the movement; no bucket is created for them.
func ComputeAccountBalances(txs []model.Transaction, current, saving []string) AccountBalances {
	cur := newLedger(current)
	sav := newLedger(saving)

	fallback := ""
	if len(current) > 0 {
		fallback = current[0]
	}
	orDefault := func(name string) string {
		if name == "" {
			return fallback
		}
		return name
	}

	for _, t := range txs {
		switch t.Movement.Movement {
		case model.SavingTransfer:
			savingName, _ := t.Movement.SavingAccount()
			if t.Type == model.TypeExpense {
				cur.add(t.CurrentAccount, t.Amount.Neg())
				sav.add(savingName, t.Amount)
			} else {
				sav.add(savingName, t.Amount.Neg())
				cur.add(t.CurrentAccount, t.Amount)
			}
		case model.CurrentTransfer:
			receiver, _ := t.Movement.TransferAccount()
			cur.add(orDefault(t.CurrentAccount), t.Amount.Neg())
			cur.add(orDefault(receiver), t.Amount)
		default:
			if t.Type == model.TypeIncome {
				cur.add(orDefault(t.CurrentAccount), t.Amount)
			} else {
				cur.add(orDefault(t.CurrentAccount), t.Amount.Neg())
			}
		}
	}

	return AccountBalances{Current: cur.balances(), Saving: sav.balances()}
}

type ledger struct {
	order []string
	sums  map[string]decimal.Decimal
}

func newLedger(names []string) *ledger {
	l := &ledger{sums: make(map[string]decimal.Decimal, len(names))}
	for _, name := range names {
		if _, ok := l.sums[name]; ok {
			continue
		}
		l.order = append(l.order, name)
		l.sums[name] = decimal.Zero
	}
	return l
}

func (l *ledger) add(name string, amount decimal.Decimal) {
	sum, ok := l.sums[name]
	if !ok || name == "" {
		return
	}
	l.sums[name] = sum.Add(amount)
}

func (l *ledger) balances() []AccountBalance {
	out := make([]AccountBalance, len(l.order))
	for i, name := range l.order {
		out[i] = AccountBalance{Name: name, Balance: l.sums[name]}
	}
	return out
}
