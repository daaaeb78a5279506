package report

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/compta-server/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Kpis are the headline figures of a dashboard.
//
// CurrentBalance and TotalBalance are residuals of the recorded flows. There
// is no opening balance, so they only match a bank statement when every
// movement since the account was opened has been recorded.
type Kpis struct {
	RealIncome       decimal.Decimal
	RealIncomeCount  int
	RealOutcome      decimal.Decimal
	RealOutcomeCount int
	RealNet          decimal.Decimal

	PrelevTotal decimal.Decimal
	PrelevCount int

	SavingsDeposits         decimal.Decimal
	SavingsDepositsCount    int
	SavingsWithdrawals      decimal.Decimal
	SavingsWithdrawalsCount int
	SavingsNetChange        decimal.Decimal
	SavingsRate             decimal.Decimal

	CurrentTransfersIn       decimal.Decimal
	CurrentTransfersInCount  int
	CurrentTransfersOut      decimal.Decimal
	CurrentTransfersOutCount int

	CurrentBalance decimal.Decimal
	SavingsBalance decimal.Decimal
	TotalBalance   decimal.Decimal
}

// ComputeKpis reduces an already filtered list in one pass.
//
// Current transfers depend on scope: for a named current account the sending
// leg is an outcome and the receiving leg an income. For the aggregate of all
// current accounts (ScopeAll or a nameless current scope) every transfer shows
// up on both sides, so total flow stays visible while netting to zero.
func ComputeKpis(txs []model.Transaction, scope model.Scope) Kpis {
	k := Kpis{}
	aggregate := scope.Type == "" || scope.Type == model.ScopeAll ||
		(scope.Type == model.ScopeCurrent && scope.Name == "")

	for _, t := range txs {
		amount := t.Amount.Abs()

		switch t.Movement.Movement {
		case model.SavingTransfer:
			switch t.Type {
			case model.TypeExpense:
				k.SavingsDeposits = k.SavingsDeposits.Add(amount)
				k.SavingsDepositsCount++
			case model.TypeIncome:
				k.SavingsWithdrawals = k.SavingsWithdrawals.Add(amount)
				k.SavingsWithdrawalsCount++
			}

		case model.CurrentTransfer:
			receiver, _ := t.Movement.TransferAccount()
			switch {
			case aggregate:
				k.addTransferOut(amount)
				k.addTransferIn(amount)
			case scope.Type == model.ScopeCurrent && t.CurrentAccount == scope.Name:
				k.addTransferOut(amount)
			case scope.Type == model.ScopeCurrent && receiver == scope.Name:
				k.addTransferIn(amount)
			}

		default:
			switch t.Type {
			case model.TypeIncome:
				k.RealIncome = k.RealIncome.Add(amount)
				k.RealIncomeCount++
			case model.TypeExpense:
				k.RealOutcome = k.RealOutcome.Add(amount)
				if t.IsPrelevement {
					k.PrelevTotal = k.PrelevTotal.Add(amount)
					k.PrelevCount++
				} else {
					k.RealOutcomeCount++
				}
			}
		}
	}

	k.RealNet = k.RealIncome.Sub(k.RealOutcome)
	k.SavingsNetChange = k.SavingsDeposits.Sub(k.SavingsWithdrawals)
	if k.RealIncome.IsPositive() {
		k.SavingsRate = k.SavingsDeposits.Div(k.RealIncome).Mul(hundred).Round(2)
	}

	k.SavingsBalance = k.SavingsDeposits.Sub(k.SavingsWithdrawals)
	k.CurrentBalance = k.RealIncome.Sub(k.RealOutcome).Sub(k.SavingsBalance)
	k.TotalBalance = k.CurrentBalance.Add(k.SavingsBalance)
	return k
}

func (k *Kpis) addTransferOut(amount decimal.Decimal) {
	k.CurrentTransfersOut = k.CurrentTransfersOut.Add(amount)
	k.CurrentTransfersOutCount++
	k.RealOutcome = k.RealOutcome.Add(amount)
	k.RealOutcomeCount++
}

func (k *Kpis) addTransferIn(amount decimal.Decimal) {
	k.CurrentTransfersIn = k.CurrentTransfersIn.Add(amount)
	k.CurrentTransfersInCount++
	k.RealIncome = k.RealIncome.Add(amount)
	k.RealIncomeCount++
}
