package model

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidDate = errors.New("date must be an ISO-8601 date")

// Draft is a user-entered transaction before it is given an id.
type Draft struct {
	Date            string
	Name            string
	Amount          decimal.Decimal
	Type            Type
	Category        string
	IsPrelevement   bool
	CurrentAccount  string
	SavingAccount   string
	TransferAccount string
}

// Normalize validates a draft against the registry and returns the record to
// store. Amounts are stored as magnitudes, a prelevement is always an expense,
// transfers are never prelevements, and sub-fields that do not belong to the
// category are cleared.
func (d Draft) Normalize(reg Registry) (Transaction, error) {
	if _, ok := ParseDate(d.Date); !ok {
		return Transaction{}, ErrInvalidDate
	}
	if d.Type != TypeIncome && d.Type != TypeExpense {
		return Transaction{}, ErrInvalidType
	}

	t := Transaction{
		Date:           strings.TrimSpace(d.Date),
		Name:           strings.TrimSpace(d.Name),
		Amount:         d.Amount.Abs(),
		Type:           d.Type,
		Category:       strings.TrimSpace(d.Category),
		IsPrelevement:  d.IsPrelevement,
		CurrentAccount: strings.TrimSpace(d.CurrentAccount),
	}
	if t.CurrentAccount == "" {
		t.CurrentAccount = reg.DefaultCurrent()
	}

	switch t.Category {
	case CategorySaving:
		t.SavingAccount = strings.TrimSpace(d.SavingAccount)
		if t.SavingAccount == "" {
			return Transaction{}, ErrMissingSavingAccount
		}
	case CategoryTransfer, CategoryAccountTransfer:
		t.TransferAccount = strings.TrimSpace(d.TransferAccount)
		if t.TransferAccount == "" {
			return Transaction{}, ErrMissingTransferAccount
		}
		if t.TransferAccount == t.CurrentAccount {
			return Transaction{}, ErrSameTransferAccount
		}
		t.IsPrelevement = false
	}

	if t.IsPrelevement {
		t.Type = TypeExpense
	}
	return Ingest(t), nil
}
