package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Type is the direction of a movement relative to the account it is recorded on.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// ParseType validates a raw type string.
func ParseType(raw string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(raw))) {
	case TypeIncome:
		return TypeIncome, nil
	case TypeExpense:
		return TypeExpense, nil
	}
	return "", ErrInvalidType
}

// Categories with accounting meaning. Every other category is ordinary.
const (
	CategorySaving          = "Saving"
	CategoryTransfer        = "Transfer"
	CategoryAccountTransfer = "Account Transfer"
	CategoryOther           = "Other"
)

// Account kinds as reported by AccountType.
const (
	AccountKindCurrent = "current"
	AccountKindSaving  = "saving"
)

// Transaction is a recorded money movement. Movement, When and DateValid are
// derived by Ingest and are not part of the persisted record.
type Transaction struct {
	ID              string
	Date            string
	Name            string
	Amount          decimal.Decimal
	Type            Type
	Category        string
	IsPrelevement   bool
	CurrentAccount  string
	SavingAccount   string
	TransferAccount string
	CreatedAt       time.Time

	Movement  MovementKind
	When      time.Time
	DateValid bool
}

// Ingest derives the movement kind and parsed date of a raw record.
func Ingest(t Transaction) Transaction {
	t.Amount = t.Amount.Abs()
	t.Movement = Classify(t.Category, t.SavingAccount, t.TransferAccount)
	t.When, t.DateValid = ParseDate(t.Date)
	return t
}

// IngestAll ingests every record, preserving order.
func IngestAll(raw []Transaction) []Transaction {
	out := make([]Transaction, len(raw))
	for i, t := range raw {
		out[i] = Ingest(t)
	}
	return out
}

// AccountType is "saving" for Saving-category records and "current" otherwise.
func (t Transaction) AccountType() string {
	if t.Category == CategorySaving {
		return AccountKindSaving
	}
	return AccountKindCurrent
}

// AccountName is the account matching AccountType.
func (t Transaction) AccountName() string {
	if t.Category == CategorySaving {
		return t.SavingAccount
	}
	return t.CurrentAccount
}

// Year returns the calendar year of a valid date, or 0.
func (t Transaction) Year() int {
	if !t.DateValid {
		return 0
	}
	return t.When.Year()
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseDate parses the ISO-8601 forms the original records were written with.
// Calendar fields are kept as written, without converting between zones.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
