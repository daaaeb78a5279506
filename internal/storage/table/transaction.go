// Package table defines the persistence contract shared by the storage
// backends. Rows are stored as recorded; classification happens above.
package table

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("record not found")

// Transaction is a persisted transaction row.
type Transaction struct {
	ID              string          `db:"id"`
	Date            string          `db:"date"`
	Name            string          `db:"name"`
	Amount          decimal.Decimal `db:"amount"`
	Type            string          `db:"type"`
	Category        string          `db:"category"`
	IsPrelevement   bool            `db:"is_prelevement"`
	CurrentAccount  string          `db:"current_account"`
	SavingAccount   string          `db:"saving_account"`
	TransferAccount string          `db:"transfer_account"`
	CreatedAt       time.Time       `db:"created_at"`
}

// TransactionFilter specifies filters for listing transactions. A zero
// Limit returns every matching row.
type TransactionFilter struct {
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// ITransactionTable defines the interface for transaction storage operations.
// List orders rows by creation time, newest first; rows without a creation
// time come last.
type ITransactionTable interface {
	FindByID(ctx context.Context, id string) (*Transaction, error)
	Insert(ctx context.Context, row *Transaction) error
	Update(ctx context.Context, row *Transaction) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
}
