package storage

import (
	"context"

	"github.com/carson-networks/compta-server/internal/storage/table"
)

// Tx is the unit of work behind a Writer: a database transaction or a file
// store session.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Writer struct {
	tx           Tx
	Transactions table.ITransactionTable
	Settings     table.ISettingsTable
}

func NewWriter(tx Tx, transactions table.ITransactionTable, settings table.ISettingsTable) *Writer {
	return &Writer{
		tx:           tx,
		Transactions: transactions,
		Settings:     settings,
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
