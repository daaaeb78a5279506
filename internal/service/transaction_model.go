package service

import (
	"time"

	"github.com/carson-networks/compta-server/internal/model"
	"github.com/carson-networks/compta-server/internal/storage/table"
)

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

func transactionFromRow(row *table.Transaction) model.Transaction {
	return model.Ingest(model.Transaction{
		ID:              row.ID,
		Date:            row.Date,
		Name:            row.Name,
		Amount:          row.Amount,
		Type:            model.Type(row.Type),
		Category:        row.Category,
		IsPrelevement:   row.IsPrelevement,
		CurrentAccount:  row.CurrentAccount,
		SavingAccount:   row.SavingAccount,
		TransferAccount: row.TransferAccount,
		CreatedAt:       row.CreatedAt,
	})
}

func transactionToRow(t model.Transaction) *table.Transaction {
	return &table.Transaction{
		ID:              t.ID,
		Date:            t.Date,
		Name:            t.Name,
		Amount:          t.Amount,
		Type:            string(t.Type),
		Category:        t.Category,
		IsPrelevement:   t.IsPrelevement,
		CurrentAccount:  t.CurrentAccount,
		SavingAccount:   t.SavingAccount,
		TransferAccount: t.TransferAccount,
		CreatedAt:       t.CreatedAt,
	}
}

func transactionsFromRows(rows []*table.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(rows))
	for i, row := range rows {
		out[i] = transactionFromRow(row)
	}
	return out
}
