package actions

import (
	"context"

	"github.com/carson-networks/compta-server/internal/storage"
	"github.com/carson-networks/compta-server/internal/storage/table"
)

type CreateTransaction struct {
	Row *table.Transaction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.Insert(ctx, t.Row)
}

// UpdateTransaction replaces a stored transaction by id.
type UpdateTransaction struct {
	Row *table.Transaction
}

func (t *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.Update(ctx, t.Row)
}

type DeleteTransaction struct {
	ID string
}

func (t *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.Delete(ctx, t.ID)
}

// ImportTransactions inserts rows whose id is not stored yet and reports how
// many were added.
type ImportTransactions struct {
	Rows []*table.Transaction

	Imported int
}

func (t *ImportTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transactions.List(ctx, nil)
	if err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(existing))
	for _, row := range existing {
		seen[row.ID] = struct{}{}
	}

	t.Imported = 0
	for _, row := range t.Rows {
		if _, ok := seen[row.ID]; ok {
			continue
		}
		if err := writer.Transactions.Insert(ctx, row); err != nil {
			return err
		}
		seen[row.ID] = struct{}{}
		t.Imported++
	}
	return nil
}
