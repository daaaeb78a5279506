package filestore

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/carson-networks/compta-server/internal/storage/table"
)

var errReadOnly = errors.New("filestore: writes require a session")

// transactionView implements table.ITransactionTable over a row map. A nil
// write func makes the view read-only.
type transactionView struct {
	read  func(fn func(rows map[string]*table.Transaction))
	write func(fn func(rows map[string]*table.Transaction) error) error
}

var _ table.ITransactionTable = (*transactionView)(nil)

func (v *transactionView) FindByID(_ context.Context, id string) (*table.Transaction, error) {
	var found *table.Transaction
	v.read(func(rows map[string]*table.Transaction) {
		if row, ok := rows[id]; ok {
			clone := *row
			found = &clone
		}
	})
	if found == nil {
		return nil, fmt.Errorf("transaction %s: %w", id, table.ErrNotFound)
	}
	return found, nil
}

func (v *transactionView) Insert(_ context.Context, row *table.Transaction) error {
	if v.write == nil {
		return errReadOnly
	}
	return v.write(func(rows map[string]*table.Transaction) error {
		if _, ok := rows[row.ID]; ok {
			return fmt.Errorf("transaction %s already exists", row.ID)
		}
		clone := *row
		rows[row.ID] = &clone
		return nil
	})
}

func (v *transactionView) Update(_ context.Context, row *table.Transaction) error {
	if v.write == nil {
		return errReadOnly
	}
	return v.write(func(rows map[string]*table.Transaction) error {
		existing, ok := rows[row.ID]
		if !ok {
			return fmt.Errorf("transaction %s: %w", row.ID, table.ErrNotFound)
		}
		clone := *row
		clone.CreatedAt = existing.CreatedAt
		rows[row.ID] = &clone
		return nil
	})
}

func (v *transactionView) Delete(_ context.Context, id string) error {
	if v.write == nil {
		return errReadOnly
	}
	return v.write(func(rows map[string]*table.Transaction) error {
		if _, ok := rows[id]; !ok {
			return fmt.Errorf("transaction %s: %w", id, table.ErrNotFound)
		}
		delete(rows, id)
		return nil
	})
}

func (v *transactionView) List(_ context.Context, filter *table.TransactionFilter) ([]*table.Transaction, error) {
	var out []*table.Transaction
	v.read(func(rows map[string]*table.Transaction) {
		out = make([]*table.Transaction, 0, len(rows))
		for _, row := range rows {
			clone := *row
			out = append(out, &clone)
		}
	})
	// Map order is random; fix the order of rows without a creation time first.
	slices.SortFunc(out, func(a, b *table.Transaction) int {
		if c := cmp.Compare(b.Date, a.Date); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	table.SortNewestFirst(out)
	return table.Page(out, filter), nil
}

type settingsView struct {
	load func() *table.Settings
	save func(settings *table.Settings) error
}

var _ table.ISettingsTable = (*settingsView)(nil)

func (v *settingsView) Load(_ context.Context) (*table.Settings, error) {
	return v.load(), nil
}

func (v *settingsView) Save(_ context.Context, settings *table.Settings) error {
	if v.save == nil {
		return errReadOnly
	}
	return v.save(settings)
}
