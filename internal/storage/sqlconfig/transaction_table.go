package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/compta-server/internal/storage/table"
)

const transactionsTable = "transactions"

var transactionColumns = []string{
	"id",
	"date",
	"name",
	"amount",
	"type",
	"category",
	"is_prelevement",
	"current_account",
	"saving_account",
	"transfer_account",
	"created_at",
}

var _ table.ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the transactions table. The executor
// is either the pool or an open transaction.
type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

func selectTransactions(extra ...bob.Mod[*dialect.SelectQuery]) bob.BaseQuery[*dialect.SelectQuery] {
	columns := make([]any, len(transactionColumns))
	for i, c := range transactionColumns {
		columns[i] = psql.Quote(c)
	}
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(transactionsTable),
	}
	return psql.Select(append(queryMods, extra...)...)
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id string) (*table.Transaction, error) {
	query := selectTransactions(sm.Where(psql.Quote("id").EQ(psql.Arg(id))))
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[table.Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", id, table.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *TransactionsTable) Insert(ctx context.Context, row *table.Transaction) error {
	query := psql.Insert(
		im.Into(transactionsTable, transactionColumns...),
		im.Values(psql.Arg(
			row.ID,
			row.Date,
			row.Name,
			row.Amount,
			row.Type,
			row.Category,
			row.IsPrelevement,
			row.CurrentAccount,
			row.SavingAccount,
			row.TransferAccount,
			row.CreatedAt,
		)),
	)
	_, err := bob.Exec(ctx, t.exec, query)
	return err
}

// Update replaces every field but the creation time.
func (t *TransactionsTable) Update(ctx context.Context, row *table.Transaction) error {
	query := psql.Update(
		um.Table(transactionsTable),
		um.SetCol("date").ToArg(row.Date),
		um.SetCol("name").ToArg(row.Name),
		um.SetCol("amount").ToArg(row.Amount),
		um.SetCol("type").ToArg(row.Type),
		um.SetCol("category").ToArg(row.Category),
		um.SetCol("is_prelevement").ToArg(row.IsPrelevement),
		um.SetCol("current_account").ToArg(row.CurrentAccount),
		um.SetCol("saving_account").ToArg(row.SavingAccount),
		um.SetCol("transfer_account").ToArg(row.TransferAccount),
		um.Where(psql.Quote("id").EQ(psql.Arg(row.ID))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return err
	}
	return requireAffected(result, row.ID)
}

func (t *TransactionsTable) Delete(ctx context.Context, id string) error {
	query := psql.Delete(
		dm.From(transactionsTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return err
	}
	return requireAffected(result, id)
}

// List returns transactions matching the filter. Nil filter returns all.
func (t *TransactionsTable) List(ctx context.Context, filter *table.TransactionFilter) ([]*table.Transaction, error) {
	var queryMods []bob.Mod[*dialect.SelectQuery]
	if filter != nil {
		if filter.MaxCreationTime != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)

	rows, err := bob.All(ctx, t.exec, selectTransactions(queryMods...), scan.StructMapper[table.Transaction]())
	if err != nil {
		return nil, err
	}
	result := make([]*table.Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func requireAffected(result sql.Result, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("transaction %s: %w", id, table.ErrNotFound)
	}
	return nil
}
