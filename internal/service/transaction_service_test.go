package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/compta-server/internal/model"
	"github.com/carson-networks/compta-server/internal/operator/actions"
	"github.com/carson-networks/compta-server/internal/storage"
	"github.com/carson-networks/compta-server/internal/storage/table"
)

var fixedNow = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*TransactionService, *mockTransactionTable, *mockSettingsTable, *mockProcessor) {
	t.Helper()
	txTable := &mockTransactionTable{}
	settingsTable := &mockSettingsTable{}
	op := &mockProcessor{}
	t.Cleanup(func() {
		txTable.AssertExpectations(t)
		settingsTable.AssertExpectations(t)
		op.AssertExpectations(t)
	})

	store := storage.New(txTable, settingsTable, nil)
	svc := NewTransactionService(store, op, &revision{})
	svc.now = func() time.Time { return fixedNow }
	return svc, txTable, settingsTable, op
}

func makeStorageRows(n int, createdAt time.Time) []*table.Transaction {
	rows := make([]*table.Transaction, n)
	for i := range rows {
		rows[i] = &table.Transaction{
			ID:             fmt.Sprintf("tx-%02d", i),
			Date:           "2025-06-01",
			Name:           "Item",
			Amount:         decimal.RequireFromString("5.00"),
			Type:           "expense",
			Category:       "Food",
			CurrentAccount: "Main",
			CreatedAt:      createdAt,
		}
	}
	return rows
}

func mainSettings() *table.Settings {
	return &table.Settings{Accounts: table.Accounts{
		Current:     []string{"Main", "Joint"},
		Saving:      []string{"Livret A"},
		SavingLinks: map[string]string{},
	}}
}

// -- CreateTransaction tests --

func TestCreateTransaction_Success(t *testing.T) {
	svc, _, settingsTable, op := newTestService(t)

	settingsTable.On("Load", mock.Anything).Return(mainSettings(), nil)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateTransaction)
		return ok &&
			uuid.FromStringOrNil(create.Row.ID) != uuid.Nil &&
			create.Row.Amount.Equal(decimal.RequireFromString("42.50")) &&
			create.Row.CurrentAccount == "Main" &&
			create.Row.CreatedAt.Equal(fixedNow)
	})).Return(nil)

	record, err := svc.CreateTransaction(context.Background(), model.Draft{
		Date:     "2025-06-01",
		Name:     "Groceries",
		Amount:   decimal.RequireFromString("-42.50"),
		Type:     model.TypeExpense,
		Category: "Food",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, model.Ordinary, record.Movement.Movement)
	assert.Equal(t, uint64(1), svc.rev.current())
}

func TestCreateTransaction_ValidationError(t *testing.T) {
	svc, _, settingsTable, _ := newTestService(t)

	settingsTable.On("Load", mock.Anything).Return(mainSettings(), nil)

	_, err := svc.CreateTransaction(context.Background(), model.Draft{
		Date:     "2025-06-01",
		Amount:   decimal.RequireFromString("100"),
		Type:     model.TypeExpense,
		Category: model.CategorySaving,
	})

	assert.ErrorIs(t, err, model.ErrMissingSavingAccount)
	assert.Equal(t, uint64(0), svc.rev.current())
}

func TestCreateTransaction_OperatorError(t *testing.T) {
	svc, _, settingsTable, op := newTestService(t)

	settingsTable.On("Load", mock.Anything).Return(mainSettings(), nil)
	op.On("Process", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	_, err := svc.CreateTransaction(context.Background(), model.Draft{
		Date:   "2025-06-01",
		Amount: decimal.RequireFromString("1"),
		Type:   model.TypeIncome,
	})

	assert.EqualError(t, err, "disk full")
	assert.Equal(t, uint64(0), svc.rev.current())
}

// -- UpdateTransaction tests --

func TestUpdateTransaction_KeepsIdentity(t *testing.T) {
	svc, txTable, settingsTable, op := newTestService(t)

	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	existing := makeStorageRows(1, created)[0]
	txTable.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
	settingsTable.On("Load", mock.Anything).Return(mainSettings(), nil)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		update, ok := a.(*actions.UpdateTransaction)
		return ok && update.Row.ID == existing.ID && update.Row.CreatedAt.Equal(created) &&
			update.Row.TransferAccount == "Joint"
	})).Return(nil)

	record, err := svc.UpdateTransaction(context.Background(), existing.ID, model.Draft{
		Date:            "2025-06-02",
		Amount:          decimal.RequireFromString("300"),
		Type:            model.TypeExpense,
		Category:        model.CategoryAccountTransfer,
		CurrentAccount:  "Main",
		TransferAccount: "Joint",
	})

	require.NoError(t, err)
	assert.Equal(t, model.CurrentTransfer, record.Movement.Movement)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	svc, txTable, _, _ := newTestService(t)

	txTable.On("FindByID", mock.Anything, "missing").Return(nil, storage.ErrNotFound)

	_, err := svc.UpdateTransaction(context.Background(), "missing", model.Draft{})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

// -- DeleteTransaction tests --

func TestDeleteTransaction(t *testing.T) {
	svc, _, _, op := newTestService(t)

	op.On("Process", mock.Anything, &actions.DeleteTransaction{ID: "a"}).Return(nil).Once()
	op.On("Process", mock.Anything, &actions.DeleteTransaction{ID: "b"}).Return(storage.ErrNotFound).Once()

	assert.NoError(t, svc.DeleteTransaction(context.Background(), "a"))
	assert.ErrorIs(t, svc.DeleteTransaction(context.Background(), "b"), storage.ErrNotFound)
	assert.Equal(t, uint64(1), svc.rev.current())
}

// -- GetTransaction tests --

func TestGetTransaction_Classifies(t *testing.T) {
	svc, txTable, _, _ := newTestService(t)

	row := makeStorageRows(1, fixedNow)[0]
	row.Category = model.CategorySaving
	row.SavingAccount = "Livret A"
	txTable.On("FindByID", mock.Anything, row.ID).Return(row, nil)

	record, err := svc.GetTransaction(context.Background(), row.ID)

	require.NoError(t, err)
	assert.Equal(t, model.SavingTransfer, record.Movement.Movement)
	assert.True(t, record.DateValid)
}

// -- ListTransactions tests --

func TestListTransactions_NoResults(t *testing.T) {
	svc, txTable, _, _ := newTestService(t)

	txTable.On("List", mock.Anything, mock.Anything).Return([]*table.Transaction{}, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), nil)

	assert.NoError(t, err)
	assert.Nil(t, txs)
	assert.Nil(t, nextCursor)
}

func TestListTransactions_SinglePage(t *testing.T) {
	svc, txTable, _, _ := newTestService(t)

	rows := makeStorageRows(2, fixedNow)

	txTable.On("List", mock.Anything, mock.MatchedBy(func(f *table.TransactionFilter) bool {
		return f.Limit == defaultLimit && f.Offset == 0 && f.MaxCreationTime == nil
	})).Return(rows, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Nil(t, nextCursor)

	tx := txs[0]
	assert.Equal(t, rows[0].ID, tx.ID)
	assert.True(t, rows[0].Amount.Equal(tx.Amount))
	assert.Equal(t, rows[0].Name, tx.Name)
	assert.Equal(t, rows[0].Date, tx.Date)
	assert.Equal(t, rows[0].CreatedAt, tx.CreatedAt)
}

func TestListTransactions_HasNextPage(t *testing.T) {
	svc, txTable, _, _ := newTestService(t)

	rows := makeStorageRows(defaultLimit+1, fixedNow)

	txTable.On("List", mock.Anything, mock.Anything).Return(rows, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, txs, defaultLimit, "truncated to default limit")

	require.NotNil(t, nextCursor)
	assert.Equal(t, defaultLimit, nextCursor.Position)
	assert.Equal(t, defaultLimit, nextCursor.Limit)
	assert.Equal(t, fixedNow, nextCursor.MaxCreationTime, "derived from first row")
}

func TestListTransactions_WithCursor(t *testing.T) {
	svc, txTable, _, _ := newTestService(t)

	cursorTime := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	rows := makeStorageRows(3, time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC))

	txTable.On("List", mock.Anything, mock.MatchedBy(func(f *table.TransactionFilter) bool {
		return f.Limit == 2 &&
			f.Offset == 20 &&
			f.MaxCreationTime != nil &&
			f.MaxCreationTime.Equal(cursorTime)
	})).Return(rows, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), &TransactionCursor{
		Position:        20,
		Limit:           2,
		MaxCreationTime: cursorTime,
	})

	assert.NoError(t, err)
	assert.Len(t, txs, 2)

	require.NotNil(t, nextCursor)
	assert.Equal(t, 22, nextCursor.Position)
	assert.Equal(t, 2, nextCursor.Limit)
	assert.Equal(t, cursorTime, nextCursor.MaxCreationTime, "echoed from cursor, not overridden by row data")
}

func TestListTransactions_StorageError(t *testing.T) {
	svc, txTable, _, _ := newTestService(t)

	txTable.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("database unavailable"))

	txs, nextCursor, err := svc.ListTransactions(context.Background(), nil)

	assert.EqualError(t, err, "database unavailable")
	assert.Nil(t, txs)
	assert.Nil(t, nextCursor)
}

// -- ImportTransactions tests --

func TestImportTransactions_SkipsRecordsWithoutID(t *testing.T) {
	svc, _, _, op := newTestService(t)

	op.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		imp, ok := a.(*actions.ImportTransactions)
		return ok && len(imp.Rows) == 1
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.ImportTransactions).Imported = 1
	}).Return(nil)

	n, err := svc.ImportTransactions(context.Background(), []model.Transaction{
		{ID: "a", Date: "2025-01-01", Type: model.TypeIncome},
		{Date: "2025-01-02", Type: model.TypeIncome},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, uint64(1), svc.rev.current())
}
