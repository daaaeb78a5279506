package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/compta-server/internal/operator/actions"
	"github.com/carson-networks/compta-server/internal/storage/table"
)

type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) FindByID(ctx context.Context, id string) (*table.Transaction, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*table.Transaction)
	return row, args.Error(1)
}

func (m *mockTransactionTable) Insert(ctx context.Context, row *table.Transaction) error {
	return m.Called(ctx, row).Error(0)
}

func (m *mockTransactionTable) Update(ctx context.Context, row *table.Transaction) error {
	return m.Called(ctx, row).Error(0)
}

func (m *mockTransactionTable) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockTransactionTable) List(ctx context.Context, filter *table.TransactionFilter) ([]*table.Transaction, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*table.Transaction)
	return rows, args.Error(1)
}

type mockSettingsTable struct {
	mock.Mock
}

func (m *mockSettingsTable) Load(ctx context.Context) (*table.Settings, error) {
	args := m.Called(ctx)
	settings, _ := args.Get(0).(*table.Settings)
	return settings, args.Error(1)
}

func (m *mockSettingsTable) Save(ctx context.Context, settings *table.Settings) error {
	return m.Called(ctx, settings).Error(0)
}

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	return m.Called(ctx, action).Error(0)
}
