package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/compta-server/internal/model"
	"github.com/carson-networks/compta-server/internal/operator/actions"
	"github.com/carson-networks/compta-server/internal/storage"
	"github.com/carson-networks/compta-server/internal/storage/table"
)

const defaultLimit = 20

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage  *storage.Storage
	operator processor
	rev      *revision
	now      func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, op processor, rev *revision) *TransactionService {
	return &TransactionService{
		storage:  store,
		operator: op,
		rev:      rev,
		now:      time.Now,
	}
}

// CreateTransaction validates draft against the account registry, assigns an
// id and creation time and stores the record.
func (s *TransactionService) CreateTransaction(ctx context.Context, draft model.Draft) (model.Transaction, error) {
	reg, err := loadRegistry(ctx, s.storage.Settings)
	if err != nil {
		return model.Transaction{}, err
	}
	record, err := draft.Normalize(reg)
	if err != nil {
		return model.Transaction{}, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return model.Transaction{}, fmt.Errorf("generate id: %w", err)
	}
	record.ID = id.String()
	record.CreatedAt = s.now().UTC()

	if err := s.operator.Process(ctx, &actions.CreateTransaction{Row: transactionToRow(record)}); err != nil {
		return model.Transaction{}, err
	}
	s.rev.bump()
	return record, nil
}

// UpdateTransaction replaces the fields of an existing record. The id and
// creation time are kept.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id string, draft model.Draft) (model.Transaction, error) {
	existing, err := s.storage.Transactions.FindByID(ctx, id)
	if err != nil {
		return model.Transaction{}, err
	}
	reg, err := loadRegistry(ctx, s.storage.Settings)
	if err != nil {
		return model.Transaction{}, err
	}
	record, err := draft.Normalize(reg)
	if err != nil {
		return model.Transaction{}, err
	}
	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt

	if err := s.operator.Process(ctx, &actions.UpdateTransaction{Row: transactionToRow(record)}); err != nil {
		return model.Transaction{}, err
	}
	s.rev.bump()
	return record, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, id string) error {
	if err := s.operator.Process(ctx, &actions.DeleteTransaction{ID: id}); err != nil {
		return err
	}
	s.rev.bump()
	return nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, id string) (model.Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, id)
	if err != nil {
		return model.Transaction{}, err
	}
	return transactionFromRow(row), nil
}

// ListTransactions returns a page of transactions using cursor-based pagination.
func (s *TransactionService) ListTransactions(ctx context.Context, cursor *TransactionCursor) ([]model.Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	filter := &table.TransactionFilter{
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	return transactionsFromRows(rows), nextCursor, nil
}

// AllTransactions loads and classifies every stored record.
func (s *TransactionService) AllTransactions(ctx context.Context) ([]model.Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	return transactionsFromRows(rows), nil
}

// ImportTransactions stores records whose id is not known yet and returns
// how many were added. Records are stored as given, without normalization.
func (s *TransactionService) ImportTransactions(ctx context.Context, records []model.Transaction) (int, error) {
	rows := make([]*table.Transaction, 0, len(records))
	for _, record := range records {
		if record.ID == "" {
			continue
		}
		rows = append(rows, transactionToRow(record))
	}

	action := &actions.ImportTransactions{Rows: rows}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, err
	}
	if action.Imported > 0 {
		s.rev.bump()
	}
	return action.Imported, nil
}
