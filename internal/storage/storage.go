package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/compta-server/internal/config"
	"github.com/carson-networks/compta-server/internal/storage/filestore"
	"github.com/carson-networks/compta-server/internal/storage/sqlconfig"
	"github.com/carson-networks/compta-server/internal/storage/table"
)

// ErrNotFound is returned when a transaction id does not exist.
var ErrNotFound = table.ErrNotFound

// Storage exposes committed reads and opens writers for the operator.
type Storage struct {
	Transactions table.ITransactionTable
	Settings     table.ISettingsTable

	begin func(ctx context.Context) (*Writer, error)
	ping  func(ctx context.Context) error
	close func() error
}

// New assembles a Storage from its parts. Callers other than the backend
// constructors are tests.
func New(transactions table.ITransactionTable, settings table.ISettingsTable, begin func(ctx context.Context) (*Writer, error)) *Storage {
	return &Storage{
		Transactions: transactions,
		Settings:     settings,
		begin:        begin,
		ping:         func(context.Context) error { return nil },
		close:        func() error { return nil },
	}
}

// Open picks the backend named in the configuration.
func Open(env *config.Config, logger *logrus.Logger) (*Storage, error) {
	switch env.StorageBackend {
	case config.BackendFile:
		return NewFileStorage(env.DataDir, logger)
	case config.BackendPostgres:
		return NewPostgresStorage(env.PostgresDSN())
	}
	return nil, fmt.Errorf("unknown storage backend %q", env.StorageBackend)
}

func NewPostgresStorage(dsn string) (*Storage, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db := bob.NewDB(sqlDB)

	return &Storage{
		Transactions: sqlconfig.NewTransactionsTable(db),
		Settings:     sqlconfig.NewSettingsTable(db),
		begin: func(ctx context.Context) (*Writer, error) {
			tx, err := db.BeginTx(ctx, nil)
			if err != nil {
				return nil, err
			}
			return NewWriter(&tx, sqlconfig.NewTransactionsTable(&tx), sqlconfig.NewSettingsTable(&tx)), nil
		},
		ping:  sqlDB.PingContext,
		close: sqlDB.Close,
	}, nil
}

func NewFileStorage(dir string, logger *logrus.Logger) (*Storage, error) {
	store, err := filestore.Open(dir, logger)
	if err != nil {
		return nil, err
	}

	return &Storage{
		Transactions: store.Transactions(),
		Settings:     store.Settings(),
		begin: func(ctx context.Context) (*Writer, error) {
			session, err := store.Begin(ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(session, session.Transactions(), session.Settings()), nil
		},
		ping:  func(context.Context) error { return nil },
		close: func() error { return nil },
	}, nil
}

// Write opens a writer; the caller must Commit or Rollback it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	return s.begin(ctx)
}

// Ping reports whether the backend is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

func (s *Storage) Close() error {
	return s.close()
}
