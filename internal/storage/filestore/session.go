package filestore

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/compta-server/internal/storage/table"
)

var errSessionClosed = errors.New("filestore: session already closed")

// Session stages writes against a private copy of the store.
type Session struct {
	store *Store

	mu            sync.Mutex
	closed        bool
	rows          map[string]*table.Transaction
	settings      *table.Settings
	settingsDirty bool
}

func (s *Session) Transactions() table.ITransactionTable {
	return &transactionView{
		read: func(fn func(rows map[string]*table.Transaction)) {
			s.mu.Lock()
			defer s.mu.Unlock()
			fn(s.rows)
		},
		write: func(fn func(rows map[string]*table.Transaction) error) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.closed {
				return errSessionClosed
			}
			return fn(s.rows)
		},
	}
}

func (s *Session) Settings() table.ISettingsTable {
	return &settingsView{
		load: func() *table.Settings {
			s.mu.Lock()
			defer s.mu.Unlock()
			return s.settings.WithDefaults()
		},
		save: func(settings *table.Settings) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.closed {
				return errSessionClosed
			}
			s.settings = settings.WithDefaults()
			s.settingsDirty = true
			return nil
		},
	}
}

// Commit flushes every year file and, when changed, settings.json.
func (s *Session) Commit(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errSessionClosed
	}
	s.closed = true
	s.mu.Unlock()
	defer s.store.writeMu.Unlock()

	return s.store.commit(ctx, s)
}

// Rollback discards the staged changes. Rolling back a committed session is
// a no-op.
func (s *Session) Rollback(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.store.writeMu.Unlock()
	return nil
}
