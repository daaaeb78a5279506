// Package filestore persists transactions as one JSON document per calendar
// year plus a settings.json, the layout of the desktop application's data
// directory.
package filestore

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/compta-server/internal/model"
	"github.com/carson-networks/compta-server/internal/storage/table"
)

// Store holds the committed state in memory. Reads never touch the disk;
// writes go through a Session and are flushed on Commit.
type Store struct {
	dir    string
	logger *logrus.Logger
	now    func() time.Time

	writeMu sync.Mutex

	mu       sync.RWMutex
	rows     map[string]*table.Transaction
	years    map[int]struct{}
	settings *table.Settings
}

// Open loads every Compta_<year>.json and settings.json found in dir,
// creating the directory when missing.
func Open(dir string, logger *logrus.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &Store{
		dir:    dir,
		logger: logger,
		now:    time.Now,
		rows:   map[string]*table.Transaction{},
		years:  map[int]struct{}{},
	}
	if err := s.loadTransactions(); err != nil {
		return nil, err
	}
	s.settings = s.loadSettings()
	return s, nil
}

func (s *Store) loadTransactions() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("read data dir: %w", err)
	}

	for _, entry := range entries {
		year, ok := parseYear(entry.Name())
		if entry.IsDir() || !ok {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		records, err := decodeYearFile(raw)
		if err != nil {
			return fmt.Errorf("decode %s: %w", entry.Name(), err)
		}

		s.years[year] = struct{}{}
		for _, rec := range records {
			row := fromRecord(rec)
			if row.ID == "" {
				s.logger.WithField("file", entry.Name()).Warn("FileStore.loadTransactions.record without id skipped")
				continue
			}
			s.rows[row.ID] = row
		}
	}

	s.logger.WithFields(logrus.Fields{
		"dir":          s.dir,
		"transactions": len(s.rows),
		"years":        len(s.years),
	}).Info("FileStore.Open.loaded")
	return nil
}

// loadSettings falls back to the defaults on a missing or unreadable file.
func (s *Store) loadSettings() *table.Settings {
	raw, err := os.ReadFile(filepath.Join(s.dir, settingsFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return table.DefaultSettings()
	}
	if err != nil {
		s.logger.WithError(err).Warn("FileStore.loadSettings.read failed, using defaults")
		return table.DefaultSettings()
	}

	var stored table.Settings
	if err := json.Unmarshal(raw, &stored); err != nil {
		s.logger.WithError(err).Warn("FileStore.loadSettings.decode failed, using defaults")
		return table.DefaultSettings()
	}
	return stored.WithDefaults()
}

// Transactions is the read-only view of committed transactions.
func (s *Store) Transactions() table.ITransactionTable {
	return &transactionView{
		read: func(fn func(rows map[string]*table.Transaction)) {
			s.mu.RLock()
			defer s.mu.RUnlock()
			fn(s.rows)
		},
	}
}

// Settings is the read-only view of committed settings.
func (s *Store) Settings() table.ISettingsTable {
	return &settingsView{
		load: func() *table.Settings {
			s.mu.RLock()
			defer s.mu.RUnlock()
			return s.settings.WithDefaults()
		},
	}
}

// Begin starts a write session. Sessions are exclusive; Begin blocks until
// the previous one commits or rolls back.
func (s *Store) Begin(ctx context.Context) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.writeMu.Lock()

	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := make(map[string]*table.Transaction, len(s.rows))
	for id, row := range s.rows {
		clone := *row
		rows[id] = &clone
	}
	return &Session{
		store:    s,
		rows:     rows,
		settings: s.settings.WithDefaults(),
	}, nil
}

func (s *Store) commit(ctx context.Context, session *Session) error {
	s.mu.RLock()
	touchedYears := maps.Clone(s.years)
	s.mu.RUnlock()

	byYear := groupByYear(session.rows, s.now().Year())
	for year := range byYear {
		touchedYears[year] = struct{}{}
	}

	group, _ := errgroup.WithContext(ctx)
	for year := range touchedYears {
		group.Go(func() error {
			return s.writeYear(year, byYear[year])
		})
	}
	if session.settingsDirty {
		group.Go(func() error {
			return writeJSON(filepath.Join(s.dir, settingsFileName), session.settings)
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = session.rows
	s.years = touchedYears
	s.settings = session.settings
	return nil
}

func (s *Store) writeYear(year int, rows []*table.Transaction) error {
	doc := yearFile{Year: year, Months: map[string][]record{}}
	for _, row := range rows {
		key := undatedMonthKey
		if when, ok := model.ParseDate(row.Date); ok {
			key = monthKey(when.Month())
		}
		doc.Months[key] = append(doc.Months[key], toRecord(row))
	}
	return writeJSON(filepath.Join(s.dir, yearFileName(year)), doc)
}

// groupByYear buckets rows by the year of their date. Rows with an invalid
// date go to fallbackYear so they are never lost on save.
func groupByYear(rows map[string]*table.Transaction, fallbackYear int) map[int][]*table.Transaction {
	byYear := map[int][]*table.Transaction{}
	for _, row := range rows {
		year := fallbackYear
		if when, ok := model.ParseDate(row.Date); ok {
			year = when.Year()
		}
		byYear[year] = append(byYear[year], row)
	}
	for _, yearRows := range byYear {
		slices.SortFunc(yearRows, func(a, b *table.Transaction) int {
			if c := cmp.Compare(b.Date, a.Date); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		})
	}
	return byYear
}

// writeJSON replaces path atomically.
func writeJSON(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
