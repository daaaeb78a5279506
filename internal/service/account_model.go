package service

import (
	"context"
	"errors"

	"github.com/aarondl/opt/omit"

	"github.com/carson-networks/compta-server/internal/model"
	"github.com/carson-networks/compta-server/internal/storage/table"
)

var ErrInvalidAccountKind = errors.New("account kind must be current or saving")

// AccountKind selects which list of the registry an edit applies to.
type AccountKind string

const (
	AccountKindCurrent AccountKind = model.AccountKindCurrent
	AccountKindSaving  AccountKind = model.AccountKindSaving
)

// Preferences are the display settings stored next to the registry.
type Preferences struct {
	Locale string
	Theme  string
}

// PreferencesUpdate changes only the fields that are set.
type PreferencesUpdate struct {
	Locale omit.Val[string]
	Theme  omit.Val[string]
}

func registryFromSettings(s *table.Settings) model.Registry {
	return model.Registry{
		Current:     s.Accounts.Current,
		Saving:      s.Accounts.Saving,
		SavingLinks: s.Accounts.SavingLinks,
	}.Normalize()
}

func applyRegistry(s *table.Settings, reg model.Registry) {
	s.Accounts = table.Accounts{
		Current:     reg.Current,
		Saving:      reg.Saving,
		SavingLinks: reg.SavingLinks,
	}
}

func loadRegistry(ctx context.Context, settings table.ISettingsTable) (model.Registry, error) {
	s, err := settings.Load(ctx)
	if err != nil {
		return model.Registry{}, err
	}
	return registryFromSettings(s), nil
}
