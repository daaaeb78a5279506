package service

import (
	"context"

	"github.com/carson-networks/compta-server/internal/model"
	"github.com/carson-networks/compta-server/internal/operator/actions"
	"github.com/carson-networks/compta-server/internal/storage"
	"github.com/carson-networks/compta-server/internal/storage/table"
)

// AccountService edits the account registry and the stored preferences.
// Edits never rewrite recorded transactions.
type AccountService struct {
	storage  *storage.Storage
	operator processor
	rev      *revision
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage, op processor, rev *revision) *AccountService {
	return &AccountService{
		storage:  store,
		operator: op,
		rev:      rev,
	}
}

func (s *AccountService) GetRegistry(ctx context.Context) (model.Registry, error) {
	return loadRegistry(ctx, s.storage.Settings)
}

func (s *AccountService) AddAccount(ctx context.Context, kind AccountKind, name string) (model.Registry, error) {
	return s.editRegistry(ctx, func(reg model.Registry) (model.Registry, error) {
		switch kind {
		case AccountKindCurrent:
			return reg.AddCurrent(name)
		case AccountKindSaving:
			return reg.AddSaving(name)
		}
		return reg, ErrInvalidAccountKind
	})
}

func (s *AccountService) RenameAccount(ctx context.Context, kind AccountKind, oldName, newName string) (model.Registry, error) {
	return s.editRegistry(ctx, func(reg model.Registry) (model.Registry, error) {
		switch kind {
		case AccountKindCurrent:
			return reg.RenameCurrent(oldName, newName)
		case AccountKindSaving:
			return reg.RenameSaving(oldName, newName)
		}
		return reg, ErrInvalidAccountKind
	})
}

func (s *AccountService) DeleteAccount(ctx context.Context, kind AccountKind, name string) (model.Registry, error) {
	return s.editRegistry(ctx, func(reg model.Registry) (model.Registry, error) {
		switch kind {
		case AccountKindCurrent:
			return reg.DeleteCurrent(name)
		case AccountKindSaving:
			return reg.DeleteSaving(name)
		}
		return reg, ErrInvalidAccountKind
	})
}

// LinkSavingAccount attaches a saving account to a current account.
func (s *AccountService) LinkSavingAccount(ctx context.Context, saving, current string) (model.Registry, error) {
	return s.editRegistry(ctx, func(reg model.Registry) (model.Registry, error) {
		return reg.Link(saving, current)
	})
}

func (s *AccountService) editRegistry(ctx context.Context, edit func(model.Registry) (model.Registry, error)) (model.Registry, error) {
	var out model.Registry
	action := &actions.UpdateSettings{Apply: func(settings *table.Settings) error {
		next, err := edit(registryFromSettings(settings))
		if err != nil {
			return err
		}
		applyRegistry(settings, next)
		out = next
		return nil
	}}
	if err := s.operator.Process(ctx, action); err != nil {
		return model.Registry{}, err
	}
	s.rev.bump()
	return out, nil
}

func (s *AccountService) GetPreferences(ctx context.Context) (Preferences, error) {
	settings, err := s.storage.Settings.Load(ctx)
	if err != nil {
		return Preferences{}, err
	}
	return Preferences{Locale: settings.Locale, Theme: settings.Theme}, nil
}

func (s *AccountService) UpdatePreferences(ctx context.Context, update PreferencesUpdate) (Preferences, error) {
	action := &actions.UpdateSettings{Apply: func(settings *table.Settings) error {
		if locale, ok := update.Locale.Get(); ok {
			settings.Locale = locale
		}
		if theme, ok := update.Theme.Get(); ok {
			settings.Theme = theme
		}
		return nil
	}}
	if err := s.operator.Process(ctx, action); err != nil {
		return Preferences{}, err
	}
	return Preferences{Locale: action.Result.Locale, Theme: action.Result.Theme}, nil
}
