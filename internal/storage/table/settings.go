package table

import (
	"context"
	"maps"
	"slices"
)

const defaultCurrentAccount = "Current account"

type Accounts struct {
	Current     []string          `json:"current"`
	Saving      []string          `json:"saving"`
	SavingLinks map[string]string `json:"savingLinks"`
}

// Settings is the persisted settings document. Locale and Theme are opaque
// to the server and only round-tripped.
type Settings struct {
	Accounts Accounts `json:"accounts"`
	Locale   string   `json:"locale,omitempty"`
	Theme    string   `json:"theme,omitempty"`
}

// DefaultSettings is what a fresh installation starts with.
func DefaultSettings() *Settings {
	return &Settings{
		Accounts: Accounts{
			Current:     []string{defaultCurrentAccount},
			Saving:      []string{},
			SavingLinks: map[string]string{},
		},
	}
}

// WithDefaults fills the account lists a stored document left out.
func (s *Settings) WithDefaults() *Settings {
	out := DefaultSettings()
	if s == nil {
		return out
	}
	out.Locale = s.Locale
	out.Theme = s.Theme
	if s.Accounts.Current != nil {
		out.Accounts.Current = slices.Clone(s.Accounts.Current)
	}
	if s.Accounts.Saving != nil {
		out.Accounts.Saving = slices.Clone(s.Accounts.Saving)
	}
	if s.Accounts.SavingLinks != nil {
		out.Accounts.SavingLinks = maps.Clone(s.Accounts.SavingLinks)
	}
	return out
}

type ISettingsTable interface {
	Load(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, settings *Settings) error
}
