package sqlconfig

import (
	"context"
	"slices"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/compta-server/internal/storage/table"
)

const (
	accountKindCurrent = "current"
	accountKindSaving  = "saving"

	preferenceLocale = "locale"
	preferenceTheme  = "theme"
)

type accountRow struct {
	Name     string `db:"name"`
	Kind     string `db:"kind"`
	Position int    `db:"position"`
}

type savingLinkRow struct {
	SavingAccount  string `db:"saving_account"`
	CurrentAccount string `db:"current_account"`
}

type preferenceRow struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

var _ table.ISettingsTable = (*SettingsTable)(nil)

// SettingsTable stores the settings document across the accounts,
// saving_links and preferences tables.
type SettingsTable struct {
	exec bob.Executor
}

func NewSettingsTable(exec bob.Executor) *SettingsTable {
	return &SettingsTable{exec: exec}
}

// Load reads the stored settings merged over the defaults.
func (t *SettingsTable) Load(ctx context.Context) (*table.Settings, error) {
	accounts, err := bob.All(ctx, t.exec, psql.Select(
		sm.Columns("name", "kind", "position"),
		sm.From("accounts"),
		sm.OrderBy("position").Asc(),
	), scan.StructMapper[accountRow]())
	if err != nil {
		return nil, err
	}

	links, err := bob.All(ctx, t.exec, psql.Select(
		sm.Columns("saving_account", "current_account"),
		sm.From("saving_links"),
	), scan.StructMapper[savingLinkRow]())
	if err != nil {
		return nil, err
	}

	prefs, err := bob.All(ctx, t.exec, psql.Select(
		sm.Columns(psql.Quote("key"), psql.Quote("value")),
		sm.From("preferences"),
	), scan.StructMapper[preferenceRow]())
	if err != nil {
		return nil, err
	}

	stored := &table.Settings{}
	for _, row := range accounts {
		switch row.Kind {
		case accountKindCurrent:
			stored.Accounts.Current = append(stored.Accounts.Current, row.Name)
		case accountKindSaving:
			stored.Accounts.Saving = append(stored.Accounts.Saving, row.Name)
		}
	}
	if len(links) > 0 {
		stored.Accounts.SavingLinks = make(map[string]string, len(links))
		for _, row := range links {
			stored.Accounts.SavingLinks[row.SavingAccount] = row.CurrentAccount
		}
	}
	for _, row := range prefs {
		switch row.Key {
		case preferenceLocale:
			stored.Locale = row.Value
		case preferenceTheme:
			stored.Theme = row.Value
		}
	}
	return stored.WithDefaults(), nil
}

// Save replaces the stored settings. It must run inside a transaction.
func (t *SettingsTable) Save(ctx context.Context, settings *table.Settings) error {
	for _, name := range []string{"accounts", "saving_links", "preferences"} {
		if _, err := bob.Exec(ctx, t.exec, psql.Delete(dm.From(name))); err != nil {
			return err
		}
	}

	var accountValues []bob.Mod[*dialect.InsertQuery]
	position := 0
	for _, name := range settings.Accounts.Current {
		accountValues = append(accountValues, im.Values(psql.Arg(name, accountKindCurrent, position)))
		position++
	}
	for _, name := range settings.Accounts.Saving {
		accountValues = append(accountValues, im.Values(psql.Arg(name, accountKindSaving, position)))
		position++
	}
	if err := t.insert(ctx, "accounts", []string{"name", "kind", "position"}, accountValues); err != nil {
		return err
	}

	var linkValues []bob.Mod[*dialect.InsertQuery]
	savings := make([]string, 0, len(settings.Accounts.SavingLinks))
	for saving := range settings.Accounts.SavingLinks {
		savings = append(savings, saving)
	}
	slices.Sort(savings)
	for _, saving := range savings {
		linkValues = append(linkValues, im.Values(psql.Arg(saving, settings.Accounts.SavingLinks[saving])))
	}
	if err := t.insert(ctx, "saving_links", []string{"saving_account", "current_account"}, linkValues); err != nil {
		return err
	}

	var prefValues []bob.Mod[*dialect.InsertQuery]
	if settings.Locale != "" {
		prefValues = append(prefValues, im.Values(psql.Arg(preferenceLocale, settings.Locale)))
	}
	if settings.Theme != "" {
		prefValues = append(prefValues, im.Values(psql.Arg(preferenceTheme, settings.Theme)))
	}
	return t.insert(ctx, "preferences", []string{"key", "value"}, prefValues)
}

func (t *SettingsTable) insert(ctx context.Context, name string, columns []string, values []bob.Mod[*dialect.InsertQuery]) error {
	if len(values) == 0 {
		return nil
	}
	queryMods := append([]bob.Mod[*dialect.InsertQuery]{im.Into(name, columns...)}, values...)
	_, err := bob.Exec(ctx, t.exec, psql.Insert(queryMods...))
	return err
}
