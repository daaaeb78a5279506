package service

import (
	"context"
	"io"
	"testing"

	"github.com/aarondl/opt/omit"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/compta-server/internal/model"
	"github.com/carson-networks/compta-server/internal/operator"
	"github.com/carson-networks/compta-server/internal/storage"
)

// newFileService wires the services to a file store in a temp dir and a
// running operator.
func newFileService(t *testing.T) *Service {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store, err := storage.NewFileStorage(t.TempDir(), logger)
	require.NoError(t, err)

	op := operator.NewOperatorDelegator(store, 1, logger)
	op.Start()
	t.Cleanup(op.Stop)

	return NewService(store, op, Options{ReportCacheSize: 16, ReportCacheTTL: 0})
}

// -- Registry tests --

func TestGetRegistry_Defaults(t *testing.T) {
	svc := newFileService(t)

	reg, err := svc.Account.GetRegistry(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{model.DefaultCurrentAccount}, reg.Current)
	assert.Empty(t, reg.Saving)
}

func TestAccountEdits(t *testing.T) {
	svc := newFileService(t)
	ctx := context.Background()

	_, err := svc.Account.AddAccount(ctx, AccountKindCurrent, "Joint")
	require.NoError(t, err)
	_, err = svc.Account.AddAccount(ctx, AccountKindSaving, "Livret A")
	require.NoError(t, err)
	reg, err := svc.Account.LinkSavingAccount(ctx, "Livret A", "Joint")
	require.NoError(t, err)
	assert.Equal(t, "Joint", reg.SavingLinks["Livret A"])

	reg, err = svc.Account.RenameAccount(ctx, AccountKindCurrent, "Joint", "Shared")
	require.NoError(t, err)
	assert.Equal(t, "Shared", reg.SavingLinks["Livret A"], "link follows the rename")

	reg, err = svc.Account.DeleteAccount(ctx, AccountKindCurrent, "Shared")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCurrentAccount, reg.SavingLinks["Livret A"])

	stored, err := svc.Account.GetRegistry(ctx)
	require.NoError(t, err)
	assert.Equal(t, reg, stored)
}

func TestAccountEdits_Errors(t *testing.T) {
	svc := newFileService(t)
	ctx := context.Background()

	_, err := svc.Account.AddAccount(ctx, AccountKindCurrent, model.DefaultCurrentAccount)
	assert.ErrorIs(t, err, model.ErrDuplicateAccount)

	_, err = svc.Account.AddAccount(ctx, "credit", "Visa")
	assert.ErrorIs(t, err, ErrInvalidAccountKind)

	_, err = svc.Account.DeleteAccount(ctx, AccountKindCurrent, model.DefaultCurrentAccount)
	assert.ErrorIs(t, err, model.ErrLastCurrentAccount)

	_, err = svc.Account.LinkSavingAccount(ctx, "Nowhere", model.DefaultCurrentAccount)
	assert.ErrorIs(t, err, model.ErrUnknownAccount)
}

// -- Preferences tests --

func TestUpdatePreferences_OnlySetFields(t *testing.T) {
	svc := newFileService(t)
	ctx := context.Background()

	prefs, err := svc.Account.UpdatePreferences(ctx, PreferencesUpdate{
		Locale: omit.From("fr"),
		Theme:  omit.From("dark"),
	})
	require.NoError(t, err)
	assert.Equal(t, Preferences{Locale: "fr", Theme: "dark"}, prefs)

	prefs, err = svc.Account.UpdatePreferences(ctx, PreferencesUpdate{Theme: omit.From("light")})
	require.NoError(t, err)
	assert.Equal(t, Preferences{Locale: "fr", Theme: "light"}, prefs)

	stored, err := svc.Account.GetPreferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, prefs, stored)
}
