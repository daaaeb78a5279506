package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/compta-server/internal/model"
	"github.com/carson-networks/compta-server/internal/service"
)

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) registryCall(args mock.Arguments) (model.Registry, error) {
	reg, _ := args.Get(0).(model.Registry)
	return reg, args.Error(1)
}

func (m *mockAccountService) GetRegistry(ctx context.Context) (model.Registry, error) {
	return m.registryCall(m.Called(ctx))
}

func (m *mockAccountService) AddAccount(ctx context.Context, kind service.AccountKind, name string) (model.Registry, error) {
	return m.registryCall(m.Called(ctx, kind, name))
}

func (m *mockAccountService) RenameAccount(ctx context.Context, kind service.AccountKind, oldName, newName string) (model.Registry, error) {
	return m.registryCall(m.Called(ctx, kind, oldName, newName))
}

func (m *mockAccountService) DeleteAccount(ctx context.Context, kind service.AccountKind, name string) (model.Registry, error) {
	return m.registryCall(m.Called(ctx, kind, name))
}

func (m *mockAccountService) LinkSavingAccount(ctx context.Context, saving, current string) (model.Registry, error) {
	return m.registryCall(m.Called(ctx, saving, current))
}

func (m *mockAccountService) GetPreferences(ctx context.Context) (service.Preferences, error) {
	args := m.Called(ctx)
	return args.Get(0).(service.Preferences), args.Error(1)
}

func (m *mockAccountService) UpdatePreferences(ctx context.Context, update service.PreferencesUpdate) (service.Preferences, error) {
	args := m.Called(ctx, update)
	return args.Get(0).(service.Preferences), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockAccountService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetRegistryHandler(svc).Register(api)
	NewCreateAccountHandler(svc).Register(api)
	NewRenameAccountHandler(svc).Register(api)
	NewDeleteAccountHandler(svc).Register(api)
	NewLinkAccountHandler(svc).Register(api)
	NewPreferencesHandler(svc).Register(api)
	t.Cleanup(func() { svc.AssertExpectations(t) })
	return api
}

func sampleRegistry() model.Registry {
	return model.Registry{
		Current:     []string{"Main", "Joint"},
		Saving:      []string{"Livret A", "PEL"},
		SavingLinks: model.SavingLinks{"PEL": "Joint"},
	}
}

func decodeRegistry(t *testing.T, resp *httptest.ResponseRecorder) Registry {
	t.Helper()
	var body Registry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// -- Registry tests --

func TestHTTP_GetRegistry_EffectiveLinks(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("GetRegistry", mock.Anything).Return(sampleRegistry(), nil)

	resp := newTestAPI(t, svc).Get("/v1/account")

	assert.Equal(t, http.StatusOK, resp.Code)
	body := decodeRegistry(t, resp)
	assert.Equal(t, map[string]string{"Livret A": "Main", "PEL": "Joint"}, body.SavingLinks)
}

func TestHTTP_CreateAccount(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("AddAccount", mock.Anything, service.AccountKindSaving, "LDDS").Return(sampleRegistry(), nil)

	resp := newTestAPI(t, svc).Post("/v1/account", CreateAccountBody{Kind: "saving", Name: "LDDS"})

	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestHTTP_CreateAccount_Duplicate(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("AddAccount", mock.Anything, service.AccountKindCurrent, "Main").
		Return(nil, fmt.Errorf("%q: %w", "Main", model.ErrDuplicateAccount))

	resp := newTestAPI(t, svc).Post("/v1/account", CreateAccountBody{Kind: "current", Name: "Main"})

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_CreateAccount_InvalidKind(t *testing.T) {
	svc := new(mockAccountService)

	resp := newTestAPI(t, svc).Post("/v1/account", CreateAccountBody{Kind: "credit", Name: "Visa"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code, "rejected by schema validation")
}

func TestHTTP_RenameAccount(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("RenameAccount", mock.Anything, service.AccountKindCurrent, "Joint", "Shared").Return(sampleRegistry(), nil)

	resp := newTestAPI(t, svc).Put("/v1/account/current/Joint", map[string]any{"newName": "Shared"})

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestHTTP_DeleteAccount_LastCurrent(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("DeleteAccount", mock.Anything, service.AccountKindCurrent, "Main").Return(nil, model.ErrLastCurrentAccount)

	resp := newTestAPI(t, svc).Delete("/v1/account/current/Main")

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_LinkAccount_Unknown(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("LinkSavingAccount", mock.Anything, "PEL", "Nowhere").
		Return(nil, fmt.Errorf("current account %q: %w", "Nowhere", model.ErrUnknownAccount))

	resp := newTestAPI(t, svc).Put("/v1/account/saving/PEL/link", map[string]any{"current": "Nowhere"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

// -- Preferences tests --

func TestParseUpdatePreferencesInput(t *testing.T) {
	theme := "dark"
	input := &UpdatePreferencesInput{}
	input.Body.Theme = &theme

	update := parseUpdatePreferencesInput(input)

	assert.False(t, update.Locale.IsSet())
	got, ok := update.Theme.Get()
	assert.True(t, ok)
	assert.Equal(t, "dark", got)
}

func TestHTTP_UpdatePreferences(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("UpdatePreferences", mock.Anything, service.PreferencesUpdate{Locale: omit.From("fr")}).
		Return(service.Preferences{Locale: "fr", Theme: "light"}, nil)

	resp := newTestAPI(t, svc).Patch("/v1/preferences", map[string]any{"locale": "fr"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Preferences
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, Preferences{Locale: "fr", Theme: "light"}, body)
}

func TestHTTP_GetPreferences_Error(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("GetPreferences", mock.Anything).Return(service.Preferences{}, errors.New("disk error"))

	resp := newTestAPI(t, svc).Get("/v1/preferences")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
