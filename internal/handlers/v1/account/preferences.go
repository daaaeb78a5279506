package account

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/compta-server/internal/service"
)

type Preferences struct {
	Locale string `json:"locale" doc:"UI locale"`
	Theme  string `json:"theme" doc:"UI theme"`
}

type PreferencesOutput struct {
	Body Preferences
}

type UpdatePreferencesInput struct {
	Body struct {
		Locale *string `json:"locale,omitempty" doc:"New locale, unchanged when absent"`
		Theme  *string `json:"theme,omitempty" doc:"New theme, unchanged when absent"`
	}
}

type preferencesService interface {
	GetPreferences(ctx context.Context) (service.Preferences, error)
	UpdatePreferences(ctx context.Context, update service.PreferencesUpdate) (service.Preferences, error)
}

// PreferencesHandler handles GET and PATCH /v1/preferences.
type PreferencesHandler struct {
	AccountService preferencesService
}

func NewPreferencesHandler(svc preferencesService) *PreferencesHandler {
	return &PreferencesHandler{AccountService: svc}
}

func (h *PreferencesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-preferences",
		Method:      http.MethodGet,
		Path:        "/v1/preferences",
		Summary:     "Get preferences",
		Tags:        []string{"Accounts"},
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID: "update-preferences",
		Method:      http.MethodPatch,
		Path:        "/v1/preferences",
		Summary:     "Update preferences",
		Description: "Changes the fields present in the body.",
		Tags:        []string{"Accounts"},
	}, h.update)
}

func (h *PreferencesHandler) get(ctx context.Context, _ *struct{}) (*PreferencesOutput, error) {
	prefs, err := h.AccountService.GetPreferences(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to load preferences", err)
	}
	return &PreferencesOutput{Body: Preferences(prefs)}, nil
}

// parseUpdatePreferencesInput maps absent fields to unset values.
func parseUpdatePreferencesInput(input *UpdatePreferencesInput) service.PreferencesUpdate {
	var update service.PreferencesUpdate
	if input.Body.Locale != nil {
		update.Locale = omit.From(*input.Body.Locale)
	}
	if input.Body.Theme != nil {
		update.Theme = omit.From(*input.Body.Theme)
	}
	return update
}

func (h *PreferencesHandler) update(ctx context.Context, input *UpdatePreferencesInput) (*PreferencesOutput, error) {
	prefs, err := h.AccountService.UpdatePreferences(ctx, parseUpdatePreferencesInput(input))
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update preferences", err)
	}
	return &PreferencesOutput{Body: Preferences(prefs)}, nil
}
