package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/compta-server/internal/model"
)

type registryGetter interface {
	GetRegistry(ctx context.Context) (model.Registry, error)
}

// GetRegistryHandler handles GET /v1/account.
type GetRegistryHandler struct {
	AccountService registryGetter
}

func NewGetRegistryHandler(svc registryGetter) *GetRegistryHandler {
	return &GetRegistryHandler{AccountService: svc}
}

func (h *GetRegistryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-registry",
		Method:      http.MethodGet,
		Path:        "/v1/account",
		Summary:     "Get account registry",
		Description: "Lists current and saving accounts with the effective saving links.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *GetRegistryHandler) handle(ctx context.Context, _ *struct{}) (*RegistryOutput, error) {
	reg, err := h.AccountService.GetRegistry(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to load accounts", err)
	}
	return &RegistryOutput{Body: fromRegistry(reg)}, nil
}
