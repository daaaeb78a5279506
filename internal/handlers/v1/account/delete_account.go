package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/compta-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/compta-server/internal/model"
	"github.com/carson-networks/compta-server/internal/service"
)

type accountDeleter interface {
	DeleteAccount(ctx context.Context, kind service.AccountKind, name string) (model.Registry, error)
}

// DeleteAccountHandler handles DELETE /v1/account/{kind}/{name}.
type DeleteAccountHandler struct {
	AccountService accountDeleter
}

func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-account",
		Method:      http.MethodDelete,
		Path:        "/v1/account/{kind}/{name}",
		Summary:     "Delete account",
		Description: "Removes an account. The last current account cannot be deleted.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *AccountPath) (*RegistryOutput, error) {
	reg, err := h.AccountService.DeleteAccount(ctx, service.AccountKind(input.Kind), input.Name)
	if err != nil {
		return nil, apierror.FromService(err, "failed to delete account")
	}
	return &RegistryOutput{Body: fromRegistry(reg)}, nil
}
