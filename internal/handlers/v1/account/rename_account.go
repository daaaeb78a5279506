package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/compta-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/compta-server/internal/model"
	"github.com/carson-networks/compta-server/internal/service"
)

type RenameAccountInput struct {
	AccountPath
	Body struct {
		NewName string `json:"newName" minLength:"1" doc:"New account name"`
	}
}

type accountRenamer interface {
	RenameAccount(ctx context.Context, kind service.AccountKind, oldName, newName string) (model.Registry, error)
}

// RenameAccountHandler handles PUT /v1/account/{kind}/{name}. Recorded
// transactions keep the old name.
type RenameAccountHandler struct {
	AccountService accountRenamer
}

func NewRenameAccountHandler(svc accountRenamer) *RenameAccountHandler {
	return &RenameAccountHandler{AccountService: svc}
}

func (h *RenameAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "rename-account",
		Method:      http.MethodPut,
		Path:        "/v1/account/{kind}/{name}",
		Summary:     "Rename account",
		Description: "Renames an account. Saving links follow the new name; recorded transactions are not rewritten.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *RenameAccountHandler) handle(ctx context.Context, input *RenameAccountInput) (*RegistryOutput, error) {
	reg, err := h.AccountService.RenameAccount(ctx, service.AccountKind(input.Kind), input.Name, input.Body.NewName)
	if err != nil {
		return nil, apierror.FromService(err, "failed to rename account")
	}
	return &RegistryOutput{Body: fromRegistry(reg)}, nil
}
