package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/compta-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/compta-server/internal/model"
)

type LinkAccountInput struct {
	Name string `path:"name" minLength:"1" doc:"Saving account name"`
	Body struct {
		Current string `json:"current" minLength:"1" doc:"Current account to attach it to"`
	}
}

type accountLinker interface {
	LinkSavingAccount(ctx context.Context, saving, current string) (model.Registry, error)
}

// LinkAccountHandler handles PUT /v1/account/saving/{name}/link.
type LinkAccountHandler struct {
	AccountService accountLinker
}

func NewLinkAccountHandler(svc accountLinker) *LinkAccountHandler {
	return &LinkAccountHandler{AccountService: svc}
}

func (h *LinkAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "link-account",
		Method:      http.MethodPut,
		Path:        "/v1/account/saving/{name}/link",
		Summary:     "Link saving account",
		Description: "Attaches a saving account to a current account for current-account scoped reports.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *LinkAccountHandler) handle(ctx context.Context, input *LinkAccountInput) (*RegistryOutput, error) {
	reg, err := h.AccountService.LinkSavingAccount(ctx, input.Name, input.Body.Current)
	if err != nil {
		return nil, apierror.FromService(err, "failed to link account")
	}
	return &RegistryOutput{Body: fromRegistry(reg)}, nil
}
