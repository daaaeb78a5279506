package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/compta-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/compta-server/internal/model"
	"github.com/carson-networks/compta-server/internal/service"
)

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountBody is the request body fields for creating an account.
type CreateAccountBody struct {
	Kind string `json:"kind" enum:"current,saving" doc:"Account kind"`
	Name string `json:"name" minLength:"1" doc:"Account name, unique across both kinds"`
}

type accountCreator interface {
	AddAccount(ctx context.Context, kind service.AccountKind, name string) (model.Registry, error)
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPost,
		Path:          "/v1/account",
		Summary:       "Create account",
		Description:   "Adds a current or saving account and returns the updated registry.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*RegistryOutput, error) {
	reg, err := h.AccountService.AddAccount(ctx, service.AccountKind(input.Body.Kind), input.Body.Name)
	if err != nil {
		return nil, apierror.FromService(err, "failed to create account")
	}
	return &RegistryOutput{Body: fromRegistry(reg)}, nil
}
