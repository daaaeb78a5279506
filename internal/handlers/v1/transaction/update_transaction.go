package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/compta-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/compta-server/internal/model"
)

type UpdateTransactionInput struct {
	IDInput
	Body TransactionBody
}

type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, id string, draft model.Draft) (model.Transaction, error)
}

// UpdateTransactionHandler handles PUT /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transaction/{id}",
		Summary:     "Update transaction",
		Description: "Replaces every field of a transaction. The id and creation time are kept.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*TransactionOutput, error) {
	draft, err := parseTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}

	record, err := h.TransactionService.UpdateTransaction(ctx, input.ID, draft)
	if err != nil {
		return nil, apierror.FromService(err, "failed to update transaction")
	}
	return &TransactionOutput{Status: http.StatusOK, Body: fromModel(record)}, nil
}
