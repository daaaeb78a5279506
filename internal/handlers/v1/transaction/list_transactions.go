package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/compta-server/internal/handlers/v1/apierror"
	"github.com/carson-networks/compta-server/internal/logging"
	"github.com/carson-networks/compta-server/internal/model"
	"github.com/carson-networks/compta-server/internal/service"
)

// PageCursor is echoed back by the client to read the next page. AsOf pins
// the listing to the records that existed when the first page was served.
type PageCursor struct {
	Position int    `json:"position" minimum:"0" doc:"Number of records already returned"`
	Limit    int    `json:"limit" minimum:"1" maximum:"100" doc:"Page size"`
	AsOf     string `json:"asOf" format:"date-time" doc:"Newest createdAt visible to this listing"`
}

type ListTransactionsInput struct {
	Body struct {
		Cursor *PageCursor `json:"cursor,omitempty" doc:"Cursor returned by the previous page"`
	}
}

type ListTransactionsOutput struct {
	Body struct {
		Transactions []Transaction `json:"transactions" doc:"Transactions, newest first"`
		NextCursor   *PageCursor   `json:"nextCursor,omitempty" doc:"Absent on the last page"`
	}
}

type transactionLister interface {
	ListTransactions(ctx context.Context, cursor *service.TransactionCursor) ([]model.Transaction, *service.TransactionCursor, error)
}

type ListTransactionsHandler struct {
	TransactionService transactionLister
}

func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Pages through stored transactions by creation time, newest first. Records without a creation time come last.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// cursorFromRequest returns nil for a first page so the service picks the
// default page size.
func cursorFromRequest(c *PageCursor) (*service.TransactionCursor, error) {
	if c == nil {
		return nil, nil
	}
	asOf, err := time.Parse(time.RFC3339Nano, c.AsOf)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid cursor asOf", err)
	}
	return &service.TransactionCursor{
		Position:        c.Position,
		Limit:           c.Limit,
		MaxCreationTime: asOf,
	}, nil
}

func cursorToResponse(c *service.TransactionCursor) *PageCursor {
	if c == nil {
		return nil
	}
	return &PageCursor{
		Position: c.Position,
		Limit:    c.Limit,
		AsOf:     c.MaxCreationTime.UTC().Format(time.RFC3339Nano),
	}
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	cursor, err := cursorFromRequest(input.Body.Cursor)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	done := func() {}
	if logData != nil {
		done = logData.AddTiming("listTransactionsMs")
	}
	records, next, err := h.TransactionService.ListTransactions(ctx, cursor)
	done()
	if err != nil {
		return nil, apierror.FromService(err, "failed to list transactions")
	}
	if logData != nil {
		logData.AddData("transactionCount", len(records))
	}

	out := &ListTransactionsOutput{}
	out.Body.Transactions = FromModels(records)
	out.Body.NextCursor = cursorToResponse(next)
	return out, nil
}
