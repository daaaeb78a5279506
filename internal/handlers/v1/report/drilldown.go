package report

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/compta-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/compta-server/internal/model"
	engine "github.com/carson-networks/compta-server/internal/report"
)

type DrilldownInput struct {
	ReportQuery
	Search          string `query:"search" doc:"Case-insensitive substring of the name"`
	Type            string `query:"type" enum:"income,expense" doc:"Keep only this type"`
	Category        string `query:"category" doc:"Keep only this category"`
	PrelevementOnly bool   `query:"prelevementOnly" doc:"Keep only recurring debits"`
	SavingOnly      bool   `query:"savingOnly" doc:"Keep only Saving-category records"`
}

type DrilldownOutput struct {
	Body struct {
		Transactions []transaction.Transaction `json:"transactions"`
	}
}

type drilldownService interface {
	Drilldown(ctx context.Context, scope model.Scope, period model.Period, filter engine.DrilldownFilter) ([]model.Transaction, error)
}

// DrilldownHandler handles GET /v1/report/drilldown.
type DrilldownHandler struct {
	ReportService drilldownService
	now           func() time.Time
}

func NewDrilldownHandler(svc drilldownService) *DrilldownHandler {
	return &DrilldownHandler{ReportService: svc, now: time.Now}
}

func (h *DrilldownHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-drilldown",
		Method:      http.MethodGet,
		Path:        "/v1/report/drilldown",
		Summary:     "Drill-down",
		Description: "Transactions of a scope and period narrowed by search and flags.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *DrilldownHandler) handle(ctx context.Context, input *DrilldownInput) (*DrilldownOutput, error) {
	scope, period, err := parseReportQuery(input.ReportQuery, h.now())
	if err != nil {
		return nil, err
	}

	txs, err := h.ReportService.Drilldown(ctx, scope, period, engine.DrilldownFilter{
		Search:          input.Search,
		Type:            model.Type(input.Type),
		Category:        input.Category,
		PrelevementOnly: input.PrelevementOnly,
		SavingOnly:      input.SavingOnly,
	})
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to filter transactions", err)
	}

	out := &DrilldownOutput{}
	out.Body.Transactions = transaction.FromModels(txs)
	return out, nil
}
