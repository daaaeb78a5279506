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

type ArchiveMonth struct {
	Month int `json:"month"`
	Count int `json:"count"`
}

type ArchiveYear struct {
	Year   int            `json:"year"`
	Count  int            `json:"count"`
	Months []ArchiveMonth `json:"months"`
}

type ArchiveOutput struct {
	Body struct {
		Years []ArchiveYear `json:"years"`
	}
}

type ArchiveMonthInput struct {
	Year  int `path:"year" minimum:"1"`
	Month int `path:"month" minimum:"1" maximum:"12"`
}

type ArchiveMonthOutput struct {
	Body struct {
		Transactions []transaction.Transaction `json:"transactions"`
	}
}

type archiveService interface {
	Archive(ctx context.Context) ([]engine.ArchiveYear, error)
	ArchiveMonth(ctx context.Context, year int, month time.Month) ([]model.Transaction, error)
}

// ArchiveHandler handles GET /v1/report/archive and its per-month listing.
type ArchiveHandler struct {
	ReportService archiveService
}

func NewArchiveHandler(svc archiveService) *ArchiveHandler {
	return &ArchiveHandler{ReportService: svc}
}

func (h *ArchiveHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-archive",
		Method:      http.MethodGet,
		Path:        "/v1/report/archive",
		Summary:     "Archive index",
		Description: "Transaction counts by year and month, newest first.",
		Tags:        []string{"Reports"},
	}, h.index)

	huma.Register(api, huma.Operation{
		OperationID: "get-archive-month",
		Method:      http.MethodGet,
		Path:        "/v1/report/archive/{year}/{month}",
		Summary:     "Archive month",
		Tags:        []string{"Reports"},
	}, h.month)
}

func (h *ArchiveHandler) index(ctx context.Context, _ *struct{}) (*ArchiveOutput, error) {
	years, err := h.ReportService.Archive(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build archive", err)
	}

	out := &ArchiveOutput{}
	out.Body.Years = make([]ArchiveYear, len(years))
	for i, y := range years {
		months := make([]ArchiveMonth, len(y.Months))
		for j, m := range y.Months {
			months[j] = ArchiveMonth{Month: int(m.Month), Count: m.Count}
		}
		out.Body.Years[i] = ArchiveYear{Year: y.Year, Count: y.Count, Months: months}
	}
	return out, nil
}

func (h *ArchiveHandler) month(ctx context.Context, input *ArchiveMonthInput) (*ArchiveMonthOutput, error) {
	txs, err := h.ReportService.ArchiveMonth(ctx, input.Year, time.Month(input.Month))
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list archive month", err)
	}
	out := &ArchiveMonthOutput{}
	out.Body.Transactions = transaction.FromModels(txs)
	return out, nil
}
