package report

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/compta-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/compta-server/internal/logging"
	"github.com/carson-networks/compta-server/internal/model"
	engine "github.com/carson-networks/compta-server/internal/report"
	"github.com/carson-networks/compta-server/internal/service"
)

type Kpis struct {
	RealIncome               string `json:"realIncome"`
	RealIncomeCount          int    `json:"realIncomeCount"`
	RealOutcome              string `json:"realOutcome"`
	RealOutcomeCount         int    `json:"realOutcomeCount"`
	RealNet                  string `json:"realNet"`
	PrelevTotal              string `json:"prelevTotal"`
	PrelevCount              int    `json:"prelevCount"`
	SavingsDeposits          string `json:"savingsDeposits"`
	SavingsDepositsCount     int    `json:"savingsDepositsCount"`
	SavingsWithdrawals       string `json:"savingsWithdrawals"`
	SavingsWithdrawalsCount  int    `json:"savingsWithdrawalsCount"`
	SavingsNetChange         string `json:"savingsNetChange"`
	SavingsRate              string `json:"savingsRate" doc:"Percentage of real income deposited to savings"`
	CurrentTransfersIn       string `json:"currentTransfersIn"`
	CurrentTransfersInCount  int    `json:"currentTransfersInCount"`
	CurrentTransfersOut      string `json:"currentTransfersOut"`
	CurrentTransfersOutCount int    `json:"currentTransfersOutCount"`
	CurrentBalance           string `json:"currentBalance" doc:"Residual of recorded flows, not a bank balance"`
	SavingsBalance           string `json:"savingsBalance"`
	TotalBalance             string `json:"totalBalance"`
}

type CategoryTotal struct {
	Name  string `json:"name"`
	Total string `json:"total"`
	Count int    `json:"count"`
	Share string `json:"share" doc:"Percentage of the breakdown total"`
}

type MonthTotals struct {
	Month           int    `json:"month"`
	RealIncome      string `json:"realIncome"`
	RealOutcome     string `json:"realOutcome"`
	RealPrelevement string `json:"realPrelevement"`
	RealNet         string `json:"realNet"`
}

type DayTotals struct {
	Day          int                       `json:"day"`
	RealIncome   string                    `json:"realIncome"`
	RealOutcome  string                    `json:"realOutcome"`
	RealNet      string                    `json:"realNet"`
	Transactions []transaction.Transaction `json:"transactions"`
}

type DailyAmount struct {
	Day    int    `json:"day"`
	Amount string `json:"amount"`
}

type SavingsFlow struct {
	Name        string `json:"name"`
	Deposits    string `json:"deposits"`
	Withdrawals string `json:"withdrawals"`
	NetChange   string `json:"netChange"`
}

type AccountBalance struct {
	Name    string `json:"name"`
	Balance string `json:"balance"`
}

type Dashboard struct {
	Scope           string           `json:"scope"`
	Period          string           `json:"period"`
	Kpis            Kpis             `json:"kpis"`
	Categories      []CategoryTotal  `json:"categories"`
	Prelevements    []CategoryTotal  `json:"prelevements"`
	Monthly         []MonthTotals    `json:"monthly"`
	Daily           []DayTotals      `json:"daily,omitempty" doc:"Present for a single-month period"`
	DailyExpenses   []DailyAmount    `json:"dailyExpenses,omitempty" doc:"Present for a single-month period"`
	Savings         []SavingsFlow    `json:"savings"`
	CurrentBalances []AccountBalance `json:"currentBalances"`
	SavingBalances  []AccountBalance `json:"savingBalances"`
	CategoryNames   []string         `json:"categoryNames"`
}

type DashboardInput struct {
	ReportQuery
}

type DashboardOutput struct {
	Body Dashboard
}

type dashboardService interface {
	Dashboard(ctx context.Context, scope model.Scope, period model.Period) (*service.Dashboard, error)
}

// DashboardHandler handles GET /v1/report/dashboard.
type DashboardHandler struct {
	ReportService dashboardService
	now           func() time.Time
}

func NewDashboardHandler(svc dashboardService) *DashboardHandler {
	return &DashboardHandler{ReportService: svc, now: time.Now}
}

func (h *DashboardHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/v1/report/dashboard",
		Summary:     "Dashboard",
		Description: "KPIs, breakdowns and series for one scope and period.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *DashboardHandler) handle(ctx context.Context, input *DashboardInput) (*DashboardOutput, error) {
	scope, period, err := parseReportQuery(input.ReportQuery, h.now())
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		logData.AddData("scope", scope.String())
		logData.AddData("period", period.String())
		stopTimer = logData.AddTiming("dashboardMs")
	}
	d, err := h.ReportService.Dashboard(ctx, scope, period)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute dashboard", err)
	}
	return &DashboardOutput{Body: FromDashboard(d)}, nil
}

// FromDashboard converts a computed dashboard into its JSON form.
func FromDashboard(d *service.Dashboard) Dashboard {
	k := d.Kpis
	out := Dashboard{
		Scope:  d.Scope.String(),
		Period: d.Period.String(),
		Kpis: Kpis{
			RealIncome:               k.RealIncome.StringFixed(2),
			RealIncomeCount:          k.RealIncomeCount,
			RealOutcome:              k.RealOutcome.StringFixed(2),
			RealOutcomeCount:         k.RealOutcomeCount,
			RealNet:                  k.RealNet.StringFixed(2),
			PrelevTotal:              k.PrelevTotal.StringFixed(2),
			PrelevCount:              k.PrelevCount,
			SavingsDeposits:          k.SavingsDeposits.StringFixed(2),
			SavingsDepositsCount:     k.SavingsDepositsCount,
			SavingsWithdrawals:       k.SavingsWithdrawals.StringFixed(2),
			SavingsWithdrawalsCount:  k.SavingsWithdrawalsCount,
			SavingsNetChange:         k.SavingsNetChange.StringFixed(2),
			SavingsRate:              k.SavingsRate.StringFixed(2),
			CurrentTransfersIn:       k.CurrentTransfersIn.StringFixed(2),
			CurrentTransfersInCount:  k.CurrentTransfersInCount,
			CurrentTransfersOut:      k.CurrentTransfersOut.StringFixed(2),
			CurrentTransfersOutCount: k.CurrentTransfersOutCount,
			CurrentBalance:           k.CurrentBalance.StringFixed(2),
			SavingsBalance:           k.SavingsBalance.StringFixed(2),
			TotalBalance:             k.TotalBalance.StringFixed(2),
		},
		Categories:      fromCategoryTotals(d.Categories),
		Prelevements:    fromCategoryTotals(d.Prelevements),
		Monthly:         make([]MonthTotals, len(d.Monthly)),
		Savings:         make([]SavingsFlow, len(d.Savings)),
		CurrentBalances: fromBalances(d.Balances.Current),
		SavingBalances:  fromBalances(d.Balances.Saving),
		CategoryNames:   d.CategoryNames,
	}

	for i, m := range d.Monthly {
		out.Monthly[i] = MonthTotals{
			Month:           int(m.Month),
			RealIncome:      m.RealIncome.StringFixed(2),
			RealOutcome:     m.RealOutcome.StringFixed(2),
			RealPrelevement: m.RealPrelevement.StringFixed(2),
			RealNet:         m.RealNet.StringFixed(2),
		}
	}
	for _, day := range d.Daily {
		out.Daily = append(out.Daily, DayTotals{
			Day:          day.Day,
			RealIncome:   day.RealIncome.StringFixed(2),
			RealOutcome:  day.RealOutcome.StringFixed(2),
			RealNet:      day.RealNet.StringFixed(2),
			Transactions: transaction.FromModels(day.Transactions),
		})
	}
	for _, e := range d.DailyExpenses {
		out.DailyExpenses = append(out.DailyExpenses, DailyAmount{Day: e.Day, Amount: e.Amount.StringFixed(2)})
	}
	for i, s := range d.Savings {
		out.Savings[i] = SavingsFlow{
			Name:        s.Name,
			Deposits:    s.Deposits.StringFixed(2),
			Withdrawals: s.Withdrawals.StringFixed(2),
			NetChange:   s.NetChange.StringFixed(2),
		}
	}
	if out.CategoryNames == nil {
		out.CategoryNames = []string{}
	}
	return out
}

func fromCategoryTotals(in []engine.CategoryTotal) []CategoryTotal {
	out := make([]CategoryTotal, len(in))
	for i, c := range in {
		out[i] = CategoryTotal{
			Name:  c.Name,
			Total: c.Total.StringFixed(2),
			Count: c.Count,
			Share: c.Share.StringFixed(2),
		}
	}
	return out
}

func fromBalances(in []engine.AccountBalance) []AccountBalance {
	out := make([]AccountBalance, len(in))
	for i, b := range in {
		out[i] = AccountBalance{Name: b.Name, Balance: b.Balance.StringFixed(2)}
	}
	return out
}
