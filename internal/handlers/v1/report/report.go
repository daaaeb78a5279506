package report

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/compta-server/internal/model"
)

// ReportQuery selects the scope and period of a report.
type ReportQuery struct {
	Scope string `query:"scope" enum:"all,current,saving" default:"all" doc:"Account scope"`
	Name  string `query:"name" doc:"Account name; empty means every account of the scope kind"`
	Year  int    `query:"year" minimum:"0" doc:"Calendar year, defaults to the current year"`
	Month int    `query:"month" minimum:"0" maximum:"12" doc:"Month 1-12, 0 for the whole year"`
}

// parseReportQuery resolves defaults against now.
func parseReportQuery(q ReportQuery, now time.Time) (model.Scope, model.Period, error) {
	scope, err := model.ParseScope(q.Scope, q.Name)
	if err != nil {
		return model.Scope{}, model.Period{}, huma.NewError(http.StatusBadRequest, err.Error(), err)
	}
	year := q.Year
	if year == 0 {
		year = now.Year()
	}
	if q.Month == 0 {
		return scope, model.YearPeriod(year), nil
	}
	return scope, model.MonthPeriod(year, time.Month(q.Month)), nil
}
