package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/svctracker/service_tracker_app/internal/core/domain"
)

// CivilTimestamp is a request timestamp that accepts either a full RFC 3339
// datetime or a bare YYYY-MM-DD date. A bare date carries no time of day; the
// report resolver substitutes the day boundary.
type CivilTimestamp struct {
	Time     time.Time
	DateOnly bool
}

func (ct *CivilTimestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		ct.Time = t
		ct.DateOnly = true
		return nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return fmt.Errorf("expected an RFC 3339 datetime or a YYYY-MM-DD date, got %q", raw)
	}
	ct.Time = t
	ct.DateOnly = false
	return nil
}

// RunReportRequest defines the filter input for a report run. Period names a
// quick range; from/to are consulted only when period is "Custom" and are
// interpreted as civil datetimes in the report zone. An endpoint given as a
// bare date defaults to the start of that day for from and the end of that
// day for to.
type RunReportRequest struct {
	Period      string          `json:"period" binding:"required,quickperiod"`
	From        *CivilTimestamp `json:"from"`
	To          *CivilTimestamp `json:"to"`
	Username    string          `json:"username"`
	ServiceID   string          `json:"serviceID"`
	PaymentType *string         `json:"paymentType" binding:"omitempty,paymenttype"`
}

// ToReportCriteria converts the request into the domain filter input.
func (r RunReportRequest) ToReportCriteria() domain.ReportCriteria {
	criteria := domain.ReportCriteria{
		Period:    domain.QuickPeriod(r.Period),
		Username:  r.Username,
		ServiceID: r.ServiceID,
	}
	if r.From != nil {
		from := r.From.Time
		criteria.CustomFrom = &from
		criteria.CustomFromDateOnly = r.From.DateOnly
	}
	if r.To != nil {
		to := r.To.Time
		criteria.CustomTo = &to
		criteria.CustomToDateOnly = r.To.DateOnly
	}
	if r.PaymentType != nil {
		pt := domain.PaymentType(*r.PaymentType)
		criteria.PaymentType = &pt
	}
	return criteria
}

// ReportRowResponse is one computed row of the flat report view. Money fields
// are decimal dollars; total carries the presentation rounding.
type ReportRowResponse struct {
	DateTime           string          `json:"dateTime"`
	Username           string          `json:"username"`
	Inactive           bool            `json:"inactive"`
	ServiceName        string          `json:"serviceName,omitempty"`
	ServicePrice       decimal.Decimal `json:"servicePrice"`
	Qty                int64           `json:"qty"`
	UserPercent        decimal.Decimal `json:"userPercent"`
	ServiceAmount      decimal.Decimal `json:"serviceAmount"`
	TotalServiceAmount decimal.Decimal `json:"totalServiceAmount"`
	Tip                decimal.Decimal `json:"tip"`
	PaymentType        string          `json:"paymentType,omitempty"`
	Total              decimal.Decimal `json:"total"`
}

// UserSummaryResponse reports services completed per user.
type UserSummaryResponse struct {
	Username          string `json:"username"`
	ServicesCompleted int64  `json:"servicesCompleted"`
}

// GroupSummaryResponse is one aggregation bucket of the grouped view.
type GroupSummaryResponse struct {
	Username      string          `json:"username"`
	PaymentType   string          `json:"paymentType,omitempty"`
	UserPercent   decimal.Decimal `json:"userPercent"`
	Entries       int             `json:"entries"`
	ServiceAmount decimal.Decimal `json:"serviceAmount"`
	Tip           decimal.Decimal `json:"tip"`
	Total         decimal.Decimal `json:"total"`
}

// GrandTotalsResponse sums the whole report.
type GrandTotalsResponse struct {
	Entries       int             `json:"entries"`
	ServiceAmount decimal.Decimal `json:"serviceAmount"`
	Tip           decimal.Decimal `json:"tip"`
	Total         decimal.Decimal `json:"total"`
}

// ReportResponse is the full report payload for one run.
type ReportResponse struct {
	From    string                 `json:"from"`
	To      string                 `json:"to"`
	Rows    []ReportRowResponse    `json:"rows"`
	PerUser []UserSummaryResponse  `json:"perUser"`
	Groups  []GroupSummaryResponse `json:"groups"`
	Totals  GrandTotalsResponse    `json:"totals"`
	HasData bool                   `json:"hasData"`
}

func centsToDollars(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Shift(-2)
}

// ToReportResponse converts a domain report to its response DTO. Exact
// decimal totals are rounded to two places here, at the presentation edge.
func ToReportResponse(report *domain.Report, loc *time.Location) ReportResponse {
	response := ReportResponse{
		From:    report.Range.Start.In(loc).Format(domain.DisplayTimeLayout),
		To:      report.Range.End.In(loc).Format(domain.DisplayTimeLayout),
		Rows:    make([]ReportRowResponse, len(report.Rows)),
		PerUser: make([]UserSummaryResponse, len(report.PerUser)),
		Groups:  make([]GroupSummaryResponse, len(report.Groups)),
		HasData: report.HasData,
	}

	for i, row := range report.Rows {
		response.Rows[i] = ReportRowResponse{
			DateTime:           row.DisplayTime(),
			Username:           row.Username,
			Inactive:           row.Inactive,
			ServiceName:        row.ServiceName,
			ServicePrice:       centsToDollars(row.ServicePriceCents),
			Qty:                row.Qty,
			UserPercent:        row.Percent,
			ServiceAmount:      centsToDollars(row.UnitAmountCents),
			TotalServiceAmount: centsToDollars(row.AmountCents),
			Tip:                centsToDollars(row.TipCents),
			PaymentType:        string(row.PaymentType),
			Total:              row.TotalCents.Shift(-2).Round(2),
		}
	}

	for i, us := range report.PerUser {
		response.PerUser[i] = UserSummaryResponse{
			Username:          us.Username,
			ServicesCompleted: us.ServicesCompleted,
		}
	}

	for i, gs := range report.Groups {
		response.Groups[i] = GroupSummaryResponse{
			Username:      gs.Username,
			PaymentType:   string(gs.PaymentType),
			UserPercent:   gs.Percent,
			Entries:       gs.Entries,
			ServiceAmount: centsToDollars(gs.AmountCents),
			Tip:           centsToDollars(gs.TipCents),
			Total:         gs.TotalCents.Shift(-2).Round(2),
		}
	}

	response.Totals = GrandTotalsResponse{
		Entries:       report.Grand.Entries,
		ServiceAmount: centsToDollars(report.Grand.AmountCents),
		Tip:           centsToDollars(report.Grand.TipCents),
		Total:         report.Grand.TotalCents.Shift(-2).Round(2),
	}

	return response
}
