package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DisplayTimeLayout renders report timestamps with an explicit 12-hour
// meridiem, always in the configured report zone.
const DisplayTimeLayout = "01/02/2006 03:04 PM"

// ServiceLogFilter is the query contract handed to the ledger store: a
// resolved UTC interval plus optional equality predicates. User filters are
// expressed by stable ID, never by display name.
type ServiceLogFilter struct {
	Range       TimeRange
	UserID      *string
	ServiceID   *string
	PaymentType *PaymentType
}

// ReportSourceRow is one raw ledger row joined with the owning user's current
// percentage and, for catalog-priced rows, the catalog fields. Missing joins
// (deleted user, deleted catalog item) are represented, not dropped, so that
// report totals stay reconcilable with raw row counts.
type ReportSourceRow struct {
	Log ServiceLog

	Username    string
	Percent     decimal.Decimal
	UserMissing bool // owning account deleted or not found

	ServiceName       string
	ServicePriceCents int64
	ServiceInactive   bool // catalog item deactivated
	ServiceMissing    bool // catalog reference no longer resolves
}

// ComputedRow is one fully computed report row. Money fields are integer
// minor units; EarningCents and TotalCents stay exact decimals so that
// summing rows and computing from group sums agree to the minor unit.
// Never persisted; recomputed on every report run.
type ComputedRow struct {
	LogID     string
	ServedAt  time.Time // UTC instant
	LocalTime time.Time // ServedAt in the fixed report zone

	Username string
	Inactive bool // orphaned user or inactive/deleted catalog item

	ServiceName       string // empty for inline-amount rows
	ServicePriceCents int64  // 0 for inline-amount rows

	Qty             int64
	Percent         decimal.Decimal
	UnitAmountCents int64 // catalog price or inline per-entry amount
	AmountCents     int64 // UnitAmountCents × Qty
	TipCents        int64
	PaymentType     PaymentType

	EarningCents decimal.Decimal // AmountCents × Percent/100, exact
	TotalCents   decimal.Decimal // EarningCents + TipCents, exact
}

// DisplayTime renders the row timestamp for tables and exports.
func (r ComputedRow) DisplayTime() string {
	return r.LocalTime.Format(DisplayTimeLayout)
}

// ComputeRow is the pure earnings transform: one joined ledger row in, one
// computed row out. The percentage multiply is held exact (shift by two
// decimal places, never a rounding division) so it distributes over sums.
func ComputeRow(src ReportSourceRow, loc *time.Location) ComputedRow {
	log := src.Log

	var unit int64
	if log.CatalogPriced() {
		unit = src.ServicePriceCents
	} else if log.AmountCents != nil {
		unit = *log.AmountCents
	}
	amount := unit * log.Qty

	percent := src.Percent
	if src.UserMissing {
		percent = decimal.Zero
	}

	earning := decimal.NewFromInt(amount).Mul(percent).Shift(-2)
	total := earning.Add(decimal.NewFromInt(log.TipCents))

	return ComputedRow{
		LogID:             log.LogID,
		ServedAt:          log.ServedAt.UTC(),
		LocalTime:         log.ServedAt.In(loc),
		Username:          src.Username,
		Inactive:          src.UserMissing || src.ServiceMissing || (log.CatalogPriced() && src.ServiceInactive),
		ServiceName:       src.ServiceName,
		ServicePriceCents: src.ServicePriceCents,
		Qty:               log.Qty,
		Percent:           percent,
		UnitAmountCents:   unit,
		AmountCents:       amount,
		TipCents:          log.TipCents,
		PaymentType:       log.PaymentType,
		EarningCents:      earning,
		TotalCents:        total,
	}
}

// ComputeRows applies ComputeRow across a retrieval-ordered source slice.
func ComputeRows(src []ReportSourceRow, loc *time.Location) []ComputedRow {
	rows := make([]ComputedRow, len(src))
	for i, s := range src {
		rows[i] = ComputeRow(s, loc)
	}
	return rows
}

// UserSummary counts services completed per user. The count is the sum of
// quantities, not the row count: an entry with Qty 3 completed three services.
type UserSummary struct {
	Username          string
	ServicesCompleted int64
}

// GroupSummary aggregates per (user, payment type, percentage). Percentage is
// a grouping key for schema-evolution safety even though the current design
// yields one percentage per user per run.
type GroupSummary struct {
	Username    string
	PaymentType PaymentType
	Percent     decimal.Decimal
	Entries     int
	AmountCents int64
	TipCents    int64
	TotalCents  decimal.Decimal
}

// GrandTotals sums the whole flat view, independent of grouping.
type GrandTotals struct {
	Entries     int
	AmountCents int64
	TipCents    int64
	TotalCents  decimal.Decimal
}

// Report is the full aggregation result for one run. HasData distinguishes an
// empty result set from a populated one that happens to sum to zero.
type Report struct {
	Range   TimeRange     // resolved UTC interval the run covered
	Rows    []ComputedRow // sorted by timestamp descending for display
	PerUser []UserSummary
	Groups  []GroupSummary
	Grand   GrandTotals
	HasData bool
}

// Aggregate builds the report views from computed rows. Input order does not
// affect any sum; the output orderings are deterministic (timestamp descending
// for the flat view, username / payment type / percentage ascending for the
// summaries).
func Aggregate(rows []ComputedRow) Report {
	report := Report{HasData: len(rows) > 0, Grand: GrandTotals{TotalCents: decimal.Zero}}
	if len(rows) == 0 {
		return report
	}

	flat := make([]ComputedRow, len(rows))
	copy(flat, rows)
	sort.SliceStable(flat, func(i, j int) bool {
		if !flat[i].ServedAt.Equal(flat[j].ServedAt) {
			return flat[i].ServedAt.After(flat[j].ServedAt)
		}
		return flat[i].LogID > flat[j].LogID
	})
	report.Rows = flat

	perUser := map[string]*UserSummary{}
	type groupKey struct {
		username    string
		paymentType PaymentType
		percent     string
	}
	groups := map[groupKey]*GroupSummary{}

	grand := GrandTotals{TotalCents: decimal.Zero}
	for _, row := range rows {
		us, ok := perUser[row.Username]
		if !ok {
			us = &UserSummary{Username: row.Username}
			perUser[row.Username] = us
		}
		us.ServicesCompleted += row.Qty

		key := groupKey{row.Username, row.PaymentType, row.Percent.String()}
		gs, ok := groups[key]
		if !ok {
			gs = &GroupSummary{
				Username:    row.Username,
				PaymentType: row.PaymentType,
				Percent:     row.Percent,
				TotalCents:  decimal.Zero,
			}
			groups[key] = gs
		}
		gs.Entries++
		gs.AmountCents += row.AmountCents
		gs.TipCents += row.TipCents
		gs.TotalCents = gs.TotalCents.Add(row.TotalCents)

		grand.Entries++
		grand.AmountCents += row.AmountCents
		grand.TipCents += row.TipCents
		grand.TotalCents = grand.TotalCents.Add(row.TotalCents)
	}
	report.Grand = grand

	for _, us := range perUser {
		report.PerUser = append(report.PerUser, *us)
	}
	sort.Slice(report.PerUser, func(i, j int) bool {
		return report.PerUser[i].Username < report.PerUser[j].Username
	})

	for _, gs := range groups {
		report.Groups = append(report.Groups, *gs)
	}
	sort.Slice(report.Groups, func(i, j int) bool {
		a, b := report.Groups[i], report.Groups[j]
		if a.Username != b.Username {
			return a.Username < b.Username
		}
		if a.PaymentType != b.PaymentType {
			return a.PaymentType < b.PaymentType
		}
		return a.Percent.LessThan(b.Percent)
	})

	return report
}
