package domain_test

import (
	"testing"
	"time"

	"github.com/svctracker/service_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func sourceRow(username string, percent int64, servedAt time.Time, log domain.ServiceLog) domain.ReportSourceRow {
	log.ServedAt = servedAt
	return domain.ReportSourceRow{
		Log:      log,
		Username: username,
		Percent:  decimal.NewFromInt(percent),
	}
}

func TestComputeRow_InlineAmount(t *testing.T) {
	loc := reportZone(t)
	servedAt := time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC)

	// alice, 50%, qty=1, $40.00, tip $5.00, Credit.
	src := sourceRow("alice", 50, servedAt, domain.ServiceLog{
		LogID:       "log-1",
		UserID:      "user-1",
		Qty:         1,
		AmountCents: int64Ptr(4000),
		TipCents:    500,
		PaymentType: domain.PaymentCredit,
	})

	row := domain.ComputeRow(src, loc)

	assert.Equal(t, int64(4000), row.UnitAmountCents)
	assert.Equal(t, int64(4000), row.AmountCents)
	assert.Equal(t, int64(500), row.TipCents)
	assert.True(t, row.EarningCents.Equal(decimal.NewFromInt(2000)), "earning %s", row.EarningCents)
	assert.True(t, row.TotalCents.Equal(decimal.NewFromInt(2500)), "total %s", row.TotalCents)
	assert.False(t, row.Inactive)
	assert.Equal(t, "03/04/2024 10:00 AM", row.DisplayTime(), "UTC 15:00 is 10:00 AM Eastern in March")
}

func TestComputeRow_QtyScalesInlineAmount(t *testing.T) {
	loc := reportZone(t)
	src := sourceRow("alice", 100, time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC), domain.ServiceLog{
		LogID:       "log-2",
		UserID:      "user-1",
		Qty:         3,
		AmountCents: int64Ptr(1250),
		TipCents:    0,
	})

	row := domain.ComputeRow(src, loc)
	assert.Equal(t, int64(1250), row.UnitAmountCents)
	assert.Equal(t, int64(3750), row.AmountCents, "stored per-entry amount scales by qty")
}

func TestComputeRow_CatalogPriced(t *testing.T) {
	loc := reportZone(t)
	src := domain.ReportSourceRow{
		Log: domain.ServiceLog{
			LogID:     "log-3",
			UserID:    "user-2",
			ServedAt:  time.Date(2024, 3, 5, 18, 30, 0, 0, time.UTC),
			Qty:       2,
			ServiceID: strPtr("svc-1"),
			TipCents:  300,
		},
		Username:          "bob",
		Percent:           decimal.NewFromInt(60),
		ServiceName:       "Haircut",
		ServicePriceCents: 2500,
	}

	row := domain.ComputeRow(src, loc)
	assert.Equal(t, "Haircut", row.ServiceName)
	assert.Equal(t, int64(2500), row.UnitAmountCents)
	assert.Equal(t, int64(5000), row.AmountCents)
	// 5000 × 0.60 + 300
	assert.True(t, row.TotalCents.Equal(decimal.NewFromInt(3300)), "total %s", row.TotalCents)
}

func TestComputeRow_OrphanedRowsAreFlaggedNotDropped(t *testing.T) {
	loc := reportZone(t)

	t.Run("deleted user zeroes earning but keeps amount and tip", func(t *testing.T) {
		src := domain.ReportSourceRow{
			Log: domain.ServiceLog{
				LogID:       "log-4",
				UserID:      "gone",
				ServedAt:    time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
				Qty:         1,
				AmountCents: int64Ptr(2000),
				TipCents:    100,
			},
			UserMissing: true,
			Percent:     decimal.NewFromInt(75), // stale join value must be ignored
		}
		row := domain.ComputeRow(src, loc)
		assert.True(t, row.Inactive)
		assert.Equal(t, int64(2000), row.AmountCents)
		assert.True(t, row.EarningCents.IsZero())
		assert.True(t, row.TotalCents.Equal(decimal.NewFromInt(100)))
	})

	t.Run("inactive catalog item flags the row", func(t *testing.T) {
		src := domain.ReportSourceRow{
			Log: domain.ServiceLog{
				LogID:     "log-5",
				UserID:    "user-2",
				ServedAt:  time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
				Qty:       1,
				ServiceID: strPtr("svc-old"),
			},
			Username:          "bob",
			Percent:           decimal.NewFromInt(100),
			ServiceName:       "Retired",
			ServicePriceCents: 1000,
			ServiceInactive:   true,
		}
		row := domain.ComputeRow(src, loc)
		assert.True(t, row.Inactive)
		assert.Equal(t, int64(1000), row.AmountCents)
	})
}

func TestAggregate_SingleRowScenario(t *testing.T) {
	loc := reportZone(t)
	src := sourceRow("alice", 50, time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC), domain.ServiceLog{
		LogID:       "log-1",
		UserID:      "user-1",
		Qty:         1,
		AmountCents: int64Ptr(4000),
		TipCents:    500,
		PaymentType: domain.PaymentCredit,
	})

	report := domain.Aggregate(domain.ComputeRows([]domain.ReportSourceRow{src}, loc))

	require.True(t, report.HasData)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, int64(4000), report.Grand.AmountCents)
	assert.Equal(t, int64(500), report.Grand.TipCents)
	assert.True(t, report.Grand.TotalCents.Equal(decimal.NewFromInt(2500)))

	require.Len(t, report.PerUser, 1)
	assert.Equal(t, "alice", report.PerUser[0].Username)
	assert.Equal(t, int64(1), report.PerUser[0].ServicesCompleted)

	require.Len(t, report.Groups, 1)
	assert.Equal(t, domain.PaymentCredit, report.Groups[0].PaymentType)
	assert.True(t, report.Groups[0].TotalCents.Equal(report.Grand.TotalCents))
}

func TestAggregate_PerPaymentTypeGroups(t *testing.T) {
	loc := reportZone(t)
	base := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	rows := domain.ComputeRows([]domain.ReportSourceRow{
		sourceRow("bob", 100, base, domain.ServiceLog{
			LogID: "a", UserID: "u", Qty: 1, AmountCents: int64Ptr(2000), TipCents: 0, PaymentType: domain.PaymentCash,
		}),
		sourceRow("bob", 100, base.Add(time.Hour), domain.ServiceLog{
			LogID: "b", UserID: "u", Qty: 1, AmountCents: int64Ptr(3000), TipCents: 200, PaymentType: domain.PaymentCredit,
		}),
	}, loc)

	report := domain.Aggregate(rows)

	require.Len(t, report.Groups, 2)
	// Deterministic ordering: Cash sorts before Credit.
	assert.Equal(t, domain.PaymentCash, report.Groups[0].PaymentType)
	assert.Equal(t, domain.PaymentCredit, report.Groups[1].PaymentType)
	assert.True(t, report.Grand.TotalCents.Equal(decimal.NewFromInt(5200)), "20 + 30 + 2 = 52.00")

	require.Len(t, report.PerUser, 1)
	assert.Equal(t, int64(2), report.PerUser[0].ServicesCompleted)
}

func TestAggregate_TotalsReconcileAcrossLevels(t *testing.T) {
	loc := reportZone(t)
	base := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	// Fractional percentage exercises the no-drift requirement: summing row
	// totals must equal computing the total from pre-summed amount and tip.
	percent := decimal.RequireFromString("33.33")
	var src []domain.ReportSourceRow
	amounts := []int64{1999, 2345, 101, 7777, 50}
	for i, amt := range amounts {
		log := domain.ServiceLog{
			LogID:       string(rune('a' + i)),
			UserID:      "u",
			Qty:         1,
			AmountCents: int64Ptr(amt),
			TipCents:    int64(i * 7),
			PaymentType: domain.PaymentCash,
		}
		log.ServedAt = base.Add(time.Duration(i) * time.Minute)
		src = append(src, domain.ReportSourceRow{Log: log, Username: "carol", Percent: percent})
	}

	report := domain.Aggregate(domain.ComputeRows(src, loc))

	require.Len(t, report.Groups, 1)
	group := report.Groups[0]

	fromSums := decimal.NewFromInt(group.AmountCents).Mul(percent).Shift(-2).
		Add(decimal.NewFromInt(group.TipCents))
	assert.True(t, group.TotalCents.Equal(fromSums),
		"row-wise sum %s != group-computed %s", group.TotalCents, fromSums)
	assert.True(t, report.Grand.TotalCents.Equal(group.TotalCents))
}

func TestAggregate_FlatViewSortedDescending(t *testing.T) {
	loc := reportZone(t)
	base := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	var src []domain.ReportSourceRow
	for i := 0; i < 4; i++ {
		log := domain.ServiceLog{
			LogID: string(rune('a' + i)), UserID: "u", Qty: 1, AmountCents: int64Ptr(100),
		}
		log.ServedAt = base.Add(time.Duration(i) * time.Hour)
		src = append(src, domain.ReportSourceRow{Log: log, Username: "dana", Percent: decimal.NewFromInt(100)})
	}

	report := domain.Aggregate(domain.ComputeRows(src, loc))
	for i := 1; i < len(report.Rows); i++ {
		assert.False(t, report.Rows[i-1].ServedAt.Before(report.Rows[i].ServedAt),
			"flat view must be timestamp descending")
	}
}

func TestAggregate_EmptyDistinctFromZero(t *testing.T) {
	loc := reportZone(t)

	empty := domain.Aggregate(nil)
	assert.False(t, empty.HasData)
	assert.Empty(t, empty.Rows)
	assert.True(t, empty.Grand.TotalCents.IsZero())

	// A populated result whose earnings happen to be zero still has data.
	src := sourceRow("erin", 0, time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC), domain.ServiceLog{
		LogID: "z", UserID: "u", Qty: 1, AmountCents: int64Ptr(1000), TipCents: 0,
	})
	zeroed := domain.Aggregate(domain.ComputeRows([]domain.ReportSourceRow{src}, loc))
	assert.True(t, zeroed.HasData)
	assert.True(t, zeroed.Grand.TotalCents.IsZero())
}

func TestAggregate_Idempotent(t *testing.T) {
	loc := reportZone(t)
	src := []domain.ReportSourceRow{
		sourceRow("alice", 50, time.Date(2024, 3, 4, 15, 0, 0, 0, time.UTC), domain.ServiceLog{
			LogID: "log-1", UserID: "u", Qty: 2, AmountCents: int64Ptr(4000), TipCents: 500, PaymentType: domain.PaymentCredit,
		}),
		sourceRow("bob", 100, time.Date(2024, 3, 4, 16, 0, 0, 0, time.UTC), domain.ServiceLog{
			LogID: "log-2", UserID: "v", Qty: 1, AmountCents: int64Ptr(3000), TipCents: 0, PaymentType: domain.PaymentCash,
		}),
	}

	first := domain.Aggregate(domain.ComputeRows(src, loc))
	second := domain.Aggregate(domain.ComputeRows(src, loc))
	assert.Equal(t, first, second)
}
