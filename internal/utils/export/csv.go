// Package export renders report views as CSV for download.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/svctracker/service_tracker_app/internal/core/domain"
)

// ReportCSVHeader is the fixed column set of the flat-view export.
var ReportCSVHeader = []string{
	"Date & Time",
	"User",
	"Service",
	"Service Price",
	"Inactive",
	"Qty",
	"User Percent",
	"Service Amount",
	"Total Service Amount",
	"Tip",
	"Payment Type",
	"Total",
}

// MoneyString renders a dollar amount for export. Values representable in
// two decimal places are fixed to two; anything finer keeps full precision
// so that re-importing the file reproduces the exact total.
func MoneyString(d decimal.Decimal) string {
	if d.Equal(d.Round(2)) {
		return d.StringFixed(2)
	}
	return d.String()
}

func centsString(cents int64) string {
	return decimal.NewFromInt(cents).Shift(-2).StringFixed(2)
}

// WriteReportCSV writes the report's flat view to w, one record per computed
// row in display order, preceded by the header. An empty report produces a
// header-only file.
func WriteReportCSV(w io.Writer, report *domain.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ReportCSVHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range report.Rows {
		record := []string{
			row.DisplayTime(),
			row.Username,
			row.ServiceName,
			centsString(row.ServicePriceCents),
			strconv.FormatBool(row.Inactive),
			strconv.FormatInt(row.Qty, 10),
			row.Percent.String(),
			centsString(row.UnitAmountCents),
			centsString(row.AmountCents),
			centsString(row.TipCents),
			string(row.PaymentType),
			MoneyString(row.TotalCents.Shift(-2)),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReportCSVBytes renders the report's flat view as an in-memory CSV file.
func ReportCSVBytes(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteReportCSV(&buf, report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReportCSVRow is one parsed record of an exported file.
type ReportCSVRow struct {
	DateTime           string
	Username           string
	ServiceName        string
	ServicePrice       decimal.Decimal
	Inactive           bool
	Qty                int64
	UserPercent        decimal.Decimal
	ServiceAmount      decimal.Decimal
	TotalServiceAmount decimal.Decimal
	Tip                decimal.Decimal
	PaymentType        string
	Total              decimal.Decimal
}

// ParseReportCSV reads an exported file back into typed rows. The header is
// validated strictly; column drift here means a consumer's import breaks.
func ParseReportCSV(r io.Reader) ([]ReportCSVRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(ReportCSVHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	for i, col := range ReportCSVHeader {
		if header[i] != col {
			return nil, fmt.Errorf("unexpected csv column %d: got %q, want %q", i, header[i], col)
		}
	}

	var rows []ReportCSVRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv record: %w", err)
		}

		inactive, err := strconv.ParseBool(record[4])
		if err != nil {
			return nil, fmt.Errorf("invalid inactive flag %q: %w", record[4], err)
		}
		qty, err := strconv.ParseInt(record[5], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid qty %q: %w", record[5], err)
		}

		row := ReportCSVRow{
			DateTime:    record[0],
			Username:    record[1],
			ServiceName: record[2],
			Inactive:    inactive,
			Qty:         qty,
			PaymentType: record[10],
		}
		for _, field := range []struct {
			dst *decimal.Decimal
			idx int
		}{
			{&row.ServicePrice, 3},
			{&row.UserPercent, 6},
			{&row.ServiceAmount, 7},
			{&row.TotalServiceAmount, 8},
			{&row.Tip, 9},
			{&row.Total, 11},
		} {
			d, err := decimal.NewFromString(record[field.idx])
			if err != nil {
				return nil, fmt.Errorf("invalid decimal %q in column %d: %w", record[field.idx], field.idx, err)
			}
			*field.dst = d
		}

		rows = append(rows, row)
	}
	return rows, nil
}
