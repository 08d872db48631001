package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/svctracker/service_tracker_app/internal/apperrors"
	"github.com/svctracker/service_tracker_app/internal/core/domain"
	portsrepo "github.com/svctracker/service_tracker_app/internal/core/ports/repositories"
	"github.com/svctracker/service_tracker_app/internal/models"
	"github.com/svctracker/service_tracker_app/internal/utils/mapping"
)

type PgxServiceLogRepository struct {
	BaseRepository
}

func newPgxServiceLogRepository(db *pgxpool.Pool) portsrepo.ServiceLogRepositoryFacade {
	return &PgxServiceLogRepository{BaseRepository{Pool: db}}
}

// Ensure PgxServiceLogRepository implements portsrepo.ServiceLogRepositoryFacade
var _ portsrepo.ServiceLogRepositoryFacade = (*PgxServiceLogRepository)(nil)

// joinedSelect pulls each ledger row together with the owning user's current
// percentage and the catalog fields. LEFT JOINs keep orphaned rows in the
// result; the reporting layer flags them instead of dropping them.
const joinedSelect = `
    SELECT sl.log_id, sl.user_id, sl.served_at, sl.qty, sl.service_id, sl.amount_cents, sl.tip_cents, sl.payment_type,
           sl.created_at, sl.created_by, sl.last_updated_at, sl.last_updated_by,
           u.username, u.service_percentage, u.deleted_at,
           s.name, s.price_cents, s.is_active, s.deleted_at
    FROM service_logs sl
    LEFT JOIN users u ON u.user_id = sl.user_id
    LEFT JOIN services s ON s.service_id = sl.service_id`

func scanJoinedRow(row pgx.Row) (domain.ReportSourceRow, error) {
	var (
		m              models.ServiceLog
		username       sql.NullString
		percent        decimal.NullDecimal
		userDeletedAt  sql.NullTime
		serviceName    sql.NullString
		servicePrice   sql.NullInt64
		serviceActive  sql.NullBool
		serviceDeleted sql.NullTime
	)

	err := row.Scan(
		&m.LogID,
		&m.UserID,
		&m.ServedAt,
		&m.Qty,
		&m.ServiceID,
		&m.AmountCents,
		&m.TipCents,
		&m.PaymentType,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&username,
		&percent,
		&userDeletedAt,
		&serviceName,
		&servicePrice,
		&serviceActive,
		&serviceDeleted,
	)
	if err != nil {
		return domain.ReportSourceRow{}, err
	}

	src := domain.ReportSourceRow{
		Log:         mapping.ToDomainServiceLog(m),
		Username:    username.String,
		UserMissing: !username.Valid || userDeletedAt.Valid,
	}
	if percent.Valid {
		src.Percent = percent.Decimal
	}

	if m.ServiceID.Valid {
		src.ServiceName = serviceName.String
		src.ServicePriceCents = servicePrice.Int64
		src.ServiceMissing = !serviceName.Valid
		// A soft-deleted catalog item still resolves; it is flagged like a
		// deactivated one.
		src.ServiceInactive = serviceDeleted.Valid || (serviceActive.Valid && !serviceActive.Bool)
	}

	return src, nil
}

// ListForReport retrieves joined ledger rows inside the half-open interval,
// oldest first. No match yields an empty slice, not an error.
func (r *PgxServiceLogRepository) ListForReport(ctx context.Context, filter domain.ServiceLogFilter) ([]domain.ReportSourceRow, error) {
	query := joinedSelect + `
    WHERE sl.served_at >= $1 AND sl.served_at < $2`
	args := []any{filter.Range.Start, filter.Range.End}

	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		query += fmt.Sprintf(" AND sl.user_id = $%d", len(args))
	}
	if filter.ServiceID != nil {
		args = append(args, *filter.ServiceID)
		query += fmt.Sprintf(" AND sl.service_id = $%d", len(args))
	}
	if filter.PaymentType != nil {
		if *filter.PaymentType == domain.PaymentUnspecified {
			query += " AND sl.payment_type IS NULL"
		} else {
			args = append(args, string(*filter.PaymentType))
			query += fmt.Sprintf(" AND sl.payment_type = $%d", len(args))
		}
	}

	query += " ORDER BY sl.served_at ASC, sl.log_id ASC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger for report: %w", err)
	}
	defer rows.Close()

	out := []domain.ReportSourceRow{}
	for rows.Next() {
		src, err := scanJoinedRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger row: %w", err)
		}
		out = append(out, src)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating ledger rows: %w", rows.Err())
	}

	return out, nil
}

// FindRecent retrieves the most recently created ledger rows with their
// joins, newest first.
func (r *PgxServiceLogRepository) FindRecent(ctx context.Context, limit int) ([]domain.ReportSourceRow, error) {
	if limit <= 0 {
		limit = 20
	}

	query := joinedSelect + `
    ORDER BY sl.created_at DESC, sl.log_id DESC
    LIMIT $1;`

	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent ledger rows: %w", err)
	}
	defer rows.Close()

	out := []domain.ReportSourceRow{}
	for rows.Next() {
		src, err := scanJoinedRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger row: %w", err)
		}
		out = append(out, src)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating ledger rows: %w", rows.Err())
	}

	return out, nil
}

func (r *PgxServiceLogRepository) SaveServiceLog(ctx context.Context, log domain.ServiceLog) error {
	m := mapping.ToModelServiceLog(log)
	query := `
        INSERT INTO service_logs (log_id, user_id, served_at, qty, service_id, amount_cents, tip_cents, payment_type, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.LogID,
		m.UserID,
		m.ServedAt,
		m.Qty,
		m.ServiceID,
		m.AmountCents,
		m.TipCents,
		m.PaymentType,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: log entry references a missing user or service", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to save log entry: %w", err)
	}
	return nil
}

func (r *PgxServiceLogRepository) DeleteServiceLog(ctx context.Context, logID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM service_logs WHERE log_id = $1;`, logID)
	if err != nil {
		return fmt.Errorf("failed to delete log entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
