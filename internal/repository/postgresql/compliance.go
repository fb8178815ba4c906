package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/vetanhr/payroll-backend-go/internal/domain/compliance"
	"github.com/vetanhr/payroll-backend-go/internal/pkg/database"
)

type complianceRepositoryImpl struct {
	db *database.DB
}

func NewComplianceRepository(db *database.DB) compliance.ComplianceRepository {
	return &complianceRepositoryImpl{db: db}
}

const returnColumns = `id, type, period_month, period_year, total_amount, employee_count,
		status, generated_at, filed_at, created_at, updated_at`

// UpsertReturn implements compliance.ComplianceRepository. A filed return is
// never overwritten; the conflict update only touches drafts and the stored
// row is returned either way.
func (c *complianceRepositoryImpl) UpsertReturn(ctx context.Context, r compliance.StatutoryReturn) (compliance.StatutoryReturn, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO statutory_returns (
			type, period_month, period_year, total_amount, employee_count, status, generated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (type, period_month, period_year)
		DO UPDATE SET
			total_amount = EXCLUDED.total_amount,
			employee_count = EXCLUDED.employee_count,
			generated_at = EXCLUDED.generated_at,
			updated_at = NOW()
		WHERE statutory_returns.status = 'draft'
		RETURNING ` + returnColumns

	stored, err := scanReturn(q.QueryRow(ctx, query,
		r.Type, r.PeriodMonth, r.PeriodYear, r.TotalAmount, r.EmployeeCount, r.Status, r.GeneratedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// already filed, keep the filed row untouched
			return c.getByPeriodType(ctx, r.Type, r.PeriodMonth, r.PeriodYear)
		}
		return compliance.StatutoryReturn{}, fmt.Errorf("failed to upsert statutory return: %w", err)
	}
	return stored, nil
}

// GetByID implements compliance.ComplianceRepository.
func (c *complianceRepositoryImpl) GetByID(ctx context.Context, id string) (compliance.StatutoryReturn, error) {
	q := GetQuerier(ctx, c.db)

	query := `SELECT ` + returnColumns + ` FROM statutory_returns WHERE id = $1`

	r, err := scanReturn(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return compliance.StatutoryReturn{}, compliance.ErrReturnNotFound
		}
		return compliance.StatutoryReturn{}, fmt.Errorf("failed to get statutory return %s: %w", id, err)
	}
	return r, nil
}

// List implements compliance.ComplianceRepository.
func (c *complianceRepositoryImpl) List(ctx context.Context, filter compliance.ReturnFilter) ([]compliance.StatutoryReturn, error) {
	q := GetQuerier(ctx, c.db)

	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("period_month = $%d", argPos))
		args = append(args, *filter.Month)
		argPos++
	}
	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("period_year = $%d", argPos))
		args = append(args, *filter.Year)
		argPos++
	}
	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argPos))
		args = append(args, *filter.Type)
		argPos++
	}

	query := `SELECT ` + returnColumns + ` FROM statutory_returns`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY period_year DESC, period_month DESC, type"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list statutory returns: %w", err)
	}
	defer rows.Close()

	var returns []compliance.StatutoryReturn
	for rows.Next() {
		r, err := scanReturn(rows)
		if err != nil {
			return nil, err
		}
		returns = append(returns, r)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return returns, nil
}

// MarkFiled implements compliance.ComplianceRepository.
func (c *complianceRepositoryImpl) MarkFiled(ctx context.Context, id string) (compliance.StatutoryReturn, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		UPDATE statutory_returns
		SET status = 'filed', filed_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'draft'
		RETURNING ` + returnColumns

	r, err := scanReturn(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := c.GetByID(ctx, id); getErr == nil {
				return compliance.StatutoryReturn{}, compliance.ErrReturnAlreadyFiled
			}
			return compliance.StatutoryReturn{}, compliance.ErrReturnNotFound
		}
		return compliance.StatutoryReturn{}, fmt.Errorf("failed to file statutory return %s: %w", id, err)
	}
	return r, nil
}

func (c *complianceRepositoryImpl) getByPeriodType(ctx context.Context, returnType compliance.ReturnType, month, year int) (compliance.StatutoryReturn, error) {
	q := GetQuerier(ctx, c.db)

	query := `SELECT ` + returnColumns + `
		FROM statutory_returns
		WHERE type = $1 AND period_month = $2 AND period_year = $3`

	r, err := scanReturn(q.QueryRow(ctx, query, returnType, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return compliance.StatutoryReturn{}, compliance.ErrReturnNotFound
		}
		return compliance.StatutoryReturn{}, fmt.Errorf("failed to get statutory return: %w", err)
	}
	return r, nil
}

func scanReturn(row pgx.Row) (compliance.StatutoryReturn, error) {
	var r compliance.StatutoryReturn
	err := row.Scan(
		&r.ID, &r.Type, &r.PeriodMonth, &r.PeriodYear, &r.TotalAmount, &r.EmployeeCount,
		&r.Status, &r.GeneratedAt, &r.FiledAt, &r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}
