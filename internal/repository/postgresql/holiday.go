package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/vetanhr/payroll-backend-go/internal/domain/calendar"
	"github.com/vetanhr/payroll-backend-go/internal/pkg/database"
)

type orgHolidayRepositoryImpl struct {
	db *database.DB
}

func NewOrgHolidayRepository(db *database.DB) calendar.OrgHolidayRepository {
	return &orgHolidayRepositoryImpl{db: db}
}

// Create implements calendar.OrgHolidayRepository.
func (o *orgHolidayRepositoryImpl) Create(ctx context.Context, h calendar.OrgHoliday) (calendar.OrgHoliday, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		INSERT INTO org_holidays (year, month, day, name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, year, month, day, name, created_at
	`

	var created calendar.OrgHoliday
	err := q.QueryRow(ctx, query, h.Year, h.Month, h.Day, h.Name).Scan(
		&created.ID, &created.Year, &created.Month, &created.Day, &created.Name, &created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return calendar.OrgHoliday{}, calendar.ErrHolidayExists
		}
		return calendar.OrgHoliday{}, fmt.Errorf("failed to create organization holiday: %w", err)
	}
	return created, nil
}

// ListByMonth implements calendar.OrgHolidayRepository.
func (o *orgHolidayRepositoryImpl) ListByMonth(ctx context.Context, year, month int) ([]calendar.OrgHoliday, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT id, year, month, day, name, created_at
		FROM org_holidays
		WHERE year = $1 AND month = $2
		ORDER BY day
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list organization holidays: %w", err)
	}
	defer rows.Close()

	var holidays []calendar.OrgHoliday
	for rows.Next() {
		var h calendar.OrgHoliday
		if err := rows.Scan(&h.ID, &h.Year, &h.Month, &h.Day, &h.Name, &h.CreatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}

// Delete implements calendar.OrgHolidayRepository.
func (o *orgHolidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, o.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM org_holidays WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return calendar.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete organization holiday %s: %w", id, err)
	}
	return nil
}
