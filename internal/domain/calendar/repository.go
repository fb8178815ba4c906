package calendar

import "context"

type OrgHolidayRepository interface {
	Create(ctx context.Context, h OrgHoliday) (OrgHoliday, error)
	ListByMonth(ctx context.Context, year, month int) ([]OrgHoliday, error)
	Delete(ctx context.Context, id string) error
}
