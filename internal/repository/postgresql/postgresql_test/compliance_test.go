package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vetanhr/payroll-backend-go/internal/domain/compliance"
	"github.com/vetanhr/payroll-backend-go/internal/repository/postgresql"
)

func draftReturn(amount string, count int) compliance.StatutoryReturn {
	return compliance.StatutoryReturn{
		Type:          compliance.ReturnTypePFECR,
		PeriodMonth:   8,
		PeriodYear:    2025,
		TotalAmount:   decimal.RequireFromString(amount),
		EmployeeCount: count,
		Status:        compliance.ReturnStatusDraft,
		GeneratedAt:   time.Now(),
	}
}

func TestComplianceRepository_UpsertReplacesDraft(t *testing.T) {
	db := getTestDB(t)
	truncateAll(t, db)
	ctx := context.Background()
	repo := postgresql.NewComplianceRepository(db)

	first, err := repo.UpsertReturn(ctx, draftReturn("3600", 2))
	require.NoError(t, err)

	second, err := repo.UpsertReturn(ctx, draftReturn("1800", 1))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "upsert must update the same row")
	assert.True(t, second.TotalAmount.Equal(decimal.RequireFromString("1800")))
	assert.Equal(t, 1, second.EmployeeCount)
}

func TestComplianceRepository_UpsertKeepsFiledRow(t *testing.T) {
	db := getTestDB(t)
	truncateAll(t, db)
	ctx := context.Background()
	repo := postgresql.NewComplianceRepository(db)

	created, err := repo.UpsertReturn(ctx, draftReturn("3600", 2))
	require.NoError(t, err)

	filed, err := repo.MarkFiled(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, compliance.ReturnStatusFiled, filed.Status)
	require.NotNil(t, filed.FiledAt)

	// regeneration must not disturb a filed return
	after, err := repo.UpsertReturn(ctx, draftReturn("9999", 5))
	require.NoError(t, err)
	assert.Equal(t, created.ID, after.ID)
	assert.Equal(t, compliance.ReturnStatusFiled, after.Status)
	assert.True(t, after.TotalAmount.Equal(decimal.RequireFromString("3600")))
}

func TestComplianceRepository_MarkFiledTwice(t *testing.T) {
	db := getTestDB(t)
	truncateAll(t, db)
	ctx := context.Background()
	repo := postgresql.NewComplianceRepository(db)

	created, err := repo.UpsertReturn(ctx, draftReturn("400", 2))
	require.NoError(t, err)

	_, err = repo.MarkFiled(ctx, created.ID)
	require.NoError(t, err)

	_, err = repo.MarkFiled(ctx, created.ID)
	assert.ErrorIs(t, err, compliance.ErrReturnAlreadyFiled)
}

func TestComplianceRepository_ListFilters(t *testing.T) {
	db := getTestDB(t)
	truncateAll(t, db)
	ctx := context.Background()
	repo := postgresql.NewComplianceRepository(db)

	_, err := repo.UpsertReturn(ctx, draftReturn("3600", 2))
	require.NoError(t, err)

	esi := draftReturn("150", 1)
	esi.Type = compliance.ReturnTypeESIReturn
	_, err = repo.UpsertReturn(ctx, esi)
	require.NoError(t, err)

	pfType := string(compliance.ReturnTypePFECR)
	result, err := repo.List(ctx, compliance.ReturnFilter{Type: &pfType})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, compliance.ReturnTypePFECR, result[0].Type)

	month := 8
	year := 2025
	result, err = repo.List(ctx, compliance.ReturnFilter{Month: &month, Year: &year})
	require.NoError(t, err)
	assert.Len(t, result, 2)
}
