package repositories

import (
	"testing"
	"time"

	"rental-backoffice/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// The wallet invariant depends on postgres taking a FOR UPDATE row lock on
// the statement and wallet reads. These tests run the repositories against
// the postgres dialector over sqlmock and only match SELECTs that carry the
// locking clause, so a regression to an unlocked read fails the expectation.
func setupPostgresMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gormDB, mock
}

func TestFinalizeAndApplyToWallet_LocksStatementAndWalletRows(t *testing.T) {
	gormDB, mock := setupPostgresMockDB(t)
	repo := NewStatementRepository(gormDB)

	statementID := uuid.New()
	ownerID := uuid.New()
	walletID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "statements" WHERE id = \$1 .*FOR UPDATE`).
		WithArgs(statementID, 1).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_id", "period_start", "period_end", "status",
			"display_currency", "owner_commission", "net_to_owner",
			"created_at", "updated_at",
		}).AddRow(
			statementID, ownerID, now.AddDate(0, -1, 0), now, "draft",
			"GHS", "80", "200", now, now,
		))
	mock.ExpectQuery(`SELECT \* FROM "owner_wallets" WHERE owner_id = \$1 .*FOR UPDATE`).
		WithArgs(ownerID, 1).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_id", "current_balance", "commissions_payable",
			"currency", "created_at", "updated_at",
		}).AddRow(walletID, ownerID, "100", "50", "GHS", now, now))
	mock.ExpectExec(`UPDATE "statements" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "owner_wallets" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	statement, wallet, err := repo.FinalizeAndApplyToWallet(statementID)
	require.NoError(t, err)

	assert.Equal(t, "finalized", statement.Status)
	assert.True(t, wallet.CurrentBalance.Equal(decimal.NewFromInt(300)))
	assert.True(t, wallet.CommissionsPayable.Equal(decimal.Zero))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteDraft_LocksStatementRow(t *testing.T) {
	gormDB, mock := setupPostgresMockDB(t)
	repo := NewStatementRepository(gormDB)

	statementID := uuid.New()
	ownerID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "statements" WHERE id = \$1 .*FOR UPDATE`).
		WithArgs(statementID, 1).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_id", "period_start", "period_end", "status",
			"display_currency", "created_at", "updated_at",
		}).AddRow(statementID, ownerID, now.AddDate(0, -1, 0), now, "draft", "GHS", now, now))
	mock.ExpectExec(`DELETE FROM "statement_lines" WHERE statement_id = \$1`).
		WithArgs(statementID).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "statements" WHERE "statements"\."id" = \$1`).
		WithArgs(statementID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteDraft(statementID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyPayout_LocksWalletRow(t *testing.T) {
	gormDB, mock := setupPostgresMockDB(t)
	repo := NewWalletRepository(gormDB)

	ownerID := uuid.New()
	walletID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "owner_wallets" WHERE owner_id = \$1 .*FOR UPDATE`).
		WithArgs(ownerID, 1).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_id", "current_balance", "commissions_payable",
			"currency", "created_at", "updated_at",
		}).AddRow(walletID, ownerID, "500", "0", "GHS", now, now))
	mock.ExpectExec(`UPDATE "owner_wallets" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "payouts"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	payout := &models.Payout{
		OwnerID:  ownerID,
		Amount:   decimal.NewFromInt(200),
		Currency: "GHS",
		Method:   models.PayoutMethodMobileMoney,
	}

	wallet, err := repo.ApplyPayout(payout)
	require.NoError(t, err)

	assert.True(t, wallet.CurrentBalance.Equal(decimal.NewFromInt(300)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddCommissionPayable_LocksWalletRow(t *testing.T) {
	gormDB, mock := setupPostgresMockDB(t)
	repo := NewWalletRepository(gormDB)

	ownerID := uuid.New()
	walletID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "owner_wallets" WHERE owner_id = \$1 .*FOR UPDATE`).
		WithArgs(ownerID, 1).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "owner_id", "current_balance", "commissions_payable",
			"currency", "created_at", "updated_at",
		}).AddRow(walletID, ownerID, "0", "25", "GHS", now, now))
	mock.ExpectExec(`UPDATE "owner_wallets" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.AddCommissionPayable(ownerID, decimal.NewFromInt(75))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
