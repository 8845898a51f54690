package database

import (
	"fmt"
	"testing"
	"time"

	"rental-backoffice/internal/config"
	"rental-backoffice/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestOwner(t *testing.T, db *DB, name string) *models.Owner {
	t.Helper()

	owner := &models.Owner{
		Name:              name,
		Email:             fmt.Sprintf("%s@example.com", name),
		PreferredCurrency: "GHS",
	}

	if err := db.Create(owner).Error; err != nil {
		t.Fatalf("failed to create test owner: %v", err)
	}

	return owner
}

func CreateTestProperty(t *testing.T, db *DB, owner *models.Owner, rate float64) *models.Property {
	t.Helper()

	property := &models.Property{
		OwnerID:               owner.ID,
		Name:                  fmt.Sprintf("%s Villa", owner.Name),
		DefaultCommissionRate: decimal.NewFromFloat(rate),
	}

	if err := db.Create(property).Error; err != nil {
		t.Fatalf("failed to create test property: %v", err)
	}

	return property
}

func CreateTestBooking(t *testing.T, db *DB, property *models.Property, amount float64, receivedBy string) *models.Booking {
	t.Helper()

	checkIn := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	booking := &models.Booking{
		PropertyID:        property.ID,
		OwnerID:           property.OwnerID,
		GuestName:         "Test Guest",
		CheckInDate:       checkIn,
		CheckOutDate:      checkIn.AddDate(0, 0, 4),
		Currency:          "GHS",
		BaseAmount:        decimal.NewFromFloat(amount),
		PaymentReceivedBy: receivedBy,
		Status:            models.BookingStatusCompleted,
	}

	if err := db.Create(booking).Error; err != nil {
		t.Fatalf("failed to create test booking: %v", err)
	}

	return booking
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"statement_lines",
		"statements",
		"payouts",
		"owner_wallets",
		"expenses",
		"bookings",
		"properties",
		"owners",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
