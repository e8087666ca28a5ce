package repository

import (
	"context"
	"testing"
	"time"

	"invoice-dashboard-backend/internal/config"
	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.Open("file::memory:")
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) models.Customer {
	t.Helper()
	c := models.Customer{ID: uuid.New(), Name: name, Email: name + "@example.com"}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func day(y int, m time.Month, d int) datatypes.Date {
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func TestInvoiceRepository_InsertAssignsID(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	cust := seedCustomer(t, db, "Lee")

	inv := &models.Invoice{CustomerID: cust.ID, Amount: 1050, Status: models.StatusPending, Date: day(2024, 3, 1)}
	require.NoError(t, repo.Insert(context.Background(), inv))
	assert.NotEqual(t, uuid.Nil, inv.ID)

	got, err := repo.GetByID(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1050), got.Amount)
	assert.Equal(t, cust.ID, got.CustomerID)
	assert.Equal(t, "2024-03-01", time.Time(got.Date).Format("2006-01-02"))
}

func TestInvoiceRepository_UpdateKeepsDate(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	a := seedCustomer(t, db, "Amy")
	b := seedCustomer(t, db, "Ben")

	inv := &models.Invoice{CustomerID: a.ID, Amount: 100, Status: models.StatusPending, Date: day(2023, 12, 31)}
	require.NoError(t, repo.Insert(context.Background(), inv))

	require.NoError(t, repo.Update(context.Background(), inv.ID, b.ID, 2500, models.StatusPaid))

	got, err := repo.GetByID(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.CustomerID)
	assert.Equal(t, int64(2500), got.Amount)
	assert.Equal(t, models.StatusPaid, got.Status)
	assert.Equal(t, "2023-12-31", time.Time(got.Date).Format("2006-01-02"))
}

func TestInvoiceRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	cust := seedCustomer(t, db, "Cy")

	inv := &models.Invoice{CustomerID: cust.ID, Amount: 1, Status: models.StatusPaid, Date: day(2024, 1, 1)}
	require.NoError(t, repo.Insert(context.Background(), inv))
	require.NoError(t, repo.Delete(context.Background(), inv.ID))

	_, err := repo.GetByID(context.Background(), inv.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// deleting a missing row is not an error
	assert.NoError(t, repo.Delete(context.Background(), uuid.New()))
}

func TestInvoiceRepository_ListNewestFirstWithCustomer(t *testing.T) {
	db := newTestDB(t)
	repo := NewInvoiceRepository(db)
	cust := seedCustomer(t, db, "Dee")

	for _, d := range []datatypes.Date{day(2024, 1, 5), day(2024, 6, 1), day(2023, 2, 2)} {
		require.NoError(t, repo.Insert(context.Background(), &models.Invoice{
			CustomerID: cust.ID, Amount: 10, Status: models.StatusPending, Date: d,
		}))
	}

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2024-06-01", time.Time(list[0].Date).Format("2006-01-02"))
	assert.Equal(t, "2023-02-02", time.Time(list[2].Date).Format("2006-01-02"))
	require.NotNil(t, list[0].Customer)
	assert.Equal(t, "Dee", list[0].Customer.Name)
}

func TestCustomerRepository_ListByName(t *testing.T) {
	db := newTestDB(t)
	seedCustomer(t, db, "Zed")
	seedCustomer(t, db, "Ann")

	customers, err := NewCustomerRepository(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Ann", customers[0].Name)
}
