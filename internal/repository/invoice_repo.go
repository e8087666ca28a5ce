package repository

import (
	"context"
	"fmt"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Insert writes a new invoice row. The id is filled in by the model hook.
func (r *InvoiceRepository) Insert(ctx context.Context, invoice *models.Invoice) error {
	if err := r.db.WithContext(ctx).Create(invoice).Error; err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update replaces customer, amount and status of an invoice. Date is left alone.
func (r *InvoiceRepository) Update(ctx context.Context, id uuid.UUID, customerID uuid.UUID, amount int64, status string) error {
	err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"customer_id": customerID,
			"amount":      amount,
			"status":      status,
		}).Error
	if err != nil {
		return fmt.Errorf("update invoice %s: %w", id, err)
	}
	return nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&models.Invoice{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete invoice %s: %w", id, err)
	}
	return nil
}

// GetByID fetch a single invoice by ID
func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// List returns every invoice with its customer, newest first.
func (r *InvoiceRepository) List(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Order("date DESC").
		Find(&invoices).Error
	return invoices, err
}
