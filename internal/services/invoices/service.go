package invoices

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/validation"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	msgCreateInvalid = "Missing Fields. Failed to Create Invoice."
	msgUpdateInvalid = "Missing Fields. Failed to Update Invoice."
	msgCreateFailed  = "Database Error: Failed to Create Invoice."
	msgUpdateFailed  = "Database Error: Failed to Update Invoice."
	msgDeleteFailed  = "Database Error: Failed to Delete Invoice."
)

// Store is the single-statement storage each action talks to.
type Store interface {
	Insert(ctx context.Context, invoice *models.Invoice) error
	Update(ctx context.Context, id uuid.UUID, customerID uuid.UUID, amount int64, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Revalidator interface {
	Revalidate(path string)
}

type Service struct {
	store  Store
	cache  Revalidator
	now    func() time.Time
	logger *slog.Logger
}

type Option func(*Service)

// WithClock overrides the clock used to stamp new invoices.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func NewService(store Store, cache Revalidator, opts ...Option) *Service {
	s := &Service{
		store:  store,
		cache:  cache,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateInvoice validates the form, inserts one invoice dated today and
// revalidates the invoices page. prev is the state the form last rendered
// with and plays no part in validation.
func (s *Service) CreateInvoice(ctx context.Context, prev State, form url.Values) Result {
	input, errs := validation.ParseInvoiceForm(form)
	if errs != nil {
		return validationFailed(errs, msgCreateInvalid)
	}

	invoice := &models.Invoice{
		CustomerID: input.CustomerID,
		Amount:     input.AmountInCents(),
		Status:     input.Status,
		Date:       today(s.now()),
	}

	if err := s.store.Insert(ctx, invoice); err != nil {
		s.logger.Error("create invoice failed", "error", err, "customer_id", input.CustomerID)
		return storageFailed(msgCreateFailed)
	}

	s.cache.Revalidate(InvoicesPath)
	return Result{Redirect: InvoicesPath}
}

// UpdateInvoice replaces customer, amount and status of invoice id.
func (s *Service) UpdateInvoice(ctx context.Context, id string, prev State, form url.Values) Result {
	input, errs := validation.ParseInvoiceForm(form)
	if errs != nil {
		return validationFailed(errs, msgUpdateInvalid)
	}

	invoiceID, err := uuid.Parse(id)
	if err != nil {
		s.logger.Error("update invoice failed", "error", err, "invoice_id", id)
		return storageFailed(msgUpdateFailed)
	}

	if err := s.store.Update(ctx, invoiceID, input.CustomerID, input.AmountInCents(), input.Status); err != nil {
		s.logger.Error("update invoice failed", "error", err, "invoice_id", id)
		return storageFailed(msgUpdateFailed)
	}

	s.cache.Revalidate(InvoicesPath)
	return Result{Redirect: InvoicesPath}
}

// DeleteInvoice removes invoice id. Success carries no redirect.
func (s *Service) DeleteInvoice(ctx context.Context, id string) Result {
	invoiceID, err := uuid.Parse(id)
	if err != nil {
		s.logger.Error("delete invoice failed", "error", err, "invoice_id", id)
		return storageFailed(msgDeleteFailed)
	}

	if err := s.store.Delete(ctx, invoiceID); err != nil {
		s.logger.Error("delete invoice failed", "error", err, "invoice_id", id)
		return storageFailed(msgDeleteFailed)
	}

	s.cache.Revalidate(InvoicesPath)
	return Result{}
}

// today truncates t to its UTC calendar day.
func today(t time.Time) datatypes.Date {
	y, m, d := t.UTC().Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}
