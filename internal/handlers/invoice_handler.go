package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"invoice-dashboard-backend/internal/cache"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/services/invoices"
	"invoice-dashboard-backend/internal/ui"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceHandler struct {
	actions   *invoices.Service
	invoices  *repository.InvoiceRepository
	customers *repository.CustomerRepository
	pages     *cache.PathCache
}

func NewInvoiceHandler(
	actions *invoices.Service,
	invoiceRepo *repository.InvoiceRepository,
	customerRepo *repository.CustomerRepository,
	pages *cache.PathCache,
) *InvoiceHandler {
	return &InvoiceHandler{
		actions:   actions,
		invoices:  invoiceRepo,
		customers: customerRepo,
		pages:     pages,
	}
}

// InvoicesPage serves the dashboard list, rendering it only when the
// cached copy has been revalidated away.
func (h *InvoiceHandler) InvoicesPage(c *gin.Context) {
	path := c.Request.URL.Path
	body, gen, ok := h.pages.Get(path)
	if ok {
		c.Data(http.StatusOK, "text/html; charset=utf-8", body)
		return
	}

	list, err := h.invoices.List(c.Request.Context())
	if err != nil {
		slog.Error("list invoices failed", "error", err)
		c.String(http.StatusInternalServerError, "Database Error: Failed to Fetch Invoices.")
		return
	}

	body, err = ui.RenderInvoicesPage(list)
	if err != nil {
		slog.Error("render invoices page failed", "error", err)
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}

	// a revalidation since Get means list may predate that write
	h.pages.SetIfUnchanged(path, gen, body)
	c.Data(http.StatusOK, "text/html; charset=utf-8", body)
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	form, err := formValues(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form"})
		return
	}

	respond(c, h.actions.CreateInvoice(c.Request.Context(), invoices.State{}, form))
}

func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	form, err := formValues(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form"})
		return
	}

	respond(c, h.actions.UpdateInvoice(c.Request.Context(), c.Param("id"), invoices.State{}, form))
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	respond(c, h.actions.DeleteInvoice(c.Request.Context(), c.Param("id")))
}

// GetInvoice returns one invoice, used to prefill the edit form.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	inv, err := h.invoices.GetByID(c.Request.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	if err != nil {
		slog.Error("get invoice failed", "error", err, "invoice_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database Error: Failed to Fetch Invoice."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": inv})
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	list, err := h.invoices.List(c.Request.Context())
	if err != nil {
		slog.Error("list invoices failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database Error: Failed to Fetch Invoices."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": list})
}

// ListCustomers feeds the customer select on the create and edit forms.
func (h *InvoiceHandler) ListCustomers(c *gin.Context) {
	list, err := h.customers.List(c.Request.Context())
	if err != nil {
		slog.Error("list customers failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database Error: Failed to Fetch Customers."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": list})
}

func respond(c *gin.Context, res invoices.Result) {
	switch res.Failure {
	case invoices.FailureValidation:
		c.JSON(http.StatusUnprocessableEntity, res.State)
	case invoices.FailureStorage:
		c.JSON(http.StatusInternalServerError, res.State)
	default:
		if res.Redirect != "" {
			c.Redirect(http.StatusSeeOther, res.Redirect)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// formValues reads url-encoded and multipart submissions alike.
func formValues(c *gin.Context) (url.Values, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		mf, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		return url.Values(mf.Value), nil
	}
	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	return c.Request.PostForm, nil
}
