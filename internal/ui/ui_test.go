package ui

import (
	"testing"
	"time"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestStatusBadge(t *testing.T) {
	assert.Equal(t,
		`<div class="badge"><span class="active">active</span></div>`,
		string(StatusBadge("active")))
	assert.Equal(t,
		`<div class="badge"><span class="inactive">inactive</span></div>`,
		string(StatusBadge("inactive")))
}

func TestStatusBadge_EscapesLabel(t *testing.T) {
	html := string(StatusBadge(`<script>`))
	assert.Contains(t, html, `class="inactive"`)
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestInvoiceStatus(t *testing.T) {
	assert.Contains(t, string(InvoiceStatus("paid")), `class="invoice-status paid">Paid<`)
	assert.Contains(t, string(InvoiceStatus("pending")), `class="invoice-status pending">Pending<`)
	assert.Contains(t, string(InvoiceStatus("void")), "unknown")
}

func TestStylesheetURL(t *testing.T) {
	u := StylesheetURL(Inter, Lusitana)
	assert.Equal(t,
		"https://fonts.googleapis.com/css2?display=swap&family=Inter&family=Lusitana%3Awght%40400%3B700&subset=latin",
		u)
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$10.50", FormatCurrency(1050))
	assert.Equal(t, "$0.01", FormatCurrency(1))
	assert.Equal(t, "$1234.00", FormatCurrency(123400))
	assert.Equal(t, "-$2.05", FormatCurrency(-205))
}

func TestRenderInvoicesPage(t *testing.T) {
	id := uuid.New()
	body, err := RenderInvoicesPage([]models.Invoice{{
		ID:       id,
		Customer: &models.Customer{Name: "Delba de Oliveira", Email: "delba@oliveira.com"},
		Amount:   1050,
		Status:   models.StatusPaid,
		Date:     datatypes.Date(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)),
	}})
	require.NoError(t, err)

	html := string(body)
	assert.Contains(t, html, "Delba de Oliveira")
	assert.Contains(t, html, "$10.50")
	assert.Contains(t, html, "Mar 9, 2024")
	assert.Contains(t, html, "/dashboard/invoices/"+id.String()+"/delete")
	assert.Contains(t, html, `invoice-status paid`)
	assert.Contains(t, html, "fonts.googleapis.com")
}

func TestRenderInvoicesPage_Empty(t *testing.T) {
	body, err := RenderInvoicesPage(nil)
	require.NoError(t, err)
	assert.Contains(t, string(body), "No invoices yet.")
}
