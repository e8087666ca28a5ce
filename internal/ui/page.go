package ui

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"invoice-dashboard-backend/internal/models"

	"github.com/shopspring/decimal"
)

//go:embed templates/*
var templateFS embed.FS

var pageTmpl = template.Must(template.New("invoices.gohtml").
	Funcs(template.FuncMap{
		"invoiceStatus": InvoiceStatus,
	}).
	ParseFS(templateFS, "templates/invoices.gohtml"))

// InvoiceRow is one line of the dashboard invoice table.
type InvoiceRow struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	Amount        string
	Date          string
	Status        string
}

// FormatCurrency renders cents as US dollars, e.g. 1050 -> "$10.50".
func FormatCurrency(cents int64) string {
	d := decimal.New(cents, -2)
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

func NewInvoiceRow(inv models.Invoice) InvoiceRow {
	row := InvoiceRow{
		ID:     inv.ID.String(),
		Amount: FormatCurrency(inv.Amount),
		Date:   time.Time(inv.Date).Format("Jan 2, 2006"),
		Status: inv.Status,
	}
	if inv.Customer != nil {
		row.CustomerName = inv.Customer.Name
		row.CustomerEmail = inv.Customer.Email
	}
	return row
}

// RenderInvoicesPage renders the full dashboard invoices page.
func RenderInvoicesPage(invoices []models.Invoice) ([]byte, error) {
	rows := make([]InvoiceRow, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, NewInvoiceRow(inv))
	}

	var buf bytes.Buffer
	err := pageTmpl.Execute(&buf, struct {
		FontsURL string
		Invoices []InvoiceRow
	}{
		FontsURL: StylesheetURL(Inter, Lusitana),
		Invoices: rows,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
