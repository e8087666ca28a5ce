package ui

import (
	"bytes"
	"html/template"
)

const (
	BadgeActive   = "active"
	BadgeInactive = "inactive"
)

var badgeTmpl = template.Must(template.New("badge").Parse(
	`<div class="badge"><span class="{{.Class}}">{{.Label}}</span></div>`))

var invoiceStatusTmpl = template.Must(template.New("invoice-status").Parse(
	`<span class="invoice-status {{.Class}}">{{.Label}}</span>`))

type badge struct {
	Class string
	Label string
}

// StatusBadge renders status inside a badge. Only "active" gets the active
// style; every other value is shown as inactive. It is a standalone fragment:
// register it in a template.FuncMap (as RenderInvoicesPage does with
// InvoiceStatus) to embed it in a page.
func StatusBadge(status string) template.HTML {
	class := BadgeInactive
	if status == BadgeActive {
		class = BadgeActive
	}
	return render(badgeTmpl, badge{Class: class, Label: status})
}

// InvoiceStatus renders the pending/paid pill shown next to each invoice.
func InvoiceStatus(status string) template.HTML {
	switch status {
	case "paid":
		return render(invoiceStatusTmpl, badge{Class: "paid", Label: "Paid"})
	case "pending":
		return render(invoiceStatusTmpl, badge{Class: "pending", Label: "Pending"})
	default:
		return render(invoiceStatusTmpl, badge{Class: "unknown", Label: status})
	}
}

func render(t *template.Template, data badge) template.HTML {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}
