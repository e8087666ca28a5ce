package validation

import (
	"errors"
	"math"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FieldErrors maps a form field name to the messages describing why it failed.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	for _, m := range fe[field] {
		if m == msg {
			return
		}
	}
	fe[field] = append(fe[field], msg)
}

// InvoiceInput is a form that passed validation.
type InvoiceInput struct {
	CustomerID uuid.UUID
	Amount     decimal.Decimal
	Status     string
}

// AmountInCents converts the decimal amount to whole cents, rounding half away from zero.
func (in InvoiceInput) AmountInCents() int64 {
	return toCents(in.Amount)
}

var maxCents = decimal.NewFromInt(math.MaxInt64)

func centsOf(d decimal.Decimal) decimal.Decimal {
	return d.Shift(2).Round(0)
}

func toCents(d decimal.Decimal) int64 {
	return centsOf(d).IntPart()
}

// ParseInvoiceForm extracts customerId, amount and status from a submitted
// form and checks them against InvoiceForm. Either the input or the errors
// are returned, never both.
func ParseInvoiceForm(values url.Values) (*InvoiceInput, FieldErrors) {
	form := InvoiceForm{
		CustomerID: strings.TrimSpace(values.Get(FieldCustomerID)),
		Amount:     coerceAmount(values.Get(FieldAmount)),
		Status:     strings.TrimSpace(values.Get(FieldStatus)),
	}

	fieldErrs := FieldErrors{}
	var verrs validator.ValidationErrors
	if err := validate.Struct(form); errors.As(err, &verrs) {
		for _, fe := range verrs {
			fieldErrs.Add(fe.Field(), Message(fe.Field()))
		}
	}

	if form.Amount.IsPositive() {
		switch cents := centsOf(form.Amount); {
		case cents.GreaterThan(maxCents):
			// would wrap when narrowed to int64
			fieldErrs.Add(FieldAmount, msgAmountTooLarge)
		case !cents.IsPositive():
			// below half a cent, would be stored as zero
			fieldErrs.Add(FieldAmount, Message(FieldAmount))
		}
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	return &InvoiceInput{
		CustomerID: uuid.MustParse(form.CustomerID),
		Amount:     form.Amount,
		Status:     form.Status,
	}, nil
}

// coerceAmount turns the raw amount string into a decimal. Anything that
// does not parse becomes zero, which the schema rejects.
func coerceAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}
