package invoices

import "invoice-dashboard-backend/internal/validation"

// InvoicesPath is the dashboard page every action revalidates and redirects to.
const InvoicesPath = "/dashboard/invoices"

// Failure tells the transport which kind of problem stopped an action.
type Failure int

const (
	// FailureNone means the action went through.
	FailureNone Failure = iota
	// FailureValidation means the form was rejected before storage was touched.
	FailureValidation
	// FailureStorage means the single statement failed.
	FailureStorage
)

// State is what a form gets back when an action does not go through.
type State struct {
	Errors  validation.FieldErrors `json:"errors,omitempty"`
	Message string                 `json:"message,omitempty"`
}

// Result is what every action returns: the state for the form, and on a
// successful create or update the page to redirect to.
type Result struct {
	State
	Redirect string  `json:"redirect,omitempty"`
	Failure  Failure `json:"-"`
}

// OK reports whether the action succeeded.
func (r Result) OK() bool {
	return r.Failure == FailureNone
}

func validationFailed(errs validation.FieldErrors, msg string) Result {
	return Result{
		State:   State{Errors: errs, Message: msg},
		Failure: FailureValidation,
	}
}

func storageFailed(msg string) Result {
	return Result{
		State:   State{Message: msg},
		Failure: FailureStorage,
	}
}
