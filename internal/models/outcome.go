package models

type Outcome string

const (
	OutcomeRejected Outcome = "rejected"
	OutcomeIgnored  Outcome = "ignored"
	OutcomeSettled  Outcome = "settled"
)

// Result of handling one notification. Reason is a short machine label
// used for logs and metrics.
type Result struct {
	Outcome Outcome
	Reason  string
}

const (
	ReasonInvalidKey          = "invalid_key"
	ReasonInvalidPayload      = "invalid_payload"
	ReasonUnhandledEvent      = "unhandled_event"
	ReasonForgedInvoice       = "forged_invoice"
	ReasonUnsupportedCurrency = "unsupported_currency"
	ReasonNoCorrelation       = "no_correlation"
	ReasonNotAccountCredit    = "not_account_credit"
	ReasonAlreadyProcessed    = "already_processed"
	ReasonInFlight            = "in_flight"
	ReasonCredited            = "credited"
	ReasonCreditDeclined      = "credit_declined"
	ReasonTargetMissing       = "target_missing"
	ReasonDanglingReference   = "dangling_reference"
)

func Rejected(reason string) Result { return Result{Outcome: OutcomeRejected, Reason: reason} }
func Ignored(reason string) Result  { return Result{Outcome: OutcomeIgnored, Reason: reason} }
func Settled(reason string) Result  { return Result{Outcome: OutcomeSettled, Reason: reason} }
