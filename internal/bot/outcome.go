package bot

// OutcomeKind classifies a handler result.
type OutcomeKind int

const (
	// OutcomeSuccess is a completed command; the transaction commits and
	// the text is sent as-is.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeUserError is a bad-input condition; the transaction rolls
	// back and the text is sent prefixed with "Error: ".
	OutcomeUserError
	// OutcomeRefusal is a business-rule refusal (not found, duplicate,
	// in use, no data); no mutation occurred, the transaction commits,
	// and the text is sent as-is.
	OutcomeRefusal
	// OutcomeInternal is an unexpected failure; the transaction rolls
	// back, the error is logged with full context, and the user receives
	// a generic message.
	OutcomeInternal
)

// Outcome is the result of handling one command. Handlers return it instead
// of raising errors, so the dispatcher decides commit/rollback and reply
// shape in one place.
type Outcome struct {
	Kind OutcomeKind
	Text string
	Err  error
}

// Success returns a committed outcome with the given reply text.
func Success(text string) Outcome { return Outcome{Kind: OutcomeSuccess, Text: text} }

// UserError returns a rolled-back outcome replied as "Error: <text>".
func UserError(text string) Outcome { return Outcome{Kind: OutcomeUserError, Text: text} }

// Refusal returns a committed outcome with a descriptive refusal text.
func Refusal(text string) Outcome { return Outcome{Kind: OutcomeRefusal, Text: text} }

// Internal returns a rolled-back outcome carrying the diagnostic error.
func Internal(err error) Outcome { return Outcome{Kind: OutcomeInternal, Err: err} }
