// Package bot implements the chat command surface of the finance ledger:
// parsing inbound message text, dispatching to per-command handlers, and
// running each command inside a single database transaction.
package bot

import (
	"errors"

	"gorm.io/gorm"

	"github.com/WynstelleID/finance-bot/internal/logger"
	"github.com/WynstelleID/finance-bot/internal/models"
	"github.com/WynstelleID/finance-bot/internal/services"
)

const (
	internalErrorReply = "An internal error occurred. Please try again later."
	unknownReply       = "Unknown command. Type /help for available commands."
)

// errRollback aborts the enclosing transaction without signalling a real
// failure; the outcome already carries the reply.
var errRollback = errors.New("rollback requested")

// Dispatcher routes parsed commands to handlers. One inbound message is one
// unit of work: the handler runs inside a transaction that commits on
// success or refusal and rolls back on any error outcome.
type Dispatcher struct {
	db  *gorm.DB
	gen services.ReportGenerator
}

// NewDispatcher creates a dispatcher bound to the given database handle and
// spreadsheet generator.
func NewDispatcher(db *gorm.DB, gen services.ReportGenerator) *Dispatcher {
	return &Dispatcher{db: db, gen: gen}
}

// HandleMessage processes one inbound message and returns the reply text.
// The sender is resolved (or created) by WhatsApp number before dispatch.
func (d *Dispatcher) HandleMessage(from, body string) string {
	user, err := services.NewUserService(d.db).GetOrCreateByNumber(from)
	if err != nil {
		logger.Get().Errorw("failed to resolve user", "from", from, "error", err)
		return internalErrorReply
	}

	cmd := Parse(body)

	var outcome Outcome
	txErr := d.db.Transaction(func(tx *gorm.DB) error {
		outcome = d.dispatch(tx, user, cmd)
		if outcome.Kind == OutcomeUserError || outcome.Kind == OutcomeInternal {
			return errRollback
		}
		return nil
	})
	if txErr != nil && !errors.Is(txErr, errRollback) {
		outcome = Internal(txErr)
	}

	switch outcome.Kind {
	case OutcomeUserError:
		return "Error: " + outcome.Text
	case OutcomeInternal:
		logger.Get().Errorw("command failed",
			"command", cmd.Token,
			"from", from,
			"error", outcome.Err,
		)
		return internalErrorReply
	default:
		return outcome.Text
	}
}

// dispatch matches the command kind exhaustively against its handler.
func (d *Dispatcher) dispatch(tx *gorm.DB, user *models.User, cmd Command) Outcome {
	h := newHandlerSet(tx, d.gen)

	switch cmd.Kind {
	case KindIncome:
		return h.income(user, cmd.Args)
	case KindExpense:
		return h.expense(user, cmd.Args)
	case KindAddCategory:
		return h.addCategory(user, cmd.Args)
	case KindEditCategory:
		return h.editCategory(user, cmd.Args)
	case KindDeleteCategory:
		return h.deleteCategory(user, cmd.Args)
	case KindAsset:
		return h.asset(user, cmd.Args)
	case KindDelete:
		return h.deleteTransaction(user, cmd.Args)
	case KindListAll:
		return h.listAll(user, cmd.Args)
	case KindHistory:
		return h.history(user, cmd.Args)
	case KindSummary:
		return h.summary(user)
	case KindReport:
		return h.report(user, cmd.Args)
	case KindHelp:
		return h.help()
	case KindUnknown:
		return Refusal(unknownReply)
	}
	return Refusal(unknownReply)
}
