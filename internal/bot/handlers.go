package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/WynstelleID/finance-bot/internal/errors"
	"github.com/WynstelleID/finance-bot/internal/models"
	"github.com/WynstelleID/finance-bot/internal/services"
)

// handlerSet binds the command handlers to one request-scoped transaction.
type handlerSet struct {
	categories services.CategoryServicer
	ledger     services.LedgerServicer
	reports    services.ReportServicer
}

func newHandlerSet(tx *gorm.DB, gen services.ReportGenerator) *handlerSet {
	return &handlerSet{
		categories: services.NewCategoryService(tx),
		ledger:     services.NewLedgerService(tx),
		reports:    services.NewReportService(tx, gen),
	}
}

// parsePositiveAmount applies the strict-positive rule for income and expense:
// non-numeric and non-positive values produce the same usage message.
func parsePositiveAmount(s string) (float64, bool) {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil || amount <= 0 {
		return 0, false
	}
	return amount, true
}

func (h *handlerSet) recordEntry(user *models.User, args []string, transactionType models.TransactionType, usage string) Outcome {
	if len(args) < 2 {
		return UserError(usage)
	}
	amount, ok := parsePositiveAmount(args[0])
	if !ok {
		return UserError("Invalid amount. Please provide a number.")
	}

	// args[1] is the verbatim tail of the line: the category name is its
	// first field, anything after that is free-text notes.
	categoryField, notesTail := cutField(args[1])
	categoryName := strings.ToLower(categoryField)
	var notes *string
	if notesTail != "" {
		notes = &notesTail
	}

	category, err := h.categories.FindOrCreate(user.ID, categoryName, transactionType)
	if err != nil {
		return Internal(err)
	}
	if _, err := h.ledger.Record(user.ID, transactionType, amount, &category.ID, notes); err != nil {
		return Internal(err)
	}

	label := "Income"
	if transactionType == models.TransactionTypeExpense {
		label = "Expense"
	}
	notesText := "None"
	if notes != nil {
		notesText = *notes
	}
	return Success(fmt.Sprintf("%s recorded: Rp%s for '%s'. Notes: %s.",
		label, formatMoney(amount, 2), category.Name, notesText))
}

func (h *handlerSet) income(user *models.User, args []string) Outcome {
	return h.recordEntry(user, args, models.TransactionTypeIncome, "Usage: /income <amount> <category> [notes]")
}

func (h *handlerSet) expense(user *models.User, args []string) Outcome {
	return h.recordEntry(user, args, models.TransactionTypeExpense, "Usage: /expense <amount> <category> [notes]")
}

// parseCategoryType accepts "income" or "expense".
func parseCategoryType(s string) (models.TransactionType, bool) {
	switch strings.ToLower(s) {
	case "income":
		return models.TransactionTypeIncome, true
	case "expense":
		return models.TransactionTypeExpense, true
	default:
		return "", false
	}
}

func (h *handlerSet) addCategory(user *models.User, args []string) Outcome {
	if len(args) < 2 {
		return UserError("Usage: /addcategory <type (income/expense)> <name>")
	}
	categoryType, ok := parseCategoryType(args[0])
	if !ok {
		return UserError("Invalid category type. Must be 'income' or 'expense'.")
	}
	name := strings.ToLower(args[1])

	category, err := h.categories.Create(user.ID, name, categoryType)
	if err != nil {
		if errors.Is(err, apperrors.ErrCategoryExists) {
			return Refusal(fmt.Sprintf("Category '%s' (%s) already exists.", name, categoryType))
		}
		return Internal(err)
	}
	return Success(fmt.Sprintf("Category '%s' (%s) added successfully.", category.Name, categoryType))
}

func (h *handlerSet) editCategory(user *models.User, args []string) Outcome {
	// The parser keeps everything after the second field verbatim, so the
	// new name and type arrive joined in args[1].
	const usage = "Usage: /editcategory <old_name> <new_name> <type (income/expense)>"
	if len(args) < 2 {
		return UserError(usage)
	}
	rest := strings.Fields(args[1])
	if len(rest) != 2 {
		return UserError(usage)
	}
	oldName := strings.ToLower(args[0])
	newName := strings.ToLower(rest[0])
	categoryType, ok := parseCategoryType(rest[1])
	if !ok {
		return UserError("Invalid category type. Must be 'income' or 'expense'.")
	}

	if _, err := h.categories.Rename(user.ID, oldName, newName, categoryType); err != nil {
		if errors.Is(err, apperrors.ErrCategoryNotFound) {
			return Refusal(fmt.Sprintf("Category '%s' (%s) not found.", oldName, categoryType))
		}
		return Internal(err)
	}
	return Success(fmt.Sprintf("Category '%s' (%s) renamed to '%s'.", oldName, categoryType, newName))
}

func (h *handlerSet) deleteCategory(user *models.User, args []string) Outcome {
	if len(args) < 2 {
		return UserError("Usage: /deletecategory <name> <type (income/expense)>")
	}
	name := strings.ToLower(args[0])
	categoryType, ok := parseCategoryType(strings.TrimSpace(args[1]))
	if !ok {
		return UserError("Invalid category type. Must be 'income' or 'expense'.")
	}

	if err := h.categories.Delete(user.ID, name, categoryType); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrCategoryNotFound):
			return Refusal(fmt.Sprintf("Category '%s' (%s) not found.", name, categoryType))
		case errors.Is(err, apperrors.ErrCategoryInUse):
			return Refusal(fmt.Sprintf("Cannot delete category '%s' as it has existing transactions linked. "+
				"Please reassign or delete linked transactions first.", name))
		default:
			return Internal(err)
		}
	}
	return Success(fmt.Sprintf("Category '%s' (%s) deleted successfully.", name, categoryType))
}

func (h *handlerSet) asset(user *models.User, args []string) Outcome {
	if len(args) < 1 {
		return UserError("Usage: /asset <amount> [notes]")
	}
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return UserError("Invalid amount. Please provide a number.")
	}

	notes := "Manual asset adjustment"
	if len(args) > 1 {
		notes = args[1]
	}

	if _, err := h.ledger.Record(user.ID, models.TransactionTypeAssetAdjustment, amount, nil, &notes); err != nil {
		return Internal(err)
	}
	return Success(fmt.Sprintf("Asset adjusted by Rp%s. Notes: %s.", formatMoney(amount, 2), notes))
}

func (h *handlerSet) deleteTransaction(user *models.User, args []string) Outcome {
	if len(args) < 1 {
		return UserError("Usage: /delete <transaction_id>\nUse /listall to see transaction IDs")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return UserError("Invalid transaction ID. Please provide a number.\nUse /listall to see transaction IDs")
	}

	transaction, err := h.ledger.Delete(user.ID, uint(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrTransactionNotFound) {
			return Refusal(fmt.Sprintf("Transaction with ID %d not found or doesn't belong to you.\nUse /listall to see your transactions.", id))
		}
		return Internal(err)
	}

	details := fmt.Sprintf("%s: Rp%s", capitalize(string(transaction.Type)), formatMoney(transaction.Amount, 2))
	if transaction.Category != nil {
		details += fmt.Sprintf(" (%s)", transaction.Category.Name)
	}
	if transaction.Notes != nil {
		details += " - " + *transaction.Notes
	}
	return Success("✅ Transaction deleted successfully!\nDeleted: " + details)
}

const listAllLimitCap = 100

func (h *handlerSet) listAll(user *models.User, args []string) Outcome {
	limit := 20
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed <= 0 {
			return Refusal("Invalid limit. Please provide a number (max 100).")
		}
		limit = parsed
		if limit > listAllLimitCap {
			limit = listAllLimitCap
		}
	}

	transactions, err := h.ledger.ListRecent(user.ID, limit)
	if err != nil {
		return Internal(err)
	}
	if len(transactions) == 0 {
		return Refusal("No transactions found.")
	}

	lines := []string{
		fmt.Sprintf("📋 All Transactions (showing last %d):", len(transactions)),
		strings.Repeat("=", 40),
	}
	for _, t := range transactions {
		// Income and asset adjustments render with a leading +, even when
		// the stored adjustment amount is itself negative (so "+Rp-50").
		sign := "+"
		if t.Type == models.TransactionTypeExpense {
			sign = "-"
		}
		line := fmt.Sprintf("ID:%d | %s | %sRp%s",
			t.ID, t.TransactionDate.Format("01/02 15:04"), sign, formatMoney(t.Amount, 0))
		if t.Category != nil {
			line += " | " + t.Category.Name
		}
		if t.Notes != nil {
			line += " | " + truncateNotes(*t.Notes, 20)
		}
		lines = append(lines, line)
	}
	lines = append(lines,
		strings.Repeat("=", 40),
		"💡 Use /delete <ID> to delete a transaction",
	)
	return Success(strings.Join(lines, "\n"))
}

func (h *handlerSet) history(user *models.User, args []string) Outcome {
	count := 5
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed <= 0 {
			return Refusal("Invalid count. Please provide a number.")
		}
		count = parsed
	}

	transactions, err := h.ledger.ListRecent(user.ID, count)
	if err != nil {
		return Internal(err)
	}
	if len(transactions) == 0 {
		return Refusal("No transaction history found.")
	}

	lines := []string{"Your recent transactions:"}
	for _, t := range transactions {
		categoryName := "N/A"
		if t.Category != nil {
			categoryName = t.Category.Name
		}
		notesText := ""
		if t.Notes != nil {
			notesText = fmt.Sprintf(" (%s)", *t.Notes)
		}
		lines = append(lines, fmt.Sprintf("• %s | %s: Rp%s | %s%s",
			t.TransactionDate.Format("2006-01-02 15:04"),
			capitalize(string(t.Type)), formatMoney(t.Amount, 2), categoryName, notesText))
	}
	return Success(strings.Join(lines, "\n"))
}

func (h *handlerSet) summary(user *models.User) Outcome {
	totals, err := h.ledger.Totals(user.ID)
	if err != nil {
		return Internal(err)
	}

	return Success(fmt.Sprintf(
		"Financial Summary for %s:\n"+
			"• Total Income: Rp%s\n"+
			"• Total Expenses: Rp%s\n"+
			"• Current Net Assets: Rp%s",
		user.WhatsAppNumber,
		formatMoney(totals.Income, 2),
		formatMoney(totals.Expense, 2),
		formatMoney(totals.NetAssets(), 2)))
}

func (h *handlerSet) report(user *models.User, args []string) Outcome {
	periodArg := ""
	if len(args) > 0 {
		periodArg = strings.ToLower(args[0])
	}
	period, err := services.ParsePeriod(periodArg)
	if err != nil {
		return UserError("Invalid report period. Use 'monthly', 'weekly', or 'all'.")
	}

	if _, _, err := h.reports.Generate(user, period, time.Now()); err != nil {
		if errors.Is(err, services.ErrNoData) {
			return Refusal("No data to generate report for the selected period.")
		}
		return Internal(err)
	}
	return Success(fmt.Sprintf("Your report has been generated! Download it at /download_report/%s/%s.",
		user.WhatsAppNumber, period))
}

func (h *handlerSet) help() Outcome {
	return Success(helpMessage)
}

const helpMessage = "Here are the commands you can use:\n" +
	"/income <amount> <category> [notes] - Record income\n" +
	"/expense <amount> <category> [notes] - Record expense\n" +
	"/addcategory <type> <name> - Add a new category (e.g., income Salary, expense Food)\n" +
	"/editcategory <old_name> <new_name> <type> - Edit a category name\n" +
	"/deletecategory <name> <type> - Delete a category\n" +
	"/asset <amount> [notes] - Adjust your total assets (can be positive or negative)\n" +
	"/delete <transaction_id> - Delete a specific transaction\n" +
	"/report [monthly/weekly/all] - Get financial report\n" +
	"/history [count] - Show recent transactions (default: 5)\n" +
	"/listall - Show all transactions with IDs\n" +
	"/summary - Show total income, expenses, and current assets\n" +
	"/help - Show this help message"
