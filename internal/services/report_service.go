package services

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/WynstelleID/finance-bot/internal/errors"
	"github.com/WynstelleID/finance-bot/internal/models"
)

// Period selects the time window of a report.
type Period string

const (
	PeriodMonthly Period = "monthly"
	PeriodWeekly  Period = "weekly"
	PeriodAll     Period = "all"
)

// ParsePeriod validates a period string. An empty string defaults to monthly.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "":
		return PeriodMonthly, nil
	case PeriodMonthly, PeriodWeekly, PeriodAll:
		return Period(s), nil
	default:
		return "", apperrors.ErrInvalidPeriod
	}
}

// Window is the [Start, End) time range of a report. A nil Start means
// unbounded (all time).
type Window struct {
	Start *time.Time
	End   time.Time
}

// WindowFor computes the report window for a period, anchored at now.
// Monthly starts at the first instant of the current calendar month,
// weekly at 00:00:00 of the current week's Monday.
func WindowFor(period Period, now time.Time) Window {
	switch period {
	case PeriodMonthly:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Window{Start: &start, End: now}
	case PeriodWeekly:
		daysSinceMonday := (int(now.Weekday()) + 6) % 7
		start := time.Date(now.Year(), now.Month(), now.Day()-daysSinceMonday, 0, 0, 0, 0, now.Location())
		return Window{Start: &start, End: now}
	default:
		return Window{End: now}
	}
}

// ErrNoData signals that the report window contains no transactions.
// Distinct from a failure: the caller replies "no data" instead of an error.
var ErrNoData = errors.New("no transactions in report window")

// Report is a period-bounded aggregation of a user's transactions.
type Report struct {
	User            *models.User
	Period          Period
	Window          Window
	Transactions    []models.Transaction
	TotalIncome     float64
	TotalExpense    float64
	TotalAdjustment float64
}

// NetFlow returns income - expenses + adjustments over the window.
func (r *Report) NetFlow() float64 {
	return r.TotalIncome - r.TotalExpense + r.TotalAdjustment
}

// Filename returns the download name for the generated spreadsheet.
func (r *Report) Filename(now time.Time) string {
	return fmt.Sprintf("finance_report_%s_%s_%s.xlsx",
		r.User.WhatsAppNumber, r.Period, now.Format("20060102_150405"))
}

// reportService computes report aggregates and delegates file generation.
type reportService struct {
	db  *gorm.DB
	gen ReportGenerator
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB, gen ReportGenerator) ReportServicer {
	return &reportService{db: db, gen: gen}
}

// Build queries the user's transactions inside the period window, newest
// first, and computes per-type totals. Returns ErrNoData on an empty window.
func (s *reportService) Build(user *models.User, period Period, now time.Time) (*Report, error) {
	window := WindowFor(period, now)

	query := s.db.Preload("Category").Where("user_id = ?", user.ID)
	if window.Start != nil {
		query = query.Where("transaction_date >= ?", *window.Start)
	}

	var transactions []models.Transaction
	if err := query.Order("transaction_date DESC, id DESC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(transactions) == 0 {
		return nil, ErrNoData
	}

	rep := &Report{
		User:         user,
		Period:       period,
		Window:       window,
		Transactions: transactions,
	}
	for _, t := range transactions {
		switch t.Type {
		case models.TransactionTypeIncome:
			rep.TotalIncome += t.Amount
		case models.TransactionTypeExpense:
			rep.TotalExpense += t.Amount
		case models.TransactionTypeAssetAdjustment:
			rep.TotalAdjustment += t.Amount
		}
	}
	return rep, nil
}

// Generate builds the report and renders it through the configured
// spreadsheet generator, returning the file buffer alongside the report.
func (s *reportService) Generate(user *models.User, period Period, now time.Time) (*bytes.Buffer, *Report, error) {
	rep, err := s.Build(user, period, now)
	if err != nil {
		return nil, nil, err
	}

	buf, err := s.gen.Generate(rep)
	if err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return buf, rep, nil
}
