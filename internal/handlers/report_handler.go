package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/WynstelleID/finance-bot/internal/errors"
	"github.com/WynstelleID/finance-bot/internal/logger"
	"github.com/WynstelleID/finance-bot/internal/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves generated spreadsheet reports for download.
type ReportHandler struct {
	users   services.UserServicer
	reports services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(users services.UserServicer, reports services.ReportServicer) *ReportHandler {
	return &ReportHandler{users: users, reports: reports}
}

// downloadReportURI binds the download path parameters. The period string is
// checked by the custom report_period validator.
type downloadReportURI struct {
	Number string `uri:"number" binding:"required"`
	Period string `uri:"period" binding:"required,report_period"`
}

// Download streams the xlsx report for a user and period.
// Responds 404 for unknown users, 400 for invalid periods, and a plain 200
// body when the window holds no transactions.
func (h *ReportHandler) Download(c *gin.Context) {
	var uri downloadReportURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.String(http.StatusBadRequest, "Invalid report period")
		return
	}

	user, err := h.users.GetByNumber(uri.Number)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			c.String(http.StatusNotFound, "User not found")
			return
		}
		logger.Get().Errorw("failed to resolve user for report", "number", uri.Number, "error", err)
		c.String(http.StatusInternalServerError, "An internal error occurred")
		return
	}

	period, err := services.ParsePeriod(uri.Period)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid report period")
		return
	}

	now := time.Now()
	buf, rep, err := h.reports.Generate(user, period, now)
	if err != nil {
		if errors.Is(err, services.ErrNoData) {
			c.String(http.StatusOK, "No transactions found for this period for the user.")
			return
		}
		logger.Get().Errorw("failed to generate report", "number", uri.Number, "period", period, "error", err)
		c.String(http.StatusInternalServerError, "An internal error occurred")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rep.Filename(now)))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
