package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/WynstelleID/finance-bot/internal/errors"
	"github.com/WynstelleID/finance-bot/internal/models"
	"github.com/WynstelleID/finance-bot/internal/services"
	"github.com/WynstelleID/finance-bot/internal/validator"
)

// --- mock user service ---

type mockUserService struct {
	getByNumberFn func(number string) (*models.User, error)
}

func (m *mockUserService) GetOrCreateByNumber(number string) (*models.User, error) {
	return &models.User{WhatsAppNumber: number}, nil
}

func (m *mockUserService) GetByNumber(number string) (*models.User, error) {
	if m.getByNumberFn != nil {
		return m.getByNumberFn(number)
	}
	return &models.User{WhatsAppNumber: number}, nil
}

var _ services.UserServicer = (*mockUserService)(nil)

// --- mock report service ---

type mockReportService struct {
	generateFn func(user *models.User, period services.Period, now time.Time) (*bytes.Buffer, *services.Report, error)
}

func (m *mockReportService) Build(user *models.User, period services.Period, now time.Time) (*services.Report, error) {
	return &services.Report{User: user, Period: period}, nil
}

func (m *mockReportService) Generate(user *models.User, period services.Period, now time.Time) (*bytes.Buffer, *services.Report, error) {
	if m.generateFn != nil {
		return m.generateFn(user, period, now)
	}
	return bytes.NewBufferString("xlsx"), &services.Report{User: user, Period: period}, nil
}

var _ services.ReportServicer = (*mockReportService)(nil)

func setupReportRouter(handler *ReportHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validator.Register()

	r := gin.New()
	r.GET("/download_report/:number/:period", handler.Download)
	return r
}

func getDownload(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestReportDownload(t *testing.T) {
	t.Run("streams_attachment", func(t *testing.T) {
		handler := NewReportHandler(&mockUserService{}, &mockReportService{})
		r := setupReportRouter(handler)

		w := getDownload(r, "/download_report/628111/monthly")

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
			t.Errorf("unexpected content type %q", ct)
		}
		disposition := w.Header().Get("Content-Disposition")
		if !strings.HasPrefix(disposition, `attachment; filename="finance_report_628111_monthly_`) {
			t.Errorf("unexpected disposition %q", disposition)
		}
		if w.Body.String() != "xlsx" {
			t.Errorf("expected file bytes, got %q", w.Body.String())
		}
	})

	t.Run("unknown_user_is_404", func(t *testing.T) {
		users := &mockUserService{
			getByNumberFn: func(string) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		r := setupReportRouter(NewReportHandler(users, &mockReportService{}))

		w := getDownload(r, "/download_report/000/monthly")

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
		if w.Body.String() != "User not found" {
			t.Errorf("unexpected body: %q", w.Body.String())
		}
	})

	t.Run("invalid_period_is_400", func(t *testing.T) {
		r := setupReportRouter(NewReportHandler(&mockUserService{}, &mockReportService{}))

		w := getDownload(r, "/download_report/628111/daily")

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
		if w.Body.String() != "Invalid report period" {
			t.Errorf("unexpected body: %q", w.Body.String())
		}
	})

	t.Run("empty_window_is_plain_200", func(t *testing.T) {
		reports := &mockReportService{
			generateFn: func(*models.User, services.Period, time.Time) (*bytes.Buffer, *services.Report, error) {
				return nil, nil, services.ErrNoData
			},
		}
		r := setupReportRouter(NewReportHandler(&mockUserService{}, reports))

		w := getDownload(r, "/download_report/628111/weekly")

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "No transactions found for this period for the user." {
			t.Errorf("unexpected body: %q", w.Body.String())
		}
	})
}
