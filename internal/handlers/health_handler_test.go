package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthHome(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHealthHandler(nil)

	r := gin.New()
	r.GET("/", handler.Home)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != "Personal Finance Bot Backend is Running!" {
		t.Errorf("unexpected body: %q", w.Body.String())
	}
}
