package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"btc-backtest/internal/api/models"

	"github.com/gin-gonic/gin"
)

func TestErrorHandlerRecoversPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		panicWith   interface{}
		wantMessage string
	}{
		{"string panic", "simulation blew up", "simulation blew up"},
		{"error panic", errors.New("ledger overflow"), "ledger overflow"},
		{"opaque panic", 42, "An unexpected error occurred"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(ErrorHandler())
			router.GET("/boom", func(c *gin.Context) {
				panic(tt.panicWith)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/boom", nil)
			router.ServeHTTP(w, req)

			if w.Code != http.StatusInternalServerError {
				t.Fatalf("status: got %d, want 500", w.Code)
			}
			var resp models.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Error.Code != "INTERNAL_ERROR" {
				t.Fatalf("error code: got %q", resp.Error.Code)
			}
			if resp.Error.Message != tt.wantMessage {
				t.Fatalf("error message: got %q, want %q", resp.Error.Message, tt.wantMessage)
			}
		})
	}
}
