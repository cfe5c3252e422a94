package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ikay-store/api/internal/config"
	"github.com/ikay-store/api/internal/http/response"
	"github.com/ikay-store/api/internal/provider"
	"github.com/ikay-store/api/internal/service"

	"github.com/gin-gonic/gin"
)

func newTestEmailRouter(emailCfg *config.EmailConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(&provider.Container{
		Config:       &config.Config{},
		EmailService: service.NewEmailService(emailCfg),
	})
	r := gin.New()
	r.POST("/admin/email/test", h.SendTestEmail)
	return r
}

func postTestEmail(t *testing.T, r *gin.Engine, body string) int {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/email/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	return resp.StatusCode
}

func TestSendTestEmailValidatesPayload(t *testing.T) {
	r := newTestEmailRouter(&config.EmailConfig{Enabled: true})

	if code := postTestEmail(t, r, `{}`); code != response.CodeBadRequest {
		t.Fatalf("missing receiver want business code %d got %d", response.CodeBadRequest, code)
	}
}

func TestSendTestEmailReportsDisabledService(t *testing.T) {
	r := newTestEmailRouter(&config.EmailConfig{Enabled: false})

	if code := postTestEmail(t, r, `{"to":"admin@example.com"}`); code != response.CodeBadRequest {
		t.Fatalf("disabled service want business code %d got %d", response.CodeBadRequest, code)
	}
}

func TestSendTestEmailReportsUnconfiguredService(t *testing.T) {
	r := newTestEmailRouter(&config.EmailConfig{Enabled: true})

	if code := postTestEmail(t, r, `{"to":"admin@example.com"}`); code != response.CodeBadRequest {
		t.Fatalf("unconfigured service want business code %d got %d", response.CodeBadRequest, code)
	}
}

func TestSendTestEmailRejectsInvalidReceiver(t *testing.T) {
	r := newTestEmailRouter(&config.EmailConfig{
		Enabled: true,
		Host:    "smtp.example.com",
		Port:    587,
		From:    "noreply@example.com",
	})

	if code := postTestEmail(t, r, `{"to":"not-an-email"}`); code != response.CodeBadRequest {
		t.Fatalf("invalid receiver want business code %d got %d", response.CodeBadRequest, code)
	}
}
