package log

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGinMiddlewareLogsRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := New(Config{Level: "info", ServiceName: "wes-social", Output: &buf})

	r := gin.New()
	r.Use(GinMiddleware(logger))
	r.GET("/items/:id", func(c *gin.Context) {
		c.Set(FieldUserID, "acc-1")
		l := Ctx(c.Request.Context())
		l.Info().Msg("inside handler")
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/items/42", nil)
	req.Header.Set(headerRequestID, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get(headerRequestID); got != "req-123" {
		t.Fatalf("X-Request-ID = %q, want %q", got, "req-123")
	}

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %s", len(lines), buf.String())
	}

	var inside, done map[string]interface{}
	if err := json.Unmarshal(lines[0], &inside); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if err := json.Unmarshal(lines[1], &done); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if inside[FieldRequestID] != "req-123" {
		t.Errorf("handler log request_id = %v", inside[FieldRequestID])
	}
	if done[FieldPath] != "/items/:id" {
		t.Errorf("path = %v, want route pattern", done[FieldPath])
	}
	if done[FieldUserID] != "acc-1" {
		t.Errorf("user_id = %v", done[FieldUserID])
	}
	if done[FieldService] != "wes-social" {
		t.Errorf("service = %v", done[FieldService])
	}
	if done[FieldStatus] != float64(http.StatusNoContent) {
		t.Errorf("status = %v", done[FieldStatus])
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("WARNING").String() != "warn" {
		t.Fatal("expected warn")
	}
	if ParseLevel("unknown").String() != "info" {
		t.Fatal("expected info default")
	}
}
