package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"jobsift-engine/internal/config"
	"jobsift-engine/internal/extract"
)

func TestHealthReportsSources(t *testing.T) {
	h := HealthHandler{Engine: extract.NewEngine()}
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	h.Health(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		OK      bool     `json:"ok"`
		Sources []string `json:"sources"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.OK {
		t.Error("ok = false")
	}
	if len(resp.Sources) != 3 {
		t.Errorf("sources = %v", resp.Sources)
	}
}

func TestSecretsRejectsEmptyPassword(t *testing.T) {
	var cfgVal atomic.Value
	cfgVal.Store(config.Normalize(config.Config{}))
	h := SecretsHandler{CfgVal: &cfgVal}

	req := httptest.NewRequest(http.MethodPost, "/api/secrets/imap", strings.NewReader(`{"password":""}`))
	w := httptest.NewRecorder()
	h.SetIMAPPassword(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	var e APIError
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatal(err)
	}
	if e.Error.Code != "missing_password" {
		t.Errorf("code = %q", e.Error.Code)
	}
}

func TestCorsPreflight(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("preflight should not reach the handler")
	})
	req := httptest.NewRequest(http.MethodOptions, "/extract", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	Cors(next).ServeHTTP(w, req)

	if w.Code != 204 {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("allow-origin = %q", got)
	}
	if methods := w.Header().Get("Access-Control-Allow-Methods"); strings.Contains(methods, "PATCH") {
		t.Errorf("allow-methods lists PATCH: %q", methods)
	}
}

func TestRequestIDFlowsIntoErrorEnvelope(t *testing.T) {
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusBadRequest, "bad_input", "nope")
	}))

	req := httptest.NewRequest(http.MethodPost, "/extract", nil)
	req.Header.Set("X-Request-ID", "req-abc")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var e APIError
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatal(err)
	}
	if e.Error.RequestID != "req-abc" {
		t.Errorf("request_id = %q", e.Error.RequestID)
	}
	if w.Header().Get("X-Request-ID") != "req-abc" {
		t.Errorf("header request id = %q", w.Header().Get("X-Request-ID"))
	}
}
