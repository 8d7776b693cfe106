package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	mydb "github.com/yumyai/protparam/pkg/db"
	"github.com/yumyai/protparam/pkg/model"
)

type envelope struct {
	Success bool            `json:"success"`
	Payload json.RawMessage `json:"payload"`
	Error   string          `json:"error"`
}

func newTestContext(t *testing.T, history bool) *DBContext {
	t.Helper()

	dbctx := &DBContext{
		BatchJobs: NewBatchJobManager(time.Hour),
		Version:   "test",
	}
	if history {
		db, err := mydb.Open(mydb.MemoryDSN)
		if err != nil {
			t.Fatalf("open db: %v", err)
		}
		t.Cleanup(func() { db.Close() })
		dbctx.DB = db
	}
	return dbctx
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
	return env
}

func TestAnalyzeAPI(t *testing.T) {
	router := NewRouter(newTestContext(t, false))

	rr := do(t, router, http.MethodPost, "/api/v1/analyze", `{"sequence":">insulin A\nGIVEQCCTSI CSLYQLENYCN"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	env := decode(t, rr)
	if !env.Success {
		t.Fatalf("expected success, got %+v", env)
	}

	var payload struct {
		ID     string `json:"id"`
		Result struct {
			Sequence        string  `json:"sequence"`
			Length          int     `json:"length"`
			MolecularWeight float64 `json:"molecular_weight"`
		} `json:"result"`
	}
	json.Unmarshal(env.Payload, &payload)

	if payload.Result.Sequence != "GIVEQCCTSICSLYQLENYCN" || payload.Result.Length != 21 {
		t.Errorf("unexpected result %+v", payload.Result)
	}
	if payload.Result.MolecularWeight < 2383.1 || payload.Result.MolecularWeight > 2384.1 {
		t.Errorf("unexpected molecular weight %v", payload.Result.MolecularWeight)
	}
	if payload.ID != "" {
		t.Errorf("nothing should be saved, got id %q", payload.ID)
	}
}

func TestAnalyzeAPIInvalid(t *testing.T) {
	router := NewRouter(newTestContext(t, false))

	tests := []struct {
		name string
		body string
		want string
	}{
		{"Ambiguous", `{"sequence":"MKXAYI"}`, "unknown residue"},
		{"Empty", `{"sequence":""}`, "empty"},
		{"BadJSON", `{"sequence":`, "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, router, http.MethodPost, "/api/v1/analyze", tt.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rr.Code)
			}
			env := decode(t, rr)
			if env.Success || !strings.Contains(env.Error, tt.want) {
				t.Errorf("unexpected envelope %+v", env)
			}
		})
	}
}

func TestAnalyzeAPISaveWithoutHistory(t *testing.T) {
	router := NewRouter(newTestContext(t, false))

	rr := do(t, router, http.MethodPost, "/api/v1/analyze", `{"sequence":"KKKKK","save":true}`)
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rr.Code)
	}
}

func TestAnalysisHistoryRoundTrip(t *testing.T) {
	router := NewRouter(newTestContext(t, true))

	rr := do(t, router, http.MethodPost, "/api/v1/analyze", `{"sequence":"KKKKK","label":"polyK","save":true}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var saved AnalyzePayload
	json.Unmarshal(decode(t, rr).Payload, &saved)
	if saved.ID == "" {
		t.Fatal("expected an id")
	}

	rr = do(t, router, http.MethodGet, "/api/v1/analysis/"+saved.ID, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rr.Code)
	}
	var rec model.AnalysisRecord
	json.Unmarshal(decode(t, rr).Payload, &rec)
	if rec.Label != "polyK" || rec.Result.Sequence != "KKKKK" {
		t.Errorf("unexpected record %+v", rec)
	}

	rr = do(t, router, http.MethodGet, "/api/v1/analysis?limit=10", "")
	var list []model.AnalysisSummary
	json.Unmarshal(decode(t, rr).Payload, &list)
	if len(list) != 1 || list[0].ID != saved.ID {
		t.Errorf("unexpected listing %+v", list)
	}

	rr = do(t, router, http.MethodGet, "/analysis/"+saved.ID, "")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "polyK") {
		t.Errorf("html view failed: %d", rr.Code)
	}

	rr = do(t, router, http.MethodDelete, "/api/v1/analysis/"+saved.ID, "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rr.Code)
	}

	rr = do(t, router, http.MethodGet, "/api/v1/analysis/"+saved.ID, "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rr.Code)
	}
}

func TestHistoryDisabled(t *testing.T) {
	router := NewRouter(newTestContext(t, false))

	for _, target := range []string{"/api/v1/analysis", "/api/v1/analysis/abc"} {
		rr := do(t, router, http.MethodGet, target, "")
		if rr.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", target, rr.Code)
		}
	}
}

func TestAnalyzePageForm(t *testing.T) {
	router := NewRouter(newTestContext(t, true))

	form := url.Values{}
	form.Set("sequence", "mkt123 ayi")
	form.Set("label", "demo")
	form.Set("save", "true")

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	body := rr.Body.String()
	if !strings.Contains(body, "MKTAYI") || !strings.Contains(body, "Analysis ID") {
		t.Errorf("unexpected page: %s", body)
	}
}

func TestAnalyzePageFormInvalid(t *testing.T) {
	router := NewRouter(newTestContext(t, false))

	form := url.Values{}
	form.Set("sequence", "MKXAYI")

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "unknown residue") {
		t.Errorf("error message should be shown verbatim: %s", rr.Body.String())
	}
}

func TestMainPageAndHealth(t *testing.T) {
	router := NewRouter(newTestContext(t, true))

	rr := do(t, router, http.MethodGet, "/", "")
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "<form") {
		t.Errorf("main page failed: %d", rr.Code)
	}

	rr = do(t, router, http.MethodGet, "/api/v1/health", "")
	var health HealthResponse
	json.Unmarshal(rr.Body.Bytes(), &health)
	if health.Health != "ok" || !health.History || health.Version != "test" {
		t.Errorf("unexpected health %+v", health)
	}
}
