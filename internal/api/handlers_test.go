package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/hedgeops/posrecon/internal/reconciliation"
)

func newTestRouter() http.Handler {
	engine := reconciliation.NewEngine(reconciliation.DefaultTolerances(), zap.NewNop().Sugar())
	return NewRouter(engine, zap.NewNop().Sugar())
}

const positionsCSV = `symbol,account_id,quantity,price,market_value,currency,trade_date,settle_date
AAPL,ACC1,10000,100.00,1000000,USD,2024-01-08,2024-01-10
`

const driftedCSV = `symbol,account_id,quantity,price,market_value,currency,trade_date,settle_date
AAPL,ACC1,9400,100.00,940000,USD,2024-01-08,2024-01-10
`

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/healthz", nil)

	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestReconcileJSON(t *testing.T) {
	body := `{
		"source": [
			{"symbol":"AAPL","account_id":"ACC1","quantity":10000,"price":"100.00","market_value":"1000000","currency":"USD","trade_date":"2024-01-08","settle_date":"2024-01-10"}
		],
		"target": [
			{"symbol":"AAPL","account_id":"ACC1","quantity":9400,"price":"100.00","market_value":"940000","currency":"USD","trade_date":"2024-01-08","settle_date":"2024-01-10"}
		]
	}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reconcile", strings.NewReader(body))

	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		SourceCount  int `json:"source_count"`
		MatchedCount int `json:"matched_count"`
		BreakCount   int `json:"break_count"`
		Breaks       []struct {
			BreakID  string `json:"break_id"`
			Type     string `json:"break_type"`
			Severity string `json:"severity"`
		} `json:"breaks"`
		Summary struct {
			BySeverity      map[string]int `json:"by_severity"`
			ActionableCount int            `json:"actionable_count"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// 6% quantity drift plus 6% market value drift.
	if resp.BreakCount != 2 {
		t.Fatalf("break count = %d, want 2: %s", resp.BreakCount, rec.Body.String())
	}
	if resp.Breaks[0].BreakID != "BRK-0001" || resp.Breaks[0].Type != "Quantity Mismatch" {
		t.Errorf("first break = %+v, want BRK-0001 quantity mismatch", resp.Breaks[0])
	}
	if resp.Summary.BySeverity["HIGH"] != 2 {
		t.Errorf("by_severity = %v, want 2 HIGH", resp.Summary.BySeverity)
	}
	if resp.Summary.ActionableCount != 2 {
		t.Errorf("actionable = %d, want 2", resp.Summary.ActionableCount)
	}
}

func TestReconcileJSONBadBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reconcile", strings.NewReader("{"))

	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestReconcileJSONDuplicateKey(t *testing.T) {
	body := `{
		"source": [
			{"symbol":"AAPL","account_id":"ACC1","quantity":100,"price":"10","market_value":"1000"},
			{"symbol":"AAPL","account_id":"ACC1","quantity":200,"price":"10","market_value":"2000"}
		],
		"target": []
	}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reconcile", strings.NewReader(body))

	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "duplicate position key") {
		t.Errorf("body = %s, want duplicate key error", rec.Body.String())
	}
}

func TestReconcileUpload(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	sourcePart, err := mw.CreateFormFile("source", "source.csv")
	if err != nil {
		t.Fatal(err)
	}
	sourcePart.Write([]byte(positionsCSV))

	targetPart, err := mw.CreateFormFile("target", "target.csv")
	if err != nil {
		t.Fatal(err)
	}
	targetPart.Write([]byte(driftedCSV))

	mw.WriteField("format", "csv")
	mw.Close()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reconcile/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		BreakCount int `json:"break_count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.BreakCount != 2 {
		t.Errorf("break count = %d, want 2", resp.BreakCount)
	}
}

func TestReconcileUploadMissingFile(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("format", "csv")
	mw.Close()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reconcile/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", rec.Code, rec.Body.String())
	}
}
