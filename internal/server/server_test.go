package server

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ironsheep/colorbench/internal/metrics"
)

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.byID == nil {
		t.Fatal("New() did not initialize the report index")
	}
}

func TestHealth(t *testing.T) {
	s := New()
	s.SetStateFunc(func() string { return "running" })

	rec := get(t, s, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if body["status"] != "ok" || body["state"] != "running" {
		t.Errorf("body: got %v", body)
	}
}

func TestReports(t *testing.T) {
	s := New()
	s.AddReport(metrics.Report{RunID: "a", Strategy: "hsv", Frames: 300})
	s.AddReport(metrics.Report{RunID: "b", Strategy: "pure", Frames: 120})
	s.AddReport(metrics.Report{RunID: "a", Strategy: "hsv", Frames: 299})

	rec := get(t, s, "/reports")
	var all []metrics.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &all); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("reports: got %d, want 2", len(all))
	}
	if all[0].RunID != "a" || all[0].Frames != 299 || all[1].RunID != "b" {
		t.Errorf("reports: got %+v", all)
	}

	rec = get(t, s, "/reports/b")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	var one metrics.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &one); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if one.Strategy != "pure" {
		t.Errorf("Strategy: got %s, want pure", one.Strategy)
	}
}

func TestReport_NotFound(t *testing.T) {
	rec := get(t, New(), "/reports/missing")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rec.Code)
	}

	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if body.Error != "not_found" {
		t.Errorf("Error: got %s, want not_found", body.Error)
	}
}

func TestLatestFrame(t *testing.T) {
	s := New()

	if rec := get(t, s, "/frame/latest"); rec.Code != http.StatusNotFound {
		t.Errorf("before any frame: got %d, want 404", rec.Code)
	}

	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	img.Set(3, 3, color.RGBA{255, 0, 0, 255})
	s.SetLatestFrame(img)

	rec := get(t, s, "/frame/latest")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type: got %s", ct)
	}
	decoded, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatalf("body is not a PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 16 || decoded.Bounds().Dy() != 8 {
		t.Errorf("size: got %v", decoded.Bounds())
	}
}

func TestIndex(t *testing.T) {
	rec := get(t, New(), "/")
	var eps []Endpoint
	if err := json.Unmarshal(rec.Body.Bytes(), &eps); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}
	if len(eps) != len(Endpoints()) {
		t.Errorf("endpoints: got %d, want %d", len(eps), len(Endpoints()))
	}
}

func TestMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/reports", nil)
	rec := httptest.NewRecorder()
	New().Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", rec.Code)
	}
}
