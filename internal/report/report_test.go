package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ironsheep/colorbench/internal/metrics"
)

func createReport() metrics.Report {
	return metrics.Report{
		RunID:          "0b6f2c1e-0000-4000-8000-000000000000",
		Strategy:       "hsv",
		Title:          "HSV range (robust)",
		Mode:           "sequential",
		Reason:         "complete",
		Frames:         300,
		Target:         300,
		TotalSeconds:   10,
		RealFPS:        30,
		Latency:        metrics.Latency{MeanMS: 5, StdDevMS: 2, MinMS: 2, MaxMS: 9},
		CPU:            metrics.Usage{Mean: 20, Max: 30},
		MemoryMB:       metrics.Usage{Mean: 110, Max: 120},
		OverallPercent: 50,
		PerColor: []metrics.ColorRate{
			{Target: "black", Percent: 0},
			{Target: "green", Percent: 0},
			{Target: "red", Percent: 50, Frames: 150},
		},
	}
}

func TestWriteText_SectionOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, createReport()); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	out := buf.String()

	order := []string{
		"METHOD: HSV range (robust)",
		"Throughput",
		"Frames processed:", "Total time:", "Real FPS:",
		"Latency",
		"Mean:", "Std dev:", "Max:", "Min:",
		"Resources",
		"CPU mean:", "CPU max:", "Memory mean:", "Memory max:",
		"Detection",
		"Overall:", "black:", "green:", "red:",
	}

	pos := 0
	for _, want := range order {
		i := strings.Index(out[pos:], want)
		if i < 0 {
			t.Fatalf("%q missing or out of order in:\n%s", want, out)
		}
		pos += i + len(want)
	}

	for _, want := range []string{"30.00", "10.00 s", "5.000 ms", "50.0 %"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "Partial run") {
		t.Error("complete run should not be marked partial")
	}
}

func TestWriteText_Partial(t *testing.T) {
	r := createReport()
	r.Frames = 120
	r.Reason = "interrupted"

	var buf bytes.Buffer
	if err := WriteText(&buf, r); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Partial run: 120 of 300 frames (interrupted)") {
		t.Errorf("missing partial marker:\n%s", buf.String())
	}
}

func TestWriteText_NoData(t *testing.T) {
	r := metrics.Report{Strategy: "pure", Title: "Pure channel", NoData: true, Target: 300}

	var buf bytes.Buffer
	if err := WriteText(&buf, r); err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "No data") {
		t.Errorf("expected no-data notice:\n%s", out)
	}
	if strings.Contains(out, "Real FPS") {
		t.Error("no-data report should not print statistics")
	}
}

func TestWriteSummary(t *testing.T) {
	empty := metrics.Report{Strategy: "pure", NoData: true}

	var buf bytes.Buffer
	if err := WriteSummary(&buf, []metrics.Report{createReport(), empty}); err != nil {
		t.Fatalf("WriteSummary failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines: got %d, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[1], "hsv") || !strings.HasPrefix(lines[2], "pure") {
		t.Errorf("unexpected rows: %q", lines[1:])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, []metrics.Report{createReport()}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("reports: got %d, want 1", len(decoded))
	}
	if decoded[0]["real_fps"] != 30.0 {
		t.Errorf("real_fps: got %v", decoded[0]["real_fps"])
	}

	buf.Reset()
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON(nil) failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("nil reports: got %q, want []", buf.String())
	}
}
