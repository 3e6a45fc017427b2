package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexiusacademia/structcalc/internal/matdb"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(matdb.NewDatabase()))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	var parsed map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, parsed
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestBeamAnalyzeSteelScenario(t *testing.T) {
	srv := newTestServer(t)

	resp, body := post(t, srv, "/api/beam/analyze", map[string]any{
		"material":      "steel_a36",
		"beam_type":     "simply_supported",
		"length":        2.0,
		"load":          1000,
		"load_position": 1.0,
		"width":         0.05,
		"height":        0.1,
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}
	if body["success"] != true {
		t.Fatalf("success = %v", body["success"])
	}

	results := body["results"].(map[string]any)
	if got := results["max_stress"].(float64); got != 6.0 {
		t.Errorf("max_stress = %v, want 6.0", got)
	}
	if got := results["max_moment"].(float64); got != 500.0 {
		t.Errorf("max_moment = %v, want 500", got)
	}
	if got := results["safety_factor"].(float64); got != 41.67 {
		t.Errorf("safety_factor = %v, want 41.67", got)
	}
	if got := results["weight"].(float64); got != 78.5 {
		t.Errorf("weight = %v, want 78.5", got)
	}
	if got := results["cost"].(float64); got != 117.75 {
		t.Errorf("cost = %v, want 117.75", got)
	}
	if results["is_safe"] != true {
		t.Error("is_safe = false, want true")
	}
}

func TestBeamAnalyzeDefaultsAndFallbacks(t *testing.T) {
	srv := newTestServer(t)

	// Empty body: all defaults (steel, simply supported, centered load)
	resp, body := post(t, srv, "/api/beam/analyze", map[string]any{})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}
	results := body["results"].(map[string]any)
	if got := results["max_moment"].(float64); got != 500.0 {
		t.Errorf("default max_moment = %v, want 500", got)
	}

	// Unknown material falls back to Steel A36, not an error
	resp, body = post(t, srv, "/api/beam/analyze", map[string]any{
		"material": "vibranium",
	})
	if resp.StatusCode != http.StatusOK || body["success"] != true {
		t.Errorf("unknown material: status %d, %v", resp.StatusCode, body)
	}
}

func TestBeamAnalyzeCantileverAndDistributed(t *testing.T) {
	srv := newTestServer(t)

	_, body := post(t, srv, "/api/beam/analyze", map[string]any{
		"beam_type": "cantilever",
		"length":    1.5,
		"load":      800,
		"width":     0.04,
		"height":    0.08,
	})
	results := body["results"].(map[string]any)
	if got := results["max_moment"].(float64); got != 1200.0 {
		t.Errorf("cantilever max_moment = %v, want 1200", got)
	}

	_, body = post(t, srv, "/api/beam/analyze", map[string]any{
		"beam_type": "distributed",
		"length":    4.0,
		"load":      2000,
		"width":     0.1,
		"height":    0.2,
	})
	results = body["results"].(map[string]any)
	if got := results["max_moment"].(float64); got != 4000.0 {
		t.Errorf("distributed max_moment = %v, want 4000", got)
	}
	if got := results["max_shear"].(float64); got != 4000.0 {
		t.Errorf("distributed max_shear = %v, want 4000", got)
	}
}

func TestBeamAnalyzeInvalidGeometry(t *testing.T) {
	srv := newTestServer(t)

	resp, body := post(t, srv, "/api/beam/analyze", map[string]any{
		"length": 2.0,
		"width":  0.0,
		"height": 0.1,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
}

func TestColumnAnalyze(t *testing.T) {
	srv := newTestServer(t)

	resp, body := post(t, srv, "/api/column/analyze", map[string]any{
		"material":      "steel_a36",
		"length":        3.0,
		"width":         0.1,
		"height":        0.1,
		"end_condition": "pinned-pinned",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}

	results := body["results"].(map[string]any)
	if got := results["slenderness_ratio"].(float64); got != 103.92 {
		t.Errorf("slenderness_ratio = %v, want 103.92", got)
	}
	if results["is_long_column"] != false {
		t.Error("is_long_column = true, want false")
	}
	if results["end_condition"] != "pinned-pinned" {
		t.Errorf("end_condition = %v", results["end_condition"])
	}

	// Unknown end condition silently defaults
	_, body = post(t, srv, "/api/column/analyze", map[string]any{
		"end_condition": "welded",
	})
	results = body["results"].(map[string]any)
	if results["end_condition"] != "pinned-pinned" {
		t.Errorf("fallback end_condition = %v, want pinned-pinned", results["end_condition"])
	}
}

func TestMaterialsSearch(t *testing.T) {
	srv := newTestServer(t)

	resp, body := post(t, srv, "/api/materials/search", map[string]any{
		"min_strength": 400,
		"max_cost":     3.0,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}
	if got := body["count"].(float64); got != 1 {
		t.Fatalf("count = %v, want 1", got)
	}
	materials := body["materials"].([]any)
	first := materials[0].(map[string]any)
	if first["name"] != "Steel 4140" {
		t.Errorf("material = %v, want Steel 4140", first["name"])
	}
}

func TestMaterialsRecommend(t *testing.T) {
	srv := newTestServer(t)

	resp, body := post(t, srv, "/api/materials/recommend", map[string]any{
		"min_strength": 250,
		"optimize_for": "weight",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, body)
	}
	material := body["material"].(map[string]any)
	if material["name"] != "Aluminum 6061-T6" {
		t.Errorf("recommended = %v, want Aluminum 6061-T6", material["name"])
	}

	// Impossible criteria: 404
	resp, body = post(t, srv, "/api/materials/recommend", map[string]any{
		"min_strength": 5000,
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
}

func TestMalformedBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/beam/analyze", "application/json",
		bytes.NewReader([]byte("{not json")))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
