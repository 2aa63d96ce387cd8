package app_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/MgDark0/wisecar/internal/app"
	"github.com/MgDark0/wisecar/internal/catalog"
	"github.com/MgDark0/wisecar/internal/contact"
)

func newAPITS(t *testing.T, httpDeps app.HTTPDeps) *httptest.Server {
	t.Helper()

	if httpDeps.Log == nil {
		httpDeps.Log = zap.NewNop()
	}
	if httpDeps.Service == "" {
		httpDeps.Service = "wisecars"
	}

	h := app.NewHandler(app.Deps{
		Cars:     catalog.NewMemStore(),
		Contacts: contact.NewMemStore(),
	}, httpDeps)

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, c *http.Client, method, url string, body any) (*http.Response, []byte) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, url, r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, raw
}

func TestAPI_CatalogSurface(t *testing.T) {
	ts := newAPITS(t, app.HTTPDeps{})
	c := &http.Client{}

	{
		resp, raw := doJSON(t, c, http.MethodGet, ts.URL+"/api/cars", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("list status=%d body=%s", resp.StatusCode, raw)
		}
		var cars []catalog.Car
		if err := json.Unmarshal(raw, &cars); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(cars) != 8 {
			t.Fatalf("len=%d want 8", len(cars))
		}
	}

	{
		resp, raw := doJSON(t, c, http.MethodGet, ts.URL+"/api/cars/featured", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("featured status=%d", resp.StatusCode)
		}
		var cars []catalog.Car
		if err := json.Unmarshal(raw, &cars); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(cars) != 4 {
			t.Fatalf("featured len=%d want 4", len(cars))
		}
	}

	{
		resp, raw := doJSON(t, c, http.MethodGet, ts.URL+"/api/cars/filter?type=all&minPrice=50000&maxPrice=100000", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("filter status=%d", resp.StatusCode)
		}
		var cars []catalog.Car
		if err := json.Unmarshal(raw, &cars); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(cars) != 1 || cars[0].Name != "Mercedes-Benz GLE Coupe" {
			t.Fatalf("filter result: %+v", cars)
		}
	}

	{
		resp, raw := doJSON(t, c, http.MethodGet, ts.URL+"/api/cars/5", nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("get status=%d", resp.StatusCode)
		}
		var car catalog.Car
		if err := json.Unmarshal(raw, &car); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if car.Name != "BMW M5 Competition" {
			t.Fatalf("name=%q", car.Name)
		}
	}

	{
		resp, raw := doJSON(t, c, http.MethodGet, ts.URL+"/api/cars/9999", nil)
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("miss status=%d body=%s", resp.StatusCode, raw)
		}
	}
}

func TestAPI_ContactSurface(t *testing.T) {
	ts := newAPITS(t, app.HTTPDeps{})
	c := &http.Client{}

	valid := map[string]any{
		"name":     "Jordan Blake",
		"email":    "jordan@example.com",
		"phone":    "5551234567",
		"interest": "financing",
		"message":  "What financing options do you offer on the R8?",
	}

	{
		resp, raw := doJSON(t, c, http.MethodPost, ts.URL+"/api/contact", valid)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("submit status=%d body=%s", resp.StatusCode, raw)
		}
		var out struct {
			Message    string             `json:"message"`
			Submission contact.Submission `json:"submission"`
		}
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.Submission.Interest != contact.InterestFinancing {
			t.Fatalf("interest=%q", out.Submission.Interest)
		}
	}

	{
		invalid := map[string]any{
			"name":     "Jordan Blake",
			"email":    "not-an-email",
			"phone":    "5551234567",
			"interest": "financing",
			"message":  "What financing options do you offer on the R8?",
		}
		resp, raw := doJSON(t, c, http.MethodPost, ts.URL+"/api/contact", invalid)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("submit status=%d body=%s", resp.StatusCode, raw)
		}
		if !strings.Contains(string(raw), "email") {
			t.Fatalf("body=%s does not mention email", raw)
		}
	}
}

func TestAPI_ContactRateLimit(t *testing.T) {
	ts := newAPITS(t, app.HTTPDeps{ContactLimitPerMin: 2})
	c := &http.Client{}

	payload := map[string]any{
		"name":     "Jordan Blake",
		"email":    "jordan@example.com",
		"phone":    "5551234567",
		"interest": "other",
		"message":  "Just checking your opening hours this weekend.",
	}

	for i := 0; i < 2; i++ {
		resp, raw := doJSON(t, c, http.MethodPost, ts.URL+"/api/contact", payload)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("request %d status=%d body=%s", i, resp.StatusCode, raw)
		}
	}

	resp, _ := doJSON(t, c, http.MethodPost, ts.URL+"/api/contact", payload)
	if resp.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("status=%d want 429", resp.StatusCode)
	}
}

func TestAPI_Probes(t *testing.T) {
	ts := newAPITS(t, app.HTTPDeps{})
	c := &http.Client{}

	for _, path := range []string{"/healthz", "/readyz"} {
		resp, raw := doJSON(t, c, http.MethodGet, ts.URL+path, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s status=%d body=%s", path, resp.StatusCode, raw)
		}
	}
}

func TestAPI_MetricsClosedWithoutToken(t *testing.T) {
	ts := newAPITS(t, app.HTTPDeps{
		Registry:       nil,
		MetricsEnabled: false,
	})
	c := &http.Client{}

	resp, _ := doJSON(t, c, http.MethodGet, ts.URL+"/metrics", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d want 404", resp.StatusCode)
	}
}
