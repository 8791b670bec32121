package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestShippingMethodsHandler(t *testing.T) {
	deps, _, _, _, _ := testDeps()
	router := newTestRouter(t, deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/shipping-methods", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, value := range []string{"export", "private-car", "shared-truck"} {
		if !strings.Contains(body, value) {
			t.Fatalf("missing shipping method %q in %s", value, body)
		}
	}
	if !strings.Contains(body, `"default":"shared-truck"`) {
		t.Fatalf("missing default in %s", body)
	}
}

func TestPaymentMethodsHandler(t *testing.T) {
	deps, _, _, _, _ := testDeps()
	router := newTestRouter(t, deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/payment-methods", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "bank-transfer") || !strings.Contains(body, "deposit-cod") {
		t.Fatalf("missing payment methods in %s", body)
	}
	if !strings.Contains(body, `"default":"deposit-cod"`) {
		t.Fatalf("missing default in %s", body)
	}
}

func TestWoodPaintsHandler(t *testing.T) {
	deps, _, _, _, _ := testDeps()
	router := newTestRouter(t, deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/wood-paints", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, paint := range []string{"أبيض", "فضي", "شامبين", "ذهبي جولد"} {
		if !strings.Contains(body, paint) {
			t.Fatalf("missing paint %q in %s", paint, body)
		}
	}
}

func TestCountriesHandler(t *testing.T) {
	deps, _, _, _, _ := testDeps()
	router := newTestRouter(t, deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/countries", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, country := range []string{"مصر", "السعودية", "الإمارات", "أمريكا", "أخرى"} {
		if !strings.Contains(body, country) {
			t.Fatalf("missing country %q in %s", country, body)
		}
	}
	if !strings.Contains(body, `"code":"SAR"`) {
		t.Fatalf("missing SAR currency in %s", body)
	}
}
