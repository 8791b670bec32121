package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mousa-mostafa/capitone-Furniture/internal/domain"
	sessionrepo "github.com/mousa-mostafa/capitone-Furniture/internal/repository/session"
)

func withSession(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer tok")
	return req
}

func TestCartEndpoints_RequireSession(t *testing.T) {
	deps, _, _, _, _ := testDeps()
	router := newTestRouter(t, deps)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/cart"},
		{http.MethodPost, "/api/cart/lines"},
		{http.MethodDelete, "/api/cart/lines/0"},
		{http.MethodPut, "/api/cart/shipping"},
		{http.MethodPut, "/api/cart/payment"},
		{http.MethodPost, "/api/cart/checkout"},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestGetCartHandler_Defaults(t *testing.T) {
	deps, _, _, customerStub, _ := testDeps()
	customerStub.sessions["tok"] = &sessionrepo.Session{Token: "tok"}
	router := newTestRouter(t, deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodGet, "/api/cart", nil)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var resp cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Lines) != 0 || resp.TotalEGP != 0 {
		t.Fatalf("expected empty cart, got %+v", resp)
	}
	if resp.Shipping.Value != string(domain.DefaultShipping) {
		t.Fatalf("expected default shipping, got %s", resp.Shipping.Value)
	}
	if resp.Payment.Value != string(domain.DefaultPayment) {
		t.Fatalf("expected default payment, got %s", resp.Payment.Value)
	}
}

func TestAddCartLineHandler_UnknownProduct(t *testing.T) {
	deps, _, cartStub, customerStub, _ := testDeps()
	cartStub.addErr = domain.ErrNotFound
	customerStub.sessions["tok"] = &sessionrepo.Session{Token: "tok"}
	router := newTestRouter(t, deps)

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/cart/lines", strings.NewReader(`{"productId":"nope"}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAddCartLineHandler_ValidationError(t *testing.T) {
	deps, _, cartStub, customerStub, _ := testDeps()
	cartStub.addErr = errors.New("unknown wood paint")
	customerStub.sessions["tok"] = &sessionrepo.Session{Token: "tok"}
	router := newTestRouter(t, deps)

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/cart/lines", strings.NewReader(`{"productId":"p1","paint":"بنفسجي"}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unknown wood paint") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAddCartLineHandler_Created(t *testing.T) {
	deps, _, cartStub, customerStub, _ := testDeps()
	cartStub.cart = domain.Cart{
		Lines: []domain.LineItem{{
			Product:  domain.Product{ID: "p1", Name: "Bedroom", PriceEGP: 62000, Images: []string{"a.jpg"}},
			Quantity: 1,
			Fabric:   "قطيفة",
			Paint:    domain.PaintGold,
		}},
		Shipping: domain.DefaultShipping,
		Payment:  domain.DefaultPayment,
	}
	customerStub.sessions["tok"] = &sessionrepo.Session{Token: "tok"}
	router := newTestRouter(t, deps)

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/cart/lines", strings.NewReader(`{"productId":"p1","fabric":"قطيفة","paint":"ذهبي جولد"}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	var resp cartResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Lines) != 1 || resp.Lines[0].Index != 0 || resp.Lines[0].Fabric != "قطيفة" {
		t.Fatalf("unexpected lines %+v", resp.Lines)
	}
	if resp.TotalEGP != 62000 {
		t.Fatalf("expected total 62000, got %d", resp.TotalEGP)
	}
}

func TestRemoveCartLineHandler_BadIndex(t *testing.T) {
	deps, _, _, customerStub, _ := testDeps()
	customerStub.sessions["tok"] = &sessionrepo.Session{Token: "tok"}
	router := newTestRouter(t, deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodDelete, "/api/cart/lines/first", nil)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSetShippingHandler_Unknown(t *testing.T) {
	deps, _, _, customerStub, _ := testDeps()
	customerStub.sessions["tok"] = &sessionrepo.Session{Token: "tok"}
	router := newTestRouter(t, deps)

	req := withSession(httptest.NewRequest(http.MethodPut, "/api/cart/shipping", strings.NewReader(`{"method":"drone"}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// The stub accepts anything; the real service is exercised in its own
	// package. Here only the wiring matters.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCheckoutHandler_EmptyCart(t *testing.T) {
	deps, _, cartStub, customerStub, _ := testDeps()
	cartStub.checkoutErr = errors.New("cart is empty")
	customerStub.sessions["tok"] = &sessionrepo.Session{Token: "tok"}
	router := newTestRouter(t, deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodPost, "/api/cart/checkout", nil)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "cart is empty") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestCheckoutHandler_ConvertsTotal(t *testing.T) {
	deps, _, cartStub, customerStub, _ := testDeps()
	cartStub.cart = domain.Cart{
		Lines: []domain.LineItem{{
			Product:  domain.Product{ID: "p1", PriceEGP: 62000},
			Quantity: 1,
		}},
		Shipping: domain.ShippingExport,
		Payment:  domain.PaymentBankTransfer,
	}
	customerStub.sessions["tok"] = &sessionrepo.Session{
		Token: "tok",
		User:  &domain.User{Country: domain.CountrySaudiArabia},
	}
	router := newTestRouter(t, deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, withSession(httptest.NewRequest(http.MethodPost, "/api/cart/checkout", nil)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var resp checkoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.TotalEGP != 62000 || resp.Total != 4712.00 {
		t.Fatalf("unexpected totals %+v", resp)
	}
	if resp.Shipping.Value != string(domain.ShippingExport) {
		t.Fatalf("unexpected shipping %+v", resp.Shipping)
	}
}
