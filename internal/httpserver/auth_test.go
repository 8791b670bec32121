package httpserver

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mousa-mostafa/capitone-Furniture/internal/domain"
	sessionrepo "github.com/mousa-mostafa/capitone-Furniture/internal/repository/session"
)

func TestAnonymousHandler_IssuesToken(t *testing.T) {
	deps, _, _, _, _ := testDeps()
	router := newTestRouter(t, deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/anonymous", nil))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"token":"anon-token"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRegisterHandler_BadJSON(t *testing.T) {
	deps, _, _, _, _ := testDeps()
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRegisterHandler_Created(t *testing.T) {
	deps, _, _, _, _ := testDeps()
	router := newTestRouter(t, deps)

	body := `{"firstName":"سارة","lastName":"محمد","email":"sara@example.com","phone":"0555","country":"السعودية","governorate":"الرياض","password":"secret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"token":"reg-token"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"code":"SAR"`) {
		t.Fatalf("expected Saudi currency in body: %s", rec.Body.String())
	}
}

func TestLoginHandler_OK(t *testing.T) {
	deps, _, _, _, _ := testDeps()
	router := newTestRouter(t, deps)

	body := `{"email":"admin@capitone.com","password":"123456"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"token":"login-token"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestLogoutHandler_RequiresSession(t *testing.T) {
	deps, _, _, _, _ := testDeps()
	router := newTestRouter(t, deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLogoutHandler_DropsCart(t *testing.T) {
	deps, _, cartStub, customerStub, _ := testDeps()
	customerStub.sessions["tok"] = &sessionrepo.Session{Token: "tok"}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if len(cartStub.dropped) != 1 || cartStub.dropped[0] != "tok" {
		t.Fatalf("expected cart for tok dropped, got %v", cartStub.dropped)
	}
}

func TestMeHandler_AnonymousSession(t *testing.T) {
	deps, _, _, customerStub, _ := testDeps()
	customerStub.sessions["tok"] = &sessionrepo.Session{Token: "tok"}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"anonymous":true`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestMeHandler_RegisteredUser(t *testing.T) {
	deps, _, _, customerStub, _ := testDeps()
	customerStub.sessions["tok"] = &sessionrepo.Session{
		Token: "tok",
		User:  &domain.User{Email: "sara@example.com", Country: domain.CountrySaudiArabia},
	}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":"SAR"`) {
		t.Fatalf("expected SAR currency, got %s", rec.Body.String())
	}
}

func TestStaleToken_TreatedAsAnonymous(t *testing.T) {
	deps, _, _, _, _ := testDeps()
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer gone")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Unknown token does not resolve to a session, so /me is unauthorized.
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSessionStoreFailure_IsNotAnonymous(t *testing.T) {
	deps, _, _, customerStub, _ := testDeps()
	customerStub.lookupErr = errors.New("redis: connection refused")
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// A broken session store must not silently reprice the caller as a
	// guest.
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d body=%s", rec.Code, rec.Body.String())
	}
}
