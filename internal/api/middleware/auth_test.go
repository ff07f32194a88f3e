package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/activos-tic/itam-api/internal/core/domain"
	"github.com/activos-tic/itam-api/internal/core/service"
)

type stubVerifier struct {
	claims *service.Claims
	err    error
}

func (v *stubVerifier) Verify(_ string) (*service.Claims, error) {
	return v.claims, v.err
}

func invokeAuth(t *testing.T, verifier TokenVerifier, authHeader string) (echo.Context, *httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(verifier)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, rec, handler(c)
}

func assertHTTPError(t *testing.T, err error, code int, message string) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != code {
		t.Fatalf("expected status %d, got %d", code, he.Code)
	}
	if message != "" && he.Message != message {
		t.Fatalf("expected message %q, got %v", message, he.Message)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, _, err := invokeAuth(t, &stubVerifier{}, "")
	assertHTTPError(t, err, http.StatusUnauthorized, "missing authorization header")
}

func TestAuth_BadScheme(t *testing.T) {
	_, _, err := invokeAuth(t, &stubVerifier{}, "Basic dXNlcjpwYXNz")
	assertHTTPError(t, err, http.StatusUnauthorized, "invalid authorization header")
}

func TestAuth_ExpiredToken(t *testing.T) {
	_, _, err := invokeAuth(t, &stubVerifier{err: domain.ErrTokenExpired}, "Bearer stale")
	assertHTTPError(t, err, http.StatusUnauthorized, "token expired")
}

func TestAuth_TamperedToken(t *testing.T) {
	_, _, err := invokeAuth(t, &stubVerifier{err: domain.ErrTokenSignatureInvalid}, "Bearer forged")
	assertHTTPError(t, err, http.StatusUnauthorized, "invalid token signature")
}

func TestAuth_MalformedToken(t *testing.T) {
	_, _, err := invokeAuth(t, &stubVerifier{err: domain.ErrTokenMalformed}, "Bearer junk")
	assertHTTPError(t, err, http.StatusUnauthorized, "invalid token")
}

func TestAuth_ValidTokenInjectsClaims(t *testing.T) {
	verifier := &stubVerifier{claims: &service.Claims{
		Username: "alice",
		Roles:    []string{domain.RoleAdmin},
	}}
	verifier.claims.Subject = "user_1"

	c, rec, err := invokeAuth(t, verifier, "Bearer good")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if c.Get("user_id") != "user_1" || c.Get("username") != "alice" {
		t.Fatalf("identity not injected into context")
	}
	roles, ok := c.Get("roles").([]string)
	if !ok || len(roles) != 1 || roles[0] != domain.RoleAdmin {
		t.Fatalf("roles not injected into context: %v", c.Get("roles"))
	}
}
