package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/activos-tic/itam-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, body["error"]
}

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"employee not found", domain.ErrEmployeeNotFound, http.StatusNotFound},
		{"hardware not found", domain.ErrHardwareNotFound, http.StatusNotFound},
		{"license not found", domain.ErrLicenseNotFound, http.StatusNotFound},
		{"web access not found", domain.ErrWebAccessNotFound, http.StatusNotFound},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
		{"duplicate serial", domain.ErrDuplicateSerialNumber, http.StatusConflict},
		{"duplicate license key", domain.ErrDuplicateLicenseKey, http.StatusConflict},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"token expired", domain.ErrTokenExpired, http.StatusUnauthorized},
		{"token signature", domain.ErrTokenSignatureInvalid, http.StatusUnauthorized},
		{"token malformed", domain.ErrTokenMalformed, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"throttled", domain.ErrTooManyAttempts, http.StatusTooManyRequests},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _ := renderError(t, tc.err)
			if code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, code)
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedNotFoundKeepsContext(t *testing.T) {
	err := fmt.Errorf("%w: id emp_42 (for assignment)", domain.ErrEmployeeNotFound)

	code, msg := renderError(t, err)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if !strings.Contains(msg, "emp_42") {
		t.Fatalf("error message should name the missing employee, got %q", msg)
	}
}

func TestHTTPErrorHandler_LoginFailureHidesDetail(t *testing.T) {
	code, msg := renderError(t, fmt.Errorf("lookup failed: %w", domain.ErrInvalidCredentials))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if msg != "invalid credentials" {
		t.Fatalf("login failures must share one message, got %q", msg)
	}
}

func TestHTTPErrorHandler_EchoErrorPassesThrough(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest || msg != "invalid payload" {
		t.Fatalf("unexpected mapping: %d %q", code, msg)
	}
}

func TestHTTPErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	code, msg := renderError(t, fmt.Errorf("connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal details must not leak, got %q", msg)
	}
}
