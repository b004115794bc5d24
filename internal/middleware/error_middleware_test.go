package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/campushub/backend/internal/pkg/apperrors"
)

func perform(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/test", nil)

	HandleAPIError(c, err)

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	return w, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", apperrors.NewValidationError("bad input"), http.StatusBadRequest},
		{"unauthenticated", apperrors.ErrUnauthenticated, http.StatusUnauthorized},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"forbidden", apperrors.NewForbiddenError("nope"), http.StatusForbidden},
		{"not found", apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"conflict", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"already enrolled", apperrors.ErrAlreadyEnrolled, http.StatusConflict},
		{"already applied", apperrors.ErrAlreadyApplied, http.StatusConflict},
		{"inactive placement", apperrors.ErrPlacementInactive, http.StatusBadRequest},
		{"deadline passed", apperrors.ErrDeadlinePassed, http.StatusBadRequest},
		{"unknown", errorString("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := perform(t, tt.err)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
			if success, _ := body["success"].(bool); success {
				t.Error("success = true on an error response")
			}
			if body["message"] == "" {
				t.Error("empty message")
			}
		})
	}
}

func TestHandleAPIErrorHidesInternals(t *testing.T) {
	_, body := perform(t, errorString("pq: connection refused on 10.0.0.3"))
	if body["message"] != "internal server error" {
		t.Errorf("internal detail leaked: %q", body["message"])
	}
}

func TestHandleAPIErrorField(t *testing.T) {
	_, body := perform(t, apperrors.NewValidationError("roll number is required").WithField("rollNumber"))
	if body["field"] != "rollNumber" {
		t.Errorf("field = %v, want rollNumber", body["field"])
	}
}

type errorString string

func (e errorString) Error() string { return string(e) }
