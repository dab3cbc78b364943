package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"villadesk/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{
			name: "BadRequestFromString",
			err:  failure.BadRequestFromString("bad input"),
			code: http.StatusBadRequest,
		},
		{
			name: "Unauthorized",
			err:  failure.Unauthorized("missing token"),
			code: http.StatusUnauthorized,
		},
		{
			name: "Forbidden",
			err:  failure.Forbidden("not allowed"),
			code: http.StatusForbidden,
		},
		{
			name: "NotFound",
			err:  failure.NotFound("reservation not found"),
			code: http.StatusNotFound,
		},
		{
			name: "Conflict",
			err:  failure.Conflict("overlapping reservation"),
			code: http.StatusConflict,
		},
		{
			name: "Unprocessable",
			err:  failure.Unprocessable("no rate for the requested dates"),
			code: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}

			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for nil error")
	}

	err := failure.BadRequest(errors.New("validation failed"))

	f, ok := err.(*failure.Failure)
	if !ok {
		t.Fatalf("expected *failure.Failure, got %T", err)
	}

	if f.Code != http.StatusBadRequest || f.Message != "validation failed" {
		t.Errorf("unexpected failure %+v", f)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{
			name: "direct failure",
			err:  failure.Conflict("duplicate"),
			code: http.StatusConflict,
		},
		{
			name: "wrapped failure",
			err:  fmt.Errorf("failed to create reservation: %w", failure.Unprocessable("no rate")),
			code: http.StatusUnprocessableEntity,
		},
		{
			name: "plain error defaults to internal",
			err:  errors.New("boom"),
			code: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}
