package response

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	if err := WriteJSON(rr, 201, map[string]string{"id": "abc"}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if rr.Code != 201 {
		t.Fatalf("expected status 201, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["id"] != "abc" {
		t.Fatalf("expected id abc, got %v", body)
	}
}

func TestGeneralError(t *testing.T) {
	resp := GeneralError(errors.New("boom"))
	if resp.Detail != "boom" {
		t.Fatalf("expected detail boom, got %q", resp.Detail)
	}
}

func TestStudentNotFound(t *testing.T) {
	resp := StudentNotFound("66b2f7a1c3d4e5f6a7b8c9d0")
	if resp.Detail != "Student 66b2f7a1c3d4e5f6a7b8c9d0 not found" {
		t.Fatalf("unexpected detail: %q", resp.Detail)
	}
}

func TestValidationError(t *testing.T) {
	type payload struct {
		Name string `validate:"required"`
		Bio  string `validate:"omitempty,min=1"`
	}

	err := validator.New().Struct(payload{})
	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}

	resp := ValidationError(validateErrs)
	if len(resp.Detail) != 1 {
		t.Fatalf("expected one field error, got %v", resp.Detail)
	}
	if resp.Detail[0].Field != "name" {
		t.Fatalf("field names must be lowercased, got %q", resp.Detail[0].Field)
	}
	if resp.Detail[0].Message != "field name is required" {
		t.Fatalf("unexpected message: %q", resp.Detail[0].Message)
	}
}
