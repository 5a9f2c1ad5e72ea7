package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/rdmartins/drilltrack-backend/pkg/errors"
)

type samplePayload struct {
	ToolID   string `json:"tool_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

func TestDecodeJSONBodySuccess(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"tool_id":"t51-p","quantity":3}`))

	var payload samplePayload
	if err := DecodeJSONBody(req, &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.ToolID != "t51-p" || payload.Quantity != 3 {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"tool_id":"t51-p","quantity":3,"extra":true}`))

	var payload samplePayload
	err := DecodeJSONBody(req, &payload)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyValidatesTags(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"tool_id":"t51-p","quantity":-2}`))

	var payload samplePayload
	err := DecodeJSONBody(req, &payload)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %v", typed.Details())
	}
	if _, ok := details["quantity"]; !ok {
		t.Fatalf("expected quantity detail keyed by json name, got %v", details)
	}
}

func TestParseQueryInt(t *testing.T) {
	req := httptest.NewRequest("GET", "/?limit=25", nil)
	got, err := ParseQueryInt(req, "limit", 50, 1, 500)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}

	req = httptest.NewRequest("GET", "/", nil)
	if got, err = ParseQueryInt(req, "limit", 50, 1, 500); err != nil || got != 50 {
		t.Fatalf("expected default 50, got %d err %v", got, err)
	}

	req = httptest.NewRequest("GET", "/?limit=abc", nil)
	if _, err = ParseQueryInt(req, "limit", 50, 1, 500); err == nil {
		t.Fatal("expected error for non-numeric value")
	}

	req = httptest.NewRequest("GET", "/?limit=1000", nil)
	if _, err = ParseQueryInt(req, "limit", 50, 1, 500); err == nil {
		t.Fatal("expected error for out-of-range value")
	}
}
