package validators

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	pkgerrors "github.com/haneulsoft/weddingmoa-backend/pkg/errors"
)

type loginBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestDecodeJSONBodyValid(t *testing.T) {
	req := httptest.NewRequest("POST", "/login",
		strings.NewReader(`{"email":"bride@example.com","password":"changeme123"}`))

	var body loginBody
	if err := DecodeJSONBody(req, &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Email != "bride@example.com" {
		t.Fatalf("unexpected email %q", body.Email)
	}
}

func TestDecodeJSONBodyReportsFieldDetails(t *testing.T) {
	req := httptest.NewRequest("POST", "/login",
		strings.NewReader(`{"email":"not-an-email","password":"short"}`))

	var body loginBody
	err := DecodeJSONBody(req, &body)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected details map, got %T", typed.Details())
	}
	if details["email"] == "" || details["password"] == "" {
		t.Fatalf("expected per-field messages, got %+v", details)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest("POST", "/login",
		strings.NewReader(`{"email":"bride@example.com","password":"changeme123","admin":true}`))

	var body loginBody
	err := DecodeJSONBody(req, &body)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyRejectsMalformedJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/login", strings.NewReader(`{"email":`))

	var body loginBody
	err := DecodeJSONBody(req, &body)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseQueryInt(t *testing.T) {
	values := url.Values{"priceMin": {"1000000"}, "page": {"abc"}}

	n, ok, err := ParseQueryInt(values, "priceMin")
	if err != nil || !ok || n != 1000000 {
		t.Fatalf("expected 1000000, got n=%d ok=%v err=%v", n, ok, err)
	}

	if _, ok, err := ParseQueryInt(values, "missing"); ok || err != nil {
		t.Fatalf("missing param must be (false, nil), got ok=%v err=%v", ok, err)
	}

	_, _, err = ParseQueryInt(values, "page")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseQueryCSV(t *testing.T) {
	values := url.Values{"tags": {"luxury, outdoor,,hanok "}}

	got := ParseQueryCSV(values, "tags")
	if len(got) != 3 || got[0] != "luxury" || got[1] != "outdoor" || got[2] != "hanok" {
		t.Fatalf("unexpected tags %v", got)
	}
	if ParseQueryCSV(values, "missing") != nil {
		t.Fatal("missing param must be nil")
	}
}
