package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	cases := []struct {
		code   Code
		status int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeGone, http.StatusGone},
		{CodeConflict, http.StatusConflict},
		{CodeRateLimit, http.StatusTooManyRequests},
		{CodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := MetadataFor(tc.code).HTTPStatus; got != tc.status {
			t.Fatalf("code %s: expected status %d, got %d", tc.code, tc.status, got)
		}
	}
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	meta := MetadataFor(Code("NOPE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", meta.HTTPStatus)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("boom")
	err := Wrap(CodeDependency, cause, "redis unavailable")

	if !stdErrors.Is(err, cause) {
		t.Fatalf("expected wrapped cause to be discoverable")
	}
	if err.Code() != CodeDependency {
		t.Fatalf("unexpected code %s", err.Code())
	}
}

func TestAsUnwrapsThroughFmtErrorf(t *testing.T) {
	inner := New(CodeGone, "이미 사용된 초대 링크입니다.")
	outer := fmt.Errorf("register: %w", inner)

	typed := As(outer)
	if typed == nil {
		t.Fatalf("expected typed error through %%w chain")
	}
	if typed.Code() != CodeGone {
		t.Fatalf("unexpected code %s", typed.Code())
	}
	if typed.Message() != "이미 사용된 초대 링크입니다." {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestDumpCollectsChain(t *testing.T) {
	err := Wrap(CodeInternal, stdErrors.New("root"), "outer")
	d := Dump(err)

	if d.Code != CodeInternal {
		t.Fatalf("unexpected code %s", d.Code)
	}
	if len(d.Chain) != 2 {
		t.Fatalf("expected 2 chain entries, got %d", len(d.Chain))
	}
}
