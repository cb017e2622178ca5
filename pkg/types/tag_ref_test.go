package types

import (
	"testing"

	"github.com/google/uuid"
)

func TestTagRefsValueEmpty(t *testing.T) {
	var refs TagRefs
	v, err := refs.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != "[]" {
		t.Fatalf("nil list should serialize as empty array, got %v", v)
	}
}

func TestTagRefsRoundTrip(t *testing.T) {
	refs := TagRefs{
		{ID: uuid.New(), Name: "야외촬영", Slug: "outdoor"},
		{ID: uuid.New(), Name: "스냅촬영", Slug: "snap"},
	}
	v, err := refs.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var decoded TagRefs
	if err := decoded.Scan(v); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Slug != "outdoor" || decoded[1].Name != "스냅촬영" {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
}

func TestTagRefsContainsSlug(t *testing.T) {
	refs := TagRefs{{Slug: "outdoor"}, {Slug: "snap"}}
	if !refs.ContainsSlug("chapel", "snap") {
		t.Fatal("expected match on snap")
	}
	if refs.ContainsSlug("chapel", "hotel") {
		t.Fatal("unexpected match")
	}
}

func TestTagRefsScanRejectsUnsupportedType(t *testing.T) {
	var refs TagRefs
	if err := refs.Scan(42); err == nil {
		t.Fatal("expected error for unsupported scan type")
	}
}
