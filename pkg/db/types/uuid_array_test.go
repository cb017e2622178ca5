package dbtypes

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDArrayRoundTrip(t *testing.T) {
	ids := UUIDArray{uuid.New(), uuid.New()}
	v, err := ids.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var decoded UUIDArray
	if err := decoded.Scan(v); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(decoded) != 2 || decoded[0] != ids[0] || decoded[1] != ids[1] {
		t.Fatalf("round trip mismatch: %v vs %v", decoded, ids)
	}
}

func TestUUIDArrayEmpty(t *testing.T) {
	var ids UUIDArray
	v, err := ids.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != "{}" {
		t.Fatalf("expected empty literal, got %v", v)
	}

	var decoded UUIDArray
	if err := decoded.Scan("{}"); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(decoded) != 0 {
		t.Fatalf("expected empty array, got %v", decoded)
	}
}

func TestUUIDArrayScanRejectsGarbage(t *testing.T) {
	var decoded UUIDArray
	if err := decoded.Scan("{not-a-uuid}"); err == nil {
		t.Fatal("expected parse error")
	}
}
