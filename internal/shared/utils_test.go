package shared

import (
	"encoding/hex"
	"testing"
)

func TestMakeRandHexString_Length(t *testing.T) {
	s, err := MakeRandHexString(16)
	if err != nil {
		t.Fatalf("MakeRandHexString error: %v", err)
	}
	if len(s) != 32 {
		t.Fatalf("expected 32 chars, got %d", len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		t.Fatalf("expected valid hex, got %q", s)
	}
}

func TestMakeRandHexString_Unique(t *testing.T) {
	a, err := MakeRandHexString(16)
	if err != nil {
		t.Fatal(err)
	}
	b, err := MakeRandHexString(16)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("two random strings must differ")
	}
}
