package common

import (
	"encoding/hex"
	"testing"
)

// ---------- MakeRandHexString ----------

func TestMakeRandHexString_LengthAndHex(t *testing.T) {
	const n = 16
	s, err := MakeRandHexString(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != n*2 {
		t.Fatalf("expected hex length %d, got %d", n*2, len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		t.Fatalf("string is not valid hex: %v", err)
	}
}

func TestMakeRandHexString_ZeroSize(t *testing.T) {
	s, err := MakeRandHexString(0)
	if err != nil {
		t.Fatalf("unexpected error for size=0: %v", err)
	}
	if s != "" {
		t.Fatalf("expected empty string for size=0, got %q", s)
	}
}

// ---------- tokens ----------

func TestNewMasterToken_Length(t *testing.T) {
	tok, err := NewMasterToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tok) != MasterTokenSize*2 {
		t.Fatalf("expected length %d, got %d", MasterTokenSize*2, len(tok))
	}
}

func TestNewSubToken_Distinct(t *testing.T) {
	a, err := NewSubToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewSubToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a) != SubTokenSize*2 {
		t.Fatalf("expected length %d, got %d", SubTokenSize*2, len(a))
	}
	if a == b {
		t.Fatalf("two sub-tokens are identical: %q", a)
	}
}
