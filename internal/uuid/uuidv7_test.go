package uuid

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	a := New()
	b := New()

	if a == b {
		t.Fatal("expected distinct identifiers")
	}
	if !IsValid(a) {
		t.Errorf("expected %q to be a valid UUID", a)
	}
	if a[14] != '7' {
		t.Errorf("expected version 7, got %q", a)
	}
}

func TestParse(t *testing.T) {
	t.Run("canonicalizes", func(t *testing.T) {
		id := New()
		got, err := Parse(strings.ToUpper(id))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != id {
			t.Errorf("expected %q, got %q", id, got)
		}
	})

	t.Run("rejects_garbage", func(t *testing.T) {
		if _, err := Parse("not-a-uuid"); err == nil {
			t.Error("expected error for invalid UUID")
		}
		if IsValid("12345") {
			t.Error("expected 12345 to be invalid")
		}
	})
}
