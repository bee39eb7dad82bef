package utils

import "testing"

func TestDefaultString(t *testing.T) {
	if got := DefaultString(nil, "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
	if got := DefaultString(StringPtr("value"), "fallback"); got != "value" {
		t.Errorf("expected value, got %q", got)
	}
	if got := DefaultString(StringPtr(""), "fallback"); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestDefaultInt(t *testing.T) {
	if got := DefaultInt(nil, 7); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
	if got := DefaultInt(IntPtr(0), 7); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}
