package envutil

import "testing"

func TestGetReturnsValue(t *testing.T) {
	t.Setenv("GEM5DEV_TEST_VAR", "value")
	if got := Get("GEM5DEV_TEST_VAR", "default"); got != "value" {
		t.Fatalf("expected value, got %q", got)
	}
}

func TestGetReturnsDefaultWhenUnsetOrEmpty(t *testing.T) {
	if got := Get("GEM5DEV_TEST_UNSET", "default"); got != "default" {
		t.Fatalf("expected default, got %q", got)
	}

	t.Setenv("GEM5DEV_TEST_VAR", "")
	if got := Get("GEM5DEV_TEST_VAR", "default"); got != "default" {
		t.Fatalf("expected default for empty value, got %q", got)
	}
}
