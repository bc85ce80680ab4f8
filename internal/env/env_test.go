package env

import "testing"

func TestGetString(t *testing.T) {
	t.Setenv("CERTIFY_TEST_STR", "value")

	if got := GetString("CERTIFY_TEST_STR", "fallback"); got != "value" {
		t.Errorf("GetString() = %q, want %q", got, "value")
	}
	if got := GetString("CERTIFY_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetString() fallback = %q, want %q", got, "fallback")
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback int
		want     int
	}{
		{"valid int", "42", 7, 42},
		{"invalid int", "not-a-number", 7, 7},
		{"negative", "-3", 7, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CERTIFY_TEST_INT", tt.value)
			if got := GetInt("CERTIFY_TEST_INT", tt.fallback); got != tt.want {
				t.Errorf("GetInt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("CERTIFY_TEST_BOOL", "true")
	if !GetBool("CERTIFY_TEST_BOOL", false) {
		t.Error("GetBool() = false, want true")
	}

	t.Setenv("CERTIFY_TEST_BOOL", "banana")
	if GetBool("CERTIFY_TEST_BOOL", false) {
		t.Error("GetBool() with invalid value should return fallback")
	}
}
