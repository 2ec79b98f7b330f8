package logger

import "testing"

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	out := sanitizeKVs([]interface{}{"user_id", 7, "password1", "hunter22", "Token", "abc", "dangling"})
	if len(out) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(out))
	}
	if out[1] != 7 {
		t.Fatalf("expected user_id to pass through, got %v", out[1])
	}
	if out[3] != "[REDACTED]" || out[5] != "[REDACTED]" {
		t.Fatalf("expected secrets redacted, got %v", out)
	}
	if out[6] != "dangling" {
		t.Fatalf("expected trailing key kept, got %v", out[6])
	}
}

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"production", "development"} {
		l, err := New(mode)
		if err != nil {
			t.Fatalf("mode %s: %v", mode, err)
		}
		l.With("mode", mode).Debug("built")
	}
}
