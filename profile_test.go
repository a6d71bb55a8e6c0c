package typewriter

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write profile: %v", err)
	}
	return path
}

func TestLoadProfile(t *testing.T) {
	path := writeProfile(t, `
default = "90ms"

[overrides]
" " = "250ms"
"." = "1s"
`)
	delays, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if got := delays.DelayFor('a'); got != 90*time.Millisecond {
		t.Fatalf("expected 90ms default, got %v", got)
	}
	if got := delays.DelayFor(' '); got != 250*time.Millisecond {
		t.Fatalf("expected 250ms for space, got %v", got)
	}
	if got := delays.DelayFor('.'); got != time.Second {
		t.Fatalf("expected 1s for period, got %v", got)
	}
}

func TestLoadProfileMissingFile(t *testing.T) {
	delays, err := LoadProfile(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("expected missing profile to load as zero value, got %v", err)
	}
	if got := delays.DelayFor('a'); got != 0 {
		t.Fatalf("expected zero delays, got %v", got)
	}
}

func TestLoadProfileEmptyPath(t *testing.T) {
	if _, err := LoadProfile(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadProfileRejectsMultiCharacterKey(t *testing.T) {
	path := writeProfile(t, `
[overrides]
"ab" = "10ms"
`)
	if _, err := LoadProfile(path); err == nil {
		t.Fatalf("expected error for multi-character key")
	}
}

func TestLoadProfileAcceptsMultibyteKey(t *testing.T) {
	path := writeProfile(t, `
[overrides]
"é" = "10ms"
`)
	delays, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if got := delays.DelayFor('é'); got != 10*time.Millisecond {
		t.Fatalf("expected 10ms for é, got %v", got)
	}
}

func TestLoadProfileRejectsBadDuration(t *testing.T) {
	path := writeProfile(t, `default = "soon"`)
	if _, err := LoadProfile(path); err == nil {
		t.Fatalf("expected error for unparsable duration")
	}
}

func TestLoadProfileRejectsNegativeDuration(t *testing.T) {
	path := writeProfile(t, `
[overrides]
"." = "-1s"
`)
	if _, err := LoadProfile(path); err == nil {
		t.Fatalf("expected error for negative duration")
	}
}
