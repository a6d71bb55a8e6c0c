package typewriter

import (
	"testing"
	"time"
)

func TestDelayForDefaultAndOverride(t *testing.T) {
	perWord := New(0, map[rune]time.Duration{' ': 200 * time.Millisecond})
	if got := perWord.DelayFor(' '); got != 200*time.Millisecond {
		t.Fatalf("expected 200ms for space, got %v", got)
	}
	if got := perWord.DelayFor('a'); got != 0 {
		t.Fatalf("expected zero default, got %v", got)
	}

	perLetter := New(50*time.Millisecond, map[rune]time.Duration{
		' ': 100 * time.Millisecond,
		',': 100 * time.Millisecond,
		'.': 200 * time.Millisecond,
	})
	if got := perLetter.DelayFor('.'); got != 200*time.Millisecond {
		t.Fatalf("expected 200ms for period, got %v", got)
	}
	if got := perLetter.DelayFor('b'); got != 50*time.Millisecond {
		t.Fatalf("expected 50ms default, got %v", got)
	}
}

func TestNewCopiesOverrides(t *testing.T) {
	overrides := map[rune]time.Duration{' ': time.Second}
	delays := New(0, overrides)
	overrides[' '] = 0
	overrides['x'] = time.Minute
	if got := delays.DelayFor(' '); got != time.Second {
		t.Fatalf("expected override to survive caller mutation, got %v", got)
	}
	if got := delays.DelayFor('x'); got != 0 {
		t.Fatalf("expected no override for x, got %v", got)
	}
}

func TestNewClampsNegativeDurations(t *testing.T) {
	delays := New(-time.Second, map[rune]time.Duration{'a': -time.Millisecond})
	if got := delays.DelayFor('a'); got != 0 {
		t.Fatalf("expected negative override clamped to zero, got %v", got)
	}
	if got := delays.DelayFor('b'); got != 0 {
		t.Fatalf("expected negative default clamped to zero, got %v", got)
	}
}

func TestWithDerivesWithoutMutating(t *testing.T) {
	base := New(10*time.Millisecond, nil)
	derived := base.With('.', time.Second)
	if got := derived.DelayFor('.'); got != time.Second {
		t.Fatalf("expected derived override, got %v", got)
	}
	if got := base.DelayFor('.'); got != 10*time.Millisecond {
		t.Fatalf("expected base unchanged, got %v", got)
	}
}

func TestWithDefaultKeepsOverrides(t *testing.T) {
	base := New(10*time.Millisecond, map[rune]time.Duration{' ': time.Second})
	derived := base.WithDefault(90 * time.Millisecond)
	if got := derived.Default(); got != 90*time.Millisecond {
		t.Fatalf("expected 90ms default, got %v", got)
	}
	if got := derived.DelayFor(' '); got != time.Second {
		t.Fatalf("expected override kept, got %v", got)
	}
	if got := base.Default(); got != 10*time.Millisecond {
		t.Fatalf("expected base default unchanged, got %v", got)
	}
}

func TestZeroValueResolvesToZero(t *testing.T) {
	var delays CharDelays
	if got := delays.DelayFor('a'); got != 0 {
		t.Fatalf("expected zero delay from zero value, got %v", got)
	}
}
