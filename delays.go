package typewriter

import "time"

// CharDelays resolves a character to the pause taken before printing
// it: a per-character override if one exists, else a default. The zero
// value pauses for nothing.
type CharDelays struct {
	def       time.Duration
	overrides map[rune]time.Duration
}

// New builds a CharDelays from a default pause and per-character
// overrides. The override map is copied, so later changes to the
// caller's map do not affect the returned value. Negative durations
// are clamped to zero.
func New(def time.Duration, overrides map[rune]time.Duration) CharDelays {
	d := CharDelays{def: clampDelay(def)}
	if len(overrides) > 0 {
		d.overrides = make(map[rune]time.Duration, len(overrides))
		for r, dur := range overrides {
			d.overrides[r] = clampDelay(dur)
		}
	}
	return d
}

// DelayFor returns the pause for r: the override if present, else the
// default.
func (d CharDelays) DelayFor(r rune) time.Duration {
	if dur, ok := d.overrides[r]; ok {
		return dur
	}
	return d.def
}

// Default returns the pause applied to characters without an override.
func (d CharDelays) Default() time.Duration {
	return d.def
}

// With returns a copy of d with one additional override. The receiver
// is unchanged.
func (d CharDelays) With(r rune, dur time.Duration) CharDelays {
	out := CharDelays{def: d.def, overrides: make(map[rune]time.Duration, len(d.overrides)+1)}
	for k, v := range d.overrides {
		out.overrides[k] = v
	}
	out.overrides[r] = clampDelay(dur)
	return out
}

// WithDefault returns a copy of d with a different default pause. The
// receiver is unchanged.
func (d CharDelays) WithDefault(dur time.Duration) CharDelays {
	out := CharDelays{def: clampDelay(dur)}
	if len(d.overrides) > 0 {
		out.overrides = make(map[rune]time.Duration, len(d.overrides))
		for k, v := range d.overrides {
			out.overrides[k] = v
		}
	}
	return out
}

func clampDelay(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
