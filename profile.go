package typewriter

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// fileProfile mirrors the TOML delay profile layout:
//
//	default = "90ms"
//
//	[overrides]
//	" " = "250ms"
//	"." = "1s"
type fileProfile struct {
	Default   *string           `toml:"default"`
	Overrides map[string]string `toml:"overrides"`
}

// LoadProfile reads a TOML delay profile from the given path. A
// missing file is not an error and yields the zero CharDelays.
// Override keys must be a single character; durations use
// time.ParseDuration syntax and must be non-negative.
func LoadProfile(path string) (CharDelays, error) {
	if path == "" {
		return CharDelays{}, fmt.Errorf("profile path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return CharDelays{}, nil
		}
		return CharDelays{}, fmt.Errorf("failed to stat profile: %w", err)
	}
	var profile fileProfile
	if _, err := toml.DecodeFile(path, &profile); err != nil {
		return CharDelays{}, fmt.Errorf("failed to decode profile: %w", err)
	}
	return profile.delays()
}

func (p fileProfile) delays() (CharDelays, error) {
	var def time.Duration
	if p.Default != nil {
		parsed, err := parseDelay(*p.Default)
		if err != nil {
			return CharDelays{}, fmt.Errorf("default: %w", err)
		}
		def = parsed
	}
	overrides := make(map[rune]time.Duration, len(p.Overrides))
	for key, raw := range p.Overrides {
		runes := []rune(key)
		if len(runes) != 1 {
			return CharDelays{}, fmt.Errorf("override key %q must be a single character", key)
		}
		parsed, err := parseDelay(raw)
		if err != nil {
			return CharDelays{}, fmt.Errorf("override %q: %w", key, err)
		}
		overrides[runes[0]] = parsed
	}
	return New(def, overrides), nil
}

func parseDelay(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration %q: %w", raw, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("duration %q must not be negative", raw)
	}
	return d, nil
}
