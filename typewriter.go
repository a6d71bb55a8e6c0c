package typewriter

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Flusher is implemented by buffered sinks such as bufio.Writer. When
// the output implements it, the Writer flushes after every character
// so the typing effect stays visible in real time instead of arriving
// in buffered bursts.
type Flusher interface {
	Flush() error
}

// Writer prints text one character at a time, pausing before each
// character according to its CharDelays.
//
// A Writer performs no locking. Concurrent prints need a Writer per
// goroutine; CharDelays values are read-only during use and safe to
// share.
type Writer struct {
	delays CharDelays
	out    io.Writer
	clock  Clock
}

// Option configures a Writer.
type Option func(*Writer)

// WithOutput directs the Writer at the given sink instead of standard
// output.
func WithOutput(w io.Writer) Option {
	return func(tw *Writer) {
		tw.out = w
	}
}

// WithClock substitutes the clock used for pauses. Intended for tests.
func WithClock(c Clock) Option {
	return func(tw *Writer) {
		tw.clock = c
	}
}

// NewWriter builds a Writer that prints to standard output unless
// redirected with WithOutput.
func NewWriter(delays CharDelays, opts ...Option) *Writer {
	tw := &Writer{
		delays: delays,
		out:    os.Stdout,
		clock:  systemClock{},
	}
	for _, opt := range opts {
		opt(tw)
	}
	return tw
}

// Print types text to the sink one character at a time. For each
// character in order it pauses for the resolved delay, writes the
// character, and flushes the sink if it implements Flusher. The call
// blocks until the last character is written; the first write or flush
// error aborts the print and is returned.
//
// Characters are Unicode code points, so multi-codepoint grapheme
// clusters print as separate timed units.
func (tw *Writer) Print(text string) error {
	for _, r := range text {
		tw.clock.Sleep(tw.delays.DelayFor(r))
		if _, err := io.WriteString(tw.out, string(r)); err != nil {
			return fmt.Errorf("failed to write %q: %w", r, err)
		}
		if f, ok := tw.out.(Flusher); ok {
			if err := f.Flush(); err != nil {
				return fmt.Errorf("failed to flush output: %w", err)
			}
		}
	}
	return nil
}

// Printf resolves the format string eagerly and then types the result.
// A format/argument mismatch is returned as an error before any
// character is printed or any pause taken.
func (tw *Writer) Printf(format string, args ...any) error {
	text, err := resolveFormat(format, args...)
	if err != nil {
		return err
	}
	return tw.Print(text)
}

// Println behaves like Printf with a trailing newline, typed as a
// final character with its own resolved delay.
func (tw *Writer) Println(format string, args ...any) error {
	text, err := resolveFormat(format, args...)
	if err != nil {
		return err
	}
	return tw.Print(text + "\n")
}

// Print types a formatted string to standard output.
func Print(delays CharDelays, format string, args ...any) error {
	return Fprint(os.Stdout, delays, format, args...)
}

// Println types a formatted string and a trailing newline to standard
// output.
func Println(delays CharDelays, format string, args ...any) error {
	return Fprintln(os.Stdout, delays, format, args...)
}

// Fprint types a formatted string to the given sink.
func Fprint(w io.Writer, delays CharDelays, format string, args ...any) error {
	return NewWriter(delays, WithOutput(w)).Printf(format, args...)
}

// Fprintln types a formatted string and a trailing newline to the
// given sink.
func Fprintln(w io.Writer, delays CharDelays, format string, args ...any) error {
	return NewWriter(delays, WithOutput(w)).Println(format, args...)
}

// resolveFormat expands the format string before the timed loop. fmt
// reports argument mismatches by embedding %!-style diagnostics in the
// output rather than failing, so those markers are rejected here.
func resolveFormat(format string, args ...any) (string, error) {
	text := fmt.Sprintf(format, args...)
	if strings.Contains(text, "(MISSING)") || strings.Contains(text, "%!(EXTRA") || strings.Contains(text, "%!(NOVERB)") {
		return "", fmt.Errorf("format %q does not match its %d argument(s)", format, len(args))
	}
	return text, nil
}
