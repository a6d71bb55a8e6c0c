// Package typewriter prints text one character at a time, pausing
// before each character to simulate live typing.
//
// Build a CharDelays with a default pause and optional per-character
// overrides, then print through a Writer or the package-level helpers.
// Typing "hello" with each character taking 10 milliseconds:
//
//	delays := typewriter.New(10*time.Millisecond, nil)
//	typewriter.Println(delays, "hello")
//
// Typing "hello world" with words appearing instantly and each space
// taking 250 milliseconds:
//
//	delays := typewriter.New(0, map[rune]time.Duration{' ': 250 * time.Millisecond})
//	typewriter.Println(delays, "hello world")
//
// Formatted printing resolves the format string before the timed loop
// starts:
//
//	delays := typewriter.New(90*time.Millisecond, map[rune]time.Duration{
//		' ': 250 * time.Millisecond,
//		'.': time.Second,
//	})
//	typewriter.Println(delays, "hello %s world", "beans")
//
// Characters are Unicode code points. Multi-codepoint grapheme
// clusters (combining marks, emoji sequences) print as separate timed
// units.
package typewriter
