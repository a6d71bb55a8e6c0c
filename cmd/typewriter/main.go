// Package main provides the CLI entrypoint for typewriter.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	typewriter "github.com/averin-dn/go-typewriter"
	"github.com/averin-dn/go-typewriter/internal/config"
	"github.com/averin-dn/go-typewriter/internal/wrap"
	"github.com/averin-dn/go-typewriter/tui"
)

const defaultDelay = 30 * time.Millisecond

var (
	printDelay  time.Duration
	printPauses []string
	profilePath string
	noNewline   bool
	wrapOutput  bool
	useTUI      bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typewriter [text...]",
		Short:         "Print text one character at a time",
		Long:          "Print text one character at a time with a configurable pause per character.\nWith no arguments, text is read from stdin.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPrintCmd,
	}

	rootCmd.Flags().DurationVar(&printDelay, "delay", defaultDelay, "default pause before each character")
	rootCmd.Flags().StringArrayVar(&printPauses, "pause", nil, "per-character pause as CHAR=DURATION (repeatable)")
	rootCmd.Flags().StringVar(&profilePath, "profile", "", "TOML delay profile (default: "+config.DefaultProfilePath()+")")
	rootCmd.Flags().BoolVar(&noNewline, "no-newline", false, "do not type a trailing newline")
	rootCmd.Flags().BoolVar(&wrapOutput, "wrap", false, "wrap text to the terminal width before typing")
	rootCmd.Flags().BoolVar(&useTUI, "tui", false, "reveal the text in a Bubble Tea view instead of printing")

	return rootCmd
}

func runPrintCmd(cmd *cobra.Command, args []string) error {
	delays, err := resolveDelays(cmd)
	if err != nil {
		return err
	}

	text, err := readText(cmd, args)
	if err != nil {
		return err
	}

	if wrapOutput {
		if width, ok := terminalWidth(); ok {
			text = wrap.String(text, width)
		}
	}

	if useTUI {
		program := tea.NewProgram(tui.New(delays, text))
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		return nil
	}

	if !noNewline {
		text += "\n"
	}
	if err := typewriter.NewWriter(delays).Print(text); err != nil {
		return fmt.Errorf("failed to print: %w", err)
	}
	return nil
}

// resolveDelays merges the profile and flags: the profile is the base,
// a changed --delay flag overrides its default, and --pause entries
// override individual characters.
func resolveDelays(cmd *cobra.Command) (typewriter.CharDelays, error) {
	path := profilePath
	explicit := cmd.Flags().Changed("profile")
	if path == "" {
		path = config.DefaultProfilePath()
	}

	haveProfile := false
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		haveProfile = true
	} else if explicit {
		return typewriter.CharDelays{}, fmt.Errorf("profile not found: %s", path)
	}

	var delays typewriter.CharDelays
	if haveProfile {
		loaded, err := typewriter.LoadProfile(path)
		if err != nil {
			return typewriter.CharDelays{}, fmt.Errorf("failed to load profile: %w", err)
		}
		delays = loaded
		if cmd.Flags().Changed("delay") {
			delays = delays.WithDefault(printDelay)
		}
	} else {
		delays = typewriter.New(printDelay, nil)
	}

	for _, entry := range printPauses {
		r, d, err := parsePause(entry)
		if err != nil {
			return typewriter.CharDelays{}, err
		}
		delays = delays.With(r, d)
	}
	return delays, nil
}

func parsePause(entry string) (rune, time.Duration, error) {
	key, value, ok := strings.Cut(entry, "=")
	if !ok {
		return 0, 0, fmt.Errorf("invalid --pause %q (want CHAR=DURATION)", entry)
	}
	runes := []rune(key)
	if len(runes) != 1 {
		return 0, 0, fmt.Errorf("--pause key %q must be a single character", key)
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --pause duration %q: %w", value, err)
	}
	if d < 0 {
		return 0, 0, fmt.Errorf("--pause duration %q must not be negative", value)
	}
	return runes[0], d, nil
}

func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func terminalWidth() (int, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}
