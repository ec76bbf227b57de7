// Package ui provides terminal output helpers for the nutribot CLI.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/aishuu11/hackathon-2025/internal/catalog"
)

// UI writes user-facing output. JSON mode silences decorative lines.
type UI struct {
	out      io.Writer
	noColor  bool
	jsonMode bool
}

// New creates a UI writing to out.
func New(out io.Writer, jsonMode, noColor bool) *UI {
	if noColor {
		color.NoColor = true
	}
	return &UI{out: out, noColor: noColor, jsonMode: jsonMode}
}

// Writer returns the underlying writer.
func (u *UI) Writer() io.Writer { return u.out }

// JSON reports whether machine-readable output was requested.
func (u *UI) JSON() bool { return u.jsonMode }

func (u *UI) print(attr color.Attribute, symbol, format string, args ...interface{}) {
	if u.jsonMode {
		return
	}
	line := fmt.Sprintf("%s %s\n", symbol, fmt.Sprintf(format, args...))
	if u.noColor {
		fmt.Fprint(u.out, line)
		return
	}
	color.New(attr).Fprint(u.out, line)
}

// Success prints a success message.
func (u *UI) Success(format string, args ...interface{}) { u.print(color.FgGreen, "✓", format, args...) }

// Error prints an error message.
func (u *UI) Error(format string, args ...interface{}) { u.print(color.FgRed, "✗", format, args...) }

// Warning prints a warning message.
func (u *UI) Warning(format string, args ...interface{}) { u.print(color.FgYellow, "⚠", format, args...) }

// Info prints an info message.
func (u *UI) Info(format string, args ...interface{}) { u.print(color.FgCyan, "ℹ", format, args...) }

// Section prints a bold heading.
func (u *UI) Section(title string) {
	if u.jsonMode {
		return
	}
	if u.noColor {
		fmt.Fprintf(u.out, "\n== %s ==\n", title)
		return
	}
	color.New(color.FgCyan, color.Bold).Fprintf(u.out, "\n== %s ==\n", title)
}

// Bot prints a bot reply tinted by the avatar mood.
func (u *UI) Bot(text string, effects catalog.UIEffects) {
	prefix := "🤖 "
	if u.noColor {
		fmt.Fprintf(u.out, "%s%s\n", prefix, text)
		return
	}
	moodColor(effects.AvatarMood).Fprintf(u.out, "%s%s\n", prefix, text)
}

// Supportive prints the supportive line under a reply.
func (u *UI) Supportive(text string) {
	if text == "" {
		return
	}
	if u.noColor {
		fmt.Fprintf(u.out, "💚 %s\n", text)
		return
	}
	color.New(color.FgHiGreen, color.Italic).Fprintf(u.out, "💚 %s\n", text)
}

// Table prints rows under headers as aligned columns.
func (u *UI) Table(headers []string, rows [][]string) {
	if u.jsonMode || len(headers) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	line := func(cells []string) string {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	header := line(headers)
	if u.noColor {
		fmt.Fprintln(u.out, header)
	} else {
		color.New(color.FgCyan, color.Bold).Fprintln(u.out, header)
	}
	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("-", w)
	}
	fmt.Fprintln(u.out, strings.Join(seps, "  "))
	for _, row := range rows {
		fmt.Fprintln(u.out, line(row))
	}
}

func moodColor(mood string) *color.Color {
	switch mood {
	case "happy":
		return color.New(color.FgGreen)
	case "warning":
		return color.New(color.FgYellow)
	case "serious":
		return color.New(color.FgRed)
	case "explaining":
		return color.New(color.FgCyan)
	case "coach":
		return color.New(color.FgHiGreen)
	case "confused":
		return color.New(color.FgMagenta)
	default:
		return color.New(color.FgWhite)
	}
}
