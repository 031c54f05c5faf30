package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DiffStyles colors the lines of a unified diff. The zero value renders
// plain text, which is what --no-color uses.
type DiffStyles struct {
	Header  lipgloss.Style
	Hunk    lipgloss.Style
	Removed lipgloss.Style
	Added   lipgloss.Style
}

func DefaultDiffStyles() DiffStyles {
	return DiffStyles{
		Header:  lipgloss.NewStyle().Faint(true),
		Hunk:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Removed: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Added:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

func PlainDiffStyles() DiffStyles {
	return DiffStyles{}
}

// Colorize styles each diff line by its marker. Lines without a recognized
// marker pass through untouched.
func (s DiffStyles) Colorize(diff string) string {
	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			lines[i] = s.Header.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = s.Hunk.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = s.Removed.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = s.Added.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// VersionDiff renders an ndiff-style comparison of two version strings:
//
//	- 2.1.0
//	?     ^
//	+ 2.1.1
//	?     ^
//
// Guide lines carry '^' under every column that changed.
func VersionDiff(before, after string) string {
	lines := []string{"- " + before}
	if g := guide(before, after); g != "" {
		lines = append(lines, "? "+g)
	}
	lines = append(lines, "+ "+after)
	if g := guide(after, before); g != "" {
		lines = append(lines, "? "+g)
	}
	return strings.Join(lines, "\n")
}

// guide marks each position of s that differs from other.
func guide(s, other string) string {
	marks := make([]byte, len(s))
	last := -1
	for i := 0; i < len(s); i++ {
		if i >= len(other) || s[i] != other[i] {
			marks[i] = '^'
			last = i
		} else {
			marks[i] = ' '
		}
	}
	if last < 0 {
		return ""
	}
	return string(marks[:last+1])
}
