package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Jackevansevo/taggy/internal/domain"
)

// Prompter asks line-based questions on a reader/writer pair, so tests can
// drive it with buffers.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Prompt prints the label and reads one line. EOF (closed stdin, Ctrl-D)
// aborts the interaction.
func (p *Prompter) Prompt(label string, lower bool) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", &domain.OpError{
			Op:   "prompt.read",
			Kind: domain.KindAborted,
			Err:  fmt.Errorf("Interrupted, quitting: %w", domain.ErrAborted),
		}
	}

	ans := strings.TrimSpace(line)
	if lower {
		ans = strings.ToLower(ans)
	}
	return ans, nil
}

// Confirm asks a yes/no question; "y" and "yes" answer true.
func (p *Prompter) Confirm(label string) (bool, error) {
	ans, err := p.Prompt(label+" ", true)
	if err != nil {
		return false, err
	}
	return ans == "y" || ans == "yes", nil
}

// Choice asks until the answer matches one of choices and returns the matched
// choice. Matching is case-insensitive; an exact (case-sensitive) match wins,
// which keeps single-letter prefixes like "M" vs "m" unambiguous.
func (p *Prompter) Choice(label string, choices []string, allowPrefix bool) (string, error) {
	keys, err := BuildChoices(choices, allowPrefix)
	if err != nil {
		return "", err
	}

	for {
		ans, err := p.Prompt(label, false)
		if err != nil {
			return "", err
		}

		if match, ok := keys[ans]; ok {
			return match, nil
		}
		for k, match := range keys {
			if strings.EqualFold(k, ans) && len(k) == len(ans) {
				return match, nil
			}
		}

		fmt.Fprintf(p.out, "Invalid choice %q\n", ans)
	}
}

// BuildChoices maps each choice (and, with allowPrefix, its first letter) to
// the choice itself. Choices sharing a first letter cannot both claim the
// prefix; that is reported as an error rather than silently shadowed.
func BuildChoices(choices []string, allowPrefix bool) (map[string]string, error) {
	keys := make(map[string]string, len(choices)*2)
	for _, c := range choices {
		if c == "" {
			continue
		}
		if allowPrefix {
			k := c[:1]
			if _, exists := keys[k]; exists {
				return nil, fmt.Errorf("%s has already been set", k)
			}
			keys[k] = c
		}
		keys[c] = c
	}
	return keys, nil
}
