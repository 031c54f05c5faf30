package ports

// Prompter asks the user for interactive input.
type Prompter interface {
	// Confirm asks a yes/no question; "y" and "yes" answer true.
	Confirm(label string) (bool, error)
	// Choice asks until the answer matches one of choices and returns the
	// matched choice. With allowPrefix, single-letter prefixes are accepted.
	Choice(label string, choices []string, allowPrefix bool) (string, error)
}
