package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// prompter asks interactive questions on a line-oriented stream.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// line returns the next trimmed input line. eof is true when the stream ended
// with (or before) this line.
func (p *prompter) line() (text string, eof bool, err error) {
	raw, err := p.in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		return strings.TrimSpace(raw), true, nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(raw), false, nil
}

// String asks for a value, falling back to def on an empty answer. Without a
// default it asks again until something is entered.
func (p *prompter) String(label, def string) (string, error) {
	for {
		if def != "" {
			fmt.Fprintf(p.out, "%s [%s]: ", label, def)
		} else {
			fmt.Fprintf(p.out, "%s: ", label)
		}
		text, eof, err := p.line()
		switch {
		case err != nil:
			return "", err
		case text != "":
			return text, nil
		case def != "":
			return def, nil
		case eof:
			return "", fmt.Errorf("missing input for %s", label)
		}
	}
}

// Confirm asks a yes/no question. An empty answer picks def.
func (p *prompter) Confirm(label string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(p.out, "%s [%s]: ", label, hint)
		text, eof, err := p.line()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(text) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if eof {
			return false, fmt.Errorf("invalid response %q", text)
		}
		fmt.Fprintln(p.out, "Please answer yes or no.")
	}
}
