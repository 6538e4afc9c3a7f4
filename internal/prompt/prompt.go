// Package prompt implements the interactive yes/no and numbered-menu prompts
// used by the explore session. Input and output are injected so sessions can
// be scripted in tests.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter reads answers line by line from in and writes questions to out.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Confirm asks a yes/no question and re-asks until it gets yes/no/y/n.
// Returns io.EOF when input runs out.
func (p *Prompter) Confirm(question string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "%s (yes/no): ", question)
		line, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "yes", "y":
			return true, nil
		case "no", "n":
			return false, nil
		}
	}
}

// Select shows a numbered menu and returns the index of the chosen entry.
// Invalid input (non-numeric, out of range) re-prompts rather than failing.
func (p *Prompter) Select(header string, choices []string) (int, error) {
	if len(choices) == 0 {
		return 0, fmt.Errorf("no choices to select from")
	}
	fmt.Fprintf(p.out, "\n%s\n", header)
	for i, c := range choices {
		fmt.Fprintf(p.out, "\t%d. %s\n", i+1, c)
	}
	for {
		fmt.Fprintf(p.out, "Please select a choice (1..%d): ", len(choices))
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 1 || n > len(choices) {
			continue
		}
		return n - 1, nil
	}
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}
