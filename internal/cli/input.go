package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter reads validated line input: empty lines, non-numbers and
// out-of-range numbers are rejected with a message and asked again.
type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{scanner: bufio.NewScanner(in), out: out}
}

// promptString asks until a non-empty line is entered. Returns io.EOF when
// input runs out.
func (p *prompter) promptString(prompt string) (string, error) {
	for {
		fmt.Fprint(p.out, prompt)
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		line := strings.TrimSpace(p.scanner.Text())
		if line == "" {
			fmt.Fprintln(p.out, "Input cannot be empty.")
			continue
		}
		return line, nil
	}
}

// promptInt asks until a number within [min, max] is entered.
func (p *prompter) promptInt(prompt string, min, max int) (int, error) {
	for {
		line, err := p.promptString(prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid input. Please enter a valid number.")
			continue
		}
		if value < min || value > max {
			fmt.Fprintf(p.out, "Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return value, nil
	}
}
