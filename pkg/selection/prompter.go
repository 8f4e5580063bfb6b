package selection

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrNoCandidates = errors.New("nothing to choose from")
	ErrInputClosed  = errors.New("input closed before a selection was made")

	ErrNoValidDirection = errors.New("every direction ends at the selected stop")
)

const separator = "-----------------------------"

// Prompter asks the rider to pick from numbered lists on a console
type Prompter struct {
	out     io.Writer
	scanner *bufio.Scanner
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		out:     out,
		scanner: bufio.NewScanner(in),
	}
}

// Choose lists the labels once and keeps asking until a valid index is
// entered
func (p *Prompter) Choose(kind string, labels []string) (int, error) {
	if len(labels) == 0 {
		return 0, fmt.Errorf("%s: %w", kind, ErrNoCandidates)
	}

	fmt.Fprint(p.out, "\n\n")
	for i, label := range labels {
		fmt.Fprintf(p.out, "ID(%d) %s\n", i, label)
		fmt.Fprintln(p.out, separator)
	}

	for {
		choice, ok, err := p.ask(kind, len(labels))
		if err != nil {
			return 0, err
		}
		if ok {
			return choice, nil
		}
	}
}

// ReadLine prompts for and returns one line of free text
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	if !p.scanner.Scan() {
		return "", p.closedError()
	}

	return strings.TrimSpace(p.scanner.Text()), nil
}

// ask makes a single attempt at reading an index in [0, count)
func (p *Prompter) ask(kind string, count int) (int, bool, error) {
	line, err := p.ReadLine(fmt.Sprintf("+ please select %s by entering ID number:", kind))
	if err != nil {
		return 0, false, err
	}

	choice, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprint(p.out, "ERROR: your entered value must be a number\n\n")
		return 0, false, nil
	}

	if choice < 0 || choice >= count {
		fmt.Fprintf(p.out, "ERROR: your entered value must be between [%d, %d]\n\n", 0, count-1)
		return 0, false, nil
	}

	return choice, true, nil
}

func (p *Prompter) closedError() error {
	if err := p.scanner.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInputClosed, err)
	}
	return ErrInputClosed
}
