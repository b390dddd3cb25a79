// SPDX-License-Identifier: MIT

package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Messages shown when an answer is rejected.
const (
	MsgInvalid      = "Invalid input, try again"
	MsgNoSuchFile   = "The file does not exist, try again"
	MsgInvalidFloat = "Not a valid number, try again"
)

// Prompter asks questions on out and reads answers line by line from in.
// It is not safe for concurrent use.
type Prompter struct {
	sc  *bufio.Scanner
	out io.Writer
	log *slog.Logger
}

// NewPrompter wraps in/out. A nil logger discards records.
func NewPrompter(in io.Reader, out io.Writer, log *slog.Logger) *Prompter {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Prompter{sc: bufio.NewScanner(in), out: out, log: log}
}

// Out returns the writer prompts are printed to.
func (p *Prompter) Out() io.Writer { return p.out }

// Say prints one line.
func (p *Prompter) Say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Line reads the next line without its terminator.
// A trailing "\r" is dropped so Windows-edited input behaves.
func (p *Prompter) Line() (string, error) {
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", fmt.Errorf("input: read: %w", err)
		}

		return "", ErrInputClosed
	}

	return strings.TrimSuffix(p.sc.Text(), "\r"), nil
}

// ask prints prompt (when non-empty) and re-reads until parse accepts the answer.
func ask[T any](p *Prompter, prompt, retry string, parse func(string) (T, error)) (T, error) {
	if prompt != "" {
		p.Say("%s", prompt)
	}
	for {
		line, err := p.Line()
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		p.log.Warn("rejected answer", "prompt", prompt, "err", err)
		p.Say("%s", retry)
	}
}

// PositiveInt asks for a strictly positive integer.
func (p *Prompter) PositiveInt(prompt string) (int, error) {
	return ask(p, prompt, MsgInvalid, ParsePositive)
}

// Size asks for a row count and then a column count.
func (p *Prompter) Size() (rows, cols int, err error) {
	if rows, err = p.PositiveInt("Enter the number of rows:"); err != nil {
		return 0, 0, err
	}
	if cols, err = p.PositiveInt("Enter the number of columns:"); err != nil {
		return 0, 0, err
	}

	return rows, cols, nil
}

// Scalar asks for a real number.
func (p *Prompter) Scalar(prompt string) (float64, error) {
	return ask(p, prompt, MsgInvalidFloat, ParseReal)
}

// Choose prints a numbered list under title and returns the 1-based choice.
func (p *Prompter) Choose(title string, items []string) (int, error) {
	p.Say("%s", title)
	for i, it := range items {
		p.Say("%d. %s", i+1, it)
	}

	return ask(p, "", MsgInvalid, func(s string) (int, error) { return ParseChoice(s, len(items)) })
}

// FileName asks for a path and re-asks until it names an existing regular file.
func (p *Prompter) FileName(prompt string) (string, error) {
	return ask(p, prompt, MsgNoSuchFile, func(s string) (string, error) {
		name := strings.TrimSpace(s)
		fi, err := os.Stat(name)
		if err != nil {
			return "", err
		}
		if fi.IsDir() {
			return "", fmt.Errorf("%s: %w", name, errors.ErrUnsupported)
		}

		return name, nil
	})
}
