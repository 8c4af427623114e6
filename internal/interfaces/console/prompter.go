// Package console implements the numbered-menu terminal interfaces of
// leaguectl.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const msgNotInteger = "Please enter the menu item as an integer."

// Prompter reads one answer per line from in and writes prompts to out.
// Lines have no length limit. Once input is exhausted every read returns
// io.EOF.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) Println(a ...any) {
	_, _ = fmt.Fprintln(p.out, a...)
}

func (p *Prompter) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(p.out, format, a...)
}

// Writer exposes the output stream for pre-rendered blocks.
func (p *Prompter) Writer() io.Writer {
	return p.out
}

// Line prints prompt and returns the next input line with surrounding
// whitespace removed.
func (p *Prompter) Line(prompt string) (string, error) {
	if prompt != "" {
		p.prompt(prompt)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Int prints prompt until the answer parses as an integer.
func (p *Prompter) Int(prompt string) (int, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}
		p.Println(msgNotInteger)
	}
}

// prompt writes inline prompts (ending in ": ") without a newline.
func (p *Prompter) prompt(text string) {
	if strings.HasSuffix(text, ": ") {
		_, _ = io.WriteString(p.out, text)
		return
	}
	p.Println(text)
}
