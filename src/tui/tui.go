package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// TUI reads answers from and writes prompts to a terminal. Input and output
// are plain reader/writer so tests can script a session.
type TUI struct {
	input  *bufio.Scanner
	output io.Writer
}

func New() *TUI {
	return &TUI{
		input:  bufio.NewScanner(os.Stdin),
		output: os.Stdout,
	}
}

func (t *TUI) SetInput(input io.Reader) {
	t.input = bufio.NewScanner(input)
}

func (t *TUI) SetOutput(output io.Writer) {
	t.output = output
}

func (t *TUI) Printf(format string, a ...any) {
	fmt.Fprintf(t.output, format, a...)
}

// AskYesNo prints the question and reads answers until one of them is a
// clear yes or no. An empty answer or end of input counts as no.
func (t *TUI) AskYesNo(question string, a ...any) bool {
	for {
		fmt.Fprintf(t.output, question, a...)

		response, ok := t.readLine()
		if !ok {
			return false
		}

		switch strings.ToLower(strings.TrimSpace(response)) {
		case "y", "yes":
			return true
		case "n", "no", "":
			return false
		}
	}
}

// ReadLine prints the prompt and reads one line of input. ok is false once
// the input is exhausted.
func (t *TUI) ReadLine(prompt string) (line string, ok bool) {
	fmt.Fprint(t.output, prompt)
	return t.readLine()
}

func (t *TUI) readLine() (string, bool) {
	if !t.input.Scan() {
		return "", false
	}
	return t.input.Text(), true
}
